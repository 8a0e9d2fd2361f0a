// Copyright 2023 StreamNative, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// validateOffheapValue checks that a SET/CONFIG value for offheap-resources
// is shaped as one or more "<key>:<quantity>" pairs (or a bare quantity for
// a per-key assignment) whose quantities parse as byte sizes ("1GB",
// "512MB"). The value is still stored as opaque text — this only rejects
// shapes that could never be a valid offheap size.
func validateOffheapValue(hasKey bool, value string) error {
	if hasKey {
		return validateByteQuantity(value)
	}
	for _, entry := range strings.Split(value, ",") {
		_, quantity, found := strings.Cut(entry, ":")
		if !found {
			return fmt.Errorf("entry %q must be of the form <name>:<quantity>", entry)
		}
		if err := validateByteQuantity(quantity); err != nil {
			return err
		}
	}
	return nil
}

func validateByteQuantity(quantity string) error {
	if _, err := humanize.ParseBytes(quantity); err != nil {
		return fmt.Errorf("%q is not a valid byte quantity: %w", quantity, err)
	}
	return nil
}
