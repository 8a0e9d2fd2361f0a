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

import "fmt"

// InvalidInputError reports that a raw textual expression is malformed or
// fails catalog validation. Reason is empty for purely structural failures
// (bad prefix shapes, non-numeric or negative IDs) that carry no
// human-readable cause;
// in that case the error renders without the "Reason:" suffix.
type InvalidInputError struct {
	Raw    string
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("Invalid input: '%s'", e.Raw)
	}
	return fmt.Sprintf("Invalid input: '%s'. Reason: %s", e.Raw, e.Reason)
}

func invalidInput(raw, reason string) error {
	return &InvalidInputError{Raw: raw, Reason: reason}
}

func invalidInputBare(raw string) error {
	return &InvalidInputError{Raw: raw}
}

// IncompatibleError reports that two expressions target the same setting
// and scope but cannot both stand: one addresses the whole map and the
// other a single key within it, or one carries a value and the other does
// not.
type IncompatibleError struct {
	A, B string
}

func (e *IncompatibleError) Error() string {
	return fmt.Sprintf("Incompatible or duplicate configurations: %s and %s", e.A, e.B)
}

func incompatible(a, b string) error {
	return &IncompatibleError{A: a, B: b}
}
