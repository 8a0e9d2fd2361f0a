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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidInputError_WithReason(t *testing.T) {
	err := invalidInput("stripe.0.backup-dir", "Expected stripe ID to be greater than 0")
	assert.Equal(t, "Invalid input: 'stripe.0.backup-dir'. Reason: Expected stripe ID to be greater than 0", err.Error())
}

func TestInvalidInputError_Bare(t *testing.T) {
	err := invalidInputBare("stripe.-1.backup-dir")
	assert.Equal(t, "Invalid input: 'stripe.-1.backup-dir'", err.Error())
}

func TestIncompatibleError(t *testing.T) {
	err := incompatible("offheap-resources", "offheap-resources=main:1GB")
	assert.Equal(t, "Incompatible or duplicate configurations: offheap-resources and offheap-resources=main:1GB", err.Error())
}
