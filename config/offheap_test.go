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

func TestValidate_OffheapResources_KeyedValidQuantity(t *testing.T) {
	c := NewCatalog()
	expr := Expression{Setting: c.Lookup(OffheapResources), Scope: Cluster(), Key: "main", ValuePresent: true, Value: "1GB"}
	assert.NoError(t, expr.Validate(Set))
}

func TestValidate_OffheapResources_KeyedInvalidQuantity(t *testing.T) {
	c := NewCatalog()
	expr := Expression{Setting: c.Lookup(OffheapResources), Scope: Cluster(), Key: "main", ValuePresent: true, Value: "not-a-size"}
	err := expr.Validate(Set)
	assert.Error(t, err)
	assert.IsType(t, &InvalidInputError{}, err)
}

func TestValidate_OffheapResources_WholeMapValid(t *testing.T) {
	c := NewCatalog()
	expr := Expression{Setting: c.Lookup(OffheapResources), Scope: Cluster(), ValuePresent: true, Value: "main:1GB,second:512MB"}
	assert.NoError(t, expr.Validate(Set))
}

func TestValidate_OffheapResources_WholeMapMissingColon(t *testing.T) {
	c := NewCatalog()
	expr := Expression{Setting: c.Lookup(OffheapResources), Scope: Cluster(), ValuePresent: true, Value: "main1GB"}
	err := expr.Validate(Set)
	assert.Error(t, err)
}

func TestValidate_OffheapResources_ClearStillAllowed(t *testing.T) {
	c := NewCatalog()
	expr := Expression{Setting: c.Lookup(OffheapResources), Scope: Cluster(), Key: "main", ValuePresent: true, Value: ""}
	assert.NoError(t, expr.Validate(Unset))
}
