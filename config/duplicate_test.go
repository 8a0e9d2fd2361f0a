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
	"github.com/stretchr/testify/require"
)

func TestDuplicates_DifferentSetting_Independent(t *testing.T) {
	c := NewCatalog()
	a := Expression{Setting: c.Lookup(NodeBackupDir), Scope: Cluster()}
	b := Expression{Setting: c.Lookup(NodeLogDir), Scope: Cluster()}

	dup, err := a.Duplicates(b)
	require.NoError(t, err)
	assert.False(t, dup)
}

func TestDuplicates_DifferentScope_Independent(t *testing.T) {
	c := NewCatalog()
	a := Expression{Setting: c.Lookup(NodeBackupDir), Scope: Stripe(1)}
	b := Expression{Setting: c.Lookup(NodeBackupDir), Scope: Stripe(2)}

	dup, err := a.Duplicates(b)
	require.NoError(t, err)
	assert.False(t, dup)
}

func TestDuplicates_SameSettingAndScope_SameKey_Duplicate(t *testing.T) {
	c := NewCatalog()
	a := Expression{Setting: c.Lookup(OffheapResources), Scope: Cluster(), Key: "main", ValuePresent: true, Value: "1GB"}
	b := Expression{Setting: c.Lookup(OffheapResources), Scope: Cluster(), Key: "main"}

	dup, err := a.Duplicates(b)
	require.NoError(t, err)
	assert.True(t, dup)
}

func TestDuplicates_SameSettingAndScope_DifferentKey_Independent(t *testing.T) {
	c := NewCatalog()
	a := Expression{Setting: c.Lookup(OffheapResources), Scope: Cluster(), Key: "main", ValuePresent: true, Value: "1GB"}
	b := Expression{Setting: c.Lookup(OffheapResources), Scope: Cluster(), Key: "second", ValuePresent: true, Value: "1GB"}

	dup, err := a.Duplicates(b)
	require.NoError(t, err)
	assert.False(t, dup)
}

func TestDuplicates_KeyPresenceMismatch_Incompatible(t *testing.T) {
	c := NewCatalog()
	keyed := Expression{Setting: c.Lookup(OffheapResources), Scope: Cluster(), Key: "main", ValuePresent: true, Value: "1GB"}
	keyless := Expression{Setting: c.Lookup(OffheapResources), Scope: Cluster()}

	dup, err := keyed.Duplicates(keyless)
	assert.False(t, dup)
	assert.Error(t, err)
	assert.IsType(t, &IncompatibleError{}, err)
}

func TestDuplicates_ValuePresenceShapeMismatch_Incompatible(t *testing.T) {
	c := NewCatalog()
	bareQuery := Expression{Setting: c.Lookup(OffheapResources), Scope: Cluster()}
	wholeMapSet := Expression{Setting: c.Lookup(OffheapResources), Scope: Cluster(), ValuePresent: true, Value: "main:1GB"}

	dup, err := bareQuery.Duplicates(wholeMapSet)
	assert.False(t, dup)
	assert.Error(t, err)
	assert.IsType(t, &IncompatibleError{}, err)
}

func TestDuplicates_SameScalarSetting_AlwaysDuplicate(t *testing.T) {
	c := NewCatalog()
	a := Expression{Setting: c.Lookup(NodeBackupDir), Scope: Node(1, 1), ValuePresent: true, Value: "/x"}
	b := Expression{Setting: c.Lookup(NodeBackupDir), Scope: Node(1, 1), ValuePresent: true, Value: "/y"}

	dup, err := a.Duplicates(b)
	require.NoError(t, err)
	assert.True(t, dup)
}
