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

func newTestParser() *Parser {
	return NewParser(NewCatalog())
}

func TestParse_ClusterScopeGet(t *testing.T) {
	p := newTestParser()
	expr, err := p.Parse("backup-dir")
	require.NoError(t, err)
	assert.Equal(t, Cluster(), expr.Scope)
	assert.Equal(t, NodeBackupDir, expr.Setting.Name)
	assert.False(t, expr.ValuePresent)
}

func TestParse_StripeScopeSet(t *testing.T) {
	p := newTestParser()
	expr, err := p.Parse("stripe.1.backup-dir=/var/tc")
	require.NoError(t, err)
	assert.Equal(t, Stripe(1), expr.Scope)
	assert.Equal(t, "/var/tc", expr.Value)
}

func TestParse_NodeScopeSet_ColonBoundarySeparator(t *testing.T) {
	p := newTestParser()
	expr, err := p.Parse("stripe.1.node.2:backup-dir=/var/tc")
	require.NoError(t, err)
	assert.Equal(t, Node(1, 2), expr.Scope)
}

func TestParse_StripeScopeSet_ColonBoundarySeparator(t *testing.T) {
	p := newTestParser()
	expr, err := p.Parse("stripe.1:backup-dir=/var/tc")
	require.NoError(t, err)
	assert.Equal(t, Stripe(1), expr.Scope)
}

func TestParse_ColonInsideScopePrefix_Rejected(t *testing.T) {
	p := newTestParser()
	_, err := p.Parse("stripe:1:node:2:backup-dir=/var/tc")
	assert.EqualError(t, err, "Invalid input: 'stripe:1:node:2:backup-dir=/var/tc'")
}

func TestParse_MapKeyed(t *testing.T) {
	p := newTestParser()
	expr, err := p.Parse("offheap-resources.main=1GB")
	require.NoError(t, err)
	assert.Equal(t, "main", expr.Key)
	assert.Equal(t, "1GB", expr.Value)
}

func TestParse_MapWholeSet(t *testing.T) {
	p := newTestParser()
	expr, err := p.Parse("offheap-resources=main:1GB,second:2GB")
	require.NoError(t, err)
	assert.False(t, expr.HasKey())
	assert.Equal(t, "main:1GB,second:2GB", expr.Value)
}

func TestParse_EmptyValueMeansUnset(t *testing.T) {
	p := newTestParser()
	expr, err := p.Parse("cluster-name=")
	require.NoError(t, err)
	assert.True(t, expr.ValuePresent)
	assert.Equal(t, "", expr.Value)
}

func TestParse_UnknownSettingName(t *testing.T) {
	p := newTestParser()
	_, err := p.Parse("no-such-setting")
	assert.EqualError(t, err, "Invalid input: 'no-such-setting'. Reason: Invalid setting name: 'no-such-setting'")
}

func TestParse_ZeroStripeID(t *testing.T) {
	p := newTestParser()
	_, err := p.Parse("stripe.0.backup-dir=/x")
	assert.EqualError(t, err, "Invalid input: 'stripe.0.backup-dir=/x'. Reason: Expected stripe ID to be greater than 0")
}

func TestParse_ZeroNodeID(t *testing.T) {
	p := newTestParser()
	_, err := p.Parse("stripe.1.node.0.backup-dir=/x")
	assert.EqualError(t, err, "Invalid input: 'stripe.1.node.0.backup-dir=/x'. Reason: Expected node ID to be greater than 0")
}

func TestParse_NegativeStripeID_BareError(t *testing.T) {
	p := newTestParser()
	_, err := p.Parse("stripe.-1.backup-dir=/x")
	assert.EqualError(t, err, "Invalid input: 'stripe.-1.backup-dir=/x'")
}

func TestParse_NonNumericStripeID_BareError(t *testing.T) {
	p := newTestParser()
	_, err := p.Parse("stripe.abc.backup-dir=/x")
	assert.EqualError(t, err, "Invalid input: 'stripe.abc.backup-dir=/x'")
}

func TestParse_ReservedWordAsSettingName(t *testing.T) {
	p := newTestParser()
	_, err := p.Parse("stripe=1")
	assert.EqualError(t, err, "Invalid input: 'stripe=1'")

	_, err = p.Parse("node=1")
	assert.EqualError(t, err, "Invalid input: 'node=1'")
}

func TestParse_MapKeyWithInteriorDots(t *testing.T) {
	p := newTestParser()
	expr, err := p.Parse("offheap-resources.main.extra=1GB")
	require.NoError(t, err)
	assert.Equal(t, "main.extra", expr.Key)
	assert.Equal(t, "1GB", expr.Value)
}

func TestParse_TCPropertiesKeyWithInteriorDots(t *testing.T) {
	p := newTestParser()
	expr, err := p.Parse("stripe.1.node.1.tc-properties.a.b.c=true")
	require.NoError(t, err)
	assert.Equal(t, "a.b.c", expr.Key)
	assert.Equal(t, "true", expr.Value)
}

func TestParse_NodeIdentityBootstrapWrite(t *testing.T) {
	p := newTestParser()
	expr, err := p.Parse("stripe.1.node.1.hostname=foo")
	require.NoError(t, err)
	assert.Equal(t, Node(1, 1), expr.Scope)
	assert.Equal(t, "foo", expr.Value)
}

func TestParse_CatalogValidationStillApplies(t *testing.T) {
	p := newTestParser()
	_, err := p.Parse("stripe.1:offheap-resources=main:1GB")
	assert.EqualError(t, err, "Invalid input: 'stripe.1.offheap-resources=main:1GB'. Reason: offheap-resources does not allow any operation at stripe level")
}
