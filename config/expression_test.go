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

func TestExpression_Text(t *testing.T) {
	c := NewCatalog()

	cases := []struct {
		name     string
		expr     Expression
		expected string
	}{
		{
			"cluster-level get",
			Expression{Setting: c.Lookup(NodeBackupDir), Scope: Cluster()},
			"backup-dir",
		},
		{
			"stripe-level set",
			Expression{Setting: c.Lookup(NodeBackupDir), Scope: Stripe(1), ValuePresent: true, Value: "/var/tc"},
			"stripe.1.backup-dir=/var/tc",
		},
		{
			"node-level keyed map set",
			Expression{Setting: c.Lookup(DataDirs), Scope: Node(1, 2), Key: "main", ValuePresent: true, Value: "/data"},
			"stripe.1.node.2.data-dirs.main=/data",
		},
		{
			"cluster-level unset",
			Expression{Setting: c.Lookup(ClusterName), Scope: Cluster(), ValuePresent: true, Value: ""},
			"cluster-name=",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, c.expr.Text())
		})
	}
}

func TestExpression_HasKey(t *testing.T) {
	withKey := Expression{Key: "main"}
	withoutKey := Expression{}
	assert.True(t, withKey.HasKey())
	assert.False(t, withoutKey.HasKey())
}

func TestExpression_ImpliedOperation(t *testing.T) {
	c := NewCatalog()
	backupDir := c.Lookup(NodeBackupDir)
	clusterName := c.Lookup(ClusterName) // EmptyForbidden == false
	reconnect := c.Lookup(ClientReconnectWindow)

	get := Expression{Setting: backupDir}
	assert.Equal(t, Get, get.impliedOperation())

	set := Expression{Setting: backupDir, ValuePresent: true, Value: "/var/tc"}
	assert.Equal(t, Set, set.impliedOperation())

	clearable := Expression{Setting: clusterName, ValuePresent: true, Value: ""}
	assert.Equal(t, Unset, clearable.impliedOperation())

	nonClearable := Expression{Setting: reconnect, ValuePresent: true, Value: ""}
	assert.Equal(t, Set, nonClearable.impliedOperation())

	hostname := c.Lookup(NodeHostname) // allows only {Get, Config} at node scope
	nodeIdentityWrite := Expression{Setting: hostname, Scope: Node(1, 1), ValuePresent: true, Value: "foo"}
	assert.Equal(t, Config, nodeIdentityWrite.impliedOperation())

	clusterIdentityWrite := Expression{Setting: hostname, Scope: Cluster(), ValuePresent: true, Value: "foo"}
	assert.Equal(t, Set, clusterIdentityWrite.impliedOperation())
}
