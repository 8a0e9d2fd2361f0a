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

import "github.com/clusterconf/dynamic-config/topology"

// sequentialIdentifierSupplier mints "0", "1", ... in order, so tests
// asserting on generated default text stay deterministic.
type sequentialIdentifierSupplier struct {
	next int
}

func (s *sequentialIdentifierSupplier) NewIdentifier() string {
	id := s.next
	s.next++
	return fmtID(id)
}

func fmtID(n int) string {
	digits := "0123456789"
	if n < 10 {
		return string(digits[n])
	}
	return fmtID(n/10) + string(digits[n%10])
}

// newFixtureCluster builds the single-stripe, single-node cluster the
// original test suite's newDefaultCluster/newDefaultNode fixture describes:
// one node named "node1" with hostname "localhost".
func newFixtureCluster() *topology.Cluster {
	node := topology.NewNode("node1", "localhost")
	return topology.NewDefaultCluster(node)
}

// newTwoStripeCluster builds a two-stripe cluster, stripe 1 with two nodes
// and stripe 2 with one node, for scope-resolution and out-of-range tests.
func newTwoStripeCluster() *topology.Cluster {
	s1 := topology.NewStripe(
		topology.NewNode("node1", "host1"),
		topology.NewNode("node2", "host2"),
	)
	s2 := topology.NewStripe(
		topology.NewNode("node3", "host3"),
	)
	return topology.NewCluster(s1, s2)
}
