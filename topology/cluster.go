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

package topology

// Cluster is the root of the topology: an ordered, 1-indexed list of
// Stripes plus cluster-wide scalar and map settings.
type Cluster struct {
	Name string `yaml:"name"`

	OffheapResources map[string]string `yaml:"offheapResources,omitempty"`

	Stripes []*Stripe `yaml:"stripes"`

	ClientReconnectWindow string `yaml:"clientReconnectWindow,omitempty"`
	ClientLeaseDuration   string `yaml:"clientLeaseDuration,omitempty"`
	FailoverPriority      string `yaml:"failoverPriority,omitempty"`
	SecuritySSLTLS        string `yaml:"securitySslTls,omitempty"`
	SecurityWhitelist     string `yaml:"securityWhitelist,omitempty"`
	SecurityAuthc         string `yaml:"securityAuthc,omitempty"`
}

// NewCluster builds a Cluster from the given stripes, in order.
func NewCluster(stripes ...*Stripe) *Cluster {
	return &Cluster{
		OffheapResources: map[string]string{},
		Stripes:          stripes,
	}
}

// NewDefaultCluster builds a single-stripe cluster around the given nodes,
// with a single default offheap resource, mirroring the teacher fixture
// used throughout the original test suite.
func NewDefaultCluster(nodes ...*Node) *Cluster {
	c := NewCluster(NewStripe(nodes...))
	c.OffheapResources["main"] = "512MB"
	return c
}

// StripeCount returns how many stripes this cluster contains.
func (c *Cluster) StripeCount() int {
	return len(c.Stripes)
}

// Stripe returns the 1-indexed stripe, or nil if id is out of range.
func (c *Cluster) Stripe(id int) *Stripe {
	if id < 1 || id > len(c.Stripes) {
		return nil
	}
	return c.Stripes[id-1]
}

// SingleNode returns the only node in the cluster when the cluster has
// exactly one stripe with exactly one node, convenient for the common
// single-server topology.
func (c *Cluster) SingleNode() (*Node, bool) {
	if len(c.Stripes) != 1 || c.Stripes[0].NodeCount() != 1 {
		return nil, false
	}
	return c.Stripes[0].Nodes[0], true
}
