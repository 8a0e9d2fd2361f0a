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
	"strconv"
	"strings"

	"github.com/clusterconf/dynamic-config/topology"
)

// Apply mutates cluster according to this expression: CLUSTER scope
// touches cluster-wide fields and fans a node-level setting out to every
// node in the cluster; STRIPE scope fans a node-level setting out to every
// node in that stripe; NODE scope touches exactly one node. A GET never
// mutates — a value-less apply leaves the field untouched rather than
// clearing it, a narrower contract than the original (which clears on a
// value-less apply too); only an explicit empty-valued UNSET clears here.
// license-file is metadata recorded elsewhere and is silently ignored here.
//
// Apply resolves stripe/node IDs against the cluster's actual shape only
// at this point — Parse only checked that an ID is a positive integer, not
// that it is in range, since range checking needs the topology it is being
// applied to.
func (e Expression) Apply(cluster *topology.Cluster) error {
	op := e.impliedOperation()
	if op == Get {
		return nil
	}
	if e.Setting.Name == LicenseFile {
		return nil
	}

	nodes, err := resolveNodes(e.Text(), e.Scope, cluster)
	if err != nil {
		return err
	}

	if e.Setting.IsMap {
		if e.Setting.Name == OffheapResources {
			applyMap(e, cluster.OffheapResources)
			return nil
		}
		for _, n := range nodes {
			applyMap(e, mapField(n, e.Setting.Name))
		}
		return nil
	}

	value := e.Value
	if op == Unset {
		value = ""
	}

	if e.Scope.Kind == ClusterScope {
		if applyClusterScalar(cluster, e.Setting.Name, value) {
			return nil
		}
	}
	for _, n := range nodes {
		applyNodeScalar(n, e.Setting.Name, value)
	}
	return nil
}

// resolveNodes returns the nodes a CLUSTER/STRIPE/NODE-scoped expression
// fans out to, validating stripe/node IDs against the cluster's actual
// shape.
func resolveNodes(raw string, scope Scope, cluster *topology.Cluster) ([]*topology.Node, error) {
	switch scope.Kind {
	case ClusterScope:
		var all []*topology.Node
		for _, s := range cluster.Stripes {
			all = append(all, s.Nodes...)
		}
		return all, nil

	case StripeScope:
		stripe := cluster.Stripe(scope.StripeID)
		if stripe == nil {
			return nil, invalidInput(raw, fmt.Sprintf("Invalid stripe ID: %d. Cluster contains: %d stripe(s)", scope.StripeID, cluster.StripeCount()))
		}
		return stripe.Nodes, nil

	case NodeScope:
		stripe := cluster.Stripe(scope.StripeID)
		if stripe == nil {
			return nil, invalidInput(raw, fmt.Sprintf("Invalid stripe ID: %d. Cluster contains: %d stripe(s)", scope.StripeID, cluster.StripeCount()))
		}
		node := stripe.Node(scope.NodeID)
		if node == nil {
			return nil, invalidInput(raw, fmt.Sprintf("Invalid node ID: %d. Stripe ID: %d contains: %d node(s)", scope.NodeID, scope.StripeID, stripe.NodeCount()))
		}
		return []*topology.Node{node}, nil

	default:
		return nil, nil
	}
}

// applyMap replaces or edits one entry of a map field: a keyless
// expression replaces the whole map (or clears it, for UNSET); a keyed
// expression inserts or removes a single entry.
func applyMap(e Expression, m map[string]string) {
	if !e.HasKey() {
		for k := range m {
			delete(m, k)
		}
		if e.ValuePresent && e.Value != "" {
			for k, v := range parseMapLiteral(e.Value) {
				m[k] = v
			}
		}
		return
	}
	if e.impliedOperation() == Unset || e.Value == "" {
		delete(m, e.Key)
		return
	}
	m[e.Key] = e.Value
}

// parseMapLiteral parses the whole-map wire form "k1:v1,k2:v2" into a map.
func parseMapLiteral(value string) map[string]string {
	result := map[string]string{}
	for _, entry := range strings.Split(value, ",") {
		if entry == "" {
			continue
		}
		k, v, found := strings.Cut(entry, ":")
		if !found {
			continue
		}
		result[k] = v
	}
	return result
}

// mapField returns the per-node map field backing a NODE-scoped map
// setting. offheap-resources is cluster-wide and never reaches here: Apply
// handles it directly against cluster.OffheapResources.
func mapField(n *topology.Node, settingName string) map[string]string {
	switch settingName {
	case DataDirs:
		return n.DataDirs
	case TCProperties:
		return n.TCProperties
	default:
		return nil
	}
}

// applyClusterScalar sets a cluster-wide scalar field, reporting whether
// settingName names one (so the caller knows not to also fan the value out
// to nodes).
func applyClusterScalar(cluster *topology.Cluster, settingName, value string) bool {
	switch settingName {
	case ClusterName:
		cluster.Name = value
	case ClientReconnectWindow:
		cluster.ClientReconnectWindow = value
	case ClientLeaseDuration:
		cluster.ClientLeaseDuration = value
	case FailoverPriority:
		cluster.FailoverPriority = value
	case SecuritySSLTLS:
		cluster.SecuritySSLTLS = value
	case SecurityWhitelist:
		cluster.SecurityWhitelist = value
	case SecurityAuthc:
		cluster.SecurityAuthc = value
	default:
		return false
	}
	return true
}

func applyNodeScalar(n *topology.Node, settingName, value string) {
	switch settingName {
	case NodeHostname:
		n.Hostname = value
	case NodeName:
		n.Name = value
	case NodePort:
		n.Port = atoiOrZero(value)
	case NodeGroupPort:
		n.GroupPort = atoiOrZero(value)
	case NodeBindAddress:
		n.BindAddress = value
	case NodeGroupBindAddress:
		n.GroupBindAddress = value
	case NodeLogDir:
		n.LogDir = value
	case NodeBackupDir:
		n.BackupDir = value
	case NodeMetadataDir:
		n.MetadataDir = value
	case SecurityDir:
		n.SecurityDir = value
	case SecurityAuditLogDir:
		n.SecurityAuditLogDir = value
	}
}

func atoiOrZero(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
