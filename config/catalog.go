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

// Package config implements the dynamic configuration expression grammar:
// parsing, validating, matching and applying textual expressions like
// "stripe.1.node.2.backup-dir=/var/tc" against a cluster topology.
package config

import "github.com/clusterconf/dynamic-config/common"

// Setting name constants, used both as catalog keys and in parsed
// expressions' textual form.
const (
	NodeHostname         = "hostname"
	NodePort             = "port"
	NodeName             = "name"
	NodeGroupPort        = "group-port"
	NodeBindAddress      = "bind-address"
	NodeGroupBindAddress = "group-bind-address"
	NodeLogDir           = "log-dir"
	NodeBackupDir        = "backup-dir"
	NodeMetadataDir      = "metadata-dir"
	NodeConfigDir        = "config-dir"
	SecurityDir          = "security-dir"
	SecurityAuditLogDir  = "audit-log-dir"
	SecurityAuthc        = "authc"
	SecuritySSLTLS       = "ssl-tls"
	SecurityWhitelist    = "whitelist"
	LicenseFile          = "license-file"
	ClusterName          = "cluster-name"
	ClientReconnectWindow = "client-reconnect-window"
	ClientLeaseDuration   = "client-lease-duration"
	FailoverPriority      = "failover-priority"
	TCProperties          = "tc-properties"
	DataDirs              = "data-dirs"
	OffheapResources      = "offheap-resources"
)

// Catalog indexes every known Setting by name.
type Catalog struct {
	byName map[string]*Setting
}

// NewCatalog builds the full capability matrix, grounded on the policy
// table exercised by the original test_validate/test_valueOf suites: which
// scopes and operations each setting allows, whether it addresses a map,
// and whether it ever tolerates an empty value.
func NewCatalog() *Catalog {
	c := &Catalog{byName: map[string]*Setting{}}

	// node-hostname, node-port, node-name: readable everywhere, settable
	// only through node bootstrap (CONFIG at node scope); never clearable.
	identity := func(name string) *Setting {
		return &Setting{
			Name:           name,
			EmptyForbidden: true,
			cannotSet:      true,
			ops: map[ScopeKind]common.Set[Operation]{
				ClusterScope: ops(Get),
				StripeScope:  ops(Get),
				NodeScope:    ops(Get, Config),
			},
		}
	}
	hostname := identity(NodeHostname)
	hostname.defaultText = staticDefault("localhost")
	c.add(hostname)
	port := identity(NodePort)
	port.defaultText = staticDefault("9410")
	c.add(port)
	nodeName := identity(NodeName)
	nodeName.defaultText = generatedDefault()
	c.add(nodeName)

	// node-group-port, node-bind-address, node-group-bind-address,
	// node-log-dir: read/write at every scope, never clearable, CONFIG
	// only meaningful at node scope.
	writableNoUnset := func(name, def string) *Setting {
		return &Setting{
			Name:           name,
			EmptyForbidden: true,
			defaultText:    staticDefault(def),
			ops: map[ScopeKind]common.Set[Operation]{
				ClusterScope: ops(Get, Set),
				StripeScope:  ops(Get, Set),
				NodeScope:    ops(Get, Set, Config),
			},
		}
	}
	c.add(writableNoUnset(NodeGroupPort, "9430"))
	c.add(writableNoUnset(NodeBindAddress, "0.0.0.0"))
	c.add(writableNoUnset(NodeGroupBindAddress, "0.0.0.0"))
	c.add(writableNoUnset(NodeLogDir, "logs"))

	// node-backup-dir, security-dir, security-audit-log-dir,
	// node-metadata-dir: read/write/clear at every scope, CONFIG only at
	// node scope. Empty value means "clear".
	clearableDirs := func(name string) *Setting {
		return &Setting{
			Name: name,
			ops: map[ScopeKind]common.Set[Operation]{
				ClusterScope: ops(Get, Set, Unset),
				StripeScope:  ops(Get, Set, Unset),
				NodeScope:    ops(Get, Set, Unset, Config),
			},
		}
	}
	c.add(clearableDirs(NodeBackupDir))
	c.add(clearableDirs(SecurityDir))
	c.add(clearableDirs(SecurityAuditLogDir))
	c.add(clearableDirs(NodeMetadataDir))

	// node-config-dir: never settable or readable through the grammar at
	// any scope (it is fixed at process bootstrap, before the expression
	// engine runs).
	c.add(&Setting{Name: NodeConfigDir, EmptyForbidden: true, ops: map[ScopeKind]common.Set[Operation]{}})

	// client-reconnect-window, client-lease-duration, failover-priority,
	// security-ssl-tls, security-whitelist: cluster-wide only, never
	// clearable.
	clusterOnlyNoUnset := func(name string, def *string) *Setting {
		s := &Setting{
			Name:           name,
			EmptyForbidden: true,
			ops: map[ScopeKind]common.Set[Operation]{
				ClusterScope: ops(Get, Set, Config),
			},
		}
		if def != nil {
			s.defaultText = staticDefault(*def)
		}
		return s
	}
	reconnect := "120s"
	lease := "20s"
	sslTLS := "false"
	whitelist := "false"
	c.add(clusterOnlyNoUnset(ClientReconnectWindow, &reconnect))
	c.add(clusterOnlyNoUnset(ClientLeaseDuration, &lease))
	c.add(clusterOnlyNoUnset(FailoverPriority, nil))
	c.add(clusterOnlyNoUnset(SecuritySSLTLS, &sslTLS))
	c.add(clusterOnlyNoUnset(SecurityWhitelist, &whitelist))

	// license-file: write-only metadata, cluster-wide, never read back or
	// cleared through the grammar.
	c.add(&Setting{
		Name:              LicenseFile,
		EmptyForbidden:    true,
		cannotReadOrClear: true,
		ops: map[ScopeKind]common.Set[Operation]{
			ClusterScope: ops(Set),
		},
	})

	// cluster-name, security-authc: cluster-wide, clearable, empty value
	// allowed.
	clusterOnlyClearable := func(name string) *Setting {
		return &Setting{
			Name: name,
			ops: map[ScopeKind]common.Set[Operation]{
				ClusterScope: ops(Get, Set, Unset, Config),
			},
		}
	}
	c.add(clusterOnlyClearable(ClusterName))
	c.add(clusterOnlyClearable(SecurityAuthc))

	// tc-properties, data-dirs: maps, read/write/clear at every scope
	// (whole-map or per-key), CONFIG only at node scope.
	mapAtEveryScope := func(name string) *Setting {
		return &Setting{
			Name:  name,
			IsMap: true,
			ops: map[ScopeKind]common.Set[Operation]{
				ClusterScope: ops(Get, Set, Unset),
				StripeScope:  ops(Get, Set, Unset),
				NodeScope:    ops(Get, Set, Unset, Config),
			},
		}
	}
	c.add(mapAtEveryScope(TCProperties))
	c.add(mapAtEveryScope(DataDirs))

	// offheap-resources: map, cluster-wide only.
	c.add(&Setting{
		Name:  OffheapResources,
		IsMap: true,
		ops: map[ScopeKind]common.Set[Operation]{
			ClusterScope: ops(Get, Set, Unset, Config),
		},
	})

	return c
}

func (c *Catalog) add(s *Setting) {
	c.byName[s.Name] = s
}

// Lookup returns the named setting, or nil if it is not a recognized
// setting name.
func (c *Catalog) Lookup(name string) *Setting {
	return c.byName[name]
}

// All returns every setting in the catalog, in an unspecified order. Used
// by node bootstrap to seed a default value for each one.
func (c *Catalog) All() []*Setting {
	all := make([]*Setting, 0, len(c.byName))
	for _, s := range c.byName {
		all = append(all, s)
	}
	return all
}
