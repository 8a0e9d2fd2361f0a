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

// Package topology models the Cluster/Stripe/Node aggregate mutated by the
// config package's Applier. It owns no validation logic of its own: every
// value it stores has already passed the catalog's (scope, operation,
// value-presence) check before the Applier writes it here.
package topology

// Node is a single server process within a Stripe. Every scalar field maps
// to one NODE-scoped setting; the two map fields back MAP-typed settings.
type Node struct {
	Name     string `yaml:"name"`
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`

	BindAddress      string `yaml:"bindAddress"`
	GroupBindAddress string `yaml:"groupBindAddress"`
	GroupPort        int    `yaml:"groupPort"`
	LogDir           string `yaml:"logDir"`

	BackupDir           string `yaml:"backupDir,omitempty"`
	MetadataDir         string `yaml:"metadataDir,omitempty"`
	SecurityDir         string `yaml:"securityDir,omitempty"`
	SecurityAuditLogDir string `yaml:"securityAuditLogDir,omitempty"`

	DataDirs     map[string]string `yaml:"dataDirs,omitempty"`
	TCProperties map[string]string `yaml:"tcProperties,omitempty"`
}

// NewNode builds a Node with its map fields ready to receive entries.
func NewNode(name, hostname string) *Node {
	return &Node{
		Name:         name,
		Hostname:     hostname,
		DataDirs:     map[string]string{},
		TCProperties: map[string]string{},
	}
}
