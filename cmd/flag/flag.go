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

// Package flag centralizes the flags shared by configctl's subcommands, the
// way the teacher's cmd/flag package centralizes the port/address flags
// shared by its service subcommands.
package flag

import "github.com/spf13/cobra"

// PropertyFile binds the --cluster-file flag: the path to the persisted
// property file every subcommand reads and writes.
func PropertyFile(cmd *cobra.Command, conf *string) {
	cmd.Flags().StringVarP(conf, "cluster-file", "f", "cluster.properties", "Path to the persisted configuration property file")
}

// BootstrapFile binds the --config flag: the path to the YAML file
// describing a cluster's initial topology shape.
func BootstrapFile(cmd *cobra.Command, conf *string) {
	cmd.Flags().StringVarP(conf, "config", "c", "", "Path to a YAML bootstrap file describing the cluster topology")
}
