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

// Package configctl aggregates the get/set/unset/apply/describe
// subcommands that drive the configuration expression engine from the
// command line, the way the teacher's cmd/client package aggregates its
// put/get/delete/list subcommands.
package configctl

import (
	"github.com/spf13/cobra"

	"github.com/clusterconf/dynamic-config/cmd/configctl/apply"
	"github.com/clusterconf/dynamic-config/cmd/configctl/describe"
	"github.com/clusterconf/dynamic-config/cmd/configctl/get"
	"github.com/clusterconf/dynamic-config/cmd/configctl/set"
	"github.com/clusterconf/dynamic-config/cmd/configctl/unset"
)

// Cmd is the "configctl" command, holding every subcommand that reads or
// mutates a cluster's dynamic configuration.
var Cmd = &cobra.Command{
	Use:   "configctl",
	Short: "Inspect and mutate dynamic cluster configuration",
	Long:  `Get, set, unset, apply, and describe dynamic configuration expressions against a cluster's property file.`,
}

func init() {
	Cmd.AddCommand(get.Cmd)
	Cmd.AddCommand(set.Cmd)
	Cmd.AddCommand(unset.Cmd)
	Cmd.AddCommand(apply.Cmd)
	Cmd.AddCommand(describe.Cmd)
}
