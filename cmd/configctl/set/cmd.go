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

package set

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/clusterconf/dynamic-config/cmd/flag"
	"github.com/clusterconf/dynamic-config/config"
	"github.com/clusterconf/dynamic-config/persistence"
)

var clusterFile string

func init() {
	flag.PropertyFile(Cmd, &clusterFile)
}

// Cmd implements "configctl set <expression>": parse and validate the
// expression, then upsert it into the property file.
var Cmd = &cobra.Command{
	Use:   "set <setting-ref>=<value>",
	Short: "Write a configuration value",
	Long:  `Parse a "<setting-ref>=<value>" expression and persist it, replacing the first existing entry it matches.`,
	Args:  cobra.ExactArgs(1),
	RunE:  exec,
}

func exec(_ *cobra.Command, args []string) error {
	catalog := config.NewCatalog()
	parser := config.NewParser(catalog)

	expr, err := parser.Parse(args[0])
	if err != nil {
		return err
	}
	if !expr.ValuePresent {
		return &config.InvalidInputError{Raw: args[0], Reason: "set requires a \"=<value>\" expression"}
	}

	pf := persistence.New(clusterFile, catalog)
	if err := pf.Upsert(expr); err != nil {
		return err
	}

	log.Info().Str("expression", expr.Text()).Msg("set")
	return nil
}
