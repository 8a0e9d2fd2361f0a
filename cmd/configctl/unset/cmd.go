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

package unset

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

// Cmd implements "configctl unset <setting-ref>": clear the referenced
// setting, expressed in the grammar as "<setting-ref>=" (an empty value,
// which the parser treats as an UNSET).
var Cmd = &cobra.Command{
	Use:   "unset <setting-ref>",
	Short: "Clear a configuration value",
	Long:  `Clear the referenced setting, for settings whose catalog entry allows UNSET at that scope.`,
	Args:  cobra.ExactArgs(1),
	RunE:  exec,
}

func exec(_ *cobra.Command, args []string) error {
	catalog := config.NewCatalog()
	parser := config.NewParser(catalog)

	expr, err := parser.Parse(args[0] + "=")
	if err != nil {
		return err
	}

	pf := persistence.New(clusterFile, catalog)
	if err := pf.Upsert(expr); err != nil {
		return err
	}

	log.Info().Str("expression", expr.Text()).Msg("unset")
	return nil
}
