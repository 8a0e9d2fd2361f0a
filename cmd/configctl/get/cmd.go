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

package get

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

// Cmd implements "configctl get <setting-ref>": print every stored
// expression the query matches (see config.Expression.Matches).
var Cmd = &cobra.Command{
	Use:   "get <setting-ref>",
	Short: "Read configuration values",
	Long:  `Print every stored configuration entry addressed by the given setting reference.`,
	Args:  cobra.ExactArgs(1),
	RunE:  exec,
}

func exec(_ *cobra.Command, args []string) error {
	catalog := config.NewCatalog()
	parser := config.NewParser(catalog)

	query, err := parser.Parse(args[0])
	if err != nil {
		return err
	}

	pf := persistence.New(clusterFile, catalog)
	stored, err := pf.Load()
	if err != nil {
		return err
	}

	found := false
	for _, entry := range stored {
		if query.Matches(entry) {
			log.Info().Str("expression", entry.Text()).Msg("match")
			found = true
		}
	}
	if !found {
		log.Info().Str("query", query.Text()).Msg("no matching entry")
	}
	return nil
}
