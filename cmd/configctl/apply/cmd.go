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

package apply

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/clusterconf/dynamic-config/cmd/configctl/bootstrap"
	"github.com/clusterconf/dynamic-config/cmd/flag"
	"github.com/clusterconf/dynamic-config/config"
	"github.com/clusterconf/dynamic-config/persistence"
)

var (
	clusterFile   string
	bootstrapFile string
)

func init() {
	flag.PropertyFile(Cmd, &clusterFile)
	flag.BootstrapFile(Cmd, &bootstrapFile)
}

// Cmd implements "configctl apply": replay every persisted expression, in
// the order they were written, onto a fresh topology built from the
// bootstrap file.
var Cmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply the persisted configuration to the cluster topology",
	Long:  `Replay every persisted expression onto the topology described by --config and report the outcome.`,
	Args:  cobra.NoArgs,
	RunE:  exec,
}

func exec(_ *cobra.Command, _ []string) error {
	if bootstrapFile == "" {
		return errors.New("--config is required")
	}
	bc, err := bootstrap.Load(bootstrapFile)
	if err != nil {
		return err
	}
	cluster := bc.BuildCluster()

	catalog := config.NewCatalog()
	pf := persistence.New(clusterFile, catalog)
	exprs, err := pf.Load()
	if err != nil {
		return err
	}

	for _, expr := range exprs {
		if err := expr.Apply(cluster); err != nil {
			return errors.Wrapf(err, "failed to apply %q", expr.Text())
		}
	}

	log.Info().Int("count", len(exprs)).Msg("applied persisted configuration")
	return nil
}
