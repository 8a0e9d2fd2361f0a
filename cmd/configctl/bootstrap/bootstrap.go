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

// Package bootstrap loads the YAML file describing a cluster's initial
// topology shape, the way the teacher's coordinator command loads
// model.ClusterConfig via viper/mapstructure.
package bootstrap

import (
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/clusterconf/dynamic-config/topology"
)

// NodeConfig describes one node's identity in a bootstrap file.
type NodeConfig struct {
	Name     string `mapstructure:"name"`
	Hostname string `mapstructure:"hostname"`
}

// StripeConfig describes one stripe's nodes in a bootstrap file.
type StripeConfig struct {
	Nodes []NodeConfig `mapstructure:"nodes"`
}

// Config describes a cluster's initial topology shape and starting
// offheap resources.
type Config struct {
	ClusterName      string            `mapstructure:"clusterName"`
	Stripes          []StripeConfig    `mapstructure:"stripes"`
	OffheapResources map[string]string `mapstructure:"offheapResources"`
}

// Load reads and unmarshals the YAML bootstrap file at path.
func Load(path string) (Config, error) {
	cfg := Config{}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return cfg, errors.Wrapf(err, "failed to read bootstrap file %s", path)
	}

	if err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return cfg, errors.Wrap(err, "failed to unmarshal bootstrap file")
	}
	return cfg, nil
}

// BuildCluster materializes cfg's topology shape into a Cluster.
func (cfg Config) BuildCluster() *topology.Cluster {
	stripes := make([]*topology.Stripe, 0, len(cfg.Stripes))
	for _, sc := range cfg.Stripes {
		nodes := make([]*topology.Node, 0, len(sc.Nodes))
		for _, nc := range sc.Nodes {
			nodes = append(nodes, topology.NewNode(nc.Name, nc.Hostname))
		}
		stripes = append(stripes, topology.NewStripe(nodes...))
	}

	cluster := topology.NewCluster(stripes...)
	cluster.Name = cfg.ClusterName
	for k, v := range cfg.OffheapResources {
		cluster.OffheapResources[k] = v
	}
	return cluster
}
