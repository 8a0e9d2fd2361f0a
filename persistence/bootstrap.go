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

package persistence

import (
	"github.com/clusterconf/dynamic-config/common"
	"github.com/clusterconf/dynamic-config/config"
)

// Bootstrap seeds a freshly-joined node's property file with every
// setting's default value at scope, skipping settings that allow no
// operation at that scope and settings that carry no default at all
// (failover-priority, license-file). Existing content is overwritten: it
// is meant to run once, before the node ever accepts expressions.
func Bootstrap(pf *PropertyFile, catalog *config.Catalog, scope config.Scope, namer common.IdentifierSupplier) error {
	var exprs []config.Expression
	for _, s := range catalog.All() {
		if !s.HasAnyOpAt(scope.Kind) {
			continue
		}
		if _, ok := s.Default(namer); !ok {
			continue
		}
		expr, err := config.DefaultExpression(s, scope, namer)
		if err != nil {
			continue
		}
		exprs = append(exprs, expr)
	}
	return pf.Save(exprs)
}
