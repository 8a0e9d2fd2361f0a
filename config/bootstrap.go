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

package config

import "github.com/clusterconf/dynamic-config/common"

// DefaultExpression builds the Expression representing setting's default
// value at scope, using namer to mint a fresh identifier for generated
// defaults such as node-name. It is used to seed a freshly bootstrapped
// node's property file with every setting's starting value.
//
// Node-identity settings (hostname, port, name) can never be SET, only
// supplied through node bootstrap, so their default is validated as a
// CONFIG; every other setting's default is validated as a SET.
func DefaultExpression(setting *Setting, scope Scope, namer common.IdentifierSupplier) (Expression, error) {
	text, _ := setting.Default(namer)

	op := Set
	if setting.cannotSet {
		op = Config
	}

	expr := Expression{Setting: setting, Scope: scope, ValuePresent: true, Value: text}
	if err := expr.Validate(op); err != nil {
		return Expression{}, err
	}
	return expr, nil
}
