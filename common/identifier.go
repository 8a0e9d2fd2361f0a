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

package common

import "github.com/google/uuid"

// IdentifierSupplier mints identifiers for settings whose default value is
// generated rather than static (node-name's "node-<random>"). Modeled as an
// interface so tests can inject a deterministic supplier
// instead of depending on a process-global random source.
type IdentifierSupplier interface {
	NewIdentifier() string
}

type randomIdentifierSupplier struct{}

// RandomIdentifierSupplier returns a supplier that mints a fresh random
// identifier on every call. It must never be memoized: a memoized default
// would hand every node the same generated name.
func RandomIdentifierSupplier() IdentifierSupplier {
	return randomIdentifierSupplier{}
}

func (randomIdentifierSupplier) NewIdentifier() string {
	return uuid.New().String()[:8]
}
