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

// Setting is one row of the capability matrix: a name, the operations it
// allows at each scope, and the handful of policy flags that drive the
// value-shape and specialized-message rules in the validator.
type Setting struct {
	Name string

	// IsMap marks a setting addressed with an optional ".key" suffix
	// (offheap-resources, data-dirs, tc-properties).
	IsMap bool

	// EmptyForbidden is true for settings that never allow UNSET and so
	// never treat an empty value as "clear" — SET/CONFIG with an empty
	// value is always rejected for them, with the setting-specific
	// "<name> requires a value" message rather than the generic one.
	EmptyForbidden bool

	// cannotSet marks the node-identity settings (hostname, port, name):
	// SET/CONFIG disallowed at CLUSTER/STRIPE scope renders as
	// "<name> cannot be set at <scope> level" instead of the generic
	// "does not allow operation <op> at <scope> level".
	cannotSet bool

	// cannotReadOrClear marks license-file: GET/UNSET disallowed at
	// CLUSTER scope renders as "<name> cannot be read or cleared".
	cannotReadOrClear bool

	ops map[ScopeKind]common.Set[Operation]

	// defaultText, when non-nil, supplies the setting's default value.
	// NODE_NAME's generator must be called fresh every time (never
	// memoized) so each node gets its own random name.
	defaultText func(namer common.IdentifierSupplier) (string, bool)
}

// AllowedAt returns the set of operations permitted at the given scope.
// A nil/empty set means the setting allows nothing at all there.
func (s *Setting) AllowedAt(scope ScopeKind) common.Set[Operation] {
	return s.ops[scope]
}

// Allows reports whether op is permitted at scope.
func (s *Setting) Allows(scope ScopeKind, op Operation) bool {
	set := s.ops[scope]
	return set != nil && set.Contains(op)
}

// HasAnyOpAt reports whether scope allows any operation at all.
func (s *Setting) HasAnyOpAt(scope ScopeKind) bool {
	set := s.ops[scope]
	return set != nil && !set.IsEmpty()
}

// Default renders this setting's default textual value, using namer to mint a fresh identifier when the default is generated
// rather than static. ok is false when the setting has no default at all
// (license-file, failover-priority).
func (s *Setting) Default(namer common.IdentifierSupplier) (value string, ok bool) {
	if s.defaultText == nil {
		return "", false
	}
	return s.defaultText(namer)
}

func ops(operations ...Operation) common.Set[Operation] {
	s := common.NewSet[Operation]()
	for _, o := range operations {
		s.Add(o)
	}
	return s
}

func staticDefault(text string) func(common.IdentifierSupplier) (string, bool) {
	return func(common.IdentifierSupplier) (string, bool) {
		return text, true
	}
}

func generatedDefault() func(common.IdentifierSupplier) (string, bool) {
	return func(namer common.IdentifierSupplier) (string, bool) {
		return "node-" + namer.NewIdentifier(), true
	}
}
