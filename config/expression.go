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

import "strings"

// Expression is an immutable, parsed configuration directive: a setting
// addressed at a scope, with an optional map key and an optional value.
// ValuePresent distinguishes "no '=' at all" (a GET) from "'=' followed by
// nothing" (a clear, for settings that allow it).
type Expression struct {
	Setting *Setting
	Scope   Scope
	Key     string // only meaningful when Setting.IsMap

	ValuePresent bool
	Value        string
}

// HasKey reports whether this expression addresses a single entry of a map
// setting rather than the whole map.
func (e Expression) HasKey() bool {
	return e.Key != ""
}

// Text renders the expression's canonical textual form, the same shape it
// would have been parsed from.
func (e Expression) Text() string {
	var b strings.Builder
	if prefix := e.Scope.Prefix(); prefix != "" {
		b.WriteString(prefix)
		b.WriteString(".")
	}
	b.WriteString(e.Setting.Name)
	if e.HasKey() {
		b.WriteString(".")
		b.WriteString(e.Key)
	}
	if e.ValuePresent {
		b.WriteString("=")
		b.WriteString(e.Value)
	}
	return b.String()
}

// impliedOperation derives the operation implicit in this expression's
// value presence, per the grammar's eager-validate rule: absent means GET,
// an empty value means UNSET when the setting tolerates it (or SET, which
// will then fail catalog validation, when it does not), and a non-empty
// value means SET wherever the setting allows SET at this scope. Node
// identity settings (hostname, port, name) allow no SET at any scope, only
// CONFIG — their bootstrap write (e.g. "stripe.1.node.1.hostname=foo") must
// still parse, so a non-empty value falls back to CONFIG when the scope
// permits it and SET is not allowed, keeping SET (and its "cannot be set"
// message) as the outcome everywhere else.
func (e Expression) impliedOperation() Operation {
	if !e.ValuePresent {
		return Get
	}
	if e.Value == "" {
		if e.Setting.EmptyForbidden {
			return Set
		}
		return Unset
	}
	if !e.Setting.Allows(e.Scope.Kind, Set) && e.Setting.Allows(e.Scope.Kind, Config) {
		return Config
	}
	return Set
}
