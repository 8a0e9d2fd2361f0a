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

// Matches reports whether a stored configuration (typically one loaded
// from the persisted property file) is addressed by this expression, used
// to answer GET queries and to find the entry a SET/UNSET should replace.
//
// Scope matches by containment (see Scope.Contains): a broader query scope
// matches a narrower stored scope, but not the reverse. A map setting's key
// must match exactly: a whole-map stored entry (no key) only matches a
// keyless query, and a per-key stored entry only matches a query for that
// same key.
func (e Expression) Matches(stored Expression) bool {
	if e.Setting.Name != stored.Setting.Name {
		return false
	}
	if !e.Scope.Contains(stored.Scope) {
		return false
	}
	if e.Setting.IsMap {
		return e.Key == stored.Key
	}
	return true
}
