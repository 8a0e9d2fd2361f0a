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

// Duplicates reports whether e and other address exactly the same
// configuration (same setting, same scope, and for map settings the same
// key) — true means they both describe the same slot, regardless of
// whether their values agree.
//
// Two expressions for different settings, scopes, or (for map settings)
// different keys are independent: Duplicates returns (false, nil).
//
// Two expressions that target the same setting and scope but address it
// under incompatible shapes — one with a key and one without, or one a
// bare query and the other an explicit whole-value assignment — can never
// both be honored together and are reported as an error rather than as
// "not a duplicate".
func (e Expression) Duplicates(other Expression) (bool, error) {
	if e.Setting.Name != other.Setting.Name || e.Scope != other.Scope {
		return false, nil
	}

	if e.HasKey() && other.HasKey() {
		return e.Key == other.Key, nil
	}
	if e.HasKey() != other.HasKey() {
		return false, incompatible(e.Text(), other.Text())
	}
	if e.ValuePresent != other.ValuePresent {
		return false, incompatible(e.Text(), other.Text())
	}
	return true, nil
}
