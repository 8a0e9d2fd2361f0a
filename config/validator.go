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

import "fmt"

// Validate checks that op may legally be performed on this expression,
// given its setting's catalog entry and the expression's scope and value.
//
// The checks run in a specific, test-derived order:
//
//  1. A key on a setting that is not a map is rejected first.
//  2. A scope that allows no operation at all for this setting wins over
//     every value-shape check.
//  3. GET/UNSET may never carry a non-empty value.
//  4. SET/CONFIG with no value at all always fails generically.
//  5. SET/CONFIG with an empty value fails with the setting-specific
//     message when the setting never tolerates an empty value — this
//     fires even when the scope would otherwise reject the operation
//     outright, so it is checked before the scope/operation check.
//  6. The scope/operation table itself: the "cannot be set"/"cannot be
//     read or cleared" specializations, or the generic "does not allow
//     operation X at Y level".
//  7. SET with an empty value that the setting does tolerate is still
//     rejected, generically: SET always needs real content. CONFIG with a
//     tolerated empty value passes through (it doubles as an initial
//     clear).
//  8. A non-empty SET/CONFIG value for offheap-resources must be shaped
//     as byte quantities (see validateOffheapValue).
func (e Expression) Validate(op Operation) error {
	s := e.Setting
	scope := e.Scope.Kind

	if e.HasKey() && !s.IsMap {
		return invalidInput(e.Text(), fmt.Sprintf("%s is not a map and must not have a key", s.Name))
	}

	if !s.HasAnyOpAt(scope) {
		return invalidInput(e.Text(), fmt.Sprintf("%s does not allow any operation at %s level", s.Name, scope.Level()))
	}

	if (op == Get || op == Unset) && e.ValuePresent && e.Value != "" {
		return invalidInput(e.Text(), fmt.Sprintf("Operation %s must not have a value", op))
	}

	if op == Set || op == Config {
		if !e.ValuePresent {
			return invalidInput(e.Text(), fmt.Sprintf("Operation %s requires a value", op))
		}
		if e.Value == "" && s.EmptyForbidden {
			return invalidInput(e.Text(), fmt.Sprintf("%s requires a value", s.Name))
		}
	}

	if !s.Allows(scope, op) {
		if s.cannotSet && (op == Set || op == Config) {
			return invalidInput(e.Text(), fmt.Sprintf("%s cannot be set at %s level", s.Name, scope.Level()))
		}
		if s.cannotReadOrClear && (op == Get || op == Unset) {
			return invalidInput(e.Text(), fmt.Sprintf("%s cannot be read or cleared", s.Name))
		}
		return invalidInput(e.Text(), fmt.Sprintf("%s does not allow operation %s at %s level", s.Name, op, scope.Level()))
	}

	if op == Set && e.Value == "" {
		return invalidInput(e.Text(), fmt.Sprintf("Operation %s requires a value", op))
	}

	if s.Name == OffheapResources && (op == Set || op == Config) && e.Value != "" {
		if err := validateOffheapValue(e.HasKey(), e.Value); err != nil {
			return invalidInput(e.Text(), err.Error())
		}
	}

	return nil
}
