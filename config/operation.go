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

// Operation is one of the four actions an Expression can be validated
// against: reading a value, assigning one, clearing one, or supplying one
// at node bootstrap time.
type Operation int

const (
	Get Operation = iota
	Set
	Unset
	Config
)

// String returns the lowercase operation name used verbatim in error
// messages ("Operation get must not have a value", and so on).
func (o Operation) String() string {
	switch o {
	case Get:
		return "get"
	case Set:
		return "set"
	case Unset:
		return "unset"
	case Config:
		return "config"
	default:
		return "unknown"
	}
}
