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

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Set is a generic ordered set, used by the setting catalog to express the
// operations allowed at a given scope.
type Set[T constraints.Ordered] interface {
	Add(t T)
	Remove(t T)
	Contains(t T) bool
	Count() int
	IsEmpty() bool
	GetSorted() []T
	Complement(other Set[T]) Set[T]
}

func NewSet[T constraints.Ordered]() Set[T] {
	return &set[T]{items: map[T]bool{}}
}

func NewSetFrom[T constraints.Ordered](values []T) Set[T] {
	s := NewSet[T]()
	for _, v := range values {
		s.Add(v)
	}
	return s
}

type set[T constraints.Ordered] struct {
	items map[T]bool
}

func (s *set[T]) Add(t T) {
	s.items[t] = true
}

func (s *set[T]) Remove(t T) {
	delete(s.items, t)
}

func (s *set[T]) Contains(t T) bool {
	_, found := s.items[t]
	return found
}

func (s *set[T]) Count() int {
	return len(s.items)
}

func (s *set[T]) IsEmpty() bool {
	return s.Count() == 0
}

// Complement returns a new set holding every element of s not in other.
func (s *set[T]) Complement(other Set[T]) Set[T] {
	res := NewSet[T]()
	for k := range s.items {
		if !other.Contains(k) {
			res.Add(k)
		}
	}
	return res
}

func (s *set[T]) GetSorted() []T {
	r := make([]T, 0, len(s.items))
	for k := range s.items {
		r = append(r, k)
	}
	sort.SliceStable(r, func(i, j int) bool { return r[i] < r[j] })
	return r
}
