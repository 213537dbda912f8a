// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

// Package analyzer implements the iterbox static analysis pass.
//
// # Overview
//
// IterBox detects assignments that store a value whose iterator is a cheap
// value type into a destination whose declared type hands out its iterator
// through an interface or pointer. After such an assignment, every iteration
// performed through the destination allocates the iterator on the heap,
// silently losing the benefit of the value-type iterator.
//
// # Example
//
//	type Iterator[T any] interface {
//		Next() bool
//		Value() T
//	}
//
//	type Iterable[T any] interface {
//		Iterator() Iterator[T]
//	}
//
//	// Slice iterates without allocation through Iter and satisfies
//	// Iterable[int] for callers that need the interface.
//	type Slice struct{ xs []int }
//
//	func (s Slice) Iter() SliceIter            { return SliceIter{xs: s.xs} }
//	func (s Slice) Iterator() Iterator[int]    { it := s.Iter(); return &it }
//
//	var rows Iterable[int] = Slice{xs: data} // iterbox: every rows.Iterator() call allocates
//
// Callers holding Slice reach the allocation-free SliceIter; callers holding
// rows are dispatched to the boxed interface iterator.
//
// # Checked Contexts
//
// The analyzer inspects:
//
//   - Direct assignments: x = y
//   - Variable declarations with a type annotation: var x T = y
//   - Keyed struct literal elements: T{F: y}
//
// Destinations on the exported package surface are exempt, since changing
// their declared type is a breaking API change. Use [WithExported] to report
// them anyway.
package analyzer
