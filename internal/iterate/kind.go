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

package iterate

import "go/types"

// Kind classifies how instances of an iterator type are stored.
type Kind uint8

const (
	// KindUnknown indicates the storage kind could not be determined.
	KindUnknown Kind = iota

	// KindValue indicates instances are copied by value. Returning one from a
	// concrete method requires no allocation.
	KindValue

	// KindReference indicates instances are shared by reference. An iterator
	// of this kind forces a heap allocation whenever a value-kind iterator is
	// returned through it.
	KindReference
)

// KindOf classifies the storage kind of a type.
func KindOf(t types.Type) Kind {
	if t == nil {
		return KindUnknown
	}

	switch u := types.Unalias(t).Underlying().(type) {
	case *types.Interface, *types.Pointer, *types.Map, *types.Chan, *types.Slice, *types.Signature:
		return KindReference

	case *types.Struct, *types.Array:
		return KindValue

	case *types.Basic:
		if u.Kind() == types.Invalid {
			return KindUnknown
		}

		return KindValue

	default:
		return KindUnknown
	}
}
