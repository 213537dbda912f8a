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

// Package iterate classifies the iteration capability of Go types.
//
// A type is iterable when it exposes a parameterless getter returning an
// iterator. Two protocols are recognized: the synchronous protocol with
// getters [Iter] or [Iterator], and the asynchronous protocol with getters
// [AsyncIter] or [AsyncIterator], whose move-next operation takes a
// [context.Context]. Matching is structural over the type's method set, so
// declared interface satisfaction and duck typing are handled identically.
//
// Within a protocol the duck-typed fast-path getter (Iter, AsyncIter) is
// preferred over the interface-satisfaction getter, mirroring how callers
// holding the concrete type reach the cheap iterator while callers holding
// an interface are dispatched to the boxed one.
package iterate

import (
	"go/types"

	"fillmore-labs.com/iterbox/internal/config"
)

// Getter names recognized per protocol, in preference order.
var (
	syncGetters  = [...]string{"Iter", "Iterator"}
	asyncGetters = [...]string{"AsyncIter", "AsyncIterator"}
)

// moveNext is the name of the iterator's advance operation.
const moveNext = "Next"

// currentNames are the accessor names accepted for the split iterator shape.
var currentNames = [...]string{"Value", "Current"}

// Capability describes the iteration protocol satisfied by a type.
type Capability struct {
	// Protocol is the matched protocol. Sync is matched strictly before
	// async; a type satisfying both classifies as sync.
	Protocol Protocol

	// Iterator is the type returned by the protocol's getter.
	Iterator types.Type
}

// Kind reports the storage kind of the capability's iterator type.
func (c Capability) Kind() Kind {
	return KindOf(c.Iterator)
}

// Classify reports whether t satisfies one of the enabled iteration
// protocols and, if so, the capability describing it.
//
// Absent or invalid type information yields no capability. Types that only
// partially match a protocol shape, for example a getter whose result has no
// move-next operation, do not satisfy the protocol.
func Classify(t types.Type, protocols config.Protocols) (Capability, bool) {
	if t == nil || isInvalid(t) {
		return Capability{}, false
	}

	if protocols.Enabled(config.SyncProtocol) {
		if it, ok := iteratorType(t, syncGetters[:], nextSync); ok {
			return Capability{Protocol: Sync, Iterator: it}, true
		}
	}

	if protocols.Enabled(config.AsyncProtocol) {
		if it, ok := iteratorType(t, asyncGetters[:], nextAsync); ok {
			return Capability{Protocol: Async, Iterator: it}, true
		}
	}

	return Capability{}, false
}

// nextMode selects the expected parameter list of the move-next operation.
type nextMode uint8

const (
	nextSync  nextMode = iota // Next()
	nextAsync                 // Next(context.Context)
)

// iteratorType resolves the first getter whose result satisfies the full
// iterator shape. A getter with a non-conforming result falls through to the
// next name.
func iteratorType(t types.Type, getters []string, mode nextMode) (types.Type, bool) {
	for _, getter := range getters {
		fn := lookupMethod(t, getter)
		if fn == nil {
			continue
		}

		sig := fn.Signature()
		if sig.Params().Len() != 0 || sig.Results().Len() != 1 {
			continue
		}

		it := sig.Results().At(0).Type()
		if iteratorShape(it, mode) {
			return it, true
		}
	}

	return nil, false
}

// iteratorShape reports whether it exposes a conforming move-next operation
// and, for the split shape, a current-element accessor.
//
// Two shapes are accepted: the combined shape `Next() (T, bool)` and the
// split shape `Next() bool` with a `Value() T` or `Current() T` accessor.
func iteratorShape(it types.Type, mode nextMode) bool {
	next := lookupMethod(it, moveNext)
	if next == nil {
		return false
	}

	sig := next.Signature()

	params := sig.Params()
	switch mode {
	case nextSync:
		if params.Len() != 0 {
			return false
		}

	case nextAsync:
		if params.Len() != 1 || !isContext(params.At(0).Type()) {
			return false
		}
	}

	results := sig.Results()
	switch results.Len() {
	case 1: // split shape, requires an accessor
		return isBool(results.At(0).Type()) && hasCurrent(it)

	case 2: // combined shape
		return isBool(results.At(1).Type())

	default:
		return false
	}
}

// hasCurrent reports whether it exposes a current-element accessor.
func hasCurrent(it types.Type) bool {
	for _, name := range currentNames {
		fn := lookupMethod(it, name)
		if fn == nil {
			continue
		}

		sig := fn.Signature()
		if sig.Params().Len() == 0 && sig.Results().Len() == 1 {
			return true
		}
	}

	return false
}

// lookupMethod finds an exported method by name in the method set of t,
// including promoted and pointer-receiver methods.
func lookupMethod(t types.Type, name string) *types.Func {
	obj, _, _ := types.LookupFieldOrMethod(t, true, nil, name)

	fn, ok := obj.(*types.Func)
	if !ok {
		return nil
	}

	return fn
}

func isBool(t types.Type) bool {
	b, ok := types.Unalias(t).Underlying().(*types.Basic)

	return ok && b.Info()&types.IsBoolean != 0
}

func isContext(t types.Type) bool {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return false
	}

	obj := named.Obj()

	return obj.Pkg() != nil && obj.Pkg().Path() == "context" && obj.Name() == "Context"
}

func isInvalid(t types.Type) bool {
	b, ok := types.Unalias(t).Underlying().(*types.Basic)

	return ok && b.Kind() == types.Invalid
}
