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

// Package site normalizes the syntactic contexts in which a boxing-inducing
// assignment can be introduced: direct assignments, variable declarations
// with a type annotation, and keyed struct literal elements.
package site

import (
	"go/token"
	"go/types"
)

// TargetKind identifies the destination symbol variant of a site.
type TargetKind uint8

const (
	// Local is a function-scoped variable. Locals have no accessibility, so
	// they are never gated.
	Local TargetKind = iota

	// PackageVar is a package-level variable.
	PackageVar

	// StructField is a field of a struct type.
	StructField

	// Unresolved is a destination without a symbol, such as an index or
	// dereference expression. The accessibility gate is skipped, not treated
	// as exported.
	Unresolved
)

// Site is a normalized assignment of a source expression into a typed
// destination. Sites are derived fresh per syntax node and carry no state
// beyond one classification pass.
type Site struct {
	// Source is the static type of the assigned expression.
	Source types.Type

	// Dest is the declared type of the destination.
	Dest types.Type

	// Pos and End anchor the diagnostic: the left-hand expression for direct
	// assignments, the type annotation for declarations, the key for struct
	// literal elements.
	Pos, End token.Pos

	// Target is the destination symbol variant.
	Target TargetKind

	// Exported records whether the destination symbol has an exported name.
	// Only meaningful for [PackageVar] and [StructField] targets.
	Exported bool
}

// Public reports whether the destination is part of the package's exported
// surface.
func (s Site) Public() bool {
	switch s.Target {
	case PackageVar, StructField:
		return s.Exported

	default:
		return false
	}
}
