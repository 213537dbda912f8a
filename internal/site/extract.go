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

package site

import (
	"go/ast"
	"go/token"
	"go/types"
)

// FromAssign extracts sites from a plain assignment statement.
//
// Only `=` assignments are considered: a `:=` definition declares its type
// from the source expression, so no iterator kind mismatch can be introduced.
// Tuple assignments carry no per-destination expression type and are
// discarded as unresolvable.
func FromAssign(info *types.Info, assign *ast.AssignStmt) []Site {
	if assign.Tok != token.ASSIGN || len(assign.Lhs) != len(assign.Rhs) {
		return nil
	}

	var sites []Site

	for i, lhs := range assign.Lhs {
		src := info.TypeOf(assign.Rhs[i])
		if src == nil {
			continue
		}

		s, ok := destination(info, lhs)
		if !ok {
			continue
		}

		s.Source = src
		sites = append(sites, s)
	}

	return sites
}

// destination resolves the left-hand expression of an assignment into a
// partial [Site] with the source type left unset.
func destination(info *types.Info, lhs ast.Expr) (Site, bool) {
	var obj types.Object

	switch e := lhs.(type) {
	case *ast.Ident:
		if e.Name == "_" {
			return Site{}, false
		}

		obj = info.ObjectOf(e)

	case *ast.SelectorExpr:
		obj = info.ObjectOf(e.Sel)
	}

	s := Site{Pos: lhs.Pos(), End: lhs.End(), Target: Unresolved}

	v, ok := obj.(*types.Var)
	if !ok {
		// Index, dereference and similar destinations carry no symbol; analysis
		// proceeds against the expression's static type.
		s.Dest = info.TypeOf(lhs)

		return s, s.Dest != nil
	}

	s.Dest = v.Type()
	s.Exported = v.Exported()

	switch {
	case v.IsField():
		s.Target = StructField

	case v.Pkg() != nil && v.Parent() == v.Pkg().Scope():
		s.Target = PackageVar

	default:
		s.Target = Local
	}

	return s, true
}

// FromValueSpec extracts sites from a variable declaration with an explicit
// type annotation. Package-level declarations are the member form and gated
// on the exported name; locals are always analyzed.
func FromValueSpec(info *types.Info, spec *ast.ValueSpec) []Site {
	if spec.Type == nil || len(spec.Values) != len(spec.Names) {
		return nil
	}

	dest := info.TypeOf(spec.Type)
	if dest == nil {
		return nil
	}

	var sites []Site

	for i, name := range spec.Names {
		if name.Name == "_" {
			continue
		}

		src := info.TypeOf(spec.Values[i])
		if src == nil {
			continue
		}

		target := Local
		if v, ok := info.Defs[name].(*types.Var); ok && v.Pkg() != nil && v.Parent() == v.Pkg().Scope() {
			target = PackageVar
		}

		sites = append(sites, Site{
			Source:   src,
			Dest:     dest,
			Pos:      spec.Type.Pos(),
			End:      spec.Type.End(),
			Target:   target,
			Exported: name.IsExported(),
		})
	}

	return sites
}

// FromCompositeLit extracts sites from keyed struct literal elements.
//
// The destination type is taken from the resolved field object, never from
// the literal's type syntax, so aliased and embedded field types resolve
// correctly.
func FromCompositeLit(info *types.Info, lit *ast.CompositeLit) []Site {
	var sites []Site

	for _, elt := range lit.Elts {
		kv, ok := elt.(*ast.KeyValueExpr)
		if !ok {
			continue
		}

		key, ok := kv.Key.(*ast.Ident)
		if !ok {
			continue
		}

		field, ok := info.ObjectOf(key).(*types.Var)
		if !ok || !field.IsField() {
			continue
		}

		src := info.TypeOf(kv.Value)
		if src == nil {
			continue
		}

		sites = append(sites, Site{
			Source:   src,
			Dest:     field.Type(),
			Pos:      key.Pos(),
			End:      key.End(),
			Target:   StructField,
			Exported: field.Exported(),
		})
	}

	return sites
}
