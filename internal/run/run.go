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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/iterbox/internal/astutil"
	"fillmore-labs.com/iterbox/internal/boxing"
	"fillmore-labs.com/iterbox/internal/config"
	"fillmore-labs.com/iterbox/internal/iterate"
	"fillmore-labs.com/iterbox/internal/report"
	"fillmore-labs.com/iterbox/internal/site"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the iterbox analyzer's pipeline.
//
// Every node is checked independently against the immutable pass snapshot;
// the pipeline holds no state between nodes, so passes may run concurrently.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("iterbox: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "IterBox")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	// Loop over all files
	for f := range in.Root().Children() {
		file, ok := f.Node().(*ast.File)
		if !ok {
			astutil.InternalError(p, f.Node(), "Unexpected node type: %T", f.Node())

			continue
		}

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if file.Doc != nil && astutil.CommentHasNoLint(file.Doc.List[len(file.Doc.List)-1]) {
			continue
		}

		region := trace.StartRegion(ctx, "CheckFile")
		r.checkFile(p, currentFile, f)
		region.End()
	}

	return nil, nil
}

// checkFile visits the assignment and initializer nodes of one file.
func (r *Options) checkFile(p *analysis.Pass, currentFile astutil.CurrentFile, f inspector.Cursor) {
	types := []ast.Node{
		(*ast.AssignStmt)(nil),
		(*ast.ValueSpec)(nil),
		(*ast.CompositeLit)(nil),
	}

	for c := range f.Preorder(types...) {
		var sites []site.Site

		switch node := c.Node().(type) {
		case *ast.AssignStmt:
			sites = site.FromAssign(p.TypesInfo, node)

		case *ast.ValueSpec:
			sites = site.FromValueSpec(p.TypesInfo, node)

		case *ast.CompositeLit:
			sites = site.FromCompositeLit(p.TypesInfo, node)
		}

		for _, s := range sites {
			r.check(p, currentFile, s)
		}
	}
}

// check classifies one site and reports it when the boxing rule fires.
//
// The source is classified first: assigning a value whose iterator is already
// reference-kind never introduces boxing, so the destination lookup is
// skipped entirely in that case.
func (r *Options) check(p *analysis.Pass, currentFile astutil.CurrentFile, s site.Site) {
	public := s.Public() && !r.Behavior.Enabled(config.ReportExported)
	if public {
		return
	}

	src, srcOK := iterate.Classify(s.Source, r.Protocols)
	if !srcOK || src.Kind() != iterate.KindValue {
		return
	}

	dst, dstOK := iterate.Classify(s.Dest, r.Protocols)
	if !boxing.ShouldReport(src, srcOK, dst, dstOK, public) {
		return
	}

	report.Boxed(p, currentFile, s, src)
}
