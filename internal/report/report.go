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

// Package report emits boxed-iterator diagnostics.
package report

import (
	"fmt"
	"go/types"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/iterbox/internal/astutil"
	"fillmore-labs.com/iterbox/internal/iterate"
	"fillmore-labs.com/iterbox/internal/site"
)

// category groups iterbox diagnostics for drivers that filter by category.
const category = "performance"

// Boxed emits the diagnostic for a site that triggered the boxing rule.
//
// The message carries the source type name before the destination type name,
// both rendered relative to the pass package, and the short code of the
// source's protocol. Emission is a single report; sites suppressed by a
// same-line nolint comment emit nothing.
func Boxed(p *analysis.Pass, currentFile astutil.CurrentFile, s site.Site, src iterate.Capability) {
	if currentFile.NoLintComment(s.Pos) {
		return
	}

	qual := types.RelativeTo(p.Pkg)

	p.Report(analysis.Diagnostic{
		Pos:      s.Pos,
		End:      s.End,
		Category: category,
		Message: fmt.Sprintf("Iterator of '%s' is boxed when stored as '%s' (ib:%s)",
			types.TypeString(s.Source, qual), types.TypeString(s.Dest, qual), src.Protocol),
	})
}
