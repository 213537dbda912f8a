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

// Package astutil carries per-file state for the analysis pass: the token
// file handle, the generated-file marker, and nolint comment handling.
package astutil

import (
	"go/ast"
	"go/token"
	"regexp"
	"slices"
	"strings"
)

// iterbox is the name of the linter in nolint directives.
const iterbox = "iterbox"

// CurrentFile bundles an *[ast.File] with its [token.File] handle.
type CurrentFile struct {
	file      *ast.File
	handle    *token.File
	generated bool
}

// NewCurrentFile resolves file against fset. The result is invalid when the
// file is nil or not part of the set.
func NewCurrentFile(fset *token.FileSet, file *ast.File) CurrentFile {
	if file == nil {
		return CurrentFile{}
	}

	handle := fset.File(file.FileStart)
	if handle == nil {
		return CurrentFile{}
	}

	return CurrentFile{file: file, handle: handle, generated: ast.IsGenerated(file)}
}

// Valid reports whether the file resolved to a handle.
func (c CurrentFile) Valid() bool {
	return c.handle != nil
}

// Generated reports whether the file carries a code-generation marker.
func (c CurrentFile) Generated() bool {
	return c.generated
}

func (c CurrentFile) line(pos token.Pos) int {
	return c.handle.PositionFor(pos, false).Line
}

// NoLintComment reports whether the line containing pos ends in a
// //nolint:iterbox comment.
func (c CurrentFile) NoLintComment(pos token.Pos) bool {
	if c.file == nil {
		return false
	}

	// first comment group starting after the site
	i, _ := slices.BinarySearchFunc(c.file.Comments, pos,
		func(cg *ast.CommentGroup, p token.Pos) int { return int(cg.Pos() - p) })
	if i == len(c.file.Comments) {
		return false
	}

	comment := c.file.Comments[i].List[0]
	if c.line(comment.Pos()) != c.line(pos) {
		return false
	}

	return CommentHasNoLint(comment)
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint reports whether comment is a nolint directive naming
// iterbox or all.
func CommentHasNoLint(comment *ast.Comment) bool {
	matches := nolintPattern.FindStringSubmatch(comment.Text)
	if matches == nil {
		return false
	}

	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == iterbox || l == "all" {
			return true
		}
	}

	return false
}
