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

// Package boxing holds the decision rule for boxed-iterator findings.
package boxing

import "fillmore-labs.com/iterbox/internal/iterate"

// ShouldReport decides whether a boxed-iterator finding must be emitted.
//
// A finding requires a source iterating through a value-kind iterator, a
// destination whose declared type iterates through a reference-kind iterator,
// and a destination outside the package's exported surface. Every call to the
// destination's getter then allocates, since the declared type dispatches to
// the reference-kind iterator regardless of the concrete value's own iterator.
//
// The rule is not symmetric: swapping source and destination suppresses the
// finding.
func ShouldReport(src iterate.Capability, srcOK bool, dst iterate.Capability, dstOK bool, public bool) bool {
	return srcOK && src.Kind() == iterate.KindValue &&
		dstOK && dst.Kind() == iterate.KindReference &&
		!public
}
