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

package gclplugin

import iterbox "fillmore-labs.com/iterbox/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Sync enables checks of the synchronous iteration protocol.
	Sync *bool `json:"sync,omitzero"`
	// Async enables checks of the asynchronous iteration protocol.
	Async *bool `json:"async,omitzero"`
	// Exported enables findings on exported destinations.
	Exported *bool `json:"exported,omitzero"`
	// Generated enables findings in generated files.
	Generated *bool `json:"generated,omitzero"`
}

// Options converts [Settings] into a list of [iterbox.Option] for the iterbox analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []iterbox.Option {
	var opts []iterbox.Option

	opts = appendOption(opts, s.Sync, iterbox.WithSync)
	opts = appendOption(opts, s.Async, iterbox.WithAsync)
	opts = appendOption(opts, s.Exported, iterbox.WithExported)
	opts = appendOption(opts, s.Generated, iterbox.WithGenerated)

	return opts
}

// appendOption appends a non-nil setting to an [iterbox.Option] list.
func appendOption[T any](opts []iterbox.Option, value *T, constructor func(T) iterbox.Option) []iterbox.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
