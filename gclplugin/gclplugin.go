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

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	iterbox "fillmore-labs.com/iterbox/analyzer"
)

func init() { register.Plugin("iterbox", New) }

// New decodes rawSettings and wraps the analyzer as a [register.LinterPlugin].
func New(rawSettings any) (register.LinterPlugin, error) {
	settings, err := register.DecodeSettings[Settings](rawSettings)
	if err != nil {
		return nil, err
	}

	return Plugin{settings: settings}, nil
}

// Plugin is the iterbox linter as a [register.LinterPlugin].
type Plugin struct {
	settings Settings
}

// GetLoadMode returns the golangci load mode. Classification needs full type
// information.
func (Plugin) GetLoadMode() string {
	return register.LoadModeTypesInfo
}

// BuildAnalyzers returns the [analysis.Analyzer]s for an iterbox run.
// Generated files are analyzed unless the settings disable it, since
// golangci applies its own generated-file filter afterwards.
func (p Plugin) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	opts := append([]iterbox.Option{iterbox.WithGenerated(true)}, p.settings.Options()...)
	a := iterbox.New(opts...)

	return []*analysis.Analyzer{a}, nil
}
