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

package config

// ProtocolFlags represents individual iteration protocols.
type ProtocolFlags uint8

const (
	// SyncProtocol enables detection of the synchronous iteration protocol.
	SyncProtocol ProtocolFlags = 1 << iota

	// AsyncProtocol enables detection of the context-based asynchronous iteration protocol.
	AsyncProtocol
)

// Protocols is the set of iteration protocols checked by the analyzer.
type Protocols = BitMask[ProtocolFlags]

// DefaultProtocols returns the protocols checked by default.
func DefaultProtocols() Protocols {
	return NewBitMask(SyncProtocol | AsyncProtocol)
}

// Config represents behavioral options for the analyzer.
type Config uint8

const (
	// IncludeGenerated specifies whether to analyze generated files.
	IncludeGenerated Config = 1 << iota

	// ReportExported specifies whether findings on exported destinations are reported.
	// Exported destinations are exempt by default, since changing their declared
	// type is a breaking API change.
	ReportExported
)

// Behavior holds the enabled behavioral options.
type Behavior = BitMask[Config]

// DefaultBehavior returns the default behavioral options.
func DefaultBehavior() Behavior {
	return NewBitMask[Config]()
}
