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

// Checks represents the enabled classifiers.
type Checks = BitMask[CheckFlags]

// CheckFlags represents specific checks.
type CheckFlags uint8

const (
	// DeclarationCheck enables the classification of variable declarations with initializers.
	DeclarationCheck CheckFlags = 1 << iota

	// AssignmentCheck enables the classification of simple assignments.
	AssignmentCheck
)

// DefaultChecks returns the checks enabled by default.
func DefaultChecks() Checks {
	return NewBitMask(DeclarationCheck | AssignmentCheck)
}

// Behavior holds behavioral options.
type Behavior = BitMask[Config]

// Config represents configuration options for the analyzer.
type Config uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Config = 1 << iota
)

// DefaultBehavior returns the default behavioral options.
func DefaultBehavior() Behavior {
	return NewBitMask[Config]()
}

// DefaultClosers lists the fully qualified names of the interfaces that mark a type as disposable.
func DefaultClosers() []string {
	return []string{"io.Closer"}
}
