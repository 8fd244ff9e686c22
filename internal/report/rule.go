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

// Package report holds the closescope rule descriptor and collects findings for reporting.
package report

import "go/token"

// Severity is the default severity of a [Rule].
type Severity string

// Error is the severity of findings that should fail a build.
const Error Severity = "error"

// Rule describes a diagnostic rule.
type Rule struct {
	ID               string
	Title            string
	Message          string
	Category         string
	URL              string
	Severity         Severity
	EnabledByDefault bool
}

// LosingScope is the rule for closable values that are not closed before losing scope.
// The message is identical for all findings.
var LosingScope = Rule{
	ID:               "closescope",
	Title:            "Close resources before losing scope",
	Message:          "Closable value is not closed before all references to it go out of scope (cs:dis)",
	Category:         "Reliability",
	URL:              "https://pkg.go.dev/fillmore-labs.com/closescope",
	Severity:         Error,
	EnabledByDefault: true,
}

// Finding is a single violation of a [Rule].
type Finding struct {
	Rule     *Rule
	Pos, End token.Pos
}

// NewFinding creates a [LosingScope] finding spanning [pos, end).
func NewFinding(pos, end token.Pos) Finding {
	return Finding{Rule: &LosingScope, Pos: pos, End: end}
}
