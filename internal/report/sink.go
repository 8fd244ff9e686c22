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

package report

import (
	"cmp"
	"context"
	"go/token"
	"runtime/trace"
	"slices"

	"golang.org/x/tools/go/analysis"
)

// Sink accumulates findings until they are flushed to the analysis pass.
//
// A Sink belongs to a single pass and is not safe for concurrent use.
type Sink struct {
	findings []Finding
}

// Add records findings.
func (s *Sink) Add(findings ...Finding) {
	s.findings = append(s.findings, findings...)
}

// Len returns the number of pending findings.
func (s *Sink) Len() int {
	return len(s.findings)
}

// Findings returns the pending findings sorted by position, without duplicates.
func (s *Sink) Findings() []Finding {
	findings := slices.Clone(s.findings)

	slices.SortStableFunc(findings, compareFindings)

	return slices.CompactFunc(findings, func(a, b Finding) bool { return compareFindings(a, b) == 0 })
}

func compareFindings(a, b Finding) int {
	if c := cmp.Compare(a.Pos, b.Pos); c != 0 {
		return c
	}

	if c := cmp.Compare(a.End, b.End); c != 0 {
		return c
	}

	return cmp.Compare(a.Rule.ID, b.Rule.ID)
}

// Flush reports all pending findings not suppressed and empties the sink.
// A nil suppressed function suppresses nothing.
func (s *Sink) Flush(ctx context.Context, p *analysis.Pass, suppressed func(token.Pos) bool) {
	defer trace.StartRegion(ctx, "Report").End()

	for _, f := range s.Findings() {
		if suppressed != nil && suppressed(f.Pos) {
			continue
		}

		p.Report(analysis.Diagnostic{
			Pos:      f.Pos,
			End:      f.End,
			Category: f.Rule.ID,
			Message:  f.Rule.Message,
			URL:      f.Rule.URL,
		})
	}

	s.findings = s.findings[:0]
}
