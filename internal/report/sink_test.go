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

package report_test

import (
	"go/token"
	"testing"

	"golang.org/x/tools/go/analysis"

	. "fillmore-labs.com/closescope/internal/report"
)

func TestSinkOrder(t *testing.T) {
	t.Parallel()

	var s Sink

	s.Add(NewFinding(30, 35), NewFinding(10, 20))
	s.Add(NewFinding(10, 15), NewFinding(30, 35))

	got := s.Findings()

	want := []token.Pos{10, 10, 30}
	if len(got) != len(want) {
		t.Fatalf("Got %d findings, want %d", len(got), len(want))
	}

	for i, f := range got {
		if f.Pos != want[i] {
			t.Errorf("Finding %d at %d, want %d", i, f.Pos, want[i])
		}
	}

	if got[0].End != 15 {
		t.Errorf("First finding ends at %d, want 15", got[0].End)
	}

	if again := s.Findings(); len(again) != len(got) {
		t.Errorf("Findings not stable: %d != %d", len(again), len(got))
	}
}

func TestSinkFlush(t *testing.T) {
	t.Parallel()

	var diagnostics []analysis.Diagnostic

	p := &analysis.Pass{Report: func(d analysis.Diagnostic) { diagnostics = append(diagnostics, d) }}

	var s Sink

	s.Add(NewFinding(1, 2), NewFinding(5, 6), NewFinding(3, 4))

	s.Flush(t.Context(), p, func(pos token.Pos) bool { return pos == 5 })

	if s.Len() != 0 {
		t.Errorf("Sink has %d findings after flush, want 0", s.Len())
	}

	if len(diagnostics) != 2 {
		t.Fatalf("Got %d diagnostics, want 2", len(diagnostics))
	}

	for i, pos := range []token.Pos{1, 3} {
		d := diagnostics[i]
		if d.Pos != pos {
			t.Errorf("Diagnostic %d at %d, want %d", i, d.Pos, pos)
		}

		if d.Message != LosingScope.Message || d.Category != LosingScope.ID {
			t.Errorf("Diagnostic %d = %q (%s), want %q (%s)", i, d.Message, d.Category, LosingScope.Message, LosingScope.ID)
		}
	}

	s.Flush(t.Context(), p, nil)

	if len(diagnostics) != 2 {
		t.Errorf("Empty flush reported %d diagnostics", len(diagnostics)-2)
	}
}

func TestRule(t *testing.T) {
	t.Parallel()

	if LosingScope.Severity != Error || !LosingScope.EnabledByDefault || LosingScope.Category != "Reliability" {
		t.Errorf("Unexpected rule descriptor %+v", LosingScope)
	}
}
