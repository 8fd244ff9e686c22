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

package classify

import (
	"go/ast"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/closescope/internal/astutil"
	"fillmore-labs.com/closescope/internal/disposable"
	"fillmore-labs.com/closescope/internal/report"
)

// Assignment classifies the targets of a simple assignment at c.
//
// Fields are exempt, since their owner is responsible for closing them. Targets that can't be
// resolved to a field are reported unless a deferred release is in place. A single target is
// reported at the assignment, targets of a parallel assignment each at themselves.
func (k Classifier) Assignment(c inspector.Cursor, stmt *ast.AssignStmt) []report.Finding {
	var findings []report.Finding

	for lhs, init := range astutil.AllAssigned(stmt) {
		if !k.checker.Disposable(k.initType(init)) {
			continue
		}

		if k.checker.Oracle().SymbolKind(lhs) == disposable.Field {
			continue
		}

		if id, ok := ast.Unparen(lhs).(*ast.Ident); ok && k.resolver.Scoped(c, id) {
			continue
		}

		var anchor ast.Node = stmt
		if init.Count > 1 {
			anchor = lhs
		}

		findings = append(findings, report.NewFinding(anchor.Pos(), anchor.End()))
	}

	return findings
}
