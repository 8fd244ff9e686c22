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
	"fillmore-labs.com/closescope/internal/report"
)

// Declaration classifies the declarators of a var declaration statement at c.
//
// Declarators without an initializer are never reported.
func (k Classifier) Declaration(c inspector.Cursor, stmt *ast.DeclStmt) []report.Finding {
	var findings []report.Finding

	for id, init := range astutil.AllDeclared(stmt) {
		if f, ok := k.declarator(c, id, init); ok {
			findings = append(findings, f)
		}
	}

	return findings
}

// ShortDeclaration classifies the variables of a short variable declaration at c.
//
// Redeclared variables are classified like new ones.
func (k Classifier) ShortDeclaration(c inspector.Cursor, stmt *ast.AssignStmt) []report.Finding {
	var findings []report.Finding

	for lhs, init := range astutil.AllAssigned(stmt) {
		id, ok := lhs.(*ast.Ident)
		if !ok {
			continue
		}

		if f, ok := k.declarator(c, id, init); ok {
			findings = append(findings, f)
		}
	}

	return findings
}

func (k Classifier) declarator(c inspector.Cursor, id *ast.Ident, init astutil.Initializer) (report.Finding, bool) {
	if !k.checker.Disposable(k.initType(init)) {
		return report.Finding{}, false
	}

	if k.resolver.Scoped(c, id) {
		return report.Finding{}, false
	}

	return report.NewFinding(id.Pos(), id.End()), true
}
