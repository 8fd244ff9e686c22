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

package astutil

import (
	"go/ast"
	"go/token"
	"iter"
)

// Initializer describes the value a declared or assigned target receives.
type Initializer struct {
	// Values is the right-hand side of the declaration or assignment.
	Values []ast.Expr

	// Index is the position of the target on the left-hand side.
	Index int

	// Count is the number of targets on the left-hand side.
	Count int
}

// Tuple reports whether the target receives a component of a single multi-value expression,
// like in f, err := os.Open(name).
func (i Initializer) Tuple() bool {
	return len(i.Values) == 1 && i.Count > 1
}

// Expr returns the expression initializing the target, or nil for tuple components
// and mismatched sides.
func (i Initializer) Expr() ast.Expr {
	if len(i.Values) != i.Count || i.Index >= len(i.Values) {
		return nil
	}

	return i.Values[i.Index]
}

// AllAssigned yields all non-blank assignment targets with their initializers.
func AllAssigned(stmt *ast.AssignStmt) iter.Seq2[ast.Expr, Initializer] {
	return func(yield func(ast.Expr, Initializer) bool) {
		for i, expr := range stmt.Lhs {
			if id, ok := expr.(*ast.Ident); ok && id.Name == "_" {
				continue // blank identifier
			}

			if !yield(expr, Initializer{Values: stmt.Rhs, Index: i, Count: len(stmt.Lhs)}) {
				return
			}
		}
	}
}

// AllDeclared yields all non-blank declared variables that have an initializer.
func AllDeclared(stmt *ast.DeclStmt) iter.Seq2[*ast.Ident, Initializer] {
	decl, ok := stmt.Decl.(*ast.GenDecl)
	if !ok || decl.Tok != token.VAR {
		return func(func(*ast.Ident, Initializer) bool) {}
	}

	return func(yield func(*ast.Ident, Initializer) bool) {
		for _, spec := range decl.Specs {
			vspec, ok := spec.(*ast.ValueSpec)
			if !ok || len(vspec.Values) == 0 {
				continue // no initializer
			}

			for i, id := range vspec.Names {
				if id.Name == "_" {
					continue // blank identifier
				}

				if !yield(id, Initializer{Values: vspec.Values, Index: i, Count: len(vspec.Names)}) {
					return
				}
			}
		}
	}
}
