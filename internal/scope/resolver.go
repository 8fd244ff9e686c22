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

// Package scope decides whether a declaration or assignment sits in a scoped-acquisition context,
// that is, whether the statement list directly containing it guarantees release of the variable
// through a deferred call.
//
// The check is strictly local: only the immediate parent statement list is considered, and the
// deferred release is recognized syntactically.
package scope

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

// Releaser reports whether a method name releases a resource.
type Releaser interface {
	ReleaseMethod(name string) bool
}

// Resolver finds deferred releases of variables.
type Resolver struct {
	info     *types.Info
	releaser Releaser
}

// NewResolver creates a new [Resolver].
func NewResolver(info *types.Info, releaser Releaser) Resolver {
	return Resolver{info: info, releaser: releaser}
}

// Scoped reports whether the statement at c is immediately enclosed in a statement list
// that releases the variable id refers to on exit. Bindings in the init statement of an if
// or the communication of a select case belong to the body list.
//
// Recognized are
//
//	defer v.Close()
//
// following the statement, and
//
//	defer func() { ... v.Close() ... }()
//
// anywhere in the list, since the closure reads v only when the surrounding function returns.
func (r Resolver) Scoped(c inspector.Cursor, id *ast.Ident) bool {
	if id == nil {
		return false
	}

	v, ok := r.info.ObjectOf(id).(*types.Var)
	if !ok {
		return false
	}

	list := statementList(c)
	stmt := c.Node()

	for _, s := range list {
		d, ok := s.(*ast.DeferStmt)
		if !ok {
			continue
		}

		if d.Pos() > stmt.End() && r.releases(d.Call, v) {
			return true
		}

		if r.releasesInClosure(d.Call, v) {
			return true
		}
	}

	return false
}

// statementList returns the statements of the construct immediately enclosing c.
func statementList(c inspector.Cursor) []ast.Stmt {
	switch kind, _ := c.ParentEdge(); kind {
	case edge.BlockStmt_List:
		return c.Parent().Node().(*ast.BlockStmt).List

	case edge.CaseClause_Body:
		return c.Parent().Node().(*ast.CaseClause).Body

	case edge.CommClause_Body, edge.CommClause_Comm:
		// case f := <-files: binds f for the clause body
		return c.Parent().Node().(*ast.CommClause).Body

	case edge.IfStmt_Init:
		// if f, err := open(); err == nil { defer f.Close() }
		return c.Parent().Node().(*ast.IfStmt).Body.List

	default:
		return nil
	}
}

// releases reports whether call is v.Close() or another release method call on v.
func (r Resolver) releases(call *ast.CallExpr, v *types.Var) bool {
	sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr)
	if !ok || !r.releaser.ReleaseMethod(sel.Sel.Name) {
		return false
	}

	id, ok := ast.Unparen(sel.X).(*ast.Ident)

	return ok && r.info.Uses[id] == v
}

// releasesInClosure reports whether call invokes a function literal releasing v.
func (r Resolver) releasesInClosure(call *ast.CallExpr, v *types.Var) bool {
	lit, ok := ast.Unparen(call.Fun).(*ast.FuncLit)
	if !ok {
		return false
	}

	found := false

	ast.Inspect(lit.Body, func(n ast.Node) bool {
		if found {
			return false
		}

		if call, ok := n.(*ast.CallExpr); ok && r.releases(call, v) {
			found = true
		}

		return !found
	})

	return found
}
