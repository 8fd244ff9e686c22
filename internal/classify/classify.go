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

// Package classify decides, per declaration or assignment, whether a closable value
// is bound to a variable without a guaranteed release.
//
// Each visited node yields findings independently of all other nodes, so a [Classifier]
// can be used from multiple goroutines.
package classify

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/closescope/internal/astutil"
	"fillmore-labs.com/closescope/internal/config"
	"fillmore-labs.com/closescope/internal/disposable"
	"fillmore-labs.com/closescope/internal/report"
	"fillmore-labs.com/closescope/internal/scope"
)

// NodeTypes are the node types [Classifier.Visit] handles.
var NodeTypes = []ast.Node{
	(*ast.DeclStmt)(nil),
	(*ast.AssignStmt)(nil),
}

// Classifier routes declarations and assignments to their classification.
type Classifier struct {
	checker  *disposable.Checker
	resolver scope.Resolver
	checks   config.Checks
}

// New creates a new [Classifier].
func New(checker *disposable.Checker, resolver scope.Resolver, checks config.Checks) Classifier {
	return Classifier{checker: checker, resolver: resolver, checks: checks}
}

// Visit classifies the declaration or assignment at c.
func (k Classifier) Visit(c inspector.Cursor) []report.Finding {
	switch n := c.Node().(type) {
	case *ast.DeclStmt:
		if k.checks.Enabled(config.DeclarationCheck) {
			return k.Declaration(c, n)
		}

	case *ast.AssignStmt:
		switch n.Tok {
		case token.DEFINE:
			if k.checks.Enabled(config.DeclarationCheck) {
				return k.ShortDeclaration(c, n)
			}

		case token.ASSIGN:
			if k.checks.Enabled(config.AssignmentCheck) {
				return k.Assignment(c, n)
			}
		}
	}

	return nil
}

// initType returns the static type of the value a target receives.
func (k Classifier) initType(init astutil.Initializer) types.Type {
	oracle := k.checker.Oracle()

	if !init.Tuple() {
		return oracle.StaticType(init.Expr())
	}

	tuple, ok := oracle.StaticType(init.Values[0]).(*types.Tuple)
	if !ok || init.Index >= tuple.Len() {
		return nil
	}

	return tuple.At(init.Index).Type()
}
