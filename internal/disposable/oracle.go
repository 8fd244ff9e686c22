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

package disposable

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/types/typeutil"
)

// Oracle answers the semantic questions the classifiers ask about the code under analysis.
type Oracle interface {
	// StaticType returns the static type of e, or nil when it cannot be resolved.
	StaticType(e ast.Expr) types.Type

	// SymbolKind classifies the symbol an assignment target refers to.
	SymbolKind(e ast.Expr) SymbolKind

	// WellKnownType resolves a fully qualified type name like "io.Closer", or returns nil.
	WellKnownType(name string) types.Type
}

// TypesOracle is an [Oracle] backed by the type checker results of a single package.
type TypesOracle struct {
	pkg  *types.Package
	info *types.Info
}

// NewTypesOracle creates a new [TypesOracle] for the given package.
func NewTypesOracle(pkg *types.Package, info *types.Info) TypesOracle {
	return TypesOracle{pkg: pkg, info: info}
}

// StaticType implements [Oracle].
func (o TypesOracle) StaticType(e ast.Expr) types.Type {
	if e == nil || o.info == nil {
		return nil
	}

	t := o.info.TypeOf(e)
	if t == nil || t == types.Typ[types.Invalid] {
		return nil
	}

	return t
}

// SymbolKind implements [Oracle].
//
// Selectors denoting a field value are classified as [Field], qualified identifiers by the variable
// they refer to. All other expressions are [Other].
func (o TypesOracle) SymbolKind(e ast.Expr) SymbolKind {
	if o.info == nil {
		return Other
	}

	switch e := ast.Unparen(e).(type) {
	case *ast.Ident:
		return kindOf(o.info.ObjectOf(e))

	case *ast.SelectorExpr:
		if sel, ok := o.info.Selections[e]; ok {
			if sel.Kind() == types.FieldVal {
				return Field
			}

			return Other
		}

		return kindOf(o.info.Uses[e.Sel])

	default:
		return Other
	}
}

func kindOf(obj types.Object) SymbolKind {
	v, ok := obj.(*types.Var)
	if !ok {
		return Other
	}

	switch v.Kind() {
	case types.FieldVar:
		return Field

	case types.LocalVar:
		return Local

	case types.ParamVar, types.RecvVar, types.ResultVar:
		return Parameter

	default:
		return Other
	}
}

// WellKnownType implements [Oracle].
//
// The package path is searched in the analyzed package and all of its transitive imports.
func (o TypesOracle) WellKnownType(name string) types.Type {
	if o.pkg == nil {
		return nil
	}

	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return nil
	}

	path, typeName := name[:i], name[i+1:]

	for _, p := range typeutil.Dependencies(o.pkg) {
		if p.Path() != path {
			continue
		}

		if tn, ok := p.Scope().Lookup(typeName).(*types.TypeName); ok {
			return tn.Type()
		}

		return nil
	}

	return nil
}
