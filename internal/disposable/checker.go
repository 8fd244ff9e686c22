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

// Package disposable decides whether a value carries a resource that must be explicitly released.
//
// A type is disposable when it is reference-like (pointer, interface, map, channel, function, slice
// or type parameter) and implements one of the configured closer interfaces, [io.Closer] by default.
// Value types are excluded: copies of them can be released independently.
package disposable

import (
	"go/ast"
	"go/types"
	"sync"
)

// Checker classifies types and expressions as disposable.
//
// The closer interfaces are looked up once, on first use, and kept for the lifetime of the Checker.
// A Checker is bound to one package and safe for concurrent use.
type Checker struct {
	oracle  Oracle
	closers func() []*types.Interface
}

// NewChecker creates a [Checker] resolving the named closer interfaces through the [Oracle].
func NewChecker(oracle Oracle, names []string) *Checker {
	return &Checker{
		oracle:  oracle,
		closers: sync.OnceValue(func() []*types.Interface { return resolve(oracle, names) }),
	}
}

func resolve(oracle Oracle, names []string) []*types.Interface {
	var closers []*types.Interface

	for _, name := range names {
		t := oracle.WellKnownType(name)
		if t == nil {
			continue
		}

		if iface, ok := t.Underlying().(*types.Interface); ok && iface.NumMethods() > 0 {
			closers = append(closers, iface)
		}
	}

	return closers
}

// Oracle returns the [Oracle] this checker queries.
func (c *Checker) Oracle() Oracle {
	return c.oracle
}

// Resolved reports whether at least one closer interface could be found.
// When it is false no type is disposable.
func (c *Checker) Resolved() bool {
	return len(c.closers()) > 0
}

// DisposableExpr reports whether the static type of e is disposable.
// Unresolved expressions are not disposable.
func (c *Checker) DisposableExpr(e ast.Expr) bool {
	if e == nil {
		return false
	}

	return c.Disposable(c.oracle.StaticType(e))
}

// Disposable reports whether values of type t must be released explicitly.
func (c *Checker) Disposable(t types.Type) bool {
	if t == nil || !referenceLike(t) {
		return false
	}

	for _, closer := range c.closers() {
		if types.Implements(t, closer) {
			return true
		}
	}

	return false
}

// ReleaseMethod reports whether name is a method of one of the closer interfaces.
func (c *Checker) ReleaseMethod(name string) bool {
	for _, closer := range c.closers() {
		for m := range closer.Methods() {
			if m.Name() == name {
				return true
			}
		}
	}

	return false
}

// referenceLike reports whether t is not a value type.
// The underlying type of a type parameter is its constraint interface.
func referenceLike(t types.Type) bool {
	switch t.Underlying().(type) {
	case *types.Pointer, *types.Interface, *types.Map, *types.Chan, *types.Signature, *types.Slice:
		return true

	default:
		return false
	}
}
