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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/closescope/internal/astutil"
	"fillmore-labs.com/closescope/internal/classify"
	"fillmore-labs.com/closescope/internal/config"
	"fillmore-labs.com/closescope/internal/disposable"
	"fillmore-labs.com/closescope/internal/report"
	"fillmore-labs.com/closescope/internal/scope"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the closescope analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("closescope: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	if r.Checks.Empty() {
		return nil, nil
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "CloseScope")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	// The closer interfaces are resolved once for this package, on first use
	checker := disposable.NewChecker(disposable.NewTypesOracle(p.Pkg, p.TypesInfo), r.Closers)

	// Without a closer interface in scope nothing is closable
	if !checker.Resolved() {
		trace.Log(ctx, "closers", "unresolved")

		return nil, nil
	}

	k := classify.New(checker, scope.NewResolver(p.TypesInfo, checker), r.Checks)

	var sink report.Sink

	// Loop over all files
	for f := range in.Root().Children() {
		file, ok := f.Node().(*ast.File)
		if !ok {
			astutil.InternalError(p, f.Node(), "Unexpected root node %T", f.Node())

			continue
		}

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if currentFile.NoLint() {
			continue
		}

		checkFile(ctx, f, k, &sink)

		sink.Flush(ctx, p, currentFile.NoLintComment)
	}

	return nil, nil
}

// checkFile classifies all declarations and assignments in function bodies of a file,
// including function literals.
func checkFile(ctx context.Context, f inspector.Cursor, k classify.Classifier, sink *report.Sink) {
	defer trace.StartRegion(ctx, "Classify").End()

	types := append([]ast.Node{(*ast.FuncDecl)(nil)}, classify.NodeTypes...)

	f.Inspect(types, func(c inspector.Cursor) bool {
		if fun, ok := c.Node().(*ast.FuncDecl); ok {
			// Skip functions with nolint comment
			return fun.Body != nil && (fun.Doc == nil || !astutil.CommentHasNoLint(fun.Doc.List[len(fun.Doc.List)-1]))
		}

		sink.Add(k.Visit(c)...)

		return true
	})
}
