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

// Package analyzer implements the closescope static analysis pass.
//
// # Overview
//
// closescope reports local variables holding a closable value, a value of a pointer, interface or
// other reference-like type implementing [io.Closer], when the code does not guarantee the value
// is closed before the variable goes out of scope.
//
// # Example
//
// Reported:
//
//	func size(name string) (int64, error) {
//	    f, err := os.Open(name)  // f is never closed
//	    if err != nil {
//	        return 0, err
//	    }
//	    fi, err := f.Stat()
//	    ...
//	}
//
// Accepted:
//
//	func size(name string) (int64, error) {
//	    f, err := os.Open(name)
//	    if err != nil {
//	        return 0, err
//	    }
//	    defer f.Close()
//	    ...
//	}
//
// # Rules
//
// A declaration with an initializer, or an assignment, of a closable value is accepted when the
// statement list directly containing it defers the release of the variable, either as
// `defer v.Close()` after the statement or as a deferred function literal calling `v.Close()`.
// Assignments to struct fields are exempt, since the owning struct is responsible for closing them.
// Declarations without an initializer are never reported.
//
// The check is syntactic and one level deep: a release in a nested block, or ownership passed
// on by returning the value, is not recognized. Use a `//nolint:closescope` comment to
// suppress a finding.
//
// # Flags
//
//   - -closer: comma-separated list of interfaces marking closable types (default io.Closer)
//   - -declarations: check declarations (default true)
//   - -assignments: check assignments (default true)
//   - -generated: check generated files (default false)
package analyzer
