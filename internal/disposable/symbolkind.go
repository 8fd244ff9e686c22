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

// SymbolKind classifies what an identifier refers to.
type SymbolKind uint8

//go:generate go tool stringer -type SymbolKind -linecomment
const (
	// Other is any symbol that is not a variable, a package level variable, or an unresolved expression.
	Other SymbolKind = iota // other

	// Field is a struct field.
	Field // field

	// Local is a local variable.
	Local // local

	// Parameter is a function parameter, result or method receiver.
	Parameter // parameter
)
