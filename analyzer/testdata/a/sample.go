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

package a

import (
	"io"
	"strings"
)

type dummy struct {
	s io.ReadCloser
}

func newDummy() *dummy {
	d := &dummy{}

	// almost correct usage: the owner of d.s must close it later
	d.s = create()

	// correct usage: both declarators are released
	a, b := create(), create()
	defer a.Close()
	defer b.Close()

	// correct usage: a previously declared variable is released
	var c io.ReadCloser
	c = create()
	defer c.Close()

	// incorrect usage: no release
	e := create() // want "Closable value is not closed"
	_ = e

	// non-closable values are ignored
	sb := &strings.Builder{}
	var sb2 *strings.Builder
	sb2 = &strings.Builder{}
	_, _ = sb, sb2

	return d
}

func create() io.ReadCloser {
	return nil // only the type matters
}

func method() {
	stream := strings.NewReader("")
	rc := io.NopCloser(stream) // want "Closable value is not closed"
	_ = rc
}
