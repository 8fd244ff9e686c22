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
	"os"
)

func open(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	return nil
}

func openClosure(name string) (err error) {
	f, err := os.Open(name)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return nil
}

func openIf(name string) {
	if f, err := os.Open(name); err == nil {
		defer f.Close()
	}
}

func leak(name string) {
	f, _ := os.Open(name) // want "Closable value is not closed"
	_ = f
}

func nested(name string) {
	f, _ := os.Open(name) // want "Closable value is not closed"
	if f != nil {
		defer f.Close()
	}
}

func declared(name string) {
	var f, err = os.Open(name) // want "Closable value is not closed"
	_, _ = f, err
}

func returned(name string) (*os.File, error) {
	f, err := os.Open(name) //nolint:closescope // the caller closes f
	return f, err
}

func reassignParam(rc io.ReadCloser) {
	rc = create() // want "Closable value is not closed"
	_ = rc
}

func parallel() {
	var x, y io.ReadCloser
	x, y = create(), create() // want "Closable value is not closed"
	defer y.Close()

	_ = x
}

func index(m map[string]io.ReadCloser) {
	m["k"] = create() // want "Closable value is not closed"
}

func (d *dummy) reset() {
	d.s = create()
}

func receive(files <-chan *os.File) {
	select {
	case f := <-files:
		defer f.Close()
	}
}

func reopen(name string) {
	f, _ := os.Open(name)
	defer f.Close()

	f, _ = os.Open(name) // want "Closable value is not closed"
}

func blank(name string) {
	_, _ = os.Open(name)
}

var global io.ReadCloser

func setGlobal() {
	global = create() // want "Closable value is not closed"
}

var handler = func() {
	f, _ := os.Open("handler") // want "Closable value is not closed"
	_ = f
}

type valueCloser struct{}

func (valueCloser) Close() error { return nil }

func values() {
	v := valueCloser{}
	_ = v
}

func generic[T io.Closer](newT func() T) {
	t := newT() // want "Closable value is not closed"
	_ = t
}

// legacy predates the check.
//
//nolint:closescope
func legacy() {
	f, _ := os.Open("legacy")
	_ = f
}
