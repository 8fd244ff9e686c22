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

package gclplugin_test

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	closescope "fillmore-labs.com/closescope/analyzer"
	. "fillmore-labs.com/closescope/gclplugin"
)

const allSettings = `{
	"declarations": true,
	"assignments": false,
	"closers": ["io.Closer", "example.com/pkg.Releaser"]
}`

func TestSettings(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name     string
		settings string
		want     int
	}{
		{"all", allSettings, reflect.TypeFor[Settings]().NumField()},
		{"none", `{}`, 0},
		{"empty_closers", `{"closers": []}`, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dec := json.NewDecoder(strings.NewReader(tc.settings))
			dec.DisallowUnknownFields()

			var s Settings
			if err := dec.Decode(&s); err != nil {
				t.Fatalf("Can't decode settings: %v", err)
			}

			if err := s.Validate(); err != nil {
				t.Fatalf("Invalid settings: %v", err)
			}

			if got := s.Options(); len(got) != tc.want {
				t.Errorf("Got %d options: %s, want %d", len(got), closescope.Options(got).LogValue(), tc.want)
			}
		})
	}
}

func TestInvalidSettings(t *testing.T) {
	t.Parallel()

	s := Settings{Closers: []string{"Closer"}}

	if err := s.Validate(); !errors.Is(err, ErrInvalidSettings) {
		t.Errorf("Validate() = %v, want %v", err, ErrInvalidSettings)
	}
}

func TestPlugin(t *testing.T) {
	t.Parallel()

	p, err := New(map[string]any{"assignments": false})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	analyzers, err := p.BuildAnalyzers()
	if err != nil {
		t.Fatalf("BuildAnalyzers failed: %v", err)
	}

	if len(analyzers) != 1 || analyzers[0].Name != "closescope" {
		t.Errorf("Got analyzers %v, want [closescope]", analyzers)
	}

	if _, err := New(map[string]any{"closers": []any{"Closer"}}); !errors.Is(err, ErrInvalidSettings) {
		t.Errorf("New with invalid closer = %v, want %v", err, ErrInvalidSettings)
	}
}
