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

package gclplugin

import (
	"errors"
	"fmt"
	"strings"

	closescope "fillmore-labs.com/closescope/analyzer"
)

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Declarations enables checks of variable declarations.
	Declarations *bool `json:"declarations,omitzero"`
	// Assignments enables checks of assignments.
	Assignments *bool `json:"assignments,omitzero"`
	// Closers lists the fully qualified names of interfaces marking closable types.
	Closers []string `json:"closers,omitzero"`
}

// ErrInvalidSettings is returned for settings that can't be applied.
var ErrInvalidSettings = errors.New("invalid closescope settings")

// Validate checks that all closer names are fully qualified.
func (s Settings) Validate() error {
	for _, name := range s.Closers {
		if i := strings.LastIndexByte(name, '.'); i <= 0 || i == len(name)-1 {
			return fmt.Errorf("%w: closer %q is not a qualified type name", ErrInvalidSettings, name)
		}
	}

	return nil
}

// Options converts [Settings] into a list of [closescope.Option] for the closescope analyzer.
// It processes settings and applies them only when explicitly set.
func (s Settings) Options() []closescope.Option {
	var opts []closescope.Option

	opts = appendOption(opts, s.Declarations, closescope.WithDeclarations)
	opts = appendOption(opts, s.Assignments, closescope.WithAssignments)

	if len(s.Closers) > 0 {
		opts = append(opts, closescope.WithClosers(s.Closers...))
	}

	return opts
}

// appendOption appends a non-nil setting to a [closescope.Option] list.
func appendOption[T any](opts []closescope.Option, value *T, constructor func(T) closescope.Option) []closescope.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
