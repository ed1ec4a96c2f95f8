// This file is part of malgo.
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

// Package errs defines the distinct error kinds that flow out of the
// reader, environment, and evaluator: a small set of typed errors that
// pkg/errors.Wrap/Cause can carry context on and recover without
// string-matching messages.
package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// EOF signals the reader ran out of tokens mid-form (e.g. an unterminated
// list or string).
type EOF struct {
	Msg string
}

func (e *EOF) Error() string { return e.Msg }

// NoInput signals the source contained only whitespace or comments; the
// REPL silently skips it rather than reporting an error.
type NoInput struct{}

func (*NoInput) Error() string { return "no input" }

// Syntax is a structural reader error carrying the byte offset it was
// detected at.
type Syntax struct {
	Offset int
	Msg    string
}

func (e *Syntax) Error() string { return fmt.Sprintf("%s (offset %d)", e.Msg, e.Offset) }

// SymbolNotFound signals an unbound symbol in the environment chain.
type SymbolNotFound struct {
	Name string
}

func (e *SymbolNotFound) Error() string { return fmt.Sprintf("'%s' not found", e.Name) }

// LanguageException carries an arbitrary language Value raised by throw.
// Value is declared as interface{ String() string } rather than
// types.Value, so package errs does not import types; eval/corelib assert
// the concrete types.Value back out.
type LanguageException struct {
	Value interface{ String() string }
}

func (e *LanguageException) Error() string { return e.Value.String() }

// HostError wraps any other host-level failure (I/O, integer parse, divide
// by zero, arity mismatch). It is always constructed via NewHostError or
// WrapHostError so the wrapped cause survives errors.Cause.
type HostError struct {
	cause error
}

func NewHostError(msg string) *HostError {
	return &HostError{cause: errors.New(msg)}
}

func WrapHostError(err error, msg string) *HostError {
	return &HostError{cause: errors.Wrap(err, msg)}
}

func (e *HostError) Error() string { return e.cause.Error() }
func (e *HostError) Cause() error  { return e.cause }
func (e *HostError) Unwrap() error { return e.cause }
