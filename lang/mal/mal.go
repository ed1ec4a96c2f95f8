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

// Package mal provides the glue between the reader/evaluator/printer
// packages and a host program: building the root environment, evaluating
// the in-language prelude, and wiring *ARGV*/*host-language*. cmd/mal is
// the only consumer; this package holds no CLI/terminal code of its own.
package mal

import (
	"fmt"

	"github.com/haliteware/malgo/corelib"
	"github.com/haliteware/malgo/env"
	"github.com/haliteware/malgo/eval"
	"github.com/haliteware/malgo/reader"
	"github.com/haliteware/malgo/types"
)

// HostLanguage is bound to *host-language* at startup.
const HostLanguage = "Go (malgo)"

// prelude is evaluated in order at startup, after the core namespace and
// eval are bound.
var prelude = []string{
	`(def! not (fn* (a) (if a false true)))`,
	`(def! load-file (fn* (f) (eval (read-string (str "(do " (slurp f) "\nnil)")))))`,
	`(defmacro! cond (fn* (& xs) (if (> (count xs) 0) (list 'if (first xs) (if (> (count xs) 1) (nth xs 1) (throw "odd number of forms to cond")) (cons 'cond (rest (rest xs)))))))`,
}

// New builds the root environment: core namespace bound, eval bound back
// into the evaluator, prelude evaluated, *host-language* and *ARGV* set.
// argv is bound to *ARGV* verbatim (already stripped of any leading file
// argument by the caller).
func New(argv []string) (*env.Environment, error) {
	root := env.New(nil)
	corelib.Bind(root)

	// eval is bound as a NativeFunction that calls back into the
	// evaluator with the ROOT env, so that a program's own (eval ...) call
	// always runs at top level rather than in whatever local scope invoked
	// it.
	root.Set("eval", types.NewNativeFunction("eval", func(args []types.Value) (types.Value, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("eval: expected 1 argument, got %d", len(args))
		}
		return eval.Eval(args[0], root)
	}))

	for _, src := range prelude {
		if _, err := EvalString(src, root); err != nil {
			return nil, err
		}
	}

	root.Set("*host-language*", types.String(HostLanguage))

	argvVals := make([]types.Value, len(argv))
	for i, a := range argv {
		argvVals[i] = types.String(a)
	}
	root.Set("*ARGV*", types.NewList(argvVals...))

	return root, nil
}

// EvalString reads one form from src and evaluates it in e. Callers
// wanting REPL "blank line" behavior should check for *errs.NoInput
// themselves (reader.ReadStr surfaces it directly; EvalString does not
// swallow it).
func EvalString(src string, e *env.Environment) (types.Value, error) {
	form, err := reader.ReadStr(src)
	if err != nil {
		return nil, err
	}
	return eval.Eval(form, e)
}
