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

// Package eval implements the Mal evaluator: special-form dispatch, the
// TCO loop, macro expansion, quasiquote rewriting, and the try*/catch*
// exception protocol.
package eval

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/haliteware/malgo/env"
	"github.com/haliteware/malgo/errs"
	"github.com/haliteware/malgo/printer"
	"github.com/haliteware/malgo/types"
)

// debugSymbol is the sentinel binding checked before every EVAL step.
const debugSymbol = "DEBUG-EVAL"

// Eval reduces ast in e, looping rather than recursing on every tail
// position so that let*, do, if, function application, and macro
// expansion never grow the host call stack with the number of tail
// steps.
func Eval(ast types.Value, e *env.Environment) (types.Value, error) {
	for {
		if v, ok := e.TryGet(debugSymbol); ok && types.Truthy(v) {
			fmt.Fprintln(os.Stdout, "EVAL:", printer.PrStr(ast, true))
		}

		switch form := ast.(type) {
		case types.Symbol:
			return e.Get(form.Name)

		case *types.Vector:
			elems, err := evalSlice(form.Elems, e)
			if err != nil {
				return nil, err
			}
			return &types.Vector{Elems: elems, Meta: types.NilValue}, nil

		case *types.HashMap:
			nm := types.NewHashMap()
			for _, k := range form.Order {
				v, err := Eval(form.Entries[k], e)
				if err != nil {
					return nil, err
				}
				nm.Set(k, v)
			}
			return nm, nil

		case *types.List:
			if len(form.Elems) == 0 {
				return form, nil
			}

			if sym, ok := form.Elems[0].(types.Symbol); ok {
				handled, result, nextAst, nextEnv, err := evalSpecialForm(sym.Name, form.Elems[1:], e)
				if handled {
					if err != nil {
						return nil, err
					}
					if nextAst == nil {
						return result, nil
					}
					ast, e = nextAst, nextEnv
					continue
				}
			}

			head, err := Eval(form.Elems[0], e)
			if err != nil {
				return nil, err
			}

			if fn, ok := head.(*types.Function); ok && fn.IsMacro {
				expanded, err := applyFunction(fn, form.Elems[1:])
				if err != nil {
					return nil, err
				}
				ast = expanded
				continue
			}

			args, err := evalSlice(form.Elems[1:], e)
			if err != nil {
				return nil, err
			}

			switch fn := head.(type) {
			case *types.NativeFunction:
				return fn.Call(args)
			case *types.Function:
				childEnv, body, err := enterFunction(fn, args)
				if err != nil {
					return nil, err
				}
				ast, e = body, childEnv
				continue
			default:
				return nil, errors.New("First element of list is not a function: " + printer.PrStr(head, true))
			}

		default:
			// Nil, Boolean, Number, String, Keyword, *Function,
			// *NativeFunction, *Atom, *ExceptionWrapper self-evaluate.
			return ast, nil
		}
	}
}

func evalSlice(forms []types.Value, e *env.Environment) ([]types.Value, error) {
	out := make([]types.Value, len(forms))
	for i, f := range forms {
		v, err := Eval(f, e)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// enterFunction builds the child environment for a Function application
// and returns it together with the body AST to TCO-continue with.
func enterFunction(fn *types.Function, args []types.Value) (*env.Environment, types.Value, error) {
	outer, ok := fn.Env.(*env.Environment)
	if !ok {
		return nil, nil, errors.New("function captured an environment of unexpected type")
	}
	childEnv, err := env.NewWithBinds(outer, fn.Params, args)
	if err != nil {
		return nil, nil, err
	}
	return childEnv, fn.Body, nil
}

// applyFunction fully evaluates a Function call to a value (not a tail
// continuation); used for macro expansion and by Apply for the corelib
// apply/map natives.
func applyFunction(fn *types.Function, args []types.Value) (types.Value, error) {
	childEnv, body, err := enterFunction(fn, args)
	if err != nil {
		return nil, err
	}
	return Eval(body, childEnv)
}

// Apply fully invokes any callable value (Function or NativeFunction)
// with already-evaluated args, used by corelib's apply/map/swap!-adjacent
// natives that must produce a final value rather than a tail AST.
func Apply(fn types.Value, args []types.Value) (types.Value, error) {
	switch f := fn.(type) {
	case *types.Function:
		return applyFunction(f, args)
	case *types.NativeFunction:
		return f.Call(args)
	default:
		return nil, errors.New("not a function: " + printer.PrStr(fn, true))
	}
}

// bindSymbols takes fn*'s raw params form (a List or Vector of Symbols, possibly
// containing a single "&" marker) and returns it as the []types.Symbol
// slice Function.Params and env.NewWithBinds expect.
func bindSymbols(params types.Value) ([]types.Symbol, error) {
	elems, ok := types.AsSequence(params)
	if !ok {
		return nil, errors.New("fn* parameter list must be a list or vector")
	}
	syms := make([]types.Symbol, len(elems))
	for i, el := range elems {
		s, ok := el.(types.Symbol)
		if !ok {
			return nil, errors.New("fn* parameters must be symbols")
		}
		syms[i] = s
	}
	return syms, nil
}

func arityError(form string, want string) error {
	return &errs.Syntax{Msg: fmt.Sprintf("%s: expected %s arguments", form, want)}
}
