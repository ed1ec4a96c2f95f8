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

package eval

import (
	"github.com/haliteware/malgo/env"
	"github.com/haliteware/malgo/errs"
	"github.com/haliteware/malgo/types"
)

// evalSpecialForm checks whether name is one of the evaluator's special
// forms and, if so, evaluates it.
//
// Return shape: handled is false if name is not a special form (caller
// falls through to application). When handled, exactly one of (result) or
// (nextAst, nextEnv) is meaningful: a non-nil nextAst means "TCO-continue
// evaluating nextAst in nextEnv"; a nil nextAst means "return result
// directly" (err may still be non-nil, in which case result is ignored).
func evalSpecialForm(name string, args []types.Value, e *env.Environment) (handled bool, result types.Value, nextAst types.Value, nextEnv *env.Environment, err error) {
	switch name {
	case "def!":
		if len(args) != 2 {
			return true, nil, nil, nil, arityError("def!", "2")
		}
		sym, ok := args[0].(types.Symbol)
		if !ok {
			return true, nil, nil, nil, &errs.Syntax{Msg: "def!: first argument must be a symbol"}
		}
		v, err := Eval(args[1], e)
		if err != nil {
			return true, nil, nil, nil, err
		}
		e.Set(sym.Name, v)
		return true, v, nil, nil, nil

	case "defmacro!":
		if len(args) != 2 {
			return true, nil, nil, nil, arityError("defmacro!", "2")
		}
		sym, ok := args[0].(types.Symbol)
		if !ok {
			return true, nil, nil, nil, &errs.Syntax{Msg: "defmacro!: first argument must be a symbol"}
		}
		v, err := Eval(args[1], e)
		if err != nil {
			return true, nil, nil, nil, err
		}
		fn, ok := v.(*types.Function)
		if !ok {
			return true, nil, nil, nil, &errs.Syntax{Msg: "defmacro!: right-hand side must be a function"}
		}
		macro := fn.Clone()
		macro.IsMacro = true
		e.Set(sym.Name, macro)
		return true, macro, nil, nil, nil

	case "let*":
		if len(args) != 2 {
			return true, nil, nil, nil, arityError("let*", "2")
		}
		pairs, ok := types.AsSequence(args[0])
		if !ok || len(pairs)%2 != 0 {
			return true, nil, nil, nil, &errs.Syntax{Msg: "let*: bindings must be an even-length list or vector"}
		}
		child := env.New(e)
		for i := 0; i < len(pairs); i += 2 {
			sym, ok := pairs[i].(types.Symbol)
			if !ok {
				return true, nil, nil, nil, &errs.Syntax{Msg: "let*: binding names must be symbols"}
			}
			v, err := Eval(pairs[i+1], child)
			if err != nil {
				return true, nil, nil, nil, err
			}
			child.Set(sym.Name, v)
		}
		return true, nil, args[1], child, nil

	case "do":
		if len(args) == 0 {
			return true, types.NilValue, nil, nil, nil
		}
		for _, f := range args[:len(args)-1] {
			if _, err := Eval(f, e); err != nil {
				return true, nil, nil, nil, err
			}
		}
		return true, nil, args[len(args)-1], e, nil

	case "if":
		if len(args) != 2 && len(args) != 3 {
			return true, nil, nil, nil, arityError("if", "2 or 3")
		}
		cond, err := Eval(args[0], e)
		if err != nil {
			return true, nil, nil, nil, err
		}
		if types.Truthy(cond) {
			return true, nil, args[1], e, nil
		}
		if len(args) == 3 {
			return true, nil, args[2], e, nil
		}
		return true, types.NilValue, nil, nil, nil

	case "fn*":
		if len(args) != 2 {
			return true, nil, nil, nil, arityError("fn*", "2")
		}
		params, err := bindSymbols(args[0])
		if err != nil {
			return true, nil, nil, nil, err
		}
		fn := &types.Function{
			Params: params,
			Body:   args[1],
			Env:    e,
			Meta:   types.NilValue,
		}
		return true, fn, nil, nil, nil

	case "quote":
		if len(args) != 1 {
			return true, nil, nil, nil, arityError("quote", "1")
		}
		return true, args[0], nil, nil, nil

	case "quasiquote":
		if len(args) != 1 {
			return true, nil, nil, nil, arityError("quasiquote", "1")
		}
		return true, nil, quasiquote(args[0]), e, nil

	case "swap!":
		v, err := evalSwap(args, e)
		return true, v, nil, nil, err

	case "try*":
		v, err := evalTry(args, e)
		return true, v, nil, nil, err

	default:
		return false, nil, nil, nil, nil
	}
}
