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
	"github.com/pkg/errors"

	"github.com/haliteware/malgo/env"
	"github.com/haliteware/malgo/errs"
	"github.com/haliteware/malgo/types"
)

// evalSwap implements swap!: it must call the evaluator to apply the
// function, so it lives here rather than as a plain native -- otherwise
// the native would need to capture Apply as a host closure a second time
// for no benefit.
func evalSwap(args []types.Value, e *env.Environment) (types.Value, error) {
	if len(args) < 2 {
		return nil, arityError("swap!", "at least 2")
	}
	atomVal, err := Eval(args[0], e)
	if err != nil {
		return nil, err
	}
	atom, ok := atomVal.(*types.Atom)
	if !ok {
		return nil, &errs.Syntax{Msg: "swap!: first argument must be an atom"}
	}
	fnVal, err := Eval(args[1], e)
	if err != nil {
		return nil, err
	}
	extra, err := evalSlice(args[2:], e)
	if err != nil {
		return nil, err
	}
	callArgs := append([]types.Value{atom.Value}, extra...)
	// The new value is fully computed before the atom is mutated so a
	// re-entrant deref of the same atom inside fn sees the old value.
	newVal, err := Apply(fnVal, callArgs)
	if err != nil {
		return nil, err
	}
	atom.Value = newVal
	return newVal, nil
}

// evalTry implements try*/catch*. A LanguageException's payload is bound
// verbatim; any other error is wrapped in an ExceptionWrapper around the
// message of its root cause. The handler is evaluated by a nested Eval
// call, not as a tail continuation of the enclosing loop.
func evalTry(args []types.Value, e *env.Environment) (types.Value, error) {
	if len(args) != 1 && len(args) != 2 {
		return nil, arityError("try*", "1 or 2")
	}
	result, err := Eval(args[0], e)
	if err == nil {
		return result, nil
	}
	if len(args) == 1 {
		return nil, err
	}
	catchForm, ok := types.AsSequence(args[1])
	if !ok || len(catchForm) != 3 {
		return nil, &errs.Syntax{Msg: "try*: catch* clause must be (catch* SYM HANDLER)"}
	}
	catchSym, ok := catchForm[0].(types.Symbol)
	if !ok || catchSym.Name != "catch*" {
		return nil, &errs.Syntax{Msg: "try*: second form must start with catch*"}
	}
	sym, ok := catchForm[1].(types.Symbol)
	if !ok {
		return nil, &errs.Syntax{Msg: "try*: catch* binding must be a symbol"}
	}
	handler := catchForm[2]

	payload := exceptionPayload(err)
	child := env.New(e)
	child.Set(sym.Name, payload)
	return Eval(handler, child)
}

// exceptionPayload extracts the language Value a caught error carries: a
// thrown value passes through verbatim, anything else is wrapped.
func exceptionPayload(err error) types.Value {
	if le, ok := err.(*errs.LanguageException); ok {
		if v, ok := le.Value.(types.Value); ok {
			return v
		}
	}
	return &types.ExceptionWrapper{Payload: types.String(errors.Cause(err).Error())}
}
