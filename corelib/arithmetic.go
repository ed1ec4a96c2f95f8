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

package corelib

import (
	"github.com/haliteware/malgo/errs"
	"github.com/haliteware/malgo/types"
)

func arithmeticEntries() []entry {
	return []entry{
		{"+", numFold("+", func(a, b int64) int64 { return a + b })},
		{"-", numFold("-", func(a, b int64) int64 { return a - b })},
		{"*", numFold("*", func(a, b int64) int64 { return a * b })},
		{"/", divide},
		{"<", compare("<", func(a, b int64) bool { return a < b })},
		{"<=", compare("<=", func(a, b int64) bool { return a <= b })},
		{">", compare(">", func(a, b int64) bool { return a > b })},
		{">=", compare(">=", func(a, b int64) bool { return a >= b })},
		{"=", equalNative},
	}
}

func asNumber(name string, v types.Value) (int64, error) {
	n, ok := v.(types.Number)
	if !ok {
		return 0, typeError(name, "Number", v)
	}
	return int64(n), nil
}

// numFold left-folds op over two or more Number arguments, so the
// arithmetic natives accept both the two-argument form and longer calls.
func numFold(name string, op func(a, b int64) int64) types.NativeCallable {
	return func(args []types.Value) (types.Value, error) {
		if len(args) < 2 {
			return nil, arityError(name, "at least 2", len(args))
		}
		acc, err := asNumber(name, args[0])
		if err != nil {
			return nil, err
		}
		for _, a := range args[1:] {
			n, err := asNumber(name, a)
			if err != nil {
				return nil, err
			}
			acc = op(acc, n)
		}
		return types.Number(acc), nil
	}
}

func divide(args []types.Value) (types.Value, error) {
	if len(args) != 2 {
		return nil, arityError("/", "2", len(args))
	}
	a, err := asNumber("/", args[0])
	if err != nil {
		return nil, err
	}
	b, err := asNumber("/", args[1])
	if err != nil {
		return nil, err
	}
	if b == 0 {
		return nil, divideByZero()
	}
	return types.Number(a / b), nil
}

func divideByZero() error {
	return typeError("/", "non-zero divisor", types.Number(0))
}

func compare(name string, op func(a, b int64) bool) types.NativeCallable {
	return func(args []types.Value) (types.Value, error) {
		if len(args) != 2 {
			return nil, arityError(name, "2", len(args))
		}
		a, aok := args[0].(types.Number)
		b, bok := args[1].(types.Number)
		if !aok || !bok {
			return nil, &errs.Syntax{Msg: name + ": ordering is defined only on Numbers"}
		}
		return types.Boolean(op(int64(a), int64(b))), nil
	}
}

func equalNative(args []types.Value) (types.Value, error) {
	if len(args) != 2 {
		return nil, arityError("=", "2", len(args))
	}
	return types.Boolean(types.Equal(args[0], args[1])), nil
}
