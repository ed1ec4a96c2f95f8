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
	"time"

	"github.com/haliteware/malgo/errs"
	"github.com/haliteware/malgo/types"
)

func reflectEntries() []entry {
	return []entry{
		{"symbol", symbol},
		{"symbol?", isSymbol},
		{"keyword", keyword},
		{"keyword?", isKeyword},
		{"nil?", isNil},
		{"true?", isTrue},
		{"false?", isFalse},
		{"string?", isString},
		{"number?", isNumber},
		{"fn?", isFn},
		{"macro?", isMacro},
		{"throw", throw},
		{"meta", meta},
		{"with-meta", withMeta},
		{"time-ms", timeMs},
	}
}

func symbol(args []types.Value) (types.Value, error) {
	if len(args) != 1 {
		return nil, arityError("symbol", "1", len(args))
	}
	s, ok := args[0].(types.String)
	if !ok {
		return nil, typeError("symbol", "String", args[0])
	}
	return types.NewSymbol(string(s)), nil
}

func isSymbol(args []types.Value) (types.Value, error) {
	if len(args) != 1 {
		return nil, arityError("symbol?", "1", len(args))
	}
	_, ok := args[0].(types.Symbol)
	return types.Boolean(ok), nil
}

// keyword converts a String to a Keyword; an existing Keyword passes
// through unchanged.
func keyword(args []types.Value) (types.Value, error) {
	if len(args) != 1 {
		return nil, arityError("keyword", "1", len(args))
	}
	switch v := args[0].(type) {
	case types.Keyword:
		return v, nil
	case types.String:
		return types.NewKeyword(string(v)), nil
	default:
		return nil, typeError("keyword", "String or Keyword", args[0])
	}
}

func isKeyword(args []types.Value) (types.Value, error) {
	if len(args) != 1 {
		return nil, arityError("keyword?", "1", len(args))
	}
	_, ok := args[0].(types.Keyword)
	return types.Boolean(ok), nil
}

func isNil(args []types.Value) (types.Value, error) {
	if len(args) != 1 {
		return nil, arityError("nil?", "1", len(args))
	}
	_, ok := args[0].(types.Nil)
	return types.Boolean(ok), nil
}

func isTrue(args []types.Value) (types.Value, error) {
	if len(args) != 1 {
		return nil, arityError("true?", "1", len(args))
	}
	b, ok := args[0].(types.Boolean)
	return types.Boolean(ok && bool(b)), nil
}

func isFalse(args []types.Value) (types.Value, error) {
	if len(args) != 1 {
		return nil, arityError("false?", "1", len(args))
	}
	b, ok := args[0].(types.Boolean)
	return types.Boolean(ok && !bool(b)), nil
}

func isString(args []types.Value) (types.Value, error) {
	if len(args) != 1 {
		return nil, arityError("string?", "1", len(args))
	}
	_, ok := args[0].(types.String)
	return types.Boolean(ok), nil
}

func isNumber(args []types.Value) (types.Value, error) {
	if len(args) != 1 {
		return nil, arityError("number?", "1", len(args))
	}
	_, ok := args[0].(types.Number)
	return types.Boolean(ok), nil
}

func isFn(args []types.Value) (types.Value, error) {
	if len(args) != 1 {
		return nil, arityError("fn?", "1", len(args))
	}
	switch v := args[0].(type) {
	case *types.Function:
		return types.Boolean(!v.IsMacro), nil
	case *types.NativeFunction:
		return types.True, nil
	default:
		return types.False, nil
	}
}

func isMacro(args []types.Value) (types.Value, error) {
	if len(args) != 1 {
		return nil, arityError("macro?", "1", len(args))
	}
	f, ok := args[0].(*types.Function)
	return types.Boolean(ok && f.IsMacro), nil
}

func throw(args []types.Value) (types.Value, error) {
	if len(args) != 1 {
		return nil, arityError("throw", "1", len(args))
	}
	return nil, &errs.LanguageException{Value: args[0]}
}

func meta(args []types.Value) (types.Value, error) {
	if len(args) != 1 {
		return nil, arityError("meta", "1", len(args))
	}
	m, ok := args[0].(types.Metadata)
	if !ok {
		return types.NilValue, nil
	}
	return m.GetMeta(), nil
}

func withMeta(args []types.Value) (types.Value, error) {
	if len(args) != 2 {
		return nil, arityError("with-meta", "2", len(args))
	}
	m, ok := args[0].(types.Metadata)
	if !ok {
		return nil, typeError("with-meta", "Function, NativeFunction, List, Vector, or HashMap", args[0])
	}
	return m.WithMeta(args[1]), nil
}

func timeMs(args []types.Value) (types.Value, error) {
	if len(args) != 0 {
		return nil, arityError("time-ms", "0", len(args))
	}
	return types.Number(time.Now().UnixMilli()), nil
}
