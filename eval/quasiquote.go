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

import "github.com/haliteware/malgo/types"

// quasiquote rewrites x into the data structure it describes, returning an
// AST to be evaluated normally (the caller TCO-continues with the result).
func quasiquote(x types.Value) types.Value {
	switch form := x.(type) {
	case *types.List:
		if _, ok := headSymbol(form, "unquote"); ok {
			return form.Elems[1]
		}
		return quasiquoteFoldList(form.Elems)
	case *types.Vector:
		return types.NewList(types.NewSymbol("vec"), quasiquoteFoldList(form.Elems))
	case types.Symbol:
		return types.NewList(types.NewSymbol("quote"), x)
	case *types.HashMap:
		return types.NewList(types.NewSymbol("quote"), x)
	default:
		return x
	}
}

// quasiquoteFoldList folds elems right-to-left into an accumulator
// starting at the empty List, splicing any splice-unquote elements via
// concat and wrapping everything else via cons+quasiquote.
func quasiquoteFoldList(elems []types.Value) types.Value {
	var acc types.Value = types.NewList()
	for i := len(elems) - 1; i >= 0; i-- {
		e := elems[i]
		if seq, ok := e.(types.Sequence); ok {
			if _, ok := headSymbol(seq, "splice-unquote"); ok {
				acc = types.NewList(types.NewSymbol("concat"), seq.Items()[1], acc)
				continue
			}
		}
		acc = types.NewList(types.NewSymbol("cons"), quasiquote(e), acc)
	}
	return acc
}

// headSymbol reports whether seq is a non-empty List/Vector whose first
// element is the Symbol named name.
func headSymbol(seq types.Sequence, name string) (types.Symbol, bool) {
	elems := seq.Items()
	if len(elems) == 0 {
		return types.Symbol{}, false
	}
	sym, ok := elems[0].(types.Symbol)
	if !ok || sym.Name != name || len(elems) != 2 {
		return types.Symbol{}, false
	}
	return sym, true
}
