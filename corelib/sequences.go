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
	"fmt"

	"github.com/samber/lo"

	"github.com/haliteware/malgo/errs"
	"github.com/haliteware/malgo/eval"
	"github.com/haliteware/malgo/types"
)

func sequenceEntries() []entry {
	return []entry{
		{"list", list},
		{"list?", isList},
		{"vector", vector},
		{"vector?", isVector},
		{"sequential?", isSequential},
		{"empty?", isEmpty},
		{"count", count},
		{"cons", cons},
		{"concat", concat},
		{"nth", nth},
		{"first", first},
		{"rest", rest},
		{"conj", conj},
		{"seq", seq},
		{"vec", vec},
		{"apply", apply},
		{"map", mapFn},
	}
}

func list(args []types.Value) (types.Value, error) {
	return types.NewList(args...), nil
}

func isList(args []types.Value) (types.Value, error) {
	if len(args) != 1 {
		return nil, arityError("list?", "1", len(args))
	}
	_, ok := args[0].(*types.List)
	return types.Boolean(ok), nil
}

func vector(args []types.Value) (types.Value, error) {
	return types.NewVector(args...), nil
}

func isVector(args []types.Value) (types.Value, error) {
	if len(args) != 1 {
		return nil, arityError("vector?", "1", len(args))
	}
	_, ok := args[0].(*types.Vector)
	return types.Boolean(ok), nil
}

func isSequential(args []types.Value) (types.Value, error) {
	if len(args) != 1 {
		return nil, arityError("sequential?", "1", len(args))
	}
	switch args[0].(type) {
	case *types.List, *types.Vector:
		return types.True, nil
	default:
		return types.False, nil
	}
}

func isEmpty(args []types.Value) (types.Value, error) {
	if len(args) != 1 {
		return nil, arityError("empty?", "1", len(args))
	}
	elems, ok := types.AsSequence(args[0])
	if !ok {
		return nil, typeError("empty?", "sequence", args[0])
	}
	return types.Boolean(len(elems) == 0), nil
}

func count(args []types.Value) (types.Value, error) {
	if len(args) != 1 {
		return nil, arityError("count", "1", len(args))
	}
	if _, ok := args[0].(types.Nil); ok {
		return types.Number(0), nil
	}
	elems, ok := types.AsSequence(args[0])
	if !ok {
		return nil, typeError("count", "sequence", args[0])
	}
	return types.Number(len(elems)), nil
}

func cons(args []types.Value) (types.Value, error) {
	if len(args) != 2 {
		return nil, arityError("cons", "2", len(args))
	}
	rest, ok := types.AsSequence(args[1])
	if !ok {
		return nil, typeError("cons", "sequence", args[1])
	}
	out := make([]types.Value, 0, len(rest)+1)
	out = append(out, args[0])
	out = append(out, rest...)
	return types.NewList(out...), nil
}

// concat flattens N sequences into one List; built on lo.Flatten, which
// is exactly this operation for a slice-of-slices.
func concat(args []types.Value) (types.Value, error) {
	nested := make([][]types.Value, len(args))
	for i, a := range args {
		elems, ok := types.AsSequence(a)
		if !ok {
			return nil, typeError("concat", "sequence", a)
		}
		nested[i] = elems
	}
	return types.NewList(lo.Flatten(nested)...), nil
}

func nth(args []types.Value) (types.Value, error) {
	if len(args) != 2 {
		return nil, arityError("nth", "2", len(args))
	}
	elems, ok := types.AsSequence(args[0])
	if !ok {
		return nil, typeError("nth", "sequence", args[0])
	}
	idx, ok := args[1].(types.Number)
	if !ok {
		return nil, typeError("nth", "Number index", args[1])
	}
	if int(idx) < 0 || int(idx) >= len(elems) {
		return nil, errs.NewHostError(fmt.Sprintf("nth: index %d out of range (length %d)", int(idx), len(elems)))
	}
	return elems[idx], nil
}

func first(args []types.Value) (types.Value, error) {
	if len(args) != 1 {
		return nil, arityError("first", "1", len(args))
	}
	elems, ok := types.AsSequence(args[0])
	if !ok || len(elems) == 0 {
		return types.NilValue, nil
	}
	return elems[0], nil
}

func rest(args []types.Value) (types.Value, error) {
	if len(args) != 1 {
		return nil, arityError("rest", "1", len(args))
	}
	elems, ok := types.AsSequence(args[0])
	if !ok || len(elems) == 0 {
		return types.NewList(), nil
	}
	return types.NewList(elems[1:]...), nil
}

// conj prepends to a List (each extra argument ends up closer to the
// front than the last) and appends to a Vector, in argument order.
func conj(args []types.Value) (types.Value, error) {
	if len(args) < 1 {
		return nil, arityError("conj", "at least 1", len(args))
	}
	switch coll := args[0].(type) {
	case *types.List:
		out := append([]types.Value(nil), lo.Reverse(args[1:])...)
		out = append(out, coll.Elems...)
		return types.NewList(out...), nil
	case *types.Vector:
		out := append([]types.Value(nil), coll.Elems...)
		out = append(out, args[1:]...)
		return types.NewVector(out...), nil
	default:
		return nil, typeError("conj", "List or Vector", args[0])
	}
}

func seq(args []types.Value) (types.Value, error) {
	if len(args) != 1 {
		return nil, arityError("seq", "1", len(args))
	}
	switch v := args[0].(type) {
	case types.Nil:
		return types.NilValue, nil
	case *types.List:
		if len(v.Elems) == 0 {
			return types.NilValue, nil
		}
		return v, nil
	case *types.Vector:
		if len(v.Elems) == 0 {
			return types.NilValue, nil
		}
		return types.NewList(v.Elems...), nil
	case types.String:
		if len(v) == 0 {
			return types.NilValue, nil
		}
		chars := lo.Map([]rune(string(v)), func(r rune, _ int) types.Value {
			return types.String(string(r))
		})
		return types.NewList(chars...), nil
	default:
		return nil, typeError("seq", "Nil, String, List, or Vector", args[0])
	}
}

func vec(args []types.Value) (types.Value, error) {
	if len(args) != 1 {
		return nil, arityError("vec", "1", len(args))
	}
	if v, ok := args[0].(*types.Vector); ok {
		return v, nil
	}
	elems, ok := types.AsSequence(args[0])
	if !ok {
		return nil, typeError("vec", "sequence", args[0])
	}
	return types.NewVector(elems...), nil
}

// apply calls fn with the leading args followed by the elements of the
// final (sequence) argument spread in place.
func apply(args []types.Value) (types.Value, error) {
	if len(args) < 2 {
		return nil, arityError("apply", "at least 2", len(args))
	}
	fn := args[0]
	spread, ok := types.AsSequence(args[len(args)-1])
	if !ok {
		return nil, typeError("apply", "sequence as last argument", args[len(args)-1])
	}
	callArgs := append([]types.Value(nil), args[1:len(args)-1]...)
	callArgs = append(callArgs, spread...)
	return eval.Apply(fn, callArgs)
}

// mapFn applies fn to each element of a sequence, returning a List. A
// plain loop rather than lo.Map, because the per-element call can fail
// and the loop must short-circuit with that error; lo.Map has no error
// channel.
func mapFn(args []types.Value) (types.Value, error) {
	if len(args) != 2 {
		return nil, arityError("map", "2", len(args))
	}
	elems, ok := types.AsSequence(args[1])
	if !ok {
		return nil, typeError("map", "sequence", args[1])
	}
	out := make([]types.Value, len(elems))
	for i, el := range elems {
		v, err := eval.Apply(args[0], []types.Value{el})
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return types.NewList(out...), nil
}
