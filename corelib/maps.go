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
	"github.com/samber/lo"

	"github.com/haliteware/malgo/types"
)

func mapEntries() []entry {
	return []entry{
		{"hash-map", hashMap},
		{"map?", isMap},
		{"assoc", assoc},
		{"dissoc", dissoc},
		{"get", get},
		{"contains?", contains},
		{"keys", keys},
		{"vals", vals},
	}
}

func toHashKeys(name string, args []types.Value) ([]types.HashKey, error) {
	if len(args)%2 != 0 {
		return nil, arityError(name, "an even number of", len(args))
	}
	keys := make([]types.HashKey, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		k, ok := types.MakeHashKey(args[i])
		if !ok {
			return nil, typeError(name, "String or Keyword key", args[i])
		}
		keys[i/2] = k
	}
	return keys, nil
}

func hashMap(args []types.Value) (types.Value, error) {
	m := types.NewHashMap()
	keys, err := toHashKeys("hash-map", args)
	if err != nil {
		return nil, err
	}
	for i, k := range keys {
		m.Set(k, args[2*i+1])
	}
	return m, nil
}

func isMap(args []types.Value) (types.Value, error) {
	if len(args) != 1 {
		return nil, arityError("map?", "1", len(args))
	}
	_, ok := args[0].(*types.HashMap)
	return types.Boolean(ok), nil
}

func assoc(args []types.Value) (types.Value, error) {
	if len(args) < 1 {
		return nil, arityError("assoc", "at least 1", len(args))
	}
	m, ok := args[0].(*types.HashMap)
	if !ok {
		return nil, typeError("assoc", "HashMap", args[0])
	}
	clone := m.Clone()
	kvKeys, err := toHashKeys("assoc", args[1:])
	if err != nil {
		return nil, err
	}
	for i, k := range kvKeys {
		clone.Set(k, args[1+2*i+1])
	}
	return clone, nil
}

func dissoc(args []types.Value) (types.Value, error) {
	if len(args) < 1 {
		return nil, arityError("dissoc", "at least 1", len(args))
	}
	m, ok := args[0].(*types.HashMap)
	if !ok {
		return nil, typeError("dissoc", "HashMap", args[0])
	}
	removed := make(map[types.HashKey]bool, len(args)-1)
	for _, a := range args[1:] {
		k, ok := types.MakeHashKey(a)
		if !ok {
			return nil, typeError("dissoc", "String or Keyword key", a)
		}
		removed[k] = true
	}
	clone := m.Clone()
	clone.Order = lo.Filter(clone.Order, func(k types.HashKey, _ int) bool { return !removed[k] })
	for k := range removed {
		delete(clone.Entries, k)
	}
	return clone, nil
}

func get(args []types.Value) (types.Value, error) {
	if len(args) != 2 {
		return nil, arityError("get", "2", len(args))
	}
	m, ok := args[0].(*types.HashMap)
	if !ok {
		return types.NilValue, nil
	}
	key, ok := types.MakeHashKey(args[1])
	if !ok {
		return nil, typeError("get", "String or Keyword key", args[1])
	}
	if v, ok := m.Entries[key]; ok {
		return v, nil
	}
	return types.NilValue, nil
}

func contains(args []types.Value) (types.Value, error) {
	if len(args) != 2 {
		return nil, arityError("contains?", "2", len(args))
	}
	m, ok := args[0].(*types.HashMap)
	if !ok {
		return nil, typeError("contains?", "HashMap", args[0])
	}
	key, ok := types.MakeHashKey(args[1])
	if !ok {
		return nil, typeError("contains?", "String or Keyword key", args[1])
	}
	_, found := m.Entries[key]
	return types.Boolean(found), nil
}

func keys(args []types.Value) (types.Value, error) {
	if len(args) != 1 {
		return nil, arityError("keys", "1", len(args))
	}
	m, ok := args[0].(*types.HashMap)
	if !ok {
		return nil, typeError("keys", "HashMap", args[0])
	}
	return types.NewList(lo.Map(m.Order, func(k types.HashKey, _ int) types.Value { return k.Value() })...), nil
}

func vals(args []types.Value) (types.Value, error) {
	if len(args) != 1 {
		return nil, arityError("vals", "1", len(args))
	}
	m, ok := args[0].(*types.HashMap)
	if !ok {
		return nil, typeError("vals", "HashMap", args[0])
	}
	return types.NewList(lo.Map(m.Order, func(k types.HashKey, _ int) types.Value { return m.Entries[k] })...), nil
}
