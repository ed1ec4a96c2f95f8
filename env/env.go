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

// Package env implements Mal's environment model: nested, lexically-scoped
// symbol tables. Each frame's local bindings live in an adaptive radix
// tree (github.com/kralicky/go-adaptive-radix-tree) keyed on the symbol
// name's bytes, rather than a bare Go map. Lookup still walks the outer
// chain exactly as a map-backed implementation would; the ART only
// changes storage, never semantics.
package env

import (
	art "github.com/kralicky/go-adaptive-radix-tree"

	"github.com/haliteware/malgo/errs"
	"github.com/haliteware/malgo/types"
)

// Environment is one frame of the lookup chain.
type Environment struct {
	outer *Environment
	binds art.Tree
}

// New creates an empty environment whose lookup chain continues into
// outer. outer may be nil for the root environment.
func New(outer *Environment) *Environment {
	return &Environment{outer: outer, binds: art.New()}
}

// NewWithBinds creates a child of outer and binds each name in binds to
// the corresponding value in exprs. Encountering the symbol "&" in binds
// binds the following symbol to a List of the remaining exprs and stops;
// otherwise binds/exprs are zipped positionally. A positional count
// mismatch outside the "&" case is a Syntax error.
func NewWithBinds(outer *Environment, binds []types.Symbol, exprs []types.Value) (*Environment, error) {
	e := New(outer)
	i := 0
	for i < len(binds) {
		if binds[i].Name == "&" {
			if i+1 >= len(binds) {
				return nil, &errs.Syntax{Msg: "'&' in binds list must be followed by a symbol"}
			}
			rest := append([]types.Value(nil), exprs[min(i, len(exprs)):]...)
			e.Set(binds[i+1].Name, types.NewList(rest...))
			return e, nil
		}
		if i >= len(exprs) {
			return nil, &errs.Syntax{Msg: "not enough arguments to bind " + binds[i].Name}
		}
		e.Set(binds[i].Name, exprs[i])
		i++
	}
	if i != len(exprs) {
		return nil, &errs.Syntax{Msg: "too many arguments, expected " + itoa(len(binds))}
	}
	return e, nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// Set binds name to v in this frame only, overwriting any existing local
// binding. Environments are never mutated via any other path (no
// removal).
func (e *Environment) Set(name string, v types.Value) {
	e.binds.Insert(art.Key(name), v)
}

// find returns the innermost frame (starting at e) that has a local
// binding for name, or nil if none does.
func (e *Environment) find(name string) *Environment {
	for cur := e; cur != nil; cur = cur.outer {
		if _, found := cur.binds.Search(art.Key(name)); found {
			return cur
		}
	}
	return nil
}

// Get resolves name by walking the chain outermost-last (innermost frame
// first); the first match wins. Returns *errs.SymbolNotFound if name is
// unbound anywhere in the chain.
func (e *Environment) Get(name string) (types.Value, error) {
	if frame := e.find(name); frame != nil {
		v, _ := frame.binds.Search(art.Key(name))
		return v.(types.Value), nil
	}
	return nil, &errs.SymbolNotFound{Name: name}
}

// TryGet resolves name like Get but reports absence via ok rather than an
// error.
func (e *Environment) TryGet(name string) (types.Value, bool) {
	frame := e.find(name)
	if frame == nil {
		return nil, false
	}
	v, _ := frame.binds.Search(art.Key(name))
	return v.(types.Value), true
}

// Names returns every locally-bound name in this frame in ART iteration
// order. Nothing outside the tests calls it.
func (e *Environment) Names() []string {
	var names []string
	e.binds.ForEach(func(node art.Node) bool {
		names = append(names, string(node.Key()))
		return true
	})
	return names
}
