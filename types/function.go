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

package types

import "fmt"

// Env is the minimal interface Function needs from an environment, broken
// out here to avoid an import cycle between types and env: env.Environment
// satisfies it.
type Env interface {
	Get(name string) (Value, error)
	Set(name string, v Value)
}

// Function is a closure: params/body AST captured at fn* evaluation time
// together with the defining environment. IsMacro marks it as a macro
// (set by defmacro! on a clone; def! leaves it as it is); Name and Meta are purely
// cosmetic/reflective.
type Function struct {
	// Params is the raw binds list exactly as fn* received it, including a
	// literal "&" marker if the function is variadic; env.NewWithBinds
	// interprets it the same way regardless of caller.
	Params  []Symbol
	Body    Value
	Env     Env
	IsMacro bool
	Name    string
	Meta    Value
}

func (*Function) Kind() Kind { return KindFunction }

func (f *Function) String() string {
	if f.Name != "" {
		return fmt.Sprintf("#<function:%s>", f.Name)
	}
	return "#<function>"
}

// Clone returns a shallow copy sharing Env/Body/Params, used by defmacro!
// (to flip IsMacro) and with-meta (to attach new metadata) without
// mutating the original.
func (f *Function) Clone() *Function {
	n := *f
	return &n
}

// NativeCallable is the signature every built-in/host-provided function
// implements. Errors are returned, never panicked; the evaluator does not
// recover panics.
type NativeCallable func(args []Value) (Value, error)

// NativeFunction wraps a host Go function as a callable Value.
type NativeFunction struct {
	Name string
	Fn   NativeCallable
	Meta Value
}

func NewNativeFunction(name string, fn NativeCallable) *NativeFunction {
	return &NativeFunction{Name: name, Fn: fn, Meta: NilValue}
}

func (*NativeFunction) Kind() Kind       { return KindNativeFunction }
func (n *NativeFunction) String() string { return fmt.Sprintf("#<function:%s>", n.Name) }

func (n *NativeFunction) Clone() *NativeFunction {
	c := *n
	return &c
}

// Call invokes the wrapped native function.
func (n *NativeFunction) Call(args []Value) (Value, error) {
	return n.Fn(args)
}

// Metadata is implemented by every variant with-meta/meta may act on:
// Function, NativeFunction, List, Vector, HashMap.
type Metadata interface {
	Value
	GetMeta() Value
	WithMeta(m Value) Value
}

func (f *Function) GetMeta() Value { return orNil(f.Meta) }
func (f *Function) WithMeta(m Value) Value {
	c := f.Clone()
	c.Meta = m
	return c
}

func (n *NativeFunction) GetMeta() Value { return orNil(n.Meta) }
func (n *NativeFunction) WithMeta(m Value) Value {
	c := n.Clone()
	c.Meta = m
	return c
}

func (l *List) GetMeta() Value { return orNil(l.Meta) }
func (l *List) WithMeta(m Value) Value {
	c := &List{Elems: l.Elems, Meta: m}
	return c
}

func (v *Vector) GetMeta() Value { return orNil(v.Meta) }
func (v *Vector) WithMeta(m Value) Value {
	c := &Vector{Elems: v.Elems, Meta: m}
	return c
}

func (m *HashMap) GetMeta() Value { return orNil(m.Meta) }
func (m *HashMap) WithMeta(meta Value) Value {
	c := m.Clone()
	c.Meta = meta
	return c
}

func orNil(v Value) Value {
	if v == nil {
		return NilValue
	}
	return v
}
