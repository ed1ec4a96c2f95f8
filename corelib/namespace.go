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

// Package corelib binds the core namespace: the built-in operations
// spanning arithmetic, comparison, sequence/map construction and
// introspection, I/O glue, and reflection.
package corelib

import (
	"github.com/haliteware/malgo/env"
	"github.com/haliteware/malgo/types"
)

// entry is one native binding: a name and the callable it's bound to.
type entry struct {
	name string
	fn   types.NativeCallable
}

// Namespace returns every core-namespace entry, unbound. Bind installs
// them into an environment; tests and the bootstrap use this split so
// individual natives can be exercised without building a full
// environment.
func Namespace() map[string]types.NativeCallable {
	ns := make(map[string]types.NativeCallable)
	for _, group := range [][]entry{
		arithmeticEntries(),
		sequenceEntries(),
		mapEntries(),
		stringIOEntries(),
		atomEntries(),
		reflectEntries(),
	} {
		for _, e := range group {
			ns[e.name] = e.fn
		}
	}
	return ns
}

// Bind installs every core-namespace native into e.
func Bind(e *env.Environment) {
	for name, fn := range Namespace() {
		e.Set(name, types.NewNativeFunction(name, fn))
	}
}
