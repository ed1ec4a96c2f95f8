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

import "github.com/haliteware/malgo/types"

// swap! is implemented in package eval (it must re-enter the evaluator to
// apply the function); the three natives here are the remainder of the
// atom surface.
func atomEntries() []entry {
	return []entry{
		{"atom", atom},
		{"atom?", isAtom},
		{"deref", deref},
		{"reset!", reset},
	}
}

func atom(args []types.Value) (types.Value, error) {
	if len(args) != 1 {
		return nil, arityError("atom", "1", len(args))
	}
	return types.NewAtom(args[0]), nil
}

func isAtom(args []types.Value) (types.Value, error) {
	if len(args) != 1 {
		return nil, arityError("atom?", "1", len(args))
	}
	_, ok := args[0].(*types.Atom)
	return types.Boolean(ok), nil
}

func deref(args []types.Value) (types.Value, error) {
	if len(args) != 1 {
		return nil, arityError("deref", "1", len(args))
	}
	a, ok := args[0].(*types.Atom)
	if !ok {
		return nil, typeError("deref", "Atom", args[0])
	}
	return a.Value, nil
}

func reset(args []types.Value) (types.Value, error) {
	if len(args) != 2 {
		return nil, arityError("reset!", "2", len(args))
	}
	a, ok := args[0].(*types.Atom)
	if !ok {
		return nil, typeError("reset!", "Atom", args[0])
	}
	a.Value = args[1]
	return a.Value, nil
}
