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

// Equal implements the language's structural "=":
// List and Vector are interchangeable, HashMaps compare as sets of
// key/value pairs ignoring insertion order, and Functions are never equal
// to anything but themselves by reference.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Boolean:
		y, ok := b.(Boolean)
		return ok && x == y
	case Number:
		y, ok := b.(Number)
		return ok && x == y
	case String:
		y, ok := b.(String)
		return ok && x == y
	case Symbol:
		y, ok := b.(Symbol)
		return ok && x.Name == y.Name
	case Keyword:
		y, ok := b.(Keyword)
		return ok && x.Name == y.Name
	}

	aSeq, aIsSeq := AsSequence(a)
	bSeq, bIsSeq := AsSequence(b)
	if aIsSeq && bIsSeq {
		// Nil counts as an empty sequence for AsSequence, but Nil must
		// still only equal Nil; exclude that combination here.
		_, aNil := a.(Nil)
		_, bNil := b.(Nil)
		if aNil != bNil {
			return false
		}
		if len(aSeq) != len(bSeq) {
			return false
		}
		for i := range aSeq {
			if !Equal(aSeq[i], bSeq[i]) {
				return false
			}
		}
		return true
	}

	switch x := a.(type) {
	case *HashMap:
		y, ok := b.(*HashMap)
		if !ok || len(x.Entries) != len(y.Entries) {
			return false
		}
		for k, v := range x.Entries {
			yv, ok := y.Entries[k]
			if !ok || !Equal(v, yv) {
				return false
			}
		}
		return true
	case *Function:
		y, ok := b.(*Function)
		return ok && x == y
	case *NativeFunction:
		y, ok := b.(*NativeFunction)
		return ok && x == y
	case *Atom:
		y, ok := b.(*Atom)
		return ok && x == y
	case *ExceptionWrapper:
		y, ok := b.(*ExceptionWrapper)
		return ok && Equal(x.Payload, y.Payload)
	}
	return false
}
