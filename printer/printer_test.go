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

package printer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/haliteware/malgo/printer"
	"github.com/haliteware/malgo/types"
)

func TestPrStr_readableStrings(t *testing.T) {
	s := types.String("a\nb\\c\"d")
	assert.Equal(t, `"a\nb\\c\"d"`, printer.PrStr(s, true))
	assert.Equal(t, "a\nb\\c\"d", printer.PrStr(s, false))
}

func TestPrStr_collections(t *testing.T) {
	lst := types.NewList(types.Number(1), types.NewSymbol("x"), types.NewVector(types.True, types.False))
	assert.Equal(t, "(1 x [true false])", printer.PrStr(lst, true))
}

func TestPrStr_hashMapPreservesInsertionOrder(t *testing.T) {
	m := types.NewHashMap()
	m.Set(mustKey("b"), types.Number(2))
	m.Set(mustKey("a"), types.Number(1))
	assert.Equal(t, `{"b" 2 "a" 1}`, printer.PrStr(m, true))
}

func TestPrStr_nilAndKeyword(t *testing.T) {
	assert.Equal(t, "nil", printer.PrStr(types.NilValue, true))
	assert.Equal(t, ":kw", printer.PrStr(types.NewKeyword("kw"), true))
}

func TestJoin(t *testing.T) {
	vals := []types.Value{types.Number(1), types.String("x")}
	assert.Equal(t, `1 "x"`, printer.Join(vals, true, " "))
	assert.Equal(t, "1x", printer.Join(vals, false, ""))
}

func mustKey(s string) types.HashKey {
	k, ok := types.MakeHashKey(types.String(s))
	if !ok {
		panic("mustKey: not a valid key")
	}
	return k
}
