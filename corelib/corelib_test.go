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

package corelib_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haliteware/malgo/corelib"
	"github.com/haliteware/malgo/types"
)

func call(t *testing.T, name string, args ...types.Value) (types.Value, error) {
	t.Helper()
	ns := corelib.Namespace()
	fn, ok := ns[name]
	require.True(t, ok, "native %q not registered", name)
	return fn(args)
}

func TestArithmetic(t *testing.T) {
	v, err := call(t, "+", types.Number(1), types.Number(2), types.Number(3))
	require.NoError(t, err)
	assert.Equal(t, types.Number(6), v)

	v, err = call(t, "-", types.Number(10), types.Number(3))
	require.NoError(t, err)
	assert.Equal(t, types.Number(7), v)

	v, err = call(t, "/", types.Number(10), types.Number(2))
	require.NoError(t, err)
	assert.Equal(t, types.Number(5), v)

	_, err = call(t, "/", types.Number(10), types.Number(0))
	require.Error(t, err)
}

func TestComparison(t *testing.T) {
	v, err := call(t, "<", types.Number(1), types.Number(2))
	require.NoError(t, err)
	assert.Equal(t, types.True, v)

	v, err = call(t, "=", types.NewList(types.Number(1)), types.NewVector(types.Number(1)))
	require.NoError(t, err)
	assert.Equal(t, types.True, v)
}

func TestSequenceOps(t *testing.T) {
	v, err := call(t, "cons", types.Number(1), types.NewList(types.Number(2), types.Number(3)))
	require.NoError(t, err)
	assert.Equal(t, "(1 2 3)", v.String())

	v, err = call(t, "concat", types.NewList(types.Number(1)), types.NewList(types.Number(2), types.Number(3)))
	require.NoError(t, err)
	assert.Equal(t, "(1 2 3)", v.String())

	v, err = call(t, "nth", types.NewList(types.Number(1), types.Number(2)), types.Number(1))
	require.NoError(t, err)
	assert.Equal(t, types.Number(2), v)

	_, err = call(t, "nth", types.NewList(types.Number(1)), types.Number(5))
	require.Error(t, err)

	v, err = call(t, "empty?", types.NewList())
	require.NoError(t, err)
	assert.Equal(t, types.True, v)
}

func TestConj(t *testing.T) {
	v, err := call(t, "conj", types.NewList(types.Number(1), types.Number(2)), types.Number(3), types.Number(4))
	require.NoError(t, err)
	assert.Equal(t, "(4 3 1 2)", v.String())

	v, err = call(t, "conj", types.NewVector(types.Number(1), types.Number(2)), types.Number(3), types.Number(4))
	require.NoError(t, err)
	assert.Equal(t, "[1 2 3 4]", v.String())
}

func TestHashMapOps(t *testing.T) {
	m, err := call(t, "hash-map", types.String("a"), types.Number(1))
	require.NoError(t, err)

	v, err := call(t, "get", m, types.String("a"))
	require.NoError(t, err)
	assert.Equal(t, types.Number(1), v)

	v, err = call(t, "contains?", m, types.String("missing"))
	require.NoError(t, err)
	assert.Equal(t, types.False, v)

	assoc, err := call(t, "assoc", m, types.String("b"), types.Number(2))
	require.NoError(t, err)
	v, err = call(t, "get", assoc, types.String("b"))
	require.NoError(t, err)
	assert.Equal(t, types.Number(2), v)

	// assoc must not mutate the original map.
	v, err = call(t, "get", m, types.String("b"))
	require.NoError(t, err)
	assert.Equal(t, types.NilValue, v)

	dissoc, err := call(t, "dissoc", assoc, types.String("a"))
	require.NoError(t, err)
	v, err = call(t, "contains?", dissoc, types.String("a"))
	require.NoError(t, err)
	assert.Equal(t, types.False, v)
}

func TestAtoms(t *testing.T) {
	a, err := call(t, "atom", types.Number(1))
	require.NoError(t, err)

	v, err := call(t, "deref", a)
	require.NoError(t, err)
	assert.Equal(t, types.Number(1), v)

	_, err = call(t, "reset!", a, types.Number(2))
	require.NoError(t, err)

	v, err = call(t, "deref", a)
	require.NoError(t, err)
	assert.Equal(t, types.Number(2), v)
}

func TestReflection(t *testing.T) {
	v, err := call(t, "symbol?", types.NewSymbol("x"))
	require.NoError(t, err)
	assert.Equal(t, types.True, v)

	v, err = call(t, "keyword", types.String("foo"))
	require.NoError(t, err)
	assert.Equal(t, types.NewKeyword("foo"), v)

	_, err = call(t, "throw", types.String("boom"))
	require.Error(t, err)
}

func TestPrStrAndStr(t *testing.T) {
	v, err := call(t, "pr-str", types.String("a"), types.Number(1))
	require.NoError(t, err)
	assert.Equal(t, types.String(`"a" 1`), v)

	v, err = call(t, "str", types.String("a"), types.Number(1))
	require.NoError(t, err)
	assert.Equal(t, types.String("a1"), v)
}
