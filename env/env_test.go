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

package env_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haliteware/malgo/env"
	"github.com/haliteware/malgo/errs"
	"github.com/haliteware/malgo/types"
)

func TestSetAndGet(t *testing.T) {
	e := env.New(nil)
	e.Set("x", types.Number(1))
	v, err := e.Get("x")
	require.NoError(t, err)
	assert.Equal(t, types.Number(1), v)
}

func TestGetWalksOuterChain(t *testing.T) {
	outer := env.New(nil)
	outer.Set("x", types.Number(1))
	inner := env.New(outer)
	v, err := inner.Get("x")
	require.NoError(t, err)
	assert.Equal(t, types.Number(1), v)
}

func TestInnerShadowsOuter(t *testing.T) {
	outer := env.New(nil)
	outer.Set("x", types.Number(1))
	inner := env.New(outer)
	inner.Set("x", types.Number(2))

	v, err := inner.Get("x")
	require.NoError(t, err)
	assert.Equal(t, types.Number(2), v)

	v, err = outer.Get("x")
	require.NoError(t, err)
	assert.Equal(t, types.Number(1), v)
}

func TestGetUnbound(t *testing.T) {
	e := env.New(nil)
	_, err := e.Get("missing")
	require.Error(t, err)
	var notFound *errs.SymbolNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestTryGet(t *testing.T) {
	e := env.New(nil)
	_, ok := e.TryGet("missing")
	assert.False(t, ok)

	e.Set("x", types.True)
	v, ok := e.TryGet("x")
	assert.True(t, ok)
	assert.Equal(t, types.True, v)
}

func TestNewWithBinds_positional(t *testing.T) {
	e, err := env.NewWithBinds(nil, []types.Symbol{{Name: "a"}, {Name: "b"}},
		[]types.Value{types.Number(1), types.Number(2)})
	require.NoError(t, err)

	v, err := e.Get("a")
	require.NoError(t, err)
	assert.Equal(t, types.Number(1), v)

	v, err = e.Get("b")
	require.NoError(t, err)
	assert.Equal(t, types.Number(2), v)
}

func TestNewWithBinds_variadic(t *testing.T) {
	binds := []types.Symbol{{Name: "a"}, {Name: "&"}, {Name: "rest"}}
	e, err := env.NewWithBinds(nil, binds, []types.Value{types.Number(1), types.Number(2), types.Number(3)})
	require.NoError(t, err)

	v, err := e.Get("a")
	require.NoError(t, err)
	assert.Equal(t, types.Number(1), v)

	v, err = e.Get("rest")
	require.NoError(t, err)
	rest, ok := v.(*types.List)
	require.True(t, ok)
	assert.Equal(t, []types.Value{types.Number(2), types.Number(3)}, rest.Elems)
}

func TestNewWithBinds_variadicNoExtra(t *testing.T) {
	binds := []types.Symbol{{Name: "&"}, {Name: "rest"}}
	e, err := env.NewWithBinds(nil, binds, nil)
	require.NoError(t, err)
	v, err := e.Get("rest")
	require.NoError(t, err)
	rest, ok := v.(*types.List)
	require.True(t, ok)
	assert.Empty(t, rest.Elems)
}

func TestNewWithBinds_arityMismatch(t *testing.T) {
	binds := []types.Symbol{{Name: "a"}, {Name: "b"}}
	_, err := env.NewWithBinds(nil, binds, []types.Value{types.Number(1)})
	require.Error(t, err)

	_, err = env.NewWithBinds(nil, binds, []types.Value{types.Number(1), types.Number(2), types.Number(3)})
	require.Error(t, err)
}

func TestNames(t *testing.T) {
	e := env.New(nil)
	e.Set("a", types.Number(1))
	e.Set("b", types.Number(2))
	names := e.Names()
	assert.ElementsMatch(t, []string{"a", "b"}, names)
}
