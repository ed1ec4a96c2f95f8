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

package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haliteware/malgo/corelib"
	"github.com/haliteware/malgo/env"
	"github.com/haliteware/malgo/eval"
	"github.com/haliteware/malgo/printer"
	"github.com/haliteware/malgo/reader"
)

// newTestEnv builds a root environment with the core namespace and the two
// prelude forms every scenario below depends on (not, cond); load-file is
// omitted since it touches the filesystem and isn't needed here.
func newTestEnv(t *testing.T) *env.Environment {
	t.Helper()
	e := env.New(nil)
	corelib.Bind(e)
	for _, src := range []string{
		`(def! not (fn* (a) (if a false true)))`,
		`(defmacro! cond (fn* (& xs) (if (> (count xs) 0) (list 'if (first xs) (if (> (count xs) 1) (nth xs 1) (throw "odd number of forms to cond")) (cons 'cond (rest (rest xs)))))))`,
	} {
		_, err := evalString(t, e, src)
		require.NoError(t, err)
	}
	return e
}

func evalString(t *testing.T, e *env.Environment, src string) (string, error) {
	t.Helper()
	form, err := reader.ReadStr(src)
	if err != nil {
		return "", err
	}
	v, err := eval.Eval(form, e)
	if err != nil {
		return "", err
	}
	return printer.PrStr(v, true), nil
}

func TestArithmeticAndLet(t *testing.T) {
	e := newTestEnv(t)
	out, err := evalString(t, e, `(let* (x 5 y (+ x 2)) (* x y))`)
	require.NoError(t, err)
	assert.Equal(t, "35", out)
}

func TestClosureCapture(t *testing.T) {
	e := newTestEnv(t)
	_, err := evalString(t, e, `(def! make-adder (fn* (n) (fn* (x) (+ x n))))`)
	require.NoError(t, err)
	_, err = evalString(t, e, `(def! add5 (make-adder 5))`)
	require.NoError(t, err)
	out, err := evalString(t, e, `(add5 10)`)
	require.NoError(t, err)
	assert.Equal(t, "15", out)
}

func TestQuasiquoteUnquote(t *testing.T) {
	e := newTestEnv(t)
	_, err := evalString(t, e, `(def! a 7)`)
	require.NoError(t, err)
	out, err := evalString(t, e, "`(1 2 ~a)")
	require.NoError(t, err)
	assert.Equal(t, "(1 2 7)", out)
}

func TestQuasiquoteSpliceUnquote(t *testing.T) {
	e := newTestEnv(t)
	_, err := evalString(t, e, `(def! lst (list 2 3))`)
	require.NoError(t, err)
	out, err := evalString(t, e, "`(1 ~@lst 4)")
	require.NoError(t, err)
	assert.Equal(t, "(1 2 3 4)", out)
}

func TestAtomSwap(t *testing.T) {
	e := newTestEnv(t)
	_, err := evalString(t, e, `(def! counter (atom 0))`)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err = evalString(t, e, `(swap! counter (fn* (n) (+ n 1)))`)
		require.NoError(t, err)
	}
	out, err := evalString(t, e, `(deref counter)`)
	require.NoError(t, err)
	assert.Equal(t, "3", out)
}

func TestTryCatch(t *testing.T) {
	e := newTestEnv(t)
	out, err := evalString(t, e, `(try* (throw "oops") (catch* e (str "caught: " e)))`)
	require.NoError(t, err)
	assert.Equal(t, `"caught: oops"`, out)
}

func TestCondMacro(t *testing.T) {
	e := newTestEnv(t)
	out, err := evalString(t, e, `(cond false 1 false 2 true 3)`)
	require.NoError(t, err)
	assert.Equal(t, "3", out)
}

// TestTailCallOptimization would overflow the host stack at (f 100000) if
// function application recursed through Eval instead of looping.
func TestTailCallOptimization(t *testing.T) {
	e := newTestEnv(t)
	_, err := evalString(t, e, `(def! f (fn* (n) (if (= n 0) :done (f (- n 1)))))`)
	require.NoError(t, err)
	out, err := evalString(t, e, `(f 100000)`)
	require.NoError(t, err)
	assert.Equal(t, ":done", out)
}

func TestDefmacroExpansion(t *testing.T) {
	e := newTestEnv(t)
	_, err := evalString(t, e, `(defmacro! unless (fn* (pred a b) (list 'if pred b a)))`)
	require.NoError(t, err)
	out, err := evalString(t, e, `(unless false 7 8)`)
	require.NoError(t, err)
	assert.Equal(t, "7", out)
}

func TestSymbolNotFound(t *testing.T) {
	e := newTestEnv(t)
	_, err := evalString(t, e, `unbound-symbol`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unbound-symbol")
}

func TestApplyNotAFunction(t *testing.T) {
	e := newTestEnv(t)
	_, err := evalString(t, e, `(1 2 3)`)
	require.Error(t, err)
}

func TestVectorAndHashMapSelfEvaluate(t *testing.T) {
	e := newTestEnv(t)
	out, err := evalString(t, e, `[1 (+ 1 1) 3]`)
	require.NoError(t, err)
	assert.Equal(t, "[1 2 3]", out)

	out, err = evalString(t, e, `{"a" (+ 1 1)}`)
	require.NoError(t, err)
	assert.Equal(t, `{"a" 2}`, out)
}
