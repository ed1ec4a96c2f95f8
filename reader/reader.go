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

// Package reader turns Mal source text into a single AST value: string ->
// token stream (tokenizer.go) -> recursive-descent parser (this file).
package reader

import (
	"strconv"
	"strings"

	"github.com/haliteware/malgo/errs"
	"github.com/haliteware/malgo/types"
)

// ReadStr reads one top-level form from src. It returns *errs.NoInput if
// src is empty, whitespace, or comment-only.
func ReadStr(src string) (types.Value, error) {
	tokens, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, &errs.NoInput{}
	}
	c := &cursor{tokens: tokens}
	v, err := readForm(c)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func readForm(c *cursor) (types.Value, error) {
	tok, ok := c.peek()
	if !ok {
		return nil, &errs.EOF{Msg: "unexpected EOF"}
	}

	switch {
	case tok.Text == "(":
		return readSeq(c, "(", ")", func(elems []types.Value) types.Value { return types.NewList(elems...) })
	case tok.Text == "[":
		return readSeq(c, "[", "]", func(elems []types.Value) types.Value { return types.NewVector(elems...) })
	case tok.Text == "{":
		return readHashMap(c)
	case tok.Text == ")" || tok.Text == "]" || tok.Text == "}":
		return nil, &errs.Syntax{Offset: tok.Offset, Msg: "unexpected '" + tok.Text + "'"}
	case tok.Text == "'":
		return readWrapped(c, "quote")
	case tok.Text == "`":
		return readWrapped(c, "quasiquote")
	case tok.Text == "~":
		return readWrapped(c, "unquote")
	case tok.Text == "~@":
		return readWrapped(c, "splice-unquote")
	case tok.Text == "@":
		return readWrapped(c, "deref")
	case tok.Text == "^":
		return readWithMeta(c)
	case strings.HasPrefix(tok.Text, `"`):
		return readString(c)
	case strings.HasPrefix(tok.Text, ":"):
		c.next()
		return types.NewKeyword(tok.Text[1:]), nil
	default:
		return readAtom(c)
	}
}

func readWrapped(c *cursor, symbolName string) (types.Value, error) {
	c.next() // consume the reader-macro token
	inner, err := readForm(c)
	if err != nil {
		return nil, err
	}
	return types.NewList(types.NewSymbol(symbolName), inner), nil
}

// readWithMeta handles `^meta form` -> (with-meta form meta): meta is read
// first but appears LAST in the produced list.
func readWithMeta(c *cursor) (types.Value, error) {
	c.next() // consume '^'
	meta, err := readForm(c)
	if err != nil {
		return nil, err
	}
	form, err := readForm(c)
	if err != nil {
		return nil, err
	}
	return types.NewList(types.NewSymbol("with-meta"), form, meta), nil
}

func readSeq(c *cursor, open, close string, build func([]types.Value) types.Value) (types.Value, error) {
	c.next() // consume opening delimiter
	var elems []types.Value
	for {
		tok, ok := c.peek()
		if !ok {
			return nil, &errs.EOF{Msg: "EOF encountered while reading list"}
		}
		if tok.Text == close {
			c.next()
			return build(elems), nil
		}
		v, err := readForm(c)
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
}

func readHashMap(c *cursor) (types.Value, error) {
	open, _ := c.next() // consume '{'
	var elems []types.Value
	for {
		tok, ok := c.peek()
		if !ok {
			return nil, &errs.EOF{Msg: "EOF encountered while reading hash-map"}
		}
		if tok.Text == "}" {
			c.next()
			break
		}
		v, err := readForm(c)
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
	if len(elems)%2 != 0 {
		return nil, &errs.Syntax{Offset: open.Offset, Msg: "odd number of hash-map forms"}
	}
	m := types.NewHashMap()
	for i := 0; i < len(elems); i += 2 {
		key, ok := types.MakeHashKey(elems[i])
		if !ok {
			return nil, &errs.Syntax{Offset: open.Offset, Msg: "hash-map keys must be strings or keywords"}
		}
		m.Set(key, elems[i+1])
	}
	return m, nil
}

func readString(c *cursor) (types.Value, error) {
	tok, _ := c.next()
	raw := tok.Text
	if len(raw) < 2 || raw[len(raw)-1] != '"' {
		return nil, &errs.EOF{Msg: "EOF encountered while reading string"}
	}
	body := raw[1 : len(raw)-1]
	var sb strings.Builder
	for i := 0; i < len(body); i++ {
		ch := body[i]
		if ch != '\\' {
			sb.WriteByte(ch)
			continue
		}
		i++
		if i >= len(body) {
			return nil, &errs.Syntax{Offset: tok.Offset, Msg: "unterminated escape in string"}
		}
		switch body[i] {
		case '\\':
			sb.WriteByte('\\')
		case '"':
			sb.WriteByte('"')
		case 'n':
			sb.WriteByte('\n')
		default:
			return nil, &errs.Syntax{Offset: tok.Offset, Msg: "invalid escape \\" + string(body[i])}
		}
	}
	return types.String(sb.String()), nil
}

func readAtom(c *cursor) (types.Value, error) {
	tok, _ := c.next()
	s := tok.Text
	switch s {
	case "true":
		return types.True, nil
	case "false":
		return types.False, nil
	case "nil":
		return types.NilValue, nil
	}
	if isNumberToken(s) {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, &errs.Syntax{Offset: tok.Offset, Msg: "invalid number literal " + s}
		}
		return types.Number(n), nil
	}
	return types.NewSymbol(s), nil
}

// isNumberToken reports whether s looks like a Number literal: a leading
// digit, or a leading '-' followed by a digit.
func isNumberToken(s string) bool {
	if s == "" {
		return false
	}
	if s[0] >= '0' && s[0] <= '9' {
		return true
	}
	return s[0] == '-' && len(s) > 1 && s[1] >= '0' && s[1] <= '9'
}
