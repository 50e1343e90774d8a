package lex

import (
	"bytes"
	"context"
	"unicode"
	"unicode/utf8"

	"tlog.app/go/loc"
	"tlog.app/go/tlog"
	"tlog.app/go/tlog/tlwire"
)

type (
	Kind int

	Token struct {
		Kind   Kind
		Lexeme string
		Pos    int
	}

	// Scanner reports every consumed run of input including whitespace,
	// so concatenated lexemes always give back the source text.
	Scanner struct {
		b []byte
		i int
	}
)

const (
	Unknown Kind = iota
	Keyword
	Identifier
	Number
	String
	Char
	Operator
	Delimiter
	Comment
	Skip
)

var kindNames = [...]string{
	Unknown:    "UNKNOWN",
	Keyword:    "KEYWORD",
	Identifier: "IDENTIFIER",
	Number:     "NUMBER",
	String:     "STRING",
	Char:       "CHAR",
	Operator:   "OPERATOR",
	Delimiter:  "DELIMITER",
	Comment:    "COMMENT",
	Skip:       "SKIP",
}

var keywords = map[string]struct{}{
	"auto": {}, "break": {}, "case": {}, "char": {}, "const": {}, "continue": {}, "default": {}, "do": {}, "double": {},
	"else": {}, "enum": {}, "extern": {}, "float": {}, "for": {}, "goto": {}, "if": {}, "int": {}, "long": {}, "register": {},
	"return": {}, "short": {}, "signed": {}, "sizeof": {}, "static": {}, "struct": {}, "switch": {}, "typedef": {},
	"union": {}, "unsigned": {}, "void": {}, "volatile": {}, "while": {},
}

// Tokenize classifies text. Whitespace is consumed but never returned.
func Tokenize(ctx context.Context, text []byte) []Token {
	tr := tlog.SpanFromContext(ctx)

	s := NewScanner(text)
	res := []Token{}

	for {
		t, ok := s.Next()
		if !ok {
			break
		}

		if tr.If("lex_token") {
			tr.Printw("token", "tok", t, "from", loc.Caller(1))
		}

		if t.Kind == Skip {
			continue
		}

		res = append(res, t)
	}

	return res
}

func IsKeyword(s string) bool {
	_, ok := keywords[s]
	return ok
}

func NewScanner(text []byte) *Scanner {
	return &Scanner{b: text}
}

func (s *Scanner) Next() (t Token, ok bool) {
	if s.i >= len(s.b) {
		return t, false
	}

	st := s.i
	k, end := next(s.b, st)
	s.i = end

	return Token{Kind: k, Lexeme: string(s.b[st:end]), Pos: st}, true
}

func next(b []byte, i int) (Kind, int) {
	if e := comment(b, i); e > i {
		return Comment, e
	}

	if e := quoted(b, i); e > i {
		return String, e
	}

	if e := char(b, i); e > i {
		return Char, e
	}

	if e := number(b, i); e > i {
		return Number, e
	}

	if e := ident(b, i); e > i {
		if IsKeyword(string(b[i:e])) {
			return Keyword, e
		}

		return Identifier, e
	}

	if e := operator(b, i); e > i {
		return Operator, e
	}

	switch b[i] {
	case ';', ',', '[', ']', '(', ')', '{', '}':
		return Delimiter, i + 1
	}

	if e := spaces(b, i); e > i {
		return Skip, e
	}

	_, w := utf8.DecodeRune(b[i:])

	return Unknown, i + w
}

func comment(b []byte, i int) int {
	switch {
	case bytes.HasPrefix(b[i:], []byte("//")):
		if j := bytes.IndexByte(b[i:], '\n'); j >= 0 {
			return i + j
		}

		return len(b)
	case bytes.HasPrefix(b[i:], []byte("/*")):
		j := bytes.Index(b[i+2:], []byte("*/"))
		if j < 0 {
			return i
		}

		return i + 2 + j + 2
	}

	return i
}

func quoted(b []byte, i int) int {
	if b[i] != '"' {
		return i
	}

	for j := i + 1; j < len(b); {
		switch b[j] {
		case '"':
			return j + 1
		case '\\':
			if j+1 == len(b) {
				return i
			}

			_, w := utf8.DecodeRune(b[j+1:])
			j += 1 + w
		default:
			j++
		}
	}

	return i
}

func char(b []byte, i int) int {
	if b[i] != '\'' || i+1 == len(b) {
		return i
	}

	j := i + 1

	switch b[j] {
	case '\'':
		return i
	case '\\':
		if j+1 == len(b) {
			return i
		}

		_, w := utf8.DecodeRune(b[j+1:])
		j += 1 + w
	default:
		_, w := utf8.DecodeRune(b[j:])
		j += w
	}

	if j == len(b) || b[j] != '\'' {
		return i
	}

	return j + 1
}

func number(b []byte, i int) int {
	if wordBefore(b, i) {
		return i
	}

	j := digits(b, i)
	if j == i {
		return i
	}

	if j < len(b) && b[j] == '.' {
		if k := digits(b, j+1); k > j+1 && !wordAt(b, k) {
			return k
		}
	}

	if wordAt(b, j) {
		return i
	}

	return j
}

func ident(b []byte, i int) int {
	if wordBefore(b, i) {
		return i
	}

	c := b[i]
	if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_') {
		return i
	}

	j := i + 1

	for j < len(b) {
		r, w := utf8.DecodeRune(b[j:])
		if !isWord(r) {
			break
		}

		j += w
	}

	return j
}

func operator(b []byte, i int) int {
	switch b[i] {
	case '+', '-', '*', '/', '%', '=', '!', '<', '>':
		if i+1 < len(b) && b[i+1] == '=' {
			return i + 2
		}

		return i + 1
	case '&', '|':
		if i+1 < len(b) && b[i+1] == b[i] {
			return i + 2
		}
	}

	return i
}

func spaces(b []byte, i int) int {
	for i < len(b) && (b[i] == ' ' || b[i] == '\t' || b[i] == '\n') {
		i++
	}

	return i
}

func digits(b []byte, i int) int {
	for i < len(b) {
		r, w := utf8.DecodeRune(b[i:])
		if !unicode.IsDigit(r) {
			break
		}

		i += w
	}

	return i
}

func wordAt(b []byte, i int) bool {
	if i >= len(b) {
		return false
	}

	r, _ := utf8.DecodeRune(b[i:])

	return isWord(r)
}

func wordBefore(b []byte, i int) bool {
	if i == 0 {
		return false
	}

	r, _ := utf8.DecodeLastRune(b[:i])

	return isWord(r)
}

func isWord(r rune) bool {
	return r == '_' || r != utf8.RuneError && (unicode.IsLetter(r) || unicode.IsNumber(r))
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "UNKNOWN"
}

func (t Token) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	b = e.AppendMap(b, 3)

	b = e.AppendString(b, "kind")
	b = e.AppendString(b, t.Kind.String())
	b = e.AppendString(b, "lexeme")
	b = e.AppendString(b, t.Lexeme)
	b = e.AppendKeyInt(b, "pos", t.Pos)

	return b
}
