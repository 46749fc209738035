package douceuradapter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gorilla/css/scanner"
	"github.com/npillmayer/stylecore/dom/style"
)

// ParseValue parses the text of a declaration value into a CSS value.
// A value consisting of a single component is returned as a scalar,
// everything else as a list. Functions keep their arguments unevaluated.
func ParseValue(text string) (style.Value, error) {
	toks, err := tokenize(text)
	if err != nil {
		return style.None, fmt.Errorf("css value %q: %w", text, err)
	}
	p := valueParser{toks: toks}
	items, err := p.sequence(false)
	if err != nil {
		return style.None, fmt.Errorf("css value %q: %w", text, err)
	}
	switch len(items) {
	case 0:
		return style.None, fmt.Errorf("css value %q: empty value", text)
	case 1:
		return items[0], nil
	}
	return style.List(items...), nil
}

// MustParseValue is like ParseValue, but panics on error. Intended for
// static values.
func MustParseValue(text string) style.Value {
	v, err := ParseValue(text)
	if err != nil {
		panic(err)
	}
	return v
}

var errUnbalanced = errors.New("unbalanced parentheses")

type token struct {
	*scanner.Token
	spaced bool // white space precedes the token
}

func tokenize(text string) ([]token, error) {
	s := scanner.New(text)
	var toks []token
	spaced := false
	for {
		t := s.Next()
		switch t.Type {
		case scanner.TokenEOF:
			return toks, nil
		case scanner.TokenError:
			return nil, fmt.Errorf("syntax error at column %d", t.Column)
		case scanner.TokenS, scanner.TokenComment:
			spaced = true
			continue
		}
		toks = append(toks, token{Token: t, spaced: spaced})
		spaced = false
	}
}

type valueParser struct {
	toks []token
	pos  int
}

// sequence parses components up to the end of input or, if nested, up to
// and including the closing parenthesis.
func (p *valueParser) sequence(nested bool) ([]style.Value, error) {
	items := []style.Value{}
	for p.pos < len(p.toks) {
		t := p.toks[p.pos]
		p.pos++
		switch t.Type {
		case scanner.TokenIdent:
			items = append(items, style.Keyword(t.Value))
		case scanner.TokenNumber, scanner.TokenPercentage, scanner.TokenDimension:
			v, err := numeric(t.Token)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		case scanner.TokenString:
			items = append(items, style.Quoted(unquote(t.Value)))
		case scanner.TokenHash:
			if c, ok := style.HexColor(t.Value); ok {
				items = append(items, style.RGBA(c))
			} else {
				items = append(items, style.Keyword(t.Value))
			}
		case scanner.TokenURI:
			items = append(items, style.Function("url", style.Quoted(urlContent(t.Value))))
		case scanner.TokenFunction:
			args, err := p.sequence(true)
			if err != nil {
				return nil, err
			}
			items = append(items, style.Function(strings.TrimSuffix(t.Value, "("), args...))
		case scanner.TokenChar:
			switch t.Value {
			case ")":
				if !nested {
					return nil, errUnbalanced
				}
				return items, nil
			case "(":
				args, err := p.sequence(true)
				if err != nil {
					return nil, err
				}
				items = append(items, style.Function("", args...))
			case "-", "+":
				if name, ok := p.dashedIdent(t.Value); ok {
					items = append(items, style.Keyword(name))
					continue
				}
				if v, ok := p.signed(t.Value); ok {
					items = append(items, v)
					continue
				}
				items = append(items, style.Delim(t.Value))
			default:
				items = append(items, style.Delim(t.Value))
			}
		default:
			items = append(items, style.Keyword(t.Value))
		}
	}
	if nested {
		return nil, errUnbalanced
	}
	return items, nil
}

// dashedIdent folds a '-' into a directly following identifier starting
// with '-', as in custom property names "--name".
func (p *valueParser) dashedIdent(sign string) (string, bool) {
	if sign != "-" || p.pos >= len(p.toks) {
		return "", false
	}
	t := p.toks[p.pos]
	if t.spaced || t.Type != scanner.TokenIdent || !strings.HasPrefix(t.Value, "-") {
		return "", false
	}
	p.pos++
	return "-" + t.Value, true
}

// signed folds a sign into a directly following number.
func (p *valueParser) signed(sign string) (style.Value, bool) {
	if p.pos >= len(p.toks) {
		return style.None, false
	}
	t := p.toks[p.pos]
	if t.spaced {
		return style.None, false
	}
	switch t.Type {
	case scanner.TokenNumber, scanner.TokenPercentage, scanner.TokenDimension:
	default:
		return style.None, false
	}
	v, err := numeric(t.Token)
	if err != nil {
		return style.None, false
	}
	p.pos++
	if sign == "-" {
		v.Num = -v.Num
	}
	return v, true
}

func numeric(tok *scanner.Token) (style.Value, error) {
	text := tok.Value
	end := 0
	if end < len(text) && (text[0] == '-' || text[0] == '+') {
		end++
	}
	for end < len(text) && (text[end] == '.' || (text[end] >= '0' && text[end] <= '9')) {
		end++
	}
	n, err := strconv.ParseFloat(text[:end], 64)
	if err != nil {
		return style.None, fmt.Errorf("malformed number %q", text)
	}
	switch tok.Type {
	case scanner.TokenPercentage:
		return style.Percentage(n), nil
	case scanner.TokenDimension:
		return style.Dimension(n, text[end:]), nil
	}
	return style.Number(n), nil
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		s = s[1 : len(s)-1]
	}
	return strings.ReplaceAll(s, "\\", "")
}

func urlContent(s string) string {
	s = strings.TrimSpace(s[4 : len(s)-1]) // strip "url(" and ")"
	return unquote(s)
}
