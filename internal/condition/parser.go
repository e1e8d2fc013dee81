package condition

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	Syntax ErrorKind = iota
	UnknownAttribute
	UnterminatedString
)

func (k ErrorKind) String() string {
	switch k {
	case UnknownAttribute:
		return "unknown attribute"
	case UnterminatedString:
		return "unterminated string"
	default:
		return "syntax error"
	}
}

// ParseError reports a malformed query.
type ParseError struct {
	Kind   ErrorKind
	Offset int    // byte offset into the query
	Detail string // offending text or parser message
	Err    error  // underlying participle error, if any
}

func (e *ParseError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("invalid query at offset %d: %s", e.Offset, e.Kind)
	}
	return fmt.Sprintf("invalid query at offset %d: %s: %s", e.Offset, e.Kind, e.Detail)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IsKind reports whether err is a *ParseError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Kind == kind
}

var (
	queryParser      = participle.MustBuild[queryGrammar](participle.Lexer(queryLexer), participle.Elide("Whitespace"), participle.UseLookahead(2))
	unterminatedType = queryLexer.Symbols()["Unterminated"]
)

// Parse parses a query such as `class = "Caprine"` or
// `name = "termite" or (class = "URxvt" and name = "mutt")`.
// It performs no I/O.
func Parse(text string) (Condition, error) {
	q, err := queryParser.ParseString("", text)
	if err != nil {
		return nil, classify(text, err)
	}
	return convertOr(q.Expr)
}

// MustParse is like Parse but panics on error. For literals in code and tests.
func MustParse(text string) Condition {
	c, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return c
}

// classify maps a participle failure to a ParseError. An unterminated string
// anywhere in the input takes precedence over whatever the grammar tripped on,
// including stray characters before it.
func classify(text string, err error) *ParseError {
	if lex, lexErr := queryLexer.LexString("", text); lexErr == nil {
		if tokens, tokErr := lexer.ConsumeAll(lex); tokErr == nil {
			for _, tok := range tokens {
				if tok.Type == unterminatedType {
					return &ParseError{Kind: UnterminatedString, Offset: tok.Pos.Offset, Detail: tok.Value, Err: err}
				}
			}
		}
	}

	pe := &ParseError{Kind: Syntax, Detail: err.Error(), Err: err}
	var perr participle.Error
	if errors.As(err, &perr) {
		pe.Offset = perr.Position().Offset
		pe.Detail = perr.Message()
	}
	return pe
}

func convertOr(g *orGrammar) (Condition, error) {
	left, err := convertAnd(g.Left)
	if err != nil {
		return nil, err
	}
	for _, r := range g.Right {
		right, err := convertAnd(r)
		if err != nil {
			return nil, err
		}
		left = Or{Left: left, Right: right}
	}
	return left, nil
}

func convertAnd(g *andGrammar) (Condition, error) {
	left, err := convertPrimary(g.Left)
	if err != nil {
		return nil, err
	}
	for _, r := range g.Right {
		right, err := convertPrimary(r)
		if err != nil {
			return nil, err
		}
		left = And{Left: left, Right: right}
	}
	return left, nil
}

func convertPrimary(g *primaryGrammar) (Condition, error) {
	switch {
	case g.Paren != nil:
		return convertOr(g.Paren)
	case g.Predicate != nil:
		attr, ok := LookupAttribute(g.Predicate.Attr)
		if !ok {
			return nil, &ParseError{Kind: UnknownAttribute, Offset: g.Predicate.Pos.Offset, Detail: g.Predicate.Attr}
		}
		return Predicate{Attr: attr, Op: Equals, Value: unquote(g.Predicate.Value)}, nil
	}
	return nil, &ParseError{Kind: Syntax, Detail: "empty expression"}
}

func unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	s = s[1 : len(s)-1]
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
