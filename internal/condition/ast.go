// Package condition implements the window query language: attribute equality
// predicates combined with "and", "or" and parentheses.
package condition

import (
	"fmt"
	"strings"
)

// Attribute is a window attribute a predicate can test.
type Attribute int

const (
	Class Attribute = iota // WM_CLASS class component
	Name                   // _NET_WM_NAME, falling back to WM_NAME
	ID                     // window id, formatted 0x%08x
)

var attributeNames = map[Attribute]string{
	Class: "class",
	Name:  "name",
	ID:    "id",
}

func (a Attribute) String() string {
	if s, ok := attributeNames[a]; ok {
		return s
	}
	return fmt.Sprintf("attribute(%d)", int(a))
}

// LookupAttribute returns the attribute for a query keyword.
func LookupAttribute(keyword string) (Attribute, bool) {
	for a, s := range attributeNames {
		if s == keyword {
			return a, true
		}
	}
	return 0, false
}

// Operator compares a resolved attribute against a predicate value.
type Operator int

const (
	Equals Operator = iota
)

func (o Operator) String() string {
	switch o {
	case Equals:
		return "="
	default:
		return fmt.Sprintf("operator(%d)", int(o))
	}
}

// Attributes gives a condition access to the attributes of one window.
// Lookup returns false when the attribute is not available.
type Attributes interface {
	Lookup(a Attribute) (string, bool)
}

// Condition is a parsed query. Conditions are immutable.
type Condition interface {
	// Matches evaluates the condition. And and Or short-circuit, so attributes
	// of the right operand are only looked up when needed.
	Matches(attrs Attributes) bool
	// String renders the condition as query text that parses back to an
	// equal condition.
	String() string
	condition()
}

// Predicate tests a single attribute.
type Predicate struct {
	Attr  Attribute
	Op    Operator
	Value string
}

func (Predicate) condition() {}

// Matches reports whether the attribute resolves and equals Value byte for byte.
func (p Predicate) Matches(attrs Attributes) bool {
	v, ok := attrs.Lookup(p.Attr)
	if !ok {
		return false
	}
	switch p.Op {
	case Equals:
		return v == p.Value
	default:
		return false
	}
}

func (p Predicate) String() string {
	return fmt.Sprintf("%s %s %s", p.Attr, p.Op, quote(p.Value))
}

// And matches when both operands match.
type And struct {
	Left, Right Condition
}

func (And) condition() {}

func (c And) Matches(attrs Attributes) bool {
	return c.Left.Matches(attrs) && c.Right.Matches(attrs)
}

func (c And) String() string {
	return fmt.Sprintf("(%s and %s)", c.Left, c.Right)
}

// Or matches when either operand matches.
type Or struct {
	Left, Right Condition
}

func (Or) condition() {}

func (c Or) Matches(attrs Attributes) bool {
	return c.Left.Matches(attrs) || c.Right.Matches(attrs)
}

func (c Or) String() string {
	return fmt.Sprintf("(%s or %s)", c.Left, c.Right)
}

// Eq builds an equality predicate without going through the parser.
func Eq(attr Attribute, value string) Condition {
	return Predicate{Attr: attr, Op: Equals, Value: value}
}

// AttributesOf lists the distinct attributes cond reads, in first-use order.
func AttributesOf(cond Condition) []Attribute {
	var out []Attribute
	seen := make(map[Attribute]bool)
	var walk func(Condition)
	walk = func(c Condition) {
		switch n := c.(type) {
		case Predicate:
			if !seen[n.Attr] {
				seen[n.Attr] = true
				out = append(out, n.Attr)
			}
		case And:
			walk(n.Left)
			walk(n.Right)
		case Or:
			walk(n.Left)
			walk(n.Right)
		}
	}
	walk(cond)
	return out
}

func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
