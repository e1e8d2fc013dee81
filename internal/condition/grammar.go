package condition

import "github.com/alecthomas/participle/v2/lexer"

// Grammar structs for participle parser.
// Precedence: or < and < parentheses.

var queryLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"(?:[^"\\]|\\[\s\S])*"`},
	{Name: "Unterminated", Pattern: `"(?:[^"\\]|\\[\s\S])*\\?`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[=()]`},
	{Name: "Whitespace", Pattern: `\s+`},
	// Any other character, so lexing never fails and an unterminated string
	// later in the input is still seen.
	{Name: "Invalid", Pattern: `[\s\S]`},
})

type queryGrammar struct {
	Expr *orGrammar `parser:"@@"`
}

type orGrammar struct {
	Left  *andGrammar   `parser:"@@"`
	Right []*andGrammar `parser:"( 'or' @@ )*"`
}

type andGrammar struct {
	Left  *primaryGrammar   `parser:"@@"`
	Right []*primaryGrammar `parser:"( 'and' @@ )*"`
}

type primaryGrammar struct {
	Paren     *orGrammar        `parser:"  '(' @@ ')'"`
	Predicate *predicateGrammar `parser:"| @@"`
}

type predicateGrammar struct {
	Pos   lexer.Position
	Attr  string `parser:"@Ident '='"`
	Value string `parser:"@String"`
}
