package analyzer

import (
	"strings"

	"github.com/augur-dev/augur/pkg/lexer"
)

// Category is the Halstead classification of a lexical token. It is a
// closed set: every token is an operator, an operand, or ignored.
type Category int

const (
	// CategoryIgnored tokens contribute to no count: whitespace,
	// comments, grouping delimiters, attributes.
	CategoryIgnored Category = iota
	// CategoryOperator tokens are "actions": symbolic operators,
	// structural punctuation, and flow or declaration keywords.
	CategoryOperator
	// CategoryOperand tokens are "things acted upon": identifiers and
	// literals.
	CategoryOperand
)

// String implements fmt.Stringer.
func (c Category) String() string {
	switch c {
	case CategoryOperator:
		return "operator"
	case CategoryOperand:
		return "operand"
	default:
		return "ignored"
	}
}

// operatorTexts contains every token text counted as an operator:
// symbolic operators, structural punctuation acting as an operator, and
// the keyword operators.
var operatorTexts = map[string]bool{
	// Arithmetic, comparison, logical, assignment
	"+": true, "-": true, "*": true, "/": true, "%": true,
	"==": true, "!=": true, "===": true, "!==": true,
	"<=": true, ">=": true,
	"&&": true, "||": true,
	"+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
	"~": true, "|": true, "^": true, "<<": true, ">>": true,
	"??": true, "..<": true,
	// Structural punctuation acting as operators
	"=": true, ":": true, ",": true, "->": true, "!": true, "?": true,
	".": true, "...": true, "<": true, ">": true, ";": true,
	"&": true, "_": true,
	// Control flow keywords
	"if": true, "else": true, "for": true, "while": true, "repeat": true,
	"switch": true, "case": true, "default": true, "guard": true,
	// Declaration keywords
	"func": true, "class": true, "struct": true, "enum": true, "protocol": true,
	// Other flow and binding keywords
	"import": true, "let": true, "var": true, "in": true, "return": true,
	"break": true, "continue": true, "defer": true,
	"throw": true, "throws": true, "rethrows": true,
	"try": true, "do": true, "catch": true,
	"where": true, "as": true, "is": true,
}

// operandKeywords are keyword-shaped literal tokens.
var operandKeywords = map[string]bool{
	"true": true, "false": true, "nil": true,
}

// Classify maps one lexical token to its Halstead category. Pure and
// O(1); the raw-count accumulators in this package are its only callers.
func Classify(text string, kind lexer.Kind) Category {
	switch kind {
	case lexer.KindIdentifier,
		lexer.KindIntegerLiteral,
		lexer.KindFloatLiteral,
		lexer.KindStringSegment,
		lexer.KindPatternLiteral:
		return CategoryOperand
	case lexer.KindComment,
		lexer.KindDelimiter,
		lexer.KindAttribute,
		lexer.KindOther:
		return CategoryIgnored
	}

	if operandKeywords[text] {
		return CategoryOperand
	}
	if operatorTexts[text] {
		return CategoryOperator
	}
	if isImplicitParameter(text) {
		return CategoryOperand
	}

	return CategoryIgnored
}

// isImplicitParameter matches closure shorthand arguments like $0.
func isImplicitParameter(text string) bool {
	if !strings.HasPrefix(text, "$") || len(text) < 2 {
		return false
	}
	for _, r := range text[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
