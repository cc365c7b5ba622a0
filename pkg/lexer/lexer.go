// Package lexer turns Swift source files into flat, ordered token streams.
//
// Tokenization is delegated to tree-sitter: the parse tree's leaf nodes,
// visited in source order, are the token stream. The metrics engine only
// ever sees (text, kind) pairs, so any lexer producing the same Kind
// vocabulary could stand in for this one.
package lexer

import (
	"context"
	"fmt"
	"os"
	"unicode"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/swift"
)

// Kind is the lexical category the grammar assigned to a token.
type Kind string

const (
	KindIdentifier     Kind = "identifier"
	KindIntegerLiteral Kind = "integerLiteral"
	KindFloatLiteral   Kind = "floatLiteral"
	KindStringSegment  Kind = "stringSegment"
	KindPatternLiteral Kind = "patternLiteral"
	KindKeyword        Kind = "keyword"
	KindSymbol         Kind = "symbol"
	KindDelimiter      Kind = "delimiter"
	KindAttribute      Kind = "attribute"
	KindComment        Kind = "comment"
	KindOther          Kind = "other"
)

// Token is one lexical token in source order.
type Token struct {
	Text string `json:"text"`
	Kind Kind   `json:"kind"`
}

// leafKinds maps named tree-sitter leaf types onto the Kind vocabulary.
var leafKinds = map[string]Kind{
	"simple_identifier": KindIdentifier,
	"type_identifier":   KindIdentifier,
	"identifier":        KindIdentifier,

	"integer_literal": KindIntegerLiteral,
	"hex_literal":     KindIntegerLiteral,
	"oct_literal":     KindIntegerLiteral,
	"bin_literal":     KindIntegerLiteral,
	"real_literal":    KindFloatLiteral,

	"line_str_text":       KindStringSegment,
	"multi_line_str_text": KindStringSegment,
	"str_escaped_char":    KindStringSegment,
	"raw_str_part":        KindStringSegment,

	"regex_literal": KindPatternLiteral,

	"comment":           KindComment,
	"multiline_comment": KindComment,

	"directive":  KindOther,
	"diagnostic": KindOther,
}

// delimiterTexts are grouping punctuation tokens. They never contribute
// to any count.
var delimiterTexts = map[string]bool{
	"{": true, "}": true,
	"(": true, ")": true,
	"[": true, "]": true,
}

// Lexer tokenizes Swift source through tree-sitter. Not safe for
// concurrent use; create one per goroutine.
type Lexer struct {
	parser *sitter.Parser
}

// New creates a lexer with the Swift grammar loaded.
func New() *Lexer {
	p := sitter.NewParser()
	p.SetLanguage(swift.GetLanguage())
	return &Lexer{parser: p}
}

// TokenizeFile reads and tokenizes a single source file.
func (l *Lexer) TokenizeFile(path string) ([]Token, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return l.Tokenize(source)
}

// Tokenize parses source and flattens the tree's leaves into tokens.
func (l *Lexer) Tokenize(source []byte) ([]Token, error) {
	tree, err := l.parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("no syntax tree produced")
	}

	tokens := make([]Token, 0, 256)
	collectLeaves(root, source, &tokens)
	return tokens, nil
}

// Close releases parser resources.
func (l *Lexer) Close() {
	l.parser.Close()
}

// collectLeaves appends every leaf node under n, in source order.
func collectLeaves(n *sitter.Node, source []byte, tokens *[]Token) {
	count := int(n.ChildCount())
	if count == 0 {
		text := n.Content(source)
		if text == "" {
			return
		}
		*tokens = append(*tokens, Token{Text: text, Kind: classifyLeaf(n.Type(), text)})
		return
	}
	for i := 0; i < count; i++ {
		collectLeaves(n.Child(i), source, tokens)
	}
}

// classifyLeaf maps a leaf node onto the Kind vocabulary. Anonymous
// nodes (type equals text) cover keywords and punctuation; word-shaped
// ones are keywords, the rest symbols.
func classifyLeaf(nodeType, text string) Kind {
	if k, ok := leafKinds[nodeType]; ok {
		return k
	}
	if delimiterTexts[text] {
		return KindDelimiter
	}
	if text == "@" {
		return KindAttribute
	}
	if isWordToken(text) {
		return KindKeyword
	}
	return KindSymbol
}

// isWordToken reports whether a token starts with a letter or underscore
// followed by word characters.
func isWordToken(s string) bool {
	for i, r := range s {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return s != ""
}
