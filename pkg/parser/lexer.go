package parser

import (
	"strings"

	"github.com/calder-lang/calder/pkg/token"
)

// Lexer tokenizes calder source text.
//
// Lexical rules:
//
//	ident   → letter (letter | digit | "_" | "-")*
//	int     → "-"? digits            (digits may use "_" separators)
//	float   → "-"? ("." digits | digits "." digits? | digits) exponent?
//	string  → '"' any-byte-but-quote* '"'   (raw, may span lines, no escapes)
//	comment → "#" to end of line
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
	line    int  // current line number (1-based)
	col     int  // current column number (1-based)
}

// NewLexer creates a new Lexer for the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
		col:   0,
	}
	l.readChar()
	return l
}

// Tokens lexes the entire input and returns the token sequence, terminated
// by an EOF token. Lex failures surface as ILLEGAL tokens; the parser turns
// those into syntax errors.
func (l *Lexer) Tokens() []token.Token {
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

// readChar advances to the next character.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL = EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++

	if l.ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// currentPos returns the current position.
func (l *Lexer) currentPos() token.Position {
	return token.Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

// NextToken returns the next token.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()

	pos := l.currentPos()

	switch {
	case l.ch == 0:
		return token.Token{Kind: token.EOF, Pos: pos}
	case l.ch == '=':
		return l.punct(token.ASSIGN, "=", pos)
	case l.ch == ',':
		return l.punct(token.COMMA, ",", pos)
	case l.ch == '(':
		return l.punct(token.LPAREN, "(", pos)
	case l.ch == ')':
		return l.punct(token.RPAREN, ")", pos)
	case l.ch == '{':
		return l.punct(token.LBRACE, "{", pos)
	case l.ch == '}':
		return l.punct(token.RBRACE, "}", pos)
	case l.ch == '"':
		return l.readString(pos)
	case isDigit(l.ch), l.ch == '.', l.ch == '-':
		return l.readNumber(pos)
	case isLetter(l.ch):
		return l.readIdent(pos)
	default:
		lit := string(l.ch)
		l.readChar()
		return token.Token{Kind: token.ILLEGAL, Literal: lit, Pos: pos}
	}
}

func (l *Lexer) punct(k token.Kind, lit string, pos token.Position) token.Token {
	l.readChar()
	return token.Token{Kind: k, Literal: lit, Pos: pos}
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n':
			l.readChar()
		case l.ch == '#':
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		default:
			return
		}
	}
}

// readIdent reads an identifier or keyword.
func (l *Lexer) readIdent(pos token.Position) token.Token {
	start := l.pos
	l.readChar()
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' || l.ch == '-' {
		l.readChar()
	}
	lit := l.input[start:l.pos]
	return token.Token{Kind: token.LookupIdent(lit), Literal: lit, Pos: pos}
}

// unterminatedString marks the ILLEGAL token produced when input runs out
// inside a string. The parser turns it into an end-of-input error so callers
// feeding input incrementally can tell a half-typed string from a bad one.
const unterminatedString = "unterminated string"

// readString reads a raw double-quoted string. The literal excludes the
// quotes; the bytes between them are copied verbatim, newlines included.
func (l *Lexer) readString(pos token.Position) token.Token {
	l.readChar() // consume opening quote
	start := l.pos
	for l.ch != '"' {
		if l.ch == 0 {
			return token.Token{
				Kind:    token.ILLEGAL,
				Literal: unterminatedString,
				Pos:     pos,
			}
		}
		l.readChar()
	}
	lit := l.input[start:l.pos]
	l.readChar() // consume closing quote
	return token.Token{Kind: token.STRING, Literal: lit, Pos: pos}
}

// readNumber reads an integer or float literal, with optional leading minus
// and "_" digit separators.
func (l *Lexer) readNumber(pos token.Position) token.Token {
	start := l.pos
	isFloat := false

	if l.ch == '-' {
		if !isDigit(l.peekChar()) && l.peekChar() != '.' {
			lit := string(l.ch)
			l.readChar()
			return token.Token{Kind: token.ILLEGAL, Literal: lit, Pos: pos}
		}
		l.readChar()
	}

	l.readDigits()

	if l.ch == '.' {
		if !isDigit(l.peekChar()) && l.pos == start {
			// A bare "." with no digits on either side is not a number.
			lit := string(l.ch)
			l.readChar()
			return token.Token{Kind: token.ILLEGAL, Literal: lit, Pos: pos}
		}
		isFloat = true
		l.readChar()
		l.readDigits()
	}

	if l.ch == 'e' || l.ch == 'E' {
		if next := l.peekChar(); isDigit(next) || next == '+' || next == '-' {
			isFloat = true
			l.readChar()
			if l.ch == '+' || l.ch == '-' {
				l.readChar()
			}
			l.readDigits()
		}
	}

	lit := l.input[start:l.pos]
	if isFloat {
		return token.Token{Kind: token.FLOAT, Literal: lit, Pos: pos}
	}
	return token.Token{Kind: token.INT, Literal: lit, Pos: pos}
}

func (l *Lexer) readDigits() {
	for isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// stripSeparators removes "_" digit separators before strconv parsing.
func stripSeparators(lit string) string {
	return strings.ReplaceAll(lit, "_", "")
}
