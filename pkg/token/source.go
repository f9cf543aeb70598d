package token

// Source is a forward-only cursor over an already-lexed token sequence. It is
// the narrow contract the parser consumes: peek without consuming, peek a
// bounded distance ahead, advance, and detect end-of-input. There is no
// rewind; disambiguation is done with non-destructive peeks only.
type Source struct {
	toks []Token
	pos  int
}

// NewSource creates a Source over toks. The sequence is normalized to end
// with an EOF token so that peeks past the end stay well-defined.
func NewSource(toks []Token) *Source {
	if n := len(toks); n == 0 || toks[n-1].Kind != EOF {
		var pos Position
		if n > 0 {
			pos = toks[n-1].Pos
			pos.Column += len(toks[n-1].Literal)
			pos.Offset += len(toks[n-1].Literal)
		}
		toks = append(toks, Token{Kind: EOF, Pos: pos})
	}
	return &Source{toks: toks}
}

// Current returns the token under the cursor without consuming it.
func (s *Source) Current() Token {
	return s.toks[s.pos]
}

// Peek returns the token n positions ahead of the cursor without consuming
// anything. Peek(0) is Current. Peeking past the end returns the EOF token.
func (s *Source) Peek(n int) Token {
	if i := s.pos + n; i < len(s.toks) {
		return s.toks[i]
	}
	return s.toks[len(s.toks)-1]
}

// Advance consumes the current token and returns it. Advancing at EOF keeps
// returning the EOF token.
func (s *Source) Advance() Token {
	t := s.toks[s.pos]
	if s.pos < len(s.toks)-1 {
		s.pos++
	}
	return t
}

// AtEOF returns true once the cursor has reached the end-of-input token.
func (s *Source) AtEOF() bool {
	return s.toks[s.pos].Kind == EOF
}

// Pos returns the position of the current token.
func (s *Source) Pos() Position {
	return s.toks[s.pos].Pos
}

// Len returns the total number of tokens, including the EOF sentinel.
func (s *Source) Len() int {
	return len(s.toks)
}
