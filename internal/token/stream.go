package token

// Stream is a read cursor over lexed tokens. Reading past the last token
// yields a synthesized EOF positioned where the last token ended, so the
// lexer never has to emit one.
type Stream struct {
	tokens  []Token
	current int
	eof     Token
}

// NewStream returns a stream over tokens. The slice is not copied.
func NewStream(tokens []Token) *Stream {
	eof := Token{Kind: EOF, Start: Start, End: Start}
	if n := len(tokens); n > 0 {
		last := tokens[n-1]
		eof.Span = Span{Start: last.Span.End, End: last.Span.End}
		eof.Start = last.End
		eof.End = last.End
	}
	return &Stream{tokens: tokens, eof: eof}
}

// NewStreamAt is NewStream with the synthesized EOF placed at end, the
// location just past the text the tokens were lexed from.
func NewStreamAt(tokens []Token, end Location) *Stream {
	s := NewStream(tokens)
	s.eof.Span = Span{Start: end.Offset, End: end.Offset}
	s.eof.Start = end
	s.eof.End = end
	return s
}

// Peek returns the current token without consuming it.
func (s *Stream) Peek() Token { return s.PeekAt(0) }

// PeekAt returns the token n positions after the current one.
func (s *Stream) PeekAt(n int) Token {
	if i := s.current + n; i >= 0 && i < len(s.tokens) {
		return s.tokens[i]
	}
	return s.eof
}

// Advance consumes and returns the current token.
func (s *Stream) Advance() Token {
	tok := s.Peek()
	if !s.AtEnd() {
		s.current++
	}
	return tok
}

// Previous returns the most recently consumed token, or EOF before the first.
func (s *Stream) Previous() Token {
	if s.current == 0 {
		return Token{Kind: EOF, Start: Start, End: Start}
	}
	return s.tokens[s.current-1]
}

func (s *Stream) AtEnd() bool { return s.current >= len(s.tokens) }

// Pos is the index of the current token; used to detect lack of progress.
func (s *Stream) Pos() int { return s.current }

// EOF returns the synthesized end-of-input token.
func (s *Stream) EOF() Token { return s.eof }

func (s *Stream) Len() int { return len(s.tokens) }
