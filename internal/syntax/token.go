package syntax

// Pos locates a token or node in its source file. Synthesized elements carry
// the zero Pos.
type Pos struct {
	Offset int
	Line   int
	Column int
}

// Token is an immutable leaf of the tree. Its text excludes trivia; the
// trivia attached to it is kept verbatim so the tree stays lossless.
type Token struct {
	kind     Kind
	text     string
	leading  string
	trailing string
	pos      Pos
}

func NewToken(kind Kind, text string) *Token {
	return &Token{kind: kind, text: text}
}

func NewTokenAt(kind Kind, text string, pos Pos) *Token {
	return &Token{kind: kind, text: text, pos: pos}
}

func (t *Token) Kind() Kind { return t.kind }

// Text returns the token text without any attached trivia.
func (t *Token) Text() string { return t.text }

// TextWithTrivia returns leading trivia, token text, and trailing trivia.
func (t *Token) TextWithTrivia() string { return t.leading + t.text + t.trailing }

func (t *Token) LeadingTrivia() string  { return t.leading }
func (t *Token) TrailingTrivia() string { return t.trailing }

func (t *Token) Pos() Pos { return t.pos }

// WithLeadingTrivia returns a copy of the token with the given leading trivia.
func (t *Token) WithLeadingTrivia(trivia string) *Token {
	clone := *t
	clone.leading = trivia
	return &clone
}

// WithTrailingTrivia returns a copy of the token with the given trailing trivia.
func (t *Token) WithTrailingTrivia(trivia string) *Token {
	clone := *t
	clone.trailing = trivia
	return &clone
}

func (t *Token) clone() *Token {
	clone := *t
	return &clone
}

func (t *Token) isSlot() {}
