package jsast

import "github.com/cr7pt0gr4ph7/biome/internal/syntax"

// InnerStringText returns the text of a string-literal token with the quote
// delimiters stripped. Escape sequences are left verbatim and trivia is
// excluded; this never fails on content shape.
func InnerStringText(token *syntax.Token) string {
	text := token.Text()
	if len(text) >= 2 {
		return text[1 : len(text)-1]
	}
	return text
}

// ModuleSource is the string-literal node naming what a static import
// references.
type ModuleSource struct {
	node *syntax.Node
}

func AsModuleSource(node *syntax.Node) (ModuleSource, bool) {
	if node == nil || node.Kind() != syntax.KindModuleSource {
		return ModuleSource{}, false
	}
	return ModuleSource{node: node}, true
}

func (s ModuleSource) Syntax() *syntax.Node { return s.node }

// ValueToken returns the raw string-literal token, quotes included.
func (s ModuleSource) ValueToken() (*syntax.Token, error) {
	if s.node == nil {
		return nil, syntax.ErrMissing
	}
	token := s.node.SlotToken(valueTokenSlot)
	if token == nil {
		return nil, syntax.ErrMissing
	}
	return token, nil
}

// InnerStringText returns the source text without its surrounding quotes.
func (s ModuleSource) InnerStringText() (string, error) {
	token, err := s.ValueToken()
	if err != nil {
		return "", err
	}
	return InnerStringText(token), nil
}

// Metavariable is a template placeholder standing in for a literal.
type Metavariable struct {
	node *syntax.Node
}

func AsMetavariable(node *syntax.Node) (Metavariable, bool) {
	if node == nil || node.Kind() != syntax.KindMetavariable {
		return Metavariable{}, false
	}
	return Metavariable{node: node}, true
}

func (m Metavariable) Syntax() *syntax.Node { return m.node }

// ImportAssertion is the `with { type: "json" }` attachment of an import.
type ImportAssertion struct {
	node *syntax.Node
}

func AsImportAssertion(node *syntax.Node) (ImportAssertion, bool) {
	if node == nil || node.Kind() != syntax.KindImportAssertion {
		return ImportAssertion{}, false
	}
	return ImportAssertion{node: node}, true
}

func (a ImportAssertion) Syntax() *syntax.Node { return a.node }

func (a ImportAssertion) Text() string { return a.node.Text() }
