package jsast

import "github.com/cr7pt0gr4ph7/biome/internal/syntax"

// AnyBinding is a name binding introduced by a specifier.
type AnyBinding interface {
	Syntax() *syntax.Node
	anyBinding()
}

func AsAnyBinding(node *syntax.Node) (AnyBinding, bool) {
	if node == nil {
		return nil, false
	}
	switch node.Kind() {
	case syntax.KindIdentifierBinding:
		return IdentifierBinding{node: node}, true
	case syntax.KindBogusBinding:
		return BogusBinding{node: node}, true
	default:
		return nil, false
	}
}

// IdentifierBinding is a plain identifier binding such as `React`.
type IdentifierBinding struct {
	node *syntax.Node
}

func (b IdentifierBinding) Syntax() *syntax.Node { return b.node }

func (b IdentifierBinding) NameToken() (*syntax.Token, error) {
	token := b.node.SlotToken(valueTokenSlot)
	if token == nil {
		return nil, syntax.ErrMissing
	}
	return token, nil
}

func (b IdentifierBinding) anyBinding() {}

// BogusBinding is an error-recovered binding region.
type BogusBinding struct {
	node *syntax.Node
}

func (b BogusBinding) Syntax() *syntax.Node { return b.node }

func (b BogusBinding) anyBinding() {}

// NamedImportSpecifiers is the braces-wrapped `{ ... }` specifier group of a
// named import clause.
type NamedImportSpecifiers struct {
	node *syntax.Node
}

func AsNamedImportSpecifiers(node *syntax.Node) (NamedImportSpecifiers, bool) {
	if node == nil || node.Kind() != syntax.KindNamedImportSpecifiers {
		return NamedImportSpecifiers{}, false
	}
	return NamedImportSpecifiers{node: node}, true
}

func (s NamedImportSpecifiers) Syntax() *syntax.Node { return s.node }

// Specifiers returns the group's specifiers in source order.
func (s NamedImportSpecifiers) Specifiers() []AnyNamedImportSpecifier {
	list := s.node.SlotNode(specifiersListSlot)
	if list == nil {
		return nil
	}
	specifiers := make([]AnyNamedImportSpecifier, 0, list.NumSlots())
	for _, node := range list.Nodes() {
		if specifier, ok := AsAnyNamedImportSpecifier(node); ok {
			specifiers = append(specifiers, specifier)
		}
	}
	return specifiers
}

// AnyNamedImportSpecifier is one entry of a named import's `{ ... }` list:
// `{ a as b }`, `{ a }`, or an error-recovered region.
type AnyNamedImportSpecifier interface {
	Syntax() *syntax.Node

	// TypeToken returns the specifier's own `type` keyword, if any.
	TypeToken() (*syntax.Token, bool)

	// LocalName returns the binding the specifier introduces.
	LocalName() (AnyBinding, bool)

	// ImportClause returns the clause owning this specifier. The grammar
	// fixes the nesting at specifier, specifier list, braces group, clause,
	// so this walks exactly three parents and fails on any other shape.
	ImportClause() (AnyImportClause, bool)

	// ImportsOnlyTypes reports whether the specifier or its owning clause
	// carries a `type` marker.
	ImportsOnlyTypes() bool

	// ImportedName returns the name token reached through the local binding.
	ImportedName() (*syntax.Token, bool)

	// WithTypeToken returns a copy with the `type` marker replaced (nil
	// removes it). The receiver's tree is left untouched.
	WithTypeToken(token *syntax.Token) AnyNamedImportSpecifier

	anyNamedImportSpecifier()
}

func AsAnyNamedImportSpecifier(node *syntax.Node) (AnyNamedImportSpecifier, bool) {
	if node == nil {
		return nil, false
	}
	switch node.Kind() {
	case syntax.KindNamedImportSpecifier:
		return NamedImportSpecifier{node: node}, true
	case syntax.KindShorthandNamedImportSpecifier:
		return ShorthandNamedImportSpecifier{node: node}, true
	case syntax.KindBogusNamedImportSpecifier:
		return BogusNamedImportSpecifier{node: node}, true
	default:
		return nil, false
	}
}

const specifierClauseDepth = 3

func specifierImportClause(node *syntax.Node) (AnyImportClause, bool) {
	return AsAnyImportClause(node.Ancestor(specifierClauseDepth))
}

func specifierImportsOnlyTypes(s AnyNamedImportSpecifier) bool {
	if _, ok := s.TypeToken(); ok {
		return true
	}
	clause, ok := s.ImportClause()
	if !ok {
		return false
	}
	_, ok = clause.TypeToken()
	return ok
}

func specifierImportedName(s AnyNamedImportSpecifier) (*syntax.Token, bool) {
	binding, ok := s.LocalName()
	if !ok {
		return nil, false
	}
	identifier, ok := binding.(IdentifierBinding)
	if !ok {
		return nil, false
	}
	token, err := identifier.NameToken()
	if err != nil {
		return nil, false
	}
	return token, true
}

// NamedImportSpecifier is `a as b` (possibly `type a as b`).
type NamedImportSpecifier struct {
	node *syntax.Node
}

func (s NamedImportSpecifier) Syntax() *syntax.Node { return s.node }

func (s NamedImportSpecifier) TypeToken() (*syntax.Token, bool) {
	return typeTokenAt(s.node, namedSpecifierTypeSlot)
}

// NameToken returns the imported-name token on the left of `as`.
func (s NamedImportSpecifier) NameToken() (*syntax.Token, error) {
	token := s.node.SlotToken(namedSpecifierNameSlot)
	if token == nil {
		return nil, syntax.ErrMissing
	}
	return token, nil
}

// LocalBinding is the strict accessor for the binding slot.
func (s NamedImportSpecifier) LocalBinding() (AnyBinding, error) {
	binding, ok := AsAnyBinding(s.node.SlotNode(namedSpecifierLocalSlot))
	if !ok {
		return nil, syntax.ErrMissing
	}
	return binding, nil
}

func (s NamedImportSpecifier) LocalName() (AnyBinding, bool) {
	binding, err := s.LocalBinding()
	if err != nil {
		return nil, false
	}
	return binding, true
}

func (s NamedImportSpecifier) ImportClause() (AnyImportClause, bool) {
	return specifierImportClause(s.node)
}

func (s NamedImportSpecifier) ImportsOnlyTypes() bool {
	return specifierImportsOnlyTypes(s)
}

func (s NamedImportSpecifier) ImportedName() (*syntax.Token, bool) {
	return specifierImportedName(s)
}

func (s NamedImportSpecifier) WithTypeToken(token *syntax.Token) AnyNamedImportSpecifier {
	var slot syntax.Slot
	if token != nil {
		slot = token
	}
	return NamedImportSpecifier{node: s.node.WithSlot(namedSpecifierTypeSlot, slot)}
}

func (s NamedImportSpecifier) anyNamedImportSpecifier() {}

func (s NamedImportSpecifier) anyImportSpecifier() {}

// ShorthandNamedImportSpecifier is `a` (possibly `type a`); the imported and
// local names coincide.
type ShorthandNamedImportSpecifier struct {
	node *syntax.Node
}

func (s ShorthandNamedImportSpecifier) Syntax() *syntax.Node { return s.node }

func (s ShorthandNamedImportSpecifier) TypeToken() (*syntax.Token, bool) {
	return typeTokenAt(s.node, shorthandTypeSlot)
}

func (s ShorthandNamedImportSpecifier) LocalBinding() (AnyBinding, error) {
	binding, ok := AsAnyBinding(s.node.SlotNode(shorthandLocalSlot))
	if !ok {
		return nil, syntax.ErrMissing
	}
	return binding, nil
}

func (s ShorthandNamedImportSpecifier) LocalName() (AnyBinding, bool) {
	binding, err := s.LocalBinding()
	if err != nil {
		return nil, false
	}
	return binding, true
}

func (s ShorthandNamedImportSpecifier) ImportClause() (AnyImportClause, bool) {
	return specifierImportClause(s.node)
}

func (s ShorthandNamedImportSpecifier) ImportsOnlyTypes() bool {
	return specifierImportsOnlyTypes(s)
}

func (s ShorthandNamedImportSpecifier) ImportedName() (*syntax.Token, bool) {
	return specifierImportedName(s)
}

func (s ShorthandNamedImportSpecifier) WithTypeToken(token *syntax.Token) AnyNamedImportSpecifier {
	var slot syntax.Slot
	if token != nil {
		slot = token
	}
	return ShorthandNamedImportSpecifier{node: s.node.WithSlot(shorthandTypeSlot, slot)}
}

func (s ShorthandNamedImportSpecifier) anyNamedImportSpecifier() {}

func (s ShorthandNamedImportSpecifier) anyImportSpecifier() {}

// BogusNamedImportSpecifier is an error-recovered specifier region. Every
// query on it reports absence and WithTypeToken is a no-op.
type BogusNamedImportSpecifier struct {
	node *syntax.Node
}

func (s BogusNamedImportSpecifier) Syntax() *syntax.Node { return s.node }

func (s BogusNamedImportSpecifier) TypeToken() (*syntax.Token, bool) { return nil, false }

func (s BogusNamedImportSpecifier) LocalName() (AnyBinding, bool) { return nil, false }

func (s BogusNamedImportSpecifier) ImportClause() (AnyImportClause, bool) {
	return specifierImportClause(s.node)
}

func (s BogusNamedImportSpecifier) ImportsOnlyTypes() bool {
	return specifierImportsOnlyTypes(s)
}

func (s BogusNamedImportSpecifier) ImportedName() (*syntax.Token, bool) { return nil, false }

func (s BogusNamedImportSpecifier) WithTypeToken(*syntax.Token) AnyNamedImportSpecifier {
	return s
}

func (s BogusNamedImportSpecifier) anyNamedImportSpecifier() {}

// NamespaceImportSpecifier is `* as ns`.
type NamespaceImportSpecifier struct {
	node *syntax.Node
}

func (s NamespaceImportSpecifier) Syntax() *syntax.Node { return s.node }

func (s NamespaceImportSpecifier) LocalBinding() (AnyBinding, error) {
	binding, ok := AsAnyBinding(s.node.SlotNode(namespaceLocalSlot))
	if !ok {
		return nil, syntax.ErrMissing
	}
	return binding, nil
}

func (s NamespaceImportSpecifier) anyImportSpecifier() {}

// DefaultImportSpecifier is the bare default binding of `import A from "m"`.
type DefaultImportSpecifier struct {
	node *syntax.Node
}

func AsDefaultImportSpecifier(node *syntax.Node) (DefaultImportSpecifier, bool) {
	if node == nil || node.Kind() != syntax.KindDefaultImportSpecifier {
		return DefaultImportSpecifier{}, false
	}
	return DefaultImportSpecifier{node: node}, true
}

func (s DefaultImportSpecifier) Syntax() *syntax.Node { return s.node }

func (s DefaultImportSpecifier) LocalBinding() (AnyBinding, error) {
	binding, ok := AsAnyBinding(s.node.SlotNode(defaultLocalSlot))
	if !ok {
		return nil, syntax.ErrMissing
	}
	return binding, nil
}

func (s DefaultImportSpecifier) anyImportSpecifier() {}

// AnyImportSpecifier is the broader specifier set covering every clause
// shape that binds a local name.
type AnyImportSpecifier interface {
	Syntax() *syntax.Node

	// LocalBinding returns the specifier's local binding; a missing slot is
	// a tree-access error.
	LocalBinding() (AnyBinding, error)

	anyImportSpecifier()
}

func AsAnyImportSpecifier(node *syntax.Node) (AnyImportSpecifier, bool) {
	if node == nil {
		return nil, false
	}
	switch node.Kind() {
	case syntax.KindNamedImportSpecifier:
		return NamedImportSpecifier{node: node}, true
	case syntax.KindShorthandNamedImportSpecifier:
		return ShorthandNamedImportSpecifier{node: node}, true
	case syntax.KindNamespaceImportSpecifier:
		return NamespaceImportSpecifier{node: node}, true
	case syntax.KindDefaultImportSpecifier:
		return DefaultImportSpecifier{node: node}, true
	default:
		return nil, false
	}
}
