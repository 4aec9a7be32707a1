package jsast

import "github.com/cr7pt0gr4ph7/biome/internal/syntax"

// AnyImportClause is the closed set of clause shapes an import declaration
// can carry. Each variant resolves the type-only marker, the module source,
// and the optional import assertion from its own slots.
type AnyImportClause interface {
	Syntax() *syntax.Node

	// TypeToken returns the clause-level `type` keyword, if any. Bare and
	// combined clauses never carry one.
	TypeToken() (*syntax.Token, bool)

	// Source returns the clause's module source. A syntactically absent
	// source is ErrMissing; a template placeholder is ErrMetavariable.
	Source() (ModuleSource, error)

	// Assertion returns the clause's `with {...}` assertion, if any.
	Assertion() (ImportAssertion, bool)

	anyImportClause()
}

func AsAnyImportClause(node *syntax.Node) (AnyImportClause, bool) {
	if node == nil {
		return nil, false
	}
	switch node.Kind() {
	case syntax.KindImportBareClause:
		return ImportBareClause{node: node}, true
	case syntax.KindImportDefaultClause:
		return ImportDefaultClause{node: node}, true
	case syntax.KindImportNamedClause:
		return ImportNamedClause{node: node}, true
	case syntax.KindImportNamespaceClause:
		return ImportNamespaceClause{node: node}, true
	case syntax.KindImportCombinedClause:
		return ImportCombinedClause{node: node}, true
	default:
		return nil, false
	}
}

// normalizeSource rejects placeholders so callers only ever see a concrete
// string-literal source.
func normalizeSource(raw *syntax.Node) (ModuleSource, error) {
	if raw == nil {
		return ModuleSource{}, syntax.ErrMissing
	}
	switch raw.Kind() {
	case syntax.KindModuleSource:
		return ModuleSource{node: raw}, nil
	case syntax.KindMetavariable:
		return ModuleSource{}, syntax.ErrMetavariable
	default:
		return ModuleSource{}, syntax.ErrMissing
	}
}

func assertionAt(node *syntax.Node, slot int) (ImportAssertion, bool) {
	return AsImportAssertion(node.SlotNode(slot))
}

func typeTokenAt(node *syntax.Node, slot int) (*syntax.Token, bool) {
	token := node.SlotToken(slot)
	if token == nil || token.Kind() != syntax.KindTypeKw {
		return nil, false
	}
	return token, true
}

// ImportBareClause is `import "source"`.
type ImportBareClause struct {
	node *syntax.Node
}

func (c ImportBareClause) Syntax() *syntax.Node { return c.node }

func (c ImportBareClause) TypeToken() (*syntax.Token, bool) { return nil, false }

func (c ImportBareClause) Source() (ModuleSource, error) {
	return normalizeSource(c.node.SlotNode(bareSourceSlot))
}

func (c ImportBareClause) Assertion() (ImportAssertion, bool) {
	return assertionAt(c.node, bareAssertionSlot)
}

func (c ImportBareClause) anyImportClause() {}

// ImportDefaultClause is `import A from "source"`.
type ImportDefaultClause struct {
	node *syntax.Node
}

func (c ImportDefaultClause) Syntax() *syntax.Node { return c.node }

func (c ImportDefaultClause) TypeToken() (*syntax.Token, bool) {
	return typeTokenAt(c.node, clauseTypeSlot)
}

func (c ImportDefaultClause) Source() (ModuleSource, error) {
	return normalizeSource(c.node.SlotNode(clauseSourceSlot))
}

func (c ImportDefaultClause) Assertion() (ImportAssertion, bool) {
	return assertionAt(c.node, clauseAssertionSlot)
}

// DefaultSpecifier returns the clause's default import specifier.
func (c ImportDefaultClause) DefaultSpecifier() (DefaultImportSpecifier, bool) {
	return AsDefaultImportSpecifier(c.node.SlotNode(clauseInnerSlot))
}

func (c ImportDefaultClause) anyImportClause() {}

// ImportNamedClause is `import { a, b as c } from "source"`.
type ImportNamedClause struct {
	node *syntax.Node
}

func (c ImportNamedClause) Syntax() *syntax.Node { return c.node }

func (c ImportNamedClause) TypeToken() (*syntax.Token, bool) {
	return typeTokenAt(c.node, clauseTypeSlot)
}

func (c ImportNamedClause) Source() (ModuleSource, error) {
	return normalizeSource(c.node.SlotNode(clauseSourceSlot))
}

func (c ImportNamedClause) Assertion() (ImportAssertion, bool) {
	return assertionAt(c.node, clauseAssertionSlot)
}

// Specifiers returns the braces-wrapped specifier group.
func (c ImportNamedClause) Specifiers() (NamedImportSpecifiers, bool) {
	return AsNamedImportSpecifiers(c.node.SlotNode(clauseInnerSlot))
}

func (c ImportNamedClause) anyImportClause() {}

// ImportNamespaceClause is `import * as ns from "source"`.
type ImportNamespaceClause struct {
	node *syntax.Node
}

func (c ImportNamespaceClause) Syntax() *syntax.Node { return c.node }

func (c ImportNamespaceClause) TypeToken() (*syntax.Token, bool) {
	return typeTokenAt(c.node, clauseTypeSlot)
}

func (c ImportNamespaceClause) Source() (ModuleSource, error) {
	return normalizeSource(c.node.SlotNode(clauseSourceSlot))
}

func (c ImportNamespaceClause) Assertion() (ImportAssertion, bool) {
	return assertionAt(c.node, clauseAssertionSlot)
}

// NamespaceSpecifier returns the clause's `* as ns` specifier.
func (c ImportNamespaceClause) NamespaceSpecifier() (NamespaceImportSpecifier, bool) {
	node := c.node.SlotNode(clauseInnerSlot)
	if node == nil || node.Kind() != syntax.KindNamespaceImportSpecifier {
		return NamespaceImportSpecifier{}, false
	}
	return NamespaceImportSpecifier{node: node}, true
}

func (c ImportNamespaceClause) anyImportClause() {}

// ImportCombinedClause is `import A, { b } from "source"` or
// `import A, * as ns from "source"`.
type ImportCombinedClause struct {
	node *syntax.Node
}

func (c ImportCombinedClause) Syntax() *syntax.Node { return c.node }

func (c ImportCombinedClause) TypeToken() (*syntax.Token, bool) { return nil, false }

func (c ImportCombinedClause) Source() (ModuleSource, error) {
	return normalizeSource(c.node.SlotNode(combinedSourceSlot))
}

func (c ImportCombinedClause) Assertion() (ImportAssertion, bool) {
	return assertionAt(c.node, combinedAssertionSlot)
}

// DefaultSpecifier returns the default binding before the comma.
func (c ImportCombinedClause) DefaultSpecifier() (DefaultImportSpecifier, bool) {
	return AsDefaultImportSpecifier(c.node.SlotNode(combinedDefaultSlot))
}

// SecondSpecifier returns the specifier group after the comma: a
// NamedImportSpecifiers or NamespaceImportSpecifier node.
func (c ImportCombinedClause) SecondSpecifier() (*syntax.Node, bool) {
	node := c.node.SlotNode(combinedSecondSlot)
	if node == nil {
		return nil, false
	}
	return node, true
}

func (c ImportCombinedClause) anyImportClause() {}
