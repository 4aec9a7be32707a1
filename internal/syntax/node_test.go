package syntax

import "testing"

func TestNewNodeSetsParents(t *testing.T) {
	inner := NewNode(KindModuleSource, NewToken(KindStringLiteral, "\"react\""))
	outer := NewNode(KindImportBareClause, inner, nil)

	if got := outer.SlotNode(0); got == nil || got.Parent() != outer {
		t.Fatalf("expected slot 0 to be parented to outer")
	}
	if outer.SlotNode(1) != nil {
		t.Fatalf("expected empty slot 1")
	}
}

func TestNewNodeClonesAttachedChildren(t *testing.T) {
	source := NewNode(KindModuleSource, NewToken(KindStringLiteral, "\"a\""))
	first := NewNode(KindImportBareClause, source, nil)
	second := NewNode(KindImportBareClause, source, nil)

	if first.SlotNode(0).Parent() != first {
		t.Fatalf("first attachment lost its parent")
	}
	if second.SlotNode(0) == first.SlotNode(0) {
		t.Fatalf("expected second attachment to be a clone")
	}
	if second.SlotNode(0).Parent() != second {
		t.Fatalf("clone not parented to second")
	}
}

func TestWithSlotLeavesOriginalUntouched(t *testing.T) {
	token := NewToken(KindTypeKw, "type")
	node := NewNode(KindShorthandNamedImportSpecifier, token,
		NewNode(KindIdentifierBinding, NewToken(KindIdent, "X")))

	updated := node.WithSlot(0, nil)
	if updated.SlotToken(0) != nil {
		t.Fatalf("expected replaced slot to be empty")
	}
	if node.SlotToken(0) == nil || node.SlotToken(0).Text() != "type" {
		t.Fatalf("original node was mutated")
	}
	if updated.Parent() != nil {
		t.Fatalf("expected detached copy")
	}
	if updated.SlotNode(1) == nil || updated.SlotNode(1).SlotToken(0).Text() != "X" {
		t.Fatalf("expected untouched slots to be carried over")
	}
}

func TestAncestorWalksExactDepth(t *testing.T) {
	leaf := NewNode(KindNamedImportSpecifier, nil, NewToken(KindIdent, "a"), nil, nil)
	list := NewNode(KindNamedImportSpecifierList, leaf)
	braces := NewNode(KindNamedImportSpecifiers, NewToken(KindLCurly, "{"), list, NewToken(KindRCurly, "}"))
	clause := NewNode(KindImportNamedClause, nil, braces, nil, nil, nil)

	specifier := clause.SlotNode(1).SlotNode(1).SlotNode(0)
	if got := specifier.Ancestor(3); got != clause {
		t.Fatalf("expected 3rd ancestor to be the clause, got %v", got)
	}
	if got := specifier.Ancestor(4); got != nil {
		t.Fatalf("expected walking past the root to yield nil, got %v", got)
	}
	if got := specifier.Ancestor(0); got != specifier {
		t.Fatalf("expected zero-depth walk to return the node itself")
	}
}

func TestTextIncludesTrivia(t *testing.T) {
	token := NewToken(KindStringLiteral, "\"react\"").WithLeadingTrivia(" ")
	source := NewNode(KindModuleSource, token)

	if got := source.Text(); got != " \"react\"" {
		t.Fatalf("unexpected text: %q", got)
	}
	if got := token.Text(); got != "\"react\"" {
		t.Fatalf("trivia leaked into token text: %q", got)
	}
}

func TestNthNodeSkipsTokens(t *testing.T) {
	list := NewNode(KindCallArgumentList,
		NewNode(KindStringLiteralExpression, NewToken(KindStringLiteral, "\"a\"")),
		NewToken(KindComma, ","),
		NewNode(KindNumberLiteralExpression, NewToken(KindNumberLiteral, "1")),
	)

	if got := list.NthNode(0); got == nil || got.Kind() != KindStringLiteralExpression {
		t.Fatalf("unexpected first argument: %v", got)
	}
	if got := list.NthNode(1); got == nil || got.Kind() != KindNumberLiteralExpression {
		t.Fatalf("unexpected second argument: %v", got)
	}
	if got := list.NthNode(2); got != nil {
		t.Fatalf("expected absence past the last argument, got %v", got)
	}
}
