package jsast

import (
	"errors"
	"testing"

	"github.com/cr7pt0gr4ph7/biome/internal/syntax"
)

func bareImport(source string) Import {
	clause := NewImportBareClause(NewModuleSource(StringLiteral(source)).Syntax(), nil)
	return NewImport(ImportKw(), clause)
}

func namedImport(typeToken *syntax.Token, specifiers ...AnyNamedImportSpecifier) Import {
	items := make([]syntax.Slot, 0, len(specifiers)*2)
	for i, specifier := range specifiers {
		if i > 0 {
			items = append(items, Comma())
		}
		items = append(items, specifier.Syntax())
	}
	group := NewNamedImportSpecifiers(LCurly(), NewNamedImportSpecifierList(items...), RCurly())
	clause := NewImportNamedClause(typeToken, group, FromKw(), NewModuleSource(StringLiteral("m")).Syntax(), nil)
	return NewImport(ImportKw(), clause)
}

func firstSpecifier(t *testing.T, imported Import) AnyNamedImportSpecifier {
	t.Helper()
	clause, err := imported.Clause()
	if err != nil {
		t.Fatalf("clause: %v", err)
	}
	named, ok := clause.(ImportNamedClause)
	if !ok {
		t.Fatalf("expected named clause, got %T", clause)
	}
	group, ok := named.Specifiers()
	if !ok {
		t.Fatalf("missing specifier group")
	}
	specifiers := group.Specifiers()
	if len(specifiers) == 0 {
		t.Fatalf("no specifiers")
	}
	return specifiers[0]
}

func TestImportSourceTextAcrossClauseShapes(t *testing.T) {
	source := func() *syntax.Node { return NewModuleSource(StringLiteral("react")).Syntax() }
	binding := func() IdentifierBinding { return NewIdentifierBinding(Ident("React")) }

	cases := map[string]Import{
		"bare": NewImport(ImportKw(), NewImportBareClause(source(), nil)),
		"default": NewImport(ImportKw(), NewImportDefaultClause(
			nil, NewDefaultImportSpecifier(binding()), FromKw(), source(), nil)),
		"named": NewImport(ImportKw(), NewImportNamedClause(
			nil,
			NewNamedImportSpecifiers(LCurly(), NewNamedImportSpecifierList(
				NewShorthandNamedImportSpecifier(nil, binding()).Syntax()), RCurly()),
			FromKw(), source(), nil)),
		"namespace": NewImport(ImportKw(), NewImportNamespaceClause(
			nil, NewNamespaceImportSpecifier(Star(), AsKw(), binding()), FromKw(), source(), nil)),
		"combined": NewImport(ImportKw(), NewImportCombinedClause(
			NewDefaultImportSpecifier(binding()), Comma(),
			NewNamespaceImportSpecifier(Star(), AsKw(), NewIdentifierBinding(Ident("ns"))).Syntax(),
			FromKw(), source(), nil)),
	}

	for name, imported := range cases {
		text, err := imported.SourceText()
		if err != nil {
			t.Fatalf("%s: source text: %v", name, err)
		}
		if text != "react" {
			t.Fatalf("%s: unexpected source text %q", name, text)
		}
		token, err := imported.SourceToken()
		if err != nil {
			t.Fatalf("%s: source token: %v", name, err)
		}
		if token.Text() != "\"react\"" {
			t.Fatalf("%s: unexpected source token %q", name, token.Text())
		}
	}
}

func TestImportSourceTextIdempotent(t *testing.T) {
	imported := bareImport("lodash")
	first, err := imported.SourceText()
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := imported.SourceText()
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if first != second {
		t.Fatalf("accessor diverged: %q vs %q", first, second)
	}
}

func TestImportMissingClauseIsError(t *testing.T) {
	node := syntax.NewNode(syntax.KindImport, ImportKw(), nil, nil)
	imported, ok := AsImport(node)
	if !ok {
		t.Fatalf("cast failed")
	}
	if _, err := imported.SourceText(); !errors.Is(err, syntax.ErrMissing) {
		t.Fatalf("expected ErrMissing, got %v", err)
	}
}

func TestImportMetavariableSourceIsDistinctError(t *testing.T) {
	clause := NewImportBareClause(NewMetavariable(Ident("$SOURCE")).Syntax(), nil)
	imported := NewImport(ImportKw(), clause)

	if _, err := imported.SourceText(); !errors.Is(err, syntax.ErrMetavariable) {
		t.Fatalf("expected ErrMetavariable, got %v", err)
	}
	if _, err := imported.SourceToken(); !errors.Is(err, syntax.ErrMetavariable) {
		t.Fatalf("expected ErrMetavariable, got %v", err)
	}
}

func TestClauseTypeTokenDispatch(t *testing.T) {
	binding := func() IdentifierBinding { return NewIdentifierBinding(Ident("X")) }
	source := func() *syntax.Node { return NewModuleSource(StringLiteral("m")).Syntax() }

	bare := NewImportBareClause(source(), nil)
	if _, ok := bare.TypeToken(); ok {
		t.Fatalf("bare clause should not carry a type token")
	}

	combined := NewImportCombinedClause(
		NewDefaultImportSpecifier(binding()), Comma(),
		NewNamespaceImportSpecifier(Star(), AsKw(), binding()).Syntax(),
		FromKw(), source(), nil)
	if _, ok := combined.TypeToken(); ok {
		t.Fatalf("combined clause should not carry a type token")
	}

	typed := NewImportDefaultClause(TypeKw(), NewDefaultImportSpecifier(binding()), FromKw(), source(), nil)
	token, ok := typed.TypeToken()
	if !ok || token.Text() != "type" {
		t.Fatalf("expected type token on default clause")
	}
}

func TestClauseAssertion(t *testing.T) {
	assertion := NewImportAssertion(WithKw(), LCurly(), RCurly())
	clause := NewImportBareClause(NewModuleSource(StringLiteral("data.json")).Syntax(), assertion.Syntax())

	got, ok := clause.Assertion()
	if !ok {
		t.Fatalf("expected assertion")
	}
	if got.Syntax().Kind() != syntax.KindImportAssertion {
		t.Fatalf("unexpected assertion kind %v", got.Syntax().Kind())
	}

	plain := NewImportBareClause(NewModuleSource(StringLiteral("m")).Syntax(), nil)
	if _, ok := plain.Assertion(); ok {
		t.Fatalf("expected no assertion")
	}
}

func TestSpecifierImportClauseFixedDepthWalk(t *testing.T) {
	specifier := NewShorthandNamedImportSpecifier(nil, NewIdentifierBinding(Ident("X")))
	imported := namedImport(nil, specifier)

	clause, ok := firstSpecifier(t, imported).ImportClause()
	if !ok {
		t.Fatalf("expected owning clause")
	}
	if _, ok := clause.(ImportNamedClause); !ok {
		t.Fatalf("unexpected clause variant %T", clause)
	}

	// A detached specifier has no third ancestor, so the walk reports absence.
	if _, ok := specifier.ImportClause(); ok {
		t.Fatalf("detached specifier should have no clause")
	}
}

func TestImportsOnlyTypes(t *testing.T) {
	// { type X } inside a plain clause.
	typedSpecifier := namedImport(nil, NewShorthandNamedImportSpecifier(TypeKw(), NewIdentifierBinding(Ident("X"))))
	if !firstSpecifier(t, typedSpecifier).ImportsOnlyTypes() {
		t.Fatalf("specifier-level type marker not honored")
	}

	// { X } inside `import type { X } from "m"`.
	typedClause := namedImport(TypeKw(), NewShorthandNamedImportSpecifier(nil, NewIdentifierBinding(Ident("X"))))
	if !firstSpecifier(t, typedClause).ImportsOnlyTypes() {
		t.Fatalf("clause-level type marker not honored")
	}

	// { X } inside a plain clause.
	plain := namedImport(nil, NewShorthandNamedImportSpecifier(nil, NewIdentifierBinding(Ident("X"))))
	if firstSpecifier(t, plain).ImportsOnlyTypes() {
		t.Fatalf("plain specifier reported as type-only")
	}
}

func TestSpecifierNames(t *testing.T) {
	renamed := NewNamedImportSpecifier(nil, Ident("a"), AsKw(), NewIdentifierBinding(Ident("b")))

	binding, ok := renamed.LocalName()
	if !ok {
		t.Fatalf("expected local binding")
	}
	identifier, ok := binding.(IdentifierBinding)
	if !ok {
		t.Fatalf("expected identifier binding, got %T", binding)
	}
	name, err := identifier.NameToken()
	if err != nil || name.Text() != "b" {
		t.Fatalf("unexpected local name: %v %v", name, err)
	}

	// Imported name resolves through the local binding.
	imported, ok := renamed.ImportedName()
	if !ok || imported.Text() != "b" {
		t.Fatalf("unexpected imported name: %v", imported)
	}

	shorthand := NewShorthandNamedImportSpecifier(nil, NewIdentifierBinding(Ident("React")))
	name, ok = shorthand.ImportedName()
	if !ok || name.Text() != "React" {
		t.Fatalf("unexpected shorthand imported name: %v", name)
	}

	bogus := NewBogusNamedImportSpecifier(Ident("???"))
	if _, ok := bogus.LocalName(); ok {
		t.Fatalf("bogus specifier should have no local name")
	}
	if _, ok := bogus.ImportedName(); ok {
		t.Fatalf("bogus specifier should have no imported name")
	}
}

func TestWithTypeTokenIsImmutable(t *testing.T) {
	original := NewShorthandNamedImportSpecifier(TypeKw(), NewIdentifierBinding(Ident("X")))

	stripped := original.WithTypeToken(nil)
	if _, ok := stripped.TypeToken(); ok {
		t.Fatalf("expected stripped copy to have no type token")
	}
	if _, ok := original.TypeToken(); !ok {
		t.Fatalf("original specifier lost its type token")
	}

	added := stripped.WithTypeToken(TypeKw())
	token, ok := added.TypeToken()
	if !ok || token.Text() != "type" {
		t.Fatalf("expected re-added type token")
	}

	bogus := NewBogusNamedImportSpecifier()
	if got := bogus.WithTypeToken(TypeKw()); got.Syntax() != bogus.Syntax() {
		t.Fatalf("bogus specifier should be returned unchanged")
	}
}

func TestAnyImportSpecifierLocalBinding(t *testing.T) {
	specifiers := []AnyImportSpecifier{
		NewNamedImportSpecifier(nil, Ident("a"), AsKw(), NewIdentifierBinding(Ident("b"))),
		NewShorthandNamedImportSpecifier(nil, NewIdentifierBinding(Ident("c"))),
		NewNamespaceImportSpecifier(Star(), AsKw(), NewIdentifierBinding(Ident("ns"))),
		NewDefaultImportSpecifier(NewIdentifierBinding(Ident("d"))),
	}
	want := []string{"b", "c", "ns", "d"}

	for i, specifier := range specifiers {
		binding, err := specifier.LocalBinding()
		if err != nil {
			t.Fatalf("specifier %d: %v", i, err)
		}
		identifier, ok := binding.(IdentifierBinding)
		if !ok {
			t.Fatalf("specifier %d: unexpected binding %T", i, binding)
		}
		token, err := identifier.NameToken()
		if err != nil || token.Text() != want[i] {
			t.Fatalf("specifier %d: unexpected name %v %v", i, token, err)
		}
	}
}

func TestInnerStringTextLeavesEscapesVerbatim(t *testing.T) {
	token := syntax.NewToken(syntax.KindStringLiteral, "'a\\n\\'b'")
	if got := InnerStringText(token); got != "a\\n\\'b" {
		t.Fatalf("unexpected inner text: %q", got)
	}
	if got := InnerStringText(StringLiteral("react")); got != "react" {
		t.Fatalf("unexpected inner text: %q", got)
	}
}
