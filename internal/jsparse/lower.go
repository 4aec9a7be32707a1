package jsparse

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/cr7pt0gr4ph7/biome/internal/jsast"
	"github.com/cr7pt0gr4ph7/biome/internal/syntax"
)

// lowerer converts the tree-sitter CST into the typed syntax-tree model.
// Import-bearing constructs get their exact typed shape; everything else is
// lowered structurally so nested calls are still reachable.
type lowerer struct {
	content []byte
}

func (l *lowerer) text(node *sitter.Node) string {
	return string(l.content[node.StartByte():node.EndByte()])
}

func (l *lowerer) pos(node *sitter.Node) syntax.Pos {
	point := node.StartPoint()
	return syntax.Pos{
		Offset: int(node.StartByte()),
		Line:   int(point.Row) + 1,
		Column: int(point.Column) + 1,
	}
}

func (l *lowerer) token(kind syntax.Kind, node *sitter.Node) *syntax.Token {
	return syntax.NewTokenAt(kind, l.text(node), l.pos(node))
}

func (l *lowerer) lowerProgram(root *sitter.Node) *syntax.Node {
	slots := l.lowerNamedChildren(root)
	return syntax.NewNodeAt(syntax.KindModule, l.pos(root), slots...)
}

func (l *lowerer) lowerNamedChildren(node *sitter.Node) []syntax.Slot {
	count := int(node.NamedChildCount())
	slots := make([]syntax.Slot, 0, count)
	for i := 0; i < count; i++ {
		slots = append(slots, l.lowerNode(node.NamedChild(i)))
	}
	return slots
}

// lowerNode always produces a node, never a bare token.
func (l *lowerer) lowerNode(node *sitter.Node) *syntax.Node {
	switch node.Type() {
	case "import_statement":
		return l.lowerImport(node)
	case "call_expression":
		return l.lowerCall(node)
	case "module":
		return l.lowerModuleDeclaration(node)
	case "string":
		return jsast.NewStringLiteralExpression(l.token(syntax.KindStringLiteral, node))
	case "number":
		return jsast.NewNumberLiteralExpression(l.token(syntax.KindNumberLiteral, node))
	case "identifier":
		return jsast.NewIdentifierExpression(jsast.NewReferenceIdentifier(l.token(syntax.KindIdent, node)))
	default:
		kind := syntax.KindUnknown
		if node.IsError() {
			kind = syntax.KindBogus
		}
		if node.NamedChildCount() == 0 {
			return syntax.NewNodeAt(kind, l.pos(node), l.token(syntax.KindUnknown, node))
		}
		return syntax.NewNodeAt(kind, l.pos(node), l.lowerNamedChildren(node)...)
	}
}

func (l *lowerer) lowerImport(node *sitter.Node) *syntax.Node {
	importToken := l.keywordToken(node, "import", syntax.KindImportKw)
	typeToken := l.keywordToken(node, "type", syntax.KindTypeKw)
	fromToken := l.keywordToken(node, "from", syntax.KindFromKw)

	var source *syntax.Node
	if sourceNode := node.ChildByFieldName("source"); sourceNode != nil {
		source = l.lowerModuleSource(sourceNode).Syntax()
	}
	assertion := l.lowerAssertion(node)

	clauseNode := l.firstChildOfType(node, "import_clause")
	var clause jsast.AnyImportClause
	if clauseNode == nil {
		clause = jsast.NewImportBareClause(source, assertion)
	} else {
		clause = l.lowerImportClause(clauseNode, typeToken, fromToken, source, assertion)
	}
	return jsast.NewImport(importToken, clause).Syntax()
}

func (l *lowerer) lowerImportClause(clause *sitter.Node, typeToken, fromToken *syntax.Token, source, assertion *syntax.Node) jsast.AnyImportClause {
	var defaultSpecifier *jsast.DefaultImportSpecifier
	var second *syntax.Node

	count := int(clause.NamedChildCount())
	for i := 0; i < count; i++ {
		child := clause.NamedChild(i)
		switch child.Type() {
		case "identifier":
			specifier := jsast.NewDefaultImportSpecifier(
				jsast.NewIdentifierBinding(l.token(syntax.KindIdent, child)))
			defaultSpecifier = &specifier
		case "namespace_import":
			second = l.lowerNamespaceImport(child).Syntax()
		case "named_imports":
			second = l.lowerNamedImports(child).Syntax()
		}
	}

	switch {
	case defaultSpecifier != nil && second != nil:
		return jsast.NewImportCombinedClause(*defaultSpecifier, jsast.Comma(), second, fromToken, source, assertion)
	case defaultSpecifier != nil:
		return jsast.NewImportDefaultClause(typeToken, *defaultSpecifier, fromToken, source, assertion)
	case second != nil && second.Kind() == syntax.KindNamespaceImportSpecifier:
		specifier, _ := jsast.AsAnyImportSpecifier(second)
		return jsast.NewImportNamespaceClause(typeToken, specifier.(jsast.NamespaceImportSpecifier), fromToken, source, assertion)
	case second != nil:
		specifiers, _ := jsast.AsNamedImportSpecifiers(second)
		return jsast.NewImportNamedClause(typeToken, specifiers, fromToken, source, assertion)
	default:
		return jsast.NewImportBareClause(source, assertion)
	}
}

func (l *lowerer) lowerNamespaceImport(node *sitter.Node) jsast.NamespaceImportSpecifier {
	star := l.keywordToken(node, "*", syntax.KindStar)
	as := l.keywordToken(node, "as", syntax.KindAsKw)

	binding := jsast.NewBogusBinding()
	if name := l.firstChildOfType(node, "identifier"); name != nil {
		return jsast.NewNamespaceImportSpecifier(star, as,
			jsast.NewIdentifierBinding(l.token(syntax.KindIdent, name)))
	}
	return jsast.NewNamespaceImportSpecifier(star, as, binding)
}

func (l *lowerer) lowerNamedImports(node *sitter.Node) jsast.NamedImportSpecifiers {
	lCurly := l.keywordToken(node, "{", syntax.KindLCurly)
	rCurly := l.keywordToken(node, "}", syntax.KindRCurly)

	items := make([]syntax.Slot, 0, int(node.NamedChildCount()))
	count := int(node.ChildCount())
	for i := 0; i < count; i++ {
		child := node.Child(i)
		switch child.Type() {
		case "import_specifier":
			items = append(items, l.lowerImportSpecifier(child).Syntax())
		case ",":
			items = append(items, l.token(syntax.KindComma, child))
		case "{", "}":
		default:
			if child.IsNamed() {
				items = append(items, jsast.NewBogusNamedImportSpecifier(l.token(syntax.KindUnknown, child)).Syntax())
			}
		}
	}
	return jsast.NewNamedImportSpecifiers(lCurly, jsast.NewNamedImportSpecifierList(items...), rCurly)
}

func (l *lowerer) lowerImportSpecifier(node *sitter.Node) jsast.AnyNamedImportSpecifier {
	typeToken := l.keywordToken(node, "type", syntax.KindTypeKw)
	nameNode := node.ChildByFieldName("name")
	aliasNode := node.ChildByFieldName("alias")

	if nameNode == nil {
		return jsast.NewBogusNamedImportSpecifier(l.token(syntax.KindUnknown, node))
	}
	if aliasNode != nil {
		return jsast.NewNamedImportSpecifier(
			typeToken,
			l.token(syntax.KindIdent, nameNode),
			l.keywordToken(node, "as", syntax.KindAsKw),
			jsast.NewIdentifierBinding(l.token(syntax.KindIdent, aliasNode)))
	}
	return jsast.NewShorthandNamedImportSpecifier(typeToken,
		jsast.NewIdentifierBinding(l.token(syntax.KindIdent, nameNode)))
}

func (l *lowerer) lowerModuleSource(node *sitter.Node) jsast.ModuleSource {
	return jsast.NewModuleSource(l.token(syntax.KindStringLiteral, node))
}

func (l *lowerer) lowerAssertion(node *sitter.Node) *syntax.Node {
	attribute := l.firstChildOfType(node, "import_attribute")
	if attribute == nil {
		return nil
	}
	return jsast.NewImportAssertion(l.token(syntax.KindUnknown, attribute)).Syntax()
}

func (l *lowerer) lowerCall(node *sitter.Node) *syntax.Node {
	function := node.ChildByFieldName("function")
	arguments := l.lowerArguments(node.ChildByFieldName("arguments"))

	if function != nil && function.Type() == "import" {
		return jsast.NewImportCallExpression(l.token(syntax.KindImportKw, function), arguments).Syntax()
	}

	var callee *syntax.Node
	if function != nil {
		callee = l.lowerNode(function)
	} else {
		callee = syntax.NewNodeAt(syntax.KindBogus, l.pos(node))
	}
	return jsast.NewCallExpression(callee, arguments).Syntax()
}

func (l *lowerer) lowerArguments(node *sitter.Node) jsast.CallArguments {
	if node == nil {
		return jsast.NewCallArguments(jsast.LParen(), jsast.NewCallArgumentList(), jsast.RParen())
	}

	lParen := l.keywordToken(node, "(", syntax.KindLParen)
	rParen := l.keywordToken(node, ")", syntax.KindRParen)

	items := make([]syntax.Slot, 0, int(node.NamedChildCount()))
	count := int(node.ChildCount())
	for i := 0; i < count; i++ {
		child := node.Child(i)
		switch {
		case child.Type() == ",":
			items = append(items, l.token(syntax.KindComma, child))
		case child.IsNamed():
			items = append(items, l.lowerNode(child))
		}
	}
	return jsast.NewCallArguments(lParen, jsast.NewCallArgumentList(items...), rParen)
}

// lowerModuleDeclaration handles `declare module "x" {}`. Namespace-style
// module declarations with identifier names are lowered structurally.
func (l *lowerer) lowerModuleDeclaration(node *sitter.Node) *syntax.Node {
	name := node.ChildByFieldName("name")
	if name == nil || name.Type() != "string" {
		if node.NamedChildCount() == 0 {
			return syntax.NewNodeAt(syntax.KindUnknown, l.pos(node), l.token(syntax.KindUnknown, node))
		}
		return syntax.NewNodeAt(syntax.KindUnknown, l.pos(node), l.lowerNamedChildren(node)...)
	}

	module := l.keywordToken(node, "module", syntax.KindModuleKw)
	source := l.lowerModuleSource(name).Syntax()

	var body *syntax.Node
	if bodyNode := node.ChildByFieldName("body"); bodyNode != nil {
		body = syntax.NewNodeAt(syntax.KindTsModuleBlock, l.pos(bodyNode), l.lowerNamedChildren(bodyNode)...)
	}
	return jsast.NewTsExternalModuleDeclaration(module, source, body)
}

// keywordToken finds the first immediate child with the given type and turns
// it into a token; absent keywords yield nil.
func (l *lowerer) keywordToken(node *sitter.Node, childType string, kind syntax.Kind) *syntax.Token {
	child := l.firstChildOfType(node, childType)
	if child == nil {
		return nil
	}
	return l.token(kind, child)
}

func (l *lowerer) firstChildOfType(node *sitter.Node, childType string) *sitter.Node {
	count := int(node.ChildCount())
	for i := 0; i < count; i++ {
		child := node.Child(i)
		if child.Type() == childType {
			return child
		}
	}
	return nil
}
