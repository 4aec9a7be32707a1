package jsast

import "github.com/cr7pt0gr4ph7/biome/internal/syntax"

// Token constructors. StringLiteral wraps the value in double quotes; the
// keyword helpers produce detached tokens with their canonical text.

func StringLiteral(value string) *syntax.Token {
	return syntax.NewToken(syntax.KindStringLiteral, "\""+value+"\"")
}

func Ident(name string) *syntax.Token {
	return syntax.NewToken(syntax.KindIdent, name)
}

func ImportKw() *syntax.Token { return syntax.NewToken(syntax.KindImportKw, "import") }
func TypeKw() *syntax.Token   { return syntax.NewToken(syntax.KindTypeKw, "type") }
func FromKw() *syntax.Token   { return syntax.NewToken(syntax.KindFromKw, "from") }
func AsKw() *syntax.Token     { return syntax.NewToken(syntax.KindAsKw, "as") }
func WithKw() *syntax.Token   { return syntax.NewToken(syntax.KindWithKw, "with") }
func ModuleKw() *syntax.Token { return syntax.NewToken(syntax.KindModuleKw, "module") }
func Star() *syntax.Token     { return syntax.NewToken(syntax.KindStar, "*") }
func LCurly() *syntax.Token   { return syntax.NewToken(syntax.KindLCurly, "{") }
func RCurly() *syntax.Token   { return syntax.NewToken(syntax.KindRCurly, "}") }
func LParen() *syntax.Token   { return syntax.NewToken(syntax.KindLParen, "(") }
func RParen() *syntax.Token   { return syntax.NewToken(syntax.KindRParen, ")") }
func Comma() *syntax.Token    { return syntax.NewToken(syntax.KindComma, ",") }

func NewModuleSource(value *syntax.Token) ModuleSource {
	return ModuleSource{node: syntax.NewNode(syntax.KindModuleSource, value)}
}

func NewMetavariable(token *syntax.Token) Metavariable {
	return Metavariable{node: syntax.NewNode(syntax.KindMetavariable, token)}
}

func NewImportAssertion(slots ...syntax.Slot) ImportAssertion {
	return ImportAssertion{node: syntax.NewNode(syntax.KindImportAssertion, slots...)}
}

func NewIdentifierBinding(name *syntax.Token) IdentifierBinding {
	return IdentifierBinding{node: syntax.NewNode(syntax.KindIdentifierBinding, name)}
}

func NewBogusBinding(slots ...syntax.Slot) BogusBinding {
	return BogusBinding{node: syntax.NewNode(syntax.KindBogusBinding, slots...)}
}

func NewDefaultImportSpecifier(local AnyBinding) DefaultImportSpecifier {
	return DefaultImportSpecifier{node: syntax.NewNode(syntax.KindDefaultImportSpecifier, local.Syntax())}
}

func NewNamespaceImportSpecifier(star, as *syntax.Token, local AnyBinding) NamespaceImportSpecifier {
	return NamespaceImportSpecifier{node: syntax.NewNode(syntax.KindNamespaceImportSpecifier, star, as, local.Syntax())}
}

func NewNamedImportSpecifier(typeToken *syntax.Token, name *syntax.Token, as *syntax.Token, local AnyBinding) NamedImportSpecifier {
	return NamedImportSpecifier{node: syntax.NewNode(syntax.KindNamedImportSpecifier, typeToken, name, as, local.Syntax())}
}

func NewShorthandNamedImportSpecifier(typeToken *syntax.Token, local AnyBinding) ShorthandNamedImportSpecifier {
	return ShorthandNamedImportSpecifier{node: syntax.NewNode(syntax.KindShorthandNamedImportSpecifier, typeToken, local.Syntax())}
}

func NewBogusNamedImportSpecifier(slots ...syntax.Slot) BogusNamedImportSpecifier {
	return BogusNamedImportSpecifier{node: syntax.NewNode(syntax.KindBogusNamedImportSpecifier, slots...)}
}

// NewNamedImportSpecifierList accepts specifier nodes and separator tokens
// interleaved in source order.
func NewNamedImportSpecifierList(items ...syntax.Slot) *syntax.Node {
	return syntax.NewNode(syntax.KindNamedImportSpecifierList, items...)
}

func NewNamedImportSpecifiers(lCurly *syntax.Token, list *syntax.Node, rCurly *syntax.Token) NamedImportSpecifiers {
	return NamedImportSpecifiers{node: syntax.NewNode(syntax.KindNamedImportSpecifiers, lCurly, list, rCurly)}
}

// Clause constructors. The source is a ModuleSource or Metavariable node;
// typeToken and assertion may be nil.

func NewImportBareClause(source *syntax.Node, assertion *syntax.Node) ImportBareClause {
	return ImportBareClause{node: syntax.NewNode(syntax.KindImportBareClause, source, assertion)}
}

func NewImportDefaultClause(typeToken *syntax.Token, specifier DefaultImportSpecifier, from *syntax.Token, source *syntax.Node, assertion *syntax.Node) ImportDefaultClause {
	return ImportDefaultClause{node: syntax.NewNode(syntax.KindImportDefaultClause, typeToken, specifier.Syntax(), from, source, assertion)}
}

func NewImportNamedClause(typeToken *syntax.Token, specifiers NamedImportSpecifiers, from *syntax.Token, source *syntax.Node, assertion *syntax.Node) ImportNamedClause {
	return ImportNamedClause{node: syntax.NewNode(syntax.KindImportNamedClause, typeToken, specifiers.Syntax(), from, source, assertion)}
}

func NewImportNamespaceClause(typeToken *syntax.Token, specifier NamespaceImportSpecifier, from *syntax.Token, source *syntax.Node, assertion *syntax.Node) ImportNamespaceClause {
	return ImportNamespaceClause{node: syntax.NewNode(syntax.KindImportNamespaceClause, typeToken, specifier.Syntax(), from, source, assertion)}
}

// NewImportCombinedClause takes the second specifier group as a node: either
// a NamedImportSpecifiers or a NamespaceImportSpecifier syntax node.
func NewImportCombinedClause(defaultSpecifier DefaultImportSpecifier, comma *syntax.Token, second *syntax.Node, from *syntax.Token, source *syntax.Node, assertion *syntax.Node) ImportCombinedClause {
	return ImportCombinedClause{node: syntax.NewNode(syntax.KindImportCombinedClause, defaultSpecifier.Syntax(), comma, second, from, source, assertion)}
}

func NewImport(importToken *syntax.Token, clause AnyImportClause) Import {
	return Import{node: syntax.NewNode(syntax.KindImport, importToken, clause.Syntax(), nil)}
}

// Call constructors.

// NewCallArgumentList accepts argument nodes and comma tokens interleaved in
// source order.
func NewCallArgumentList(items ...syntax.Slot) *syntax.Node {
	return syntax.NewNode(syntax.KindCallArgumentList, items...)
}

func NewCallArguments(lParen *syntax.Token, list *syntax.Node, rParen *syntax.Token) CallArguments {
	return CallArguments{node: syntax.NewNode(syntax.KindCallArguments, lParen, list, rParen)}
}

func NewCallExpression(callee *syntax.Node, arguments CallArguments) CallExpression {
	return CallExpression{node: syntax.NewNode(syntax.KindCallExpression, callee, arguments.Syntax())}
}

func NewImportCallExpression(importToken *syntax.Token, arguments CallArguments) ImportCallExpression {
	return ImportCallExpression{node: syntax.NewNode(syntax.KindImportCallExpression, importToken, arguments.Syntax())}
}

func NewReferenceIdentifier(value *syntax.Token) *syntax.Node {
	return syntax.NewNode(syntax.KindReferenceIdentifier, value)
}

func NewIdentifierExpression(reference *syntax.Node) *syntax.Node {
	return syntax.NewNode(syntax.KindIdentifierExpression, reference)
}

func NewStringLiteralExpression(value *syntax.Token) *syntax.Node {
	return syntax.NewNode(syntax.KindStringLiteralExpression, value)
}

func NewNumberLiteralExpression(value *syntax.Token) *syntax.Node {
	return syntax.NewNode(syntax.KindNumberLiteralExpression, value)
}

// NewTsExternalModuleDeclaration builds `declare module "x" {}`; body may be
// nil.
func NewTsExternalModuleDeclaration(module *syntax.Token, source *syntax.Node, body *syntax.Node) *syntax.Node {
	return syntax.NewNode(syntax.KindTsExternalModuleDeclaration, module, source, body)
}
