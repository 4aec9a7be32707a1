package jsast

import "github.com/cr7pt0gr4ph7/biome/internal/syntax"

// AnyImportSourceLike unifies the three syntactic forms that reference a
// module:
//
//	import "lodash";
//	require("lodash")
//	import("lodash")
//
// Every query downgrades failure to absence: callers treat "not an
// import-like construct" and "malformed import-like construct" identically.
type AnyImportSourceLike interface {
	Syntax() *syntax.Node

	// ModuleSourceText returns the referenced module name, quotes stripped.
	ModuleSourceText() (string, bool)

	// ModuleNameToken returns the raw specifier token, quotes included.
	ModuleNameToken() (*syntax.Token, bool)

	// IsInTsModuleDeclaration reports whether this is a module source whose
	// immediate parent is an ambient `declare module "x" {}` declaration.
	IsInTsModuleDeclaration() bool

	anyImportSourceLike()
}

func AsAnyImportSourceLike(node *syntax.Node) (AnyImportSourceLike, bool) {
	if node == nil {
		return nil, false
	}
	switch node.Kind() {
	case syntax.KindModuleSource:
		return ModuleSource{node: node}, true
	case syntax.KindCallExpression:
		return CallExpression{node: node}, true
	case syntax.KindImportCallExpression:
		return ImportCallExpression{node: node}, true
	default:
		return nil, false
	}
}

func (s ModuleSource) ModuleSourceText() (string, bool) {
	text, err := s.InnerStringText()
	if err != nil {
		return "", false
	}
	return text, true
}

func (s ModuleSource) ModuleNameToken() (*syntax.Token, bool) {
	token, err := s.ValueToken()
	if err != nil {
		return nil, false
	}
	return token, true
}

func (s ModuleSource) IsInTsModuleDeclaration() bool {
	parent := s.node.Parent()
	return parent != nil && parent.Kind() == syntax.KindTsExternalModuleDeclaration
}

func (s ModuleSource) anyImportSourceLike() {}

func (c CallExpression) ModuleSourceText() (string, bool) {
	return c.ImportedModuleSourceText()
}

func (c CallExpression) ModuleNameToken() (*syntax.Token, bool) {
	return c.ImportedModuleSourceToken()
}

func (c CallExpression) IsInTsModuleDeclaration() bool { return false }

func (c CallExpression) anyImportSourceLike() {}

func (c ImportCallExpression) ModuleNameToken() (*syntax.Token, bool) {
	return c.ModuleSourceToken()
}

func (c ImportCallExpression) IsInTsModuleDeclaration() bool { return false }

func (c ImportCallExpression) anyImportSourceLike() {}
