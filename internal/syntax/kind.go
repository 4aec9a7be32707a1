package syntax

// Kind tags every node and token in the tree.
type Kind uint16

const (
	KindUnknown Kind = iota

	// Token kinds.
	KindImportKw
	KindTypeKw
	KindFromKw
	KindAsKw
	KindWithKw
	KindDeclareKw
	KindModuleKw
	KindIdent
	KindStringLiteral
	KindNumberLiteral
	KindLCurly
	KindRCurly
	KindLParen
	KindRParen
	KindComma
	KindStar
	KindSemicolon
	KindColon

	// Node kinds.
	KindModule
	KindImport
	KindImportBareClause
	KindImportDefaultClause
	KindImportNamedClause
	KindImportNamespaceClause
	KindImportCombinedClause
	KindModuleSource
	KindMetavariable
	KindImportAssertion
	KindImportAssertionEntry
	KindNamedImportSpecifiers
	KindNamedImportSpecifierList
	KindNamedImportSpecifier
	KindShorthandNamedImportSpecifier
	KindNamespaceImportSpecifier
	KindDefaultImportSpecifier
	KindIdentifierBinding
	KindCallExpression
	KindImportCallExpression
	KindCallArguments
	KindCallArgumentList
	KindIdentifierExpression
	KindReferenceIdentifier
	KindStringLiteralExpression
	KindNumberLiteralExpression
	KindTsExternalModuleDeclaration
	KindTsModuleBlock
	KindBogus
	KindBogusNamedImportSpecifier
	KindBogusBinding
)

var kindNames = map[Kind]string{
	KindUnknown:                       "Unknown",
	KindImportKw:                      "ImportKw",
	KindTypeKw:                        "TypeKw",
	KindFromKw:                        "FromKw",
	KindAsKw:                          "AsKw",
	KindWithKw:                        "WithKw",
	KindDeclareKw:                     "DeclareKw",
	KindModuleKw:                      "ModuleKw",
	KindIdent:                         "Ident",
	KindStringLiteral:                 "StringLiteral",
	KindNumberLiteral:                 "NumberLiteral",
	KindLCurly:                        "LCurly",
	KindRCurly:                        "RCurly",
	KindLParen:                        "LParen",
	KindRParen:                        "RParen",
	KindComma:                         "Comma",
	KindStar:                          "Star",
	KindSemicolon:                     "Semicolon",
	KindColon:                         "Colon",
	KindModule:                        "Module",
	KindImport:                        "Import",
	KindImportBareClause:              "ImportBareClause",
	KindImportDefaultClause:           "ImportDefaultClause",
	KindImportNamedClause:             "ImportNamedClause",
	KindImportNamespaceClause:         "ImportNamespaceClause",
	KindImportCombinedClause:          "ImportCombinedClause",
	KindModuleSource:                  "ModuleSource",
	KindMetavariable:                  "Metavariable",
	KindImportAssertion:               "ImportAssertion",
	KindImportAssertionEntry:          "ImportAssertionEntry",
	KindNamedImportSpecifiers:         "NamedImportSpecifiers",
	KindNamedImportSpecifierList:      "NamedImportSpecifierList",
	KindNamedImportSpecifier:          "NamedImportSpecifier",
	KindShorthandNamedImportSpecifier: "ShorthandNamedImportSpecifier",
	KindNamespaceImportSpecifier:      "NamespaceImportSpecifier",
	KindDefaultImportSpecifier:        "DefaultImportSpecifier",
	KindIdentifierBinding:             "IdentifierBinding",
	KindCallExpression:                "CallExpression",
	KindImportCallExpression:          "ImportCallExpression",
	KindCallArguments:                 "CallArguments",
	KindCallArgumentList:              "CallArgumentList",
	KindIdentifierExpression:          "IdentifierExpression",
	KindReferenceIdentifier:           "ReferenceIdentifier",
	KindStringLiteralExpression:       "StringLiteralExpression",
	KindNumberLiteralExpression:       "NumberLiteralExpression",
	KindTsExternalModuleDeclaration:   "TsExternalModuleDeclaration",
	KindTsModuleBlock:                 "TsModuleBlock",
	KindBogus:                         "Bogus",
	KindBogusNamedImportSpecifier:     "BogusNamedImportSpecifier",
	KindBogusBinding:                  "BogusBinding",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(?)"
}
