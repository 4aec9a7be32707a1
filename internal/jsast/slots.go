package jsast

// Slot layouts per node kind. Optional slots hold nil; the layouts are fixed
// by the grammar, so accessors address children by index instead of
// searching.
const (
	// KindImport: [import keyword, clause, optional semicolon]
	importKwSlot     = 0
	importClauseSlot = 1

	// KindImportBareClause: [source, optional assertion]
	bareSourceSlot    = 0
	bareAssertionSlot = 1

	// KindImportDefaultClause, KindImportNamedClause, KindImportNamespaceClause:
	// [optional type keyword, inner, from keyword, source, optional assertion]
	clauseTypeSlot      = 0
	clauseInnerSlot     = 1
	clauseFromSlot      = 2
	clauseSourceSlot    = 3
	clauseAssertionSlot = 4

	// KindImportCombinedClause:
	// [default specifier, comma, second specifier, from keyword, source, optional assertion]
	combinedDefaultSlot   = 0
	combinedSecondSlot    = 2
	combinedSourceSlot    = 4
	combinedAssertionSlot = 5

	// KindModuleSource, KindMetavariable, KindReferenceIdentifier,
	// KindStringLiteralExpression, KindNumberLiteralExpression,
	// KindIdentifierBinding: [value token]
	valueTokenSlot = 0

	// KindNamedImportSpecifiers: [{, specifier list, }]
	specifiersListSlot = 1

	// KindNamedImportSpecifier: [optional type keyword, name token, as keyword, local binding]
	namedSpecifierTypeSlot  = 0
	namedSpecifierNameSlot  = 1
	namedSpecifierLocalSlot = 3

	// KindShorthandNamedImportSpecifier: [optional type keyword, local binding]
	shorthandTypeSlot  = 0
	shorthandLocalSlot = 1

	// KindNamespaceImportSpecifier: [*, as keyword, local binding]
	namespaceLocalSlot = 2

	// KindDefaultImportSpecifier: [local binding]
	defaultLocalSlot = 0

	// KindCallExpression: [callee, arguments]
	callCalleeSlot    = 0
	callArgumentsSlot = 1

	// KindImportCallExpression: [import keyword, arguments]
	importCallArgumentsSlot = 1

	// KindCallArguments: [(, argument list, )]
	argumentsListSlot = 1

	// KindIdentifierExpression: [reference identifier]
	identifierExprRefSlot = 0

	// KindTsExternalModuleDeclaration: [module keyword, source, optional body]
	tsModuleSourceSlot = 1
)
