package scan

import (
	"strings"

	"github.com/cr7pt0gr4ph7/biome/internal/jsast"
	"github.com/cr7pt0gr4ph7/biome/internal/report"
	"github.com/cr7pt0gr4ph7/biome/internal/syntax"
)

// collectRecords walks the lowered tree and emits one record per
// import-like construct, in source order.
func collectRecords(root *syntax.Node, relPath string, options Options) []report.Record {
	records := make([]report.Record, 0)
	walkTree(root, func(node *syntax.Node) {
		record, ok := recordForNode(node, relPath, options)
		if !ok {
			return
		}
		if options.TypesOnly && !record.TypeOnly {
			return
		}
		records = append(records, record)
	})
	return records
}

func walkTree(node *syntax.Node, visit func(*syntax.Node)) {
	for _, child := range node.Nodes() {
		visit(child)
		walkTree(child, visit)
	}
}

func recordForNode(node *syntax.Node, relPath string, options Options) (report.Record, bool) {
	switch node.Kind() {
	case syntax.KindImport:
		return staticRecord(node, relPath)
	case syntax.KindCallExpression:
		if options.NoRequire {
			return report.Record{}, false
		}
		return requireRecord(node, relPath)
	case syntax.KindImportCallExpression:
		if options.NoDynamic {
			return report.Record{}, false
		}
		return dynamicRecord(node, relPath)
	case syntax.KindModuleSource:
		return ambientRecord(node, relPath)
	default:
		return report.Record{}, false
	}
}

// staticRecord covers `import ...` declarations. Declarations whose source
// cannot be resolved (error recovery, placeholders) are skipped; the parse
// warning already flags the file.
func staticRecord(node *syntax.Node, relPath string) (report.Record, bool) {
	imported, ok := jsast.AsImport(node)
	if !ok {
		return report.Record{}, false
	}
	token, err := imported.SourceToken()
	if err != nil {
		return report.Record{}, false
	}
	clause, err := imported.Clause()
	if err != nil {
		return report.Record{}, false
	}

	record := report.Record{
		Form:     report.FormStatic,
		Module:   jsast.InnerStringText(token),
		Raw:      token.Text(),
		Locals:   clauseLocals(clause),
		Location: location(node, relPath),
	}
	if _, ok := clause.TypeToken(); ok {
		record.TypeOnly = true
	}
	if assertion, ok := clause.Assertion(); ok {
		record.Assertion = strings.TrimSpace(assertion.Text())
	}
	return record, true
}

func requireRecord(node *syntax.Node, relPath string) (report.Record, bool) {
	call, ok := jsast.AsCallExpression(node)
	if !ok {
		return report.Record{}, false
	}
	token, ok := call.ImportedModuleSourceToken()
	if !ok {
		return report.Record{}, false
	}
	return report.Record{
		Form:     report.FormRequire,
		Module:   jsast.InnerStringText(token),
		Raw:      token.Text(),
		Location: location(node, relPath),
	}, true
}

func dynamicRecord(node *syntax.Node, relPath string) (report.Record, bool) {
	call, ok := jsast.AsImportCallExpression(node)
	if !ok {
		return report.Record{}, false
	}
	token, ok := call.ModuleSourceToken()
	if !ok {
		return report.Record{}, false
	}
	return report.Record{
		Form:     report.FormDynamic,
		Module:   jsast.InnerStringText(token),
		Raw:      token.Text(),
		Location: location(node, relPath),
	}, true
}

// ambientRecord covers the source of `declare module "x" {}`. Module
// sources inside import declarations are reported by staticRecord instead.
func ambientRecord(node *syntax.Node, relPath string) (report.Record, bool) {
	sourceLike, ok := jsast.AsAnyImportSourceLike(node)
	if !ok || !sourceLike.IsInTsModuleDeclaration() {
		return report.Record{}, false
	}
	token, ok := sourceLike.ModuleNameToken()
	if !ok {
		return report.Record{}, false
	}
	return report.Record{
		Form:     report.FormAmbient,
		Module:   jsast.InnerStringText(token),
		Raw:      token.Text(),
		Location: location(node, relPath),
	}, true
}

func clauseLocals(clause jsast.AnyImportClause) []string {
	switch c := clause.(type) {
	case jsast.ImportDefaultClause:
		return specifierLocals(defaultLocal(c))
	case jsast.ImportNamedClause:
		specifiers, ok := c.Specifiers()
		if !ok {
			return nil
		}
		return namedLocals(specifiers)
	case jsast.ImportNamespaceClause:
		specifier, ok := c.NamespaceSpecifier()
		if !ok {
			return nil
		}
		return specifierLocals(bindingName(bindingOrNil(specifier.LocalBinding())))
	case jsast.ImportCombinedClause:
		return combinedLocals(c)
	default:
		return nil
	}
}

func combinedLocals(clause jsast.ImportCombinedClause) []string {
	locals := make([]string, 0, 2)
	if specifier, ok := clause.DefaultSpecifier(); ok {
		if name, ok := bindingName(bindingOrNil(specifier.LocalBinding())); ok {
			locals = append(locals, name)
		}
	}
	second, ok := clause.SecondSpecifier()
	if !ok {
		return locals
	}
	if specifiers, ok := jsast.AsNamedImportSpecifiers(second); ok {
		return append(locals, namedLocals(specifiers)...)
	}
	if specifier, ok := jsast.AsAnyImportSpecifier(second); ok {
		if name, ok := bindingName(bindingOrNil(specifier.LocalBinding())); ok {
			locals = append(locals, name)
		}
	}
	return locals
}

func namedLocals(specifiers jsast.NamedImportSpecifiers) []string {
	locals := make([]string, 0)
	for _, specifier := range specifiers.Specifiers() {
		binding, ok := specifier.LocalName()
		if !ok {
			continue
		}
		if name, ok := bindingName(binding); ok {
			locals = append(locals, name)
		}
	}
	return locals
}

func defaultLocal(clause jsast.ImportDefaultClause) (string, bool) {
	specifier, ok := clause.DefaultSpecifier()
	if !ok {
		return "", false
	}
	return bindingName(bindingOrNil(specifier.LocalBinding()))
}

func specifierLocals(name string, ok bool) []string {
	if !ok {
		return nil
	}
	return []string{name}
}

func bindingOrNil(binding jsast.AnyBinding, err error) jsast.AnyBinding {
	if err != nil {
		return nil
	}
	return binding
}

func bindingName(binding jsast.AnyBinding) (string, bool) {
	identifier, ok := binding.(jsast.IdentifierBinding)
	if !ok {
		return "", false
	}
	token, err := identifier.NameToken()
	if err != nil {
		return "", false
	}
	return token.Text(), true
}

// location reads the position of the node's first token; typed nodes built
// by constructors carry no position of their own.
func location(node *syntax.Node, relPath string) report.Location {
	pos := node.Pos()
	if token := node.FirstToken(); token != nil {
		pos = token.Pos()
	}
	return report.Location{File: relPath, Line: pos.Line, Column: pos.Column}
}
