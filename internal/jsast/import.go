package jsast

import "github.com/cr7pt0gr4ph7/biome/internal/syntax"

// Import is a static `import ...` declaration.
type Import struct {
	node *syntax.Node
}

func AsImport(node *syntax.Node) (Import, bool) {
	if node == nil || node.Kind() != syntax.KindImport {
		return Import{}, false
	}
	return Import{node: node}, true
}

func (i Import) Syntax() *syntax.Node { return i.node }

// Clause returns the declaration's import clause.
func (i Import) Clause() (AnyImportClause, error) {
	clause, ok := AsAnyImportClause(i.node.SlotNode(importClauseSlot))
	if !ok {
		return nil, syntax.ErrMissing
	}
	return clause, nil
}

// SourceText returns the imported module name with quotes stripped.
func (i Import) SourceText() (string, error) {
	clause, err := i.Clause()
	if err != nil {
		return "", err
	}
	source, err := clause.Source()
	if err != nil {
		return "", err
	}
	return source.InnerStringText()
}

// SourceToken returns the raw source token, quotes included.
func (i Import) SourceToken() (*syntax.Token, error) {
	clause, err := i.Clause()
	if err != nil {
		return nil, err
	}
	source, err := clause.Source()
	if err != nil {
		return nil, err
	}
	return source.ValueToken()
}
