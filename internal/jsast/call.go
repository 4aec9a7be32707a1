package jsast

import "github.com/cr7pt0gr4ph7/biome/internal/syntax"

// CallArguments is the parenthesized argument list of a call.
type CallArguments struct {
	node *syntax.Node
}

func AsCallArguments(node *syntax.Node) (CallArguments, bool) {
	if node == nil || node.Kind() != syntax.KindCallArguments {
		return CallArguments{}, false
	}
	return CallArguments{node: node}, true
}

func (a CallArguments) Syntax() *syntax.Node { return a.node }

// Argument returns the positional argument at index. Requesting a position
// past the last argument yields absence, not an error.
func (a CallArguments) Argument(index int) (*syntax.Node, bool) {
	list := a.node.SlotNode(argumentsListSlot)
	if list == nil {
		return nil, false
	}
	argument := list.NthNode(index)
	if argument == nil {
		return nil, false
	}
	return argument, true
}

// soleStringArgumentToken resolves the 0th argument through the
// expression, literal expression, string-literal chain. Any shape mismatch
// is absence; arguments beyond index 0 are ignored.
func soleStringArgumentToken(arguments CallArguments, err error) (*syntax.Token, bool) {
	if err != nil {
		return nil, false
	}
	argument, ok := arguments.Argument(0)
	if !ok {
		return nil, false
	}
	if argument.Kind() != syntax.KindStringLiteralExpression {
		return nil, false
	}
	token := argument.SlotToken(valueTokenSlot)
	if token == nil {
		return nil, false
	}
	return token, true
}

// CallExpression is a generic call node, relevant here only when its callee
// is the bare identifier `require`.
type CallExpression struct {
	node *syntax.Node
}

func AsCallExpression(node *syntax.Node) (CallExpression, bool) {
	if node == nil || node.Kind() != syntax.KindCallExpression {
		return CallExpression{}, false
	}
	return CallExpression{node: node}, true
}

func (c CallExpression) Syntax() *syntax.Node { return c.node }

func (c CallExpression) Callee() (*syntax.Node, error) {
	callee := c.node.SlotNode(callCalleeSlot)
	if callee == nil {
		return nil, syntax.ErrMissing
	}
	return callee, nil
}

func (c CallExpression) Arguments() (CallArguments, error) {
	arguments, ok := AsCallArguments(c.node.SlotNode(callArgumentsSlot))
	if !ok {
		return CallArguments{}, syntax.ErrMissing
	}
	return arguments, nil
}

// IsRequireCallExpression reports whether the callee is a plain identifier
// reference whose trimmed text is exactly `require`. Detection is lexical;
// scope and shadowing are deliberately ignored, and resolution failures
// report false rather than an error.
func (c CallExpression) IsRequireCallExpression() bool {
	callee, err := c.Callee()
	if err != nil {
		return false
	}
	reference, ok := asReferenceIdentifier(callee)
	if !ok {
		return false
	}
	token := reference.SlotToken(valueTokenSlot)
	return token != nil && token.Text() == "require"
}

// ImportedModuleSourceText returns the unquoted module specifier if this is
// a `require("...")` call.
func (c CallExpression) ImportedModuleSourceText() (string, bool) {
	token, ok := c.ImportedModuleSourceToken()
	if !ok {
		return "", false
	}
	return InnerStringText(token), true
}

// ImportedModuleSourceToken returns the raw module specifier token, quotes
// included, if this is a `require("...")` call.
func (c CallExpression) ImportedModuleSourceToken() (*syntax.Token, bool) {
	if !c.IsRequireCallExpression() {
		return nil, false
	}
	arguments, err := c.Arguments()
	return soleStringArgumentToken(arguments, err)
}

func asReferenceIdentifier(expression *syntax.Node) (*syntax.Node, bool) {
	if expression.Kind() != syntax.KindIdentifierExpression {
		return nil, false
	}
	reference := expression.SlotNode(identifierExprRefSlot)
	if reference == nil || reference.Kind() != syntax.KindReferenceIdentifier {
		return nil, false
	}
	return reference, true
}

// ImportCallExpression is a dynamic `import("...")` call. The `import`
// keyword already disambiguates the form, so no callee check is needed.
type ImportCallExpression struct {
	node *syntax.Node
}

func AsImportCallExpression(node *syntax.Node) (ImportCallExpression, bool) {
	if node == nil || node.Kind() != syntax.KindImportCallExpression {
		return ImportCallExpression{}, false
	}
	return ImportCallExpression{node: node}, true
}

func (c ImportCallExpression) Syntax() *syntax.Node { return c.node }

func (c ImportCallExpression) Arguments() (CallArguments, error) {
	arguments, ok := AsCallArguments(c.node.SlotNode(importCallArgumentsSlot))
	if !ok {
		return CallArguments{}, syntax.ErrMissing
	}
	return arguments, nil
}

// ModuleSourceText returns the unquoted module specifier.
func (c ImportCallExpression) ModuleSourceText() (string, bool) {
	token, ok := c.ModuleSourceToken()
	if !ok {
		return "", false
	}
	return InnerStringText(token), true
}

// ModuleSourceToken returns the raw module specifier token, quotes included.
func (c ImportCallExpression) ModuleSourceToken() (*syntax.Token, bool) {
	arguments, err := c.Arguments()
	return soleStringArgumentToken(arguments, err)
}
