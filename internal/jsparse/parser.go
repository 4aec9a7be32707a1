package jsparse

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	tsxlang "github.com/smacker/go-tree-sitter/typescript/tsx"
	tslang "github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/cr7pt0gr4ph7/biome/internal/syntax"
)

var supportedExtensions = map[string]bool{
	".js":  true,
	".cjs": true,
	".mjs": true,
	".jsx": true,
	".ts":  true,
	".mts": true,
	".cts": true,
	".tsx": true,
}

// IsSupportedFile reports whether the path has a JS/TS extension this
// parser understands.
func IsSupportedFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return supportedExtensions[ext]
}

// Result is a lowered file: the typed syntax tree plus whether the grammar
// recovered from parse errors anywhere in the file.
type Result struct {
	Root     *syntax.Node
	HasError bool
}

// Parser lowers JS/TS source files into the typed syntax-tree model. The
// grammar is chosen by file extension.
type Parser struct {
	js  *sitter.Language
	ts  *sitter.Language
	tsx *sitter.Language
}

func NewParser() *Parser {
	return &Parser{
		js:  javascript.GetLanguage(),
		ts:  tslang.GetLanguage(),
		tsx: tsxlang.GetLanguage(),
	}
}

func (p *Parser) Parse(ctx context.Context, path string, content []byte) (Result, error) {
	lang, err := p.languageForPath(path)
	if err != nil {
		return Result{}, err
	}

	parser := sitter.NewParser()
	parser.SetLanguage(lang)

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return Result{}, err
	}
	if tree == nil {
		return Result{}, fmt.Errorf("tree-sitter returned nil tree for %s", path)
	}

	root := tree.RootNode()
	lowered := (&lowerer{content: content}).lowerProgram(root)
	return Result{Root: lowered, HasError: root.HasError()}, nil
}

func (p *Parser) languageForPath(path string) (*sitter.Language, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".js", ".cjs", ".mjs", ".jsx":
		return p.js, nil
	case ".ts", ".mts", ".cts":
		return p.ts, nil
	case ".tsx":
		return p.tsx, nil
	default:
		return nil, fmt.Errorf("unsupported extension: %s", ext)
	}
}
