package imports

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
	"go.trai.ch/envscan/internal/core/domain"
)

// stage is one attempt at extracting imports from python source.
type stage func(p *sitter.Parser, src string) (domain.StringSet, bool)

// pythonStages run in order until one succeeds on the whole file.
var pythonStages = []stage{
	parseModern,
	parseLegacy,
}

// extractPython never fails: when no whole-file stage succeeds it falls
// back to parsing each line on its own.
func extractPython(src string) domain.StringSet {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	for _, run := range pythonStages {
		if mods, ok := run(parser, src); ok {
			return mods
		}
	}
	return parseLines(parser, src)
}

func parseModern(p *sitter.Parser, src string) (domain.StringSet, bool) {
	return parseSource(p, []byte(src+"\n"))
}

func parseLegacy(p *sitter.Parser, src string) (domain.StringSet, bool) {
	normalised, changed := normaliseLegacy(src)
	if !changed {
		return nil, false
	}
	return parseSource(p, []byte(normalised+"\n"))
}

func parseLines(p *sitter.Parser, src string) domain.StringSet {
	mods := make(domain.StringSet)
	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimLeft(line, " \t")
		if !strings.Contains(line, "import") {
			continue
		}
		if found, ok := parseSource(p, []byte(line+"\n")); ok {
			mods.AddAll(found)
		}
	}
	return mods
}

// parseSource reports false when the tree contains syntax errors.
func parseSource(p *sitter.Parser, src []byte) (domain.StringSet, bool) {
	tree, err := p.ParseCtx(context.Background(), nil, src)
	if err != nil || tree == nil {
		return nil, false
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil || root.HasError() {
		return nil, false
	}

	mods := make(domain.StringSet)
	collectImports(root, src, mods)
	return mods, true
}

func collectImports(n *sitter.Node, src []byte, mods domain.StringSet) {
	switch n.Type() {
	case "import_statement":
		for i := 0; i < int(n.ChildCount()); i++ {
			c := n.Child(i)
			switch c.Type() {
			case "dotted_name":
				mods.Add(text(c, src))
			case "aliased_import":
				if name := aliasedName(c, src); name != "" {
					mods.Add(name)
				}
			}
		}
		return
	case "import_from_statement", "future_import_statement":
		collectFromImport(n, src, mods)
		return
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		collectImports(n.Child(i), src, mods)
	}
}

// collectFromImport joins the source module and every imported name:
// "from a import b" yields "a.b" and "from . import x" yields ".x".
func collectFromImport(n *sitter.Node, src []byte, mods domain.StringSet) {
	base := ""
	if n.Type() == "future_import_statement" {
		base = "__future__."
	}

	sawImport := false
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		switch c.Type() {
		case "import":
			sawImport = true
		case "relative_import":
			if !sawImport {
				base = text(c, src)
				if !strings.HasSuffix(base, ".") {
					base += "."
				}
			}
		case "dotted_name":
			if sawImport {
				mods.Add(base + text(c, src))
			} else {
				base = text(c, src) + "."
			}
		case "aliased_import":
			if sawImport {
				if name := aliasedName(c, src); name != "" {
					mods.Add(base + name)
				}
			}
		case "wildcard_import":
			mods.Add(base + "*")
		}
	}
}

func aliasedName(n *sitter.Node, src []byte) string {
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		if c.Type() == "dotted_name" {
			return text(c, src)
		}
	}
	return ""
}

// text returns the node source with whitespace removed, so "os . path"
// and "os.path" name the same module.
func text(n *sitter.Node, src []byte) string {
	return strings.Join(strings.Fields(n.Content(src)), "")
}
