package gen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"sort"
	"strconv"
	"strings"
)

// Directive comments recognized by the parser. A struct type marked
// stowr:domain is a record declaration; a method marked stowr:command is a
// command-flagged method declaration.
const (
	DirectiveDomain  = "//stowr:domain"
	DirectiveCommand = "//stowr:command"
)

// Decls is the parsed declaration set for one entity.
type Decls struct {
	Record  *RecordDecl
	Methods []MethodDecl
	// Pkgs maps package names referenced by field and parameter types to
	// their import paths, for merging into the emitter context.
	Pkgs map[string]string
}

// ParseDir reads every Go file in dir and extracts the record declaration
// named typeName together with all methods declared on it. Files excluded by
// build constraints are still read, so design declarations can live behind a
// build tag while their generated expansion carries the same type name; only
// the directive-marked struct counts as the declaration.
func ParseDir(dir, typeName string) (*Decls, error) {
	fset := token.NewFileSet()
	pkgs, err := parser.ParseDir(fset, dir, nil, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", dir, err)
	}

	d := &Decls{Pkgs: make(map[string]string)}
	// maps are iterated in sorted order so declaration order, and with it
	// the emitted variant order, is reproducible across runs
	for _, pkgName := range sortedKeys(pkgs) {
		pkg := pkgs[pkgName]
		for _, fileName := range sortedKeys(pkg.Files) {
			collectFile(d, pkg.Files[fileName], typeName)
		}
	}
	if d.Record == nil {
		return nil, fmt.Errorf("no %s declaration for type %s in %s", DirectiveDomain, typeName, dir)
	}
	return d, nil
}

func collectFile(d *Decls, file *ast.File, typeName string) {
	imports := fileImports(file)

	for _, decl := range file.Decls {
		switch decl := decl.(type) {
		case *ast.GenDecl:
			if decl.Tok != token.TYPE {
				continue
			}
			for _, spec := range decl.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok || ts.Name.Name != typeName {
					continue
				}
				doc := ts.Doc
				if doc == nil {
					doc = decl.Doc
				}
				if !hasDirective(doc, DirectiveDomain) {
					continue
				}
				d.Record = recordDecl(d, ts, doc, imports)
			}
		case *ast.FuncDecl:
			if decl.Recv == nil || len(decl.Recv.List) != 1 {
				continue
			}
			if receiverType(decl.Recv.List[0].Type) != typeName {
				continue
			}
			d.Methods = append(d.Methods, methodDecl(d, decl, typeName, imports))
		}
	}
}

func recordDecl(d *Decls, ts *ast.TypeSpec, doc *ast.CommentGroup, imports map[string]string) *RecordDecl {
	rec := &RecordDecl{Name: ts.Name.Name, Doc: strings.TrimRight(doc.Text(), "\n")}
	st, ok := ts.Type.(*ast.StructType)
	if !ok {
		// validation will reject the fieldless shape
		return rec
	}
	for _, f := range st.Fields.List {
		if len(f.Names) == 0 {
			// embedded field: recorded nameless so validation reports
			// the unsupported shape
			rec.Fields = append(rec.Fields, Field{Type: types.ExprString(f.Type)})
			continue
		}
		for _, name := range f.Names {
			rec.Fields = append(rec.Fields, newField(d, name.Name, f.Type, imports))
		}
	}
	return rec
}

func methodDecl(d *Decls, fd *ast.FuncDecl, typeName string, imports map[string]string) MethodDecl {
	m := MethodDecl{
		Owner:   typeName,
		Name:    fd.Name.Name,
		Command: hasDirective(fd.Doc, DirectiveCommand),
	}
	if fd.Type.Params != nil {
		for _, p := range fd.Type.Params.List {
			if len(p.Names) == 0 {
				m.Params = append(m.Params, Field{Type: types.ExprString(p.Type)})
				continue
			}
			for _, name := range p.Names {
				m.Params = append(m.Params, newField(d, name.Name, p.Type, imports))
			}
		}
	}
	return m
}

func newField(d *Decls, name string, typ ast.Expr, imports map[string]string) Field {
	f := Field{Name: name, Type: types.ExprString(typ)}
	ast.Inspect(typ, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return true
		}
		if ident, ok := sel.X.(*ast.Ident); ok {
			f.Deps = append(f.Deps, ident.Name)
			if path, ok := imports[ident.Name]; ok {
				d.Pkgs[ident.Name] = path
			}
		}
		return true
	})
	return f
}

func fileImports(file *ast.File) map[string]string {
	imports := make(map[string]string, len(file.Imports))
	for _, spec := range file.Imports {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}
		name := path
		if idx := strings.LastIndexByte(name, '/'); idx >= 0 {
			name = name[idx+1:]
		}
		if spec.Name != nil {
			name = spec.Name.Name
		}
		imports[name] = path
	}
	return imports
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func receiverType(expr ast.Expr) string {
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}
	if ident, ok := expr.(*ast.Ident); ok {
		return ident.Name
	}
	return ""
}

func hasDirective(doc *ast.CommentGroup, directive string) bool {
	if doc == nil {
		return false
	}
	for _, comment := range doc.List {
		text := strings.TrimSpace(comment.Text)
		if text == directive || strings.HasPrefix(text, directive+" ") {
			return true
		}
	}
	return false
}
