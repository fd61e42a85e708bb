package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"strings"
)

// Header marks every emitted file following the convention understood by
// go tooling.
const Header = "// Code generated by stowr-gen. DO NOT EDIT.\n\n"

// Generate expands one record declaration and its methods into a complete,
// formatted artifact file for the target package. commands selects the
// method names to expand into the aggregate state machine; nil means every
// command-flagged method. A declaration without commands yields only the
// entity artifacts.
//
// Generation is all-or-nothing: on any declaration error no output is
// returned.
func Generate(d *RecordDecl, methods []MethodDecl, commands []string, pkg string, pkgs map[string]string) ([]byte, error) {
	c := NewCtx(pkg, pkgs)
	if err := WriteEntity(c, d); err != nil {
		return nil, err
	}
	hasCommands := len(commands) > 0
	for _, m := range methods {
		if m.Owner == d.Name && m.Command {
			hasCommands = true
		}
	}
	if hasCommands {
		c.Fmt("\n")
		if err := WriteAggregate(c, d, methods, commands); err != nil {
			return nil, err
		}
	}
	return RenderFile(c, pkgName(pkg))
}

// RenderFile assembles the header, package clause, grouped imports and the
// emitted body into one gofmt-formatted source file.
func RenderFile(c *Ctx, pkg string) ([]byte, error) {
	var f bytes.Buffer
	f.WriteString(c.Header)
	f.WriteString("package ")
	f.WriteString(pkg)
	f.WriteString("\n")
	if len(c.Imports.List) > 0 {
		f.WriteString("\nimport (\n")
		groups := groupImports(c.Imports.List, "github.com/stowr")
		for i, gr := range groups {
			if i != 0 {
				f.WriteByte('\n')
			}
			for _, im := range gr {
				f.WriteString("\t\"")
				f.WriteString(im)
				f.WriteString("\"\n")
			}
		}
		f.WriteString(")\n")
	}
	f.WriteString("\n")
	f.Write(c.Bytes())
	res, err := format.Source(f.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return res, nil
}

// WriteFile renders the context and writes the result to fname.
func WriteFile(c *Ctx, fname, pkg string) error {
	src, err := RenderFile(c, pkg)
	if err != nil {
		return fmt.Errorf("render file %s: %w", fname, err)
	}
	if err := os.WriteFile(fname, src, 0o644); err != nil {
		return fmt.Errorf("write file %s: %w", fname, err)
	}
	return nil
}

func pkgName(path string) string {
	if idx := strings.LastIndexByte(path, '/'); idx >= 0 {
		return path[idx+1:]
	}
	return path
}

func groupImports(list []string, pres ...string) (res [][]string) {
	other := make([]string, 0, len(list))
	rest := make([]string, 0, len(list))
Next:
	for _, im := range list {
		for _, pre := range pres {
			if strings.HasPrefix(im, pre) {
				rest = append(rest, im)
				continue Next
			}
		}
		other = append(other, im)
	}
	if len(other) > 0 {
		res = append(res, other)
	}
	if len(rest) > 0 {
		res = append(res, rest)
	}
	return res
}
