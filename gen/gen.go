// Package gen implements the stowr domain code generator. It is a two-phase
// pipeline: a parser reads annotated Go declarations into an in-memory form
// (RecordDecl, MethodDecl) and emitters expand that form into the coordinated
// artifact family for each entity: phantom tag, identifier alias, entity
// record, constructor, repository port and the command/event state machine.
//
// Generation is a pure, deterministic source-to-source expansion. Any
// malformed declaration is a fatal generation error; no partial output is
// ever produced.
package gen

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
)

// ModulePath is the import path prefix for generated cross-references.
const ModulePath = "github.com/stowr/backend"

// Ctx is the code generation context holding the output buffer and the
// package information needed to qualify references.
type Ctx struct {
	bytes.Buffer
	// Pkg is the import path of the target package.
	Pkg string
	// Pkgs maps package names to import paths for reference resolution.
	Pkgs   map[string]string
	Header string
	Imports
}

// DefaultPkgs returns the package map every emitter needs: the shared domain
// runtime that generated artifacts are built on.
func DefaultPkgs() map[string]string {
	return map[string]string{
		"domain":  ModulePath + "/domain",
		"context": "context",
		"json":    "encoding/json",
	}
}

// NewCtx creates a generation context for the target package path.
func NewCtx(pkg string, pkgs map[string]string) *Ctx {
	if pkgs == nil {
		pkgs = DefaultPkgs()
	}
	return &Ctx{
		Pkg:    pkg,
		Pkgs:   pkgs,
		Header: Header,
	}
}

// Fmt writes formatted output to the context buffer.
func (c *Ctx) Fmt(format string, args ...interface{}) {
	fmt.Fprintf(&c.Buffer, format, args...)
}

// Import takes a qualified name of the form 'pkg.Decl', looks up a path from
// the context packages map if available, otherwise the package name is used
// as path. If the package path is the same as the target package it returns
// the bare 'Decl' part, otherwise it registers the import and returns the
// qualified reference.
func (c *Ctx) Import(name string) string {
	idx := strings.LastIndexByte(name, '.')
	if idx < 0 {
		return name
	}
	ns := name[:idx]
	path := ns
	if p, ok := c.Pkgs[ns]; ok {
		path = p
	}
	if path == c.Pkg {
		return name[idx+1:]
	}
	c.Imports.Add(path)
	return name
}

// Use registers the imports needed by a declared type expression.
func (c *Ctx) Use(deps []string) {
	for _, dep := range deps {
		if path, ok := c.Pkgs[dep]; ok && path != c.Pkg {
			c.Imports.Add(path)
		}
	}
}

// Imports has a list of alphabetically sorted dependencies. For go imports
// the dependency is a package path.
type Imports struct {
	List []string
}

// Add inserts path into the import list if not already present.
func (i *Imports) Add(path string) {
	idx := sort.SearchStrings(i.List, path)
	if idx < len(i.List) && i.List[idx] == path {
		return
	}
	i.List = append(i.List, "")
	copy(i.List[idx+1:], i.List[idx:])
	i.List[idx] = path
}
