package gen

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
)

// Field is one named, typed slot of a record or method declaration.
type Field struct {
	Name string
	// Type is the Go type expression exactly as declared.
	Type string
	// Deps lists package names referenced by Type.
	Deps []string
}

// RecordDecl is the declaration of one entity: a name and its ordered data
// fields. The identifier slot is reserved and injected by the generator, so
// a declared field named id is a generation error.
type RecordDecl struct {
	Name   string
	Doc    string
	Fields []Field
}

// MethodDecl is the declaration of one method on an entity. Only methods
// flagged as commands participate in aggregate generation.
type MethodDecl struct {
	Owner   string
	Name    string
	Params  []Field
	Command bool
}

// Derived artifact names. These are produced by plain concatenation and are
// not configurable; downstream tooling depends on the exact spelling.

func (d *RecordDecl) TagName() string        { return d.Name + "Tag" }
func (d *RecordDecl) IdName() string         { return d.Name + "Id" }
func (d *RecordDecl) RepositoryName() string { return d.Name + "Repository" }
func (d *RecordDecl) RepoName() string       { return d.Name + "Repo" }
func (d *RecordDecl) CommandName() string    { return d.Name + "Command" }
func (d *RecordDecl) EventName() string      { return d.Name + "Event" }

// Validate checks the record declaration invariants: a non-empty exported
// name, uniquely named fields, and no field occupying the reserved id slot.
func (d *RecordDecl) Validate() error {
	var result error
	if d.Name == "" || !unicode.IsUpper(rune(d.Name[0])) {
		result = multierror.Append(result, &DeclError{d.Name, "entity name must be an exported identifier"})
	}
	seen := make(map[string]bool, len(d.Fields))
	for _, f := range d.Fields {
		if f.Name == "" {
			result = multierror.Append(result, &DeclError{d.Name, "unsupported shape: only named fields are allowed"})
			continue
		}
		if strings.EqualFold(f.Name, "id") {
			result = multierror.Append(result, &DeclError{d.Name, "field name id is reserved for the injected identifier"})
		}
		if seen[f.Name] {
			result = multierror.Append(result, &DeclError{d.Name, "duplicate field " + f.Name})
		}
		seen[f.Name] = true
	}
	return result
}

// DeclError is a fatal generation-time diagnostic for one declaration.
type DeclError struct {
	Decl    string
	Message string
}

func (e *DeclError) Error() string {
	if e.Decl == "" {
		return e.Message
	}
	return e.Decl + ": " + e.Message
}

// pascal transforms a method or parameter name into its PascalCase form:
// underscore-separated segments are joined with each first letter raised.
// The same transform backs variant naming for both command and event sums,
// which is what keeps the two in one-to-one correspondence.
func pascal(s string) string {
	var b strings.Builder
	for _, part := range strings.Split(s, "_") {
		if part == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(part)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(part[size:])
	}
	return b.String()
}

// lowered returns the name with its first rune lowered, for constructor
// parameter names.
func lowered(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}
