package gen

import "strings"

// WriteEntity expands one record declaration into its five coupled entity
// artifacts: phantom tag, identifier alias, entity record, constructor and
// the repository port with its handle alias.
func WriteEntity(c *Ctx, d *RecordDecl) error {
	if err := d.Validate(); err != nil {
		return err
	}

	id := c.Import("domain.Id")
	repo := c.Import("domain.Repository")

	c.Fmt("// %s is the phantom tag that scopes %s identifiers.\n", d.TagName(), d.Name)
	c.Fmt("// It is never instantiated.\n")
	c.Fmt("type %s struct{}\n\n", d.TagName())

	c.Fmt("// %s identifies a single %s.\n", d.IdName(), d.Name)
	c.Fmt("type %s = %s[%s]\n\n", d.IdName(), id, d.TagName())

	if d.Doc != "" {
		writeDoc(c, d.Doc)
	} else {
		c.Fmt("// %s is the %s entity record.\n", d.Name, strings.ToLower(d.Name))
	}
	c.Fmt("type %s struct {\n", d.Name)
	c.Fmt("\tId %s `json:\"id\"`\n", d.IdName())
	for _, f := range d.Fields {
		c.Use(f.Deps)
		c.Fmt("\t%s %s `json:\"%s\"`\n", f.Name, f.Type, strings.ToLower(f.Name))
	}
	c.Fmt("}\n\n")

	c.Fmt("// New%s builds a %s from its identifier and declared fields,\n", d.Name, d.Name)
	c.Fmt("// converting each field once, in declaration order.\n")
	c.Fmt("func New%s(id %s", d.Name, d.IdName())
	for _, f := range d.Fields {
		c.Fmt(", %s %s", lowered(f.Name), f.Type)
	}
	c.Fmt(") %s {\n", d.Name)
	c.Fmt("\treturn %s{\n", d.Name)
	c.Fmt("\t\tId: id,\n")
	for _, f := range d.Fields {
		c.Fmt("\t\t%s: %s,\n", f.Name, lowered(f.Name))
	}
	c.Fmt("\t}\n}\n\n")

	c.Fmt("// %s is the persistence port scoped to the %s/%s pair.\n", d.RepositoryName(), d.Name, d.IdName())
	c.Fmt("type %s interface {\n", d.RepositoryName())
	c.Fmt("\t%s[%s, %s]\n", repo, d.Name, d.IdName())
	c.Fmt("}\n\n")

	c.Fmt("// %s is a shared handle for any %s implementation.\n", d.RepoName(), d.RepositoryName())
	c.Fmt("type %s = %s\n", d.RepoName(), d.RepositoryName())

	return nil
}

func writeDoc(c *Ctx, doc string) {
	for _, line := range strings.Split(strings.TrimRight(doc, "\n"), "\n") {
		c.Fmt("// %s\n", line)
	}
}
