package gen

import (
	"strings"

	"github.com/hashicorp/go-multierror"
)

// resolveCommands maps requested command names onto the declared method set.
// Every requested name must resolve to a command-flagged method on the owner;
// anything else is a fatal generation error, reported in full before any
// artifact is emitted.
func resolveCommands(d *RecordDecl, methods []MethodDecl, commands []string) ([]MethodDecl, error) {
	byName := make(map[string]MethodDecl, len(methods))
	for _, m := range methods {
		if m.Owner == d.Name {
			byName[m.Name] = m
		}
	}
	if commands == nil {
		for _, m := range methods {
			if m.Owner == d.Name && m.Command {
				commands = append(commands, m.Name)
			}
		}
	}

	var result error
	resolved := make([]MethodDecl, 0, len(commands))
	variants := make(map[string]string, len(commands))
	for _, name := range commands {
		m, ok := byName[name]
		if !ok {
			result = multierror.Append(result, &DeclError{d.Name, "command references unknown method " + name})
			continue
		}
		if !m.Command {
			result = multierror.Append(result, &DeclError{d.Name, "method " + name + " is not flagged as a command"})
			continue
		}
		variant := pascal(name)
		if prev, dup := variants[variant]; dup {
			result = multierror.Append(result, &DeclError{d.Name,
				"commands " + prev + " and " + name + " both map to variant " + variant})
			continue
		}
		variants[variant] = name
		for _, p := range m.Params {
			if p.Name == "" {
				result = multierror.Append(result, &DeclError{d.Name, "command " + name + " has an unnamed parameter"})
			}
		}
		resolved = append(resolved, m)
	}
	if result != nil {
		return nil, result
	}
	return resolved, nil
}

// WriteAggregate expands the command-flagged methods of one entity into the
// command and event sums and the dispatcher pair that makes the entity an
// aggregate. Commands nil means every flagged method of the record.
func WriteAggregate(c *Ctx, d *RecordDecl, methods []MethodDecl, commands []string) error {
	cmds, err := resolveCommands(d, methods, commands)
	if err != nil {
		return err
	}

	c.Fmt("// %s is the closed set of commands accepted by a %s aggregate.\n", d.CommandName(), d.Name)
	c.Fmt("type %s interface{ is%s() }\n\n", d.CommandName(), d.CommandName())
	c.Fmt("// %s records a mutation applied to a %s aggregate. Events mirror\n", d.EventName(), d.Name)
	c.Fmt("// commands one-for-one: every event states that its command happened.\n")
	c.Fmt("type %s interface{ is%s() }\n\n", d.EventName(), d.EventName())

	for _, m := range cmds {
		variant := pascal(m.Name)
		writeVariant(c, variant+"Command", "requests "+d.Name+"."+m.Name+".", m.Params)
		c.Fmt("func (%sCommand) is%s() {}\n\n", variant, d.CommandName())
		writeVariant(c, variant+"Event", "records that "+d.Name+"."+m.Name+" happened.", m.Params)
		c.Fmt("func (%sEvent) is%s() {}\n\n", variant, d.EventName())
	}

	recv := strings.ToLower(d.Name[:1])
	payload := false
	for _, m := range cmds {
		if len(m.Params) > 0 {
			payload = true
		}
	}

	c.Fmt("// HandleCommand applies cmd to a copy of the current state and returns the\n")
	c.Fmt("// single event recording the outcome. The receiver is never mutated.\n")
	c.Fmt("func (%s %s) HandleCommand(cmd %s) ([]%s, error) {\n", recv, d.Name, d.CommandName(), d.EventName())
	if payload {
		c.Fmt("\tswitch cmd := cmd.(type) {\n")
	} else {
		c.Fmt("\tswitch cmd.(type) {\n")
	}
	for _, m := range cmds {
		variant := pascal(m.Name)
		c.Fmt("\tcase %sCommand:\n", variant)
		c.Fmt("\t\tnext := %s\n", recv)
		c.Fmt("\t\tnext.%s(%s)\n", m.Name, variantArgs("cmd", m.Params))
		c.Fmt("\t\treturn []%s{%sEvent%s}, nil\n", d.EventName(), variant, variantLiteral("cmd", m.Params))
	}
	c.Fmt("\t}\n")
	c.Fmt("\treturn nil, %s\n", c.Import("domain.ErrUnknownCommand"))
	c.Fmt("}\n\n")

	c.Fmt("// ApplyEvent replays evt against the live state, mutating it in place.\n")
	c.Fmt("func (%s *%s) ApplyEvent(evt %s) {\n", recv, d.Name, d.EventName())
	if payload {
		c.Fmt("\tswitch evt := evt.(type) {\n")
	} else {
		c.Fmt("\tswitch evt.(type) {\n")
	}
	for _, m := range cmds {
		c.Fmt("\tcase %sEvent:\n", pascal(m.Name))
		c.Fmt("\t\t%s.%s(%s)\n", recv, m.Name, variantArgs("evt", m.Params))
	}
	c.Fmt("\t}\n")
	c.Fmt("}\n\n")

	c.Fmt("var _ %s[%s, %s] = (*%s)(nil)\n\n",
		c.Import("domain.Aggregate"), d.CommandName(), d.EventName(), d.Name)

	writeEventCodec(c, d, cmds)
	return nil
}

func writeVariant(c *Ctx, name, doc string, params []Field) {
	c.Fmt("// %s %s\n", name, doc)
	c.Fmt("type %s struct {\n", name)
	for _, p := range params {
		c.Use(p.Deps)
		c.Fmt("\t%s %s `json:\"%s\"`\n", pascal(p.Name), p.Type, strings.ToLower(pascal(p.Name)))
	}
	c.Fmt("}\n\n")
}

// writeEventCodec emits the name/payload codec used to journal events.
func writeEventCodec(c *Ctx, d *RecordDecl, cmds []MethodDecl) {
	c.Fmt("// %sName returns the variant name used to journal evt.\n", d.EventName())
	c.Fmt("func %sName(evt %s) string {\n", d.EventName(), d.EventName())
	c.Fmt("\tswitch evt.(type) {\n")
	for _, m := range cmds {
		variant := pascal(m.Name)
		c.Fmt("\tcase %sEvent:\n", variant)
		c.Fmt("\t\treturn %q\n", variant)
	}
	c.Fmt("\t}\n")
	c.Fmt("\treturn \"\"\n")
	c.Fmt("}\n\n")

	unmarshal := c.Import("json.Unmarshal")
	c.Fmt("// Decode%s decodes a journaled event payload by variant name.\n", d.EventName())
	c.Fmt("func Decode%s(name string, payload []byte) (%s, error) {\n", d.EventName(), d.EventName())
	c.Fmt("\tswitch name {\n")
	for _, m := range cmds {
		variant := pascal(m.Name)
		c.Fmt("\tcase %q:\n", variant)
		c.Fmt("\t\tvar e %sEvent\n", variant)
		c.Fmt("\t\tif err := %s(payload, &e); err != nil {\n", unmarshal)
		c.Fmt("\t\t\treturn nil, err\n")
		c.Fmt("\t\t}\n")
		c.Fmt("\t\treturn e, nil\n")
	}
	c.Fmt("\t}\n")
	c.Fmt("\treturn nil, %s\n", c.Import("domain.ErrUnknownEvent"))
	c.Fmt("}\n")
}

func variantArgs(recv string, params []Field) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, recv+"."+pascal(p.Name))
	}
	return strings.Join(parts, ", ")
}

func variantLiteral(recv string, params []Field) string {
	if len(params) == 0 {
		return "{}"
	}
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, pascal(p.Name)+": "+recv+"."+pascal(p.Name))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
