package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fooMethods() []MethodDecl {
	return []MethodDecl{
		{Owner: "Foo", Name: "Rename", Params: []Field{{Name: "newName", Type: "string"}}, Command: true},
		{Owner: "Foo", Name: "Touch", Command: false},
	}
}

func TestWriteAggregate(t *testing.T) {
	c := NewCtx(ModulePath+"/domain/foo", nil)
	require.NoError(t, WriteAggregate(c, fooDecl(), fooMethods(), nil))
	out := c.String()

	for _, want := range []string{
		"type FooCommand interface{ isFooCommand() }\n",
		"type FooEvent interface{ isFooEvent() }\n",
		"type RenameCommand struct {\n\tNewName string `json:\"newname\"`\n}\n",
		"type RenameEvent struct {\n\tNewName string `json:\"newname\"`\n}\n",
		"func (f Foo) HandleCommand(cmd FooCommand) ([]FooEvent, error) {\n",
		"next := f\n",
		"next.Rename(cmd.NewName)\n",
		"return []FooEvent{RenameEvent{NewName: cmd.NewName}}, nil\n",
		"func (f *Foo) ApplyEvent(evt FooEvent) {\n",
		"f.Rename(evt.NewName)\n",
		"var _ domain.Aggregate[FooCommand, FooEvent] = (*Foo)(nil)\n",
		"func DecodeFooEvent(name string, payload []byte) (FooEvent, error) {\n",
	} {
		assert.Contains(t, out, want)
	}

	// the non-command method must not leak into the sums
	assert.NotContains(t, out, "TouchCommand")
}

// Every command variant must have exactly one event variant with the same
// name and field set.
func TestCommandEventCorrespondence(t *testing.T) {
	methods := []MethodDecl{
		{Owner: "Foo", Name: "Rename", Params: []Field{{Name: "newName", Type: "string"}}, Command: true},
		{Owner: "Foo", Name: "archive", Command: true},
	}
	c := NewCtx(ModulePath+"/domain/foo", nil)
	require.NoError(t, WriteAggregate(c, fooDecl(), methods, nil))
	out := c.String()

	for _, variant := range []string{"Rename", "Archive"} {
		cmdIdx := strings.Index(out, "type "+variant+"Command struct {")
		evtIdx := strings.Index(out, "type "+variant+"Event struct {")
		require.GreaterOrEqual(t, cmdIdx, 0, variant)
		require.GreaterOrEqual(t, evtIdx, 0, variant)

		cmdBody := out[cmdIdx:strings.Index(out[cmdIdx:], "}")+cmdIdx]
		evtBody := out[evtIdx:strings.Index(out[evtIdx:], "}")+evtIdx]
		cmdFields := strings.TrimPrefix(cmdBody, "type "+variant+"Command struct {")
		evtFields := strings.TrimPrefix(evtBody, "type "+variant+"Event struct {")
		assert.Equal(t, cmdFields, evtFields, variant)
	}
}

func TestWriteAggregateErrors(t *testing.T) {
	tests := []struct {
		name     string
		methods  []MethodDecl
		commands []string
		want     string
	}{
		{"unknown method", fooMethods(), []string{"Vanish"}, "unknown method"},
		{"non-command method", fooMethods(), []string{"Touch"}, "not flagged as a command"},
		{"duplicate variant", []MethodDecl{
			{Owner: "Foo", Name: "new_name", Command: true},
			{Owner: "Foo", Name: "newName", Command: true},
		}, nil, "both map to variant NewName"},
		{"unnamed parameter", []MethodDecl{
			{Owner: "Foo", Name: "Rename", Params: []Field{{Type: "string"}}, Command: true},
		}, nil, "unnamed parameter"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCtx(ModulePath+"/domain/foo", nil)
			err := WriteAggregate(c, fooDecl(), tt.methods, tt.commands)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			// all-or-nothing: nothing may have been emitted before the failure
			assert.Zero(t, c.Len())
		})
	}
}
