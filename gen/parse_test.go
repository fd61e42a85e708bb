package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const widgetDesign = `//go:build stowrdesign

package widget

import "github.com/stowr/backend/domain/location"

// Widget is a test declaration.
//
//stowr:domain
type Widget struct {
	Name    string
	Stock   int
	Station location.LocationId
}
`

const widgetLogic = `package widget

//stowr:command
func (w *Widget) Rename(newName string) {
	w.Name = newName
}

//stowr:command
func (w *Widget) Restock(count int) {
	w.Stock += count
}

func (w *Widget) Empty() bool {
	return w.Stock == 0
}
`

func writeWidgetPkg(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, src := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644))
	}
	return dir
}

func TestParseDir(t *testing.T) {
	dir := writeWidgetPkg(t, map[string]string{
		"design.go": widgetDesign,
		"logic.go":  widgetLogic,
	})

	decls, err := ParseDir(dir, "Widget")
	require.NoError(t, err)
	require.NotNil(t, decls.Record)

	assert.Equal(t, "Widget", decls.Record.Name)
	assert.Equal(t, "Widget is a test declaration.", decls.Record.Doc)
	require.Len(t, decls.Record.Fields, 3)
	assert.Equal(t, Field{Name: "Name", Type: "string"}, decls.Record.Fields[0])
	assert.Equal(t, Field{Name: "Stock", Type: "int"}, decls.Record.Fields[1])
	assert.Equal(t, "location.LocationId", decls.Record.Fields[2].Type)
	assert.Equal(t, []string{"location"}, decls.Record.Fields[2].Deps)
	assert.Equal(t, ModulePath+"/domain/location", decls.Pkgs["location"])

	var commands []string
	for _, m := range decls.Methods {
		assert.Equal(t, "Widget", m.Owner)
		if m.Command {
			commands = append(commands, m.Name)
		}
	}
	assert.Equal(t, []string{"Rename", "Restock"}, commands)
}

func TestParseDirNoDeclaration(t *testing.T) {
	dir := writeWidgetPkg(t, map[string]string{"logic.go": widgetLogic})

	_, err := ParseDir(dir, "Widget")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no //stowr:domain declaration")
}

func TestParseDirIgnoresUnmarkedTypes(t *testing.T) {
	dir := writeWidgetPkg(t, map[string]string{
		"design.go": widgetDesign,
		"extra.go": `package widget

// Widget shadow without a directive must not count as the declaration.
type Gadget struct {
	Widget Widget
}
`,
	})

	decls, err := ParseDir(dir, "Widget")
	require.NoError(t, err)
	assert.Equal(t, "Widget", decls.Record.Name)

	_, err = ParseDir(dir, "Gadget")
	require.Error(t, err)
}

func TestParseDirEmbeddedFieldFailsGeneration(t *testing.T) {
	dir := writeWidgetPkg(t, map[string]string{
		"design.go": `//go:build stowrdesign

package widget

type base struct{}

//stowr:domain
type Widget struct {
	base
	Name string
}
`,
	})

	decls, err := ParseDir(dir, "Widget")
	require.NoError(t, err)

	_, err = Generate(decls.Record, decls.Methods, nil, ModulePath+"/domain/widget", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported shape")
}
