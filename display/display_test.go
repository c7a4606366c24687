package display

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/can/errors"
	"github.com/teranos/can/nomenclature"
)

func newCommand() (*cobra.Command, *cobra.Command) {
	root := &cobra.Command{Use: "can"}
	root.PersistentFlags().Bool("json", false, "")
	child := &cobra.Command{Use: "list", Run: func(*cobra.Command, []string) {}}
	child.Flags().String("format", "", "")
	root.AddCommand(child)
	return root, child
}

func TestShouldOutputJSON(t *testing.T) {
	t.Setenv(CallerEnv, "")

	root, child := newCommand()
	assert.False(t, ShouldOutputJSON(child))

	require.NoError(t, root.PersistentFlags().Set("json", "true"))
	assert.True(t, ShouldOutputJSON(child))
}

func TestShouldOutputJSON_ScriptedCaller(t *testing.T) {
	t.Setenv(CallerEnv, "script")

	_, child := newCommand()
	assert.True(t, ShouldOutputJSON(child))
	assert.True(t, ShouldOutputJSON(nil))
}

func TestResolveFormat(t *testing.T) {
	t.Setenv(CallerEnv, "")

	_, child := newCommand()
	f, err := ResolveFormat(child, "yaml")
	require.NoError(t, err)
	assert.Equal(t, "yaml", f)

	f, err = ResolveFormat(child, "")
	require.NoError(t, err)
	assert.Equal(t, "table", f)

	require.NoError(t, child.Flags().Set("format", "toml"))
	f, err = ResolveFormat(child, "yaml")
	require.NoError(t, err)
	assert.Equal(t, "toml", f)

	require.NoError(t, child.Flags().Set("format", "xml"))
	_, err = ResolveFormat(child, "yaml")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidRequestError(err))
}

func TestResolveFormat_JSONFlagWins(t *testing.T) {
	t.Setenv(CallerEnv, "")

	root, child := newCommand()
	require.NoError(t, child.Flags().Set("format", "yaml"))
	require.NoError(t, root.PersistentFlags().Set("json", "true"))

	f, err := ResolveFormat(child, "toml")
	require.NoError(t, err)
	assert.Equal(t, "json", f)
}

func TestMarshal(t *testing.T) {
	e, ok := nomenclature.GetAnnotation(nomenclature.KeyConcept)
	require.True(t, ok)

	data, err := Marshal("json", e)
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":"KC","name":"KeyConcept","description":"`+e.Description+`"}`, string(data))

	data, err = Marshal("yaml", e)
	require.NoError(t, err)
	assert.Contains(t, string(data), "code: KC\n")
	assert.Contains(t, string(data), "name: KeyConcept\n")

	data, err = Marshal("toml", e)
	require.NoError(t, err)
	assert.Contains(t, string(data), "code = 'KC'")
}

func TestMarshal_TOMLSliceWrapped(t *testing.T) {
	data, err := Marshal("toml", nomenclature.AllEmphasizers().Slice())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[[items]]")
	assert.Contains(t, string(data), "name = 'StrongLike'")
}

func TestMarshal_UnknownFormat(t *testing.T) {
	_, err := Marshal("table", nil)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidRequestError(err))
}

func TestOutput_TrailingNewline(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Output(&buf, "json", map[string]int{"count": 3}))
	assert.Equal(t, "{\n  \"count\": 3\n}\n", buf.String())
}
