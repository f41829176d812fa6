package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	root := NewRootCmd()
	assert.Equal(t, "circ", root.Use)

	names := make(map[string]bool)
	for _, sub := range root.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"demo", "due", "types"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}

	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
}
