package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandTree(t *testing.T) {
	for _, path := range [][]string{
		{"trace"}, {"advance"}, {"reset"}, {"validate"}, {"graph"}, {"init"},
		{"session", "ls"}, {"session", "inspect"}, {"session", "rm"},
		{"severity"}, {"checklist", "ls"}, {"checklist", "toggle"}, {"checklist", "reset"},
		{"apispec"}, {"version"},
	} {
		cmd, _, err := rootCmd.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestRootDefaultsToTrace(t *testing.T) {
	assert.NotNil(t, rootCmd.Run)
	assert.NotNil(t, rootCmd.Flags().Lookup("session"))
	assert.NotNil(t, rootCmd.Flags().Lookup("fresh"))
	for _, name := range []string{"dir", "config", "log-level"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
}

func TestSeverityArgs(t *testing.T) {
	require.NoError(t, severityCmd.Flags().Set("matrix", "false"))
	assert.Error(t, severityCmd.Args(severityCmd, []string{"1"}))
	assert.NoError(t, severityCmd.Args(severityCmd, []string{"major", "team"}))

	require.NoError(t, severityCmd.Flags().Set("matrix", "true"))
	t.Cleanup(func() { _ = severityCmd.Flags().Set("matrix", "false") })
	assert.NoError(t, severityCmd.Args(severityCmd, nil))
	assert.Error(t, severityCmd.Args(severityCmd, []string{"1", "1"}))
}
