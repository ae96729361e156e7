package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/harvard-cv/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

const anaCVJSON = `{
	"profile": {"first_name": "Ana", "last_name": "Ruiz", "email": "ana@x.com"},
	"experience": [
		{"company": "Acme", "role": "Engineer", "start_date": "2021-01", "bullets": ["Shipped X"]}
	]
}`

// resetFlags restores every flag to its default so commands can run repeatedly in one process.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// runCLI executes the root command in-process and returns its stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	stdout, _, err := runCLIOutput(t, args...)
	return stdout, err
}

// runCLIOutput is runCLI that also returns stderr.
func runCLIOutput(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	for _, key := range []string{
		config.EnvTemplateDir, config.EnvPaddingWidth, config.EnvChromePath,
		config.EnvGoogleClientID, config.EnvGoogleClientSecret,
		config.EnvGoogleAccessToken, config.EnvGoogleRefreshToken,
	} {
		t.Setenv(key, "")
	}

	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// writeFile writes content into a temp file and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
