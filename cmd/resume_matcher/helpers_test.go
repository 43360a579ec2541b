package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

const testSkillsCSV = `skill,aliases,type
Python,"py,python3",hard
Go,golang,hard
Kubernetes,k8s,hard
Docker,,hard
Communication,,soft
`

const testJD = `Title: Backend Engineer
Company: Acme Corp

Requirements
- Proficient in Python
- Experience with Kubernetes

Nice to have
- Go
`

const testResume = `Jane Doe
jane.doe@example.com

Experience
Acme Corp | Software Engineer | Jan 2021 - Present
- Built REST APIs in Python and Go

Skills
Kubernetes, Docker
`

// writeFile writes content to name inside dir and returns the path
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// resetFlags restores every flag to its default so commands can run repeatedly
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the root command in-process with a test dictionary
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LOG_LEVEL", "")

	dir := t.TempDir()
	skills := writeFile(t, dir, "skills.csv", testSkillsCSV)

	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--skills", skills}, args...))

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}
