package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitCommandCreatesTheme(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "acme")

	stdout, err := executeCommand("init", dir, "--no-git")
	require.NoError(t, err)
	require.Contains(t, stdout, "Created "+filepath.Join(dir, "theme.yaml"))
	require.NotContains(t, stdout, "Initialized git repository")
	require.FileExists(t, filepath.Join(dir, "theme.yaml"))
	require.NoDirExists(t, filepath.Join(dir, ".git"))

	stdout, err = executeCommand("--theme", filepath.Join(dir, "theme.yaml"), "resolve", "button", "grow", "--width", "900", "--json")
	require.NoError(t, err)
	require.Contains(t, stdout, "ui-button-grow-large")
}

func TestInitCommandTOMLWithGit(t *testing.T) {
	dir := t.TempDir()

	stdout, err := executeCommand("init", dir, "--format", "toml", "--name", "brand")
	require.NoError(t, err)
	require.Contains(t, stdout, "Initialized git repository")
	require.FileExists(t, filepath.Join(dir, "theme.toml"))
	require.DirExists(t, filepath.Join(dir, ".git"))
}

func TestInitCommandRefusesExistingTheme(t *testing.T) {
	dir := t.TempDir()

	_, err := executeCommand("init", dir, "--no-git")
	require.NoError(t, err)

	_, err = executeCommand("init", dir, "--no-git")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Edit the existing theme")
}

func TestInitCommandValidatesFlags(t *testing.T) {
	dir := t.TempDir()

	_, err := executeCommand("init", dir, "--format", "json")
	require.Error(t, err)
	require.Contains(t, err.Error(), "--format yaml")

	_, err = executeCommand("init", dir, "--name", "Bad Name")
	require.Error(t, err)
	require.Contains(t, err.Error(), "validating name")
}
