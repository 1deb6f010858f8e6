package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"docsim/internal/config"
	"docsim/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	inputDir   string
}

func setupCLITestEnv(t *testing.T, docs map[string]string) *cliTestEnv {
	t.Helper()

	t.Setenv("DOCSIM_INPUT_DIR", "")
	cfg := testsupport.NewConfig(t,
		testsupport.WithDocuments(docs),
		testsupport.WithStopwords("the"),
	)
	home := filepath.Join(testsupport.BaseDir(cfg), "home")
	t.Setenv("HOME", home)

	configPath := filepath.Join(testsupport.BaseDir(cfg), "config.toml")
	testsupport.WriteConfigFile(t, configPath, cfg)

	return &cliTestEnv{
		cfg:        cfg,
		configPath: configPath,
		inputDir:   cfg.Input.Dir,
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
