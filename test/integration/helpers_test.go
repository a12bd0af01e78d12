//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	PayloadDir string // MAXIMAL_AI_HOME, holds install.yaml and payload files
	ProjectDir string // target project directory
	HomeDir    string // isolated HOME
}

// setupTestEnv creates a payload directory with a realistic manifest and
// an empty project, and points the environment at them. Git identity
// sources are muted so username resolution is deterministic.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		PayloadDir: t.TempDir(),
		ProjectDir: t.TempDir(),
		HomeDir:    t.TempDir(),
	}

	t.Setenv("MAXIMAL_AI_HOME", env.PayloadDir)
	t.Setenv("HOME", env.HomeDir)
	t.Setenv("GIT_CONFIG_GLOBAL", os.DevNull)
	t.Setenv("GIT_CONFIG_SYSTEM", os.DevNull)
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	t.Setenv("RPI_USERNAME", "")

	writePayloadFile(t, env.PayloadDir, "CLAUDE.md", "# Project guidance\n")
	writePayloadFile(t, env.PayloadDir, "commands/research.md", "# /research\n")
	writePayloadFile(t, env.PayloadDir, "commands/plan.md", "# /plan\n")
	writePayloadFile(t, env.PayloadDir, "commands/implement.md", "# /implement\n")
	writePayloadFile(t, env.PayloadDir, "agents/codebase-locator.md", "# codebase-locator\n")
	writePayloadFile(t, env.PayloadDir, "hooks/session-start.sh", "#!/bin/sh\nexit 0\n")
	writePayloadFile(t, env.PayloadDir, "install.yaml", manifestYAML)

	return env
}

const manifestYAML = `name: rpi-workflow
version: 1.4.0
description: Research, Plan, Implement workflow files
min_cli_version: 0.1.0
directories:
  - thoughts/shared
files:
  - source: CLAUDE.md
    dest: CLAUDE.md
    user_owned: true
  - source: commands/research.md
    dest: .claude/commands/research.md
  - source: commands/plan.md
    dest: .claude/commands/plan.md
  - source: commands/implement.md
    dest: .claude/commands/implement.md
  - source: agents/codebase-locator.md
    dest: .claude/agents/codebase-locator.md
  - source: hooks/session-start.sh
    dest: .claude/hooks/session-start.sh
    executable: true
gitignore:
  - line: thoughts/
    comment: "# Working notes from the RPI workflow"
  - line: .claude/config.yaml
    comment: "# Per-user identity, not shared"
`

func writePayloadFile(t *testing.T, payloadDir, rel, content string) {
	t.Helper()
	path := filepath.Join(payloadDir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readProjectFile(t *testing.T, env *testEnv, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(env.ProjectDir, rel))
	if err != nil {
		t.Fatalf("reading %s: %v", rel, err)
	}
	return string(data)
}

func projectFileExists(env *testEnv, rel string) bool {
	_, err := os.Stat(filepath.Join(env.ProjectDir, rel))
	return err == nil
}
