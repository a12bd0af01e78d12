//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/maximal-ai/maximal/internal/config"
	"github.com/maximal-ai/maximal/internal/identity"
	"github.com/maximal-ai/maximal/internal/installer"
	"github.com/maximal-ai/maximal/internal/manifest"
)

// installOnce runs the full manifest-driven install path the CLI follows.
func installOnce(t *testing.T, env *testEnv) *installer.Result {
	t.Helper()

	payloadDir := config.PayloadDir()
	if payloadDir != env.PayloadDir {
		t.Fatalf("PayloadDir() = %s, want %s", payloadDir, env.PayloadDir)
	}

	m, err := manifest.Load(payloadDir)
	if err != nil {
		t.Fatalf("manifest.Load() error = %v", err)
	}
	if err := manifest.CheckCLIVersion(m, "1.0.0"); err != nil {
		t.Fatalf("CheckCLIVersion() error = %v", err)
	}

	result, err := installer.Install(m, payloadDir, env.ProjectDir, installer.Options{})
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}

	username := identity.Resolve(env.ProjectDir)
	if _, err := identity.Persist(env.ProjectDir, username); err != nil {
		t.Fatalf("Persist() error = %v", err)
	}
	return result
}

func TestInstall_EndToEnd(t *testing.T) {
	env := setupTestEnv(t)

	result := installOnce(t, env)

	for _, rel := range []string{
		"CLAUDE.md",
		".claude/commands/research.md",
		".claude/commands/plan.md",
		".claude/commands/implement.md",
		".claude/agents/codebase-locator.md",
		".claude/hooks/session-start.sh",
		".claude/config.yaml",
		"thoughts/shared",
	} {
		if !projectFileExists(env, rel) {
			t.Errorf("expected %s after install", rel)
		}
	}

	if len(result.Installed) != 6 {
		t.Errorf("Installed = %v, want 6 entries", result.Installed)
	}

	info, err := os.Stat(filepath.Join(env.ProjectDir, ".claude/hooks/session-start.sh"))
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0755 {
		t.Errorf("hook mode = %v, want 0755", info.Mode().Perm())
	}

	// No git identity and no env override, so the fallback username lands
	// in the project config.
	cfg := readProjectFile(t, env, ".claude/config.yaml")
	if !strings.Contains(cfg, "username: user") {
		t.Errorf("config.yaml = %q, want fallback username", cfg)
	}
}

func TestInstall_Idempotent(t *testing.T) {
	env := setupTestEnv(t)
	if err := os.WriteFile(filepath.Join(env.ProjectDir, ".gitignore"), []byte("dist/\n"), 0644); err != nil {
		t.Fatal(err)
	}

	installOnce(t, env)
	installOnce(t, env)

	gitignore := readProjectFile(t, env, ".gitignore")
	for _, line := range []string{
		"thoughts/",
		".claude/config.yaml",
		"# Working notes from the RPI workflow",
		"# Per-user identity, not shared",
	} {
		if got := strings.Count(gitignore, line); got != 1 {
			t.Errorf("%q appears %d times in .gitignore, want 1:\n%s", line, got, gitignore)
		}
	}

	cfg := readProjectFile(t, env, ".claude/config.yaml")
	if got := strings.Count(cfg, "username:"); got != 1 {
		t.Errorf("username appears %d times in config.yaml, want 1:\n%s", got, cfg)
	}
}

func TestInstall_UserOwnedGuard(t *testing.T) {
	env := setupTestEnv(t)
	installOnce(t, env)

	custom := "# My customized guidance\n"
	if err := os.WriteFile(filepath.Join(env.ProjectDir, "CLAUDE.md"), []byte(custom), 0644); err != nil {
		t.Fatal(err)
	}

	result := installOnce(t, env)

	if got := readProjectFile(t, env, "CLAUDE.md"); got != custom {
		t.Errorf("CLAUDE.md was overwritten: %q", got)
	}
	if !projectFileExists(env, "CLAUDE.md.new") {
		t.Error("expected CLAUDE.md.new sibling")
	}
	if len(result.Preserved) != 1 || result.Preserved[0] != "CLAUDE.md" {
		t.Errorf("Preserved = %v, want [CLAUDE.md]", result.Preserved)
	}
}

func TestInstall_ManagedFilesRefreshed(t *testing.T) {
	env := setupTestEnv(t)
	installOnce(t, env)

	stale := filepath.Join(env.ProjectDir, ".claude/commands/research.md")
	if err := os.WriteFile(stale, []byte("# stale\n"), 0644); err != nil {
		t.Fatal(err)
	}

	installOnce(t, env)

	if got := readProjectFile(t, env, ".claude/commands/research.md"); got != "# /research\n" {
		t.Errorf("managed file not refreshed: %q", got)
	}
}

func TestInstall_GitignoreAbsentIsNoop(t *testing.T) {
	env := setupTestEnv(t)

	// No .gitignore in the project: the installer must not create one.
	installOnce(t, env)

	if projectFileExists(env, ".gitignore") {
		t.Error(".gitignore should not be created when absent")
	}
}

func TestInstall_GitignorePatched(t *testing.T) {
	env := setupTestEnv(t)
	if err := os.WriteFile(filepath.Join(env.ProjectDir, ".gitignore"), []byte("node_modules/\n"), 0644); err != nil {
		t.Fatal(err)
	}

	result := installOnce(t, env)

	if len(result.GitignoreAdded) != 2 {
		t.Errorf("GitignoreAdded = %v, want thoughts/ and .claude/config.yaml", result.GitignoreAdded)
	}
	gitignore := readProjectFile(t, env, ".gitignore")
	if !strings.Contains(gitignore, "# Working notes from the RPI workflow\nthoughts/\n") {
		t.Errorf("comment and line not appended together:\n%s", gitignore)
	}
	if !strings.Contains(gitignore, "# Per-user identity, not shared\n.claude/config.yaml\n") {
		t.Errorf("config.yaml entry not appended under its comment:\n%s", gitignore)
	}
	if !strings.HasPrefix(gitignore, "node_modules/\n") {
		t.Errorf("existing content disturbed:\n%s", gitignore)
	}
}
