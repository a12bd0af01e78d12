package identity

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

// gitUserName returns the configured git user.name, or "" when no
// identity is configured. The git binary is preferred so includes and
// conditional sections apply; when git is not installed, ~/.gitconfig
// is parsed directly.
func gitUserName() string {
	if gitPath, err := exec.LookPath("git"); err == nil {
		out, err := exec.Command(gitPath, "config", "--get", "user.name").Output()
		if err != nil {
			return ""
		}
		return strings.TrimSpace(string(out))
	}
	return gitConfigFileUserName()
}

// gitConfigFileUserName reads user.name straight from ~/.gitconfig.
func gitConfigFileUserName() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	cfg, err := ini.Load(filepath.Join(home, ".gitconfig"))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(cfg.Section("user").Key("name").String())
}
