package manifest

// FileName is the manifest file expected at a payload root.
const FileName = "install.yaml"

// Manifest describes one installable file set.
type Manifest struct {
	Name          string           `yaml:"name" json:"name"`
	Version       string           `yaml:"version" json:"version"`
	Description   string           `yaml:"description,omitempty" json:"description,omitempty"`
	MinCLIVersion string           `yaml:"min_cli_version,omitempty" json:"min_cli_version,omitempty"`
	Directories   []string         `yaml:"directories,omitempty" json:"directories,omitempty"`
	Files         []FileEntry      `yaml:"files" json:"files"`
	Gitignore     []GitignoreEntry `yaml:"gitignore,omitempty" json:"gitignore,omitempty"`
}

// FileEntry maps one payload file to its destination in the target project.
// User-owned files are never overwritten in place; the installer writes a
// .new sibling instead. Executable marks files installed with exec permission
// (hook scripts).
type FileEntry struct {
	Source     string `yaml:"source" json:"source"`
	Dest       string `yaml:"dest" json:"dest"`
	UserOwned  bool   `yaml:"user_owned,omitempty" json:"user_owned,omitempty"`
	Executable bool   `yaml:"executable,omitempty" json:"executable,omitempty"`
}

// GitignoreEntry is a literal .gitignore line with an optional preceding
// comment line.
type GitignoreEntry struct {
	Line    string `yaml:"line" json:"line"`
	Comment string `yaml:"comment,omitempty" json:"comment,omitempty"`
}
