package manifest

import (
	"testing"
)

func TestValidate_Valid(t *testing.T) {
	result, err := Validate([]byte(sampleManifest))
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if !result.Valid {
		t.Fatalf("expected valid manifest, issues: %+v", result.Issues)
	}
}

func TestValidate_UnknownField(t *testing.T) {
	data := []byte(`name: kit
version: "1.0.0"
files:
  - source: a.md
    dest: b.md
surprise: true
`)
	result, err := Validate(data)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if result.Valid {
		t.Error("unknown top-level fields should fail validation")
	}
}

func TestValidate_BadVersion(t *testing.T) {
	data := []byte(`name: kit
version: "not-a-version"
files:
  - source: a.md
    dest: b.md
`)
	result, err := Validate(data)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if result.Valid {
		t.Error("non-semver version should fail validation")
	}
	if len(result.Issues) == 0 {
		t.Error("expected at least one issue")
	}
}

func TestValidate_NotYAML(t *testing.T) {
	_, err := Validate([]byte("{unbalanced"))
	if err == nil {
		t.Error("expected YAML parse error")
	}
}
