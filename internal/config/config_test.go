package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultTemplate(t *testing.T) {
	tpl := DefaultTemplate()

	if len(tpl.RequiredSections) != 9 {
		t.Errorf("expected 9 required sections, got %d", len(tpl.RequiredSections))
	}
	if len(tpl.ValidStatuses) != 4 {
		t.Errorf("expected 4 valid statuses, got %d", len(tpl.ValidStatuses))
	}

	re, err := tpl.CompileIDPattern()
	if err != nil {
		t.Fatalf("default ID pattern failed to compile: %v", err)
	}

	for _, title := range []string{"# SPEC-123", "# WAB-P-042", "# WAB-D-007"} {
		if !re.MatchString(title + ": Something") {
			t.Errorf("expected default pattern to match %q", title)
		}
	}
	if re.MatchString("# WAB-X-042: Something") {
		t.Error("expected default pattern to reject WAB-X identifiers")
	}
	if !re.MatchString("preamble\n# SPEC-001: Title") {
		t.Error("expected default pattern to match a title on any line")
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	tpl, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("missing config file must not be an error, got: %v", err)
	}
	if len(tpl.RequiredSections) != 9 {
		t.Errorf("expected default sections, got %d", len(tpl.RequiredSections))
	}
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	tpl, err := Load("")
	if err != nil {
		t.Fatalf("empty path must return defaults, got: %v", err)
	}
	if tpl.IDPattern != DefaultTemplate().IDPattern {
		t.Errorf("expected default ID pattern, got %q", tpl.IDPattern)
	}
}

func TestLoad_PartialOverrideKeepsOtherDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	content := "valid_statuses:\n  - Proposed\n  - Final\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	tpl, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if len(tpl.ValidStatuses) != 2 || tpl.ValidStatuses[0] != "Proposed" {
		t.Errorf("expected overridden statuses, got %v", tpl.ValidStatuses)
	}
	if len(tpl.RequiredSections) != 9 {
		t.Errorf("expected default sections to survive a partial override, got %d", len(tpl.RequiredSections))
	}
	if tpl.IDPattern != DefaultTemplate().IDPattern {
		t.Errorf("expected default ID pattern to survive, got %q", tpl.IDPattern)
	}
}

func TestLoad_SectionOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	content := `required_sections:
  - heading: "## 1. Summary"
    subsections:
      - "### 1.1 Context"
  - heading: "## 2. Decision"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	tpl, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if len(tpl.RequiredSections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(tpl.RequiredSections))
	}
	if tpl.RequiredSections[0].Heading != "## 1. Summary" {
		t.Errorf("unexpected heading: %q", tpl.RequiredSections[0].Heading)
	}
	if len(tpl.RequiredSections[0].Subsections) != 1 {
		t.Errorf("expected one subsection, got %v", tpl.RequiredSections[0].Subsections)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte("valid_statuses: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for malformed yaml")
	}
	if !strings.Contains(err.Error(), "failed to parse config file") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoad_InvalidIDPattern(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte(`id_pattern: "(["`), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for invalid id_pattern")
	}
	if !strings.Contains(err.Error(), "invalid id_pattern") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDiscover_WalksUpToConfigFile(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "docs", "specs")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	configPath := filepath.Join(root, ConfigFileName)
	if err := os.WriteFile(configPath, []byte("valid_statuses: [Draft]\n"), 0644); err != nil {
		t.Fatal(err)
	}

	found := Discover(nested)
	if found != configPath {
		t.Errorf("Discover(%q) = %q, want %q", nested, found, configPath)
	}
}

func TestDiscover_NoConfigFile(t *testing.T) {
	if found := Discover(t.TempDir()); found != "" {
		t.Errorf("expected empty result when no config exists, got %q", found)
	}
}
