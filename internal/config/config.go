package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the optional template override file looked up near the
// documents being validated.
const ConfigFileName = ".speclint.yaml"

// Section is a required top-level heading plus its recommended subsections.
// A missing heading is an error; a missing subsection under a present heading
// is only a warning.
type Section struct {
	// Heading is the exact top-level heading text, e.g. "## 1. Overview"
	Heading string `yaml:"heading"`

	// Subsections are the exact subsection heading texts, e.g. "### 1.1 Purpose"
	Subsections []string `yaml:"subsections"`
}

// Template describes the document convention a spec file must follow.
type Template struct {
	// IDPattern is the regular expression the title line must match.
	// The first capture group is the spec identifier.
	IDPattern string `yaml:"id_pattern"`

	// ValidStatuses are the accepted values for the Status marker.
	// Matching is by substring, so "Draft, pending review" counts as Draft.
	ValidStatuses []string `yaml:"valid_statuses"`

	// RequiredSections is the ordered list of headings every spec must have.
	RequiredSections []Section `yaml:"required_sections"`
}

// DefaultTemplate returns the built-in spec convention.
func DefaultTemplate() *Template {
	return &Template{
		IDPattern:     `(?m)^# ((?:SPEC|WAB-[PD])-\d{3})`,
		ValidStatuses: []string{"Draft", "Review", "Approved", "Implemented"},
		RequiredSections: []Section{
			{Heading: "## 1. Overview", Subsections: []string{"### 1.1 Purpose", "### 1.2 Scope", "### 1.3 Dependencies"}},
			{Heading: "## 2. Requirements", Subsections: []string{"### 2.1 Functional Requirements", "### 2.2 Non-Functional Requirements"}},
			{Heading: "## 3. Technical Design"},
			{Heading: "## 4. Public Interface"},
			{Heading: "## 5. Error Handling"},
			{Heading: "## 6. Security Considerations"},
			{Heading: "## 7. Testing Requirements", Subsections: []string{"### 7.1 Unit Tests", "### 7.3 Coverage Target"}},
			{Heading: "## 8. Implementation Notes", Subsections: []string{"### 8.1 File Locations"}},
			{Heading: "## 9. Changelog"},
		},
	}
}

// CompileIDPattern compiles the template's identifier pattern.
func (t *Template) CompileIDPattern() (*regexp.Regexp, error) {
	re, err := regexp.Compile(t.IDPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid id_pattern %q: %w", t.IDPattern, err)
	}
	return re, nil
}

// Load loads a template from the specified file path.
// If the file doesn't exist, returns the default template without error.
// If the file exists but is malformed, returns an error.
// Overrides are per-field: fields left empty in the file keep their defaults.
func Load(path string) (*Template, error) {
	tpl := DefaultTemplate()

	if path == "" {
		return tpl, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		// File doesn't exist, return defaults (not an error)
		return tpl, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var overrides Template
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if overrides.IDPattern != "" {
		tpl.IDPattern = overrides.IDPattern
	}
	if len(overrides.ValidStatuses) > 0 {
		tpl.ValidStatuses = overrides.ValidStatuses
	}
	if len(overrides.RequiredSections) > 0 {
		tpl.RequiredSections = overrides.RequiredSections
	}

	// Fail early on a pattern the validator could not compile later
	if _, err := tpl.CompileIDPattern(); err != nil {
		return nil, err
	}

	return tpl, nil
}
