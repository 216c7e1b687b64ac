// Package validator checks spec documents against the required document
// template. It verifies the SPEC-ID in the title, the Status marker, the
// presence of required sections and their recommended subsections, and a few
// content heuristics (requirement table rows, coverage percentage, file
// location tables). Structural violations are errors; convention deviations
// are warnings and never fail a run.
package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/harrison/speclint/internal/config"
)

// statusRegex matches the Status marker line, e.g. "> **Status:** Draft".
// Only the first match in the document is considered.
var statusRegex = regexp.MustCompile(`>\s*\*\*Status:\*\*\s*(.+)`)

// frRowRegex matches a functional requirement table cell, e.g. "| FR-001".
var frRowRegex = regexp.MustCompile(`\|\s*FR-\d+`)

// Validator accumulates findings from one validation run over a single
// document. Create one per document and discard it after reading the result.
type Validator struct {
	content  string
	filename string
	template *config.Template

	errors   []string
	warnings []string
}

// New creates a Validator for the given document content and filename using
// the built-in template. The filename is only used for the identifier
// cross-check warning.
func New(content, filename string) *Validator {
	return NewWithTemplate(content, filename, config.DefaultTemplate())
}

// NewWithTemplate creates a Validator that checks against a custom template.
func NewWithTemplate(content, filename string, tpl *config.Template) *Validator {
	return &Validator{
		content:  content,
		filename: filename,
		template: tpl,
	}
}

// Validate runs all checks in order and returns true if the document passed.
// Every check always executes; findings from earlier checks never suppress
// later ones. Malformed input produces findings, not failures of the run.
func (v *Validator) Validate() bool {
	v.checkSpecID()
	v.checkStatus()
	v.checkSections()
	v.checkRequirementsTable()
	v.checkCoverageTarget()
	v.checkFileLocations()

	return len(v.errors) == 0
}

// Passed reports whether the last run recorded zero errors.
// Warnings never affect the result.
func (v *Validator) Passed() bool {
	return len(v.errors) == 0
}

// Filename returns the document's filename.
func (v *Validator) Filename() string {
	return v.filename
}

// Errors returns the recorded error messages in emission order.
func (v *Validator) Errors() []string {
	return v.errors
}

// Warnings returns the recorded warning messages in emission order.
func (v *Validator) Warnings() []string {
	return v.warnings
}

func (v *Validator) addError(format string, args ...interface{}) {
	v.errors = append(v.errors, fmt.Sprintf(format, args...))
}

func (v *Validator) addWarning(format string, args ...interface{}) {
	v.warnings = append(v.warnings, fmt.Sprintf(format, args...))
}

// checkSpecID verifies the title line carries a spec identifier and
// cross-checks it against the filename. A filename mismatch is advisory only.
func (v *Validator) checkSpecID() {
	idRegex, err := v.template.CompileIDPattern()
	if err != nil {
		v.addError("Invalid SPEC-ID pattern in template: %v", err)
		return
	}

	match := idRegex.FindStringSubmatch(v.content)
	if match == nil {
		v.addError("Missing or invalid SPEC-ID in title. Expected format: # WAB-P-XXX or # WAB-D-XXX or # SPEC-XXX")
		return
	}

	specID := match[1]
	if !strings.Contains(strings.ToLower(v.filename), strings.ToLower(specID)) {
		v.addWarning("Filename should contain the SPEC-ID: %s", specID)
	}
}

// checkStatus verifies the Status marker is present and carries one of the
// valid status values. Matching is by substring, so trailing annotations like
// "Draft, pending review" are accepted.
func (v *Validator) checkStatus() {
	match := statusRegex.FindStringSubmatch(v.content)
	if match == nil {
		v.addError("Missing Status field. Expected: > **Status:** %s",
			strings.Join(v.template.ValidStatuses, " | "))
		return
	}

	statusLine := strings.TrimSpace(match[1])
	for _, status := range v.template.ValidStatuses {
		if strings.Contains(statusLine, status) {
			return
		}
	}
	v.addError("Invalid status. Must be one of: %s", strings.Join(v.template.ValidStatuses, ", "))
}

// checkSections verifies every required heading appears in the document.
// Subsections are only checked when their top-level heading is present, so a
// missing section is reported once, not once per subsection.
func (v *Validator) checkSections() {
	for _, section := range v.template.RequiredSections {
		if !strings.Contains(v.content, section.Heading) {
			v.addError("Missing required section: %s", section.Heading)
			continue
		}
		for _, subsection := range section.Subsections {
			if !strings.Contains(v.content, subsection) {
				v.addWarning("Missing recommended subsection: %s", subsection)
			}
		}
	}
}

// checkRequirementsTable verifies the requirements section lists at least one
// functional requirement row.
func (v *Validator) checkRequirementsTable() {
	if !strings.Contains(v.content, "## 2. Requirements") {
		return
	}
	if !frRowRegex.MatchString(v.content) {
		v.addWarning("No functional requirements (FR-XXX) found in requirements table")
	}
}

// checkCoverageTarget verifies the coverage target section mentions a
// percentage. Only presence of a '%' is checked, never the value.
func (v *Validator) checkCoverageTarget() {
	section, ok := sectionSlice(v.content, "### 7.3 Coverage Target")
	if !ok {
		return
	}
	if !strings.Contains(section, "%") {
		v.addWarning("Coverage target should specify a percentage (minimum 80%%)")
	}
}

// checkFileLocations verifies the file locations section uses a table.
func (v *Validator) checkFileLocations() {
	section, ok := sectionSlice(v.content, "### 8.1 File Locations")
	if !ok {
		return
	}
	if !strings.Contains(section, "|") {
		v.addWarning("File locations should be in a table format")
	}
}

// sectionSlice returns the document text from the end of the given heading up
// to (but not including) the next line starting with "##". Returns false if
// the heading is absent.
func sectionSlice(content, heading string) (string, bool) {
	idx := strings.Index(content, heading)
	if idx == -1 {
		return "", false
	}

	rest := content[idx+len(heading):]
	if end := strings.Index(rest, "\n##"); end != -1 {
		rest = rest[:end]
	}
	return rest, true
}
