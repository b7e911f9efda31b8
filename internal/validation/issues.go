// Package validation checks Croissant documents against the structural rules
// of the vocabulary. A validation pass runs every rule, collects findings of
// both severities in evaluation order, and reports a verdict: the pass fails
// when at least one Error-severity finding exists, and Warnings never fail it.
package validation

import (
	"fmt"
	"strings"
)

// Severity classifies a finding as blocking or advisory.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// NodeKind names the kind of document node a path step refers to.
type NodeKind string

const (
	NodeDataset    NodeKind = "Dataset"
	NodeFileObject NodeKind = "FileObject"
	NodeRecordSet  NodeKind = "RecordSet"
	NodeField      NodeKind = "Field"
)

// PathNode is one typed, named step in a hierarchical issue path.
type PathNode struct {
	Kind NodeKind
	Name string
}

// Path locates a node in the document hierarchy, outermost first. Paths are
// built top-down with Child and never mutated, so ancestors can be shared
// safely across sibling nodes.
type Path []PathNode

// Child returns a new path with one step appended. The receiver is copied,
// not extended in place.
func (p Path) Child(kind NodeKind, name string) Path {
	child := make(Path, len(p), len(p)+1)
	copy(child, p)
	return append(child, PathNode{Kind: kind, Name: name})
}

// String renders the path as "Dataset(x) > RecordSet(y) > Field(z)".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, node := range p {
		parts[i] = fmt.Sprintf("%s(%s)", node.Kind, node.Name)
	}
	return strings.Join(parts, " > ")
}

// Issue is a single validation finding. Issues are created during one pass
// and never modified afterwards. Value carries the offending value when the
// finding has one.
type Issue struct {
	Severity Severity
	Path     Path
	Message  string
	Value    string
}

// Issues accumulates findings in rule-evaluation order for one validation
// run. The zero value is not usable; construct with NewIssues.
type Issues struct {
	issues []Issue
}

// NewIssues returns an empty collection.
func NewIssues() *Issues {
	return &Issues{issues: []Issue{}}
}

// AddError records an Error-severity finding.
func (c *Issues) AddError(path Path, message string) {
	c.add(SeverityError, path, message, "")
}

// AddErrorValue records an Error-severity finding with the offending value.
func (c *Issues) AddErrorValue(path Path, message, value string) {
	c.add(SeverityError, path, message, value)
}

// AddWarning records a Warning-severity finding.
func (c *Issues) AddWarning(path Path, message string) {
	c.add(SeverityWarning, path, message, "")
}

// AddWarningValue records a Warning-severity finding with the offending value.
func (c *Issues) AddWarningValue(path Path, message, value string) {
	c.add(SeverityWarning, path, message, value)
}

func (c *Issues) add(severity Severity, path Path, message, value string) {
	c.issues = append(c.issues, Issue{
		Severity: severity,
		Path:     path,
		Message:  message,
		Value:    value,
	})
}

// All returns every finding in the order it was recorded.
func (c *Issues) All() []Issue {
	return c.issues
}

// ErrorCount returns the number of Error-severity findings.
func (c *Issues) ErrorCount() int {
	return c.count(SeverityError)
}

// WarningCount returns the number of Warning-severity findings.
func (c *Issues) WarningCount() int {
	return c.count(SeverityWarning)
}

func (c *Issues) count(severity Severity) int {
	n := 0
	for _, issue := range c.issues {
		if issue.Severity == severity {
			n++
		}
	}
	return n
}

// HasErrors reports whether any Error-severity finding was recorded.
func (c *Issues) HasErrors() bool {
	return c.ErrorCount() > 0
}

// HasWarnings reports whether any Warning-severity finding was recorded.
func (c *Issues) HasWarnings() bool {
	return c.WarningCount() > 0
}

// IsEmpty reports whether the collection has no findings at all.
func (c *Issues) IsEmpty() bool {
	return len(c.issues) == 0
}

// Passed is the verdict: true iff no Error-severity finding exists.
// Warnings never fail a pass.
func (c *Issues) Passed() bool {
	return !c.HasErrors()
}

// Report renders all findings for humans, errors first:
//
//	Found the following 2 error(s) during the validation:
//	  -  [Dataset(x) > FileObject(y)] Property "https://schema.org/contentUrl" is mandatory, but does not exist.
//	  -  ...
//
//	Found the following 1 warning(s) during the validation:
//	  -  ...
//
// An empty collection renders as the empty string.
func (c *Issues) Report() string {
	if len(c.issues) == 0 {
		return ""
	}

	var b strings.Builder
	errors := c.filter(SeverityError)
	warnings := c.filter(SeverityWarning)

	if len(errors) > 0 {
		fmt.Fprintf(&b, "Found the following %d error(s) during the validation:\n", len(errors))
		writeIssueLines(&b, errors)
	}
	if len(warnings) > 0 {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "Found the following %d warning(s) during the validation:\n", len(warnings))
		writeIssueLines(&b, warnings)
	}

	return strings.TrimRight(b.String(), "\n")
}

func (c *Issues) filter(severity Severity) []Issue {
	var out []Issue
	for _, issue := range c.issues {
		if issue.Severity == severity {
			out = append(out, issue)
		}
	}
	return out
}

func writeIssueLines(b *strings.Builder, issues []Issue) {
	for _, issue := range issues {
		if len(issue.Path) > 0 {
			fmt.Fprintf(b, "  -  [%s] %s\n", issue.Path, issue.Message)
		} else {
			fmt.Fprintf(b, "  -  %s\n", issue.Message)
		}
	}
}
