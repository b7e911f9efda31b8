package validation

import (
	"errors"
	"fmt"
	"os"

	"github.com/croissant-tools/croissant/internal/croissant"
)

// RulesetVersion identifies the structural ruleset this package implements.
// The vocabulary's full grammar is larger than any fixed list; the set here
// is versioned so additions are an auditable change, not silent drift.
const RulesetVersion = "1.0"

// Validator runs an ordered ruleset over one document per call. A Validator
// holds no per-run state and may be reused across documents.
type Validator struct {
	rules []Rule
}

// New returns a Validator with the default ruleset.
func New() *Validator {
	return &Validator{rules: DefaultRules()}
}

// NewWithRules returns a Validator running exactly the given rules in order.
func NewWithRules(rules []Rule) *Validator {
	return &Validator{rules: rules}
}

// Validate runs every rule against doc and returns the collected findings.
// All rules always run; an early finding never short-circuits later rules.
func (v *Validator) Validate(doc *croissant.Document) *Issues {
	issues := NewIssues()
	for _, rule := range v.rules {
		rule.Check(doc, issues)
	}
	return issues
}

// ValidateBytes parses data as JSON-LD and validates it. Content that cannot
// be parsed at all yields a single top-level Error finding rather than an
// error: an unparseable document is a failed validation, not a failed
// operation.
func (v *Validator) ValidateBytes(data []byte) *Issues {
	doc, err := croissant.Decode(data)
	if err != nil {
		cause := err
		if unwrapped := errors.Unwrap(err); unwrapped != nil {
			cause = unwrapped
		}
		issues := NewIssues()
		issues.AddError(nil, fmt.Sprintf("The current file doesn't contain valid JSON-LD: %v.", cause))
		return issues
	}
	return v.Validate(doc)
}

// ValidateFile reads the file at path and validates its content. Only a
// failure to read the file is an error; everything after that is a finding.
func (v *Validator) ValidateFile(path string) (*Issues, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return v.ValidateBytes(data), nil
}
