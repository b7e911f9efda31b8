package validation

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/croissant-tools/croissant/internal/croissant"
)

func TestValidateCleanGeneratedDocument(t *testing.T) {
	// A document built from a well-formed source must self-validate clean.
	issues := New().Validate(validDoc())
	assert.True(t, issues.IsEmpty())
	assert.True(t, issues.Passed())
	assert.Equal(t, "", issues.Report())
}

func TestValidateReportsEveryDefectInOnePass(t *testing.T) {
	// Five independent defects across five different rules: the pass must
	// report all of them, in rule order, never stopping at the first.
	doc := validDoc()
	doc.Description = ""
	doc.Distribution[0].ContentURL = ""
	doc.RecordSet[0].Type = "cr:Field"
	doc.RecordSet[0].Field[0].DataType = ""
	doc.RecordSet[0].Field[1].Source.FileObject.ID = "missing-file"

	issues := New().Validate(doc)
	require.Equal(t, 5, issues.ErrorCount())
	assert.False(t, issues.Passed())

	messages := make([]string, 0)
	for _, issue := range issues.All() {
		messages = append(messages, issue.Message)
	}
	assert.Equal(t, []string{
		`Property "https://schema.org/description" is mandatory, but does not exist.`,
		`Property "https://schema.org/contentUrl" is mandatory, but does not exist.`,
		`"sales" should have an attribute "@type": "http://mlcommons.org/croissant/RecordSet". Got cr:Field instead.`,
		"The field does not specify a valid http://mlcommons.org/croissant/dataType, neither does any of its predecessor.",
		"Field references non-existent file object: missing-file",
	}, messages)
}

func TestValidatorIsReusable(t *testing.T) {
	v := New()

	broken := validDoc()
	broken.Name = ""
	assert.False(t, v.Validate(broken).Passed())

	// A later run must start from a clean collection.
	issues := v.Validate(validDoc())
	assert.True(t, issues.IsEmpty())
}

func TestValidateBytes(t *testing.T) {
	t.Run("unparseable content is a single top-level error", func(t *testing.T) {
		issues := New().ValidateBytes([]byte("{ nope"))
		assert.False(t, issues.Passed())
		require.Equal(t, 1, issues.ErrorCount())
		issue := issues.All()[0]
		assert.Contains(t, issue.Message, "The current file doesn't contain valid JSON-LD")
		assert.Empty(t, issue.Path)
	})

	t.Run("non-object root is a single top-level error", func(t *testing.T) {
		issues := New().ValidateBytes([]byte(`["not", "a", "document"]`))
		assert.False(t, issues.Passed())
		assert.Equal(t, 1, issues.ErrorCount())
	})

	t.Run("parseable content goes through the rules", func(t *testing.T) {
		issues := New().ValidateBytes([]byte(`{}`))
		assert.False(t, issues.Passed())
		// Missing name, description, and type declaration at minimum.
		assert.GreaterOrEqual(t, issues.ErrorCount(), 3)
	})
}

func TestValidateFile(t *testing.T) {
	t.Run("valid document passes with no issues", func(t *testing.T) {
		issues, err := New().ValidateFile(filepath.Join("testdata", "valid.jsonld"))
		require.NoError(t, err)
		assert.True(t, issues.IsEmpty())
		assert.True(t, issues.Passed())
	})

	t.Run("missing conformsTo is exactly one warning", func(t *testing.T) {
		issues, err := New().ValidateFile(filepath.Join("testdata", "missing_conformsto.jsonld"))
		require.NoError(t, err)
		assert.True(t, issues.Passed())
		assert.Equal(t, 0, issues.ErrorCount())
		require.Equal(t, 1, issues.WarningCount())
		assert.Equal(t,
			`Property "http://purl.org/dc/terms/conformsTo" is recommended, but does not exist.`,
			issues.All()[0].Message)
	})

	t.Run("missing contentUrl and dataset extension are both reported", func(t *testing.T) {
		issues, err := New().ValidateFile(filepath.Join("testdata", "missing_contenturl.jsonld"))
		require.NoError(t, err)
		assert.False(t, issues.Passed())
		require.Equal(t, 2, issues.ErrorCount())

		expected := "Found the following 2 error(s) during the validation:\n" +
			"  -  [Dataset(my-dataset)] The current JSON-LD doesn't extend https://schema.org/Dataset.\n" +
			`  -  [Dataset(my-dataset) > FileObject(data-csv)] Property "https://schema.org/contentUrl" is mandatory, but does not exist.`
		assert.Equal(t, expected, issues.Report())
	})

	t.Run("unparseable file fails validation but not the operation", func(t *testing.T) {
		issues, err := New().ValidateFile(filepath.Join("testdata", "broken.jsonld"))
		require.NoError(t, err)
		assert.False(t, issues.Passed())
		assert.Equal(t, 1, issues.ErrorCount())
	})

	t.Run("unreadable file is an operation error", func(t *testing.T) {
		_, err := New().ValidateFile(filepath.Join(t.TempDir(), "absent.jsonld"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "absent.jsonld")
	})
}

func TestValidateRoundTripFromBytes(t *testing.T) {
	// Encode a built document and validate the bytes: still clean.
	data, err := croissant.Encode(validDoc())
	require.NoError(t, err)

	issues := New().ValidateBytes(data)
	assert.True(t, issues.IsEmpty())
}

func TestNewWithRules(t *testing.T) {
	v := NewWithRules([]Rule{datasetPropertiesRule{}})

	doc := validDoc()
	doc.Distribution[0].ContentURL = ""

	// Only the dataset rule runs, so the distribution defect is not seen.
	assert.True(t, v.Validate(doc).IsEmpty())
}
