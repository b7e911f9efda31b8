package croissant

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// EncodingCSV is the encoding format recorded for CSV-backed distributions.
const EncodingCSV = "text/csv"

// DefaultDatasetVersion is used when no version is configured or supplied.
const DefaultDatasetVersion = "1.0.0"

// Source describes one ingested tabular file: everything the builder needs,
// already resolved. Types align 1:1 with Headers; a missing entry falls back
// to Text.
type Source struct {
	FileName string // base name of the file, e.g. "sales.csv"
	Headers  []string
	Types    []DataType
	Size     int64
	SHA256   string
}

// BuildOptions carries operator-supplied dataset properties. Zero values fall
// back to deterministic defaults derived from the source; DatePublished has
// no fallback because the builder never reads the clock itself.
type BuildOptions struct {
	Name          string
	Description   string
	Version       string
	Language      string
	DatePublished string
	License       string
	URL           string
	CiteAs        string
}

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases s and collapses each run of non-alphanumeric characters
// to a single hyphen, trimming hyphens at both ends. Identifier derivation
// must be deterministic so regeneration from the same input yields the same
// identifiers.
func Slugify(s string) string {
	cleaned := nonAlphanumeric.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(cleaned, "-")
}

// slugOr returns the slug of s, or fallback when s slugs to nothing.
func slugOr(s, fallback string) string {
	if slug := Slugify(s); slug != "" {
		return slug
	}
	return fallback
}

// BuildDocument constructs a complete Croissant document from one tabular
// source: exactly one distribution for the file and one record set whose
// fields map 1:1 to the columns in header order. The result is fully
// determined by its inputs, so building twice from identical input yields an
// identical document.
//
// Colliding headers that slug to the same field identifier are not rejected
// here; the duplicate surfaces as an identifier-uniqueness finding when the
// document is validated.
func BuildDocument(src Source, opts BuildOptions) *Document {
	stem := strings.TrimSuffix(src.FileName, filepath.Ext(src.FileName))
	recordSetID := slugOr(stem, "records")
	distributionID := slugOr(src.FileName, "file")

	fields := make([]Field, 0, len(src.Headers))
	for i, header := range src.Headers {
		dataType := Text
		if i < len(src.Types) {
			dataType = src.Types[i]
		}
		fieldID := fmt.Sprintf("%s/%s", recordSetID, slugOr(header, fmt.Sprintf("field-%d", i+1)))
		fields = append(fields, Field{
			ID:          fieldID,
			Type:        TypeField,
			Name:        header,
			Description: fmt.Sprintf("Field for %s", header),
			DataType:    string(dataType),
			Source: FieldSource{
				Extract:    Extract{Column: header},
				FileObject: FileObjectRef{ID: distributionID},
			},
		})
	}

	name := opts.Name
	if name == "" {
		name = fmt.Sprintf("%s-dataset", recordSetID)
	}
	description := opts.Description
	if description == "" {
		description = fmt.Sprintf("Dataset created from %s", src.FileName)
	}
	version := opts.Version
	if version == "" {
		version = DefaultDatasetVersion
	}

	return &Document{
		Context:       DefaultContext(opts.Language),
		Type:          TypeDataset,
		Name:          name,
		Description:   description,
		ConformsTo:    ConformsTo10,
		DatePublished: opts.DatePublished,
		Version:       version,
		License:       opts.License,
		URL:           opts.URL,
		CiteAs:        opts.CiteAs,
		Distribution: []Distribution{{
			ID:             distributionID,
			Type:           TypeFileObject,
			Name:           src.FileName,
			ContentSize:    formatFileSize(src.Size),
			ContentURL:     src.FileName,
			EncodingFormat: EncodingCSV,
			SHA256:         src.SHA256,
		}},
		RecordSet: []RecordSet{{
			ID:          recordSetID,
			Type:        TypeRecordSet,
			Name:        recordSetID,
			Description: fmt.Sprintf("Records from %s", src.FileName),
			Field:       fields,
		}},
	}
}

// formatFileSize renders a byte count with binary scaling: exact bytes below
// 1 KB, one decimal place above.
func formatFileSize(size int64) string {
	units := []string{"B", "KB", "MB", "GB", "TB"}
	value := float64(size)
	unit := 0
	for value >= 1024 && unit < len(units)-1 {
		value /= 1024
		unit++
	}
	if unit == 0 {
		return fmt.Sprintf("%d %s", size, units[0])
	}
	return fmt.Sprintf("%.1f %s", value, units[unit])
}
