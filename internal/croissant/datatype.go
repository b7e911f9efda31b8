package croissant

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DataType is a semantic column type from the closed inference vocabulary,
// rendered in the schema.org-prefixed wire form.
type DataType string

const (
	Boolean DataType = "sc:Boolean"
	Integer DataType = "sc:Integer"
	Float   DataType = "sc:Float"
	Date    DataType = "sc:Date"
	URL     DataType = "sc:URL"
	Text    DataType = "sc:Text"
)

// knownDataTypes is the set the validator accepts without warning. It is a
// superset of the inference vocabulary: DateTime, Time, and Number are valid
// declarations even though inference never produces them.
var knownDataTypes = map[string]bool{
	"sc:Text":     true,
	"sc:Integer":  true,
	"sc:Float":    true,
	"sc:Boolean":  true,
	"sc:Date":     true,
	"sc:DateTime": true,
	"sc:Time":     true,
	"sc:URL":      true,
	"sc:Number":   true,
}

// IsKnownDataType reports whether dataType is a recognized schema.org type.
func IsKnownDataType(dataType string) bool {
	return knownDataTypes[dataType]
}

// candidate pairs a data type with the predicate every non-blank value in a
// column must satisfy for the column to classify as that type.
type candidate struct {
	dataType DataType
	matches  func(string) bool
}

// candidates is evaluated in order, most restrictive first, first full match
// wins. Position is load-bearing: Integer precedes Float so an all-integer
// column never classifies as Float. A new type must be inserted at the
// position its specificity demands, never appended.
var candidates = []candidate{
	{Boolean, isBoolean},
	{Integer, isInteger},
	{Float, isFloat},
	{Date, isDate},
	{URL, isURL},
}

// InferColumnType returns the single data type for a column given all of its
// raw cell values. Values are trimmed before testing; blank cells are skipped
// and never force a type on their own. A column with no non-blank values, or
// one no restrictive candidate covers completely, is Text.
//
// Only canonical lexical forms are recognized. Thousands separators and
// locale decimal marks are out of scope on purpose: admitting them would
// silently change the inferred type of existing inputs.
func InferColumnType(values []string) DataType {
	trimmed := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			trimmed = append(trimmed, v)
		}
	}
	if len(trimmed) == 0 {
		return Text
	}

	for _, c := range candidates {
		if allMatch(trimmed, c.matches) {
			return c.dataType
		}
	}
	return Text
}

func allMatch(values []string, matches func(string) bool) bool {
	for _, v := range values {
		if !matches(v) {
			return false
		}
	}
	return true
}

func isBoolean(v string) bool {
	return strings.EqualFold(v, "true") || strings.EqualFold(v, "false")
}

func isInteger(v string) bool {
	_, err := strconv.ParseInt(v, 10, 64)
	return err == nil
}

// isFloat accepts canonical decimal forms, including the Inf and NaN words.
// ParseFloat alone would also admit Go literal syntax, underscore grouping
// and hexadecimal mantissas, which is not a canonical lexical form.
func isFloat(v string) bool {
	if strings.ContainsAny(v, "_xX") {
		return false
	}
	_, err := strconv.ParseFloat(v, 64)
	return err == nil
}

// isDate accepts plain YYYY-MM-DD dates and full RFC 3339 timestamps.
func isDate(v string) bool {
	if _, err := time.Parse("2006-01-02", v); err == nil {
		return true
	}
	_, err := time.Parse(time.RFC3339, v)
	return err == nil
}

// isURL accepts absolute http/https URLs with a host.
func isURL(v string) bool {
	u, err := url.Parse(v)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
