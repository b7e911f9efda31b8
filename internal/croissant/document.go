// Package croissant implements the MLCommons Croissant dataset-metadata model:
// building JSON-LD documents from tabular sources, inferring field data types,
// and encoding/decoding the wire format. Validation of built or parsed
// documents lives in internal/validation.
package croissant

// JSON-LD node types used by the Croissant vocabulary.
const (
	TypeDataset    = "sc:Dataset"
	TypeFileObject = "cr:FileObject"
	TypeFileSet    = "cr:FileSet"
	TypeRecordSet  = "cr:RecordSet"
	TypeField      = "cr:Field"
)

// Conformance URIs accepted for the dct:conformsTo declaration.
const (
	ConformsTo10 = "http://mlcommons.org/croissant/1.0"
	ConformsTo11 = "http://mlcommons.org/croissant/1.1"
)

// DefaultLanguage is the @language emitted when no override is configured.
const DefaultLanguage = "en"

// Document is the root of a Croissant metadata document. Struct order is the
// wire order: the JSON-LD output is stable because encoding preserves field
// declaration order.
type Document struct {
	Context       Context        `json:"@context"`
	Type          string         `json:"@type"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	ConformsTo    string         `json:"conformsTo"`
	DatePublished string         `json:"datePublished"`
	Version       string         `json:"version"`
	License       string         `json:"license,omitempty"`
	URL           string         `json:"url,omitempty"`
	CiteAs        string         `json:"citeAs,omitempty"`
	DataType      string         `json:"dataType,omitempty"`
	Distribution  []Distribution `json:"distribution"`
	RecordSet     []RecordSet    `json:"recordSet"`
}

// Context is the JSON-LD @context block. The term set is fixed by the
// vocabulary; only @language varies.
type Context struct {
	Language     string      `json:"@language"`
	Vocab        string      `json:"@vocab"`
	CiteAs       string      `json:"citeAs"`
	Column       string      `json:"column"`
	ConformsTo   string      `json:"conformsTo"`
	CR           string      `json:"cr"`
	DCT          string      `json:"dct"`
	Data         ContextTerm `json:"data"`
	DataType     ContextTerm `json:"dataType"`
	Extract      string      `json:"extract"`
	Field        string      `json:"field"`
	FileObject   string      `json:"fileObject"`
	FileProperty string      `json:"fileProperty"`
	SC           string      `json:"sc"`
	Source       string      `json:"source"`
}

// ContextTerm is an expanded term definition within the @context.
type ContextTerm struct {
	ID   string `json:"@id"`
	Type string `json:"@type"`
}

// Distribution describes one physical file backing the dataset.
type Distribution struct {
	ID             string `json:"@id"`
	Type           string `json:"@type"`
	Name           string `json:"name"`
	ContentSize    string `json:"contentSize"`
	ContentURL     string `json:"contentUrl"`
	EncodingFormat string `json:"encodingFormat"`
	SHA256         string `json:"sha256"`
}

// RecordSet describes the row/column structure of one distribution.
// DataType, when set, is the default type inherited by fields that do not
// declare their own.
type RecordSet struct {
	ID          string  `json:"@id"`
	Type        string  `json:"@type"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	DataType    string  `json:"dataType,omitempty"`
	Field       []Field `json:"field"`
}

// Field describes one column of a record set.
type Field struct {
	ID          string      `json:"@id"`
	Type        string      `json:"@type"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	DataType    string      `json:"dataType"`
	Source      FieldSource `json:"source"`
}

// FieldSource says which column of which file object a field is extracted from.
type FieldSource struct {
	Extract    Extract       `json:"extract"`
	FileObject FileObjectRef `json:"fileObject"`
}

// Extract names the source column.
type Extract struct {
	Column string `json:"column"`
}

// FileObjectRef points at a Distribution by its @id.
type FileObjectRef struct {
	ID string `json:"@id"`
}

// DefaultContext returns the fixed @context block for the given language.
// An empty language falls back to DefaultLanguage.
func DefaultContext(language string) Context {
	if language == "" {
		language = DefaultLanguage
	}
	return Context{
		Language:     language,
		Vocab:        "https://schema.org/",
		CiteAs:       "cr:citeAs",
		Column:       "cr:column",
		ConformsTo:   "dct:conformsTo",
		CR:           "http://mlcommons.org/croissant/",
		DCT:          "http://purl.org/dc/terms/",
		Data:         ContextTerm{ID: "cr:data", Type: "@json"},
		DataType:     ContextTerm{ID: "cr:dataType", Type: "@vocab"},
		Extract:      "cr:extract",
		Field:        "cr:field",
		FileObject:   "cr:fileObject",
		FileProperty: "cr:fileProperty",
		SC:           "https://schema.org/",
		Source:       "cr:source",
	}
}

// ConformsToCroissant reports whether uri declares a supported Croissant
// vocabulary version.
func ConformsToCroissant(uri string) bool {
	return uri == ConformsTo10 || uri == ConformsTo11
}

// ResolveFieldType resolves a field's data type through its ancestry:
// the field itself, then the enclosing record set's default, then the
// dataset-level default. Returns "" when nothing in the chain declares one.
func ResolveFieldType(doc *Document, rs *RecordSet, f *Field) string {
	if f.DataType != "" {
		return f.DataType
	}
	if rs != nil && rs.DataType != "" {
		return rs.DataType
	}
	if doc != nil && doc.DataType != "" {
		return doc.DataType
	}
	return ""
}
