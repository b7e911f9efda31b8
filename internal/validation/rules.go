package validation

import (
	"fmt"

	"github.com/croissant-tools/croissant/internal/croissant"
)

// Rule is one independent structural check. Rules never mutate the document
// and never abort the pass; every finding goes to the collector and the next
// rule still runs.
type Rule interface {
	Name() string
	Check(doc *croissant.Document, issues *Issues)
}

// DefaultRules returns the standard ruleset in evaluation order. The order is
// part of the contract: reports are reproducible because findings accumulate
// in rule order, then document order within a rule. New rules are inserted
// where their scope belongs, not appended blindly.
func DefaultRules() []Rule {
	return []Rule{
		datasetPropertiesRule{},
		distributionIntegrityRule{},
		recordSetStructureRule{},
		fieldStructureRule{},
		referenceResolutionRule{},
		identifierUniquenessRule{},
	}
}

// nodeRef picks the reference used for a node in issue paths: the @id when
// present, otherwise the name.
func nodeRef(id, name string) string {
	if id != "" {
		return id
	}
	return name
}

func datasetPath(doc *croissant.Document) Path {
	return Path{}.Child(NodeDataset, doc.Name)
}

// datasetPropertiesRule checks the root node: mandatory name and description,
// the sc:Dataset type declaration, and the recommended conformsTo property.
type datasetPropertiesRule struct{}

func (datasetPropertiesRule) Name() string { return "dataset-properties" }

func (datasetPropertiesRule) Check(doc *croissant.Document, issues *Issues) {
	path := datasetPath(doc)

	if doc.Name == "" {
		issues.AddError(path, `Property "https://schema.org/name" is mandatory, but does not exist.`)
	}
	if doc.Description == "" {
		issues.AddError(path, `Property "https://schema.org/description" is mandatory, but does not exist.`)
	}
	if doc.Type != croissant.TypeDataset {
		issues.AddError(path, "The current JSON-LD doesn't extend https://schema.org/Dataset.")
	}
	if doc.ConformsTo == "" {
		issues.AddWarning(path, `Property "http://purl.org/dc/terms/conformsTo" is recommended, but does not exist.`)
	} else if !croissant.ConformsToCroissant(doc.ConformsTo) {
		issues.AddWarningValue(path, fmt.Sprintf(
			`Property "http://purl.org/dc/terms/conformsTo" should declare %s. Got %s instead.`,
			croissant.ConformsTo10, doc.ConformsTo), doc.ConformsTo)
	}
	if len(doc.RecordSet) == 0 {
		issues.AddWarning(path, "The dataset does not declare any record set.")
	}
}

// distributionIntegrityRule checks every distribution: mandatory name,
// contentUrl, and encodingFormat, the FileObject/FileSet type, and the
// sha256 digest format.
type distributionIntegrityRule struct{}

func (distributionIntegrityRule) Name() string { return "distribution-integrity" }

func (distributionIntegrityRule) Check(doc *croissant.Document, issues *Issues) {
	base := datasetPath(doc)
	for i := range doc.Distribution {
		dist := &doc.Distribution[i]
		path := base.Child(NodeFileObject, nodeRef(dist.ID, dist.Name))

		if dist.Name == "" {
			issues.AddError(path, `Property "https://schema.org/name" is mandatory, but does not exist.`)
		}
		if dist.Type != croissant.TypeFileObject && dist.Type != croissant.TypeFileSet {
			issues.AddErrorValue(path, fmt.Sprintf(
				`"%s" should have an attribute "@type": "http://mlcommons.org/croissant/FileObject" or "@type": "http://mlcommons.org/croissant/FileSet". Got %s instead.`,
				dist.Name, dist.Type), dist.Type)
		}
		if dist.ContentURL == "" {
			issues.AddError(path, `Property "https://schema.org/contentUrl" is mandatory, but does not exist.`)
		}
		if dist.EncodingFormat == "" {
			issues.AddError(path, `Property "https://schema.org/encodingFormat" is mandatory, but does not exist.`)
		}
		if dist.SHA256 == "" {
			issues.AddWarning(path, `Property "https://schema.org/sha256" is recommended for file integrity verification.`)
		} else if !isHexDigest(dist.SHA256) {
			issues.AddErrorValue(path, "Invalid SHA256 hash format. Expected 64 hexadecimal characters.", dist.SHA256)
		}
	}
}

// isHexDigest reports whether s is a 64-character hex string.
func isHexDigest(s string) bool {
	if len(s) != 64 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// recordSetStructureRule checks every record set: mandatory name and the
// cr:RecordSet type.
type recordSetStructureRule struct{}

func (recordSetStructureRule) Name() string { return "recordset-structure" }

func (recordSetStructureRule) Check(doc *croissant.Document, issues *Issues) {
	base := datasetPath(doc)
	for i := range doc.RecordSet {
		rs := &doc.RecordSet[i]
		path := base.Child(NodeRecordSet, nodeRef(rs.ID, rs.Name))

		if rs.Name == "" {
			issues.AddError(path, `Property "https://schema.org/name" is mandatory, but does not exist.`)
		}
		if rs.Type != croissant.TypeRecordSet {
			issues.AddErrorValue(path, fmt.Sprintf(
				`"%s" should have an attribute "@type": "http://mlcommons.org/croissant/RecordSet". Got %s instead.`,
				rs.Name, rs.Type), rs.Type)
		}
	}
}

// fieldStructureRule checks every field: mandatory name, the cr:Field type,
// a data type resolvable through the field's ancestry, and a complete source
// reference.
type fieldStructureRule struct{}

func (fieldStructureRule) Name() string { return "field-structure" }

func (fieldStructureRule) Check(doc *croissant.Document, issues *Issues) {
	base := datasetPath(doc)
	for i := range doc.RecordSet {
		rs := &doc.RecordSet[i]
		rsPath := base.Child(NodeRecordSet, nodeRef(rs.ID, rs.Name))

		for j := range rs.Field {
			field := &rs.Field[j]
			path := rsPath.Child(NodeField, nodeRef(field.ID, field.Name))

			if field.Name == "" {
				issues.AddError(path, `Property "https://schema.org/name" is mandatory, but does not exist.`)
			}
			if field.Type != croissant.TypeField {
				issues.AddErrorValue(path, fmt.Sprintf(
					`"%s" should have an attribute "@type": "http://mlcommons.org/croissant/Field". Got %s instead.`,
					field.Name, field.Type), field.Type)
			}

			resolved := croissant.ResolveFieldType(doc, rs, field)
			if resolved == "" {
				issues.AddError(path, "The field does not specify a valid http://mlcommons.org/croissant/dataType, neither does any of its predecessor.")
			} else if !croissant.IsKnownDataType(resolved) {
				issues.AddWarningValue(path, fmt.Sprintf(
					"Unknown data type: %s. Consider using a standard schema.org type.", resolved), resolved)
			}

			if field.Source.Extract.Column == "" || field.Source.FileObject.ID == "" {
				issues.AddError(path, fmt.Sprintf(
					`Node "%s" is a field and has no source. Please, use http://mlcommons.org/croissant/source to specify the source.`,
					field.ID))
			}
		}
	}
}

// referenceResolutionRule checks that every field source points at a
// distribution that actually exists in the document.
type referenceResolutionRule struct{}

func (referenceResolutionRule) Name() string { return "reference-resolution" }

func (referenceResolutionRule) Check(doc *croissant.Document, issues *Issues) {
	distributionIDs := make(map[string]bool, len(doc.Distribution))
	for _, dist := range doc.Distribution {
		distributionIDs[dist.ID] = true
	}

	base := datasetPath(doc)
	for i := range doc.RecordSet {
		rs := &doc.RecordSet[i]
		rsPath := base.Child(NodeRecordSet, nodeRef(rs.ID, rs.Name))

		for j := range rs.Field {
			field := &rs.Field[j]
			ref := field.Source.FileObject.ID
			if ref == "" || distributionIDs[ref] {
				continue
			}
			path := rsPath.Child(NodeField, nodeRef(field.ID, field.Name))
			issues.AddErrorValue(path, fmt.Sprintf(
				"Field references non-existent file object: %s", ref), ref)
		}
	}
}

// identifierUniquenessRule checks that record set identifiers are unique
// within the dataset and field identifiers are unique within their record
// set. Colliding column headers produced at build time surface here.
type identifierUniquenessRule struct{}

func (identifierUniquenessRule) Name() string { return "identifier-uniqueness" }

func (identifierUniquenessRule) Check(doc *croissant.Document, issues *Issues) {
	base := datasetPath(doc)

	seenRecordSets := make(map[string]bool)
	for i := range doc.RecordSet {
		rs := &doc.RecordSet[i]
		if rs.ID == "" {
			continue
		}
		if seenRecordSets[rs.ID] {
			path := base.Child(NodeRecordSet, rs.ID)
			issues.AddErrorValue(path, fmt.Sprintf(
				`Duplicate identifier "%s". RecordSet identifiers must be unique within the dataset.`,
				rs.ID), rs.ID)
		}
		seenRecordSets[rs.ID] = true
	}

	for i := range doc.RecordSet {
		rs := &doc.RecordSet[i]
		rsPath := base.Child(NodeRecordSet, nodeRef(rs.ID, rs.Name))

		seenFields := make(map[string]bool)
		for j := range rs.Field {
			field := &rs.Field[j]
			if field.ID == "" {
				continue
			}
			if seenFields[field.ID] {
				path := rsPath.Child(NodeField, field.ID)
				issues.AddErrorValue(path, fmt.Sprintf(
					`Duplicate identifier "%s". Field identifiers must be unique within their record set.`,
					field.ID), field.ID)
			}
			seenFields[field.ID] = true
		}
	}
}
