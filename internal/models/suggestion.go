package models

import (
	"time"
)

// EntityLabel classifies an extracted named entity
type EntityLabel string

const (
	LabelPerson EntityLabel = "PERSON"
	LabelOrg    EntityLabel = "ORG"
)

// Suggestion is a single named entity extracted from newsletter text
type Suggestion struct {
	Label EntityLabel `json:"label"`
	Text  string      `json:"text"`
}

// ExtractionResult holds the outcome of one newsletter extraction run.
// People and Firms are deduplicated and sorted; the raw text is kept for preview.
// A workspace holds at most one result, replaced wholesale on each upload.
type ExtractionResult struct {
	FileName  string    `json:"file_name"`
	Text      string    `json:"text"`
	People    []string  `json:"people"`
	Firms     []string  `json:"firms"`
	CreatedAt time.Time `json:"created_at"`
}

// SinglePerson returns the only PERSON suggestion if exactly one exists.
// Used to pre-fill the entry form.
func (r *ExtractionResult) SinglePerson() string {
	if r != nil && len(r.People) == 1 {
		return r.People[0]
	}
	return ""
}

// SingleFirm returns the only ORG suggestion if exactly one exists
func (r *ExtractionResult) SingleFirm() string {
	if r != nil && len(r.Firms) == 1 {
		return r.Firms[0]
	}
	return ""
}
