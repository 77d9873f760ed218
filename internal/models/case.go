// Package models defines data structures for the crawler and normalizer.
package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDocument is returned when a raw case document cannot be decoded.
var ErrInvalidDocument = errors.New("invalid case document")

// CaseReference identifies one case on the lookup service.
type CaseReference struct {
	Term   string `json:"term"`
	Docket string `json:"docket"`
}

// String returns the term/docket pair as it appears in case URLs.
func (r CaseReference) String() string {
	return r.Term + "/" + r.Docket
}

// CaseDocument is the raw case document served by the Oyez API.
// Pointer fields are nil when the key is absent or null.
type CaseDocument struct {
	Name           *string           `json:"name"`
	Href           *string           `json:"href"`
	JustiaURL      *string           `json:"justia_url"`
	FactsOfTheCase *string           `json:"facts_of_the_case"`
	Question       *string           `json:"question"`
	Conclusion     *string           `json:"conclusion"`
	FirstParty     *string           `json:"first_party"`
	SecondParty    *string           `json:"second_party"`
	DocketNumber   *string           `json:"docket_number"`
	DecidedBy      *NamedEntity      `json:"decided_by"`
	LowerCourt     *NamedEntity      `json:"lower_court"`
	Citation       *Citation         `json:"citation"`
	Timeline       []*TimelineEvent  `json:"timeline"`
	WrittenOpinion []*WrittenOpinion `json:"written_opinion"`
	Advocates      []*AdvocateEntry  `json:"advocates"`
}

// NamedEntity is any sub-record that carries a display name (court, bench).
type NamedEntity struct {
	Name *string `json:"name"`
}

// Citation holds the U.S. Reports citation of a case.
type Citation struct {
	Volume *Scalar `json:"volume"`
	Page   *Scalar `json:"page"`
	Year   *Scalar `json:"year"`
}

// TimelineEvent is one entry of the case timeline. Dates are Unix seconds; a
// null date decodes to nil.
type TimelineEvent struct {
	Event *string  `json:"event"`
	Dates []*int64 `json:"dates"`
}

// WrittenOpinion is one entry of the written opinion list.
type WrittenOpinion struct {
	Type             *OpinionType `json:"type"`
	JudgeFullName    *string      `json:"judge_full_name"`
	JustiaOpinionURL *string      `json:"justia_opinion_url"`
	JustiaOpinionID  *Scalar      `json:"justia_opinion_id"`
}

// OpinionType classifies a written opinion.
type OpinionType struct {
	Value *string `json:"value"`
	Label *string `json:"label"`
}

// TypeValue returns the opinion type value, or "" when unknown.
func (o *WrittenOpinion) TypeValue() string {
	if o == nil || o.Type == nil || o.Type.Value == nil {
		return ""
	}

	return *o.Type.Value
}

// AdvocateEntry pairs an advocate with the role they argued in.
type AdvocateEntry struct {
	Advocate            *Advocate `json:"advocate"`
	AdvocateDescription *string   `json:"advocate_description"`
}

// Advocate is the advocate sub-record of an AdvocateEntry.
type Advocate struct {
	Name       *string `json:"name"`
	Identifier *string `json:"identifier"`
}

// Scalar is a JSON value served either as a string or as a number.
// It keeps the literal text so numbers are never reformatted.
type Scalar string

// UnmarshalJSON accepts strings and numbers.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}

		*s = Scalar(str)

		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("scalar must be a string or number: %w", err)
	}

	*s = Scalar(num.String())

	return nil
}

// Text returns the scalar text and whether it carries a value.
// Nil, empty and all-whitespace scalars carry none.
func (s *Scalar) Text() (string, bool) {
	if s == nil {
		return "", false
	}

	text := strings.TrimSpace(string(*s))

	return text, text != ""
}

// DecodeCaseDocument decodes a raw Oyez case document.
func DecodeCaseDocument(data []byte) (*CaseDocument, error) {
	var doc CaseDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	return &doc, nil
}
