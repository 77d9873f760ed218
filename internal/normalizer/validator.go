package normalizer

import (
	"errors"
	"fmt"

	"casecrawler/internal/models"
)

// Validation errors.
var (
	ErrNilDocument          = errors.New("case document is nil")
	ErrMissingRequiredField = errors.New("missing required field")
)

// Validator checks that every field outside the optional allow-list is present.
type Validator struct{}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate returns the first required field the document lacks.
func (v *Validator) Validate(doc *models.CaseDocument) error {
	if doc == nil {
		return ErrNilDocument
	}

	required := []struct {
		path  string
		value *string
	}{
		{"name", doc.Name},
		{"justia_url", doc.JustiaURL},
		{"href", doc.Href},
		{"facts_of_the_case", doc.FactsOfTheCase},
		{"question", doc.Question},
		{"conclusion", doc.Conclusion},
		{"first_party", doc.FirstParty},
		{"second_party", doc.SecondParty},
		{"docket_number", doc.DocketNumber},
	}

	for _, field := range required {
		if field.value == nil {
			return missing(field.path)
		}
	}

	if doc.DecidedBy != nil && doc.DecidedBy.Name == nil {
		return missing("decided_by.name")
	}

	if doc.LowerCourt != nil && doc.LowerCourt.Name == nil {
		return missing("lower_court.name")
	}

	if doc.Citation == nil {
		return missing("citation")
	}

	if doc.Timeline == nil {
		return missing("timeline")
	}

	for i, event := range doc.Timeline {
		if event == nil {
			return missing(fmt.Sprintf("timeline[%d]", i))
		}

		if event.Event == nil {
			return missing(fmt.Sprintf("timeline[%d].event", i))
		}
	}

	if err := validateOpinions(doc.WrittenOpinion); err != nil {
		return err
	}

	for i, entry := range doc.Advocates {
		if entry == nil || entry.Advocate == nil {
			continue
		}

		if entry.Advocate.Name == nil {
			return missing(fmt.Sprintf("advocates[%d].advocate.name", i))
		}

		if entry.Advocate.Identifier == nil {
			return missing(fmt.Sprintf("advocates[%d].advocate.identifier", i))
		}

		if entry.AdvocateDescription == nil {
			return missing(fmt.Sprintf("advocates[%d].advocate_description", i))
		}
	}

	return nil
}

// validateOpinions requires a type on every entry and a complete record on
// every entry reported as a separate opinion. Syllabus and majority fields may be missing.
func validateOpinions(opinions []*models.WrittenOpinion) error {
	for i, opinion := range opinions {
		if opinion == nil {
			return missing(fmt.Sprintf("written_opinion[%d]", i))
		}

		if opinion.Type == nil || opinion.Type.Value == nil {
			return missing(fmt.Sprintf("written_opinion[%d].type.value", i))
		}

		switch *opinion.Type.Value {
		case OpinionCase, OpinionSyllabus, OpinionMajority:
			continue
		}

		if opinion.JudgeFullName == nil {
			return missing(fmt.Sprintf("written_opinion[%d].judge_full_name", i))
		}

		if opinion.Type.Label == nil {
			return missing(fmt.Sprintf("written_opinion[%d].type.label", i))
		}

		if opinion.JustiaOpinionURL == nil {
			return missing(fmt.Sprintf("written_opinion[%d].justia_opinion_url", i))
		}

		if _, ok := opinion.JustiaOpinionID.Text(); !ok {
			return missing(fmt.Sprintf("written_opinion[%d].justia_opinion_id", i))
		}
	}

	return nil
}

func missing(path string) error {
	return fmt.Errorf("%w: %s", ErrMissingRequiredField, path)
}
