package models

// NoValue is the text written in place of a missing optional value.
const NoValue = "NO_VALUE"

// Report labels.
const (
	LabelTitle               = "TITLE"
	LabelJustia              = "JUSTIA"
	LabelSyllabusValue       = "SYLLABUS VALUE"
	LabelSyllabusLink        = "SYLLABUS LINK"
	LabelOyezURL             = "OYEZ URL"
	LabelDeliveredBy         = "DELIVERED BY"
	LabelOpinionOfTheCourt   = "OPINION OF THE COURT"
	LabelJustice             = "JUSTICE"
	LabelTypeOfOpinion       = "TYPE OF OPINION"
	LabelLink                = "LINK"
	LabelContent             = "CONTENT"
	LabelQuestion            = "QUESTION"
	LabelConclusion          = "CONCLUSION"
	LabelPetitioner          = "PETITIONER"
	LabelRespondent          = "RESPONDENT"
	LabelDocketNumber        = "DOCKET NUMBER"
	LabelDecidedBy           = "DECIDED BY"
	LabelLowerCourt          = "LOWER COURT"
	LabelCitationText        = "CITATION TEXT"
	LabelCitationURL         = "CITATION URL"
	LabelGranted             = "GRANTED"
	LabelArgued              = "ARGUED"
	LabelDecided             = "DECIDED"
	LabelAdvocateName        = "ADVOCATE NAME"
	LabelAdvocateLink        = "ADVOCATE LINK"
	LabelAdvocateDescription = "ADVOCATE DESCRIPTION"
)

var knownLabels = map[string]bool{
	LabelTitle: true, LabelJustia: true, LabelSyllabusValue: true, LabelSyllabusLink: true,
	LabelOyezURL: true, LabelDeliveredBy: true, LabelOpinionOfTheCourt: true, LabelJustice: true,
	LabelTypeOfOpinion: true, LabelLink: true, LabelContent: true, LabelQuestion: true,
	LabelConclusion: true, LabelPetitioner: true, LabelRespondent: true, LabelDocketNumber: true,
	LabelDecidedBy: true, LabelLowerCourt: true, LabelCitationText: true, LabelCitationURL: true,
	LabelGranted: true, LabelArgued: true, LabelDecided: true, LabelAdvocateName: true,
	LabelAdvocateLink: true, LabelAdvocateDescription: true,
}

// IsLabel reports whether s is one of the report labels.
func IsLabel(s string) bool {
	return knownLabels[s]
}

// Value is an optional report value.
type Value struct {
	text    string
	present bool
}

// Present wraps a value that exists in the source document.
func Present(text string) Value {
	return Value{text: text, present: true}
}

// Missing marks a value absent from the source document.
func Missing() Value {
	return Value{}
}

// OptionalString converts a nullable string into a Value.
func OptionalString(s *string) Value {
	if s == nil {
		return Missing()
	}

	return Present(*s)
}

// IsPresent reports whether the value exists.
func (v Value) IsPresent() bool {
	return v.present
}

// Get returns the text and whether it is present.
func (v Value) Get() (string, bool) {
	return v.text, v.present
}

// String renders the value, substituting NoValue when missing.
func (v Value) String() string {
	if !v.present {
		return NoValue
	}

	return v.text
}

// Field is one label/value pair of a case record.
type Field struct {
	Label string
	Value Value
}

// CaseRecord is the ordered label/value extraction of one case.
type CaseRecord struct {
	Reference CaseReference
	Fields    []Field
}

// Add appends a pair.
func (r *CaseRecord) Add(label string, value Value) {
	r.Fields = append(r.Fields, Field{Label: label, Value: value})
}

// Values returns every value recorded under label, in record order.
func (r *CaseRecord) Values(label string) []Value {
	var values []Value

	for _, f := range r.Fields {
		if f.Label == label {
			values = append(values, f.Value)
		}
	}

	return values
}

// Lookup returns the first value recorded under label.
func (r *CaseRecord) Lookup(label string) (Value, bool) {
	for _, f := range r.Fields {
		if f.Label == label {
			return f.Value, true
		}
	}

	return Value{}, false
}
