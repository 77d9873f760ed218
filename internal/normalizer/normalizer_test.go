package normalizer

import (
	"time"

	"casecrawler/internal/models"
)

const (
	testCitationBase = "https://supreme.justia.com/cases/federal/us"
	testAdvocateBase = "https://www.oyez.org/advocates"
)

var testRef = models.CaseReference{Term: "1971", Docket: "70-18"}

func ptr(s string) *string {
	return &s
}

func scalar(s string) *models.Scalar {
	v := models.Scalar(s)

	return &v
}

func opinion(value, label, judge, id string) *models.WrittenOpinion {
	o := &models.WrittenOpinion{
		Type:             &models.OpinionType{Value: ptr(value), Label: ptr(label)},
		JustiaOpinionURL: ptr("https://supreme.justia.com/cases/federal/us/410/113"),
	}

	if judge != "" {
		o.JudgeFullName = ptr(judge)
	}

	if id != "" {
		o.JustiaOpinionID = scalar(id)
	}

	return o
}

func event(name string, dates ...int64) *models.TimelineEvent {
	e := &models.TimelineEvent{Event: ptr(name)}

	for _, d := range dates {
		d := d
		e.Dates = append(e.Dates, &d)
	}

	return e
}

func testOptions() Options {
	return Options{
		Location:     time.UTC,
		CitationBase: testCitationBase,
		AdvocateBase: testAdvocateBase,
	}
}

// minimalDocument has every required field and no optional ones.
func minimalDocument() *models.CaseDocument {
	return &models.CaseDocument{
		Name:           ptr("Roe v. Wade"),
		Href:           ptr("https://api.oyez.org/cases/1971/70-18"),
		JustiaURL:      ptr("https://supreme.justia.com/cases/federal/us/410/113/"),
		FactsOfTheCase: ptr("facts"),
		Question:       ptr("question"),
		Conclusion:     ptr("conclusion"),
		FirstParty:     ptr("Jane Roe"),
		SecondParty:    ptr("Henry Wade"),
		DocketNumber:   ptr("70-18"),
		Citation:       &models.Citation{},
		Timeline:       []*models.TimelineEvent{},
	}
}

func labels(fields []models.Field) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.Label)
	}

	return out
}

func rendered(fields []models.Field) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.Value.String())
	}

	return out
}
