package normalizer

import (
	"strings"
	"time"

	"casecrawler/internal/models"
)

// Options holds the settings that shape extracted values.
type Options struct {
	Location     *time.Location
	CitationBase string
	AdvocateBase string
}

// Transformer extracts the ordered label/value record from a validated document.
type Transformer struct {
	opts Options
}

// NewTransformer creates a new transformer instance.
func NewTransformer(opts Options) *Transformer {
	if opts.Location == nil {
		opts.Location = time.Local
	}

	return &Transformer{opts: opts}
}

// Transform builds the record. The document must have passed Validator.Validate.
func (t *Transformer) Transform(ref models.CaseReference, doc *models.CaseDocument) (*models.CaseRecord, error) {
	record := &models.CaseRecord{Reference: ref}

	t.addInfo(record, doc)
	t.addOpinions(record, doc)
	t.addBody(record, doc)

	if err := t.addMeta(record, doc); err != nil {
		return nil, err
	}

	return record, nil
}

func (t *Transformer) addInfo(record *models.CaseRecord, doc *models.CaseDocument) {
	record.Add(models.LabelTitle, models.Present(*doc.Name))
	record.Add(models.LabelJustia, models.Present(*doc.JustiaURL))
}

func (t *Transformer) addOpinions(record *models.CaseRecord, doc *models.CaseDocument) {
	roles := ClassifyOpinions(doc.WrittenOpinion)

	record.Add(models.LabelSyllabusValue, OpinionLabel(roles.Syllabus))
	record.Add(models.LabelSyllabusLink, OpinionLink(roles.Syllabus))
	record.Add(models.LabelOyezURL, models.Present(strings.ReplaceAll(*doc.Href, "api.", "www.")))
	record.Add(models.LabelDeliveredBy, OpinionAuthor(roles.Majority))
	record.Add(models.LabelOpinionOfTheCourt, OpinionLink(roles.Majority))

	for _, opinion := range roles.Separate {
		record.Add(models.LabelJustice, OpinionAuthor(opinion))
		record.Add(models.LabelTypeOfOpinion, OpinionLabel(opinion))
		record.Add(models.LabelLink, OpinionLink(opinion))
	}
}

// addBody passes narrative text through verbatim.
func (t *Transformer) addBody(record *models.CaseRecord, doc *models.CaseDocument) {
	record.Add(models.LabelContent, models.Present(*doc.FactsOfTheCase))
	record.Add(models.LabelQuestion, models.Present(*doc.Question))
	record.Add(models.LabelConclusion, models.Present(*doc.Conclusion))
}

func (t *Transformer) addMeta(record *models.CaseRecord, doc *models.CaseDocument) error {
	record.Add(models.LabelPetitioner, models.Present(*doc.FirstParty))
	record.Add(models.LabelRespondent, models.Present(*doc.SecondParty))
	record.Add(models.LabelDocketNumber, models.Present(*doc.DocketNumber))
	record.Add(models.LabelDecidedBy, entityName(doc.DecidedBy))
	record.Add(models.LabelLowerCourt, entityName(doc.LowerCourt))

	text, url := ResolveCitation(doc.Citation, *doc.DocketNumber, t.opts.CitationBase)
	record.Add(models.LabelCitationText, text)
	record.Add(models.LabelCitationURL, url)

	for _, event := range TimelineEvents {
		value, err := ResolveTimeline(doc.Timeline, event, t.opts.Location)
		if err != nil {
			return err
		}

		record.Add(TimelineLabel(event), value)
	}

	record.Fields = append(record.Fields, ResolveAdvocates(doc.Advocates, t.opts.AdvocateBase)...)

	return nil
}

func entityName(entity *models.NamedEntity) models.Value {
	if entity == nil {
		return models.Missing()
	}

	return models.OptionalString(entity.Name)
}
