package normalizer

import "casecrawler/internal/models"

// Opinion type values with a fixed role.
const (
	OpinionSyllabus = "syllabus"
	OpinionMajority = "majority"
	OpinionCase     = "case"
)

// OpinionRoles is the partition of a written opinion list.
type OpinionRoles struct {
	Syllabus *models.WrittenOpinion
	Majority *models.WrittenOpinion
	Separate []*models.WrittenOpinion
}

// ClassifyOpinions partitions opinions without modifying the input.
// The first syllabus and the first majority win; later entries of those
// types are dropped rather than reported as separate opinions. Case-typed
// placeholders and nil entries are ignored.
func ClassifyOpinions(opinions []*models.WrittenOpinion) OpinionRoles {
	roles := OpinionRoles{Separate: []*models.WrittenOpinion{}}

	for _, opinion := range opinions {
		if opinion == nil {
			continue
		}

		switch opinion.TypeValue() {
		case OpinionCase:
		case OpinionSyllabus:
			if roles.Syllabus == nil {
				roles.Syllabus = opinion
			}
		case OpinionMajority:
			if roles.Majority == nil {
				roles.Majority = opinion
			}
		default:
			roles.Separate = append(roles.Separate, opinion)
		}
	}

	return roles
}

// OpinionLink builds <justia_opinion_url>/#tab-opinion-<justia_opinion_id>.
func OpinionLink(opinion *models.WrittenOpinion) models.Value {
	if opinion == nil || opinion.JustiaOpinionURL == nil {
		return models.Missing()
	}

	id, ok := opinion.JustiaOpinionID.Text()
	if !ok {
		return models.Missing()
	}

	return models.Present(*opinion.JustiaOpinionURL + "/#tab-opinion-" + id)
}

// OpinionLabel returns the display label of the opinion type.
func OpinionLabel(opinion *models.WrittenOpinion) models.Value {
	if opinion == nil || opinion.Type == nil {
		return models.Missing()
	}

	return models.OptionalString(opinion.Type.Label)
}

// OpinionAuthor returns the full name of the judge who wrote the opinion.
func OpinionAuthor(opinion *models.WrittenOpinion) models.Value {
	if opinion == nil {
		return models.Missing()
	}

	return models.OptionalString(opinion.JudgeFullName)
}
