package normalizer

import (
	"strings"

	"casecrawler/internal/models"
)

// ResolveAdvocates emits a name/link/description triple per advocate in source order.
// Nil entries and entries without an advocate sub-record are skipped.
func ResolveAdvocates(entries []*models.AdvocateEntry, base string) []models.Field {
	var fields []models.Field

	base = strings.TrimRight(base, "/")

	for _, entry := range entries {
		if entry == nil || entry.Advocate == nil {
			continue
		}

		link := models.Missing()
		if entry.Advocate.Identifier != nil {
			link = models.Present(base + "/" + *entry.Advocate.Identifier)
		}

		fields = append(fields,
			models.Field{Label: models.LabelAdvocateName, Value: models.OptionalString(entry.Advocate.Name)},
			models.Field{Label: models.LabelAdvocateLink, Value: link},
			models.Field{Label: models.LabelAdvocateDescription, Value: models.OptionalString(entry.AdvocateDescription)},
		)
	}

	return fields
}
