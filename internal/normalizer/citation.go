package normalizer

import (
	"fmt"
	"strconv"
	"strings"

	"casecrawler/internal/models"
)

// pagePlaceholder stands in for a page number not yet assigned.
const pagePlaceholder = "__"

// ResolveCitation renders the citation text and its Justia URL.
// Without a volume both are missing. Empty and zero components count as absent.
func ResolveCitation(citation *models.Citation, docket, base string) (text, url models.Value) {
	if citation == nil {
		return models.Missing(), models.Missing()
	}

	volume, ok := citationPart(citation.Volume)
	if !ok {
		return models.Missing(), models.Missing()
	}

	page, ok := citationPart(citation.Page)
	if !ok {
		page = pagePlaceholder
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "%s US %s", volume, page)

	if year, ok := citationPart(citation.Year); ok {
		fmt.Fprintf(&sb, " (%s)", year)
	}

	link := fmt.Sprintf("%s/%s/%s/", strings.TrimRight(base, "/"), volume, docket)

	return models.Present(sb.String()), models.Present(link)
}

func citationPart(s *models.Scalar) (string, bool) {
	text, ok := s.Text()
	if !ok {
		return "", false
	}

	if n, err := strconv.ParseFloat(text, 64); err == nil && n == 0 {
		return "", false
	}

	return text, true
}
