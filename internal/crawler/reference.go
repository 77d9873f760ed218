package crawler

import (
	"errors"
	"net/url"
	"strings"

	"casecrawler/internal/models"
)

// ErrInvalidReference indicates a reference that does not address a case page.
var ErrInvalidReference = errors.New("reference is not a case URL")

// casesSegment is the first path segment of every case page.
const casesSegment = "cases"

// ParseReference accepts URLs of the form https://<siteHost>/cases/<term>/<docket>.
// The authority must be exactly siteHost: no userinfo, no port.
func ParseReference(raw, siteHost string) (models.CaseReference, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return models.CaseReference{}, ErrInvalidReference
	}

	var segments []string

	for _, part := range strings.Split(u.Path, "/") {
		if part != "" {
			segments = append(segments, part)
		}
	}

	if u.User != nil || u.Host != siteHost || len(segments) != 3 || segments[0] != casesSegment {
		return models.CaseReference{}, ErrInvalidReference
	}

	return models.CaseReference{Term: segments[1], Docket: segments[2]}, nil
}
