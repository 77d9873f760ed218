package normalizer

import (
	"fmt"
	"strings"
	"time"

	"casecrawler/internal/models"
)

// Timeline event names resolved into a report, in report order.
const (
	EventGranted = "Granted"
	EventArgued  = "Argued"
	EventDecided = "Decided"
)

// TimelineEvents lists the resolved events in report order.
var TimelineEvents = []string{EventGranted, EventArgued, EventDecided}

// DateLayout renders timeline dates as day-month-year.
const DateLayout = "02-01-2006"

// TimelineLabel returns the report label of an event name.
func TimelineLabel(event string) string {
	return strings.ToUpper(event)
}

// ResolveTimeline formats the first recorded date of the first entry named event.
// An absent event is missing; a matched entry without a first date is an error.
func ResolveTimeline(events []*models.TimelineEvent, event string, loc *time.Location) (models.Value, error) {
	for i, entry := range events {
		if entry == nil || entry.Event == nil || *entry.Event != event {
			continue
		}

		if len(entry.Dates) == 0 {
			return models.Missing(), fmt.Errorf("%w: timeline[%d].dates", ErrMissingRequiredField, i)
		}

		if entry.Dates[0] == nil {
			return models.Missing(), fmt.Errorf("%w: timeline[%d].dates[0]", ErrMissingRequiredField, i)
		}

		return models.Present(time.Unix(*entry.Dates[0], 0).In(loc).Format(DateLayout)), nil
	}

	return models.Missing(), nil
}
