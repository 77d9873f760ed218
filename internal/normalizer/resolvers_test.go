package normalizer

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casecrawler/internal/models"
)

func TestResolveCitation(t *testing.T) {
	tests := []struct {
		name     string
		citation *models.Citation
		text     string
		url      string
	}{
		{
			name:     "Full citation",
			citation: &models.Citation{Volume: scalar("410"), Page: scalar("113"), Year: scalar("1973")},
			text:     "410 US 113 (1973)",
			url:      "https://supreme.justia.com/cases/federal/us/410/70-18/",
		},
		{
			name:     "Volume only",
			citation: &models.Citation{Volume: scalar("5")},
			text:     "5 US __",
			url:      "https://supreme.justia.com/cases/federal/us/5/70-18/",
		},
		{
			name:     "Empty page",
			citation: &models.Citation{Volume: scalar("590"), Page: scalar(""), Year: scalar("2022")},
			text:     "590 US __ (2022)",
			url:      "https://supreme.justia.com/cases/federal/us/590/70-18/",
		},
		{
			name:     "No volume",
			citation: &models.Citation{Page: scalar("113"), Year: scalar("1973")},
			text:     models.NoValue,
			url:      models.NoValue,
		},
		{
			name:     "Empty volume",
			citation: &models.Citation{Volume: scalar("")},
			text:     models.NoValue,
			url:      models.NoValue,
		},
		{
			name:     "Zero volume",
			citation: &models.Citation{Volume: scalar("0"), Page: scalar("113")},
			text:     models.NoValue,
			url:      models.NoValue,
		},
		{
			name:     "Zero page and year",
			citation: &models.Citation{Volume: scalar("410"), Page: scalar("0"), Year: scalar("0")},
			text:     "410 US __",
			url:      "https://supreme.justia.com/cases/federal/us/410/70-18/",
		},
		{
			name:     "Nil citation",
			citation: nil,
			text:     models.NoValue,
			url:      models.NoValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, url := ResolveCitation(tt.citation, "70-18", testCitationBase)

			assert.Equal(t, tt.text, text.String())
			assert.Equal(t, tt.url, url.String())
		})
	}
}

func TestResolveCitation_TrailingSlashBase(t *testing.T) {
	_, url := ResolveCitation(&models.Citation{Volume: scalar("410")}, "70-18", testCitationBase+"/")

	assert.Equal(t, "https://supreme.justia.com/cases/federal/us/410/70-18/", url.String())
}

func TestResolveTimeline(t *testing.T) {
	// 1973-01-22 12:00 UTC
	events := []*models.TimelineEvent{
		event("Decided", 96552000),
	}

	granted, err := ResolveTimeline(events, EventGranted, time.UTC)
	require.NoError(t, err)
	assert.False(t, granted.IsPresent())

	argued, err := ResolveTimeline(events, EventArgued, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, models.NoValue, argued.String())

	decided, err := ResolveTimeline(events, EventDecided, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "22-01-1973", decided.String())
}

func TestResolveTimeline_FirstMatchAndFirstDate(t *testing.T) {
	events := []*models.TimelineEvent{
		event("Reargued", 87652800),
		event("Argued", 61473600, 87652800),
		event("Argued", 38491200),
	}

	argued, err := ResolveTimeline(events, EventArgued, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "13-12-1971", argued.String())
}

func TestResolveTimeline_UsesLocation(t *testing.T) {
	// 1973-01-22 02:00 UTC is still the 21st in New York.
	events := []*models.TimelineEvent{event("Decided", 96516000)}

	loc := time.FixedZone("EST", -5*60*60)

	decided, err := ResolveTimeline(events, EventDecided, loc)
	require.NoError(t, err)
	assert.Equal(t, "21-01-1973", decided.String())
}

func TestResolveTimeline_NoDates(t *testing.T) {
	_, err := ResolveTimeline([]*models.TimelineEvent{event("Granted")}, EventGranted, time.UTC)

	assert.True(t, errors.Is(err, ErrMissingRequiredField))
}

func TestResolveTimeline_NullFirstDate(t *testing.T) {
	second := int64(96552000)
	events := []*models.TimelineEvent{{Event: ptr("Decided"), Dates: []*int64{nil, &second}}}

	decided, err := ResolveTimeline(events, EventDecided, time.UTC)

	assert.True(t, errors.Is(err, ErrMissingRequiredField))
	assert.False(t, decided.IsPresent())
}

func TestTimelineLabel(t *testing.T) {
	assert.Equal(t, []string{"GRANTED", "ARGUED", "DECIDED"}, []string{
		TimelineLabel(EventGranted), TimelineLabel(EventArgued), TimelineLabel(EventDecided),
	})
}

func TestResolveAdvocates(t *testing.T) {
	entries := []*models.AdvocateEntry{
		nil,
		{
			Advocate:            &models.Advocate{Name: ptr("Sarah R. Weddington"), Identifier: ptr("sarah_r_weddington")},
			AdvocateDescription: ptr("for the appellants"),
		},
	}

	fields := ResolveAdvocates(entries, testAdvocateBase)

	want := []string{"ADVOCATE NAME", "ADVOCATE LINK", "ADVOCATE DESCRIPTION"}
	if diff := cmp.Diff(want, labels(fields)); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}

	wantValues := []string{"Sarah R. Weddington", "https://www.oyez.org/advocates/sarah_r_weddington", "for the appellants"}
	if diff := cmp.Diff(wantValues, rendered(fields)); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveAdvocates_SkipsAndKeepsOrder(t *testing.T) {
	entries := []*models.AdvocateEntry{
		{Advocate: &models.Advocate{Name: ptr("Jay Floyd"), Identifier: ptr("jay_floyd")}},
		{Advocate: nil, AdvocateDescription: ptr("orphan")},
		{Advocate: &models.Advocate{Name: ptr("Jay Floyd"), Identifier: ptr("jay_floyd")}, AdvocateDescription: ptr("again")},
	}

	fields := ResolveAdvocates(entries, testAdvocateBase)

	require.Len(t, fields, 6, "duplicates are kept, orphans skipped")
	assert.Equal(t, models.NoValue, fields[2].Value.String())
	assert.Equal(t, "again", fields[5].Value.String())
}

func TestResolveAdvocates_Nil(t *testing.T) {
	assert.Empty(t, ResolveAdvocates(nil, testAdvocateBase))
}
