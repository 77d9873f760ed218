package validator

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casecrawler/internal/formatter"
	"casecrawler/internal/models"
)

// minimalReport builds a serialized report with every fixed label and no repeated groups.
func minimalReport(t *testing.T) string {
	t.Helper()

	record := &models.CaseRecord{}
	for _, label := range headLabels {
		record.Add(label, models.Missing())
	}

	for _, label := range bodyLabels {
		record.Add(label, models.Missing())
	}

	return formatter.FormatRecord(record)
}

func TestValidateReport_Golden(t *testing.T) {
	content, err := os.ReadFile("../crawler/testdata/case_1971_70-18.txt")
	require.NoError(t, err)

	result := NewReportValidator().ValidateReport(string(content))

	assert.True(t, result.IsValid, "errors: %+v", result.Errors)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, 32, result.Stats.TotalPairs)
	assert.Equal(t, 2, result.Stats.SeparateOpinions)
	assert.Equal(t, 2, result.Stats.Advocates)
	assert.Equal(t, 1, result.Stats.MissingValues)
}

func TestValidateReport_Minimal(t *testing.T) {
	result := NewReportValidator().ValidateReport(minimalReport(t))

	assert.True(t, result.IsValid, "errors: %+v", result.Errors)
	assert.Equal(t, len(headLabels)+len(bodyLabels), result.Stats.TotalPairs)
	assert.Equal(t, result.Stats.TotalPairs, result.Stats.MissingValues)
}

func TestValidateReport_VerbatimBlankLines(t *testing.T) {
	report := strings.Replace(minimalReport(t), "CONTENT\nNO_VALUE\n", "CONTENT\n<p>one</p>\n\n<p>two</p>\n", 1)

	result := NewReportValidator().ValidateReport(report)

	assert.True(t, result.IsValid, "errors: %+v", result.Errors)
}

func TestValidateReport_Errors(t *testing.T) {
	base := minimalReport(t)

	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{
			name:    "Empty",
			content: "",
			wantMsg: "report is empty",
		},
		{
			name:    "Unknown label",
			content: "HEADLINE\nRoe v. Wade\n",
			wantMsg: "expected a label line",
		},
		{
			name:    "Dangling label",
			content: "TITLE\n",
			wantMsg: "label has no value line",
		},
		{
			name:    "Out of order",
			content: strings.Replace(base, "TITLE\n", "JUSTIA\n", 1),
			wantMsg: "expected TITLE, found JUSTIA",
		},
		{
			name:    "Truncated",
			content: strings.TrimSuffix(strings.Split(base, "\nDECIDED\n")[0], "\n") + "\n",
			wantMsg: "missing DECIDED",
		},
		{
			name:    "Incomplete opinion group",
			content: strings.Replace(base, "CONTENT\n", "JUSTICE\nPotter Stewart\n\nCONTENT\n", 1),
			wantMsg: "expected TYPE OF OPINION, found CONTENT",
		},
		{
			name:    "Trailing label",
			content: base + "\nTITLE\nagain\n",
			wantMsg: "unexpected TITLE after the last section",
		},
		{
			name:    "Bad date",
			content: strings.Replace(base, "DECIDED\nNO_VALUE", "DECIDED\n1973-01-22", 1),
			wantMsg: "DECIDED value is not a date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewReportValidator().ValidateReport(tt.content)

			require.False(t, result.IsValid)

			var messages []string
			for _, e := range result.Errors {
				messages = append(messages, e.Message)
			}

			assert.Contains(t, messages, tt.wantMsg)
		})
	}
}

func TestValidateReport_MissingTrailingNewline(t *testing.T) {
	result := NewReportValidator().ValidateReport(strings.TrimSuffix(minimalReport(t), "\n"))

	assert.True(t, result.IsValid)
	assert.Len(t, result.Warnings, 1)
}

func TestValidationResult_Print(t *testing.T) {
	result := NewReportValidator().ValidateReport("HEADLINE\nx\n")

	var buf bytes.Buffer
	result.PrintErrors(&buf)
	result.PrintWarnings(&buf)

	assert.Contains(t, buf.String(), "Line 1: expected a label line")
	assert.Contains(t, buf.String(), `Found: "HEADLINE"`)
	assert.Contains(t, result.String(), "INVALID")
}
