// Package formatter renders case records as text.
package formatter

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"casecrawler/internal/models"
	"casecrawler/pkg/utils"
)

// FormatRecord renders each pair as a label line and a value line, with a blank
// line between pairs and one trailing newline. Missing values render as models.NoValue.
// Values are written verbatim, embedded newlines included.
func FormatRecord(record *models.CaseRecord) string {
	if record == nil || len(record.Fields) == 0 {
		return ""
	}

	var sb strings.Builder

	for i, field := range record.Fields {
		if i > 0 {
			sb.WriteString("\n")
		}

		sb.WriteString(field.Label)
		sb.WriteString("\n")
		sb.WriteString(field.Value.String())
		sb.WriteString("\n")
	}

	return sb.String()
}

// minValueWidth keeps the value column readable on narrow terminals.
const minValueWidth = 10

// Preview renders the record as a two-column table no wider than width cells.
// Values are collapsed to one line and truncated; the table is for terminals only.
func Preview(record *models.CaseRecord, width int) string {
	if record == nil || len(record.Fields) == 0 {
		return ""
	}

	strs := utils.NewStringHelper()

	labelWidth := runewidth.StringWidth("LABEL")
	for _, field := range record.Fields {
		if w := runewidth.StringWidth(field.Label); w > labelWidth {
			labelWidth = w
		}
	}

	// "| " + label + " | " + value + " |"
	valueWidth := width - labelWidth - 7
	if valueWidth < minValueWidth {
		valueWidth = minValueWidth
	}

	rows := make([][2]string, 0, len(record.Fields))
	maxValue := runewidth.StringWidth("VALUE")

	for _, field := range record.Fields {
		value := strs.TruncateString(strs.NormalizeWhitespace(field.Value.String()), valueWidth)
		if w := runewidth.StringWidth(value); w > maxValue {
			maxValue = w
		}

		rows = append(rows, [2]string{field.Label, value})
	}

	var lines []string

	lines = append(lines, previewRow("LABEL", "VALUE", labelWidth, maxValue))
	lines = append(lines, "| "+strings.Repeat("-", labelWidth)+" | "+strings.Repeat("-", maxValue)+" |")

	for _, row := range rows {
		lines = append(lines, previewRow(row[0], row[1], labelWidth, maxValue))
	}

	return strings.Join(lines, "\n") + "\n"
}

func previewRow(label, value string, labelWidth, valueWidth int) string {
	var sb strings.Builder

	sb.WriteString("| ")
	sb.WriteString(runewidth.FillRight(label, labelWidth))
	sb.WriteString(" | ")
	sb.WriteString(runewidth.FillRight(value, valueWidth))
	sb.WriteString(" |")

	return sb.String()
}
