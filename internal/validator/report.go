// Package validator checks the structure of serialized case reports.
package validator

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"casecrawler/internal/models"
)

// ValidationError represents a validation error with context.
type ValidationError struct {
	Field   string
	Value   string
	Pattern string
	Message string
	Line    int
}

// ValidationResult contains validation results.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []string
	Stats    ValidationStats
	IsValid  bool
}

// ValidationStats contains validation statistics.
type ValidationStats struct {
	TotalPairs       int
	MissingValues    int
	SeparateOpinions int
	Advocates        int
}

// Report layout: a fixed head, a repeated opinion group, a fixed body and a repeated advocate group.
var (
	headLabels = []string{
		models.LabelTitle, models.LabelJustia, models.LabelSyllabusValue, models.LabelSyllabusLink,
		models.LabelOyezURL, models.LabelDeliveredBy, models.LabelOpinionOfTheCourt,
	}
	opinionGroup = []string{models.LabelJustice, models.LabelTypeOfOpinion, models.LabelLink}
	bodyLabels   = []string{
		models.LabelContent, models.LabelQuestion, models.LabelConclusion, models.LabelPetitioner,
		models.LabelRespondent, models.LabelDocketNumber, models.LabelDecidedBy, models.LabelLowerCourt,
		models.LabelCitationText, models.LabelCitationURL, models.LabelGranted, models.LabelArgued,
		models.LabelDecided,
	}
	advocateGroup = []string{models.LabelAdvocateName, models.LabelAdvocateLink, models.LabelAdvocateDescription}
)

var datePattern = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)

type pair struct {
	label string
	value string
	line  int
}

// ReportValidator validates serialized case reports.
type ReportValidator struct{}

// NewReportValidator creates a new validator.
func NewReportValidator() *ReportValidator {
	return &ReportValidator{}
}

// ValidateReport checks label/value alternation, the label order and the date values.
func (v *ReportValidator) ValidateReport(content string) *ValidationResult {
	result := &ValidationResult{
		IsValid:  true,
		Errors:   []ValidationError{},
		Warnings: []string{},
	}

	if content == "" {
		result.fail(ValidationError{Message: "report is empty"})

		return result
	}

	if !strings.HasSuffix(content, "\n") {
		result.Warnings = append(result.Warnings, "report does not end with a newline")
	}

	pairs, errs := splitPairs(content)
	for _, err := range errs {
		result.fail(err)
	}

	result.Stats.TotalPairs = len(pairs)

	for _, p := range pairs {
		if p.value == models.NoValue {
			result.Stats.MissingValues++
		}

		switch p.label {
		case models.LabelGranted, models.LabelArgued, models.LabelDecided:
			if p.value != models.NoValue && !datePattern.MatchString(p.value) {
				result.fail(ValidationError{
					Line:    p.line + 1,
					Field:   p.label,
					Value:   p.value,
					Pattern: "DD-MM-YYYY",
					Message: fmt.Sprintf("%s value is not a date", p.label),
				})
			}
		case models.LabelJustice:
			result.Stats.SeparateOpinions++
		case models.LabelAdvocateName:
			result.Stats.Advocates++
		}
	}

	if err := checkOrder(pairs); err != nil {
		result.fail(*err)
	}

	return result
}

func (r *ValidationResult) fail(err ValidationError) {
	r.IsValid = false
	r.Errors = append(r.Errors, err)
}

// splitPairs reads label lines and the value lines that follow them. A value
// runs until a blank line followed by a label line, so verbatim text may
// itself contain blank lines.
func splitPairs(content string) ([]pair, []ValidationError) {
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")

	var pairs []pair

	var errs []ValidationError

	i := 0
	for i < len(lines) {
		if !models.IsLabel(lines[i]) {
			errs = append(errs, ValidationError{
				Line:    i + 1,
				Value:   truncate(lines[i], 50),
				Message: "expected a label line",
			})

			return pairs, errs
		}

		label := lines[i]
		start := i + 1

		if start >= len(lines) {
			errs = append(errs, ValidationError{Line: i + 1, Field: label, Message: "label has no value line"})

			return pairs, errs
		}

		end := start + 1
		for end < len(lines) && !(lines[end] == "" && end+1 < len(lines) && models.IsLabel(lines[end+1])) {
			end++
		}

		pairs = append(pairs, pair{label: label, value: strings.Join(lines[start:end], "\n"), line: start})

		// skip the separator
		i = end + 1
	}

	return pairs, errs
}

// checkOrder matches the label sequence against the report layout.
func checkOrder(pairs []pair) *ValidationError {
	pos := 0

	expect := func(labels []string) *ValidationError {
		for _, want := range labels {
			if pos >= len(pairs) {
				return &ValidationError{Field: want, Message: fmt.Sprintf("missing %s", want)}
			}

			if pairs[pos].label != want {
				return &ValidationError{
					Line:    pairs[pos].line,
					Field:   want,
					Value:   pairs[pos].label,
					Message: fmt.Sprintf("expected %s, found %s", want, pairs[pos].label),
				}
			}

			pos++
		}

		return nil
	}

	repeat := func(group []string) *ValidationError {
		for pos < len(pairs) && pairs[pos].label == group[0] {
			if err := expect(group); err != nil {
				return err
			}
		}

		return nil
	}

	for _, step := range []func() *ValidationError{
		func() *ValidationError { return expect(headLabels) },
		func() *ValidationError { return repeat(opinionGroup) },
		func() *ValidationError { return expect(bodyLabels) },
		func() *ValidationError { return repeat(advocateGroup) },
	} {
		if err := step(); err != nil {
			return err
		}
	}

	if pos < len(pairs) {
		return &ValidationError{
			Line:    pairs[pos].line,
			Value:   pairs[pos].label,
			Message: fmt.Sprintf("unexpected %s after the last section", pairs[pos].label),
		}
	}

	return nil
}

// truncate truncates string to max length.
func truncate(s string, maxLen int) string {
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}

	return s
}

// String returns string representation of validation result.
func (r *ValidationResult) String() string {
	status := "VALID"
	if !r.IsValid {
		status = "INVALID"
	}

	return fmt.Sprintf(
		"%s | Pairs: %d | Missing: %d | Separate opinions: %d | Advocates: %d | Warnings: %d",
		status,
		r.Stats.TotalPairs,
		r.Stats.MissingValues,
		r.Stats.SeparateOpinions,
		r.Stats.Advocates,
		len(r.Warnings),
	)
}

// PrintErrors prints validation errors in readable format.
func (r *ValidationResult) PrintErrors(w io.Writer) {
	if len(r.Errors) == 0 {
		return
	}

	fmt.Fprintln(w, "Validation errors:")

	for _, err := range r.Errors {
		if err.Line > 0 {
			fmt.Fprintf(w, "  Line %d", err.Line)

			if err.Field != "" {
				fmt.Fprintf(w, " [%s]", err.Field)
			}

			fmt.Fprintf(w, ": %s\n", err.Message)

			if err.Value != "" {
				fmt.Fprintf(w, "    Found: %q\n", err.Value)
			}

			if err.Pattern != "" {
				fmt.Fprintf(w, "    Expected pattern: %s\n", err.Pattern)
			}
		} else {
			fmt.Fprintf(w, "  %s\n", err.Message)
		}
	}
}

// PrintWarnings prints validation warnings.
func (r *ValidationResult) PrintWarnings(w io.Writer) {
	if len(r.Warnings) == 0 {
		return
	}

	fmt.Fprintln(w, "Validation warnings:")

	for _, warn := range r.Warnings {
		fmt.Fprintf(w, "  %s\n", warn)
	}
}
