// Package normalizer turns raw case documents into ordered case records.
package normalizer

import (
	"fmt"

	"casecrawler/internal/models"
)

// Processor handles data validation and extraction.
type Processor struct {
	validator   *Validator
	transformer *Transformer
}

// NewProcessor creates a new processor instance.
func NewProcessor(opts Options) *Processor {
	return &Processor{
		validator:   NewValidator(),
		transformer: NewTransformer(opts),
	}
}

// Process validates the document and extracts its record.
// Nothing is returned unless every step succeeds.
func (p *Processor) Process(ref models.CaseReference, doc *models.CaseDocument) (*models.CaseRecord, error) {
	if err := p.validator.Validate(doc); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	record, err := p.transformer.Transform(ref, doc)
	if err != nil {
		return nil, fmt.Errorf("extraction failed: %w", err)
	}

	return record, nil
}
