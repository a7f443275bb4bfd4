// Package normalizer maps harvested Core Research Center well records onto
// ScienceBase items.
package normalizer

import (
	"encoding/json"
	"fmt"

	"crcsb/internal/logger"
	"crcsb/internal/models"
	"crcsb/internal/sciencebase"
)

// Processor validates a source record and transforms it into an item.
type Processor struct {
	validator   *Validator
	transformer *Transformer
	logger      *logger.Logger
}

// NewProcessor creates a new processor instance.
func NewProcessor() *Processor {
	return &Processor{
		validator:   NewValidator(),
		transformer: NewTransformer(),
	}
}

// WithLogger returns a processor that reports suspicious upstream data to log.
func (p *Processor) WithLogger(log *logger.Logger) *Processor {
	return &Processor{
		validator:   p.validator,
		transformer: p.transformer,
		logger:      log,
	}
}

// Process maps one source record. It either returns a complete item or an
// error, never a partial item.
func (p *Processor) Process(rec *models.CoreRecord) (*sciencebase.Item, error) {
	if err := p.validator.Validate(rec); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	p.warn(rec)

	item, err := p.transformer.Transform(rec)
	if err != nil {
		return nil, fmt.Errorf("transformation failed: %w", err)
	}

	return item, nil
}

func (p *Processor) warn(rec *models.CoreRecord) {
	if p.logger == nil {
		return
	}

	if rec.Operator.Valid && rec.Operator.String == "" {
		p.logger.Warn("empty operator name mapped to a site operator contact", "libNum", rec.LibNum.String())
	}
}

// DecodeRecord decodes one source record from JSON.
func DecodeRecord(data []byte) (*models.CoreRecord, error) {
	var rec models.CoreRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode source record: %w", err)
	}

	return &rec, nil
}

// MapRecord maps one source record with a default processor.
func MapRecord(rec *models.CoreRecord) (*sciencebase.Item, error) {
	return NewProcessor().Process(rec)
}
