package extract

import (
	"context"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"vietscan/internal/config"
	"vietscan/internal/domain"
	"vietscan/internal/port"
)

var jsonBlockRe = regexp.MustCompile("(?s)```json\n(.*?)\n```")

// Extractor turns OCR text into a typed ExtractionResult by prompting the
// completion provider and parsing the fenced JSON block out of its reply.
type Extractor struct {
	completer   port.Completer
	maxTokens   int
	temperature float64
}

// NewExtractor creates an Extractor over the given completion provider.
func NewExtractor(completer port.Completer, cfg *config.CompletionConfig) *Extractor {
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 500
	}
	return &Extractor{
		completer:   completer,
		maxTokens:   maxTokens,
		temperature: cfg.Temperature,
	}
}

// responseEnvelope is the shape the prompt instructs the model to reply with.
type responseEnvelope struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data"`
	Error   string         `json:"error"`
}

// Extract runs one OCR-text-to-JSON attempt for the given document type.
// Every failure mode is returned as a Failure result; this is a
// single-attempt call with no retry.
func (e *Extractor) Extract(ctx context.Context, dt domain.DocumentType, ocrText string) domain.ExtractionResult {
	if dt == domain.DocTypeIdentityCard {
		ocrText = PreprocessIdentityText(ocrText)
	}

	reply, err := e.completer.Complete(ctx, port.CompletionRequest{
		System:      SystemPrompt,
		Prompt:      BuildPrompt(dt, ocrText),
		MaxTokens:   e.maxTokens,
		Temperature: e.temperature,
	})
	if err != nil {
		return domain.NewFailure("API error: " + err.Error())
	}

	m := jsonBlockRe.FindStringSubmatch(strings.TrimSpace(reply))
	if m == nil {
		return domain.NewFailure("no JSON block found in response")
	}

	repaired := RepairJSON(strings.TrimSpace(m[1]))

	var envelope responseEnvelope
	if err := json.Unmarshal([]byte(repaired), &envelope); err != nil {
		return domain.NewFailure("invalid JSON format: " + err.Error())
	}

	if !envelope.Success {
		reason := envelope.Error
		if reason == "" {
			reason = "extraction unsuccessful"
		}
		return domain.NewFailure(reason)
	}

	return domain.NewSuccess(dt, normalizeFields(dt, envelope.Data))
}

// normalizeFields projects raw model output onto the closed schema for dt:
// unknown keys are dropped, missing keys become null, scalar values are
// coerced to strings.
func normalizeFields(dt domain.DocumentType, raw map[string]any) domain.Fields {
	schema := domain.FieldSchema(dt)
	fields := make(domain.Fields, len(schema))
	for _, key := range schema {
		fields[key] = coerceValue(raw[key])
	}
	return fields
}

func coerceValue(v any) *string {
	switch t := v.(type) {
	case string:
		s := strings.TrimSpace(t)
		if s == "" || strings.EqualFold(s, "null") {
			return nil
		}
		return &s
	case float64:
		s := strconv.FormatFloat(t, 'f', -1, 64)
		return &s
	default:
		// null, booleans, nested structures: no usable field value
		return nil
	}
}
