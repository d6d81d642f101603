package domain

// Fields maps extracted field names to values. A nil pointer marshals to
// JSON null, which is how absent information is represented; keys are never
// omitted from a successful result.
type Fields map[string]*string

// Get returns the value for key, or nil if the key is absent or null.
func (f Fields) Get(key string) *string {
	if f == nil {
		return nil
	}
	return f[key]
}

// ExtractionResult is the outcome of one OCR-text-to-JSON attempt.
// Success carries the full fixed field set for its document type; Failure
// carries a short diagnostic and no field data.
type ExtractionResult struct {
	Success      bool         `json:"success"`
	DocumentType DocumentType `json:"document_type,omitempty"`
	Data         Fields       `json:"data,omitempty"`
	Err          string       `json:"error,omitempty"`
}

// NewFailure builds a failed ExtractionResult with the given diagnostic.
func NewFailure(reason string) ExtractionResult {
	return ExtractionResult{Success: false, Err: reason}
}

// NewSuccess builds a successful ExtractionResult. The caller is responsible
// for fields matching the document type's schema.
func NewSuccess(dt DocumentType, fields Fields) ExtractionResult {
	return ExtractionResult{Success: true, DocumentType: dt, Data: fields}
}
