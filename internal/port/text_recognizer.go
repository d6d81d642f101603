package port

import "context"

// RecognizeInput carries one stored image for text recognition.
type RecognizeInput struct {
	FilePath string // request-scoped temp file holding the image bytes
	FileName string // original upload name, forwarded as a provider hint
}

// TextRecognizer abstracts the external OCR transcription provider.
// It receives raw image bytes and returns the recognized text verbatim.
type TextRecognizer interface {
	Recognize(ctx context.Context, input RecognizeInput) (string, error)
}
