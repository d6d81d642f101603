package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"vietscan/internal/config"
	"vietscan/internal/domain"
	"vietscan/internal/extract"
	"vietscan/internal/port"
)

// Upload is the DTO for one uploaded image.
type Upload struct {
	File   multipart.File
	Header *multipart.FileHeader
}

// DocumentService orchestrates the OCR and extraction calls for one request:
// validate uploads, stage them in request-scoped temp files, recognize text,
// extract structured fields, and merge the two sides of an identity card.
type DocumentService struct {
	recognizer  port.TextRecognizer
	extractor   *extract.Extractor
	maxFileSize int64
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(recognizer port.TextRecognizer, extractor *extract.Extractor, cfg *config.UploadConfig) *DocumentService {
	maxFileSize := cfg.MaxFileSizeBytes
	if maxFileSize == 0 {
		maxFileSize = domain.MaxUploadBytes
	}
	return &DocumentService{
		recognizer:  recognizer,
		extractor:   extractor,
		maxFileSize: maxFileSize,
	}
}

// ProcessIdentityCard runs the two-sided identity card flow: both OCR calls
// run concurrently, the two extraction calls run sequentially, and the
// per-side results are merged into one record. Upload validation errors are
// returned as errors; everything past validation surfaces as an
// ExtractionResult.
func (s *DocumentService) ProcessIdentityCard(ctx context.Context, front, back Upload) (domain.ExtractionResult, error) {
	if err := s.validateUpload(front.Header); err != nil {
		return domain.ExtractionResult{}, err
	}
	if err := s.validateUpload(back.Header); err != nil {
		return domain.ExtractionResult{}, err
	}

	tempDir, err := os.MkdirTemp("", "vietscan-")
	if err != nil {
		return domain.ExtractionResult{}, fmt.Errorf("creating temp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(tempDir) }()

	frontPath, err := saveUpload(tempDir, "front", front)
	if err != nil {
		return domain.ExtractionResult{}, err
	}
	backPath, err := saveUpload(tempDir, "back", back)
	if err != nil {
		return domain.ExtractionResult{}, err
	}

	log.Printf("documentService: starting OCR for identity card (front=%s back=%s)",
		front.Header.Filename, back.Header.Filename)

	frontOCR, backOCR := s.recognizeBoth(ctx,
		port.RecognizeInput{FilePath: frontPath, FileName: front.Header.Filename},
		port.RecognizeInput{FilePath: backPath, FileName: back.Header.Filename},
	)

	frontResult := s.extractSide(ctx, frontOCR)
	backResult := s.extractSide(ctx, backOCR)

	merged := extract.MergeIdentity(frontResult, backResult)
	if !merged.Success {
		log.Printf("documentService: identity card merge failed: %s", merged.Err)
	}
	return merged, nil
}

// ProcessSingle runs the single-image flow for the vehicle document types.
func (s *DocumentService) ProcessSingle(ctx context.Context, dt domain.DocumentType, image Upload) (domain.ExtractionResult, error) {
	if !dt.Valid() {
		return domain.ExtractionResult{}, domain.ErrInvalidDocumentType
	}
	if err := s.validateUpload(image.Header); err != nil {
		return domain.ExtractionResult{}, err
	}

	tempDir, err := os.MkdirTemp("", "vietscan-")
	if err != nil {
		return domain.ExtractionResult{}, fmt.Errorf("creating temp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(tempDir) }()

	path, err := saveUpload(tempDir, "image", image)
	if err != nil {
		return domain.ExtractionResult{}, err
	}

	log.Printf("documentService: starting OCR for %s (%s)", dt, image.Header.Filename)

	text, err := s.recognizer.Recognize(ctx, port.RecognizeInput{FilePath: path, FileName: image.Header.Filename})
	if err != nil {
		return domain.NewFailure("API error: " + err.Error()), nil
	}

	return s.extractor.Extract(ctx, dt, text), nil
}

// ocrResult carries one side's recognized text or its error.
type ocrResult struct {
	text string
	err  error
}

// recognizeBoth fans the two OCR calls out to goroutines and waits for both;
// the pool is bounded at the number of images in the request.
func (s *DocumentService) recognizeBoth(ctx context.Context, frontIn, backIn port.RecognizeInput) (ocrResult, ocrResult) {
	var wg sync.WaitGroup
	frontCh := make(chan ocrResult, 1)
	backCh := make(chan ocrResult, 1)

	wg.Add(2)
	go func() {
		defer wg.Done()
		text, err := s.recognizer.Recognize(ctx, frontIn)
		frontCh <- ocrResult{text, err}
	}()
	go func() {
		defer wg.Done()
		text, err := s.recognizer.Recognize(ctx, backIn)
		backCh <- ocrResult{text, err}
	}()
	wg.Wait()
	close(frontCh)
	close(backCh)

	return <-frontCh, <-backCh
}

// extractSide turns one side's OCR outcome into an ExtractionResult. An OCR
// transport error becomes a Failure so the merge precondition handles it.
func (s *DocumentService) extractSide(ctx context.Context, ocr ocrResult) domain.ExtractionResult {
	if ocr.err != nil {
		log.Printf("documentService: OCR call failed: %v", ocr.err)
		return domain.NewFailure("API error: " + ocr.err.Error())
	}
	return s.extractor.Extract(ctx, domain.DocTypeIdentityCard, ocr.text)
}

// validateUpload enforces the upload preconditions: allowed extension and
// size ceiling. The core is never invoked on rejected uploads.
func (s *DocumentService) validateUpload(header *multipart.FileHeader) error {
	if header == nil {
		return domain.ErrMissingFile
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(header.Filename)), ".")
	if _, ok := domain.AllowedExtensions[ext]; !ok {
		return domain.ErrUnsupportedFileType
	}
	if header.Size > s.maxFileSize {
		return domain.ErrFileTooLarge
	}
	return nil
}

// saveUpload writes one upload into the request-scoped temp dir under a
// unique name. The whole dir is removed on every exit path by the caller.
func saveUpload(dir, side string, up Upload) (string, error) {
	ext := strings.ToLower(filepath.Ext(up.Header.Filename))
	path := filepath.Join(dir, fmt.Sprintf("%s_%s%s", side, uuid.New().String(), ext))

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("staging upload (%s): %w", up.Header.Filename, err)
	}
	defer func() { _ = dst.Close() }()

	if _, err := io.Copy(dst, up.File); err != nil {
		return "", fmt.Errorf("staging upload (%s): %w", up.Header.Filename, err)
	}
	return path, nil
}
