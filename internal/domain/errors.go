package domain

import "errors"

var (
	ErrMissingFile         = errors.New("image file is required")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrInvalidDocumentType = errors.New("invalid document type")
)
