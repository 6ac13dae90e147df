package docx2md

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyDocument   = errors.New("document content cannot be empty")
	ErrEmptyPath       = errors.New("document path cannot be empty")
	ErrInvalidDocument = errors.New("not a valid docx archive")
	ErrPandocNotFound  = errors.New("pandoc executable not found")
	ErrConversion      = errors.New("document conversion failed")
)
