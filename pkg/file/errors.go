package file

import "errors"

var (
	ErrNilFileHeader = errors.New("file header is nil")

	// I/O errors while inspecting an upload, wrapped with the underlying cause
	ErrFailedToOpenFile       = errors.New("failed to open file")
	ErrFailedToReadFile       = errors.New("failed to read file")
	ErrFailedToDetectMIMEType = errors.New("failed to detect MIME type")

	ErrFailedToLoadLimits = errors.New("failed to load upload limits")
)
