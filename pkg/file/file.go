package file

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
)

// Descriptor describes a selected file: what the constraint checks look at.
type Descriptor struct {
	Name     string `json:"name"`
	Size     int64  `json:"size"`
	MIMEType string `json:"mime_type"`
}

// Extension returns the lower-cased extension of the file name including the dot.
func (d Descriptor) Extension() string {
	return strings.ToLower(filepath.Ext(d.Name))
}

// Describe builds a Descriptor from an uploaded file. The MIME type is detected
// from the content rather than taken from the client-supplied header.
func Describe(fh *multipart.FileHeader) (Descriptor, error) {
	if fh == nil {
		return Descriptor{}, ErrNilFileHeader
	}

	mimeType, err := GetMIMEType(fh)
	if err != nil {
		return Descriptor{}, err
	}

	return Descriptor{
		Name:     SanitizeFilename(fh.Filename),
		Size:     fh.Size,
		MIMEType: mimeType,
	}, nil
}

// GetMIMEType detects the MIME type by reading the file content.
// Uses http.DetectContentType which reads the first 512 bytes to identify file types
// based on magic bytes rather than trusting file extensions (prevents spoofing).
func GetMIMEType(fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", ErrNilFileHeader
	}

	file, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToOpenFile, err)
	}
	defer func() { _ = file.Close() }()

	// 512 bytes is the maximum http.DetectContentType reads
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}
	if n == 0 {
		return "", fmt.Errorf("%w: empty file", ErrFailedToDetectMIMEType)
	}

	// Reset file position for subsequent operations
	if seeker, ok := file.(io.Seeker); ok {
		_, _ = seeker.Seek(0, io.SeekStart)
	}

	return normalizeMIMEType(http.DetectContentType(buffer[:n])), nil
}

// SanitizeFilename removes any path components and dangerous characters from a filename.
// Returns "unnamed" for empty or special directory references.
//
// Example:
//
//	safe := file.SanitizeFilename("../../../etc/passwd") // Returns "passwd"
//	safe = file.SanitizeFilename("C:\\Windows\\file.txt") // Returns "file.txt"
func SanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = filepath.Base(filename)
	filename = strings.ReplaceAll(filename, "\x00", "")

	if filename == "." || filename == ".." || filename == "" || filename == "/" {
		filename = "unnamed"
	}

	return filename
}

// normalizeMIMEType drops parameters and lower-cases the media type, so
// "Image/PNG; q=1" compares equal to "image/png".
func normalizeMIMEType(mimeType string) string {
	base, _, _ := strings.Cut(mimeType, ";")
	return strings.ToLower(strings.TrimSpace(base))
}
