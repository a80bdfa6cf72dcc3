package validation

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

var (
	ErrFileSize     = errors.New("file size exceeds the upload limit")
	ErrFileType     = errors.New("invalid file type. Allowed types: JPG, JPEG, PNG")
	ErrFileRequired = errors.New("no file provided")
)

// DefaultMaxImageSize applies when no limit is configured.
const DefaultMaxImageSize = 5 * 1024 * 1024 // 5MB

var AllowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

var AllowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

// ValidateImage checks the declared name, MIME type and size of an upload. The
// extension and the MIME type must both be allowed. maxSize <= 0 means
// DefaultMaxImageSize.
func ValidateImage(filename, contentType string, size, maxSize int64) error {
	if filename == "" {
		return ErrFileRequired
	}

	if maxSize <= 0 {
		maxSize = DefaultMaxImageSize
	}
	if size > maxSize {
		return fmt.Errorf("%w of %d bytes", ErrFileSize, maxSize)
	}

	if !AllowedImageExtensions[strings.ToLower(filepath.Ext(filename))] {
		return ErrFileType
	}

	mediaType := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	if !AllowedImageTypes[mediaType] {
		return ErrFileType
	}

	return nil
}

// SniffImage reads the head of r and rejects content that is not a JPEG or PNG
// whatever the declared type says. The returned reader replays the sniffed bytes.
func SniffImage(r io.Reader) (io.Reader, error) {
	head := make([]byte, 512)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("could not read upload: %w", err)
	}
	head = head[:n]

	detected := mimetype.Detect(head)
	if !detected.Is("image/jpeg") && !detected.Is("image/png") {
		return nil, ErrFileType
	}

	return io.MultiReader(bytes.NewReader(head), r), nil
}

// GenerateFilename returns "<unix millis>-<random int><ext>" with a lower-cased
// extension taken from the original name.
func GenerateFilename(original string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(original))
	return fmt.Sprintf("%d-%d%s", now.UnixMilli(), rand.Intn(1_000_000_000), ext)
}
