package validation

import (
	"bytes"
	"io"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")

func TestValidateImage(t *testing.T) {
	cases := []struct {
		name        string
		filename    string
		contentType string
		size        int64
		want        error
	}{
		{"png", "receipt.png", "image/png", 1024, nil},
		{"upper-case jpeg", "RECEIPT.JPEG", "image/jpeg", 1024, nil},
		{"jpg alias mime", "receipt.jpg", "image/jpg", 1024, nil},
		{"mime with params", "receipt.jpg", "image/jpeg; charset=binary", 1024, nil},
		{"gif with image mime", "photo.gif", "image/png", 1024, ErrFileType},
		{"gif with gif mime", "photo.gif", "image/gif", 1024, ErrFileType},
		{"good ext bad mime", "receipt.png", "application/pdf", 1024, ErrFileType},
		{"no extension", "receipt", "image/png", 1024, ErrFileType},
		{"missing", "", "", 0, ErrFileRequired},
		{"too large", "receipt.png", "image/png", DefaultMaxImageSize + 1, ErrFileSize},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateImage(tc.filename, tc.contentType, tc.size, 0)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidateImageCustomLimit(t *testing.T) {
	assert.ErrorIs(t, ValidateImage("a.png", "image/png", 11, 10), ErrFileSize)
	assert.NoError(t, ValidateImage("a.png", "image/png", 10, 10))
}

func TestSniffImage(t *testing.T) {
	body := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 1000)...)

	r, err := SniffImage(bytes.NewReader(body))
	require.NoError(t, err)
	replayed, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, body, replayed)

	_, err = SniffImage(bytes.NewReader([]byte("GIF89a not really a png")))
	assert.ErrorIs(t, err, ErrFileType)
}

func TestGenerateFilename(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	name := GenerateFilename("Screen Shot.PNG", now)
	assert.Regexp(t, regexp.MustCompile(`^1700000000123-\d+\.png$`), name)
}
