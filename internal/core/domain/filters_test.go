package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ichinga-Samuel/fastfiles/internal/core/domain"
)

func candidate(name, contentType string, size int64) *domain.Candidate {
	return &domain.Candidate{
		FieldName:   "file",
		Filename:    name,
		ContentType: contentType,
		Size:        size,
		Source:      strings.NewReader("data"),
	}
}

func TestMaxSize(t *testing.T) {
	f := domain.MaxSize(100)

	assert.True(t, f(nil, candidate("a.txt", "text/plain", 100)))
	assert.True(t, f(nil, candidate("a.txt", "text/plain", 0)))
	assert.False(t, f(nil, candidate("a.txt", "text/plain", 101)))
}

func TestMinSize(t *testing.T) {
	f := domain.MinSize(1)

	assert.True(t, f(nil, candidate("a.txt", "text/plain", 1)))
	assert.False(t, f(nil, candidate("a.txt", "text/plain", 0)))
}

func TestContentTypes(t *testing.T) {
	f := domain.ContentTypes("image/jpeg", "image/png")

	assert.True(t, f(nil, candidate("a.png", "image/png", 10)))
	assert.True(t, f(nil, candidate("a.jpg", "IMAGE/JPEG", 10)))
	assert.True(t, f(nil, candidate("a.png", "image/png; charset=binary", 10)))
	assert.False(t, f(nil, candidate("a.pdf", "application/pdf", 10)))
	assert.False(t, f(nil, candidate("a.png", "", 10)))
}

func TestExtensions(t *testing.T) {
	f := domain.Extensions(".pdf", ".epub")

	assert.True(t, f(nil, candidate("book.pdf", "application/pdf", 10)))
	assert.True(t, f(nil, candidate("BOOK.PDF", "application/pdf", 10)))
	assert.True(t, f(nil, candidate("book.epub", "application/epub+zip", 10)))
	assert.False(t, f(nil, candidate("book.mobi", "application/octet-stream", 10)))
	assert.False(t, f(nil, candidate("book", "application/pdf", 10)))
}

func TestUniqueName_KeepsExtension(t *testing.T) {
	rename := domain.UniqueName()

	first, err := rename(nil, candidate("pic.png", "image/png", 10))
	require.NoError(t, err)
	second, err := rename(nil, candidate("pic.png", "image/png", 10))
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(first, ".png"))
	assert.True(t, strings.HasSuffix(second, ".png"))
	assert.NotEqual(t, first, second)
}

func TestFieldValueName(t *testing.T) {
	rename := domain.FieldValueName("book_name")
	sub := &domain.Submission{Values: map[string]string{"book_name": "dune"}}

	name, err := rename(sub, candidate("upload.epub", "application/epub+zip", 10))
	require.NoError(t, err)
	assert.Equal(t, "dune.epub", name)
}

func TestFieldValueName_MissingValue(t *testing.T) {
	rename := domain.FieldValueName("book_name")

	_, err := rename(&domain.Submission{}, candidate("upload.epub", "application/epub+zip", 10))
	assert.ErrorIs(t, err, domain.ErrMissingValue)
}
