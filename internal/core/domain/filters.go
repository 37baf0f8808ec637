package domain

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxSize accepts candidates whose declared size is at most n bytes.
func MaxSize(n int64) Filter {
	return func(_ *Submission, c *Candidate) bool {
		return c.Size <= n
	}
}

// MinSize accepts candidates whose declared size is at least n bytes. Use
// MinSize(1) to reject empty files.
func MinSize(n int64) Filter {
	return func(_ *Submission, c *Candidate) bool {
		return c.Size >= n
	}
}

// ContentTypes accepts candidates whose declared media type matches one of
// types. Parameters such as charset are ignored.
func ContentTypes(types ...string) Filter {
	return func(_ *Submission, c *Candidate) bool {
		mediaType, _, err := mime.ParseMediaType(c.ContentType)
		if err != nil {
			return false
		}
		for _, t := range types {
			if strings.EqualFold(mediaType, t) {
				return true
			}
		}
		return false
	}
}

// Extensions accepts candidates whose filename carries one of the given
// extensions (leading dot included, case-insensitive).
func Extensions(exts ...string) Filter {
	return func(_ *Submission, c *Candidate) bool {
		ext := strings.ToLower(filepath.Ext(c.Filename))
		if ext == "" {
			return false
		}
		for _, allowed := range exts {
			if ext == strings.ToLower(allowed) {
				return true
			}
		}
		return false
	}
}

// UniqueName renames each candidate to a fresh UUID, keeping the original
// extension.
func UniqueName() RenameFunc {
	return func(_ *Submission, c *Candidate) (string, error) {
		return uuid.NewString() + filepath.Ext(c.Filename), nil
	}
}

// FieldValueName renames each candidate after the submitted value of a
// sibling form field, keeping the original extension. Renaming fails when the
// field was not submitted.
func FieldValueName(field string) RenameFunc {
	return func(s *Submission, c *Candidate) (string, error) {
		value := s.Value(field)
		if value == "" {
			return "", fmt.Errorf("%w: %s", ErrMissingValue, field)
		}
		return value + filepath.Ext(c.Filename), nil
	}
}
