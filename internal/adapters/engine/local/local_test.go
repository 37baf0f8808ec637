package local_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ichinga-Samuel/fastfiles/internal/adapters/engine/local"
	"github.com/Ichinga-Samuel/fastfiles/internal/config"
	"github.com/Ichinga-Samuel/fastfiles/internal/core/domain"
)

func TestEngine_Put_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	e := local.New(config.LocalConfig{}, nil)

	content := "the quick brown fox"
	record := e.Put(context.Background(), &domain.StoreRequest{
		Name:        "fox.txt",
		Destination: filepath.Join(dir, "uploads", "animals"),
		ContentType: "text/plain",
		Size:        int64(len(content)),
		Body:        strings.NewReader(content),
	})

	require.True(t, record.Succeeded, record.Error)
	assert.Equal(t, "fox.txt", record.Filename)
	assert.Equal(t, uint64(len(content)), record.SizeBytes)
	assert.Empty(t, record.Error)
	assert.Empty(t, record.PublicURL)
	assert.Empty(t, record.InlineBytes)

	stored, err := os.ReadFile(record.StoredPath)
	require.NoError(t, err)
	assert.Equal(t, content, string(stored))
}

func TestEngine_Put_CreatesNestedDirectories(t *testing.T) {
	dir := t.TempDir()
	e := local.New(config.LocalConfig{}, nil)
	dest := filepath.Join(dir, "a", "b", "c")

	record := e.Put(context.Background(), &domain.StoreRequest{
		Name:        "deep.txt",
		Destination: dest,
		Body:        strings.NewReader("x"),
	})

	require.True(t, record.Succeeded)
	assert.Equal(t, filepath.Join(dest, "deep.txt"), record.StoredPath)

	// A second upload to the same destination reuses the directories.
	record = e.Put(context.Background(), &domain.StoreRequest{
		Name:        "deep2.txt",
		Destination: dest,
		Body:        strings.NewReader("y"),
	})
	assert.True(t, record.Succeeded)
}

func TestEngine_Put_DefaultRoot(t *testing.T) {
	dir := t.TempDir()
	e := local.New(config.LocalConfig{Root: filepath.Join(dir, "fallback")}, nil)

	record := e.Put(context.Background(), &domain.StoreRequest{
		Name: "orphan.txt",
		Body: strings.NewReader("x"),
	})

	require.True(t, record.Succeeded)
	assert.Equal(t, filepath.Join(dir, "fallback", "orphan.txt"), record.StoredPath)
}

func TestEngine_Put_DestinationBlockedByFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	e := local.New(config.LocalConfig{}, nil)
	record := e.Put(context.Background(), &domain.StoreRequest{
		Name:        "f.txt",
		Destination: blocker,
		Body:        strings.NewReader("x"),
	})

	assert.False(t, record.Succeeded)
	assert.NotEmpty(t, record.Error)
	assert.Empty(t, record.StoredPath)
}

func TestEngine_Put_CancelledContext(t *testing.T) {
	e := local.New(config.LocalConfig{}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	record := e.Put(ctx, &domain.StoreRequest{
		Name:        "f.txt",
		Destination: t.TempDir(),
		Body:        strings.NewReader("x"),
	})

	assert.False(t, record.Succeeded)
	assert.Contains(t, record.Error, "context canceled")
}
