package images

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/NoriFarm_Go/internal/clock"
	"github.com/osse101/NoriFarm_Go/internal/domain"
)

var (
	pngBytes  = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 32)...)
	jpegBytes = append([]byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}, make([]byte, 32)...)
	webpBytes = append([]byte("RIFF\x24\x00\x00\x00WEBPVP8 "), make([]byte, 32)...)
)

var fixedNow = time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)

func newStore(t *testing.T, maxSize int) (*LocalStore, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "uploads")
	s, err := NewLocalStore(dir, "/uploads/", maxSize, clock.NewSimulatedClock(fixedNow))
	require.NoError(t, err)
	return s, dir
}

func TestStore_Success(t *testing.T) {
	s, dir := newStore(t, 0)

	tests := []struct {
		name        string
		data        []byte
		contentType string
	}{
		{"png", pngBytes, "image/png"},
		{"jpeg", jpegBytes, "image/jpeg"},
		{"jpg alias", jpegBytes, "image/jpg"},
		{"webp", webpBytes, "image/webp"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := s.Store(context.Background(), tt.data, tt.contentType, tt.name+".img")
			require.NoError(t, err)

			assert.Regexp(t, `^crop_\d+_`, img.Filename)
			assert.Equal(t, "/uploads/"+img.Filename, img.ImageURL)
			assert.Equal(t, len(tt.data), img.Size)
			assert.Equal(t, tt.contentType, img.Type)

			written, err := os.ReadFile(filepath.Join(dir, img.Filename))
			require.NoError(t, err)
			assert.True(t, bytes.Equal(tt.data, written))
		})
	}
}

func TestStore_FilenameFormat(t *testing.T) {
	s, _ := newStore(t, 0)

	img, err := s.Store(context.Background(), pngBytes, "image/png", "my crop (1).png")
	require.NoError(t, err)
	assert.Equal(t, "crop_1748766600000_my_crop__1_.png", img.Filename)
	assert.Equal(t, "my crop (1).png", img.OriginalName)
}

func TestStore_NeverOverwrites(t *testing.T) {
	s, dir := newStore(t, 0)

	first, err := s.Store(context.Background(), pngBytes, "image/png", "a.png")
	require.NoError(t, err)
	second, err := s.Store(context.Background(), jpegBytes, "image/jpeg", "a.png")
	require.NoError(t, err)

	assert.NotEqual(t, first.Filename, second.Filename)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestStore_Rejections(t *testing.T) {
	s, dir := newStore(t, 64)

	tests := []struct {
		name        string
		data        []byte
		contentType string
		want        error
	}{
		{"gif declared", pngBytes, "image/gif", domain.ErrUnsupportedMedia},
		{"text declared", pngBytes, "text/plain", domain.ErrUnsupportedMedia},
		{"content is not an image", []byte("hello, this is plain text"), "image/png", domain.ErrUnsupportedMedia},
		{"too large", append(append([]byte{}, pngBytes...), make([]byte, 64)...), "image/png", domain.ErrPayloadTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Store(context.Background(), tt.data, tt.contentType, "x.png")
			assert.ErrorIs(t, err, tt.want)
		})
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_DefaultLimitIsFiveMiB(t *testing.T) {
	s, _ := newStore(t, 0)
	big := append(append([]byte{}, pngBytes...), make([]byte, domain.MaxImageSize)...)

	_, err := s.Store(context.Background(), big, "image/png", "big.png")
	assert.ErrorIs(t, err, domain.ErrPayloadTooLarge)
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "image", SanitizeName(""))
	assert.Equal(t, "tomato-2.jpg", SanitizeName("tomato-2.jpg"))
	assert.Equal(t, ".._.._etc_passwd", SanitizeName("../../etc/passwd"))
	assert.Equal(t, "__.png", SanitizeName("토마.png"))
}
