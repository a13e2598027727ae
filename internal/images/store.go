package images

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/osse101/NoriFarm_Go/internal/clock"
	"github.com/osse101/NoriFarm_Go/internal/domain"
	"github.com/osse101/NoriFarm_Go/internal/logger"
)

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// Store persists uploaded crop images
type Store interface {
	Store(ctx context.Context, data []byte, contentType, originalName string) (*domain.StoredImage, error)
}

// LocalStore writes images to a directory served under baseURL
type LocalStore struct {
	dir     string
	baseURL string
	maxSize int
	clock   clock.Clock
}

// NewLocalStore creates the upload directory if needed. maxSize <= 0 uses domain.MaxImageSize.
func NewLocalStore(dir, baseURL string, maxSize int, clk clock.Clock) (*LocalStore, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", dir, err)
	}
	if maxSize <= 0 {
		maxSize = domain.MaxImageSize
	}
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &LocalStore{
		dir:     dir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		maxSize: maxSize,
		clock:   clk,
	}, nil
}

// SanitizeName replaces every character outside [a-zA-Z0-9.-] with '_'
func SanitizeName(name string) string {
	if name == "" {
		return defaultOriginalName
	}
	return unsafeNameChars.ReplaceAllString(name, "_")
}

// Store validates the declared type, the size and the sniffed content,
// then writes the file without overwriting existing uploads.
func (s *LocalStore) Store(ctx context.Context, data []byte, contentType, originalName string) (*domain.StoredImage, error) {
	log := logger.FromContext(ctx)

	if err := s.check(data, contentType); err != nil {
		log.Warn(LogMsgImageRejected, "original_name", originalName, "type", contentType, "size", len(data), "error", err)
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := SanitizeName(originalName)
	ts := s.clock.Now().UnixMilli()

	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		filename := domain.ImageFilenamePrefix + strconv.FormatInt(ts+int64(attempt), 10) + "_" + name
		err := writeExclusive(filepath.Join(s.dir, filename), data)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: failed to write image %s: %w", domain.ErrPersistence, filename, err)
		}

		img := &domain.StoredImage{
			ImageURL:     s.baseURL + "/" + filename,
			Filename:     filename,
			OriginalName: originalName,
			Size:         len(data),
			Type:         contentType,
		}
		log.Info(LogMsgImageStored, "filename", filename, "size", len(data))
		return img, nil
	}
	return nil, fmt.Errorf("%w: could not allocate a unique name for %s", domain.ErrPersistence, name)
}

func (s *LocalStore) check(data []byte, contentType string) error {
	if !domain.AllowedImageTypes[strings.ToLower(contentType)] {
		return fmt.Errorf("%w: %s is not allowed, use JPEG, PNG or WebP", domain.ErrUnsupportedMedia, contentType)
	}
	if len(data) > s.maxSize {
		return fmt.Errorf("%w: %d bytes exceeds the %d byte limit", domain.ErrPayloadTooLarge, len(data), s.maxSize)
	}
	detected := mimetype.Detect(data)
	if !domain.AllowedImageTypes[detected.String()] {
		return fmt.Errorf("%w: content looks like %s", domain.ErrUnsupportedMedia, detected.String())
	}
	return nil
}

func writeExclusive(name string, data []byte) (err error) {
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(name)
		}
	}()
	_, err = f.Write(data)
	return err
}
