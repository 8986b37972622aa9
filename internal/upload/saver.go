// stellar-backend | 2026
// saver.go

package upload

import (
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/astralhq/stellar-backend/internal/config"
	"github.com/astralhq/stellar-backend/internal/core"
)

var allowedExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
}

// Saver stores uploaded catalog images on local disk. Files are renamed to
// <field>-<millis>-<random><ext> so concurrent uploads never collide.
type Saver struct {
	dir     string
	maxSize int64
	public  string
}

func NewSaver(cfg config.UploadsConfig) (*Saver, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &Saver{
		dir:     cfg.Dir,
		maxSize: cfg.MaxSizeBytes(),
		public:  strings.Trim(cfg.PublicPath, "/"),
	}, nil
}

// Save reads the named multipart file field from the request and writes it to
// disk, returning the relative path to store on the resource. A missing field
// returns ("", nil) so update endpoints can keep the stored image; create
// endpoints reject the empty path through request validation.
func (s *Saver) Save(r *http.Request, field string) (string, error) {
	if err := r.ParseMultipartForm(s.maxSize); err != nil {
		return "", core.ValidationError("Invalid form data")
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return "", nil
		}
		return "", core.ValidationError("Invalid form data")
	}
	defer file.Close()

	if header.Size > s.maxSize {
		return "", core.ValidationError(
			fmt.Sprintf("File is too large. Max size is %d bytes", s.maxSize))
	}

	// Both the extension and the declared content type must look like an
	// image; either alone is trivially spoofed.
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		return "", core.ValidationError("You can only upload image files")
	}
	if !allowedMimeTypes[strings.ToLower(header.Header.Get("Content-Type"))] {
		return "", core.ValidationError("You can only upload image files")
	}

	name := fmt.Sprintf("%s-%d-%d%s", field, time.Now().UnixMilli(), rand.Int63n(1_000_000_000), ext)

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(file, s.maxSize)); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return s.public + "/" + name, nil
}
