package services

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Rambadrinathan/vatika-studio/config"
	"github.com/Rambadrinathan/vatika-studio/genimage"

	"github.com/google/uuid"
)

// RenderStore writes generated render images to the renders directory, which
// the server exposes under /renders/. It fills the role the original hosted
// object storage played: the design row only keeps the public URL.
type RenderStore struct {
	dir string
}

func NewRenderStore() *RenderStore {
	return &RenderStore{dir: config.GetEnv("RENDERS_DIR", "data/renders")}
}

// Put decodes a data-URI render and stores it under a per-user path, returning
// the public URL to record on the design row.
func (r *RenderStore) Put(userID uint, budget int, spaceType, dataURI string) (string, error) {
	img, err := genimage.ParseDataURI(dataURI)
	if err != nil {
		return "", fmt.Errorf("invalid render image: %w", err)
	}

	raw, err := base64.StdEncoding.DecodeString(img.Data)
	if err != nil {
		return "", fmt.Errorf("failed to decode render image: %w", err)
	}

	name := fmt.Sprintf("%s-%d-%s%s", spaceType, budget, uuid.NewString(), extFor(img.MimeType))
	rel := filepath.Join(fmt.Sprintf("%d", userID), name)

	full := filepath.Join(r.dir, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("failed to create renders dir: %w", err)
	}
	if err := os.WriteFile(full, raw, 0o644); err != nil {
		return "", fmt.Errorf("failed to write render image: %w", err)
	}

	return "/renders/" + filepath.ToSlash(rel), nil
}

// Dir returns the on-disk root the HTTP layer should serve as /renders/.
func (r *RenderStore) Dir() string {
	return r.dir
}

func extFor(mimeType string) string {
	switch {
	case strings.Contains(mimeType, "png"):
		return ".png"
	case strings.Contains(mimeType, "webp"):
		return ".webp"
	default:
		return ".jpg"
	}
}
