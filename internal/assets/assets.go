package assets

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// Root is the URL prefix every listing asset lives under.
	Root = "assets"
	// PlaceholderImage stands in for a property without photos.
	PlaceholderImage = "placeholder.jpg"

	thumbPrefix = "thumb-"
	thumbExt    = ".jpg"
)

// ErrUnmappedID is returned when a slug has no entry in a folder table.
var ErrUnmappedID = errors.New("assets: id not present in folder map")

// Table names used in error messages.
const (
	TableImages     = "images"
	TableThumbnails = "thumbnails"
)

// FolderMap translates property slugs into the literal folder names used on
// disk. Image folders are human-readable addresses; thumbnail folders follow a
// slug convention and cannot be derived from the image names.
type FolderMap struct {
	Images     map[string]string `yaml:"images"`
	Thumbnails map[string]string `yaml:"thumbnails"`
}

// Load reads a YAML folder map from path.
func Load(path string) (*FolderMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: open folder map: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a YAML folder map.
func Parse(r io.Reader) (*FolderMap, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var m FolderMap
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("assets: decode folder map: %w", err)
	}
	if m.Images == nil {
		m.Images = map[string]string{}
	}
	if m.Thumbnails == nil {
		m.Thumbnails = map[string]string{}
	}
	return &m, nil
}

// Check verifies id resolves in both tables. The returned error wraps
// ErrUnmappedID once per missing table.
func (m *FolderMap) Check(id string) error {
	var errs []error
	if _, err := m.folder(TableImages, id); err != nil {
		errs = append(errs, err)
	}
	if _, err := m.folder(TableThumbnails, id); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Validate checks every id and reports all that fail to resolve.
func (m *FolderMap) Validate(ids []string) error {
	var errs []error
	for _, id := range ids {
		if err := m.Check(id); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// PlaceholderPath is the image shown for a property without photos.
func PlaceholderPath() string {
	return path.Join(Root, "images", PlaceholderImage)
}

// ImagePath returns the full-size image URL path for a property image.
func (m *FolderMap) ImagePath(id, name string) (string, error) {
	folder, err := m.folder(TableImages, id)
	if err != nil {
		return "", err
	}
	return path.Join(Root, "images", encodeComponent(folder), url.PathEscape(name)), nil
}

// ThumbnailPath returns the pre-generated thumbnail for a property image.
// Thumbnails are always JPEG, so .jpg, .jpeg and .png sources map to .jpg.
func (m *FolderMap) ThumbnailPath(id, name string) (string, error) {
	folder, err := m.folder(TableThumbnails, id)
	if err != nil {
		return "", err
	}
	return path.Join(Root, "thumbnails", url.PathEscape(folder), thumbPrefix+url.PathEscape(ThumbnailName(name))), nil
}

// VideoPath returns the URL path of a walkthrough video.
func VideoPath(name string) string {
	return path.Join(Root, "videos", url.PathEscape(name))
}

// ThumbnailName normalises a source image name to its thumbnail file name.
func ThumbnailName(name string) string {
	ext := path.Ext(name)
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg", ".png":
		return strings.TrimSuffix(name, ext) + thumbExt
	}
	return name
}

func (m *FolderMap) folder(table, id string) (string, error) {
	var tbl map[string]string
	if m != nil {
		switch table {
		case TableImages:
			tbl = m.Images
		case TableThumbnails:
			tbl = m.Thumbnails
		}
	}
	folder, ok := tbl[id]
	if !ok || strings.TrimSpace(folder) == "" {
		return "", fmt.Errorf("%w: %q missing from %s table", ErrUnmappedID, id, table)
	}
	return folder, nil
}

// encodeComponent escapes s the way browsers encode a URI component: only
// letters, digits and -_.!~*'() survive unescaped.
func encodeComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&15])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}
