package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
)

// Files larger than this (walkthrough videos) get a size/mtime ETag instead
// of a content hash.
const hashLimit = 8 << 20

// Cache policies. Listing media never changes under a given name; site
// scripts and styles do, so browsers revalidate them against the ETag.
const (
	cacheMedia = "public, max-age=604800, stale-while-revalidate=86400"
	cacheSite  = "public, no-cache"
)

type assetServer struct {
	etags map[string]string
	files http.Handler
}

// AssetsWithCache serves dir with Cache-Control, Vary, and ETag handling.
// Mount it behind http.StripPrefix so r.URL.Path is relative to dir.
// ETags are computed once, at construction.
func AssetsWithCache(dir string) http.Handler {
	s := &assetServer{
		etags: map[string]string{},
		files: http.FileServer(http.Dir(dir)),
	}
	_ = filepath.Walk(dir, func(p string, info os.FileInfo, err error) error {
		if err != nil || info == nil || info.IsDir() {
			return nil
		}
		et, err := fileETag(p, info)
		if err != nil {
			return nil
		}
		if rel, err := filepath.Rel(dir, p); err == nil {
			s.etags["/"+filepath.ToSlash(rel)] = et
		}
		return nil
	})
	return s
}

func (s *assetServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h := w.Header()
	h.Set("Vary", "Accept-Encoding")
	h.Set("Cache-Control", cachePolicy(r.URL.Path))
	if et := s.etags[r.URL.Path]; et != "" {
		h.Set("ETag", et)
		if inm := r.Header.Get("If-None-Match"); inm != "" && inm == et {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}
	s.files.ServeHTTP(w, r)
}

func cachePolicy(urlPath string) string {
	switch path.Ext(urlPath) {
	case ".js", ".css":
		return cacheSite
	}
	return cacheMedia
}

func fileETag(p string, info os.FileInfo) (string, error) {
	if info.Size() > hashLimit {
		return fmt.Sprintf(`W/"%x-%x"`, info.ModTime().UnixNano(), info.Size()), nil
	}
	f, err := os.Open(p)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return `W/"` + hex.EncodeToString(h.Sum(nil)) + `"`, nil
}
