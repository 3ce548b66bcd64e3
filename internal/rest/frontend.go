package rest

import (
	"net/http"
	"os"
	"path/filepath"
)

// FrontendHandler serves the compiled single-page frontend from a directory,
// falling back to the index file for client-side routes.
type FrontendHandler struct {
	dir   string
	index string
}

func NewFrontendHandler(dir, index string) *FrontendHandler {
	return &FrontendHandler{dir: dir, index: index}
}

func (h *FrontendHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(h.dir, filepath.Clean("/"+r.URL.Path))

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		http.ServeFile(w, r, filepath.Join(h.dir, h.index))
		return
	}

	http.FileServer(http.Dir(h.dir)).ServeHTTP(w, r)
}
