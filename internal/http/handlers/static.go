package handlers

import (
	"errors"
	"io"
	"io/fs"
	"log"
	"net/http"
	"path"
	"strings"
)

// StaticHandler serves the HTML frontend and its assets from a directory.
type StaticHandler struct {
	root fs.FS
}

// NewStaticHandler creates a handler serving files from root.
func NewStaticHandler(root fs.FS) *StaticHandler {
	return &StaticHandler{root: root}
}

// Register must run after the API routes; "GET /" only catches paths no
// other pattern claims.
func (h *StaticHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.handleIndex)
	mux.HandleFunc("GET /", h.handleFile)
}

func (h *StaticHandler) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "index.html")
}

func (h *StaticHandler) handleFile(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(path.Clean(r.URL.Path), "/")
	if name == "" || strings.HasSuffix(r.URL.Path, "/") {
		http.NotFound(w, r)
		return
	}
	h.serve(w, r, name)
}

func (h *StaticHandler) serve(w http.ResponseWriter, r *http.Request, name string) {
	if !fs.ValidPath(name) {
		http.NotFound(w, r)
		return
	}
	f, err := h.root.Open(name)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("static: open %s: %v", name, err)
		}
		http.Error(w, "page not found", http.StatusNotFound)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		http.Error(w, "page not found", http.StatusNotFound)
		return
	}
	rs, ok := f.(io.ReadSeeker)
	if !ok {
		http.Error(w, "page not found", http.StatusNotFound)
		return
	}
	http.ServeContent(w, r, info.Name(), info.ModTime(), rs)
}
