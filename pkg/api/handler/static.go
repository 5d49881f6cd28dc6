package handler

import (
	"net/http"
	"os"
	"path/filepath"

	"levantd/pkg/api/response"
)

type static struct {
	dir    string
	writer response.JSONResponseWriter
}

func NewStatic(dir string) *static {
	return &static{dir: dir}
}

func (s *static) Index(w http.ResponseWriter, r *http.Request) {
	s.serve(w, r, "index.html")
}

func (s *static) Logo(w http.ResponseWriter, r *http.Request) {
	s.serve(w, r, "logo.png")
}

func (s *static) serve(w http.ResponseWriter, r *http.Request, name string) {
	path := filepath.Join(s.dir, name)
	if _, err := os.Stat(path); err != nil {
		s.writer.WriteErrorResponse(w, http.StatusNotFound, name+" not found")
		return
	}
	http.ServeFile(w, r, path)
}
