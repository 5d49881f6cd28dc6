package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"

	"levantd/pkg/api/response"
)

// audioExts lists the audio formats the editor's music player handles.
var audioExts = map[string]bool{".mp3": true, ".wav": true, ".ogg": true}

type music struct {
	dir    string
	writer response.JSONResponseWriter
}

func NewMusic(dir string) *music {
	return &music{dir: dir}
}

// List returns the bundled audio files. A missing sounds directory is
// normal and yields an empty list, the front-end falls back to defaults.
func (m *music) List(w http.ResponseWriter, r *http.Request) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		m.writer.WriteSuccessResponse(w, map[string][]string{"files": {}})
		return
	}

	files := lo.FilterMap(entries, func(entry os.DirEntry, _ int) (string, bool) {
		return entry.Name(), audioExts[strings.ToLower(filepath.Ext(entry.Name()))]
	})
	sort.Strings(files)

	m.writer.WriteSuccessResponse(w, map[string][]string{"files": files})
}
