// Package workspace keeps parsed JSON documents in memory and keeps them
// current as files change on disk or in an editor.
package workspace

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/tliron/commonlog"

	gjson "github.com/dhamidi/gobble/grammar/json"
	"github.com/dhamidi/gobble/parse"
)

var scanLog = commonlog.GetLogger("gobble.workspace")

type Workspace struct {
	mu      sync.RWMutex
	rootDir string
	files   map[string]*Document
}

// Document is the latest content of a file and the result of parsing it.
// Exactly one of Value and Err is set.
type Document struct {
	Path    string
	Content []byte
	Value   gjson.Value
	Err     *parse.Error
}

// Analyze parses content as a JSON document.
func Analyze(path string, content []byte) *Document {
	doc := &Document{Path: path, Content: content}
	v, err := gjson.Parse(string(content))
	if err != nil {
		var perr *parse.Error
		if errors.As(err, &perr) {
			doc.Err = perr
		}
		return doc
	}
	doc.Value = v
	return doc
}

func New(rootDir string) *Workspace {
	return &Workspace{
		rootDir: rootDir,
		files:   make(map[string]*Document),
	}
}

func (w *Workspace) RootDir() string {
	return w.rootDir
}

// IsJSON reports whether path names a file the workspace tracks.
func IsJSON(path string) bool {
	return filepath.Ext(path) == ".json"
}

// ScanAll parses every JSON file below the root directory, skipping
// hidden directories.
func (w *Workspace) ScanAll() error {
	return filepath.Walk(w.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			scanLog.Warningf("skipping %s: %s", path, err)
			return nil
		}
		if info.IsDir() {
			if path != w.rootDir && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if IsJSON(path) {
			if _, err := w.ScanFile(path); err != nil {
				scanLog.Errorf("read %s: %s", path, err)
			}
		}
		return nil
	})
}

func (w *Workspace) ScanFile(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return w.UpdateFile(path, content), nil
}

func (w *Workspace) UpdateFile(path string, content []byte) *Document {
	doc := Analyze(path, content)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.files[path] = doc
	return doc
}

func (w *Workspace) GetFile(path string) *Document {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.files[path]
}

func (w *Workspace) RemoveFile(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.files, path)
}

// Paths returns the tracked paths in sorted order.
func (w *Workspace) Paths() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	paths := make([]string, 0, len(w.files))
	for p := range w.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Invalid returns the documents that failed to parse, sorted by path.
func (w *Workspace) Invalid() []*Document {
	var docs []*Document
	for _, p := range w.Paths() {
		if doc := w.GetFile(p); doc != nil && doc.Err != nil {
			docs = append(docs, doc)
		}
	}
	return docs
}
