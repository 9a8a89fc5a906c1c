package workspace

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/tliron/commonlog"
)

var watchLog = commonlog.GetLogger("gobble.watch")

// FileWatcher re-parses files of a Workspace when they change on disk.
// Editors often save by renaming a new file over the old one, so watch
// directories rather than single files and narrow with Filter.
type FileWatcher struct {
	workspace *Workspace
	watcher   *fsnotify.Watcher
	stopCh    chan struct{}
	done      chan struct{}

	// Filter selects the paths to track. The default is IsJSON.
	Filter func(path string) bool
	// OnUpdate is called after a file was parsed again.
	OnUpdate func(doc *Document)
	// OnRemove is called after a file disappeared.
	OnRemove func(path string)
}

func NewFileWatcher(ws *Workspace) (*FileWatcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &FileWatcher{
		workspace: ws,
		watcher:   fw,
		stopCh:    make(chan struct{}),
		done:      make(chan struct{}),
		Filter:    IsJSON,
	}, nil
}

// Add starts watching dir.
func (w *FileWatcher) Add(dir string) error {
	return w.watcher.Add(dir)
}

func (w *FileWatcher) Start() {
	go w.run()
}

// Stop ends the watch loop and waits for it to return.
func (w *FileWatcher) Stop() error {
	close(w.stopCh)
	err := w.watcher.Close()
	<-w.done
	return err
}

func (w *FileWatcher) run() {
	defer close(w.done)
	for {
		select {
		case <-w.stopCh:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			watchLog.Errorf("watch: %s", err)
		}
	}
}

func (w *FileWatcher) handle(ev fsnotify.Event) {
	path := filepath.Clean(ev.Name)
	if w.Filter != nil && !w.Filter(path) {
		return
	}
	watchLog.Debugf("%s: %s", ev.Op, path)

	switch {
	case ev.Op&(fsnotify.Create|fsnotify.Write) != 0:
		doc, err := w.workspace.ScanFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				w.remove(path)
			}
			return
		}
		if w.OnUpdate != nil {
			w.OnUpdate(doc)
		}
	case ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
		w.remove(path)
	}
}

func (w *FileWatcher) remove(path string) {
	w.workspace.RemoveFile(path)
	if w.OnRemove != nil {
		w.OnRemove(path)
	}
}
