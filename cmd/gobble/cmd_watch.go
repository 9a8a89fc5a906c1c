package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dhamidi/gobble/workspace"
)

func newWatchCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file|dir>",
		Short: "Check JSON files again every time they change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve %s: %w", args[0], err)
			}
			info, err := os.Stat(target)
			if err != nil {
				return fmt.Errorf("watch: %w", err)
			}

			dir := target
			filter := workspace.IsJSON
			if !info.IsDir() {
				dir = filepath.Dir(target)
				filter = func(path string) bool { return path == target }
			}

			p := newPrinter(cmd.OutOrStdout(), g.cfg.Color)
			ws := workspace.New(dir)
			if info.IsDir() {
				if err := ws.ScanAll(); err != nil {
					return fmt.Errorf("scan %s: %w", dir, err)
				}
			} else if _, err := ws.ScanFile(target); err != nil {
				return fmt.Errorf("read %s: %w", target, err)
			}
			for _, path := range ws.Paths() {
				report(p, ws.GetFile(path))
			}

			watcher, err := workspace.NewFileWatcher(ws)
			if err != nil {
				return fmt.Errorf("start watcher: %w", err)
			}
			watcher.Filter = filter
			watcher.OnUpdate = func(doc *workspace.Document) { report(p, doc) }
			watcher.OnRemove = func(path string) { fmt.Fprintf(p.w, "removed %s\n", path) }
			if err := watcher.Add(dir); err != nil {
				return fmt.Errorf("watch %s: %w", dir, err)
			}
			watcher.Start()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			<-ctx.Done()
			return watcher.Stop()
		},
	}
}

func report(p *printer, doc *workspace.Document) {
	if doc.Err != nil {
		p.Diagnostic(doc.Path, string(doc.Content), doc.Err)
		return
	}
	p.OK(doc.Path)
}
