package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/deepnoodle-ai/betaheaders/config"
	"github.com/deepnoodle-ai/betaheaders/log"
	"github.com/deepnoodle-ai/betaheaders/providers/anthropic"
	"github.com/deepnoodle-ai/wonton/cli"
	"github.com/fsnotify/fsnotify"
)

func registerWatchCommand(app *cli.App) {
	app.Command("watch").
		Description("Re-negotiate the beta header whenever tool files change").
		Long("Watches the files matched by --tools and prints the anthropic-beta header each time "+
			"a change alters it. Configured features are included in every negotiation.").
		NoArgs().
		Flags(
			cli.Strings("tools", "t").Help("Tool file path or doublestar glob. Can be specified multiple times"),
			cli.Int("debounce", "").Default(250).Help("Minimum milliseconds between reactions to the same file"),
		).
		Run(func(ctx *cli.Context) error {
			env, err := loadEnvironment(ctx, nil)
			if err != nil {
				return cli.Errorf("%v", err)
			}
			watcher, err := NewFileWatcher(WatchOptions{
				Patterns: ctx.Strings("tools"),
				Debounce: time.Duration(ctx.Int("debounce")) * time.Millisecond,
				Base:     env.config.HeaderOptions(),
				Out:      os.Stdout,
			})
			if err != nil {
				return cli.Errorf("%v", err)
			}

			goCtx, stop := signal.NotifyContext(env.withLogger(context.Background()), os.Interrupt)
			defer stop()
			return watcher.Start(goCtx)
		})
}

// WatchOptions configure a FileWatcher.
type WatchOptions struct {
	Patterns []string
	Debounce time.Duration
	// Base options are combined with the tools on every negotiation.
	Base anthropic.HeaderOptions
	Out  io.Writer
	// Logger defaults to the logger carried by the context passed to Start.
	Logger log.Logger
}

// FileWatcher re-negotiates the beta header when tool files change.
type FileWatcher struct {
	options   WatchOptions
	watcher   *fsnotify.Watcher
	logger    log.Logger
	debouncer map[string]time.Time
	last      string
	started   bool
}

// NewFileWatcher creates a new file watcher instance.
func NewFileWatcher(options WatchOptions) (*FileWatcher, error) {
	if len(options.Patterns) == 0 {
		return nil, fmt.Errorf("no tool patterns provided")
	}
	if options.Out == nil {
		options.Out = io.Discard
	}
	logger := options.Logger
	if logger == nil {
		logger = log.NewNullLogger()
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	return &FileWatcher{
		options:   options,
		watcher:   watcher,
		logger:    logger,
		debouncer: make(map[string]time.Time),
	}, nil
}

// Start prints the current header and then watches for changes until the
// context is canceled.
func (fw *FileWatcher) Start(ctx context.Context) error {
	defer fw.watcher.Close()
	if fw.options.Logger == nil {
		fw.logger = log.Ctx(ctx)
	}

	if err := fw.addWatchPaths(); err != nil {
		return fmt.Errorf("failed to add watch paths: %w", err)
	}

	fmt.Fprintln(fw.options.Out, boldStyle.Sprint("Watching ", strings.Join(fw.options.Patterns, ", ")))
	fw.negotiate()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			fw.handleFileEvent(event)
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			fw.logger.Error("file watcher error", "error", err)
		}
	}
}

// addWatchPaths watches the directory of every match plus the static base
// directory of every pattern, so newly created files are noticed.
func (fw *FileWatcher) addWatchPaths() error {
	watchedDirs := make(map[string]bool)
	watch := func(dir string) {
		if dir == "" {
			dir = "."
		}
		if watchedDirs[dir] {
			return
		}
		if err := fw.watcher.Add(dir); err != nil {
			fw.logger.Warn("failed to watch directory", "dir", dir, "error", err)
			return
		}
		fw.logger.Debug("watching directory", "dir", dir)
		watchedDirs[dir] = true
	}

	for _, pattern := range fw.options.Patterns {
		base, _ := doublestar.SplitPattern(filepath.ToSlash(pattern))
		if info, err := os.Stat(filepath.FromSlash(base)); err == nil && info.IsDir() {
			watch(filepath.FromSlash(base))
		}
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		for _, match := range matches {
			watch(filepath.Dir(match))
		}
	}

	if len(watchedDirs) == 0 {
		return fmt.Errorf("no directories found to watch for patterns: %s", strings.Join(fw.options.Patterns, ", "))
	}
	return nil
}

// handleFileEvent re-negotiates when a matching file is written, created,
// removed or renamed, at most once per debounce window per file.
func (fw *FileWatcher) handleFileEvent(event fsnotify.Event) {
	if !fw.matchesPatterns(event.Name) {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}

	now := time.Now()
	if lastTime, exists := fw.debouncer[event.Name]; exists {
		if now.Sub(lastTime) < fw.options.Debounce {
			return
		}
	}
	fw.debouncer[event.Name] = now

	fw.logger.Debug("tool file changed", "file", event.Name, "op", event.Op.String())
	fw.negotiate()
}

func (fw *FileWatcher) matchesPatterns(filePath string) bool {
	for _, pattern := range fw.options.Patterns {
		if filepath.Clean(pattern) == filepath.Clean(filePath) {
			return true
		}
		if matched, _ := doublestar.PathMatch(pattern, filePath); matched {
			return true
		}
	}
	return false
}

// negotiate reloads the tools and prints the beta header if it changed
// since the last negotiation. It returns the current header value.
func (fw *FileWatcher) negotiate() string {
	tools, err := config.LoadTools(fw.options.Patterns...)
	if err != nil {
		fw.logger.Warn("failed to load tools", "error", err)
		printError(fw.options.Out, "error: %v", err)
		return fw.last
	}
	opts := fw.options.Base.Union(anthropic.HeaderOptions{
		ComputerUse: anthropic.ResolveComputerUse(tools),
	})
	header := opts.BetaHeader()
	if fw.started && header == fw.last {
		return header
	}
	fw.started = true
	fw.last = header

	stamp := mutedStyle.Sprint(time.Now().Format(time.Kitchen))
	if header == "" {
		fmt.Fprintf(fw.options.Out, "%s %s\n", stamp, mutedStyle.Sprint("no beta header"))
	} else {
		fmt.Fprintf(fw.options.Out, "%s %s: %s\n", stamp, anthropic.HeaderBeta, successStyle.Sprint(header))
	}
	return header
}
