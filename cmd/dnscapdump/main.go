// Copyright (c) 2024 Elisamuel Resto Donate <sam@samresto.dev>
// SPDX-License-Identifier: MIT

// Command dnscapdump watches a directory of captured DNS message files
// (".dns" files holding raw wire bytes, such as a tcpdump payload slice)
// and logs each message it can parse as it appears or changes. It is a
// thin diagnostic wrapper around the dnswire codec: it never resolves
// names, answers queries, or manages zone data.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"dnswire/config"
	"dnswire/dnswire"
	"dnswire/telemetry"
)

// multiLevelHandler routes ERROR logs to stderr, everything else to
// stdout.
type multiLevelHandler struct {
	infoHandler  slog.Handler
	errorHandler slog.Handler
}

func (h *multiLevelHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= slog.LevelInfo
}

func (h *multiLevelHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelError {
		return h.errorHandler.Handle(ctx, r)
	}
	return h.infoHandler.Handle(ctx, r)
}

func (h *multiLevelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &multiLevelHandler{
		infoHandler:  h.infoHandler.WithAttrs(attrs),
		errorHandler: h.errorHandler.WithAttrs(attrs),
	}
}

func (h *multiLevelHandler) WithGroup(name string) slog.Handler {
	return &multiLevelHandler{
		infoHandler:  h.infoHandler.WithGroup(name),
		errorHandler: h.errorHandler.WithGroup(name),
	}
}

func main() {
	handler := &multiLevelHandler{
		infoHandler:  slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		errorHandler: slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}),
	}
	slog.SetDefault(slog.New(handler))

	var (
		dir         = flag.String("dir", "", "directory of captured .dns message files to watch")
		once        = flag.Bool("once", false, "parse existing files once and exit, no watch")
		metricsAddr = flag.String("metrics", "", "bind address for a /metrics endpoint (e.g. :9153)")
		limitsFile  = flag.String("limits", "", "YAML file overriding the codec's default name/pointer limits")
	)
	flag.Parse()

	if *dir == "" {
		fmt.Fprintln(os.Stderr, "usage: dnscapdump -dir <path> [-once] [-metrics addr] [-limits file.yaml]")
		os.Exit(1)
	}

	limits := dnswire.DefaultLimits()
	if *limitsFile != "" {
		l, err := config.LoadLimits(*limitsFile)
		if err != nil {
			slog.Error("failed to load limits", "error", err)
			os.Exit(1)
		}
		limits = l
	}
	dec := dnswire.NewDecoder(limits)

	metrics, err := telemetry.New("", *metricsAddr)
	if err != nil {
		slog.Error("failed to initialize telemetry", "error", err)
		os.Exit(1)
	}

	d := &dumper{dec: dec, metrics: metrics}

	entries, err := os.ReadDir(*dir)
	if err != nil {
		slog.Error("failed to read capture directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".dns" {
			continue
		}
		d.dump(filepath.Join(*dir, e.Name()))
	}

	if *once {
		return
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Error("failed to create watcher", "error", err)
		os.Exit(1)
	}
	defer watcher.Close()

	if err := watcher.Add(*dir); err != nil {
		slog.Error("failed to watch capture directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	slog.Info("watching capture directory", "dir", *dir)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go d.watchLoop(ctx, watcher, *dir)

	<-ctx.Done()
	if metrics != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := metrics.Shutdown(shutdownCtx); err != nil {
			slog.Warn("telemetry shutdown error", "error", err)
		}
	}
}

// dumper parses and logs capture files, debouncing repeated fsnotify
// events for the same path so a single write doesn't get re-parsed
// mid-flush.
type dumper struct {
	dec     *dnswire.Decoder
	metrics *telemetry.Metrics

	mu      sync.Mutex
	timers  map[string]*time.Timer
}

func (d *dumper) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, dir string) {
	const debounce = 200 * time.Millisecond
	d.mu.Lock()
	d.timers = make(map[string]*time.Timer)
	d.mu.Unlock()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Ext(event.Name) != ".dns" {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			path := event.Name
			d.mu.Lock()
			if t, exists := d.timers[path]; exists {
				t.Stop()
			}
			d.timers[path] = time.AfterFunc(debounce, func() { d.dump(path) })
			d.mu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("capture watcher error", "error", err)

		case <-ctx.Done():
			return
		}
	}
}

// dump parses path and logs a summary of the decoded message, or the
// decode error if parsing failed.
func (d *dumper) dump(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return
		}
		slog.Warn("failed to read capture file", "path", path, "error", err)
		return
	}

	msg, err := d.metrics.Decode(d.dec, data)
	if err != nil {
		slog.Error("failed to parse capture", "path", path, "error", err)
		return
	}

	slog.Info("parsed capture",
		"path", path,
		"id", msg.Header.ID,
		"is_query", msg.Header.IsQuery,
		"opcode", msg.Header.Opcode.String(),
		"rcode", msg.Header.ResponseCode.String(),
		"questions", len(msg.Questions),
		"answers", len(msg.Answers),
		"authority", len(msg.Authority),
		"additional", len(msg.Additional),
		"has_opt", msg.Opt != nil,
	)
}
