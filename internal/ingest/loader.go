// Package ingest loads STL files off the UI thread. Only the result of the
// most recent request is ever handed back; older loads are cancelled.
package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/philipparndt/stlview/pkg/stl"
)

// Source says where a load request came from
type Source int

const (
	SourceStartup Source = iota
	SourceDrop
	SourcePicker
	SourceReload
)

func (s Source) String() string {
	switch s {
	case SourceStartup:
		return "startup"
	case SourceDrop:
		return "drop"
	case SourcePicker:
		return "picker"
	case SourceReload:
		return "reload"
	}
	return "unknown"
}

// Request asks for a file to be loaded
type Request struct {
	Source Source
	Path   string
}

// Result is a finished load
type Result struct {
	Seq     uint64
	Request Request
	Model   *stl.Model
	Err     error
	Elapsed time.Duration
}

// ReadFunc reads a whole file. Tests replace it to simulate slow or failing reads.
type ReadFunc func(ctx context.Context, path string) ([]byte, error)

// Loader runs one load at a time in the background
type Loader struct {
	read ReadFunc

	mu      sync.Mutex
	seq     uint64
	cancel  context.CancelFunc
	pending bool
	source  Source // source of the load in flight
	latest  *Result
	closed  bool
	wg      sync.WaitGroup
}

// NewLoader creates a loader that reads from the local file system
func NewLoader() *Loader {
	return NewLoaderWithReader(readFile)
}

// NewLoaderWithReader creates a loader with a custom read function
func NewLoaderWithReader(read ReadFunc) *Loader {
	return &Loader{read: read}
}

func readFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

// Load starts loading req and cancels any load still in flight.
// It returns the sequence number the result will carry. A reload is dropped
// while a startup, drop or picker load is in flight, and the in-flight
// sequence number is returned instead.
func (l *Loader) Load(req Request) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return l.seq
	}
	if req.Source == SourceReload && l.pending && l.source != SourceReload {
		return l.seq
	}
	if l.cancel != nil {
		l.cancel()
	}

	l.seq++
	seq := l.seq
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	l.pending = true
	l.source = req.Source

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		res := l.run(ctx, seq, req)
		l.finish(res)
	}()

	return seq
}

func (l *Loader) run(ctx context.Context, seq uint64, req Request) Result {
	start := time.Now()
	res := Result{Seq: seq, Request: req}

	data, err := l.read(ctx, req.Path)
	if err != nil {
		res.Err = fmt.Errorf("failed to read %s: %w", req.Path, err)
		res.Elapsed = time.Since(start)
		return res
	}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	model, err := stl.ParseBytes(filepath.Base(req.Path), data)
	if err != nil {
		res.Err = fmt.Errorf("failed to parse %s: %w", req.Path, err)
	}
	res.Model = model
	res.Elapsed = time.Since(start)
	return res
}

func (l *Loader) finish(res Result) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// A newer request was made while this one ran
	if res.Seq != l.seq {
		return
	}
	l.pending = false
	l.latest = &res
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}

// Poll hands over the newest finished result, at most once.
// It never blocks and is meant to be called from the render loop.
func (l *Loader) Poll() (Result, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.latest == nil {
		return Result{}, false
	}
	res := *l.latest
	l.latest = nil
	return res, true
}

// Pending reports whether a load is in flight
func (l *Loader) Pending() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pending
}

// Close cancels any running load and waits for it to stop
func (l *Loader) Close() {
	l.mu.Lock()
	l.closed = true
	if l.cancel != nil {
		l.cancel()
	}
	l.mu.Unlock()

	l.wg.Wait()
}
