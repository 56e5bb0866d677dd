// Package log provides centralised audit logging for licenser operations.
// Logs are stored in ~/.licenser/log/licenser-log.db and track license
// generation and header injection runs across projects.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("license:create", "create").
//		Author(cmd.Name()).
//		Detail("license", spdx).
//		Write(err)
//
//	log.Event("header:apply", "inject").
//		Author(cmd.Name()).
//		Detail("patterns", patterns).
//		Detail("modified", n).
//		Write(nil)
//
// The source parameter follows the format "{extension}:{command}" for CLI
// commands or "mcp:{tool}" for MCP tools.
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source string // e.g., "license:create", "mcp:licenser_headers"
	Author string // copyright holder the run attributed
	Action string // verb: create, inject, list, etc.
	Path   string // primary path the operation targeted (LICENSE file, pattern)

	// Timing
	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool           // whether operation succeeded
	Error   string         // error message if failed
	Detail  map[string]any // additional operation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write]
// to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Author sets the attributed copyright holder for the operation.
func (b *Builder) Author(author string) *Builder {
	b.entry.Author = author
	return b
}

// Path sets the primary path this operation targeted.
func (b *Builder) Path(path string) *Builder {
	b.entry.Path = path
	return b
}

// Detail adds a key-value pair to the log entry's detail map.
// Can be called multiple times to add multiple details.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry to the database, deriving success/failure
// from err. This is the standard way to complete a log entry after an
// operation.
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort
// logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// SetProject sets the project identifier for subsequent log entries.
// The dir should be the absolute path to the working directory.
func SetProject(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.project = hash(dir)
	}
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
