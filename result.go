package ssdrefresh

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/mitchellh/mapstructure"
	log "github.com/sirupsen/logrus"
)

// State ...
type State int

const (
	// Idle means the refresh has not started
	Idle State = iota
	// Counting means pass one is enumerating files
	Counting
	// Reading means pass two is reading files
	Reading
	// Empty means the tree contained no files
	Empty
	// Complete means every file was visited
	Complete
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Counting:
		return "counting"
	case Reading:
		return "reading"
	case Empty:
		return "empty"
	case Complete:
		return "complete"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Outcome of reading a single file
type Outcome int

const (
	// Refreshed files were read until EOF
	Refreshed Outcome = iota
	// Unreadable files failed to open or read
	Unreadable
)

func (o Outcome) String() string {
	if o == Refreshed {
		return "refreshed"
	}
	return "unreadable"
}

// LoggableResult ...
type LoggableResult interface {
	Summary() string
}

// Result ...
type Result struct {
	State      State         `mapstructure:"-"`
	TotalFiles int           `mapstructure:"total_files"`
	Processed  int           `mapstructure:"processed"`
	Refreshed  int           `mapstructure:"refreshed"`
	Failed     int           `mapstructure:"failed"`
	BytesRead  int64         `mapstructure:"bytes_read"`
	Elapsed    time.Duration `mapstructure:"elapsed"`
	Failures   []FileResult  `mapstructure:"-"`
}

// Summary ...
func (r Result) Summary() string {
	if r.State == Empty {
		return "no files found"
	}
	return fmt.Sprintf("refreshed %d of %d files (%d unreadable, %s read) in %s",
		r.Refreshed, r.TotalFiles, r.Failed, byteCountSI(r.BytesRead), FormatDuration(r.Elapsed.Seconds()))
}

// Fields returns the counters of the result as structured log fields
func (r Result) Fields() log.Fields {
	fields := make(map[string]interface{})
	if err := mapstructure.Decode(r, &fields); err != nil {
		log.Debugf("Failed to decode result fields: %v", err)
	}
	fields["state"] = r.State.String()
	return log.Fields(fields)
}

// FileResult ...
type FileResult struct {
	File    string
	Outcome Outcome
	Bytes   int64
	Elapsed time.Duration
	Err     error
}

// Summary ...
func (fr FileResult) Summary() string {
	filename := filepath.Base(fr.File)
	if fr.Outcome == Unreadable {
		return fmt.Sprintf("[%s]: unreadable after %s read: %v", filename, byteCountSI(fr.Bytes), fr.Err)
	}
	return fmt.Sprintf("[%s]: %s read in %s", filename, byteCountSI(fr.Bytes), fr.Elapsed)
}
