package ssdrefresh

import (
	"io"
	"os"
	"time"

	"github.com/imdario/mergo"
	opt "github.com/romnn/configo"
)

// ChunkSize is the number of bytes requested per read
const ChunkSize = 1024 * 1024

// Options ...
type Options struct {
	// Output receives the status messages and the progress display
	Output io.Writer
	// ShowBar renders a progress bar instead of a single status line
	ShowBar *opt.Flag
	// ShowCurrentFile names the file being read next to the bar
	ShowCurrentFile *opt.Flag
	// CollectErrors keeps the result of every unreadable file
	CollectErrors *opt.Flag
	// Clock returns the current time
	Clock func() time.Time
}

// DefaultOptions leaves all flags unset, which reads as disabled
func DefaultOptions() Options {
	return Options{
		Output: os.Stdout,
		Clock:  time.Now,
	}
}

// OverriddenWith ...
func (o Options) OverriddenWith(override Options) Options {
	var result Options
	result = o
	if err := mergo.Merge(&result, override, mergo.WithOverride); err != nil {
		panic(err)
	}
	return result
}

func (o Options) now() time.Time {
	if o.Clock != nil {
		return o.Clock()
	}
	return time.Now()
}

func (o Options) output() io.Writer {
	if o.Output != nil {
		return o.Output
	}
	return os.Stdout
}
