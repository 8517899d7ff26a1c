package ssdrefresh

import (
	"errors"
	"fmt"
	"io"

	opt "github.com/romnn/configo"
	"github.com/romnn/ssdrefresh/files"
	log "github.com/sirupsen/logrus"
)

// Refresh ...
type Refresh struct {
	Options
	Provider files.FileProvider
	state    State
}

// New creates a refresh of all files below root
func New(root string, options Options) *Refresh {
	return &Refresh{
		Options:  DefaultOptions().OverriddenWith(options),
		Provider: &files.Walker{Directory: root},
	}
}

// State returns the current stage of the refresh
func (r *Refresh) State() State {
	return r.state
}

// Start counts all files and then reads every one of them
func (r *Refresh) Start() (Result, error) {
	var result Result
	if r.Provider == nil {
		return result, errors.New("Missing file provider")
	}
	out := r.output()
	start := r.now()

	r.state = Counting
	fmt.Fprintln(out, "Counting files. Please wait...")
	total := r.Provider.FetchDirMetadata(func(interim files.Metadata) {
		log.Debugf("Counted %d files (%s) so far", interim.Files, byteCountSI(interim.Bytes))
	})
	result.TotalFiles = int(total.Files)
	if total.Files == 0 {
		r.state = Empty
		result.State = r.state
		fmt.Fprintln(out, "No files found.")
		return result, nil
	}
	log.Debugf("Counted %d files (%s)", total.Files, byteCountSI(total.Bytes))

	if err := r.Provider.Prepare(); err != nil {
		return result, fmt.Errorf("Failed to start reading: %w", err)
	}

	r.state = Reading
	progress := NewProgress(result.TotalFiles, r.now())
	disp := r.display(out, result.TotalFiles)
	buf := make([]byte, ChunkSize)
	for {
		file, err := r.Provider.NextFile()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Warnf("Stopped walking after %d files: %v", progress.Processed, err)
			break
		}
		r.record(&result, RefreshFile(file, buf))
		progress.Advance()
		disp.Update(*progress, r.now(), file)
	}
	disp.Finish()

	r.state = Complete
	result.State = r.state
	result.Processed = progress.Processed
	result.Elapsed = r.now().Sub(start)
	return result, nil
}

func (r *Refresh) record(result *Result, fr FileResult) {
	switch fr.Outcome {
	case Refreshed:
		result.Refreshed++
		result.BytesRead += fr.Bytes
	case Unreadable:
		// Unreadable files still count as processed
		result.Failed++
		result.BytesRead += fr.Bytes
		log.Debug(fr.Summary())
		if opt.Enabled(r.CollectErrors) {
			result.Failures = append(result.Failures, fr)
		}
	}
}

func (r *Refresh) display(out io.Writer, total int) display {
	if opt.Enabled(r.ShowBar) {
		return newBarDisplay(out, total, opt.Enabled(r.ShowCurrentFile))
	}
	return &lineDisplay{out: out}
}
