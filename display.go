package ssdrefresh

import (
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/gosuri/uiprogress"
	"github.com/gosuri/uiprogress/util/strutil"
)

// linePadding is appended to every status line
const linePadding = 5

type display interface {
	Update(progress Progress, now time.Time, file string)
	Finish()
}

// lineDisplay rewrites a single status line in place
type lineDisplay struct {
	out   io.Writer
	width int
}

func (d *lineDisplay) Update(progress Progress, now time.Time, file string) {
	status := progress.Status(now)
	if w := len(status) + linePadding; w > d.width {
		d.width = w
	}
	fmt.Fprintf(d.out, "\r%s", strutil.Resize(status, uint(d.width)))
}

func (d *lineDisplay) Finish() {
	fmt.Fprintln(d.out)
	fmt.Fprintln(d.out, "Done.")
}

// barDisplay renders a uiprogress bar whose total is the number of files
type barDisplay struct {
	out         io.Writer
	progress    *uiprogress.Progress
	bar         *uiprogress.Bar
	showFile    bool
	mu          sync.Mutex
	status      string
	currentFile string
	longestFile int
}

func newBarDisplay(out io.Writer, total int, showFile bool) *barDisplay {
	d := &barDisplay{
		out:      out,
		progress: uiprogress.New(),
		showFile: showFile,
		status:   Progress{Total: total}.Status(time.Time{}),
	}
	d.progress.SetOut(out)
	d.bar = d.progress.AddBar(total).AppendCompleted()
	d.bar.PrependFunc(d.describe)
	d.progress.Start()
	return d
}

func (d *barDisplay) describe(b *uiprogress.Bar) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.showFile {
		return d.status
	}
	return fmt.Sprintf("%s [%s]", d.status, strutil.Resize(d.currentFile, uint(d.longestFile)))
}

func (d *barDisplay) Update(progress Progress, now time.Time, file string) {
	d.mu.Lock()
	d.status = progress.Status(now)
	d.currentFile = filepath.Base(file)
	if len(d.currentFile) > d.longestFile {
		d.longestFile = len(d.currentFile)
	}
	d.mu.Unlock()

	current := progress.Processed
	if current > d.bar.Total {
		current = d.bar.Total
	}
	d.bar.Set(current)
}

func (d *barDisplay) Finish() {
	d.progress.Stop()
	fmt.Fprintln(d.out, "Done.")
}
