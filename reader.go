package ssdrefresh

import (
	"io"
	"time"
)

// RefreshFile reads file sequentially in chunks of len(buf) bytes and discards them.
// A file is attempted exactly once.
func RefreshFile(file string, buf []byte) FileResult {
	start := time.Now()
	result := FileResult{File: file, Outcome: Refreshed}
	if len(buf) == 0 {
		buf = make([]byte, ChunkSize)
	}

	f, err := openFile(file)
	if err != nil {
		result.Outcome = Unreadable
		result.Err = err
		result.Elapsed = time.Since(start)
		return result
	}
	defer f.Close()

	for {
		n, err := f.Read(buf)
		result.Bytes += int64(n)
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Outcome = Unreadable
			result.Err = err
			break
		}
	}
	result.Elapsed = time.Since(start)
	return result
}
