package ssdrefresh

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestByteCountSI(t *testing.T) {
	cases := []struct {
		Input    int64
		Expected string
	}{
		{Input: 0, Expected: "0 B"},
		{Input: 999, Expected: "999 B"},
		{Input: 1000, Expected: "1.0 kB"},
		{Input: 1500000, Expected: "1.5 MB"},
		{Input: 2000000000000, Expected: "2.0 TB"},
	}
	for _, c := range cases {
		if got := byteCountSI(c.Input); got != c.Expected {
			t.Errorf("byteCountSI(%d) produced %q (expected %q)", c.Input, got, c.Expected)
		}
	}
}

func TestResultSummary(t *testing.T) {
	result := Result{
		State:      Complete,
		TotalFiles: 3,
		Processed:  3,
		Refreshed:  2,
		Failed:     1,
		BytesRead:  2500,
		Elapsed:    61 * time.Second,
	}
	expected := "refreshed 2 of 3 files (1 unreadable, 2.5 kB read) in 1m 1s"
	if got := result.Summary(); got != expected {
		t.Errorf("Summary was %q but should be %q", got, expected)
	}
	if got := (Result{State: Empty}).Summary(); got != "no files found" {
		t.Errorf("Unexpected summary for an empty tree: %q", got)
	}

	fields := result.Fields()
	if fields["total_files"] != 3 || fields["failed"] != 1 || fields["state"] != "complete" {
		t.Errorf("Unexpected fields: %v", fields)
	}
	if _, ok := fields["Failures"]; ok {
		t.Errorf("Failures should not be logged as a field: %v", fields)
	}
}

func TestFileResultSummary(t *testing.T) {
	ok := FileResult{File: "/a/b/c.bin", Outcome: Refreshed, Bytes: 1000, Elapsed: time.Second}
	if got := ok.Summary(); got != "[c.bin]: 1.0 kB read in 1s" {
		t.Errorf("Unexpected summary %q", got)
	}
	failed := FileResult{File: "/a/b/d.bin", Outcome: Unreadable, Err: errors.New("boom")}
	if got := failed.Summary(); !strings.Contains(got, "unreadable") || !strings.Contains(got, "boom") {
		t.Errorf("Unexpected summary %q", got)
	}
}
