package models

import "time"

// Run describes one extraction over a folder, as stored alongside its records.
type Run struct {
	ID         string
	Dir        string
	StartedAt  time.Time
	FinishedAt time.Time
	Processed  int
	Recorded   int
	Skipped    []SkippedFile
}
