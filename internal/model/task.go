package model

import (
	"regexp"
	"time"
)

// DateLayout is the calendar date used in completed records and reports.
const DateLayout = "2006-01-02"

// Task is one pending line. Position is its 1-based line number at the time
// it was read and shifts after deletes and completions.
type Task struct {
	Position int
	Text     string
}

// Report holds the counts printed by the report command.
type Report struct {
	Date      time.Time
	Pending   int
	Completed int
}

// completedRe matches the head of a well-formed completed record.
var completedRe = regexp.MustCompile(`^x [0-2][0-9]{3}-[0-9]{2}-[0-9]{2} *`)

// CompletedRecord formats the done.txt line for text finished on day.
func CompletedRecord(day time.Time, text string) string {
	return "x " + day.Format(DateLayout) + " " + text
}

// IsCompletedRecord reports whether line starts like a completed record.
// Anything may follow the date; hand-edited lines without the marker and
// date are not counted.
func IsCompletedRecord(line string) bool {
	return completedRe.MatchString(line)
}
