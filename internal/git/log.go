package git

import "strings"

// LogFormat is the pretty format whose output ParseLog reads.
const LogFormat = "%H|%h|%an|%aI|%s"

const logFields = 5

// ParseLog decodes `git log --format=LogFormat` output. The subject is the
// last field and keeps any '|' it contains. Lines with fewer than five
// fields are skipped.
func ParseLog(out string) []Commit {
	var commits []Commit
	for _, line := range strings.Split(out, "\n") {
		fields := strings.SplitN(line, "|", logFields)
		if len(fields) < logFields {
			continue
		}
		commits = append(commits, Commit{
			Hash:      fields[0],
			ShortHash: fields[1],
			Author:    fields[2],
			Date:      datePart(fields[3]),
			Message:   fields[4],
		})
	}
	return commits
}

// datePart keeps the calendar date of an ISO timestamp, which git separates
// from the time with 'T' in strict mode and a space otherwise.
func datePart(ts string) string {
	if i := strings.IndexAny(ts, "T "); i >= 0 {
		return ts[:i]
	}
	return ts
}

// ParseOneline splits `git log --oneline` output into its non-empty lines.
func ParseOneline(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimRight(line, "\r"); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
