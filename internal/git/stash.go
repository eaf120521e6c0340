package git

import "strings"

// StashFormat is the `git stash list` format whose output ParseStashes reads.
const StashFormat = "%H|%gd|%gs"

// ParseStashes decodes `git stash list --format=StashFormat` output. Index is
// the record's position in the output, which git lists newest first.
func ParseStashes(out string) []Stash {
	var stashes []Stash
	for _, line := range strings.Split(out, "\n") {
		fields := strings.SplitN(line, "|", 3)
		if len(fields) < 3 {
			continue
		}
		stashes = append(stashes, Stash{
			Index:     len(stashes),
			Reference: fields[1],
			Message:   fields[2],
			Hash:      shortID(fields[0]),
		})
	}
	return stashes
}
