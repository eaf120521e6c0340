package git

import (
	"strconv"
	"strings"
)

// commitMeta is the attribution carried by the first block of a commit.
type commitMeta struct {
	author string
	date   string
}

// ParseBlame decodes `git blame --porcelain` output into one record per
// content line, in final-file order.
//
// Git prints author metadata only in the first block that mentions a
// commit. Later blocks for the same commit are resolved through a table
// local to this call.
func ParseBlame(out string) []BlameLine {
	var (
		lines   []BlameLine
		seen    = make(map[string]commitMeta)
		inBlock bool
		hash    string
		lineNo  int
		meta    commitMeta
	)

	for _, line := range strings.Split(out, "\n") {
		if content, ok := strings.CutPrefix(line, "\t"); ok {
			if !inBlock {
				continue
			}
			if _, known := seen[hash]; !known {
				seen[hash] = meta
			}
			lines = append(lines, BlameLine{
				LineNumber: lineNo,
				Hash:       hash,
				Author:     meta.author,
				Date:       meta.date,
				Content:    content,
			})
			inBlock = false
			continue
		}

		if id, n, ok := parseBlameHeader(line); ok {
			hash = shortID(id)
			lineNo = n
			meta = seen[hash]
			inBlock = true
			continue
		}
		if isBlameHeaderShape(line) {
			// A commit header whose line number is unreadable: drop the block.
			inBlock = false
			continue
		}

		if !inBlock {
			continue
		}
		if author, ok := strings.CutPrefix(line, "author "); ok {
			meta.author = author
		} else if ts, ok := strings.CutPrefix(line, "author-time "); ok {
			if epoch, err := strconv.ParseInt(strings.TrimSpace(ts), 10, 64); err == nil {
				meta.date = EpochToDate(epoch)
			}
		}
	}
	return lines
}

// parseBlameHeader reads "<sha> <orig-line> <final-line> [<count>]".
func parseBlameHeader(line string) (id string, finalLine int, ok bool) {
	fields := strings.Fields(line)
	if len(fields) < 3 || !isCommitID(fields[0]) {
		return "", 0, false
	}
	n, err := strconv.Atoi(fields[2])
	if err != nil || n < 1 {
		return "", 0, false
	}
	return fields[0], n, true
}

func isBlameHeaderShape(line string) bool {
	fields := strings.Fields(line)
	return len(fields) >= 3 && isCommitID(fields[0])
}

// isCommitID accepts full SHA-1 and SHA-256 object names.
func isCommitID(s string) bool {
	if len(s) != 40 && len(s) != 64 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
