package git

import (
	"strconv"
	"strings"
)

// statusHeaderLen is the width of the "XY " prefix in porcelain v1 output.
const statusHeaderLen = 3

// renameArrow separates the two paths of a rename or copy entry.
const renameArrow = " -> "

// ParseStatus decodes `git status --porcelain=v1` output.
//
// X is the index code and Y the worktree code. A path is staged when X is
// neither blank nor '?', and unstaged when Y is not blank or the pair is
// "??". Rename and copy entries carry two arrow-separated paths: the first
// becomes Path and the second OriginalPath. Lines too short to hold a
// header and a path are skipped.
func ParseStatus(out string) []FileStatus {
	var files []FileStatus
	for _, line := range strings.Split(out, "\n") {
		if len(line) <= statusHeaderLen {
			continue
		}
		x, y := line[0], line[1]
		payload := line[statusHeaderLen:]
		untracked := x == '?' && y == '?'

		fs := FileStatus{
			IsStaged:   x != ' ' && x != '?',
			IsUnstaged: y != ' ' || untracked,
		}
		if fs.IsStaged {
			fs.StagedStatus = string(x)
		}
		switch {
		case untracked:
			fs.UnstagedStatus = "?"
		case y != ' ':
			fs.UnstagedStatus = string(y)
		}

		if isRenameCode(x) || isRenameCode(y) {
			if path, orig, ok := strings.Cut(payload, renameArrow); ok {
				fs.Path = unquotePath(path)
				fs.OriginalPath = unquotePath(orig)
				files = append(files, fs)
				continue
			}
		}
		fs.Path = unquotePath(payload)
		files = append(files, fs)
	}
	return files
}

func isRenameCode(c byte) bool {
	return c == 'R' || c == 'C'
}

// unquotePath undoes git's C-style quoting of unusual path names. A field
// that does not unquote cleanly is returned as-is.
func unquotePath(p string) string {
	if len(p) < 2 || p[0] != '"' || p[len(p)-1] != '"' {
		return p
	}
	if s, err := strconv.Unquote(p); err == nil {
		return s
	}
	return p
}
