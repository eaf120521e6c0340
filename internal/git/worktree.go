package git

import "strings"

const branchRefPrefix = "refs/heads/"

// ParseWorktrees decodes `git worktree list --porcelain` output.
//
// Each worktree is a block of key-prefixed lines ended by a blank line. A
// pending entry is also flushed when a new "worktree" line starts or the
// input ends. The first entry is the main worktree. A detached worktree has
// no "branch" line and keeps an empty Branch.
func ParseWorktrees(out string) []Worktree {
	var (
		worktrees []Worktree
		cur       *Worktree
	)
	flush := func() {
		if cur == nil {
			return
		}
		cur.IsMain = len(worktrees) == 0
		worktrees = append(worktrees, *cur)
		cur = nil
	}

	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		key, value, _ := strings.Cut(line, " ")
		switch key {
		case "worktree":
			flush()
			cur = &Worktree{Path: value}
		case "HEAD":
			if cur != nil {
				cur.Commit = shortID(value)
			}
		case "branch":
			if cur != nil {
				cur.Branch = strings.TrimPrefix(value, branchRefPrefix)
			}
		case "locked":
			if cur != nil {
				cur.Locked = true
			}
		case "prunable":
			if cur != nil {
				cur.Prunable = true
			}
		case "detached":
			if cur != nil {
				cur.Branch = ""
			}
		}
	}
	flush()
	return worktrees
}
