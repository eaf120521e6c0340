package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseWorktrees(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Worktree
	}{
		{
			name: "main and detached",
			in: "worktree /repo\nHEAD 0123456789abcdef0123456789abcdef01234567\nbranch refs/heads/main\n\n" +
				"worktree /repo-wt\nHEAD fedcba9876543210fedcba9876543210fedcba98\ndetached\n\n",
			want: []Worktree{
				{Path: "/repo", Branch: "main", Commit: "01234567", IsMain: true},
				{Path: "/repo-wt", Commit: "fedcba98"},
			},
		},
		{
			name: "bare second block without branch",
			in:   "worktree /a\nbranch refs/heads/main\n\nworktree /b\n",
			want: []Worktree{
				{Path: "/a", Branch: "main", IsMain: true},
				{Path: "/b"},
			},
		},
		{
			name: "locked and prunable with reasons",
			in: "worktree /main\nHEAD abc\nbranch refs/heads/dev\n\n" +
				"worktree /locked\nHEAD def\nbranch refs/heads/feature/x\nlocked on usb drive\n\n" +
				"worktree /gone\nHEAD 123\ndetached\nprunable gitdir file points to non-existent location\n",
			want: []Worktree{
				{Path: "/main", Branch: "dev", Commit: "abc", IsMain: true},
				{Path: "/locked", Branch: "feature/x", Commit: "def", Locked: true},
				{Path: "/gone", Commit: "123", Prunable: true},
			},
		},
		{
			name: "consecutive blocks without blank separator",
			in:   "worktree /one\nbranch refs/heads/a\nworktree /two\nbranch refs/heads/b\n",
			want: []Worktree{
				{Path: "/one", Branch: "a", IsMain: true},
				{Path: "/two", Branch: "b"},
			},
		},
		{
			name: "keys before any worktree line are ignored",
			in:   "HEAD abc\nlocked\n\n",
			want: nil,
		},
		{
			name: "bare repository marker",
			in:   "worktree /srv/repo.git\nbare\n\n",
			want: []Worktree{{Path: "/srv/repo.git", IsMain: true}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseWorktrees(tc.in))
		})
	}
}
