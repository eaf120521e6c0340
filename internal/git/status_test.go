package git

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []FileStatus
	}{
		{
			name: "modified in worktree",
			in:   " M main.go\n",
			want: []FileStatus{{Path: "main.go", UnstagedStatus: "M", IsUnstaged: true}},
		},
		{
			name: "added to index",
			in:   "A  new.go\n",
			want: []FileStatus{{Path: "new.go", StagedStatus: "A", IsStaged: true}},
		},
		{
			name: "staged and further edited",
			in:   "AM both.go\n",
			want: []FileStatus{{Path: "both.go", StagedStatus: "A", UnstagedStatus: "M", IsStaged: true, IsUnstaged: true}},
		},
		{
			name: "untracked",
			in:   "?? notes.txt\n",
			want: []FileStatus{{Path: "notes.txt", UnstagedStatus: "?", IsUnstaged: true}},
		},
		{
			name: "rename splits the arrow",
			in:   "R  first.go -> second.go\n",
			want: []FileStatus{{Path: "first.go", OriginalPath: "second.go", StagedStatus: "R", IsStaged: true}},
		},
		{
			name: "copy splits the arrow",
			in:   "C  a.go -> b.go\n",
			want: []FileStatus{{Path: "a.go", OriginalPath: "b.go", StagedStatus: "C", IsStaged: true}},
		},
		{
			name: "arrow outside a rename is part of the path",
			in:   " M odd -> name\n",
			want: []FileStatus{{Path: "odd -> name", UnstagedStatus: "M", IsUnstaged: true}},
		},
		{
			name: "quoted path is unquoted",
			in:   "?? \"caf\\303\\251 menu.txt\"\n",
			want: []FileStatus{{Path: "café menu.txt", UnstagedStatus: "?", IsUnstaged: true}},
		},
		{
			name: "short lines are skipped",
			in:   "\nM \n??\n M a\n",
			want: []FileStatus{{Path: "a", UnstagedStatus: "M", IsUnstaged: true}},
		},
		{
			name: "empty input",
			in:   "",
			want: nil,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseStatus(tc.in))
		})
	}
}

func TestParseStatus_TruthTable(t *testing.T) {
	codes := []byte(" MADRCU?!T")
	pathChars := []rune("abcdefghijklmnopqrstuvwxyz0123456789._/- ")

	rapid.Check(t, func(t *rapid.T) {
		x := rapid.SampledFrom(codes).Draw(t, "x")
		y := rapid.SampledFrom(codes).Draw(t, "y")
		path := rapid.StringOfN(rapid.SampledFrom(pathChars), 1, 40, -1).Draw(t, "path")
		if strings.Contains(path, renameArrow) {
			t.Skip("arrow in path")
		}

		got := ParseStatus(string([]byte{x, y, ' '}) + path + "\n")
		if len(got) != 1 {
			t.Fatalf("expected one entry, got %d", len(got))
		}
		fs := got[0]

		untracked := x == '?' && y == '?'
		if want := x != ' ' && x != '?'; fs.IsStaged != want {
			t.Fatalf("IsStaged=%v for %q", fs.IsStaged, []byte{x, y})
		}
		if want := y != ' ' || untracked; fs.IsUnstaged != want {
			t.Fatalf("IsUnstaged=%v for %q", fs.IsUnstaged, []byte{x, y})
		}
		if fs.Path != path {
			t.Fatalf("path %q, want %q", fs.Path, path)
		}
		if untracked && fs.UnstagedStatus != "?" {
			t.Fatalf("untracked entry has unstaged status %q", fs.UnstagedStatus)
		}
	})
}

func TestParseStatus_RenameProperty(t *testing.T) {
	name := rapid.StringMatching(`[a-z0-9_]{1,12}(/[a-z0-9_]{1,12}){0,2}\.[a-z]{1,3}`)

	rapid.Check(t, func(t *rapid.T) {
		code := rapid.SampledFrom([]byte("RC")).Draw(t, "code")
		a := name.Draw(t, "a")
		b := name.Draw(t, "b")

		got := ParseStatus(string([]byte{code, ' ', ' '}) + a + " -> " + b)
		if len(got) != 1 || got[0].Path != a || got[0].OriginalPath != b {
			t.Fatalf("unexpected parse %+v", got)
		}
	})
}

func TestUnquotePath(t *testing.T) {
	assert.Equal(t, "plain", unquotePath("plain"))
	assert.Equal(t, "tab\there", unquotePath(`"tab\there"`))
	assert.Equal(t, `"broken\q"`, unquotePath(`"broken\q"`))
	assert.Equal(t, `"`, unquotePath(`"`))
}
