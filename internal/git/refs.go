package git

import "strings"

// Format templates whose output the ref parsers read.
const (
	BranchFormat = "%(HEAD)|%(refname:short)|%(upstream:short)"
	TagFormat    = "%(refname:short)|%(objectname:short)|%(creatordate:short)|%(contents:subject)"
)

// ParseBranches decodes `git for-each-ref --format=BranchFormat` output.
// Ref names may contain '|', so the upstream is taken from the last field and
// the name is everything between the marker and the upstream. Trailing empty
// fields are ignored. An empty upstream field yields a nil Upstream.
func ParseBranches(out string) []Branch {
	var branches []Branch
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Split(line, "|")
		for len(fields) > 2 && strings.TrimSpace(fields[len(fields)-1]) == "" {
			fields = fields[:len(fields)-1]
		}
		if len(fields) < 2 {
			continue
		}
		nameFields, upstream := fields[1:], ""
		if len(fields) > 2 {
			nameFields = fields[1 : len(fields)-1]
			upstream = strings.TrimSpace(fields[len(fields)-1])
		}
		name := strings.TrimSpace(strings.Join(nameFields, "|"))
		if name == "" {
			continue
		}
		b := Branch{
			Name:    name,
			Current: strings.TrimSpace(fields[0]) == "*",
		}
		if upstream != "" {
			b.Upstream = &upstream
		}
		branches = append(branches, b)
	}
	return branches
}

// ParseTags decodes `git tag -l --format=TagFormat` output. The subject is
// the last field so it may contain '|'. A blank subject yields a nil Message.
func ParseTags(out string) []Tag {
	var tags []Tag
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.SplitN(line, "|", 4)
		t := Tag{Name: strings.TrimSpace(fields[0])}
		if t.Name == "" {
			continue
		}
		if len(fields) > 1 {
			t.CommitHash = strings.TrimSpace(fields[1])
		}
		if len(fields) > 2 {
			t.Date = strings.TrimSpace(fields[2])
		}
		if len(fields) > 3 {
			if msg := strings.TrimSpace(fields[3]); msg != "" {
				t.Message = &msg
			}
		}
		tags = append(tags, t)
	}
	return tags
}
