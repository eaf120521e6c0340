package git

import "strings"

// ParseRemotes decodes `git remote -v` output into one entry per remote, in
// first-seen order. The fetch URL wins when fetch and push differ.
func ParseRemotes(out string) []Remote {
	var remotes []Remote
	index := make(map[string]int)
	for _, line := range strings.Split(out, "\n") {
		name, rest, ok := strings.Cut(line, "\t")
		if !ok || name == "" {
			continue
		}
		url, kind, _ := strings.Cut(strings.TrimSpace(rest), " ")
		if url == "" {
			continue
		}
		i, known := index[name]
		if !known {
			index[name] = len(remotes)
			remotes = append(remotes, Remote{Name: name, URL: url})
			continue
		}
		if kind == "(fetch)" {
			remotes[i].URL = url
		}
	}
	return remotes
}
