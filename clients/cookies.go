package clients

import "strings"

// MergeCookies folds Set-Cookie header values into an existing cookie list,
// replacing cookies with the same name and keeping only the name=value pair.
func MergeCookies(current, setCookies []string) []string {
	if len(setCookies) == 0 {
		return current
	}

	incoming := make(map[string]bool, len(setCookies))
	pairs := make([]string, 0, len(setCookies))
	for _, sc := range setCookies {
		pair := strings.TrimSpace(strings.SplitN(sc, ";", 2)[0])
		name, _, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			continue
		}
		if !incoming[name] {
			incoming[name] = true
			pairs = append(pairs, pair)
		}
	}

	merged := make([]string, 0, len(current)+len(pairs))
	for _, c := range current {
		name, _, ok := strings.Cut(c, "=")
		if ok && !incoming[name] {
			merged = append(merged, c)
		}
	}
	return append(merged, pairs...)
}
