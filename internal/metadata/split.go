package metadata

import "strings"

// streamTitleSeparator is the conventional separator in combined
// "Artist - Title" stream titles
const streamTitleSeparator = " - "

// SplitStreamTitle normalizes a free-text stream title. The first
// occurrence of " - " splits artist (left) from title (right); without
// a separator the whole string is the title and the artist is empty.
func SplitStreamTitle(s string) (artist, title string) {
	s = strings.TrimSpace(s)
	left, right, found := strings.Cut(s, streamTitleSeparator)
	if !found {
		return "", s
	}
	return strings.TrimSpace(left), strings.TrimSpace(right)
}
