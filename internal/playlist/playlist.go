// Package playlist parses the two playlist text formats a station
// typically publishes alongside its raw streams: extended M3U and PLS.
package playlist

import (
	"bufio"
	"strings"
)

// Entry is one playlist item. Title may be empty; M3U embeds it in
// "#EXTINF:-1,Artist - Title" lines, PLS in "TitleN=" keys.
type Entry struct {
	Title string
	URL   string
}

// ParseM3U parses extended M3U text. Plain M3U (bare URLs, no EXTINF
// directives) is handled as well.
func ParseM3U(data string) []Entry {
	var entries []Entry
	var pendingTitle string

	scanner := bufio.NewScanner(strings.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#EXTINF:") {
			// Metadata follows the first comma: #EXTINF:-1,Artist - Title
			if idx := strings.Index(line, ","); idx >= 0 {
				pendingTitle = strings.TrimSpace(line[idx+1:])
			}
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, Entry{Title: pendingTitle, URL: line})
		pendingTitle = ""
	}

	return entries
}

// ParsePLS parses PLS ini-style text (File1=..., Title1=...).
func ParsePLS(data string) []Entry {
	files := make(map[string]string)
	titles := make(map[string]string)
	var order []string

	scanner := bufio.NewScanner(strings.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		lower := strings.ToLower(key)
		switch {
		case strings.HasPrefix(lower, "file"):
			n := key[len("file"):]
			if _, seen := files[n]; !seen {
				order = append(order, n)
			}
			files[n] = value
		case strings.HasPrefix(lower, "title"):
			titles[key[len("title"):]] = value
		}
	}

	entries := make([]Entry, 0, len(files))
	for _, n := range order {
		entries = append(entries, Entry{Title: titles[n], URL: files[n]})
	}
	return entries
}

// FirstTitle returns the title of the first entry carrying one, or ""
func FirstTitle(entries []Entry) string {
	for _, e := range entries {
		if e.Title != "" {
			return e.Title
		}
	}
	return ""
}

// FirstURL returns the first entry URL, or ""
func FirstURL(entries []Entry) string {
	if len(entries) == 0 {
		return ""
	}
	return entries[0].URL
}
