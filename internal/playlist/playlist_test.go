package playlist

import "testing"

func TestParseM3U(t *testing.T) {
	tests := []struct {
		name       string
		data       string
		wantCount  int
		wantTitle  string
		wantURL    string
	}{
		{
			name: "Extended M3U With EXTINF",
			data: "#EXTM3U\n#EXTINF:-1,Kavinsky - Nightdrive\nhttps://acast.us/radio.mp3\n",
			wantCount: 1,
			wantTitle: "Kavinsky - Nightdrive",
			wantURL:   "https://acast.us/radio.mp3",
		},
		{
			name:      "Plain M3U Without Directives",
			data:      "https://acast.us/radio.mp3\nhttps://acast.us/radio.aac\n",
			wantCount: 2,
			wantTitle: "",
			wantURL:   "https://acast.us/radio.mp3",
		},
		{
			name:      "Comments And Blank Lines Skipped",
			data:      "#EXTM3U\n\n# a comment\nhttps://acast.us/radio.mp3\n",
			wantCount: 1,
			wantURL:   "https://acast.us/radio.mp3",
		},
		{
			name:      "Empty Input",
			data:      "",
			wantCount: 0,
		},
		{
			name:      "EXTINF Without Comma Is Ignored",
			data:      "#EXTINF:-1\nhttps://acast.us/radio.mp3\n",
			wantCount: 1,
			wantTitle: "",
			wantURL:   "https://acast.us/radio.mp3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := ParseM3U(tt.data)
			if len(entries) != tt.wantCount {
				t.Fatalf("expected %d entries, got %d", tt.wantCount, len(entries))
			}
			if tt.wantCount == 0 {
				return
			}
			if entries[0].Title != tt.wantTitle {
				t.Errorf("title: want %q, got %q", tt.wantTitle, entries[0].Title)
			}
			if entries[0].URL != tt.wantURL {
				t.Errorf("url: want %q, got %q", tt.wantURL, entries[0].URL)
			}
		})
	}
}

func TestParsePLS(t *testing.T) {
	data := "[playlist]\nNumberOfEntries=2\nFile1=https://acast.us/radio.mp3\nTitle1=itsyourradio\nFile2=https://acast.us/radio.aac\nVersion=2\n"

	entries := ParsePLS(data)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].URL != "https://acast.us/radio.mp3" {
		t.Errorf("unexpected first url: %q", entries[0].URL)
	}
	if entries[0].Title != "itsyourradio" {
		t.Errorf("unexpected first title: %q", entries[0].Title)
	}
	if entries[1].URL != "https://acast.us/radio.aac" {
		t.Errorf("unexpected second url: %q", entries[1].URL)
	}
	if entries[1].Title != "" {
		t.Errorf("expected empty second title, got %q", entries[1].Title)
	}
}

func TestFirstHelpers(t *testing.T) {
	entries := []Entry{{URL: "u1"}, {Title: "t2", URL: "u2"}}
	if got := FirstURL(entries); got != "u1" {
		t.Errorf("FirstURL: got %q", got)
	}
	if got := FirstTitle(entries); got != "t2" {
		t.Errorf("FirstTitle: got %q", got)
	}
	if got := FirstURL(nil); got != "" {
		t.Errorf("FirstURL(nil): got %q", got)
	}
}
