package metadata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestAzuraCastSource_Fetch(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		apiKey     string
		wantErr    bool
		wantArtist string
		wantTitle  string
		wantArt    string
	}{
		{
			name:       "Full Song Document",
			statusCode: http.StatusOK,
			body:       `{"now_playing":{"song":{"title":"Nightdrive","artist":"Kavinsky","art":"https://acast.us/api/station/1/art.jpg"}}}`,
			apiKey:     "secret",
			wantArtist: "Kavinsky",
			wantTitle:  "Nightdrive",
			wantArt:    "https://acast.us/api/station/1/art.jpg",
		},
		{
			name:       "Song Without Art Hint",
			statusCode: http.StatusOK,
			body:       `{"now_playing":{"song":{"title":"Nightdrive","artist":"Kavinsky"}}}`,
			wantArtist: "Kavinsky",
			wantTitle:  "Nightdrive",
		},
		{
			name:       "Missing now_playing",
			statusCode: http.StatusOK,
			body:       `{"station":{"name":"itsyourradio"}}`,
			wantErr:    true,
		},
		{
			name:       "HTTP Error",
			statusCode: http.StatusBadGateway,
			wantErr:    true,
		},
		{
			name:       "Malformed JSON",
			statusCode: http.StatusOK,
			body:       `{"now_playing":`,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotAPIKey string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotAPIKey = r.Header.Get("X-API-Key")
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			src := NewAzuraCastSource(zap.NewNop(), server.URL, tt.apiKey)
			np, err := src.Fetch(context.Background())

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if gotAPIKey != tt.apiKey {
				t.Errorf("X-API-Key: want %q, got %q", tt.apiKey, gotAPIKey)
			}
			if np.Artist != tt.wantArtist || np.Title != tt.wantTitle {
				t.Errorf("track: want %q/%q, got %q/%q", tt.wantArtist, tt.wantTitle, np.Artist, np.Title)
			}
			if np.ArtURL != tt.wantArt {
				t.Errorf("art hint: want %q, got %q", tt.wantArt, np.ArtURL)
			}
		})
	}
}

func TestIcecastSource_Fetch(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mount      string
		wantErr    bool
		wantArtist string
		wantTitle  string
	}{
		{
			name:       "Single Source Object",
			body:       `{"icestats":{"source":{"listenurl":"http://acast.us:8000/radio.mp3","title":"Kavinsky - Nightdrive"}}}`,
			wantArtist: "Kavinsky",
			wantTitle:  "Nightdrive",
		},
		{
			name: "Source Array Matched By Mount",
			body: `{"icestats":{"source":[
				{"listenurl":"http://acast.us:8000/radio.aac","title":"Other - Stream"},
				{"listenurl":"http://acast.us:8000/radio.mp3","title":"Kavinsky - Nightdrive"}]}}`,
			mount:      "radio.mp3",
			wantArtist: "Kavinsky",
			wantTitle:  "Nightdrive",
		},
		{
			name:       "Array Without Mount Takes First Titled",
			body:       `{"icestats":{"source":[{"listenurl":"http://a/x.mp3"},{"listenurl":"http://a/y.mp3","title":"Solo Title"}]}}`,
			wantArtist: "",
			wantTitle:  "Solo Title",
		},
		{
			name:    "No Matching Mount",
			body:    `{"icestats":{"source":[{"listenurl":"http://a/x.aac","title":"T"}]}}`,
			mount:   "radio.mp3",
			wantErr: true,
		},
		{
			name:    "Missing Source",
			body:    `{"icestats":{}}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sawNocache bool
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				sawNocache = r.URL.Query().Get("nocache") != ""
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			src := NewIcecastSource(zap.NewNop(), server.URL, tt.mount)
			np, err := src.Fetch(context.Background())

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !sawNocache {
				t.Error("expected a nocache query parameter")
			}
			if np.Artist != tt.wantArtist || np.Title != tt.wantTitle {
				t.Errorf("track: want %q/%q, got %q/%q", tt.wantArtist, tt.wantTitle, np.Artist, np.Title)
			}
		})
	}
}

func TestPlaylistSource_Fetch(t *testing.T) {
	t.Run("EXTINF Line", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("#EXTM3U\n#EXTINF:-1,Kavinsky - Nightdrive\nhttps://acast.us/radio.mp3\n"))
		}))
		defer server.Close()

		src := NewPlaylistSource(zap.NewNop(), server.URL)
		np, err := src.Fetch(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if np.Artist != "Kavinsky" || np.Title != "Nightdrive" {
			t.Errorf("unexpected track: %q/%q", np.Artist, np.Title)
		}
	})

	t.Run("No EXTINF Metadata", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("https://acast.us/radio.mp3\n"))
		}))
		defer server.Close()

		src := NewPlaylistSource(zap.NewNop(), server.URL)
		if _, err := src.Fetch(context.Background()); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
