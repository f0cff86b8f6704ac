package artwork

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestLastFMTrack_Lookup(t *testing.T) {
	tests := []struct {
		name        string
		statusCode  int
		body        string
		wantURL     string
		wantErr     bool
		wantMissing bool
	}{
		{
			name:       "Prefers Extralarge Variant",
			statusCode: http.StatusOK,
			body: `{"track":{"album":{"image":[
				{"#text":"http://img/small.png","size":"small"},
				{"#text":"http://img/large.png","size":"large"},
				{"#text":"http://img/xl.png","size":"extralarge"}]}}}`,
			wantURL: "http://img/xl.png",
		},
		{
			name:       "Falls Back To Large",
			statusCode: http.StatusOK,
			body: `{"track":{"album":{"image":[
				{"#text":"http://img/small.png","size":"small"},
				{"#text":"http://img/large.png","size":"large"}]}}}`,
			wantURL: "http://img/large.png",
		},
		{
			name:        "Empty Image URLs",
			statusCode:  http.StatusOK,
			body:        `{"track":{"album":{"image":[{"#text":"","size":"extralarge"}]}}}`,
			wantMissing: true,
		},
		{
			name:        "Track Without Album",
			statusCode:  http.StatusOK,
			body:        `{"track":{}}`,
			wantMissing: true,
		},
		{
			name:       "HTTP Error",
			statusCode: http.StatusInternalServerError,
			body:       "",
			wantErr:    true,
		},
		{
			name:       "Malformed Payload",
			statusCode: http.StatusOK,
			body:       `{"track":`,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotQuery map[string][]string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotQuery = r.URL.Query()
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			p := NewLastFMTrack(zap.NewNop(), "test-key")
			p.baseURL = server.URL

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			gotURL, err := p.Lookup(ctx, "Kavinsky", "Nightdrive")

			if tt.wantErr {
				if err == nil || errors.Is(err, ErrNotFound) {
					t.Fatalf("expected hard error, got %v", err)
				}
				return
			}
			if tt.wantMissing {
				if !errors.Is(err, ErrNotFound) {
					t.Fatalf("expected ErrNotFound, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if gotURL != tt.wantURL {
				t.Errorf("url: want %q, got %q", tt.wantURL, gotURL)
			}

			if gotQuery["method"][0] != "track.getInfo" {
				t.Errorf("unexpected method param: %v", gotQuery["method"])
			}
			if gotQuery["artist"][0] != "Kavinsky" || gotQuery["track"][0] != "Nightdrive" {
				t.Errorf("unexpected track params: %v", gotQuery)
			}
		})
	}
}

func TestLastFMAlbum_Lookup(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantURL     string
		wantMissing bool
	}{
		{
			name: "First Album Match Wins",
			body: `{"results":{"albummatches":{"album":[
				{"image":[{"#text":"http://img/a1-xl.png","size":"extralarge"}]},
				{"image":[{"#text":"http://img/a2-xl.png","size":"extralarge"}]}]}}}`,
			wantURL: "http://img/a1-xl.png",
		},
		{
			name:        "No Matches",
			body:        `{"results":{"albummatches":{"album":[]}}}`,
			wantMissing: true,
		},
		{
			name:        "Match Without Usable Image",
			body:        `{"results":{"albummatches":{"album":[{"image":[{"#text":"http://img/s.png","size":"small"}]}]}}}`,
			wantMissing: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if got := r.URL.Query().Get("method"); got != "album.search" {
					t.Errorf("unexpected method param: %q", got)
				}
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			p := NewLastFMAlbum(zap.NewNop(), "test-key")
			p.baseURL = server.URL

			gotURL, err := p.Lookup(context.Background(), "Kavinsky", "Nightdrive")

			if tt.wantMissing {
				if !errors.Is(err, ErrNotFound) {
					t.Fatalf("expected ErrNotFound, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if gotURL != tt.wantURL {
				t.Errorf("url: want %q, got %q", tt.wantURL, gotURL)
			}
		})
	}
}

func TestITunes_Lookup(t *testing.T) {
	t.Run("Upscales Thumbnail URL", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("media"); got != "music" {
				t.Errorf("unexpected media param: %q", got)
			}
			_, _ = w.Write([]byte(`{"results":[{"artworkUrl100":"http://img/cover/100x100bb.jpg"}]}`))
		}))
		defer server.Close()

		p := NewITunes(zap.NewNop())
		p.baseURL = server.URL

		gotURL, err := p.Lookup(context.Background(), "Kavinsky", "Nightdrive")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotURL != "http://img/cover/600x600bb.jpg" {
			t.Errorf("unexpected url: %q", gotURL)
		}
	})

	t.Run("No Results", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"results":[]}`))
		}))
		defer server.Close()

		p := NewITunes(zap.NewNop())
		p.baseURL = server.URL

		if _, err := p.Lookup(context.Background(), "Kavinsky", "Nightdrive"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
