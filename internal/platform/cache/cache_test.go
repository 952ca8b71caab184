package cache_test

import (
	"testing"

	"github.com/lifehandler/feedgen/internal/platform/cache"
)

func TestParseURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"valid url", "redis://localhost:6379", false},
		{"valid with db", "redis://localhost:6379/2", false},
		{"empty url", "", true},
		{"wrong scheme", "http://localhost:6379", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cache.ParseURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}

func TestParseURL_AppliesAddr(t *testing.T) {
	opts, err := cache.ParseURL("redis://cachehost:6380/1")
	if err != nil {
		t.Fatalf("ParseURL() error = %v", err)
	}
	if opts.Addr != "cachehost:6380" {
		t.Errorf("Addr = %q, want cachehost:6380", opts.Addr)
	}
	if opts.DB != 1 {
		t.Errorf("DB = %d, want 1", opts.DB)
	}
}
