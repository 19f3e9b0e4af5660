package mensa

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// cacheDuration determines how long a fetched plan is reused before refreshing
const cacheDuration = 12 * time.Hour

// CacheEntry represents the disk data format
type CacheEntry struct {
	Timestamp time.Time `json:"timestamp"`
	URL       string    `json:"url"`
	Week      *Week     `json:"week"`
}

// getCachePath names the cache file after the week and the feed URL it was fetched from
func getCachePath(week int, url string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}

	cacheDir := filepath.Join(homeDir, ".othctl_cache")
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("could not create cache directory: %w", err)
	}

	h := fnv.New32a()
	h.Write([]byte(url))
	return filepath.Join(cacheDir, fmt.Sprintf("mensa-%d-%08x.json", week, h.Sum32())), nil
}

// readCache checks if a valid, unexpired plan fetched from url is cached for this week
func readCache(week int, url string) (*Week, bool) {
	path, err := getCachePath(week, url)
	if err != nil {
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var entry CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil || entry.Week == nil || entry.URL != url {
		return nil, false
	}

	if time.Since(entry.Timestamp) > cacheDuration {
		return nil, false
	}

	slog.Debug("using cached mensa plan", slog.Int("week", week), slog.String("path", path))
	return entry.Week, true
}

// writeCache saves the plan to disk; failures only cost a refetch next time
func writeCache(week int, url string, w *Week) {
	path, err := getCachePath(week, url)
	if err != nil {
		return
	}

	entry := CacheEntry{
		Timestamp: time.Now(),
		URL:       url,
		Week:      w,
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		slog.Warn("could not write mensa cache", slog.String("path", path), slog.Any("error", err))
	}
}
