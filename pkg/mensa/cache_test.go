package mensa

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

const testFeedURL = "https://mensa.example/csv/19.csv"

func TestCacheReadWrite(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "othctl-cache-test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	// 1. Read non-existent cache
	week, ok := readCache(19, testFeedURL)
	if ok || week != nil {
		t.Errorf("expected readCache to fail for non-existent cache, but got success")
	}

	// 2. Write cache
	plan := NewWeek(19)
	day := NewDay("Mo", time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC))
	if err := day.AddMeal(Meal{
		Name:          "Schnitzel",
		Kennzeichnung: "1,2,3",
		PriceStudent:  decimal.RequireFromString("3.50"),
		PriceStaff:    decimal.RequireFromString("4.50"),
		PriceGuest:    decimal.RequireFromString("6.00"),
	}, "HG1"); err != nil {
		t.Fatalf("failed to add meal: %v", err)
	}
	plan.Days["Mo"] = day
	writeCache(19, testFeedURL, plan)

	expectedPath, err := getCachePath(19, testFeedURL)
	if err != nil {
		t.Fatalf("failed to build cache path: %v", err)
	}
	if filepath.Dir(expectedPath) != filepath.Join(tempDir, ".othctl_cache") {
		t.Errorf("expected cache file under ~/.othctl_cache, got %s", expectedPath)
	}
	if _, err := os.Stat(expectedPath); os.IsNotExist(err) {
		t.Errorf("expected cache file to be created at %s", expectedPath)
	}

	// 3. Read existing valid cache
	loaded, ok := readCache(19, testFeedURL)
	if !ok {
		t.Fatalf("expected readCache to succeed for existing cache, but failed")
	}

	mo, found := loaded.Days["Mo"]
	if !found {
		t.Fatalf("expected Monday in cached plan")
	}
	if !mo.Date.Equal(day.Date) {
		t.Errorf("expected date %s, got %s", day.Date, mo.Date)
	}
	meals := mo.Meals[MainCourse]
	if len(meals) != 1 || meals[0].Name != "Schnitzel" || !meals[0].PriceStudent.Equal(decimal.RequireFromString("3.5")) {
		t.Errorf("cached meals do not match written meals: %+v", meals)
	}
}

func TestCacheExpiration(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "othctl-cache-exp-test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	cachePath, err := getCachePath(20, testFeedURL)
	if err != nil {
		t.Fatalf("failed to build cache path: %v", err)
	}

	entry := CacheEntry{
		Timestamp: time.Now().Add(-24 * time.Hour), // Older than 12h
		URL:       testFeedURL,
		Week:      NewWeek(20),
	}
	data, _ := json.Marshal(entry)
	if err := os.WriteFile(cachePath, data, 0644); err != nil {
		t.Fatalf("failed to write cache file: %v", err)
	}

	if _, ok := readCache(20, testFeedURL); ok {
		t.Errorf("expected readCache to reject expired cache (24h old, limit is 12h), but it incorrectly succeeded")
	}
}

func TestCacheCorrupt(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	cachePath, err := getCachePath(21, testFeedURL)
	if err != nil {
		t.Fatalf("failed to build cache path: %v", err)
	}
	if err := os.WriteFile(cachePath, []byte("not json"), 0644); err != nil {
		t.Fatalf("failed to write cache file: %v", err)
	}

	if _, ok := readCache(21, testFeedURL); ok {
		t.Errorf("expected readCache to reject a corrupt cache file")
	}
}

func TestCacheSeparatesFeeds(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	writeCache(19, testFeedURL, NewWeek(19))

	if _, ok := readCache(19, "http://127.0.0.1:8080/19.csv"); ok {
		t.Errorf("expected a plan cached for another feed URL to be ignored")
	}
	if _, ok := readCache(19, testFeedURL); !ok {
		t.Errorf("expected the plan of the same feed URL to be cached")
	}

	// An entry whose stored URL does not match is not trusted either
	otherPath, err := getCachePath(19, "http://127.0.0.1:8080/19.csv")
	if err != nil {
		t.Fatalf("failed to build cache path: %v", err)
	}
	data, _ := json.Marshal(CacheEntry{Timestamp: time.Now(), URL: testFeedURL, Week: NewWeek(19)})
	if err := os.WriteFile(otherPath, data, 0644); err != nil {
		t.Fatalf("failed to write cache file: %v", err)
	}
	if _, ok := readCache(19, "http://127.0.0.1:8080/19.csv"); ok {
		t.Errorf("expected a cache entry with a different URL to be rejected")
	}
}
