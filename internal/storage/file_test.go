package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rohithredddy/plagiarism-Check-Demo/internal/models"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "submissions.json"))
}

func testSubmission(n int) models.Submission {
	return models.Submission{
		ID:              strings.Repeat("0", 7) + string(rune('a'+n)),
		Timestamp:       time.Date(2026, 8, 26, 12, 0, n, 0, time.UTC),
		QuestionType:    "python",
		Answer:          "answer number " + strings.Repeat("x", n+1),
		SimilarityScore: float64(n) * 10.0,
	}
}

func TestFileStoreLoadMissingFile(t *testing.T) {
	store := newTestStore(t)
	subs, err := store.Load()
	if err != nil {
		t.Fatalf("Load on missing file failed: %v", err)
	}
	if len(subs) != 0 {
		t.Fatalf("expected empty corpus, got %d entries", len(subs))
	}
}

func TestFileStoreAppendAndLoadPreservesOrder(t *testing.T) {
	store := newTestStore(t)
	for i := 0; i < 3; i++ {
		if err := store.Append(testSubmission(i)); err != nil {
			t.Fatalf("Append %d failed: %v", i, err)
		}
	}

	subs, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(subs) != 3 {
		t.Fatalf("expected 3 submissions, got %d", len(subs))
	}
	for i, sub := range subs {
		want := testSubmission(i)
		if sub.ID != want.ID || sub.Answer != want.Answer || sub.SimilarityScore != want.SimilarityScore {
			t.Fatalf("submission %d = %+v, want %+v", i, sub, want)
		}
		if !sub.Timestamp.Equal(want.Timestamp) {
			t.Fatalf("submission %d timestamp = %v, want %v", i, sub.Timestamp, want.Timestamp)
		}
	}
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "submissions.json")

	first := NewFileStore(path)
	if err := first.Append(testSubmission(0)); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	second := NewFileStore(path)
	subs, err := second.Load()
	if err != nil {
		t.Fatalf("Load after reopen failed: %v", err)
	}
	if len(subs) != 1 || subs[0].QuestionType != "python" {
		t.Fatalf("unexpected corpus after reopen: %+v", subs)
	}
}

func TestFileStoreHumanReadableOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "submissions.json")
	store := NewFileStore(path)
	if err := store.Append(testSubmission(0)); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read submissions file: %v", err)
	}
	if !strings.Contains(string(data), "\n  ") {
		t.Fatal("submissions file should be indented JSON")
	}
	if !strings.Contains(string(data), `"question_type": "python"`) {
		t.Fatalf("submissions file missing expected field: %s", data)
	}
}

func TestFileStoreMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "submissions.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write malformed file: %v", err)
	}

	store := NewFileStore(path)
	if _, err := store.Load(); err == nil {
		t.Fatal("Load on malformed file should fail")
	}
	if err := store.Append(testSubmission(0)); err == nil {
		t.Fatal("Append on malformed file should fail")
	}
}
