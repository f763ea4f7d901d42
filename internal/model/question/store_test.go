package question_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/rokhoon/geo-briefing/internal/model/question"
)

func TestStoreRoundTrip(t *testing.T) {
	store := question.NewStore(t.TempDir())

	lists := [][]string{
		{},
		{"What is the best elementary learning service?"},
		{"q1", "q2", "q3"},
	}
	for _, want := range lists {
		if err := store.Save(want); err != nil {
			t.Fatalf("Save err: %v", err)
		}
		got := store.Load()
		if len(got) == 0 && len(want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("round trip mismatch: got %v want %v", got, want)
		}
	}
}

func TestStoreAddRejectsDuplicate(t *testing.T) {
	store := question.NewStore(t.TempDir())

	if err := store.Add("same question"); err != nil {
		t.Fatalf("first Add err: %v", err)
	}
	if err := store.Add("same question"); !errors.Is(err, question.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	if got := store.Load(); len(got) != 1 {
		t.Fatalf("expected 1 question after duplicate add, got %d", len(got))
	}
}

func TestStoreUpdateAndDelete(t *testing.T) {
	store := question.NewStore(t.TempDir())
	if err := store.Save([]string{"a", "b", "c"}); err != nil {
		t.Fatalf("Save err: %v", err)
	}

	if err := store.Update(1, "b2"); err != nil {
		t.Fatalf("Update err: %v", err)
	}
	if err := store.Delete(0); err != nil {
		t.Fatalf("Delete err: %v", err)
	}

	got := store.Load()
	if !reflect.DeepEqual(got, []string{"b2", "c"}) {
		t.Fatalf("unexpected questions: %v", got)
	}

	if err := store.Delete(5); err == nil {
		t.Fatal("expected error for out-of-range delete")
	}
}

func TestStoreCorruptFileReadsEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "questions.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile err: %v", err)
	}

	store := question.NewStore(dir)
	if got := store.Load(); len(got) != 0 {
		t.Fatalf("expected empty list for corrupt file, got %v", got)
	}
}
