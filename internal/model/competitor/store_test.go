package competitor_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/rokhoon/geo-briefing/internal/model/competitor"
)

func TestStoreRejectsDuplicateName(t *testing.T) {
	store := competitor.NewStore(t.TempDir())

	if err := store.Add("MilkT", []string{"밀크티", "밀크T"}); err != nil {
		t.Fatalf("Add err: %v", err)
	}
	if err := store.Add("MilkT", []string{"other"}); !errors.Is(err, competitor.ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

func TestStoreUpdateReplacesKeywords(t *testing.T) {
	store := competitor.NewStore(t.TempDir())
	if err := store.Add("HomeRun", []string{"홈런"}); err != nil {
		t.Fatalf("Add err: %v", err)
	}
	if err := store.Add("Wink", []string{"윙크"}); err != nil {
		t.Fatalf("Add err: %v", err)
	}

	if err := store.Update(0, "HomeRun", []string{"아이스크림홈런", "홈런초등"}); err != nil {
		t.Fatalf("Update err: %v", err)
	}
	got := store.Load()
	if !reflect.DeepEqual(got[0].Keywords, []string{"아이스크림홈런", "홈런초등"}) {
		t.Fatalf("unexpected keywords: %v", got[0].Keywords)
	}

	// Renaming onto another brand is refused.
	if err := store.Update(0, "Wink", []string{"x"}); !errors.Is(err, competitor.ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

func TestStoreDelete(t *testing.T) {
	store := competitor.NewStore(t.TempDir())
	if err := store.Add("A", []string{"a"}); err != nil {
		t.Fatalf("Add err: %v", err)
	}
	if err := store.Add("B", []string{"b"}); err != nil {
		t.Fatalf("Add err: %v", err)
	}

	if err := store.Delete(0); err != nil {
		t.Fatalf("Delete err: %v", err)
	}
	got := store.Load()
	if len(got) != 1 || got[0].Name != "B" {
		t.Fatalf("unexpected competitors after delete: %+v", got)
	}
}
