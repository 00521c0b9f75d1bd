package domain

import (
	"errors"
	"testing"
)

func TestFindDonation(t *testing.T) {
	donations := []TrackedDonation{{ID: "DON001"}, {ID: "DON002"}}

	d, err := FindDonation(donations, "don002")
	if err != nil || d.ID != "DON002" {
		t.Fatalf("expected case-insensitive match, got %+v, %v", d, err)
	}
	if _, err := FindDonation(donations, "DON00"); !errors.Is(err, ErrDonationNotFound) {
		t.Fatalf("lookup must be exact, got %v", err)
	}
	if _, err := FindDonation(donations, "   "); !errors.Is(err, ErrEmptyDonationID) {
		t.Fatalf("expected ErrEmptyDonationID, got %v", err)
	}
}

func TestStageProgress(t *testing.T) {
	want := []int{16, 33, 50, 66, 83, 100}
	for i, s := range Stages {
		if got := s.Progress(); got != want[i] {
			t.Fatalf("%s: expected %d, got %d", s, want[i], got)
		}
	}
	if DonationStage("Lost").Progress() != 0 {
		t.Fatalf("unknown stage should report 0")
	}
}

func TestTimeline(t *testing.T) {
	tl := TrackedDonation{Status: StageTested}.Timeline()
	if len(tl) != 6 {
		t.Fatalf("expected 6 stages, got %d", len(tl))
	}
	for i, sv := range tl {
		wantDone := i <= 2
		if sv.Completed != wantDone {
			t.Fatalf("stage %s: completed=%v, want %v", sv.Stage, sv.Completed, wantDone)
		}
		if sv.Current != (sv.Stage == StageTested) {
			t.Fatalf("stage %s: wrong current flag", sv.Stage)
		}
	}

	for _, sv := range (TrackedDonation{Status: StageUsed}).Timeline() {
		if !sv.Completed {
			t.Fatalf("every stage should be complete once used, %s is not", sv.Stage)
		}
	}
}
