package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/njprem/discover-zimbabwe/internal/repository/slot"
)

func newReviewFixture(t *testing.T, store *failingStore) (*ReviewService, *SessionStore) {
	t.Helper()
	sessions := NewSessionStore()
	repo := slot.NewReviewRepo(store, slot.DefaultReviewsKey, nil)
	svc := NewReviewService(repo, sessions, newTestCatalog(t), nil)
	svc.now = func() time.Time { return time.Date(2024, 3, 1, 9, 30, 0, 123456789, time.FixedZone("CAT", 2*3600)) }
	return svc, sessions
}

func TestReviewService_SubmitAppendsOneRecord(t *testing.T) {
	ctx := context.Background()
	store := &failingStore{MemoryStore: slot.NewMemoryStore()}
	svc, sessions := newReviewFixture(t, store)
	_, _ = sessions.Login("a@b.com")

	review, err := svc.Submit(ctx, 1, ReviewInput{Rating: 5, Comment: "Great trip"})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if review.User != "a" || review.Rating != 5 || review.Comment != "Great trip" {
		t.Fatalf("unexpected review %+v", review)
	}
	wantDate := time.Date(2024, 3, 1, 7, 30, 0, 123000000, time.UTC)
	if !review.Date.Equal(wantDate) || review.Date.Location() != time.UTC {
		t.Fatalf("expected UTC millisecond date %v, got %v", wantDate, review.Date)
	}

	var persisted map[string][]map[string]any
	if err := json.Unmarshal(slotBytes(t, store, slot.DefaultReviewsKey), &persisted); err != nil {
		t.Fatalf("persisted reviews are not JSON: %v", err)
	}
	if len(persisted) != 1 || len(persisted["1"]) != 1 {
		t.Fatalf("expected exactly one review under key 1, got %v", persisted)
	}
	rec := persisted["1"][0]
	if rec["user"] != "a" || rec["rating"] != float64(5) || rec["comment"] != "Great trip" || rec["date"] != "2024-03-01T07:30:00.123Z" {
		t.Fatalf("unexpected persisted record %v", rec)
	}

	list, err := svc.List(ctx, 1)
	if err != nil || len(list) != 1 {
		t.Fatalf("expected one listed review, got %v (%v)", list, err)
	}
}

func TestReviewService_SubmitKeepsOrder(t *testing.T) {
	ctx := context.Background()
	svc, sessions := newReviewFixture(t, &failingStore{MemoryStore: slot.NewMemoryStore()})
	_, _ = sessions.Login("first@example.com")
	_, _ = svc.Submit(ctx, 2, ReviewInput{Rating: 3, Comment: "ok"})
	_, _ = sessions.Login("second@example.com")
	_, _ = svc.Submit(ctx, 2, ReviewInput{Rating: 4, Comment: "better"})

	list, _ := svc.List(ctx, 2)
	if len(list) != 2 || list[0].User != "first" || list[1].User != "second" {
		t.Fatalf("unexpected order %+v", list)
	}
}

func TestReviewService_Rejections(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name   string
		login  bool
		id     int
		input  ReviewInput
		target error
	}{
		{name: "logged out", login: false, id: 1, input: ReviewInput{Rating: 5, Comment: "Great"}, target: ErrReviewsLoginRequired},
		{name: "rating zero", login: true, id: 1, input: ReviewInput{Rating: 0, Comment: "Great"}, target: ErrReviewIncomplete},
		{name: "rating six", login: true, id: 1, input: ReviewInput{Rating: 6, Comment: "Great"}, target: ErrReviewValidation},
		{name: "negative rating", login: true, id: 1, input: ReviewInput{Rating: -2, Comment: "Great"}, target: ErrReviewValidation},
		{name: "empty comment", login: true, id: 1, input: ReviewInput{Rating: 4, Comment: ""}, target: ErrReviewIncomplete},
		{name: "blank comment", login: true, id: 1, input: ReviewInput{Rating: 4, Comment: "  "}, target: ErrReviewIncomplete},
		{name: "unknown destination", login: true, id: 77, input: ReviewInput{Rating: 4, Comment: "Great"}, target: ErrDestinationNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := &failingStore{MemoryStore: slot.NewMemoryStore()}
			seed := []byte(`{"3":[{"user":"old","rating":4,"comment":"nice","date":"2023-01-01T00:00:00.000Z"}]}`)
			_ = store.Set(ctx, slot.DefaultReviewsKey, seed)
			svc, sessions := newReviewFixture(t, store)
			if tc.login {
				_, _ = sessions.Login("a@b.com")
			}

			if _, err := svc.Submit(ctx, tc.id, tc.input); !errors.Is(err, tc.target) {
				t.Fatalf("expected %v, got %v", tc.target, err)
			}
			if after := slotBytes(t, store, slot.DefaultReviewsKey); !bytes.Equal(seed, after) {
				t.Fatalf("slot changed after rejection: %s", after)
			}
		})
	}
}

func TestReviewService_ListEmpty(t *testing.T) {
	svc, _ := newReviewFixture(t, &failingStore{MemoryStore: slot.NewMemoryStore()})
	list, err := svc.List(context.Background(), 4)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", list)
	}
}

func TestReviewService_SaveFailureIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	store := &failingStore{MemoryStore: slot.NewMemoryStore()}
	svc, sessions := newReviewFixture(t, store)
	_, _ = sessions.Login("a@b.com")
	_, _ = svc.Submit(ctx, 1, ReviewInput{Rating: 4, Comment: "first"})

	store.failSet = true
	if _, err := svc.Submit(ctx, 1, ReviewInput{Rating: 2, Comment: "second"}); !errors.Is(err, errStoreDown) {
		t.Fatalf("expected store error, got %v", err)
	}
	list, _ := svc.List(ctx, 1)
	if len(list) != 1 {
		t.Fatalf("expected the failed review to be dropped, got %d reviews", len(list))
	}
}

func TestReviewService_Summary(t *testing.T) {
	ctx := context.Background()
	svc, sessions := newReviewFixture(t, &failingStore{MemoryStore: slot.NewMemoryStore()})
	_, _ = sessions.Login("a@b.com")
	for _, r := range []int{5, 4, 4} {
		if _, err := svc.Submit(ctx, 3, ReviewInput{Rating: r, Comment: "fine"}); err != nil {
			t.Fatalf("Submit returned error: %v", err)
		}
	}

	summary, err := svc.Summary(ctx, 3)
	if err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}
	if summary.TotalReviews != 3 || summary.AverageRating.String() != "4.3" {
		t.Fatalf("unexpected summary %+v", summary)
	}
	if summary.RatingCounts[4] != 2 || summary.RatingCounts[5] != 1 || summary.RatingCounts[1] != 0 {
		t.Fatalf("unexpected counts %v", summary.RatingCounts)
	}

	empty, _ := svc.Summary(ctx, 6)
	if empty.TotalReviews != 0 || !empty.AverageRating.IsZero() {
		t.Fatalf("expected zero summary, got %+v", empty)
	}
}

func TestParseRating(t *testing.T) {
	tests := map[string]struct {
		want    int
		wantErr bool
	}{
		"":    {want: 0},
		" 4 ": {want: 4},
		"6":   {want: 6},
		"abc": {wantErr: true},
		"4.5": {wantErr: true},
	}
	for raw, tc := range tests {
		got, err := ParseRating(raw)
		if tc.wantErr {
			if !errors.Is(err, ErrReviewValidation) {
				t.Fatalf("ParseRating(%q): expected ErrReviewValidation, got %v", raw, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("ParseRating(%q) = %d, %v; want %d", raw, got, err, tc.want)
		}
	}
}
