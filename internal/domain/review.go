package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type Review struct {
	User    string    `json:"user"`
	Rating  int       `json:"rating"`
	Comment string    `json:"comment"`
	Date    time.Time `json:"date"`
}

// ReviewDateLayout is the browser toISOString form: UTC, always three
// fractional digits.
const ReviewDateLayout = "2006-01-02T15:04:05.000Z07:00"

func (r Review) MarshalJSON() ([]byte, error) {
	type plain Review
	return json.Marshal(struct {
		plain
		Date string `json:"date"`
	}{plain: plain(r), Date: r.Date.UTC().Format(ReviewDateLayout)})
}

// ReviewMap holds every destination's reviews in submission order. It is
// persisted as a JSON object keyed by the destination ID string.
type ReviewMap map[int][]Review

// Clone copies the map and each review list so the result can be appended to
// without aliasing the original.
func (m ReviewMap) Clone() ReviewMap {
	out := make(ReviewMap, len(m))
	for id, reviews := range m {
		cp := make([]Review, len(reviews))
		copy(cp, reviews)
		out[id] = cp
	}
	return out
}

type ReviewSummary struct {
	DestinationID int             `json:"destination_id"`
	AverageRating decimal.Decimal `json:"average_rating"`
	TotalReviews  int             `json:"total_reviews"`
	RatingCounts  map[int]int     `json:"rating_counts"`
}
