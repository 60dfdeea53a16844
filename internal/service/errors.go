package service

import "errors"

// Notices are the texts shown to visitors when an operation is refused.
const (
	NoticeFavoritesLoginRequired = "Please login to save favorites"
	NoticeReviewsLoginRequired   = "Please login to add reviews"
	NoticeFillAllFields          = "Please fill in all fields"
	NoticeEmailRequired          = "Please enter your email"
)

var (
	ErrDestinationNotFound    = errors.New("destination not found")
	ErrUnknownCategory        = errors.New("unknown category")
	ErrInvalidCatalog         = errors.New("invalid catalog")
	ErrEmailRequired          = errors.New("email is required")
	ErrFavoritesLoginRequired = errors.New("login required to save favorites")
	ErrReviewsLoginRequired   = errors.New("login required to add reviews")
	ErrReviewIncomplete       = errors.New("review rating and comment are required")
	ErrReviewValidation       = errors.New("review validation failed")
	ErrInquiryIncomplete      = errors.New("inquiry name, email and message are required")
)

// Notice maps a rejection to the text shown to the visitor. Unknown errors
// map to an empty string.
func Notice(err error) string {
	switch {
	case errors.Is(err, ErrFavoritesLoginRequired):
		return NoticeFavoritesLoginRequired
	case errors.Is(err, ErrReviewsLoginRequired):
		return NoticeReviewsLoginRequired
	case errors.Is(err, ErrReviewIncomplete), errors.Is(err, ErrInquiryIncomplete):
		return NoticeFillAllFields
	case errors.Is(err, ErrEmailRequired):
		return NoticeEmailRequired
	default:
		return ""
	}
}
