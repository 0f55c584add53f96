package model

import "errors"

var ErrEmptyUserName = errors.New("user name cannot be empty")
var ErrEmptyTitle = errors.New("movie title cannot be empty")
var ErrEmptySearchQuery = errors.New("search query cannot be empty")
var ErrEmptyUpdate = errors.New("no fields supplied to update")
var ErrRatingOutOfRange = errors.New("rating must be between 0 and 10")
var ErrUserNotFound = errors.New("user not found")
var ErrMovieNotFound = errors.New("movie not found")
var ErrNoSearchResults = errors.New("no movies matched the query")
var ErrMetadataNotFound = errors.New("no metadata found for external id")
var ErrMetadataUnavailable = errors.New("metadata service unavailable")

func GetErrorCode(err error) int {
	code400 := []error{
		ErrEmptyUserName,
		ErrEmptyTitle,
		ErrEmptySearchQuery,
		ErrEmptyUpdate,
		ErrRatingOutOfRange,
	}
	code404 := []error{
		ErrUserNotFound,
		ErrMovieNotFound,
		ErrNoSearchResults,
		ErrMetadataNotFound,
	}
	code503 := []error{
		ErrMetadataUnavailable,
	}

	for _, e := range code400 {
		if errors.Is(err, e) {
			return 400
		}
	}
	for _, e := range code404 {
		if errors.Is(err, e) {
			return 404
		}
	}
	for _, e := range code503 {
		if errors.Is(err, e) {
			return 503
		}
	}

	return 0
}
