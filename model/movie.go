package model

import (
	"strconv"
	"time"
)

type Movie struct {
	Id             string    `gorm:"column:id;type:uuid;not null;primaryKey;" json:"id"`
	OwnerId        string    `gorm:"column:ownerId;type:uuid;not null;index;" json:"ownerId"`
	Title          string    `gorm:"column:title;type:text;not null;" json:"title"`
	Year           *int      `gorm:"column:year;type:integer;" json:"year"`
	Director       *string   `gorm:"column:director;type:text;" json:"director"`
	PosterUrl      *string   `gorm:"column:posterUrl;type:text;" json:"posterUrl"`
	ExternalRating *float64  `gorm:"column:externalRating;type:decimal(4,1);" json:"externalRating"`
	UserRating     *float64  `gorm:"column:userRating;type:decimal(4,1);" json:"userRating"`
	ExternalId     *string   `gorm:"column:externalId;type:text;" json:"externalId"`
	CreatedAt      time.Time `gorm:"column:createdAt;not null;" json:"createdAt"`
}

func (Movie) TableName() string {
	return "Movie"
}

//---------------------------------------
//---------------------------------------

// CandidateSummary is a lightweight search result, returned for user
// disambiguation before the full detail fetch.
type CandidateSummary struct {
	ExternalId string  `json:"externalId"`
	Title      string  `json:"title"`
	Year       *int    `json:"year"`
	PosterUrl  *string `json:"posterUrl"`
}

// MovieDetails is the normalized form of an external metadata record.
// Nil fields mean the source did not provide a usable value.
type MovieDetails struct {
	ExternalId     string   `json:"externalId"`
	Title          string   `json:"title"`
	Year           *int     `json:"year"`
	Director       *string  `json:"director"`
	PosterUrl      *string  `json:"posterUrl"`
	ExternalRating *float64 `json:"externalRating"`
}

// MovieUpdate carries a partial edit. Nil fields are left untouched.
type MovieUpdate struct {
	Title      *string  `json:"title"`
	Year       *int     `json:"year"`
	Director   *string  `json:"director"`
	UserRating *float64 `json:"userRating"`
}

func (u MovieUpdate) IsEmpty() bool {
	return u.Title == nil && u.Year == nil && u.Director == nil && u.UserRating == nil
}

type AddMovieReq struct {
	ExternalId string `json:"externalId"`
}

type SetRatingReq struct {
	Rating *float64 `json:"rating"`
}

//---------------------------------------
//---------------------------------------

type MovieRes struct {
	Movie
	ExternalRatingText string `json:"externalRatingText"`
	UserRatingText     string `json:"userRatingText"`
}

func (m Movie) ToRes() MovieRes {
	return MovieRes{
		Movie:              m,
		ExternalRatingText: FormatRating(m.ExternalRating, NoExternalRatingText),
		UserRatingText:     FormatRating(m.UserRating, NotRatedText),
	}
}

const (
	NotRatedText         = "not rated"
	NoExternalRatingText = "N/A"
)

// FormatRating renders a rating without a trailing ".0" (8.0 -> "8",
// 7.5 -> "7.5"). An absent rating renders as the given marker, never "0".
func FormatRating(rating *float64, missingText string) string {
	if rating == nil {
		return missingText
	}
	return strconv.FormatFloat(*rating, 'f', -1, 64)
}

func ValidateUserRating(rating float64) error {
	if rating < 0 || rating > 10 {
		return ErrRatingOutOfRange
	}
	return nil
}
