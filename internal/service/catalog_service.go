package service

import (
	"context"
	"movie_catalog/internal/repository"
	"movie_catalog/model"
	"movie_catalog/pkg/omdb"
	"strings"

	"github.com/google/uuid"
)

type ICatalogService interface {
	SearchMovies(ctx context.Context, query string) ([]model.CandidateSummary, error)
	AddMovie(ctx context.Context, ownerId string, externalId string) (*model.Movie, error)
	GetUserMovies(ownerId string) ([]model.Movie, error)
	UpdateMovie(movieId string, update model.MovieUpdate) (*model.Movie, error)
	SetUserRating(movieId string, rating float64) (*model.Movie, error)
	DeleteMovie(movieId string) error
}

type CatalogService struct {
	movieRepo      repository.IMovieRepository
	metadataClient omdb.IClient
}

func NewCatalogService(movieRepo repository.IMovieRepository, metadataClient omdb.IClient) *CatalogService {
	return &CatalogService{
		movieRepo:      movieRepo,
		metadataClient: metadataClient,
	}
}

//------------------------------------------
//------------------------------------------

// SearchMovies returns candidates for the caller to pick from. Picking one is
// always a user decision, a "best match" is never chosen here. Zero matches
// surface as ErrNoSearchResults so the caller can prompt for another query.
func (s *CatalogService) SearchMovies(ctx context.Context, query string) ([]model.CandidateSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, model.ErrEmptySearchQuery
	}

	if cached, err := getCachedSearchResults(query); err == nil && cached != nil {
		if len(cached) == 0 {
			return nil, model.ErrNoSearchResults
		}
		return cached, nil
	}

	candidates, err := s.metadataClient.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	setSearchResultsCache(query, candidates)

	if len(candidates) == 0 {
		return nil, model.ErrNoSearchResults
	}
	return candidates, nil
}

// AddMovie fetches the full metadata for the selected external id and
// persists the normalized record. Nothing is persisted when the fetch fails,
// and the user rating always starts absent.
func (s *CatalogService) AddMovie(ctx context.Context, ownerId string, externalId string) (*model.Movie, error) {
	details, err := s.metadataClient.FetchDetails(ctx, externalId)
	if err != nil {
		return nil, err
	}

	movie := &model.Movie{
		Id:             uuid.NewString(),
		OwnerId:        ownerId,
		Title:          details.Title,
		Year:           details.Year,
		Director:       details.Director,
		PosterUrl:      details.PosterUrl,
		ExternalRating: details.ExternalRating,
		UserRating:     nil,
		ExternalId:     &details.ExternalId,
	}
	if err := s.movieRepo.AddMovie(movie); err != nil {
		return nil, err
	}

	go publishCatalogEvent(CatalogEvent{
		Event:   MovieAddedEvent,
		UserId:  ownerId,
		MovieId: movie.Id,
		Title:   movie.Title,
	})
	return movie, nil
}

func (s *CatalogService) GetUserMovies(ownerId string) ([]model.Movie, error) {
	return s.movieRepo.GetUserMovies(ownerId)
}

// UpdateMovie is a local edit only, external metadata is never re-fetched.
func (s *CatalogService) UpdateMovie(movieId string, update model.MovieUpdate) (*model.Movie, error) {
	if update.IsEmpty() {
		return nil, model.ErrEmptyUpdate
	}
	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		return nil, model.ErrEmptyTitle
	}
	if update.UserRating != nil {
		if err := model.ValidateUserRating(*update.UserRating); err != nil {
			return nil, err
		}
	}

	return s.movieRepo.UpdateMovie(movieId, update)
}

func (s *CatalogService) SetUserRating(movieId string, rating float64) (*model.Movie, error) {
	if err := model.ValidateUserRating(rating); err != nil {
		return nil, err
	}
	return s.movieRepo.SetUserRating(movieId, rating)
}

func (s *CatalogService) DeleteMovie(movieId string) error {
	movie, err := s.movieRepo.GetMovieById(movieId)
	if err != nil {
		return err
	}
	if err := s.movieRepo.DeleteMovie(movieId); err != nil {
		return err
	}

	go publishCatalogEvent(CatalogEvent{
		Event:   MovieDeletedEvent,
		UserId:  movie.OwnerId,
		MovieId: movie.Id,
		Title:   movie.Title,
	})
	return nil
}
