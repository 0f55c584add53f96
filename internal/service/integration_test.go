package service_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"movie_catalog/internal/repository"
	"movie_catalog/internal/service"
	"movie_catalog/model"
	"movie_catalog/pkg/omdb"
)

func newCatalogTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(
		sqlite.Open(filepath.Join(t.TempDir(), "catalog.db")),
		&gorm.Config{TranslateError: true},
	)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Movie{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newFakeMetadataServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Query().Get("s") == "Inception":
			fmt.Fprint(w, `{
				"Search": [
					{"Title": "Inception", "Year": "2010", "imdbID": "tt1375666", "Type": "movie", "Poster": "https://img.example/inception.jpg"},
					{"Title": "Inception: The Cobol Job", "Year": "2010", "imdbID": "tt5295894", "Type": "movie", "Poster": "N/A"}
				],
				"totalResults": "2",
				"Response": "True"
			}`)
		case r.URL.Query().Get("i") == "tt1375666":
			fmt.Fprint(w, `{
				"Title": "Inception",
				"Year": "2010",
				"Director": "Christopher Nolan",
				"Poster": "https://img.example/inception.jpg",
				"imdbRating": "8.8",
				"imdbID": "tt1375666",
				"Response": "True"
			}`)
		default:
			fmt.Fprint(w, `{"Response": "False", "Error": "Movie not found!"}`)
		}
	}))
}

// Full user journey against real repositories and the real metadata client:
// create a user, search, pick a candidate, add it, then list the collection.
func TestCatalogEndToEndScenario(t *testing.T) {
	db := newCatalogTestDB(t)
	srv := newFakeMetadataServer(t)
	defer srv.Close()

	userSvc := service.NewUserService(repository.NewUserRepository(db))
	catalogSvc := service.NewCatalogService(
		repository.NewMovieRepository(db),
		omdb.NewClient(srv.URL, "test-key", 2*time.Second),
	)

	user, err := userSvc.CreateUser("Alice")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	candidates, err := catalogSvc.SearchMovies(context.Background(), "Inception")
	if err != nil {
		t.Fatalf("SearchMovies: %v", err)
	}
	var picked string
	for i := range candidates {
		if candidates[i].ExternalId == "tt1375666" {
			picked = candidates[i].ExternalId
		}
	}
	if picked == "" {
		t.Fatalf("expected tt1375666 among candidates, got %v", candidates)
	}

	added, err := catalogSvc.AddMovie(context.Background(), user.Id, picked)
	if err != nil {
		t.Fatalf("AddMovie: %v", err)
	}
	if added.ExternalRating == nil || *added.ExternalRating != 8.8 {
		t.Fatalf("expected external rating 8.8, got %v", added.ExternalRating)
	}

	movies, err := catalogSvc.GetUserMovies(user.Id)
	if err != nil {
		t.Fatalf("GetUserMovies: %v", err)
	}
	if len(movies) != 1 {
		t.Fatalf("expected 1 movie in the collection, got %d", len(movies))
	}

	res := movies[0].ToRes()
	if res.Title != "Inception" {
		t.Fatalf("expected Inception, got %q", res.Title)
	}
	if res.Director == nil || *res.Director != "Christopher Nolan" {
		t.Fatalf("expected director stored, got %v", res.Director)
	}
	if res.Year == nil || *res.Year != 2010 {
		t.Fatalf("expected year 2010, got %v", res.Year)
	}
	if res.ExternalRatingText != "8.8" {
		t.Fatalf("expected external rating text 8.8, got %q", res.ExternalRatingText)
	}
	if res.UserRatingText != model.NotRatedText {
		t.Fatalf("new movie must list as %q, got %q", model.NotRatedText, res.UserRatingText)
	}
}
