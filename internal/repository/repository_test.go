package repository_test

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"movie_catalog/internal/repository"
	"movie_catalog/model"

	"github.com/google/uuid"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(
		sqlite.Open(filepath.Join(t.TempDir(), "catalog.db")+"?_busy_timeout=5000"),
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

func seedUser(t *testing.T, userRepo repository.IUserRepository, name string) *model.User {
	t.Helper()
	user := &model.User{Id: uuid.NewString(), Name: name}
	if err := userRepo.CreateUser(user); err != nil {
		t.Fatalf("seed user %s: %v", name, err)
	}
	return user
}

func seedMovie(t *testing.T, movieRepo repository.IMovieRepository, ownerId string, title string) *model.Movie {
	t.Helper()
	movie := &model.Movie{Id: uuid.NewString(), OwnerId: ownerId, Title: title}
	if err := movieRepo.AddMovie(movie); err != nil {
		t.Fatalf("seed movie %s: %v", title, err)
	}
	return movie
}

func TestCreateUserThenListIncludesUser(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)

	created := seedUser(t, userRepo, "Alice")

	users, err := userRepo.GetUsers()
	if err != nil {
		t.Fatalf("GetUsers: %v", err)
	}
	found := false
	for i := range users {
		if users[i].Id == created.Id && users[i].Name == "Alice" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected created user in listing, got %v", users)
	}
}

func TestDeleteUserCascadesToMovies(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	movieRepo := repository.NewMovieRepository(db)

	user := seedUser(t, userRepo, "Alice")
	first := seedMovie(t, movieRepo, user.Id, "Inception")
	second := seedMovie(t, movieRepo, user.Id, "Memento")

	if err := userRepo.DeleteUser(user.Id); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}

	if _, err := movieRepo.GetUserMovies(user.Id); !errors.Is(err, model.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound after cascade, got %v", err)
	}
	for _, movieId := range []string{first.Id, second.Id} {
		if _, err := movieRepo.GetMovieById(movieId); !errors.Is(err, model.ErrMovieNotFound) {
			t.Fatalf("expected movie %s gone after cascade, got %v", movieId, err)
		}
	}
}

func TestDeleteUserUnknownIdFails(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)

	if err := userRepo.DeleteUser(uuid.NewString()); !errors.Is(err, model.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAddMovieUnknownOwnerFails(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	movieRepo := repository.NewMovieRepository(db)

	movie := &model.Movie{Id: uuid.NewString(), OwnerId: uuid.NewString(), Title: "Inception"}
	if err := movieRepo.AddMovie(movie); !errors.Is(err, model.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestDuplicateTitlesAreAllowedWithinOneCollection(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	movieRepo := repository.NewMovieRepository(db)

	user := seedUser(t, userRepo, "Alice")
	seedMovie(t, movieRepo, user.Id, "Inception")
	seedMovie(t, movieRepo, user.Id, "Inception")

	movies, err := movieRepo.GetUserMovies(user.Id)
	if err != nil {
		t.Fatalf("GetUserMovies: %v", err)
	}
	if len(movies) != 2 {
		t.Fatalf("expected both duplicates stored, got %d movies", len(movies))
	}
}

func TestGetUserMoviesEmptyCollection(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	movieRepo := repository.NewMovieRepository(db)

	user := seedUser(t, userRepo, "Bob")

	movies, err := movieRepo.GetUserMovies(user.Id)
	if err != nil {
		t.Fatalf("GetUserMovies: %v", err)
	}
	if len(movies) != 0 {
		t.Fatalf("expected empty collection, got %d movies", len(movies))
	}
}

func TestUpdateMovieTouchesOnlySuppliedFields(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	movieRepo := repository.NewMovieRepository(db)

	user := seedUser(t, userRepo, "Alice")
	director := "Christopher Nolan"
	externalRating := 8.8
	movie := &model.Movie{
		Id:             uuid.NewString(),
		OwnerId:        user.Id,
		Title:          "Inception",
		Director:       &director,
		ExternalRating: &externalRating,
	}
	if err := movieRepo.AddMovie(movie); err != nil {
		t.Fatalf("AddMovie: %v", err)
	}

	newTitle := "Inception (2010)"
	updated, err := movieRepo.UpdateMovie(movie.Id, model.MovieUpdate{Title: &newTitle})
	if err != nil {
		t.Fatalf("UpdateMovie: %v", err)
	}
	if updated.Title != newTitle {
		t.Fatalf("expected updated title, got %q", updated.Title)
	}
	if updated.Director == nil || *updated.Director != director {
		t.Fatalf("director must stay untouched, got %v", updated.Director)
	}
	if updated.ExternalRating == nil || *updated.ExternalRating != externalRating {
		t.Fatalf("external rating must stay untouched, got %v", updated.ExternalRating)
	}
}

func TestUpdateMovieUnknownIdFails(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	movieRepo := repository.NewMovieRepository(db)

	title := "Whatever"
	if _, err := movieRepo.UpdateMovie(uuid.NewString(), model.MovieUpdate{Title: &title}); !errors.Is(err, model.ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound, got %v", err)
	}
}

func TestSetUserRatingPersistsBoundaryValues(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	movieRepo := repository.NewMovieRepository(db)

	user := seedUser(t, userRepo, "Alice")

	for _, rating := range []float64{0, 10, 7.5} {
		movie := seedMovie(t, movieRepo, user.Id, "Inception")
		updated, err := movieRepo.SetUserRating(movie.Id, rating)
		if err != nil {
			t.Fatalf("SetUserRating(%v): %v", rating, err)
		}
		if updated.UserRating == nil || *updated.UserRating != rating {
			t.Fatalf("expected rating %v persisted, got %v", rating, updated.UserRating)
		}
	}
}

func TestSetUserRatingRejectsOutOfRange(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	movieRepo := repository.NewMovieRepository(db)

	user := seedUser(t, userRepo, "Alice")
	movie := seedMovie(t, movieRepo, user.Id, "Inception")

	for _, rating := range []float64{-1, 10.5} {
		if _, err := movieRepo.SetUserRating(movie.Id, rating); !errors.Is(err, model.ErrRatingOutOfRange) {
			t.Fatalf("expected ErrRatingOutOfRange for %v, got %v", rating, err)
		}
	}

	stored, err := movieRepo.GetMovieById(movie.Id)
	if err != nil {
		t.Fatalf("GetMovieById: %v", err)
	}
	if stored.UserRating != nil {
		t.Fatalf("rejected rating must not be persisted, got %v", *stored.UserRating)
	}
}

func TestCreatedAtSurvivesInsertAndScan(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	movieRepo := repository.NewMovieRepository(db)

	user := seedUser(t, userRepo, "Alice")
	movie := seedMovie(t, movieRepo, user.Id, "Inception")

	users, err := userRepo.GetUsers()
	if err != nil {
		t.Fatalf("GetUsers: %v", err)
	}
	for i := range users {
		if users[i].Id == user.Id && users[i].CreatedAt.IsZero() {
			t.Fatal("user createdAt came back zero after scan")
		}
	}

	stored, err := movieRepo.GetMovieById(movie.Id)
	if err != nil {
		t.Fatalf("GetMovieById: %v", err)
	}
	if stored.CreatedAt.IsZero() {
		t.Fatal("movie createdAt came back zero after scan")
	}
}

// A movie must never survive its deleted owner, even when the add and the
// cascade delete race each other.
func TestAddMovieRacingDeleteUserLeavesNoOrphan(t *testing.T) {
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	movieRepo := repository.NewMovieRepository(db)

	for i := 0; i < 20; i++ {
		user := seedUser(t, userRepo, "Alice")

		var wg sync.WaitGroup
		var deleteErr error
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 5; j++ {
				movie := &model.Movie{Id: uuid.NewString(), OwnerId: user.Id, Title: "Inception"}
				// allowed to fail once the owner is gone
				movieRepo.AddMovie(movie)
			}
		}()
		go func() {
			defer wg.Done()
			deleteErr = userRepo.DeleteUser(user.Id)
		}()
		wg.Wait()

		if deleteErr != nil {
			continue
		}
		var count int64
		if err := db.Model(&model.Movie{}).Where("\"ownerId\" = ?", user.Id).Count(&count).Error; err != nil {
			t.Fatalf("count movies: %v", err)
		}
		if count != 0 {
			t.Fatalf("iteration %d: %d movies survived their deleted owner", i, count)
		}
	}
}

func TestDeleteMovieSecondDeleteFails(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	movieRepo := repository.NewMovieRepository(db)

	user := seedUser(t, userRepo, "Alice")
	movie := seedMovie(t, movieRepo, user.Id, "Inception")

	if err := movieRepo.DeleteMovie(movie.Id); err != nil {
		t.Fatalf("DeleteMovie: %v", err)
	}
	if err := movieRepo.DeleteMovie(movie.Id); !errors.Is(err, model.ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound on repeat delete, got %v", err)
	}
}
