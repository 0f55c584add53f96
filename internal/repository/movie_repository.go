package repository

import (
	"errors"
	"movie_catalog/model"

	"gorm.io/gorm"
)

type IMovieRepository interface {
	AddMovie(movie *model.Movie) error
	GetMovieById(movieId string) (*model.Movie, error)
	GetUserMovies(ownerId string) ([]model.Movie, error)
	UpdateMovie(movieId string, update model.MovieUpdate) (*model.Movie, error)
	SetUserRating(movieId string, rating float64) (*model.Movie, error)
	DeleteMovie(movieId string) error
}

type MovieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

//------------------------------------------
//------------------------------------------

// AddMovie inserts the movie after checking the owner inside the same
// transaction, so a concurrent cascade delete of the owner yields
// ErrUserNotFound instead of an orphaned row. The foreign key constraint
// backs this up at the database level.
func (r *MovieRepository) AddMovie(movie *model.Movie) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.User{}).Where("id = ?", movie.OwnerId).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return model.ErrUserNotFound
		}

		if err := tx.Create(movie).Error; err != nil {
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				return model.ErrUserNotFound
			}
			return err
		}
		return nil
	})
}

func (r *MovieRepository) GetMovieById(movieId string) (*model.Movie, error) {
	var movie model.Movie
	err := r.db.
		Model(&model.Movie{}).
		Where("id = ?", movieId).
		First(&movie).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrMovieNotFound
		}
		return nil, err
	}
	return &movie, nil
}

func (r *MovieRepository) GetUserMovies(ownerId string) ([]model.Movie, error) {
	var count int64
	if err := r.db.Model(&model.User{}).Where("id = ?", ownerId).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, model.ErrUserNotFound
	}

	movies := make([]model.Movie, 0)
	err := r.db.
		Model(&model.Movie{}).
		Where("\"ownerId\" = ?", ownerId).
		Order("\"createdAt\" asc").
		Find(&movies).
		Error
	return movies, err
}

// UpdateMovie applies only the supplied fields, leaving the rest untouched.
// The external rating is deliberately not updatable here.
func (r *MovieRepository) UpdateMovie(movieId string, update model.MovieUpdate) (*model.Movie, error) {
	columns := map[string]interface{}{}
	if update.Title != nil {
		columns["title"] = *update.Title
	}
	if update.Year != nil {
		columns["year"] = *update.Year
	}
	if update.Director != nil {
		columns["director"] = *update.Director
	}
	if update.UserRating != nil {
		columns["userRating"] = *update.UserRating
	}
	if len(columns) == 0 {
		return nil, model.ErrEmptyUpdate
	}

	res := r.db.
		Model(&model.Movie{}).
		Where("id = ?", movieId).
		UpdateColumns(columns)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, model.ErrMovieNotFound
	}

	return r.GetMovieById(movieId)
}

func (r *MovieRepository) SetUserRating(movieId string, rating float64) (*model.Movie, error) {
	if err := model.ValidateUserRating(rating); err != nil {
		return nil, err
	}

	res := r.db.
		Model(&model.Movie{}).
		Where("id = ?", movieId).
		UpdateColumn("userRating", rating)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, model.ErrMovieNotFound
	}

	return r.GetMovieById(movieId)
}

// DeleteMovie removes the movie. Deleting an already removed movie is an
// error, not a no-op.
func (r *MovieRepository) DeleteMovie(movieId string) error {
	res := r.db.Where("id = ?", movieId).Delete(&model.Movie{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrMovieNotFound
	}
	return nil
}
