package repository

import (
	"errors"
	"movie_catalog/model"

	"gorm.io/gorm"
)

type IUserRepository interface {
	CreateUser(user *model.User) error
	GetUsers() ([]model.User, error)
	GetUserById(userId string) (*model.User, error)
	DeleteUser(userId string) error
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

//------------------------------------------
//------------------------------------------

func (r *UserRepository) CreateUser(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) GetUsers() ([]model.User, error) {
	users := make([]model.User, 0)
	err := r.db.
		Model(&model.User{}).
		Order("\"createdAt\" asc").
		Find(&users).
		Error
	return users, err
}

func (r *UserRepository) GetUserById(userId string) (*model.User, error) {
	var user model.User
	err := r.db.
		Model(&model.User{}).
		Where("id = ?", userId).
		First(&user).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes the user and every movie they own. Both deletes run in
// one transaction so a failure leaves no partial state and no orphaned movie
// can survive.
func (r *UserRepository) DeleteUser(userId string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("\"ownerId\" = ?", userId).Delete(&model.Movie{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", userId).Delete(&model.User{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return model.ErrUserNotFound
		}
		return nil
	})
}
