package service

import (
	"movie_catalog/internal/repository"
	"movie_catalog/model"
	"strings"

	"github.com/google/uuid"
)

type IUserService interface {
	CreateUser(name string) (*model.User, error)
	GetUsers() ([]model.User, error)
	DeleteUser(userId string) error
}

type UserService struct {
	userRepo repository.IUserRepository
}

func NewUserService(userRepo repository.IUserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

//------------------------------------------
//------------------------------------------

func (s *UserService) CreateUser(name string) (*model.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrEmptyUserName
	}

	user := &model.User{
		Id:   uuid.NewString(),
		Name: name,
	}
	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetUsers() ([]model.User, error) {
	return s.userRepo.GetUsers()
}

func (s *UserService) DeleteUser(userId string) error {
	if err := s.userRepo.DeleteUser(userId); err != nil {
		return err
	}

	go publishCatalogEvent(CatalogEvent{
		Event:  UserDeletedEvent,
		UserId: userId,
	})
	return nil
}
