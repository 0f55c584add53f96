package handler

import (
	"movie_catalog/internal/service"
	"movie_catalog/model"
	"movie_catalog/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type IUserHandler interface {
	CreateUser(c *fiber.Ctx) error
	GetUsers(c *fiber.Ctx) error
	DeleteUser(c *fiber.Ctx) error
}

type UserHandler struct {
	userService service.IUserService
}

func NewUserHandler(userService service.IUserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

//------------------------------------------
//------------------------------------------

// CreateUser godoc
//
//	@Summary		Create User
//	@Description	register a new user with an empty movie collection.
//	@Tags			User
//	@Param			user	body		model.CreateUserReq	true	"user name"
//	@Success		201		{object}	response.ResponseOKWithDataModel{data=model.User}
//	@Failure		400		{object}	response.ResponseErrorModel
//	@Router			/v1/user [post]
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req model.CreateUserReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	user, err := h.userService.CreateUser(req.Name)
	if err != nil {
		if code := model.GetErrorCode(err); code != 0 {
			return response.ResponseError(c, err.Error(), code)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseCreated(c, user)
}

// GetUsers godoc
//
//	@Summary		List Users
//	@Description	list all registered users, ordered by creation time.
//	@Tags			User
//	@Success		200	{object}	response.ResponseOKWithDataModel{data=[]model.User}
//	@Router			/v1/user [get]
func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.userService.GetUsers()
	if err != nil {
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, users)
}

// DeleteUser godoc
//
//	@Summary		Delete User
//	@Description	delete a user and every movie in their collection.
//	@Tags			User
//	@Param			userId	path		string	true	"userId"
//	@Success		200		{object}	response.ResponseOKModel
//	@Failure		400,404	{object}	response.ResponseErrorModel
//	@Router			/v1/user/:userId [delete]
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	userId := c.Params("userId", "")
	if userId == "" || userId == ":userId" {
		return response.ResponseError(c, response.InvalidUserId, fiber.StatusBadRequest)
	}

	err := h.userService.DeleteUser(userId)
	if err != nil {
		if code := model.GetErrorCode(err); code != 0 {
			return response.ResponseError(c, err.Error(), code)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOK(c, "")
}
