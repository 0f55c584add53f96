package handler

import (
	"movie_catalog/internal/service"
	"movie_catalog/model"
	"movie_catalog/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type ICatalogHandler interface {
	SearchMovies(c *fiber.Ctx) error
	AddMovie(c *fiber.Ctx) error
	GetUserMovies(c *fiber.Ctx) error
	UpdateMovie(c *fiber.Ctx) error
	SetUserRating(c *fiber.Ctx) error
	DeleteMovie(c *fiber.Ctx) error
}

type CatalogHandler struct {
	catalogService service.ICatalogService
}

func NewCatalogHandler(catalogService service.ICatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

//------------------------------------------
//------------------------------------------

// SearchMovies godoc
//
//	@Summary		Search Movies
//	@Description	search the external metadata source, returns candidates for selection.
//	@Tags			Movie
//	@Param			query		query		string	true	"title to search for"
//	@Success		200			{object}	response.ResponseOKWithDataModel{data=[]model.CandidateSummary}
//	@Failure		400,404,503	{object}	response.ResponseErrorModel
//	@Router			/v1/movie/search [get]
func (h *CatalogHandler) SearchMovies(c *fiber.Ctx) error {
	query := c.Query("query", "")
	if query == "" {
		return response.ResponseError(c, response.InvalidQuery, fiber.StatusBadRequest)
	}

	candidates, err := h.catalogService.SearchMovies(c.Context(), query)
	if err != nil {
		if code := model.GetErrorCode(err); code != 0 {
			return response.ResponseError(c, err.Error(), code)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, candidates)
}

// AddMovie godoc
//
//	@Summary		Add Movie
//	@Description	fetch full metadata for the selected external id and add it to the user's collection.
//	@Tags			Movie
//	@Param			userId		path		string				true	"userId"
//	@Param			movie		body		model.AddMovieReq	true	"selected external id"
//	@Success		201			{object}	response.ResponseOKWithDataModel{data=model.MovieRes}
//	@Failure		400,404,503	{object}	response.ResponseErrorModel
//	@Router			/v1/movie/:userId [post]
func (h *CatalogHandler) AddMovie(c *fiber.Ctx) error {
	userId := c.Params("userId", "")
	if userId == "" || userId == ":userId" {
		return response.ResponseError(c, response.InvalidUserId, fiber.StatusBadRequest)
	}
	var req model.AddMovieReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}
	if req.ExternalId == "" {
		return response.ResponseError(c, response.InvalidExternalId, fiber.StatusBadRequest)
	}

	movie, err := h.catalogService.AddMovie(c.Context(), userId, req.ExternalId)
	if err != nil {
		if code := model.GetErrorCode(err); code != 0 {
			return response.ResponseError(c, err.Error(), code)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseCreated(c, movie.ToRes())
}

// GetUserMovies godoc
//
//	@Summary		List Movies
//	@Description	list a user's movie collection, ordered by creation time.
//	@Tags			Movie
//	@Param			userId	path		string	true	"userId"
//	@Success		200		{object}	response.ResponseOKWithDataModel{data=[]model.MovieRes}
//	@Failure		400,404	{object}	response.ResponseErrorModel
//	@Router			/v1/user/:userId/movies [get]
func (h *CatalogHandler) GetUserMovies(c *fiber.Ctx) error {
	userId := c.Params("userId", "")
	if userId == "" || userId == ":userId" {
		return response.ResponseError(c, response.InvalidUserId, fiber.StatusBadRequest)
	}

	movies, err := h.catalogService.GetUserMovies(userId)
	if err != nil {
		if code := model.GetErrorCode(err); code != 0 {
			return response.ResponseError(c, err.Error(), code)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	res := make([]model.MovieRes, 0, len(movies))
	for i := range movies {
		res = append(res, movies[i].ToRes())
	}
	return response.ResponseOKWithData(c, res)
}

// UpdateMovie godoc
//
//	@Summary		Update Movie
//	@Description	partially update local movie fields, absent fields stay untouched.
//	@Tags			Movie
//	@Param			movieId	path		string				true	"movieId"
//	@Param			update	body		model.MovieUpdate	true	"fields to update"
//	@Success		200		{object}	response.ResponseOKWithDataModel{data=model.MovieRes}
//	@Failure		400,404	{object}	response.ResponseErrorModel
//	@Router			/v1/movie/:movieId [patch]
func (h *CatalogHandler) UpdateMovie(c *fiber.Ctx) error {
	movieId := c.Params("movieId", "")
	if movieId == "" || movieId == ":movieId" {
		return response.ResponseError(c, response.InvalidMovieId, fiber.StatusBadRequest)
	}
	var update model.MovieUpdate
	if err := c.BodyParser(&update); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	movie, err := h.catalogService.UpdateMovie(movieId, update)
	if err != nil {
		if code := model.GetErrorCode(err); code != 0 {
			return response.ResponseError(c, err.Error(), code)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, movie.ToRes())
}

// SetUserRating godoc
//
//	@Summary		Set Rating
//	@Description	set the user's personal rating, between 0 and 10 inclusive.
//	@Tags			Movie
//	@Param			movieId	path		string				true	"movieId"
//	@Param			rating	body		model.SetRatingReq	true	"rating value"
//	@Success		200		{object}	response.ResponseOKWithDataModel{data=model.MovieRes}
//	@Failure		400,404	{object}	response.ResponseErrorModel
//	@Router			/v1/movie/:movieId/rating [put]
func (h *CatalogHandler) SetUserRating(c *fiber.Ctx) error {
	movieId := c.Params("movieId", "")
	if movieId == "" || movieId == ":movieId" {
		return response.ResponseError(c, response.InvalidMovieId, fiber.StatusBadRequest)
	}
	var req model.SetRatingReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}
	if req.Rating == nil {
		return response.ResponseError(c, response.InvalidRating, fiber.StatusBadRequest)
	}

	movie, err := h.catalogService.SetUserRating(movieId, *req.Rating)
	if err != nil {
		if code := model.GetErrorCode(err); code != 0 {
			return response.ResponseError(c, err.Error(), code)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, movie.ToRes())
}

// DeleteMovie godoc
//
//	@Summary		Delete Movie
//	@Description	remove a movie from its owner's collection.
//	@Tags			Movie
//	@Param			movieId	path		string	true	"movieId"
//	@Success		200		{object}	response.ResponseOKModel
//	@Failure		400,404	{object}	response.ResponseErrorModel
//	@Router			/v1/movie/:movieId [delete]
func (h *CatalogHandler) DeleteMovie(c *fiber.Ctx) error {
	movieId := c.Params("movieId", "")
	if movieId == "" || movieId == ":movieId" {
		return response.ResponseError(c, response.InvalidMovieId, fiber.StatusBadRequest)
	}

	err := h.catalogService.DeleteMovie(movieId)
	if err != nil {
		if code := model.GetErrorCode(err); code != 0 {
			return response.ResponseError(c, err.Error(), code)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOK(c, "")
}
