package response

const (
	ServerError = "Server error, try again later"
	//----------------------
	UserNotFound   = "Cannot find user"
	MovieNotFound  = "Cannot find movie"
	NoSearchResult = "No movies matched the query"
	//----------------------
	InvalidUserId     = "Invalid userId"
	InvalidMovieId    = "Invalid movieId"
	InvalidQuery      = "Invalid search query"
	InvalidExternalId = "Invalid externalId"
	InvalidRating     = "Invalid rating"
	//----------------------
	BadRequestBody = "Incorrect request body"
	//----------------------
	MetadataUnavailable = "Movie metadata service unavailable, try again later"
	//----------------------
)
