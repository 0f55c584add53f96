package main

import (
	"log"
	"movie_catalog/api"
	"movie_catalog/configs"
	"movie_catalog/db"
	"movie_catalog/db/redis"
	"movie_catalog/internal/handler"
	"movie_catalog/internal/repository"
	"movie_catalog/internal/service"
	"movie_catalog/pkg/omdb"
	"time"

	"github.com/getsentry/sentry-go"
)

// @title						Movie Catalog
// @version					1.0
// @description				Multi-user movie catalog backed by the OMDb api.
// @contact.name				API Support
// @license.name				Apache 2.0
// @license.url				http://www.apache.org/licenses/LICENSE-2.0.html
// @BasePath					/
// @Accept						json
// @Produce					json
func main() {
	configs.LoadEnvVariables()

	err := sentry.Init(sentry.ClientOptions{
		Dsn:     configs.GetConfigs().SentryDns,
		Release: configs.GetConfigs().SentryRelease,
		// Set TracesSampleRate to 1.0 to capture 100%
		// of transactions for performance monitoring.
		// We recommend adjusting this value in production,
		TracesSampleRate: 1,
		EnableTracing:    true,
		Debug:            configs.GetConfigs().Debug,
		AttachStacktrace: true,
	})
	if err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}
	// Flush buffered events before the program terminates.
	defer sentry.Flush(2 * time.Second)

	go redis.ConnectRedis()

	database, err := db.NewDatabase()
	if err != nil {
		if db.IsConnectionNotAcceptingError(err) {
			log.Fatalf("postgres is not accepting connections (starting up or shutting down): %s", err)
		}
		log.Fatalf("could not initialize postgres database connection: %s", err)
	}
	if err := database.Migrate(); err != nil {
		log.Fatalf("could not migrate database schema: %s", err)
	}

	metadataClient := omdb.NewClient(
		configs.GetConfigs().OmdbApiUrl,
		configs.GetConfigs().OmdbApiKey,
		configs.GetOmdbRequestTimeout(),
	)

	userRepo := repository.NewUserRepository(database.GetDB())
	userSvc := service.NewUserService(userRepo)
	userHandler := handler.NewUserHandler(userSvc)

	movieRepo := repository.NewMovieRepository(database.GetDB())
	catalogSvc := service.NewCatalogService(movieRepo, metadataClient)
	catalogHandler := handler.NewCatalogHandler(catalogSvc)

	api.InitRouter(userHandler, catalogHandler)
	api.Start("0.0.0.0:" + configs.GetConfigs().Port)
}
