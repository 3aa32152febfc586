package cmd

import (
	"fmt"
	"net/http"
	"path"

	"github.com/UserHub/userhub-directory-services/api/handlers"
	"github.com/UserHub/userhub-directory-services/api/middleware"
	"github.com/UserHub/userhub-directory-services/api/services"
	docs "github.com/UserHub/userhub-directory-services/docs"
	"github.com/UserHub/userhub-directory-services/internal/web"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	httpSwagger "github.com/swaggo/http-swagger"
)

// @title UserHub Directory Services API
// @version v1
// @description This is the API for the UserHub Directory Services.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server for the user directory",
	Run: func(cmd *cobra.Command, args []string) {

		// Load the config, initialize the database and set up logging
		commonSetUp()
		defer userStore.Close()

		// Parse the embedded page templates
		pages, err := web.NewRenderer()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to parse page templates")
		}

		// Create routes
		r := mux.NewRouter()

		service := &services.Service{
			Config: appCfg,
			Store:  userStore,
			Pages:  pages,
		}

		// Apply the middleware to all routes
		r.Use(middleware.WithLogger)
		r.Use(middleware.WithRequestID)
		r.Use(middleware.NewRecovery(appCfg.IsDevelopment()))

		// Page routes
		r.HandleFunc("/", handlers.Index(service)).Methods(http.MethodGet)
		r.HandleFunc("/home", handlers.Index(service)).Methods(http.MethodGet)
		r.HandleFunc("/home/index", handlers.Index(service)).Methods(http.MethodGet)
		r.HandleFunc("/home/error", handlers.ErrorPage(service)).Methods(http.MethodGet)

		// Health route
		r.HandleFunc("/healthz", handlers.Healthz(service)).Methods(http.MethodGet)

		// User routes
		api := r.PathPrefix(appCfg.BasePath).Subrouter()
		api.HandleFunc("/users", handlers.GetUsers(service)).Methods(http.MethodGet)
		api.HandleFunc("/users/{user-id}", handlers.GetUser(service)).Methods(http.MethodGet)

		// Docs
		docs.SwaggerInfo.Host = appCfg.Host
		docs.SwaggerInfo.BasePath = appCfg.BasePath
		r.PathPrefix(appCfg.DocsPath).Handler(httpSwagger.Handler(
			httpSwagger.URL(path.Join(appCfg.DocsPath, "/doc.json")),
			httpSwagger.DeepLinking(true),
			httpSwagger.DocExpansion("none"),
			httpSwagger.DomID("swagger-ui"),
		)).Methods(http.MethodGet)

		log.Info().Msg(fmt.Sprintf("Server started at %s:%d", host, port))

		if err := http.ListenAndServe(fmt.Sprintf("%s:%d", host, port),
			r); err != nil {

			log.Error().Err(err).Msg("could not start server")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&host, "host", "0.0.0.0", "host to run the server on")
	serveCmd.Flags().IntVar(&port, "port", 8080, "port to run the server on")
}
