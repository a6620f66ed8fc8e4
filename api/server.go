package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/rs/cors"

	"github.com/gazetteerhq/gazetteer/gazetteer"
)

const requestTimeout = 30 * time.Second

type handlers struct {
	service *gazetteer.Service
	version string
}

// MakeServer builds the HTTP surface of the service: the two lookup
// endpoints and the health endpoint, wrapped into the standard
// middleware chain.
func MakeServer(service *gazetteer.Service, version string, corsOrigins []string) *chi.Mux {
	router := chi.NewRouter()
	h := handlers{
		service: service,
		version: version,
	}

	corsPolicy := cors.New(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{http.MethodGet},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	router.Use(middleware.StripSlashes)
	router.Use(middleware.Timeout(requestTimeout))
	router.Use(middleware.Recoverer)
	router.Use(corsPolicy.Handler)

	router.Get("/geolocate/{ip}", h.geolocateIP)
	router.Get("/geolocate", h.geolocateClient)
	router.Get("/health", h.health)

	return router
}
