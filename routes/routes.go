package routes

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Rambadrinathan/vatika-studio/config"
	"github.com/Rambadrinathan/vatika-studio/controllers"
	auth "github.com/Rambadrinathan/vatika-studio/middleware"
)

func SetupRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS Configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   strings.Split(config.GetEnv("CORS_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000"), ","),
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Public / Auth
	r.Post("/auth/register", controllers.Register)
	r.Post("/auth/login", controllers.Login)

	// Catalog browsing
	r.Get("/catalog/planters", controllers.GetPlanters)
	r.Get("/catalog/plants", controllers.GetPlants)
	r.Get("/catalog/categories", controllers.GetCategories)

	// Recommendation + delivery pricing (pure, no auth needed)
	r.Get("/recommend", controllers.GetRecommendation)
	r.Get("/delivery/tiers", controllers.GetDeliveryTiers)
	r.Get("/delivery/quote", controllers.GetDeliveryQuote)

	// User routes (JWT protected)
	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Post("/generate", controllers.Generate)
		r.Get("/designs", controllers.GetDesigns)
		r.Delete("/designs", controllers.DeleteDesign)
	})

	// Server-Sent Events for design save notifications
	r.Get("/sse/designs", DesignSSE)

	// Static assets: product reference images and stored renders
	serveDir(r, "/planters", config.GetEnv("PLANTERS_DIR", "static/planters"))
	serveDir(r, "/renders", config.GetEnv("RENDERS_DIR", "data/renders"))

	return r
}

func serveDir(r chi.Router, prefix, dir string) {
	fs := http.StripPrefix(prefix+"/", http.FileServer(http.Dir(dir)))
	r.Get(prefix+"/*", func(w http.ResponseWriter, req *http.Request) {
		fs.ServeHTTP(w, req)
	})
}
