package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/simmaci/simmaci-backend/docs" // Import generated docs
	appMiddleware "github.com/simmaci/simmaci-backend/internal/middleware"
	"github.com/simmaci/simmaci-backend/internal/response"
)

type Router struct {
	authHandler     *AuthHandler
	schoolHandler   *SchoolHandler
	guruHandler     *GuruHandler
	skHandler       *SKHandler
	templateHandler *TemplateHandler
	jwtSecret       string
}

func NewRouter(
	authHandler *AuthHandler,
	schoolHandler *SchoolHandler,
	guruHandler *GuruHandler,
	skHandler *SKHandler,
	templateHandler *TemplateHandler,
	jwtSecret string,
) *Router {
	return &Router{
		authHandler:     authHandler,
		schoolHandler:   schoolHandler,
		guruHandler:     guruHandler,
		skHandler:       skHandler,
		templateHandler: templateHandler,
		jwtSecret:       jwtSecret,
	}
}

func (ro *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "https://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "Content-Disposition", "X-Simmaci-Warning"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, "Server berjalan dengan baik", map[string]string{"status": "ok"})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api/v1", func(r chi.Router) {

		// ── Auth (public) ────────────────────────────────
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", ro.authHandler.Login)
			r.Post("/refresh", ro.authHandler.RefreshToken)

			r.Group(func(r chi.Router) {
				r.Use(appMiddleware.Authenticate(ro.jwtSecret))
				r.Get("/me", ro.authHandler.Me)
			})
		})

		// ── Public: verifikasi QR pada dokumen SK ─────────
		r.Get("/verify/{id}", ro.skHandler.Verify)

		// ── Protected routes ──────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(appMiddleware.Authenticate(ro.jwtSecret))

			// User management (admin only)
			r.Route("/users", func(r chi.Router) {
				r.Use(appMiddleware.RequireRole("admin"))
				r.Post("/", ro.authHandler.Register)
			})

			// Madrasah
			r.Route("/schools", func(r chi.Router) {
				r.Get("/", ro.schoolHandler.GetAll)
				r.Post("/", ro.schoolHandler.Create)
				r.Get("/{id}", ro.schoolHandler.GetByID)
				r.Put("/{id}", ro.schoolHandler.Update)
				r.Delete("/{id}", ro.schoolHandler.Delete)
			})

			// Guru
			r.Route("/teachers", func(r chi.Router) {
				r.Get("/", ro.guruHandler.GetAll)
				r.Post("/", ro.guruHandler.Create)
				r.Get("/{id}", ro.guruHandler.GetByID)
				r.Put("/{id}", ro.guruHandler.Update)
				r.Delete("/{id}", ro.guruHandler.Delete)
			})

			// Dokumen SK
			r.Route("/sk", func(r chi.Router) {
				r.Get("/", ro.skHandler.GetAll)
				r.Post("/", ro.skHandler.Create)
				r.Get("/{id}", ro.skHandler.GetByID)
				r.Patch("/{id}/status", ro.skHandler.UpdateStatus)
				r.Delete("/{id}", ro.skHandler.Delete)
				r.Post("/{id}/generate", ro.skHandler.Generate)
				r.Get("/{id}/receipt", ro.skHandler.Receipt)
			})

			// Template SK (admin only)
			r.Route("/templates", func(r chi.Router) {
				r.Use(appMiddleware.RequireRole("admin"))
				r.Get("/", ro.templateHandler.List)
				r.Post("/", ro.templateHandler.Upload)
				r.Delete("/{key}", ro.templateHandler.Delete)
			})

			// Pengaturan render (admin only)
			r.Route("/settings", func(r chi.Router) {
				r.Use(appMiddleware.RequireRole("admin"))
				r.Get("/", ro.templateHandler.GetSettings)
				r.Put("/", ro.templateHandler.UpdateSettings)
			})
		})
	})

	return r
}
