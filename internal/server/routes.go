package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/postsblog/backend/internal/constants"
	"github.com/postsblog/backend/internal/middleware"
	"github.com/postsblog/backend/internal/utils"
)

// SetupRoutes configures the router with all middleware and endpoints.
// The account endpoints live under /user; operational endpoints are
// mounted at the root.
func (s *Server) SetupRoutes() {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(s.Config.CORS.AllowedOrigins))
	if s.Config.Logging.RequestLog {
		r.Use(middleware.RequestLogger())
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.NotFound(w, "")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.MethodNotAllowed(w)
	})

	// Operational endpoints
	r.Get(constants.RouteHealth, s.Handlers.GenericHandler.Health)
	r.Get(constants.RouteVersion, s.Handlers.GenericHandler.Version)

	// Account endpoints
	r.Post(constants.RouteSignup, s.Handlers.UserHandler.Signup)
	r.Post(constants.RouteLogin, s.Handlers.UserHandler.Login)
	r.Post(constants.RouteResetPassword, s.Handlers.UserHandler.RequestReset)
	r.Post(constants.RouteUpdatePassword, s.Handlers.UserHandler.ConfirmReset)

	// Authenticated endpoints
	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(s.jwtService))
		r.Get(constants.RouteMe, s.Handlers.UserHandler.Me)
	})

	s.router = r
}
