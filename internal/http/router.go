package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	accountHandler "github.com/MrJamesThe3rd/banklink/internal/http/account"
	connectionHandler "github.com/MrJamesThe3rd/banklink/internal/http/connection"
)

func New(
	connectionsV1 *connectionHandler.Handler,
	accountsV1 *accountHandler.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/connections", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			connectionsV1.Routes(r)
		})

		r.Route("/accounts", accountsV1.Routes)
	})

	return router
}
