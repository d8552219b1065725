package auth

import (
	"voyago/globals"
	"voyago/middleware"
)

// Handler bundles the dependencies of the auth endpoints.
type Handler struct {
	Tokens     *middleware.TokenService
	BcryptCost int
}

func NewHandler(cfg *globals.Config, ts *middleware.TokenService) *Handler {
	return &Handler{Tokens: ts, BcryptCost: cfg.BcryptCost}
}
