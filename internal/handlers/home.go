package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"landing/internal/views"
)

// GET /
func (h *Handler) Home(c echo.Context) error {
	return render(c, http.StatusOK, views.HomePage(h.Site(), h.canonical("/")))
}

// GET /contact/thanks
func (h *Handler) ContactThanks(c echo.Context) error {
	return render(c, http.StatusOK, views.ThanksPage(h.Site()))
}

func (h *Handler) canonical(path string) string {
	if h.cfg.SiteBaseURL == "" {
		return ""
	}
	return h.cfg.SiteBaseURL + path
}
