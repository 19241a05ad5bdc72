package handlers

import (
	"sync/atomic"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"landing/internal/content"
	"landing/internal/store"
	"landing/internal/views"
	"landing/internal/web"
	"landing/pkg/config"
)

// RegisterRoutes wires middleware, routes and the error handler onto e.
// The returned Handler owns a Deduper; call Close on shutdown.
func RegisterRoutes(e *echo.Echo, cfg config.Config, site content.Site, db *store.DB, log *zap.Logger) *Handler {
	h := NewHandler(cfg, site, db, log)

	e.HTTPErrorHandler = h.HTTPErrorHandler
	e.Use(RequestID(), StructuredLogger(log), Recover(log))

	// Health
	e.GET("/healthz", h.Healthz)

	// Pages
	e.GET("/", h.Home)
	e.GET("/contact/thanks", h.ContactThanks)

	// Contact form
	e.POST("/contact", h.Contact)

	// Assets
	e.StaticFS("/static", web.Static())

	return h
}

type Handler struct {
	cfg    config.Config
	site   atomic.Pointer[content.Site]
	nav    views.Navigator
	dedupe *Deduper
	db     *store.DB
	log    *zap.Logger
}

func NewHandler(cfg config.Config, site content.Site, db *store.DB, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	h := &Handler{
		cfg:    cfg,
		nav:    views.NavigatorFor(cfg.NotFoundNavigator),
		dedupe: NewDeduper(cfg.ContactDedupeTTL),
		db:     db,
		log:    log,
	}
	h.SetSite(site)
	return h
}

// SetSite swaps the content served by every page; safe to call while serving.
func (h *Handler) SetSite(site content.Site) {
	site = site.WithWidget(h.cfg.ElevenLabsAgentID, h.cfg.ElevenLabsScriptURL)
	h.site.Store(&site)
}

func (h *Handler) Site() content.Site {
	return *h.site.Load()
}

func (h *Handler) Close() {
	h.dedupe.Stop()
}
