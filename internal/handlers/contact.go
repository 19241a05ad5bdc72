package handlers

import (
	"encoding/hex"
	"errors"
	"net/http"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"

	"landing/internal/store"
)

const (
	contactSource     = "contact"
	maxNameLen        = 200
	maxCompanyLen     = 200
	maxEmailLen       = 254
	maxMessageLen     = 5000
	contactThanksPath = "/contact/thanks"
)

type contactPayload struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Company string `json:"company" form:"company"`
	Message string `json:"message" form:"message"`
	// Website is a honeypot; real visitors never see the field.
	Website string `json:"website" form:"website"`
}

func (p *contactPayload) normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	p.Company = strings.TrimSpace(p.Company)
	p.Message = strings.TrimSpace(p.Message)
	p.Website = strings.TrimSpace(p.Website)
}

// validate returns field -> reason for every invalid field.
func (p contactPayload) validate() map[string]any {
	problems := map[string]any{}
	switch {
	case p.Name == "":
		problems["name"] = "required"
	case utf8.RuneCountInString(p.Name) > maxNameLen:
		problems["name"] = "too_long"
	}
	switch {
	case p.Email == "":
		problems["email"] = "required"
	case len(p.Email) > maxEmailLen:
		problems["email"] = "too_long"
	default:
		if addr, err := mail.ParseAddress(p.Email); err != nil || addr.Address != p.Email {
			problems["email"] = "invalid"
		}
	}
	if utf8.RuneCountInString(p.Company) > maxCompanyLen {
		problems["company"] = "too_long"
	}
	switch {
	case p.Message == "":
		problems["message"] = "required"
	case utf8.RuneCountInString(p.Message) > maxMessageLen:
		problems["message"] = "too_long"
	}
	return problems
}

// fingerprint identifies a submission independent of whitespace and email case.
func (p contactPayload) fingerprint() string {
	sum := blake2b.Sum256([]byte(strings.ToLower(p.Email) + "\x00" + p.Message))
	return hex.EncodeToString(sum[:])
}

// POST /contact
func (h *Handler) Contact(c echo.Context) error {
	var p contactPayload
	if err := c.Bind(&p); err != nil {
		return writeError(c, h.log, http.StatusBadRequest, "bad_request", "invalid contact payload", nil)
	}
	p.normalize()
	if problems := p.validate(); len(problems) > 0 {
		return writeError(c, h.log, http.StatusUnprocessableEntity, "validation_failed", "contact form is incomplete", problems)
	}

	rid := requestID(c)
	if p.Website != "" {
		h.log.Info("contact.honeypot", zap.String("request_id", rid), zap.String("remote_ip", c.RealIP()))
		return h.contactAccepted(c, "received")
	}

	fp := p.fingerprint()
	subject := strings.ToLower(p.Email)
	if h.dedupe.CheckAndMark(contactSource, subject, fp) {
		h.log.Info("contact.duplicate", zap.String("request_id", rid), zap.String("fingerprint", fp))
		return h.contactAccepted(c, "duplicate")
	}

	msg := &store.ContactMessage{
		Name:        p.Name,
		Email:       p.Email,
		Company:     p.Company,
		Message:     p.Message,
		Fingerprint: fp,
		RemoteIP:    c.RealIP(),
		UserAgent:   c.Request().UserAgent(),
		RequestID:   rid,
	}
	if err := h.db.InsertContactMessage(c.Request().Context(), msg); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			h.log.Info("contact.duplicate", zap.String("request_id", rid), zap.String("fingerprint", fp), zap.Bool("stored", true))
			return h.contactAccepted(c, "duplicate")
		}
		h.dedupe.Forget(contactSource, subject, fp)
		h.log.Error("contact.store_failed", zap.String("request_id", rid), zap.Error(err))
		return writeError(c, h.log, http.StatusInternalServerError, "store_error", "could not save your message, please try again", nil)
	}

	h.log.Info("contact.received",
		zap.String("request_id", rid),
		zap.String("fingerprint", fp),
		zap.String("company", p.Company),
		zap.Int("message_len", utf8.RuneCountInString(p.Message)),
		zap.Bool("stored", h.db.Connected()),
		zap.Int64("id", msg.ID),
	)
	return h.contactAccepted(c, "received")
}

func (h *Handler) contactAccepted(c echo.Context, status string) error {
	if wantsJSON(c) {
		return c.JSON(http.StatusOK, map[string]any{"status": status})
	}
	return c.Redirect(http.StatusSeeOther, contactThanksPath)
}
