package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"landing/internal/content"
	"landing/internal/store"
	"landing/pkg/config"
)

func testConfig() config.Config {
	return config.Config{
		Port:              8080,
		NotFoundMode:      config.NotFoundModePage,
		NotFoundNavigator: config.NavigatorMeta,
		ContactDedupeTTL:  time.Minute,
	}
}

func newTestServer(t *testing.T, cfg config.Config) (*echo.Echo, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.InfoLevel)
	e := echo.New()
	h := RegisterRoutes(e, cfg, content.Default(), &store.DB{}, zap.New(core))
	t.Cleanup(h.Close)
	return e, logs
}

func do(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	errObj, ok := body["error"].(map[string]any)
	require.True(t, ok, "error envelope missing: %s", rec.Body.String())
	return errObj
}

func TestHome(t *testing.T) {
	e, _ := newTestServer(t, testConfig())
	rec := do(e, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	body := rec.Body.String()
	assert.Contains(t, body, `data-section="hero"`)
	assert.Contains(t, body, `data-section="contact"`)
	assert.NotContains(t, body, "Redirecting...")
}

func TestHome_CanonicalFromBaseURL(t *testing.T) {
	cfg := testConfig()
	cfg.SiteBaseURL = "https://northwind.example"
	e, _ := newTestServer(t, cfg)

	rec := do(e, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, rec.Body.String(), `<link rel="canonical" href="https://northwind.example/">`)
}

func TestNotFound_RendersRedirectPlaceholder(t *testing.T) {
	e, _ := newTestServer(t, testConfig())
	rec := do(e, httptest.NewRequest(http.MethodGet, "/pricing/enterprise", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
	body := rec.Body.String()
	assert.Contains(t, body, "Redirecting...")
	assert.Contains(t, body, "Taking you back to the home page")
	assert.Equal(t, 1, strings.Count(body, `<meta http-equiv="refresh" content="0; url=/">`))
}

func TestNotFound_ScriptNavigator(t *testing.T) {
	cfg := testConfig()
	cfg.NotFoundNavigator = config.NavigatorScript
	e, _ := newTestServer(t, cfg)

	rec := do(e, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := rec.Body.String()
	assert.Equal(t, 1, strings.Count(body, "window.location.replace("))
	assert.Contains(t, body, `<script data-target="/">`)
	assert.NotContains(t, body, "refresh")
}

func TestNotFound_RedirectMode(t *testing.T) {
	cfg := testConfig()
	cfg.NotFoundMode = config.NotFoundModeRedirect
	e, _ := newTestServer(t, cfg)

	rec := do(e, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
}

func TestNotFound_NonReadMethodGetsJSON(t *testing.T) {
	e, _ := newTestServer(t, testConfig())
	rec := do(e, httptest.NewRequest(http.MethodPost, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	errObj := decodeError(t, rec)
	assert.Equal(t, "not_found", errObj["code"])
	assert.Equal(t, rec.Header().Get(echo.HeaderXRequestID), errObj["request_id"])
}

func TestNotFound_HeadGetsPlaceholder(t *testing.T) {
	e, _ := newTestServer(t, testConfig())
	rec := do(e, httptest.NewRequest(http.MethodHead, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Body.String(), "Redirecting...")
	assert.NotContains(t, rec.Body.String(), `"not_found"`)
}

func TestStaticAssets(t *testing.T) {
	e, _ := newTestServer(t, testConfig())

	rec := do(e, httptest.NewRequest(http.MethodGet, "/static/css/site.css", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ".redirect-placeholder")

	rec = do(e, httptest.NewRequest(http.MethodGet, "/static/css/missing.css", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Redirecting...")
}

func TestHealthz(t *testing.T) {
	e, _ := newTestServer(t, testConfig())
	rec := do(e, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "not_connected", body["db"])
	assert.NotEmpty(t, body["version"])
}

func contactForm(values map[string]string) *http.Request {
	form := url.Values{}
	for k, v := range values {
		form.Set(k, v)
	}
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return req
}

func contactJSON(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func TestContact_FormRedirectsToThanks(t *testing.T) {
	e, logs := newTestServer(t, testConfig())
	rec := do(e, contactForm(map[string]string{
		"name":    "Ada Lovelace",
		"email":   "ada@example.com",
		"company": "Analytical Engines",
		"message": "We need a landing page.",
	}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/contact/thanks", rec.Header().Get(echo.HeaderLocation))

	received := logs.FilterMessage("contact.received").All()
	require.Len(t, received, 1)
	assert.Equal(t, false, received[0].ContextMap()["stored"])

	rec = do(e, httptest.NewRequest(http.MethodGet, "/contact/thanks", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Thanks for reaching out")
}

func TestContact_JSONAndDuplicate(t *testing.T) {
	e, logs := newTestServer(t, testConfig())
	payload := `{"name":"Ada","email":"ada@example.com","message":"Hello there"}`

	rec := do(e, contactJSON(payload))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"received"}`, rec.Body.String())

	// Same sender and message with different case and padding.
	rec = do(e, contactJSON(`{"name":"Ada","email":"ADA@example.com ","message":"  Hello there"}`))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"duplicate"}`, rec.Body.String())

	assert.Len(t, logs.FilterMessage("contact.received").All(), 1)
	assert.Len(t, logs.FilterMessage("contact.duplicate").All(), 1)
}

func TestContact_Validation(t *testing.T) {
	e, _ := newTestServer(t, testConfig())
	rec := do(e, contactJSON(`{"name":"","email":"not-an-email","message":""}`))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	errObj := decodeError(t, rec)
	assert.Equal(t, "validation_failed", errObj["code"])
	details, ok := errObj["details"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "required", details["name"])
	assert.Equal(t, "invalid", details["email"])
	assert.Equal(t, "required", details["message"])
}

func TestContact_MalformedJSON(t *testing.T) {
	e, _ := newTestServer(t, testConfig())
	rec := do(e, contactJSON(`{"name":`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_request", decodeError(t, rec)["code"])
}

func TestContact_Honeypot(t *testing.T) {
	e, logs := newTestServer(t, testConfig())
	rec := do(e, contactJSON(`{"name":"Bot","email":"bot@example.com","message":"buy now","website":"http://spam.example"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"received"}`, rec.Body.String())
	assert.Empty(t, logs.FilterMessage("contact.received").All())
	assert.Len(t, logs.FilterMessage("contact.honeypot").All(), 1)
}

func TestContactPayload_Fingerprint(t *testing.T) {
	a := contactPayload{Email: "a@example.com", Message: "hi"}
	b := contactPayload{Email: "A@EXAMPLE.COM", Message: "hi"}
	c := contactPayload{Email: "a@example.com", Message: "hello"}

	assert.Equal(t, a.fingerprint(), b.fingerprint())
	assert.NotEqual(t, a.fingerprint(), c.fingerprint())
	assert.Len(t, a.fingerprint(), 64)
}

func TestStructuredLogger_LogsFinalStatus(t *testing.T) {
	e, logs := newTestServer(t, testConfig())
	req := httptest.NewRequest(http.MethodGet, "/nowhere", nil)
	req.Header.Set(echo.HeaderXRequestID, "rid-123")
	rec := do(e, req)
	assert.Equal(t, "rid-123", rec.Header().Get(echo.HeaderXRequestID))

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, http.StatusNotFound, fields["status"])
	assert.Equal(t, "client_error", fields["result"])
	assert.Equal(t, "rid-123", fields["request_id"])
	assert.Equal(t, "/nowhere", fields["path"])
	assert.Equal(t, "page", fields["source"])
}

func TestRecover_ReturnsStructured500(t *testing.T) {
	e, logs := newTestServer(t, testConfig())
	e.GET("/boom", func(c echo.Context) error { panic("kaboom") })

	rec := do(e, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal_error", decodeError(t, rec)["code"])
	assert.Len(t, logs.FilterMessage("panic").All(), 1)
}

func TestDetectSource(t *testing.T) {
	cases := map[string]string{
		"/static/css/site.css": "static",
		"/contact":             "contact",
		"/contact/thanks":      "contact",
		"/healthz":             "health",
		"/":                    "page",
		"/anything":            "page",
	}
	for path, want := range cases {
		assert.Equal(t, want, DetectSource(path), path)
	}
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "not_found", errorCode(http.StatusNotFound))
	assert.Equal(t, "internal_error", errorCode(http.StatusBadGateway))
	assert.Equal(t, "unauthorized", errorCode(http.StatusUnauthorized))
}

func TestHomeHandler_Direct(t *testing.T) {
	e := echo.New()
	h := NewHandler(testConfig(), content.Default(), nil, nil)
	defer h.Close()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Home(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewHandler_WidgetFromConfig(t *testing.T) {
	cfg := testConfig()
	cfg.ElevenLabsAgentID = "agent_env"
	cfg.ElevenLabsScriptURL = "https://cdn.example/widget.js"
	h := NewHandler(cfg, content.Default(), nil, nil)
	defer h.Close()

	assert.Equal(t, "agent_env", h.Site().Widget.AgentID)
	assert.Equal(t, "https://cdn.example/widget.js", h.Site().Widget.ScriptURL)

	e := echo.New()
	rec := httptest.NewRecorder()
	require.NoError(t, h.Home(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)))
	assert.Contains(t, rec.Body.String(), `<elevenlabs-convai agent-id="agent_env">`)
}

func TestSetSite_SwapsServedContent(t *testing.T) {
	e := echo.New()
	h := RegisterRoutes(e, testConfig(), content.Default(), nil, zap.NewNop())
	defer h.Close()

	next := content.Default()
	next.Hero.Headline = "Fresh headline"
	h.SetSite(next)

	rec := do(e, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, rec.Body.String(), "Fresh headline")
}
