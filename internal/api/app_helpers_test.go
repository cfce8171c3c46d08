package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"coffeejournal/internal/db"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const testBrowserOrigin = "http://localhost:5173"

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dir := t.TempDir()
	database, err := db.OpenSQLite(filepath.Join(dir, "test.db"), zerolog.Nop())
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	handler, err := NewHandler(database, "test-secret-key", false, filepath.Join(dir, "uploads"), zerolog.Nop())
	if err != nil {
		t.Fatalf("build handler: %v", err)
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		// Fiber's 4 MB default rejects oversized uploads before routing;
		// raise it so the handler's own size check can answer with 413.
		BodyLimit: 8 * 1024 * 1024,
	})
	app.Use(cors.New(cors.Config{
		AllowOrigins:     testBrowserOrigin,
		AllowCredentials: true,
	}))
	RegisterRoutes(app, handler)
	return app, database
}

func jsonRequest(t *testing.T, method string, target string, payload string, cookies ...string) *http.Request {
	t.Helper()

	var body io.Reader
	if payload != "" {
		body = strings.NewReader(payload)
	}
	request := httptest.NewRequest(method, target, body)
	if payload != "" {
		request.Header.Set("Content-Type", "application/json")
	}
	pairs := make([]string, 0, len(cookies))
	for _, cookie := range cookies {
		if cookie != "" {
			pairs = append(pairs, cookie)
		}
	}
	if len(pairs) > 0 {
		request.Header.Set("Cookie", strings.Join(pairs, "; "))
	}
	return request
}

func performRequest(t *testing.T, app *fiber.App, request *http.Request) *http.Response {
	t.Helper()
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", request.Method, request.URL.Path, err)
	}
	return response
}

func decodeBody(t *testing.T, response *http.Response, target interface{}) {
	t.Helper()
	defer response.Body.Close()
	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		t.Fatalf("decode response %s: %v", bytes.TrimSpace(raw), err)
	}
}

func extractCookie(t *testing.T, response *http.Response, name string) string {
	t.Helper()
	for _, cookie := range response.Cookies() {
		if cookie.Name == name && cookie.Value != "" {
			return cookie.Name + "=" + cookie.Value
		}
	}
	return ""
}

// registerTestUser creates an account through the public endpoint and returns
// the auth cookie for follow-up requests.
func registerTestUser(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	payload := `{"email":"` + email + `","password":"StrongPass1","display_name":"Tester"}`
	response := performRequest(t, app, jsonRequest(t, http.MethodPost, "/api/auth/register", payload))
	defer response.Body.Close()
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("register returned status %d", response.StatusCode)
	}

	cookie := extractCookie(t, response, authCookieName)
	if cookie == "" {
		t.Fatal("register did not set the auth cookie")
	}
	return cookie
}

// startWizardSession issues the client-token cookie by touching the wizard.
func startWizardSession(t *testing.T, app *fiber.App) string {
	t.Helper()

	response := performRequest(t, app, jsonRequest(t, http.MethodGet, "/api/wizard", ""))
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("wizard state returned status %d", response.StatusCode)
	}

	cookie := extractCookie(t, response, clientCookieName)
	if cookie == "" {
		t.Fatal("wizard did not set the client token cookie")
	}
	return cookie
}

// fillWizard patches every section with valid data.
func fillWizard(t *testing.T, app *fiber.App, clientCookie string) {
	t.Helper()

	sections := map[string]string{
		"identity": `{"brand":"Onyx","coffee_name":"Monarch","bean_type":"arabica","origin":"Ethiopia"}`,
		"roast":    `{"roast_level":"dark","brew_method":"Espresso"}`,
		"sensory":  `{"aroma":"Molasses","flavor":"Dark chocolate","body":5}`,
		"flavor":   `{"acidity":2,"aftertaste":4,"aftertaste_description":"Syrupy"}`,
		"score":    `{"opinion":"Dessert in a cup","score":9}`,
	}
	for name, payload := range sections {
		response := performRequest(t, app,
			jsonRequest(t, http.MethodPatch, "/api/wizard/sections/"+name, payload, clientCookie))
		response.Body.Close()
		if response.StatusCode != http.StatusOK {
			t.Fatalf("patch %s returned status %d", name, response.StatusCode)
		}
	}
}

// waitForWizardSection polls the wizard state until an auto-advance timer has
// moved the session to the wanted section.
func waitForWizardSection(t *testing.T, app *fiber.App, clientCookie string, want int) {
	t.Helper()

	deadline := time.Now().Add(time.Second)
	last := -1
	for time.Now().Before(deadline) {
		response := performRequest(t, app, jsonRequest(t, http.MethodGet, "/api/wizard", "", clientCookie))
		state := wizardState{}
		decodeBody(t, response, &state)
		last = state.CurrentSection
		if last == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("wizard never reached section %d, at %d", want, last)
}

func readAPIError(t *testing.T, response *http.Response) string {
	t.Helper()
	payload := struct {
		Error string `json:"error"`
	}{}
	decodeBody(t, response, &payload)
	return payload.Error
}
