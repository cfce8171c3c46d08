package api

import (
	"net/http"
	"testing"
)

func TestHealthEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	response := performRequest(t, app, jsonRequest(t, http.MethodGet, "/healthz", ""))
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}
	payload := struct {
		Status string `json:"status"`
	}{}
	decodeBody(t, response, &payload)
	if payload.Status != "ok" {
		t.Fatalf("unexpected status: %q", payload.Status)
	}
}

func TestBrowserOriginAllowedWithCredentials(t *testing.T) {
	app, _ := newTestApp(t)

	request := jsonRequest(t, http.MethodGet, "/healthz", "")
	request.Header.Set("Origin", testBrowserOrigin)
	response := performRequest(t, app, request)

	if got := response.Header.Get("Access-Control-Allow-Origin"); got != testBrowserOrigin {
		t.Fatalf("expected allowed origin %q, got %q", testBrowserOrigin, got)
	}
	if response.Header.Get("Access-Control-Allow-Credentials") != "true" {
		t.Fatal("expected credentials to be allowed for cookie auth")
	}
}

func TestOptionsEndpointServesAllTables(t *testing.T) {
	app, _ := newTestApp(t)

	response := performRequest(t, app, jsonRequest(t, http.MethodGet, "/api/options", ""))
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}

	payload := map[string]interface{}{}
	decodeBody(t, response, &payload)

	keys := []string{
		"bean_types", "roast_levels", "brew_methods",
		"body_levels", "acidity_levels", "aftertaste_levels", "countries",
	}
	for _, key := range keys {
		values, ok := payload[key].([]interface{})
		if !ok || len(values) == 0 {
			t.Fatalf("expected non-empty table %q, got %#v", key, payload[key])
		}
	}

	methods := payload["brew_methods"].([]interface{})
	if len(methods) != 7 {
		t.Fatalf("expected seven brew methods, got %d", len(methods))
	}
	levels := payload["body_levels"].([]interface{})
	if len(levels) != 5 {
		t.Fatalf("expected five body levels, got %d", len(levels))
	}
}
