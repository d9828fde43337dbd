package cli

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"strategy-builder/internal/catalog"
	"strategy-builder/internal/config"
)

func appWithCatalogSource(source, url string) *App {
	return &App{
		Config: &config.Config{
			Catalog: config.CatalogConfig{Source: source, URL: url},
		},
		Logger: zerolog.Nop(),
	}
}

func TestLoadCatalogBuiltin(t *testing.T) {
	app := appWithCatalogSource("builtin", "")

	if err := app.loadCatalog(context.Background()); err != nil {
		t.Fatalf("loadCatalog: %v", err)
	}
	if app.Catalog.Len() != catalog.Builtin().Len() {
		t.Errorf("catalog has %d indicators, want %d", app.Catalog.Len(), catalog.Builtin().Len())
	}
}

func TestLoadCatalogRemoteFailureFallsBackToEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	app := appWithCatalogSource("remote", srv.URL)

	if err := app.loadCatalog(context.Background()); err != nil {
		t.Fatalf("loadCatalog should not fail, got %v", err)
	}
	if app.Catalog == nil {
		t.Fatal("catalog left nil after failed fetch")
	}
	if app.Catalog.Len() != 0 {
		t.Errorf("fallback catalog has %d indicators, want explicitly empty", app.Catalog.Len())
	}
	if _, err := app.Catalog.Lookup("rsi"); err == nil {
		t.Error("empty fallback catalog resolved an indicator")
	}
}
