package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cardpie/pkg/deck"
	perrors "github.com/matzehuels/cardpie/pkg/errors"
)

// cardServer serves card info and artwork for the cards it knows.
type cardServer struct {
	*httptest.Server
	lookups   atomic.Int64
	downloads atomic.Int64
}

func newCardServer(t *testing.T, known ...string) *cardServer {
	t.Helper()

	art := image.NewNRGBA(image.Rect(0, 0, 421, 614))
	for y := 0; y < 614; y++ {
		for x := 0; x < 421; x++ {
			art.Set(x, y, color.NRGBA{R: 200, G: 40, B: 40, A: 255})
		}
	}
	var artPNG bytes.Buffer
	if err := png.Encode(&artPNG, art); err != nil {
		t.Fatal(err)
	}

	cs := &cardServer{}
	mux := http.NewServeMux()
	mux.HandleFunc("/cardinfo.php", func(w http.ResponseWriter, r *http.Request) {
		cs.lookups.Add(1)
		name := r.URL.Query().Get("fname")
		for _, k := range known {
			if k == name {
				json.NewEncoder(w).Encode(map[string]any{
					"data": []any{map[string]any{
						"name": name,
						"card_images": []any{map[string]any{
							"image_url": cs.URL + "/img/" + url.PathEscape(name) + ".jpg",
						}},
					}},
				})
				return
			}
		}
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"No card matching your query was found in the database."}`))
	})
	mux.HandleFunc("/img/", func(w http.ResponseWriter, r *http.Request) {
		cs.downloads.Add(1)
		w.Write(artPNG.Bytes())
	})
	cs.Server = httptest.NewServer(mux)
	t.Cleanup(cs.Close)
	return cs
}

// runCLI executes the root command with args against srv.
func runCLI(t *testing.T, srv *cardServer, args ...string) error {
	t.Helper()
	captureStdout(t)

	c := New(&bytes.Buffer{}, log.InfoLevel)
	root := c.RootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	if srv != nil {
		args = append(args, "--api-url", srv.URL+"/cardinfo.php")
	}
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}

func writeDeckFile(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "deck.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRender_WritesChartAndCachesImages(t *testing.T) {
	srv := newCardServer(t, "Dark Magician", "Blue-Eyes White Dragon")
	dir := t.TempDir()
	cfg := writeDeckFile(t, dir, `{
		"title": "Locals",
		"decks": {
			"Spellcasters": {"count": 3, "card": "Dark Magician"},
			"Dragons": {"count": 1, "card": "Blue-Eyes White Dragon"}
		}
	}`)
	out := filepath.Join(dir, "pie.png")
	cacheDir := filepath.Join(dir, "images")

	if err := runCLI(t, srv, "render", cfg, "-o", out, "--cache-dir", cacheDir); err != nil {
		t.Fatalf("render: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() < 100 || b.Dy() < 100 {
		t.Errorf("output bounds = %v, want a full chart", b)
	}

	for _, name := range []string{"dark_magician.jpg", "blue-eyes_white_dragon.jpg"} {
		if _, err := os.Stat(filepath.Join(cacheDir, name)); err != nil {
			t.Errorf("cache file %s: %v", name, err)
		}
	}
	if got := srv.downloads.Load(); got != 2 {
		t.Errorf("downloads = %d, want 2", got)
	}

	// A second run is served from the cache.
	if err := runCLI(t, srv, "render", cfg, "-o", out, "--cache-dir", cacheDir); err != nil {
		t.Fatalf("second render: %v", err)
	}
	if got := srv.downloads.Load(); got != 2 {
		t.Errorf("downloads after cached render = %d, want 2", got)
	}
}

func TestRender_UnknownCardWritesNothing(t *testing.T) {
	srv := newCardServer(t, "Dark Magician")
	dir := t.TempDir()
	cfg := writeDeckFile(t, dir, `{
		"title": "Locals",
		"decks": {
			"Spellcasters": {"count": 3, "card": "Dark Magician"},
			"Mystery": {"count": 1, "card": "Not A Real Card"}
		}
	}`)
	out := filepath.Join(dir, "pie.png")
	cacheDir := filepath.Join(dir, "images")

	err := runCLI(t, srv, "render", cfg, "-o", out, "--cache-dir", cacheDir)
	if !perrors.Is(err, perrors.ErrCodeAssetUnavailable) {
		t.Fatalf("render error = %v, want ASSET_UNAVAILABLE", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("output should not exist, stat err = %v", err)
	}
	if _, err := os.Stat(filepath.Join(cacheDir, "not_a_real_card.jpg")); !os.IsNotExist(err) {
		t.Errorf("unknown card should not be cached, stat err = %v", err)
	}
}

func TestRender_ZeroTotal(t *testing.T) {
	dir := t.TempDir()
	cfg := writeDeckFile(t, dir, `{
		"title": "Empty",
		"decks": {"Spellcasters": {"count": 0, "card": "Dark Magician"}}
	}`)
	out := filepath.Join(dir, "pie.png")

	err := runCLI(t, nil, "render", cfg, "-o", out, "--no-cache")
	if !perrors.Is(err, perrors.ErrCodeEmptyInput) {
		t.Fatalf("render error = %v, want EMPTY_INPUT", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("output should not exist, stat err = %v", err)
	}
}

func TestRender_KeepsPreviousOutputOnFailure(t *testing.T) {
	dir := t.TempDir()
	cfg := writeDeckFile(t, dir, `{"title": "Empty", "decks": {}}`)
	out := filepath.Join(dir, "pie.png")
	if err := os.WriteFile(out, []byte("previous"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := runCLI(t, nil, "render", cfg, "-o", out, "--no-cache"); err == nil {
		t.Fatal("render with no decks should fail")
	}
	data, err := os.ReadFile(out)
	if err != nil || string(data) != "previous" {
		t.Errorf("previous output changed: %q, %v", data, err)
	}
}

func TestRender_InvalidFlags(t *testing.T) {
	dir := t.TempDir()
	cfg := writeDeckFile(t, dir, `{"title": "x", "decks": {"A": {"count": 1, "card": "Kuriboh"}}}`)

	tests := []struct {
		name string
		args []string
	}{
		{"zero zoom", []string{"--zoom", "0"}},
		{"zero workers", []string{"--workers", "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"render", cfg, "--no-cache"}, tt.args...)
			err := runCLI(t, nil, args...)
			if !perrors.Is(err, perrors.ErrCodeInvalidInput) {
				t.Errorf("error = %v, want INVALID_INPUT", err)
			}
		})
	}
}

func TestCachePathAndClear(t *testing.T) {
	dir := t.TempDir()
	cacheDir := filepath.Join(dir, "images")
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"dark_magician.jpg", "kuriboh.jpg"} {
		if err := os.WriteFile(filepath.Join(cacheDir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	cfg := writeDeckFile(t, dir, `{"title": "x", "decks": {}, "cache": {"dir": "`+filepath.ToSlash(cacheDir)+`"}}`)

	buf := captureStdout(t)
	c := New(&bytes.Buffer{}, log.InfoLevel)
	root := c.RootCommand()
	root.SetArgs([]string{"cache", "path", cfg})
	if err := root.Execute(); err != nil {
		t.Fatalf("cache path: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != cacheDir {
		t.Errorf("cache path = %q, want %q", got, cacheDir)
	}

	root = c.RootCommand()
	root.SetArgs([]string{"cache", "clear", cfg})
	if err := root.Execute(); err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	entries, err := os.ReadDir(cacheDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("cache still holds %d entries", len(entries))
	}
	if !strings.Contains(buf.String(), "Cleared 2 cached images") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestCacheConfig_MissingDefaultFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := cacheConfig(nil, "")
	if err != nil {
		t.Fatalf("cacheConfig: %v", err)
	}
	if cfg.Dir != "deck_images" || cfg.Backend != "file" {
		t.Errorf("cacheConfig = %+v, want the defaults", cfg)
	}

	if _, err := cacheConfig([]string{"missing.json"}, ""); err == nil {
		t.Error("an explicit missing deck file should be an error")
	}
}

func TestOpenCache_UnknownBackend(t *testing.T) {
	if _, err := openCache(context.Background(), deck.CacheConfig{Backend: "s3"}); err == nil {
		t.Error("openCache should reject an unknown backend")
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{245 * 1024, "245.0 KB"},
		{3 * 1024 * 1024, "3.0 MB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.in); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
