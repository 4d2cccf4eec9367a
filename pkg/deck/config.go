package deck

import (
	perrors "github.com/matzehuels/cardpie/pkg/errors"
	"github.com/matzehuels/cardpie/pkg/render/pie/styles"
)

// Defaults.
const (
	DefaultConfigFile   = "deck.json"
	DefaultOutputFile   = "pie.png"
	DefaultCacheDir     = "deck_images"
	DefaultOutlineColor = "black"
	DefaultZoom         = 0.72
	DefaultWorkers      = 1
)

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Deck is one entry of the chart.
type Deck struct {
	Name  string  // Deck name, used in the label
	Count float64 // Number of decks played
	Card  string  // Card whose artwork fills the wedge
}

// CacheConfig selects where downloaded card images are kept.
type CacheConfig struct {
	Backend   string `json:"backend" toml:"backend"`
	Dir       string `json:"dir" toml:"dir"`
	RedisAddr string `json:"redis_addr" toml:"redis_addr"`
}

// Config is a chart configuration.
type Config struct {
	Title        string
	Decks        []Deck
	OutlineColor string
	Background   string
	ZoomLevel    float64
	Cache        CacheConfig
	Workers      int
	Retries      int
}

// SetDefaults fills unset options.
func (c *Config) SetDefaults() {
	if c.OutlineColor == "" {
		c.OutlineColor = DefaultOutlineColor
	}
	if c.ZoomLevel == 0 {
		c.ZoomLevel = DefaultZoom
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = BackendFile
	}
	if c.Cache.Dir == "" {
		c.Cache.Dir = DefaultCacheDir
	}
	if c.Workers == 0 {
		c.Workers = DefaultWorkers
	}
}

// Validate checks option values and card names. Deck counts are checked
// when proportions are computed, so an empty deck list passes.
func (c *Config) Validate() error {
	if c.ZoomLevel < 0 {
		return perrors.New(perrors.ErrCodeInvalidConfig, "zoom_level must be positive, got %v", c.ZoomLevel)
	}
	if c.Workers < 0 {
		return perrors.New(perrors.ErrCodeInvalidConfig, "workers must not be negative, got %d", c.Workers)
	}
	if c.Retries < 0 {
		return perrors.New(perrors.ErrCodeInvalidConfig, "retries must not be negative, got %d", c.Retries)
	}

	switch c.Cache.Backend {
	case "", BackendFile, BackendNone:
	case BackendRedis:
		if c.Cache.RedisAddr == "" {
			return perrors.New(perrors.ErrCodeInvalidConfig, "cache backend redis needs redis_addr")
		}
	default:
		return perrors.New(perrors.ErrCodeInvalidConfig, "unknown cache backend %q", c.Cache.Backend)
	}

	if c.OutlineColor != "" {
		if _, err := styles.ParseColor(c.OutlineColor); err != nil {
			return err
		}
	}
	if c.Background != "" {
		if _, err := styles.ParseColor(c.Background); err != nil {
			return err
		}
	}

	for _, d := range c.Decks {
		if err := perrors.ValidateCardName(d.Card); err != nil {
			return perrors.Wrap(perrors.ErrCodeInvalidConfig, err, "deck %q", d.Name)
		}
	}
	return nil
}

// Style returns the chart style described by the configuration.
func (c *Config) Style() (styles.Style, error) {
	st := styles.Default()
	outline, err := styles.ParseColorOr(c.OutlineColor, st.Outline)
	if err != nil {
		return st, err
	}
	bg, err := styles.ParseColorOr(c.Background, st.Background)
	if err != nil {
		return st, err
	}
	st.Outline, st.Background = outline, bg
	return st, nil
}
