package deck

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	perrors "github.com/matzehuels/cardpie/pkg/errors"
)

type deckStat struct {
	Count *float64 `json:"count" toml:"count"`
	Card  string   `json:"card" toml:"card"`
}

type jsonConfig struct {
	Title        string          `json:"title"`
	Decks        json.RawMessage `json:"decks"`
	OutlineColor string          `json:"pie_outline_color"`
	Background   string          `json:"background"`
	ZoomLevel    float64         `json:"zoom_level"`
	Cache        CacheConfig     `json:"cache"`
	Workers      int             `json:"workers"`
	Retries      int             `json:"retries"`
}

type tomlConfig struct {
	Title        string              `toml:"title"`
	Decks        map[string]deckStat `toml:"decks"`
	OutlineColor string              `toml:"pie_outline_color"`
	Background   string              `toml:"background"`
	ZoomLevel    float64             `toml:"zoom_level"`
	Cache        CacheConfig         `toml:"cache"`
	Workers      int                 `toml:"workers"`
	Retries      int                 `toml:"retries"`
}

// Load reads the configuration at path, choosing the format by extension,
// then applies defaults and validates it.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeInvalidConfig, err, "open %s", path)
	}
	defer f.Close()

	var cfg *Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		cfg, err = ReadTOML(f)
	} else {
		cfg, err = Read(f)
	}
	if err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeInvalidConfig, err, "%s", path)
	}

	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Read decodes a JSON configuration from r. Read does not close r.
func Read(r io.Reader) (*Config, error) {
	var raw jsonConfig
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if len(raw.Decks) == 0 || string(raw.Decks) == "null" {
		return nil, fmt.Errorf("missing decks")
	}

	decks, err := decodeDecks(raw.Decks)
	if err != nil {
		return nil, err
	}
	return &Config{
		Title:        raw.Title,
		Decks:        decks,
		OutlineColor: raw.OutlineColor,
		Background:   raw.Background,
		ZoomLevel:    raw.ZoomLevel,
		Cache:        raw.Cache,
		Workers:      raw.Workers,
		Retries:      raw.Retries,
	}, nil
}

// decodeDecks walks the decks object token by token so document order
// survives.
func decodeDecks(data []byte) ([]Deck, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decks: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("decks must be an object")
	}

	var b builder
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decks: %w", err)
		}
		name := tok.(string)
		var st deckStat
		if err := dec.Decode(&st); err != nil {
			return nil, fmt.Errorf("deck %s: %w", name, err)
		}
		if err := b.add(name, st); err != nil {
			return nil, err
		}
	}
	return b.decks, nil
}

// ReadTOML decodes a TOML configuration from r.
func ReadTOML(r io.Reader) (*Config, error) {
	var raw tomlConfig
	md, err := toml.NewDecoder(r).Decode(&raw)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if !md.IsDefined("decks") {
		return nil, fmt.Errorf("missing decks")
	}

	var b builder
	for _, key := range md.Keys() {
		if len(key) != 2 || key[0] != "decks" {
			continue
		}
		if err := b.add(key[1], raw.Decks[key[1]]); err != nil {
			return nil, err
		}
	}
	return &Config{
		Title:        raw.Title,
		Decks:        b.decks,
		OutlineColor: raw.OutlineColor,
		Background:   raw.Background,
		ZoomLevel:    raw.ZoomLevel,
		Cache:        raw.Cache,
		Workers:      raw.Workers,
		Retries:      raw.Retries,
	}, nil
}

type builder struct {
	decks []Deck
	index map[string]int
}

func (b *builder) add(name string, st deckStat) error {
	if st.Count == nil {
		return fmt.Errorf("deck %s: missing count", name)
	}
	if st.Card == "" {
		return fmt.Errorf("deck %s: missing card", name)
	}
	d := Deck{Name: name, Count: *st.Count, Card: st.Card}
	if b.index == nil {
		b.index = make(map[string]int)
	}
	if i, ok := b.index[name]; ok {
		b.decks[i] = d
		return nil
	}
	b.index[name] = len(b.decks)
	b.decks = append(b.decks, d)
	return nil
}
