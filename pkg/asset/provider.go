package asset

import (
	"context"
	"errors"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/singleflight"

	"github.com/matzehuels/cardpie/pkg/cache"
	perrors "github.com/matzehuels/cardpie/pkg/errors"
	"github.com/matzehuels/cardpie/pkg/observability"
)

// Lookup locates and downloads card images. It is satisfied by
// *ygoprodeck.Client.
type Lookup interface {
	// ImageURL returns the image URL of the card best matching name.
	ImageURL(ctx context.Context, name string) (string, error)
	// Download returns the raw bytes at url.
	Download(ctx context.Context, url string) ([]byte, error)
}

// Provider resolves card names to decoded assets, consulting a byte cache
// before the lookup service. It is safe for concurrent use.
type Provider struct {
	cache  cache.Cache
	keyer  cache.Keyer
	lookup Lookup
	logger *log.Logger

	group  singleflight.Group
	mu     sync.Mutex
	assets map[string]*Asset
}

// ProviderOption configures a Provider.
type ProviderOption func(*Provider)

// WithKeyer overrides the cache key normalization. Defaults to
// [cache.DefaultKeyer].
func WithKeyer(k cache.Keyer) ProviderOption {
	return func(p *Provider) {
		if k != nil {
			p.keyer = k
		}
	}
}

// WithLogger sets the logger used for cache and fetch diagnostics.
func WithLogger(l *log.Logger) ProviderOption {
	return func(p *Provider) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewProvider creates a provider. A nil cache behaves like [cache.NewNullCache].
func NewProvider(c cache.Cache, lookup Lookup, opts ...ProviderOption) *Provider {
	if c == nil {
		c = cache.NewNullCache()
	}
	p := &Provider{
		cache:  c,
		keyer:  cache.NewDefaultKeyer(),
		lookup: lookup,
		logger: log.Default(),
		assets: make(map[string]*Asset),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Resolve returns the asset for a card name. See [Provider.ResolveCached].
func (p *Provider) Resolve(ctx context.Context, name string) (*Asset, error) {
	a, _, err := p.ResolveCached(ctx, name)
	return a, err
}

// ResolveCached returns the asset for a card name and whether it was served
// without contacting the lookup service.
//
// Names that normalize to the same key share one asset. Failures are
// ASSET_UNAVAILABLE (or INVALID_INPUT for a malformed name) and leave the
// cache untouched.
func (p *Provider) ResolveCached(ctx context.Context, name string) (*Asset, bool, error) {
	if err := perrors.ValidateCardName(name); err != nil {
		return nil, false, err
	}
	key := p.keyer.ImageKey(name)

	if a := p.memo(key); a != nil {
		return a, true, nil
	}

	type result struct {
		asset  *Asset
		cached bool
	}
	v, err, _ := p.group.Do(key, func() (any, error) {
		if a := p.memo(key); a != nil {
			return result{a, true}, nil
		}
		a, cached, err := p.load(ctx, name, key)
		if err != nil {
			return nil, err
		}
		p.mu.Lock()
		p.assets[key] = a
		p.mu.Unlock()
		return result{a, cached}, nil
	})
	if err != nil {
		return nil, false, err
	}
	r := v.(result)
	return r.asset, r.cached, nil
}

func (p *Provider) memo(key string) *Asset {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.assets[key]
}

func (p *Provider) load(ctx context.Context, name, key string) (*Asset, bool, error) {
	hooks := observability.Cache()

	data, hit, err := p.cache.Get(ctx, key)
	if err != nil {
		p.logger.Warn("image cache read failed", "key", key, "error", err)
		hit = false
	}
	if hit {
		a, err := Decode(key, data)
		if err == nil {
			hooks.OnCacheHit(ctx, key)
			p.logger.Debug("image cache hit", "card", name, "key", key)
			return a, true, nil
		}
		p.logger.Warn("discarding undecodable cached image", "key", key, "error", err)
		_ = p.cache.Delete(ctx, key)
	}
	hooks.OnCacheMiss(ctx, key)

	if p.lookup == nil {
		return nil, false, perrors.New(perrors.ErrCodeAssetUnavailable, "unable to find a card image for %s: no lookup service", name)
	}
	url, err := p.lookup.ImageURL(ctx, name)
	if err != nil {
		return nil, false, asUnavailable(err, name)
	}
	p.logger.Debug("fetching card image", "card", name, "url", url)
	data, err = p.lookup.Download(ctx, url)
	if err != nil {
		return nil, false, asUnavailable(err, name)
	}

	a, err := Decode(key, data)
	if err != nil {
		return nil, false, perrors.Wrap(perrors.ErrCodeAssetUnavailable, err, "card image for %s is not a decodable image", name)
	}
	if err := p.cache.Set(ctx, key, data); err != nil {
		return nil, false, perrors.Wrap(perrors.ErrCodeInternal, err, "store card image %s", key)
	}
	hooks.OnCacheSet(ctx, key, len(data))
	return a, false, nil
}

// asUnavailable leaves context errors and ASSET_UNAVAILABLE errors from the
// lookup service alone and wraps everything else as ASSET_UNAVAILABLE.
func asUnavailable(err error, name string) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if perrors.Is(err, perrors.ErrCodeAssetUnavailable) {
		return err
	}
	return perrors.Wrap(perrors.ErrCodeAssetUnavailable, err, "unable to find a card image for %s", name)
}
