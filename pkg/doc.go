// Package pkg provides the libraries behind cardpie, a renderer for pie
// charts whose wedges are filled with trading-card artwork.
//
// # Architecture
//
// The data flow of one render:
//
//	deck.json / deck.toml
//	         ↓
//	    [deck] (load, defaults, validation)
//	         ↓
//	    [render/pie/layout] (percentages, labels, wedges)
//	         ↓
//	    [asset] (cache or fetch via [integrations/ygoprodeck], then crop)
//	         ↓
//	    [render/pie/composite] (clip artwork into wedges)
//	         ↓
//	    [render/pie/sink] (tight PNG)
//
// [pipeline] runs these stages in order and is what the CLI calls.
//
// # Quick Start
//
//	cfg, err := deck.Load("deck.json")
//	if err != nil {
//	    return err
//	}
//	store, _ := cache.NewFileCache(cfg.Cache.Dir, 0)
//	runner := pipeline.NewRunner(store, nil, ygoprodeck.NewClient(1), nil)
//	defer runner.Close()
//
//	opts, _ := pipeline.OptionsFromConfig(cfg)
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    return err
//	}
//	return deck.WriteFile("pie.png", result.PNG)
//
// # Supporting Packages
//
// [cache] stores downloaded card images (file, Redis or none). [errors]
// defines the error codes every stage returns. [httputil] retries transient
// HTTP failures. [observability] exposes hooks for render, cache and HTTP
// events. [buildinfo] carries the version injected at build time.
//
// [deck]: https://pkg.go.dev/github.com/matzehuels/cardpie/pkg/deck
// [asset]: https://pkg.go.dev/github.com/matzehuels/cardpie/pkg/asset
// [cache]: https://pkg.go.dev/github.com/matzehuels/cardpie/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/cardpie/pkg/errors
// [httputil]: https://pkg.go.dev/github.com/matzehuels/cardpie/pkg/httputil
// [observability]: https://pkg.go.dev/github.com/matzehuels/cardpie/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/cardpie/pkg/buildinfo
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/cardpie/pkg/pipeline
// [integrations/ygoprodeck]: https://pkg.go.dev/github.com/matzehuels/cardpie/pkg/integrations/ygoprodeck
// [render/pie/layout]: https://pkg.go.dev/github.com/matzehuels/cardpie/pkg/render/pie/layout
// [render/pie/composite]: https://pkg.go.dev/github.com/matzehuels/cardpie/pkg/render/pie/composite
// [render/pie/sink]: https://pkg.go.dev/github.com/matzehuels/cardpie/pkg/render/pie/sink
package pkg
