package main

import (
	"tierlist/internal/config"
	"tierlist/internal/engine"
	"tierlist/internal/provider"
)

// withEngine initializes the configured provider, runs fn against a fresh
// engine, and tears the provider down afterwards.
func withEngine(cfg *config.Config, fn func(*engine.Service) error) error {
	factory := provider.NewFactory()
	if err := factory.Initialize(cfg.ToProvider()); err != nil {
		return err
	}
	defer factory.Reset()

	p, err := factory.Instance()
	if err != nil {
		return err
	}
	return fn(engine.New(p))
}
