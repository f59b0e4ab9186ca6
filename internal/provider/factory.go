package provider

import (
	"fmt"
	"sync"

	"tierlist/internal/kv"
)

// Medium kinds accepted by the local variant.
const (
	MediumMemory = "memory"
	MediumFile   = "file"
	MediumSQLite = "sqlite"
)

// Config selects and configures a provider variant.
type Config struct {
	Variant Variant
	Local   LocalOptions
	Remote  RemoteOptions
}

// LocalOptions configures the local variant and its backing medium.
type LocalOptions struct {
	Medium     string
	Path       string
	StorageKey string
	VersionKey string
	MaxBytes   int64
}

// RemoteOptions configures the remote variant. The variant itself is not
// implemented; the shape is fixed so configurations stay forward-compatible.
type RemoteOptions struct {
	BaseURL   string
	APIKey    string
	TimeoutMS int
}

// Factory holds the one active provider for a process. It is an explicit
// handle constructed at startup and passed to the engine, not package
// state.
type Factory struct {
	mu      sync.Mutex
	current Provider
}

// NewFactory returns a factory with no active provider.
func NewFactory() *Factory {
	return &Factory{}
}

// Initialize constructs the configured variant and installs it, replacing
// and closing any previous instance. Unimplemented variants fail fast with
// ErrNotImplemented.
func (f *Factory) Initialize(cfg Config) error {
	p, err := build(cfg)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.current != nil {
		_ = f.current.Close()
	}
	f.current = p
	return nil
}

// Instance returns the active provider, or ErrNotInitialized when
// Initialize has not run.
func (f *Factory) Instance() (Provider, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.current == nil {
		return nil, fmt.Errorf("%w: call Initialize first", ErrNotInitialized)
	}
	return f.current, nil
}

// Reset closes and clears the active provider. Meant for test isolation.
func (f *Factory) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.current != nil {
		_ = f.current.Close()
		f.current = nil
	}
}

func build(cfg Config) (Provider, error) {
	switch cfg.Variant {
	case VariantLocal:
		medium, err := buildMedium(cfg.Local)
		if err != nil {
			return nil, err
		}
		return NewLocal(medium, LocalConfig{
			StorageKey: cfg.Local.StorageKey,
			VersionKey: cfg.Local.VersionKey,
			MaxBytes:   cfg.Local.MaxBytes,
		}), nil
	case VariantRemote, VariantRealtime:
		return nil, fmt.Errorf("%w: variant %q", ErrNotImplemented, cfg.Variant)
	default:
		return nil, fmt.Errorf("%w: unknown variant %q", ErrInvalidArgument, cfg.Variant)
	}
}

func buildMedium(opts LocalOptions) (kv.Medium, error) {
	switch opts.Medium {
	case MediumMemory:
		return kv.NewMemory(0), nil
	case MediumFile:
		m, err := kv.NewFile(opts.Path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return m, nil
	case MediumSQLite, "":
		m, err := kv.NewSQLite(opts.Path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return m, nil
	default:
		return nil, fmt.Errorf("%w: unknown medium %q", ErrInvalidArgument, opts.Medium)
	}
}
