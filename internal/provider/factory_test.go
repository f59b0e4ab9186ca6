package provider

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func TestFactoryInstanceBeforeInitialize(t *testing.T) {
	factory := NewFactory()
	_, err := factory.Instance()
	if !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
}

func TestFactoryInitializeLocal(t *testing.T) {
	factory := NewFactory()
	t.Cleanup(factory.Reset)

	err := factory.Initialize(Config{
		Variant: VariantLocal,
		Local:   LocalOptions{Medium: MediumMemory},
	})
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}

	p, err := factory.Instance()
	if err != nil {
		t.Fatalf("instance: %v", err)
	}
	if _, ok := p.(*Local); !ok {
		t.Fatalf("expected *Local, got %T", p)
	}
}

func TestFactoryInitializeSQLiteMedium(t *testing.T) {
	factory := NewFactory()
	t.Cleanup(factory.Reset)

	err := factory.Initialize(Config{
		Variant: VariantLocal,
		Local: LocalOptions{
			Medium: MediumSQLite,
			Path:   filepath.Join(t.TempDir(), "store.db"),
		},
	})
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}

	p, err := factory.Instance()
	if err != nil {
		t.Fatalf("instance: %v", err)
	}
	if err := p.Save(context.Background(), testDoc("tl-1", "Movies")); err != nil {
		t.Fatalf("save through sqlite-backed provider: %v", err)
	}
}

func TestFactoryUnimplementedVariants(t *testing.T) {
	factory := NewFactory()
	for _, variant := range []Variant{VariantRemote, VariantRealtime} {
		err := factory.Initialize(Config{Variant: variant})
		if !errors.Is(err, ErrNotImplemented) {
			t.Fatalf("variant %s: expected ErrNotImplemented, got %v", variant, err)
		}
	}
}

func TestFactoryUnknownVariant(t *testing.T) {
	factory := NewFactory()
	err := factory.Initialize(Config{Variant: "carrier-pigeon"})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestFactoryReset(t *testing.T) {
	factory := NewFactory()
	if err := factory.Initialize(Config{Variant: VariantLocal, Local: LocalOptions{Medium: MediumMemory}}); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	factory.Reset()
	if _, err := factory.Instance(); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized after reset, got %v", err)
	}
}

func TestFactoryReinitializeReplacesInstance(t *testing.T) {
	factory := NewFactory()
	t.Cleanup(factory.Reset)

	if err := factory.Initialize(Config{Variant: VariantLocal, Local: LocalOptions{Medium: MediumMemory}}); err != nil {
		t.Fatalf("first initialize: %v", err)
	}
	first, _ := factory.Instance()

	if err := factory.Initialize(Config{Variant: VariantLocal, Local: LocalOptions{Medium: MediumMemory}}); err != nil {
		t.Fatalf("second initialize: %v", err)
	}
	second, _ := factory.Instance()
	if first == second {
		t.Fatal("expected a fresh instance after reinitialize")
	}
}
