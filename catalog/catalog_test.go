package catalog_test

import (
	"atlas-sorter/catalog"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	c := catalog.Default()
	if c.Size() == 0 {
		t.Fatalf("expected embedded definitions")
	}
	if c.MaxStack("STONE") != 64 {
		t.Fatalf("expected STONE to stack to 64, got %d", c.MaxStack("STONE"))
	}
	if c.MaxStack("ENDER_PEARL") != 16 {
		t.Fatalf("expected ENDER_PEARL to stack to 16, got %d", c.MaxStack("ENDER_PEARL"))
	}
	if c.MaxStack("DIAMOND_SWORD") != 1 {
		t.Fatalf("expected DIAMOND_SWORD to stack to 1, got %d", c.MaxStack("DIAMOND_SWORD"))
	}
	if c.MaxStack("UNHEARD_OF") != catalog.DefaultMaxStack {
		t.Fatalf("expected default stack for unknown type")
	}
}

func TestParseDefaultOverride(t *testing.T) {
	c, err := catalog.Parse([]byte("default_max_stack: 99\nitems:\n  - {name: DIRT, max_stack: 8}\n"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if c.MaxStack("DIRT") != 8 || c.MaxStack("STONE") != 99 {
		t.Fatalf("unexpected stack sizes %d %d", c.MaxStack("DIRT"), c.MaxStack("STONE"))
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"missing items":  "default_max_stack: 64\n",
		"zero stack":     "items:\n  - {name: DIRT, max_stack: 0}\n",
		"lowercase name": "items:\n  - {name: dirt, max_stack: 64}\n",
		"unknown field":  "items:\n  - {name: DIRT, max_stack: 64, color: brown}\n",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := catalog.Parse([]byte(raw)); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestParseRejectsDuplicates(t *testing.T) {
	_, err := catalog.Parse([]byte("items:\n  - {name: DIRT, max_stack: 64}\n  - {name: DIRT, max_stack: 16}\n"))
	if !errors.Is(err, catalog.ErrDuplicateItem) {
		t.Fatalf("expected ErrDuplicateItem, got %v", err)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	p := filepath.Join(t.TempDir(), "items.yaml")
	if err := os.WriteFile(p, []byte("items:\n  - {name: EGG, max_stack: 16}\n"), 0o600); err != nil {
		t.Fatalf("Unable to write catalog: %v", err)
	}
	t.Setenv(catalog.EnvPath, p)
	c, err := catalog.Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if c.Size() != 1 || c.MaxStack("EGG") != 16 {
		t.Fatalf("unexpected catalog contents")
	}
}

func TestRegistry(t *testing.T) {
	c, err := catalog.Parse([]byte("items:\n  - {name: STONE, max_stack: 32}\n"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	catalog.Registry().Set(c)
	defer catalog.Registry().Set(catalog.Default())

	if catalog.Registry().Get().MaxStack("STONE") != 32 {
		t.Fatalf("expected configured catalog to be returned")
	}
}
