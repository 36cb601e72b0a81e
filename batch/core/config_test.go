package core

import (
	"testing"
)

func TestWithDropReplaces(t *testing.T) {
	first := 0
	second := 0
	cfg := applyOptions(
		WithDrop(func(int) { first++ }),
		WithDrop(func(int) { second++ }),
	)

	cfg.Drop(0)

	if first != 0 {
		t.Errorf("replaced drop ran %d times, want 0", first)
	}
	if second != 1 {
		t.Errorf("latest drop ran %d times, want 1", second)
	}
}

func TestWithHooksAppends(t *testing.T) {
	cfg := applyOptions(
		WithHooks(Hooks[int]{OnPut: func(int, int) {}}),
		WithHooks(Hooks[int]{OnPut: func(int, int) {}}),
	)

	if len(cfg.Hooks) != 2 {
		t.Errorf("len(cfg.Hooks) = %d, want 2", len(cfg.Hooks))
	}
}

func TestDefaultConfigIsEmpty(t *testing.T) {
	cfg := applyOptions[int]()

	if cfg.Drop != nil {
		t.Error("default config has a drop function")
	}
	if len(cfg.Hooks) != 0 {
		t.Errorf("default config has %d hook sets, want 0", len(cfg.Hooks))
	}
}
