package state

import (
	"sync"
	"testing"
)

func TestMemoryManagerDefaults(t *testing.T) {
	m := NewMemoryManager("main")

	if got := m.GetState(1); got != State("main") {
		t.Fatalf("GetState = %q, want %q", got, "main")
	}
	if _, ok := m.Scratch(1); ok {
		t.Fatal("expected no scratch for a fresh user")
	}
}

func TestMemoryManagerStateAndScratch(t *testing.T) {
	m := NewMemoryManager("main")

	m.SetState(7, "add_phone")
	m.SetScratch(7, "Sara")

	if got := m.GetState(7); got != State("add_phone") {
		t.Fatalf("GetState = %q, want %q", got, "add_phone")
	}
	v, ok := m.Scratch(7)
	if !ok || v != "Sara" {
		t.Fatalf("Scratch = %q, %v; want %q, true", v, ok, "Sara")
	}

	// overwrite on each multi-step flow
	m.SetScratch(7, "Ali")
	if v, _ = m.Scratch(7); v != "Ali" {
		t.Fatalf("Scratch after overwrite = %q, want %q", v, "Ali")
	}

	m.ClearScratch(7)
	if _, ok = m.Scratch(7); ok {
		t.Fatal("expected scratch cleared")
	}
	if got := m.GetState(7); got != State("add_phone") {
		t.Fatalf("ClearScratch changed state to %q", got)
	}
}

func TestMemoryManagerReset(t *testing.T) {
	m := NewMemoryManager("main")

	m.SetState(9, "ai")
	m.SetScratch(9, "pending")
	m.Reset(9)

	if got := m.GetState(9); got != State("main") {
		t.Fatalf("GetState after reset = %q, want %q", got, "main")
	}
	if _, ok := m.Scratch(9); ok {
		t.Fatal("expected scratch discarded on reset")
	}
}

func TestMemoryManagerUserIsolation(t *testing.T) {
	m := NewMemoryManager("main")

	m.SetState(1, "phone")
	m.SetScratch(1, "one")
	m.SetState(2, "file_menu")

	if got := m.GetState(1); got != State("phone") {
		t.Fatalf("user 1 state = %q, want %q", got, "phone")
	}
	if got := m.GetState(2); got != State("file_menu") {
		t.Fatalf("user 2 state = %q, want %q", got, "file_menu")
	}
	if _, ok := m.Scratch(2); ok {
		t.Fatal("scratch leaked across users")
	}
}

func TestMemoryManagerConcurrentAccess(t *testing.T) {
	m := NewMemoryManager("main")

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			m.SetState(id, "phone")
			m.SetScratch(id, "v")
			_ = m.GetState(id)
			_, _ = m.Scratch(id)
			m.Reset(id)
		}(int64(i % 8))
	}
	wg.Wait()
}
