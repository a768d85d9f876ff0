package commands_test

import (
	"testing"

	"todoseed/internal/commands"
)

func TestRegistry_DuplicateName(t *testing.T) {
	r := commands.NewRegistry()
	if err := r.Register(&commands.VersionCmd{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Register(&commands.VersionCmd{}); err == nil {
		t.Error("expected error registering version twice")
	}
}

func TestRegistry_Default(t *testing.T) {
	r := commands.NewRegistry()
	if _, ok := r.Default(); ok {
		t.Error("expected no default on an empty registry")
	}
	if err := r.SetDefault("seed"); err == nil {
		t.Error("expected error for unregistered default")
	}

	if err := r.Register(&commands.SeedCmd{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.SetDefault("seed"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cmd, ok := r.Default()
	if !ok || cmd.Name() != "seed" {
		t.Errorf("expected seed as default, got %v", cmd)
	}
}

func TestDefaultRegistry_Commands(t *testing.T) {
	var names []string
	for _, cmd := range commands.DefaultRegistry.All() {
		names = append(names, cmd.Name())
	}

	expected := []string{"backup", "export", "help", "my", "seed", "team", "version"}
	if len(names) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, names)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("expected %v, got %v", expected, names)
			break
		}
	}

	def, ok := commands.DefaultRegistry.Default()
	if !ok || def.Name() != "seed" {
		t.Error("expected seed to be the default command")
	}
}
