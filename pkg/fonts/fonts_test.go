package fonts

import (
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		installed []string
		role      Role
		want      string
	}{
		{"title available", []string{"Lora"}, Title, "Lora"},
		{"title unavailable", nil, Title, "serif"},
		{"body available", []string{"Poppins"}, Body, "Poppins"},
		{"body unavailable", []string{"Lora"}, Body, "sans-serif"},
		{"case-insensitive", []string{"poppins"}, Body, "Poppins"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(NewStaticRegistry(tt.installed...), tt.role)
			if got != tt.want {
				t.Errorf("Resolve(%v) = %q, want %q", tt.role.Name, got, tt.want)
			}
		})
	}
}

func TestResolveNilRegistry(t *testing.T) {
	if got := Resolve(nil, Title); got != Title.Fallback {
		t.Errorf("Resolve(nil) = %q, want %q", got, Title.Fallback)
	}
}

func TestResolveQueriesEveryCall(t *testing.T) {
	calls := 0
	reg := RegistryFunc(func(family string) bool {
		calls++
		return family == "Lora"
	})

	ResolveRoles(reg)
	ResolveRoles(reg)

	if calls != 4 {
		t.Errorf("registry queried %d times, want 4", calls)
	}
}

func TestResolveRoles(t *testing.T) {
	got := ResolveRoles(NewStaticRegistry("Lora"))
	want := Resolution{Title: "Lora", Body: "sans-serif"}
	if got != want {
		t.Errorf("ResolveRoles() = %+v, want %+v", got, want)
	}
}

func TestStaticRegistryGeneric(t *testing.T) {
	reg := NewStaticRegistry()
	for _, family := range []string{"serif", "sans-serif", "Monospace"} {
		if !reg.Available(family) {
			t.Errorf("Available(%q) = false, want true", family)
		}
	}
	if reg.Available("Lora") {
		t.Error("Available(Lora) = true on empty registry")
	}
}

func TestCSSFamily(t *testing.T) {
	tests := []struct {
		family string
		want   string
	}{
		{"", "sans-serif"},
		{"serif", "serif"},
		{" Sans-Serif ", "sans-serif"},
		{"Lora", "'Lora', serif"},
		{"Poppins", "'Poppins', sans-serif"},
		{"DejaVu Sans", "'DejaVu Sans', sans-serif"},
		{"O'Font", "'OFont', sans-serif"},
	}

	for _, tt := range tests {
		t.Run(tt.family, func(t *testing.T) {
			if got := CSSFamily(tt.family); got != tt.want {
				t.Errorf("CSSFamily(%q) = %q, want %q", tt.family, got, tt.want)
			}
		})
	}
}

func TestSystemRegistryGenericWithoutScan(t *testing.T) {
	reg := NewSystemRegistry(t.TempDir(), nil)
	if !reg.Available("serif") {
		t.Error("Available(serif) = false, want true")
	}
	if reg.fm != nil || reg.err != nil {
		t.Error("generic lookup should not trigger a system scan")
	}
}
