package theme

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		configured, mode string
		want             string
	}{
		{"", "light", "flexoki-light"},
		{"", "dark", "flexoki-dark"},
		{"", "", "flexoki-dark"},
		{"tokyo-night", "light", "tokyo-night"},
		{"no-such-theme", "light", "flexoki-light"},
	}
	for _, tt := range tests {
		if got := Resolve(tt.configured, tt.mode); got.Name != tt.want {
			t.Errorf("Resolve(%q, %q) = %s, want %s", tt.configured, tt.mode, got.Name, tt.want)
		}
	}
}

func TestByNameDefaults(t *testing.T) {
	if ByName("terminal").Name != "terminal" {
		t.Error("ByName(terminal) did not match")
	}
	if ByName("missing").Name != FlexokiDark.Name {
		t.Error("unknown theme should fall back to flexoki-dark")
	}
}
