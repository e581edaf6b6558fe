package resolve

import "testing"

func TestSubstitute(t *testing.T) {
	props := map[string]string{
		"core.version": "3.2.1",
		"group.base":   "com.example",
		"nested":       "${inner}",
		"inner":        "should-not-appear",
	}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "1.0.0", "1.0.0"},
		{"empty", "", ""},
		{"simple", "${core.version}", "3.2.1"},
		{"embedded", "${group.base}.api", "com.example.api"},
		{"multiple", "${group.base}:${core.version}", "com.example:3.2.1"},
		{"missing left verbatim", "${missing.prop}", "${missing.prop}"},
		{"single pass only", "${nested}", "${inner}"},
		{"unterminated", "${broken", "${broken"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Substitute(tt.in, props); got != tt.want {
				t.Errorf("Substitute(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSubstituteNilTable(t *testing.T) {
	if got := Substitute("${anything}", nil); got != "${anything}" {
		t.Errorf("Substitute with nil table = %q", got)
	}
}
