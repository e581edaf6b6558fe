package resolve

import (
	"testing"

	"github.com/dkrasnow/m2scope/pkg/errors"
)

func TestCoordinateKey(t *testing.T) {
	tests := []struct {
		coord Coordinate
		want  string
	}{
		{Coordinate{Group: "lib", Artifact: "a", Version: "1.0"}, "lib:a:1.0"},
		{Coordinate{Group: "lib", Artifact: "a"}, "lib:a:unknown"},
	}
	for _, tt := range tests {
		if got := tt.coord.Key(); got != tt.want {
			t.Errorf("Key() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseCoordinate(t *testing.T) {
	c, err := ParseCoordinate("org.springframework:spring-core:5.3.21")
	if err != nil {
		t.Fatalf("ParseCoordinate failed: %v", err)
	}
	if c.Group != "org.springframework" || c.Artifact != "spring-core" || c.Version != "5.3.21" {
		t.Errorf("coordinate = %+v", c)
	}

	for _, bad := range []string{"", "a", "a:b", "a:b:c:d", "a::c", ":b:c"} {
		if _, err := ParseCoordinate(bad); !errors.Is(err, errors.ErrCodeInvalidCoordinate) {
			t.Errorf("ParseCoordinate(%q): expected INVALID_COORDINATE, got %v", bad, err)
		}
	}
}

func TestParseGA(t *testing.T) {
	c, err := ParseGA("com.google.guava:guava")
	if err != nil {
		t.Fatalf("ParseGA failed: %v", err)
	}
	if c.Group != "com.google.guava" || c.Artifact != "guava" || c.Version != "" {
		t.Errorf("coordinate = %+v", c)
	}

	for _, bad := range []string{"", "guava", "a:b:c", ":b"} {
		if _, err := ParseGA(bad); !errors.Is(err, errors.ErrCodeInvalidCoordinate) {
			t.Errorf("ParseGA(%q): expected INVALID_COORDINATE, got %v", bad, err)
		}
	}
}

func TestDependencyExcludes(t *testing.T) {
	d := Dependency{
		Coordinate: Coordinate{Group: "lib", Artifact: "a", Version: "1.0"},
		Exclusions: []Exclusion{{Group: "org.bad", Artifact: "noise"}},
	}

	if !d.Excludes("org.bad", "noise") {
		t.Error("expected exclusion match")
	}
	if d.Excludes("org.bad", "other") {
		t.Error("exclusion must match both group and artifact")
	}
}

func TestOptionsWithDefaults(t *testing.T) {
	opts := Options{}.WithDefaults()
	if opts.MaxDepth != DefaultMaxDepth {
		t.Errorf("MaxDepth = %d, want %d", opts.MaxDepth, DefaultMaxDepth)
	}
	if opts.Logger == nil {
		t.Error("Logger must never be nil after WithDefaults")
	}

	opts = Options{MaxDepth: 7}.WithDefaults()
	if opts.MaxDepth != 7 {
		t.Errorf("explicit MaxDepth overridden: %d", opts.MaxDepth)
	}
}
