package persona

import "testing"

func TestNormalizeLevelLegacyScale(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Very Low", LevelBeginner},
		{"Low", LevelElementary},
		{"Medium", LevelIntermediate},
		{"High", LevelAdvanced},
		{"Very High", LevelExpert},
		{"very high", LevelExpert},
		{"  MEDIUM  ", LevelIntermediate},
	}
	for _, c := range cases {
		if got := NormalizeLevel(c.in); got != c.want {
			t.Fatalf("NormalizeLevel(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeLevelIdempotent(t *testing.T) {
	for _, lvl := range []string{LevelBeginner, LevelElementary, LevelIntermediate, LevelAdvanced, LevelExpert} {
		if got := NormalizeLevel(lvl); got != lvl {
			t.Fatalf("NormalizeLevel(%q) = %q, ya era canónico", lvl, got)
		}
		if got := NormalizeLevel(NormalizeLevel(lvl)); got != lvl {
			t.Fatalf("doble normalización de %q produjo %q", lvl, got)
		}
	}
}

func TestNormalizeLevelUnknownDefaultsToIntermediate(t *testing.T) {
	for _, in := range []string{"", "fluent", "nativo", "0", "club-level"} {
		if got := NormalizeLevel(in); got != LevelIntermediate {
			t.Fatalf("NormalizeLevel(%q) = %q, want %q", in, got, LevelIntermediate)
		}
	}
}
