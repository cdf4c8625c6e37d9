package persona

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func intPtr(v int) *int { return &v }

func TestBuildDeterministicPrompt(t *testing.T) {
	in := Input{
		Name:         "Priya Sharma",
		Occupation:   "Software Engineer",
		Location:     "Bangalore",
		Age:          intPtr(29),
		EnglishLevel: "High",
		TechLevel:    "Very High",
	}
	src := uuid.New()

	a1, err := Build("Priya: I mostly shop on my phone.", in, src, "tester")
	if err != nil {
		t.Fatalf("Build devolvió error: %v", err)
	}
	a2, err := Build("Priya: I mostly shop on my phone.", in, src, "tester")
	if err != nil {
		t.Fatalf("Build devolvió error: %v", err)
	}
	if a1.MasterSystemPrompt != a2.MasterSystemPrompt {
		t.Fatalf("el prompt maestro no es determinista entre corridas")
	}
	if a1.MasterSystemPrompt == "" {
		t.Fatalf("prompt maestro vacío")
	}
}

func TestBuildUnmappedOccupationFallsBack(t *testing.T) {
	a, err := Build("", Input{Name: "Ravi", Occupation: "Quantum Hobbyist"}, uuid.New(), "tester")
	if err != nil {
		t.Fatalf("Build devolvió error: %v", err)
	}
	if got := a.Traits.Adjectives; !equalStrings(got, defaultTraits) {
		t.Fatalf("traits = %v, want defaults %v", got, defaultTraits)
	}
	wantGoals := append(append([]string{}, defaultGoals[:2]...), "Support family", "Achieve financial stability")
	if !equalStrings(a.Objectives, wantGoals) {
		t.Fatalf("objectives = %v, want %v", a.Objectives, wantGoals)
	}
}

func TestBuildNoLocationIsNorth(t *testing.T) {
	a, err := Build("", Input{Name: "Amit"}, uuid.New(), "tester")
	if err != nil {
		t.Fatalf("Build devolvió error: %v", err)
	}
	if !equalStrings(a.CulturalBackground.Beliefs, beliefsByRegion["north"]) {
		t.Fatalf("beliefs = %v, want región north", a.CulturalBackground.Beliefs)
	}
	if !strings.Contains(a.CulturalBackground.Heritage, "north") {
		t.Fatalf("heritage = %q, want mención de north", a.CulturalBackground.Heritage)
	}
}

func TestBuildHobbiesCappedWithoutDuplicates(t *testing.T) {
	a, err := Build("", Input{Name: "Meera", Occupation: "designer"}, uuid.New(), "tester")
	if err != nil {
		t.Fatalf("Build devolvió error: %v", err)
	}
	if len(a.Behaviors.Hobbies) > 5 {
		t.Fatalf("hobbies = %d, want a lo sumo 5", len(a.Behaviors.Hobbies))
	}
	seen := map[string]bool{}
	for _, h := range a.Behaviors.Hobbies {
		if seen[h] {
			t.Fatalf("hobby duplicado %q", h)
		}
		seen[h] = true
	}
}

func TestBuildAgeOutOfRange(t *testing.T) {
	for _, age := range []int{-5, 121} {
		if _, err := Build("", Input{Name: "X", Age: intPtr(age)}, uuid.New(), "tester"); err == nil {
			t.Fatalf("Build aceptó edad %d", age)
		}
	}
}

func TestBuildMissingAgeUsesMiddleBracket(t *testing.T) {
	a, err := Build("", Input{Name: "Sunil"}, uuid.New(), "tester")
	if err != nil {
		t.Fatalf("Build devolvió error: %v", err)
	}
	want := LifeEventsForGroup("30-40")
	if len(a.LifeEvents) != len(want) {
		t.Fatalf("life events = %d, want %d", len(a.LifeEvents), len(want))
	}
	for i, ev := range a.LifeEvents {
		if ev.Milestone != want[i].Milestone {
			t.Fatalf("milestone[%d] = %q, want %q", i, ev.Milestone, want[i].Milestone)
		}
	}
}

func TestBuildDefaultsBlankFields(t *testing.T) {
	a, err := Build("", Input{}, uuid.New(), "tester")
	if err != nil {
		t.Fatalf("Build devolvió error: %v", err)
	}
	if a.Name != "Transcript User" {
		t.Fatalf("name = %q", a.Name)
	}
	if a.Occupation != "Professional" {
		t.Fatalf("occupation = %q", a.Occupation)
	}
	if a.EnglishSavvy != LevelIntermediate || a.TechSavviness != LevelIntermediate {
		t.Fatalf("niveles = %q/%q, want Intermediate", a.EnglishSavvy, a.TechSavviness)
	}
}

func TestBuildFirstTranscriptLineAsQuote(t *testing.T) {
	a, err := Build("\n\nModerator: so tell me\nUser: apps confuse me sometimes\n", Input{Name: "Lata"}, uuid.New(), "tester")
	if err != nil {
		t.Fatalf("Build devolvió error: %v", err)
	}
	if len(a.KeyQuotes) != 1 || a.KeyQuotes[0] != "so tell me" {
		t.Fatalf("key quotes = %v", a.KeyQuotes)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
