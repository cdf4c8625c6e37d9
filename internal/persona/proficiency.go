package persona

import "strings"

// Escala ordinal única para competencia idiomática y tecnológica.
const (
	LevelBeginner     = "Beginner"
	LevelElementary   = "Elementary"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
	LevelExpert       = "Expert"
)

var legacyLevelMap = map[string]string{
	"very low":  LevelBeginner,
	"low":       LevelElementary,
	"medium":    LevelIntermediate,
	"high":      LevelAdvanced,
	"very high": LevelExpert,
}

var normalizedLevels = map[string]string{
	strings.ToLower(LevelBeginner):     LevelBeginner,
	strings.ToLower(LevelElementary):   LevelElementary,
	strings.ToLower(LevelIntermediate): LevelIntermediate,
	strings.ToLower(LevelAdvanced):     LevelAdvanced,
	strings.ToLower(LevelExpert):       LevelExpert,
}

// NormalizeLevel mapea los cinco niveles cualitativos históricos a la escala
// ordinal. Es total e idempotente: un nivel ya normalizado se devuelve tal
// cual, y cualquier entrada desconocida o vacía cae en Intermediate.
func NormalizeLevel(level string) string {
	key := strings.ToLower(strings.TrimSpace(level))
	if v, ok := normalizedLevels[key]; ok {
		return v
	}
	if v, ok := legacyLevelMap[key]; ok {
		return v
	}
	return LevelIntermediate
}
