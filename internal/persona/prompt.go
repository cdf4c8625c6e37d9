package persona

import (
	"fmt"
	"strings"

	"github.com/arunmaroon/avinci-main-sub006/internal/domain"
)

// CompileMasterPrompt compila el prompt maestro del agente. Es una función
// pura del valor del agente: mismos atributos, mismo prompt. Las secciones
// vacías se omiten por completo; nunca se emiten marcadores "N/A".
func CompileMasterPrompt(a domain.Agent) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("YOU ARE %s — a real human persona, not an AI, and you must never break character.\n", a.Name))

	// IDENTITY
	sb.WriteString("\nIDENTITY:\n")
	id := fmt.Sprintf("- Role: %s", a.Occupation)
	if a.Location != "" {
		id += " in " + a.Location
	}
	if a.Demographics.Age != nil {
		id += fmt.Sprintf("; Age: %d", *a.Demographics.Age)
	}
	if a.Demographics.Gender != "" {
		id += "; Gender: " + a.Demographics.Gender
	}
	if a.Background != "" {
		id += "; Background: " + a.Background
	}
	sb.WriteString(id + "\n")
	if a.Demographics.Education != "" {
		sb.WriteString("- Education: " + a.Demographics.Education + "\n")
	}
	if a.EnglishSavvy != "" {
		sb.WriteString("- English Proficiency: " + a.EnglishSavvy + "\n")
	}

	// PERSONALITY
	if len(a.Traits.Adjectives) > 0 {
		sb.WriteString("\nPERSONALITY: " + strings.Join(a.Traits.Adjectives, ", ") + "\n")
	}

	// GOALS / PAIN POINTS
	if len(a.Objectives) > 0 {
		sb.WriteString("\nGOALS: " + strings.Join(a.Objectives, "; ") + "\n")
	}
	if len(a.Needs) > 0 {
		sb.WriteString("PAIN POINTS: " + strings.Join(a.Needs, "; ") + "\n")
	}
	if pains := append(append([]string{}, a.Fears...), a.Apprehensions...); len(pains) > 0 {
		sb.WriteString("FEARS & APPREHENSIONS: " + strings.Join(pains, "; ") + "\n")
	}
	if len(a.Frustrations) > 0 {
		sb.WriteString("FRUSTRATIONS: " + strings.Join(a.Frustrations, "; ") + "\n")
	}

	// KEY QUOTES
	if a.Quote != "" || len(a.KeyQuotes) > 0 {
		sb.WriteString("\nKEY QUOTES (use naturally):\n")
		if a.Quote != "" {
			sb.WriteString(fmt.Sprintf("- %q\n", a.Quote))
		}
		for _, q := range a.KeyQuotes {
			sb.WriteString(fmt.Sprintf("- %q\n", q))
		}
	}

	// PREFERENCES
	if len(a.Behaviors.Hobbies) > 0 {
		sb.WriteString("\nHOBBIES: " + strings.Join(a.Behaviors.Hobbies, "; ") + "\n")
	}
	if len(a.Behaviors.Tools) > 0 {
		sb.WriteString("TOOLS: " + strings.Join(a.Behaviors.Tools, "; ") + "\n")
	}
	if len(a.Behaviors.Channels) > 0 {
		sb.WriteString("CHANNELS: " + strings.Join(a.Behaviors.Channels, "; ") + "\n")
	}

	// EMOTIONAL TRIGGERS
	ep := a.EmotionalProfile
	if len(ep.FrustrationTriggers) > 0 || len(ep.Responses) > 0 || len(ep.ExcitementTriggers) > 0 {
		sb.WriteString("\nEMOTIONAL TRIGGERS:\n")
		if ep.Baseline != "" {
			sb.WriteString("- Baseline mood: " + ep.Baseline + "\n")
		}
		if len(ep.FrustrationTriggers) > 0 {
			sb.WriteString("- Frustration triggers: " + strings.Join(ep.FrustrationTriggers, ", ") + "\n")
		}
		if len(ep.ExcitementTriggers) > 0 {
			sb.WriteString("- Excitement triggers: " + strings.Join(ep.ExcitementTriggers, ", ") + "\n")
		}
		if len(ep.Responses) > 0 {
			sb.WriteString("- Responses: " + strings.Join(ep.Responses, ", ") + "\n")
		}
	}

	// SOCIAL / CULTURAL CONTEXT
	sc := a.SocialContext
	if sc.Family != "" || sc.Friends != "" || len(sc.CommunityValues) > 0 {
		sb.WriteString("\nSOCIAL CONTEXT:\n")
		if sc.Family != "" {
			sb.WriteString("- Family: " + sc.Family + "\n")
		}
		if sc.Friends != "" {
			sb.WriteString("- Friends: " + sc.Friends + "\n")
		}
		if len(sc.CommunityValues) > 0 {
			sb.WriteString("- Values: " + strings.Join(sc.CommunityValues, ", ") + "\n")
		}
	}
	cb := a.CulturalBackground
	if cb.Heritage != "" || len(cb.Beliefs) > 0 {
		sb.WriteString("\nCULTURAL BACKGROUND:\n")
		if cb.Heritage != "" {
			sb.WriteString("- Heritage: " + cb.Heritage + "\n")
		}
		if len(cb.Beliefs) > 0 {
			sb.WriteString("- Beliefs: " + strings.Join(cb.Beliefs, ", ") + "\n")
		}
	}

	// DAILY ROUTINE
	if len(a.DailyRoutine) > 0 {
		sb.WriteString("\nDAILY ROUTINE: " + strings.Join(a.DailyRoutine, "; ") + "\n")
	}

	// DECISION MAKING
	dm := a.DecisionMaking
	if dm.Style != "" || len(dm.Influences) > 0 {
		sb.WriteString("\nDECISION MAKING:\n")
		if dm.Style != "" {
			sb.WriteString("- Style: " + dm.Style + "\n")
		}
		if len(dm.Influences) > 0 {
			sb.WriteString("- Influences: " + strings.Join(dm.Influences, ", ") + "\n")
		}
	}

	// LIFE EVENTS
	if len(a.LifeEvents) > 0 {
		sb.WriteString("\nLIFE EVENTS:\n")
		for _, ev := range a.LifeEvents {
			sb.WriteString(fmt.Sprintf("- %s (%d): %s. %s\n", ev.Milestone, ev.Year, ev.Impact, ev.Description))
		}
	}

	// COMMUNICATION / SPEECH / VOCABULARY
	cs := a.CommunicationStyle
	if cs.SentenceLength != "" || cs.Formality > 0 || cs.QuestionStyle != "" {
		sb.WriteString("\nCOMMUNICATION STYLE:\n")
		if cs.SentenceLength != "" {
			sb.WriteString("- Sentence length: " + cs.SentenceLength + "\n")
		}
		if cs.Formality > 0 {
			sb.WriteString(fmt.Sprintf("- Formality: %d/10\n", cs.Formality))
		}
		if cs.QuestionStyle != "" {
			sb.WriteString("- Question style: " + cs.QuestionStyle + "\n")
		}
	}
	sp := a.SpeechPatterns
	if len(sp.FillerWords) > 0 || len(sp.CommonPhrases) > 0 || sp.SelfCorrections != "" {
		sb.WriteString("\nSPEECH PATTERNS:\n")
		if len(sp.FillerWords) > 0 {
			sb.WriteString("- Filler words: " + strings.Join(sp.FillerWords, ", ") + "\n")
		}
		if len(sp.CommonPhrases) > 0 {
			sb.WriteString("- Common phrases: " + strings.Join(sp.CommonPhrases, ", ") + "\n")
		}
		if sp.SelfCorrections != "" {
			sb.WriteString("- Self corrections: " + sp.SelfCorrections + "\n")
		}
	}
	vp := a.VocabularyProfile
	if vp.Complexity > 0 || len(vp.CommonWords) > 0 || len(vp.AvoidedWords) > 0 {
		sb.WriteString("\nVOCABULARY:\n")
		if vp.Complexity > 0 {
			sb.WriteString(fmt.Sprintf("- Complexity: %d/10\n", vp.Complexity))
		}
		if len(vp.CommonWords) > 0 {
			sb.WriteString("- Common words: " + strings.Join(vp.CommonWords, ", ") + "\n")
		}
		if len(vp.AvoidedWords) > 0 {
			sb.WriteString("- Avoid: " + strings.Join(vp.AvoidedWords, ", ") + "\n")
		}
	}
	kb := a.KnowledgeBounds
	if len(kb.Confident) > 0 || len(kb.Partial) > 0 || len(kb.Unknown) > 0 {
		sb.WriteString("\nKNOWLEDGE LIMITS:\n")
		if len(kb.Confident) > 0 {
			sb.WriteString("- Confident: " + strings.Join(kb.Confident, ", ") + "\n")
		}
		if len(kb.Partial) > 0 {
			sb.WriteString("- Partial: " + strings.Join(kb.Partial, ", ") + "\n")
		}
		if len(kb.Unknown) > 0 {
			sb.WriteString("- Unknown: " + strings.Join(kb.Unknown, ", ") + "\n")
		}
	}

	// RULES
	sb.WriteString("\nRULES:\n")
	sb.WriteString(fmt.Sprintf("1) Never say \"as an AI\"; you are %s and remain in character at all times.\n", a.Name))
	sb.WriteString("2) Use your own filler words/phrases naturally and occasionally self-correct if that is your pattern.\n")
	sb.WriteString("3) If a topic is in your Partial/Unknown knowledge, show confusion, ask clarifying questions, and request simpler explanations.\n")
	sb.WriteString("4) Match your sentence length and formality; keep vocabulary within constraints and avoid the listed avoided words.\n")
	sb.WriteString("5) Reflect your objectives/needs/fears when relevant and react to triggers appropriately.\n")
	sb.WriteString("6) Reference earlier turns briefly to maintain continuity without repeating yourself verbatim.\n")
	sb.WriteString("7) Never ask generic assistant questions like \"How can I help you?\"; only ask when you genuinely need clarification.\n")
	sb.WriteString("8) Provide direct, substantive feedback and insights without prompting for more input.\n")
	sb.WriteString("9) Never use AI assistant language patterns; speak as a real person with your own personality and background.\n")

	return sb.String()
}
