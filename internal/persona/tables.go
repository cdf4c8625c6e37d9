package persona

import "strings"

// Las tablas de derivación son listas ordenadas de (clave, valor) evaluadas
// first-match-wins; los mapas de Go no iteran en orden de declaración y aquí
// el orden de coincidencia es parte del contrato.

type traitEntry struct {
	profession string
	traits     []string
}

var traitsByProfession = []traitEntry{
	{"Software Engineer", []string{"Analytical", "Detail-oriented", "Problem-solver", "Curious", "Introverted"}},
	{"Data Analyst", []string{"Logical", "Methodical", "Patient", "Precise", "Inquisitive"}},
	{"Product Manager", []string{"Strategic", "Collaborative", "Organized", "Decisive", "Empathetic"}},
	{"UX Designer", []string{"Creative", "Empathetic", "Visual thinker", "User-focused", "Innovative"}},
	{"DevOps Engineer", []string{"Systematic", "Resilient", "Proactive", "Technical", "Efficient"}},
	{"Sales Executive", []string{"Persuasive", "Outgoing", "Competitive", "Resilient", "Optimistic"}},
	{"Marketing Manager", []string{"Creative", "Strategic", "Communicative", "Trendy", "Analytical"}},
	{"Doctor", []string{"Compassionate", "Knowledgeable", "Calm", "Dedicated", "Ethical"}},
	{"Teacher", []string{"Patient", "Nurturing", "Organized", "Communicative", "Passionate"}},
	{"Business Owner", []string{"Entrepreneurial", "Risk-taker", "Determined", "Visionary", "Hardworking"}},
	{"Engineer", []string{"Technical", "Precise", "Systematic", "Innovative", "Practical"}},
	{"Manager", []string{"Leadership-oriented", "Organized", "Decisive", "Diplomatic", "Results-driven"}},
}

var defaultTraits = []string{"Hardworking", "Reliable", "Friendly", "Adaptable", "Honest"}

var hobbiesByTrait = map[string][]string{
	"Analytical":  {"Reading tech blogs", "Solving puzzles", "Playing chess", "Coding side projects"},
	"Creative":    {"Painting", "Photography", "Writing", "Playing music", "Crafts"},
	"Outgoing":    {"Team sports", "Socializing with friends", "Attending events", "Traveling"},
	"Introverted": {"Reading books", "Watching movies", "Gardening", "Meditation"},
	"Active":      {"Cricket", "Badminton", "Running", "Cycling", "Yoga"},
	"Cultural":    {"Cooking traditional food", "Attending festivals", "Temple visits", "Classical music"},
}

var fillerHobbies = []string{"Watching cricket", "Cooking traditional food", "Temple visits", "Family gatherings", "Bollywood movies"}

type goalEntry struct {
	profession string
	goals      []string
}

var goalsByProfession = []goalEntry{
	{"Software Engineer", []string{"Learn new programming languages", "Contribute to open source", "Mentor junior developers", "Start a tech blog"}},
	{"Data Analyst", []string{"Master machine learning", "Get certified in data science", "Improve visualization skills", "Learn Python advanced"}},
	{"Product Manager", []string{"Launch successful product", "Build strong team", "Learn Agile methodology", "Network with industry leaders"}},
	{"UX Designer", []string{"Build design portfolio", "Learn new design tools", "Understand user psychology", "Win design awards"}},
	{"Sales Executive", []string{"Exceed sales targets", "Build client relationships", "Learn negotiation skills", "Expand territory"}},
	{"Doctor", []string{"Pursue specialization", "Publish research papers", "Serve underprivileged", "Open own clinic"}},
	{"Teacher", []string{"Improve teaching methods", "Pursue higher education", "Help struggling students", "Create educational content"}},
	{"Business Owner", []string{"Expand business", "Increase revenue", "Hire more staff", "Open new branch"}},
}

var defaultGoals = []string{"Career advancement", "Skill development", "Financial stability", "Work-life balance"}

type lifeEventTemplate struct {
	Milestone   string
	YearsAgo    int
	Impact      string
	Description string
}

var lifeEventsByAgeGroup = map[string][]lifeEventTemplate{
	"20-30": {
		{"Graduated from college", 3, "Started professional career", "Completed degree and entered workforce"},
		{"First job", 2, "Gained financial independence", "Started earning and supporting family"},
		{"Moved to city", 1, "New opportunities and challenges", "Relocated for better career prospects"},
	},
	"30-40": {
		{"Got married", 5, "Started family life", "Major life change with new responsibilities"},
		{"First child born", 3, "Became a parent", "Life priorities shifted to family"},
		{"Promotion at work", 2, "Career growth and recognition", "Moved to senior position"},
		{"Bought own house", 1, "Financial milestone achieved", "Invested in property"},
	},
	"40-50": {
		{"Children started school", 7, "Education expenses began", "Focus on children education"},
		{"Promotion to management", 4, "Leadership responsibilities", "Started managing teams"},
		{"Health scare", 2, "Became health conscious", "Started prioritizing wellness"},
		{"Parents aging care", 1, "Took on elder care duties", "Supporting aging parents"},
	},
	"50+": {
		{"Children completed education", 8, "Major expense completed", "Kids became independent"},
		{"Senior leadership role", 5, "Peak of career", "Achieved senior position"},
		{"Started planning retirement", 2, "Future planning", "Thinking about post-retirement life"},
		{"Became grandparent", 1, "New joy in life", "Next generation arrived"},
	},
}

var beliefsByRegion = map[string][]string{
	"north": {
		"Family is everything, honor is important",
		"Hard work leads to success",
		"Respect elders and tradition",
		"Education is key to better life",
		"Unity in diversity makes us strong",
	},
	"south": {
		"Education and knowledge are sacred",
		"Discipline and dedication matter",
		"Family values are foundation",
		"Traditional wisdom guides modern life",
		"Humility and respect for all",
	},
	"tamil": {
		"Tamil culture and language pride",
		"Education is the greatest wealth",
		"Family bonds are unbreakable",
		"Self-respect and dignity matter",
		"Hard work never goes waste",
	},
	"west": {
		"Business and entrepreneurship spirit",
		"Celebration of life and festivals",
		"Family business legacy",
		"Community support is strength",
		"Innovation with tradition",
	},
	"east": {
		"Intellectual and cultural pursuits",
		"Arts and literature appreciation",
		"Family meals bring togetherness",
		"Education and debate culture",
		"Progressive yet traditional",
	},
}

type regionEntry struct {
	keywords []string
	region   string
}

var regionByKeyword = []regionEntry{
	{[]string{"tamil", "chennai"}, "tamil"},
	{[]string{"delhi", "punjab", "haryana"}, "north"},
	{[]string{"bangalore", "hyderabad", "kerala"}, "south"},
	{[]string{"mumbai", "maharashtra", "gujarat"}, "west"},
	{[]string{"kolkata", "bengal"}, "east"},
}

var keyPhrasesByLevel = map[string]map[string][]string{
	LevelBeginner: {
		"north": {"Hindi mein bolo", "Samajh nahi aaya", "Ek baar aur batao", "Theek hai ji"},
		"south": {"Telugu lo cheppu", "Ardam kavatledu", "Slow ga cheppu", "Sare sare"},
		"tamil": {"Tamil la sollu", "Puriyala da", "Konjam slow ah", "Seri pa"},
		"west":  {"Marathi madhe bola", "Samajat nahi", "Halu halu bola", "Thik hai"},
		"east":  {"Bangla te bolo", "Bujhina", "Aste bolo", "Achha achha"},
	},
	LevelElementary: {
		"north": {"Yaar", "Achha theek hai", "Samjha", "Bilkul", "Haan ji"},
		"south": {"Kada ra", "Sare aitey", "Bagundi", "Em chestham", "Chala nice"},
		"tamil": {"Da pa", "Seri seri", "Nalla irukku", "Puriyuthu", "Romba thanks"},
		"west":  {"Mhanje kay", "Mast hai", "Chalu re", "Thik hai na", "Ho na"},
		"east":  {"Bhalo", "Darun to", "Ektu wait", "Bujhecho", "Thik ache"},
	},
	LevelIntermediate: {
		"north": {"Yaar", "I think so", "Makes sense", "Achha okay"},
		"south": {"Correct kada", "Yes yes", "I understand", "Good point"},
		"tamil": {"Exactly da", "Right right", "I got it", "Nice one"},
		"west":  {"True that", "Fair enough", "I see", "Makes sense na"},
		"east":  {"Absolutely", "I agree", "Good point", "Fair enough"},
	},
	LevelAdvanced: {
		"north": {"I understand", "That makes sense", "Good point", "Agreed"},
		"south": {"Certainly", "I see your point", "Valid concern", "Fair enough"},
		"tamil": {"Absolutely", "I comprehend", "Well said", "Indeed"},
		"west":  {"Precisely", "Certainly", "I concur", "Agreed"},
		"east":  {"Certainly", "I understand", "Valid point", "Quite right"},
	},
	LevelExpert: {
		"north": {"Certainly", "I comprehend", "Precisely", "Indeed", "Absolutely"},
		"south": {"Undoubtedly", "I concur", "Precisely", "Certainly", "Indeed"},
		"tamil": {"Absolutely", "Certainly", "Precisely", "Indeed", "Correct"},
		"west":  {"Certainly", "Precisely", "Indeed", "Absolutely", "Correct"},
		"east":  {"Undoubtedly", "Certainly", "Precisely", "Indeed", "Absolutely"},
	},
}

var recommendationsByTechLevel = map[string][]string{
	LevelBeginner: {
		"Make apps simpler with bigger buttons",
		"Add voice commands in regional languages",
		"Provide step-by-step tutorials",
		"Reduce technical jargon",
		"Add customer support in native language",
	},
	LevelElementary: {
		"Simplify navigation and menus",
		"Add helpful tooltips and hints",
		"Provide video tutorials",
		"Make interface more visual",
		"Add WhatsApp-style familiarity",
	},
	LevelIntermediate: {
		"Balance features with simplicity",
		"Add shortcuts for power users",
		"Improve search functionality",
		"Add customization options",
		"Better notifications",
	},
	LevelAdvanced: {
		"Add advanced features and settings",
		"Provide API access",
		"Add keyboard shortcuts",
		"Improve performance",
		"Add integration options",
	},
	LevelExpert: {
		"Add developer tools",
		"Provide detailed analytics",
		"Add automation features",
		"Improve API documentation",
		"Add beta features access",
	},
}

type emotionalData struct {
	Triggers  []string
	Responses []string
}

var emotionalByTrait = map[string]emotionalData{
	"Analytical": {
		Triggers:  []string{"Unclear requirements", "Lack of data", "Rushed decisions", "Incomplete information"},
		Responses: []string{"Asks clarifying questions", "Seeks more details", "Analyzes systematically", "Stays calm and logical"},
	},
	"Creative": {
		Triggers:  []string{"Rigid constraints", "Lack of freedom", "Criticism of ideas", "Monotonous work"},
		Responses: []string{"Proposes alternatives", "Seeks creative solutions", "Expresses frustration artistically", "Needs space to think"},
	},
	"Outgoing": {
		Triggers:  []string{"Being ignored", "Lack of recognition", "Isolation", "Poor communication"},
		Responses: []string{"Speaks up proactively", "Seeks feedback", "Initiates conversations", "Expresses emotions openly"},
	},
	"Patient": {
		Triggers:  []string{"Constant interruptions", "Aggressive behavior", "Disrespect", "Chaos"},
		Responses: []string{"Takes deep breaths", "Addresses calmly", "Sets boundaries politely", "Seeks resolution"},
	},
}

var defaultEmotional = emotionalData{
	Triggers:  []string{"Unfair treatment", "Lack of clarity", "Time pressure", "Technical issues"},
	Responses: []string{"Expresses concern", "Seeks help", "Tries to resolve", "Communicates needs"},
}

// TraitsForOccupation resuelve la lista de rasgos por contención de substring.
func TraitsForOccupation(occupation string) []string {
	occ := strings.ToLower(strings.TrimSpace(occupation))
	for _, e := range traitsByProfession {
		if strings.Contains(occ, strings.ToLower(e.profession)) {
			return e.traits
		}
	}
	return defaultTraits
}

// GoalsForOccupation resuelve las metas secundarias de la profesión.
func GoalsForOccupation(occupation string) []string {
	occ := strings.ToLower(strings.TrimSpace(occupation))
	for _, e := range goalsByProfession {
		if strings.Contains(occ, strings.ToLower(e.profession)) {
			return e.goals
		}
	}
	return defaultGoals
}

// RegionForLocation mapea una localidad a su región; sin dato cae en north.
func RegionForLocation(location string) string {
	loc := strings.ToLower(strings.TrimSpace(location))
	if loc == "" {
		return "north"
	}
	for _, e := range regionByKeyword {
		for _, kw := range e.keywords {
			if strings.Contains(loc, kw) {
				return e.region
			}
		}
	}
	return "north"
}

// AgeGroup clasifica la edad en los cuatro tramos biográficos.
func AgeGroup(age int) string {
	switch {
	case age < 30:
		return "20-30"
	case age < 40:
		return "30-40"
	case age < 50:
		return "40-50"
	default:
		return "50+"
	}
}

// HobbiesForTraits toma el primer hobby de cada rasgo más dos hobbies de
// relleno, deduplicado y con tope de 5. La selección es determinista para
// que el prompt compilado lo sea también.
func HobbiesForTraits(traits []string) []string {
	hobbies := make([]string, 0, len(traits)+2)
	for _, t := range traits {
		if opts := hobbiesByTrait[t]; len(opts) > 0 {
			hobbies = append(hobbies, opts[0])
		}
	}
	hobbies = append(hobbies, fillerHobbies[:2]...)

	seen := make(map[string]bool, len(hobbies))
	out := make([]string, 0, 5)
	for _, h := range hobbies {
		if seen[h] {
			continue
		}
		seen[h] = true
		out = append(out, h)
		if len(out) == 5 {
			break
		}
	}
	return out
}

// LifeEventsForGroup devuelve los hitos del tramo; tramo desconocido usa 30-40.
func LifeEventsForGroup(group string) []lifeEventTemplate {
	if evs, ok := lifeEventsByAgeGroup[group]; ok {
		return evs
	}
	return lifeEventsByAgeGroup["30-40"]
}

// BeliefsForRegion devuelve las creencias regionales con fallback a north.
func BeliefsForRegion(region string) []string {
	if b, ok := beliefsByRegion[region]; ok {
		return b
	}
	return beliefsByRegion["north"]
}

// KeyPhrasesFor resuelve frases coloquiales por nivel de inglés y región.
func KeyPhrasesFor(englishLevel, region string) []string {
	byRegion, ok := keyPhrasesByLevel[englishLevel]
	if !ok {
		byRegion = keyPhrasesByLevel[LevelIntermediate]
	}
	if phrases, ok := byRegion[region]; ok {
		return phrases
	}
	return byRegion["north"]
}

// RecommendationsFor resuelve recomendaciones de producto por nivel técnico.
func RecommendationsFor(techLevel string) []string {
	if recs, ok := recommendationsByTechLevel[techLevel]; ok {
		return recs
	}
	return recommendationsByTechLevel[LevelIntermediate]
}

// EmotionalDataForTrait resuelve gatillos y respuestas por rasgo principal.
func EmotionalDataForTrait(mainTrait string) ([]string, []string) {
	if d, ok := emotionalByTrait[mainTrait]; ok {
		return d.Triggers, d.Responses
	}
	return defaultEmotional.Triggers, defaultEmotional.Responses
}
