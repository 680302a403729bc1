package profile

// Country pairs a nationality with its dialing code and the digit
// bounds a local phone number must satisfy.
type Country struct {
	Name        string `json:"name"`
	Nationality string `json:"nationality"`
	DialCode    string `json:"dial_code"`
	MinDigits   int    `json:"min_digits"`
	MaxDigits   int    `json:"max_digits"`
}

var Countries = []Country{
	{Name: "India", Nationality: "Indian", DialCode: "+91", MinDigits: 10, MaxDigits: 10},
	{Name: "USA", Nationality: "American", DialCode: "+1", MinDigits: 10, MaxDigits: 10},
	{Name: "UK", Nationality: "British", DialCode: "+44", MinDigits: 10, MaxDigits: 11},
	{Name: "Australia", Nationality: "Australian", DialCode: "+61", MinDigits: 9, MaxDigits: 9},
	{Name: "Canada", Nationality: "Canadian", DialCode: "+1", MinDigits: 10, MaxDigits: 10},
	{Name: "Germany", Nationality: "German", DialCode: "+49", MinDigits: 10, MaxDigits: 11},
	{Name: "France", Nationality: "French", DialCode: "+33", MinDigits: 9, MaxDigits: 9},
	{Name: "Japan", Nationality: "Japanese", DialCode: "+81", MinDigits: 10, MaxDigits: 10},
	{Name: "China", Nationality: "Chinese", DialCode: "+86", MinDigits: 11, MaxDigits: 11},
	{Name: "Brazil", Nationality: "Brazilian", DialCode: "+55", MinDigits: 10, MaxDigits: 11},
	{Name: "South Africa", Nationality: "South African", DialCode: "+27", MinDigits: 9, MaxDigits: 9},
}

// CountryByNationality resolves the phone rules for a nationality,
// falling back to the first catalog entry (India) like the form does.
func CountryByNationality(nationality string) Country {
	for _, c := range Countries {
		if c.Nationality == nationality {
			return c
		}
	}
	return Countries[0]
}

func knownNationality(nationality string) bool {
	for _, c := range Countries {
		if c.Nationality == nationality {
			return true
		}
	}
	return false
}

var AvailableSports = []string{"Badminton", "Cricket", "Football", "Tennis", "Squash"}

var AvailableLanguages = []string{
	"English", "Hindi", "Spanish", "French", "German", "Mandarin", "Arabic",
	"Russian", "Portuguese", "Bengali", "Marathi", "Telugu", "Tamil", "Urdu",
}

const BioCharacterLimit = 500

// StatField names one statistic in a sport's stat sheet.
type StatField string

const (
	StatMatchesPlayed StatField = "matchesPlayed"
	StatWins          StatField = "wins"
	StatLoss          StatField = "loss"
	StatDraws         StatField = "draws"
	StatAces          StatField = "aces"
	StatSmashWinners  StatField = "smashWinners"
	StatRunsScored    StatField = "runsScored"
	StatWicketsTaken  StatField = "wicketsTaken"
	StatGoalsScored   StatField = "goalsScored"
	StatAssists       StatField = "assists"
)

var sharedStatFields = []StatField{StatMatchesPlayed, StatWins, StatLoss, StatDraws}

// statSchemas declares which fields each sport's stat sheet carries.
// Racquet sports share the aces/smash-winners pair.
var statSchemas = map[string][]StatField{
	"Badminton": append(append([]StatField{}, sharedStatFields...), StatAces, StatSmashWinners),
	"Tennis":    append(append([]StatField{}, sharedStatFields...), StatAces, StatSmashWinners),
	"Squash":    append(append([]StatField{}, sharedStatFields...), StatAces, StatSmashWinners),
	"Cricket":   append(append([]StatField{}, sharedStatFields...), StatRunsScored, StatWicketsTaken),
	"Football":  append(append([]StatField{}, sharedStatFields...), StatGoalsScored, StatAssists),
}

// StatSchema returns the stat fields for a catalog sport.
func StatSchema(sport string) ([]StatField, bool) {
	fields, ok := statSchemas[sport]
	return fields, ok
}

func statFieldAllowed(sport string, field StatField) bool {
	for _, f := range statSchemas[sport] {
		if f == field {
			return true
		}
	}
	return false
}

func knownSport(sport string) bool {
	_, ok := statSchemas[sport]
	return ok
}

func knownLanguage(lang string) bool {
	for _, l := range AvailableLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

// Enums
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"

	HandRight = "Right"
	HandLeft  = "Left"

	DisabilityNo  = "No"
	DisabilityYes = "Yes"
)

var ParticipationLevels = []string{"Inter-College", "District", "State", "National", "International"}

var ParticipationResults = []string{"Winner", "Runner Up", "Semi-Finalist", "Quarter-Finalist", "Participant"}

// Media types
const (
	MediaImage       = "image"
	MediaVideo       = "video"
	MediaLink        = "link"
	MediaCertificate = "certificate"
)

// Tag lists
const (
	TagListStrengths  = "strengths"
	TagListWeaknesses = "weaknesses"
)

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if a == value {
			return true
		}
	}
	return false
}
