package profile

import (
	"regexp"
	"sort"
	"strconv"
	"time"
)

// AgeUnknown is shown when the date of birth can't be resolved.
const AgeUnknown = "—"

// Preview is the read-only projection rendered on the review step.
// Nothing in here feeds back into the draft.
type Preview struct {
	FullName    string       `json:"full_name"`
	Age         string       `json:"age"`
	Gender      string       `json:"gender"`
	Nationality string       `json:"nationality"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone"`
	Address     string       `json:"address"`
	BMI         BMIReading   `json:"bmi"`
	Picture     *MediaHandle `json:"picture,omitempty"`

	Sports     []string `json:"sports"`
	Languages  []string `json:"languages"`
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`

	Bio           string      `json:"bio"`
	PlayerJourney string      `json:"player_journey"`
	SocialLinks   SocialLinks `json:"social_links"`

	StatLines      []SportStatLine       `json:"stat_lines"`
	Participations []ParticipationRecord `json:"participations"`
	Achievements   []AchievementRecord   `json:"achievements"`
	Highlights     []EventHighlight      `json:"highlights"`
	MediaCount     int                   `json:"media_count"`
	MediaByType    map[string]int        `json:"media_by_type"`
}

// SportStatLine summarizes one selected sport: the shared counters,
// the derived win rate, and the sport-specific extras in schema order.
type SportStatLine struct {
	Sport         string     `json:"sport"`
	MatchesPlayed string     `json:"matches_played"`
	Wins          string     `json:"wins"`
	Loss          string     `json:"loss"`
	Draws         string     `json:"draws"`
	WinRate       string     `json:"win_rate"`
	Extras        []StatPair `json:"extras"`
}

type StatPair struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// EventHighlight points at a participation that has a story or media
// attached, for the highlights strip.
type EventHighlight struct {
	ParticipationID string `json:"participation_id"`
	TournamentName  string `json:"tournament_name"`
	Date            string `json:"date"`
	Result          string `json:"result"`
	MediaCount      int    `json:"media_count"`
	HasStory        bool   `json:"has_story"`
}

var statLabels = map[StatField]string{
	StatAces:         "Aces",
	StatSmashWinners: "Smash Winners",
	StatRunsScored:   "Runs Scored",
	StatWicketsTaken: "Wickets Taken",
	StatGoalsScored:  "Goals Scored",
	StatAssists:      "Assists",
}

// BuildPreview projects the draft for review. Participations come out
// oldest first, achievements newest first.
func (b *Builder) BuildPreview() Preview {
	b.mu.Lock()
	defer b.mu.Unlock()

	s := cloneState(&b.state)

	age := AgeUnknown
	if years, ok := ageAt(s.DateOfBirth, b.clock.Now()); ok {
		age = strconv.Itoa(years)
	}

	phone := ""
	if s.ContactNo != "" {
		phone = s.CountryCode + " " + s.ContactNo
	}

	lines := make([]SportStatLine, 0, len(s.SelectedSports))
	for _, sport := range s.SelectedSports {
		lines = append(lines, statLine(sport, s.Stats[sport]))
	}

	sortParticipationsByDate(s.Participations, true)
	sortAchievementsByDate(s.Achievements, false)

	mediaCount := len(s.GeneralMedia)
	mediaByType := make(map[string]int)
	for _, item := range s.GeneralMedia {
		mediaByType[item.Type]++
	}
	highlights := make([]EventHighlight, 0)
	for _, rec := range s.Participations {
		mediaCount += len(rec.Media)
		for _, item := range rec.Media {
			mediaByType[item.Type]++
		}
		if rec.Story == "" && len(rec.Media) == 0 {
			continue
		}
		highlights = append(highlights, EventHighlight{
			ParticipationID: rec.ID,
			TournamentName:  rec.TournamentName,
			Date:            rec.Date,
			Result:          rec.Result,
			MediaCount:      len(rec.Media),
			HasStory:        rec.Story != "",
		})
	}

	return Preview{
		FullName:       s.FullName,
		Age:            age,
		Gender:         s.Gender,
		Nationality:    s.Nationality,
		Email:          s.Email,
		Phone:          phone,
		Address:        s.Address,
		BMI:            b.bmi,
		Picture:        s.ProfilePicture,
		Sports:         s.SelectedSports,
		Languages:      s.Languages,
		Strengths:      s.Strengths,
		Weaknesses:     s.Weaknesses,
		Bio:            s.Bio,
		PlayerJourney:  s.PlayerJourney,
		SocialLinks:    s.SocialLinks,
		StatLines:      lines,
		Participations: s.Participations,
		Achievements:   s.Achievements,
		Highlights:     highlights,
		MediaCount:     mediaCount,
		MediaByType:    mediaByType,
	}
}

func statLine(sport string, stats SportStats) SportStatLine {
	line := SportStatLine{
		Sport:         sport,
		MatchesPlayed: stats.MatchesPlayed,
		Wins:          stats.Wins,
		Loss:          stats.Loss,
		Draws:         stats.Draws,
		WinRate:       WinRate(stats),
	}
	for _, f := range statSchemas[sport] {
		if _, extra := statLabels[f]; extra {
			line.Extras = append(line.Extras, StatPair{Label: statLabels[f], Value: stats.field(f)})
		}
	}
	return line
}

// Records with unparseable dates sort after dated ones either way.
func sortParticipationsByDate(recs []ParticipationRecord, ascending bool) {
	sort.SliceStable(recs, func(i, j int) bool {
		return dateLess(recs[i].Date, recs[j].Date, ascending)
	})
}

func sortAchievementsByDate(recs []AchievementRecord, ascending bool) {
	sort.SliceStable(recs, func(i, j int) bool {
		return dateLess(recs[i].Date, recs[j].Date, ascending)
	})
}

func dateLess(a, b string, ascending bool) bool {
	ta, errA := time.Parse("2006-01-02", a)
	tb, errB := time.Parse("2006-01-02", b)
	if errA != nil || errB != nil {
		return errA == nil
	}
	if ascending {
		return ta.Before(tb)
	}
	return ta.After(tb)
}

var (
	youtubeWatchRe = regexp.MustCompile(`[?&]v=([A-Za-z0-9_-]{6,})`)
	youtubePathRe  = regexp.MustCompile(`(?:youtu\.be/|youtube\.com/(?:embed|shorts)/)([A-Za-z0-9_-]{6,})`)
)

// ThumbnailForURL derives a thumbnail for providers with a predictable
// scheme. Unknown providers get no thumbnail.
func ThumbnailForURL(url string) string {
	if m := youtubeWatchRe.FindStringSubmatch(url); m != nil {
		return "https://img.youtube.com/vi/" + m[1] + "/hqdefault.jpg"
	}
	if m := youtubePathRe.FindStringSubmatch(url); m != nil {
		return "https://img.youtube.com/vi/" + m[1] + "/hqdefault.jpg"
	}
	return ""
}
