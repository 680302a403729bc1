package profile

// Domain Models

// ProfileState is the complete draft an athlete builds across the
// wizard steps. All scalar fields hold raw form text; derived values
// (BMI, consistency, age) are computed from it, never stored back.
type ProfileState struct {
	FullName    string `json:"full_name"`
	DateOfBirth string `json:"date_of_birth"`
	Nationality string `json:"nationality"`
	CountryCode string `json:"country_code"`
	ContactNo   string `json:"contact_no"`
	Gender      string `json:"gender"`
	Email       string `json:"email"`
	Address     string `json:"address"`

	Height     string `json:"height"`
	HeightUnit string `json:"height_unit"`
	Weight     string `json:"weight"`
	WeightUnit string `json:"weight_unit"`

	DominantHand   string `json:"dominant_hand"`
	Disability     string `json:"disability"`
	DisabilityDesc string `json:"disability_desc"`
	Wingspan       string `json:"wingspan"`
	AgilityRating  string `json:"agility_rating"`

	SelectedSports []string              `json:"selected_sports"`
	StatsSport     string                `json:"stats_sport"`
	Stats          map[string]SportStats `json:"stats"`

	Bio                 string      `json:"bio"`
	Languages           []string    `json:"languages"`
	Strengths           []string    `json:"strengths"`
	StrengthDescription string      `json:"strength_description"`
	Weaknesses          []string    `json:"weaknesses"`
	WeaknessDescription string      `json:"weakness_description"`
	PlayerJourney       string      `json:"player_journey"`
	SocialLinks         SocialLinks `json:"social_links"`

	Participations []ParticipationRecord `json:"participations"`
	Achievements   []AchievementRecord   `json:"achievements"`

	GeneralMedia []MediaItem `json:"general_media"`

	ProfilePicture   *MediaHandle `json:"profile_picture,omitempty"`
	IdentityDocument *MediaHandle `json:"identity_document,omitempty"`
}

type SocialLinks struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
	LinkedIn  string `json:"linkedin"`
}

// SportStats holds one sport's stat sheet as raw form text.
// Which fields apply is governed by the sport's schema.
type SportStats struct {
	MatchesPlayed string `json:"matchesPlayed,omitempty"`
	Wins          string `json:"wins,omitempty"`
	Loss          string `json:"loss,omitempty"`
	Draws         string `json:"draws,omitempty"`
	Aces          string `json:"aces,omitempty"`
	SmashWinners  string `json:"smashWinners,omitempty"`
	RunsScored    string `json:"runsScored,omitempty"`
	WicketsTaken  string `json:"wicketsTaken,omitempty"`
	GoalsScored   string `json:"goalsScored,omitempty"`
	Assists       string `json:"assists,omitempty"`
}

func (s SportStats) field(f StatField) string {
	switch f {
	case StatMatchesPlayed:
		return s.MatchesPlayed
	case StatWins:
		return s.Wins
	case StatLoss:
		return s.Loss
	case StatDraws:
		return s.Draws
	case StatAces:
		return s.Aces
	case StatSmashWinners:
		return s.SmashWinners
	case StatRunsScored:
		return s.RunsScored
	case StatWicketsTaken:
		return s.WicketsTaken
	case StatGoalsScored:
		return s.GoalsScored
	case StatAssists:
		return s.Assists
	}
	return ""
}

func (s *SportStats) setField(f StatField, value string) {
	switch f {
	case StatMatchesPlayed:
		s.MatchesPlayed = value
	case StatWins:
		s.Wins = value
	case StatLoss:
		s.Loss = value
	case StatDraws:
		s.Draws = value
	case StatAces:
		s.Aces = value
	case StatSmashWinners:
		s.SmashWinners = value
	case StatRunsScored:
		s.RunsScored = value
	case StatWicketsTaken:
		s.WicketsTaken = value
	case StatGoalsScored:
		s.GoalsScored = value
	case StatAssists:
		s.Assists = value
	}
}

type ParticipationRecord struct {
	ID             string      `json:"id"`
	TournamentName string      `json:"tournament_name"`
	Level          string      `json:"level"`
	Date           string      `json:"date"`
	Location       string      `json:"location"`
	Result         string      `json:"result"`
	Story          string      `json:"story"`
	Media          []MediaItem `json:"media"`
}

type AchievementRecord struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Organization string       `json:"organization"`
	Date         string       `json:"date"`
	Description  string       `json:"description"`
	Certificate  *MediaHandle `json:"certificate,omitempty"`
}

type MediaItem struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	URL       string `json:"url"`
	Caption   string `json:"caption"`
	Thumbnail string `json:"thumbnail"`
}

// MediaHandle is an opaque reference to an uploaded file. The engine
// never inspects file contents, only carries the handle.
type MediaHandle struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	MIME string `json:"mime,omitempty"`
}

// Derived values

type BMIReading struct {
	Value  string `json:"value"`
	Status string `json:"status"`
	Color  string `json:"color"`
}

const (
	ColorNeutral  = "gray"
	ColorPositive = "lime"
	ColorWarning  = "yellow"
	ColorAlert    = "red"
)

const (
	ConsistencyError   = "error"
	ConsistencyWarning = "warning"
	ConsistencySuccess = "success"
)

// ConsistencyReport flags whether wins+loss+draws reconcile with
// matches played. An empty Level means no matches were recorded.
type ConsistencyReport struct {
	Level   string `json:"level,omitempty"`
	Message string `json:"message,omitempty"`
}

// Navigation

type StepStatus struct {
	Name     string   `json:"name"`
	Valid    bool     `json:"valid"`
	Problems []string `json:"problems,omitempty"`
}

type NavigationState struct {
	CurrentStep     int          `json:"current_step"`
	CurrentStepName string       `json:"current_step_name"`
	FurthestStep    int          `json:"furthest_step"`
	Steps           []StepStatus `json:"steps"`
}

// Snapshot is the full view the UI renders after every operation.
type Snapshot struct {
	State       ProfileState      `json:"state"`
	BMI         BMIReading        `json:"bmi"`
	Consistency ConsistencyReport `json:"consistency"`
	Navigation  NavigationState   `json:"navigation"`
}

// Completion is what submit hands to the caller once the draft is
// accepted. The session behind it is gone by the time this returns.
type Completion struct {
	ProfileID   string       `json:"profile_id"`
	State       ProfileState `json:"state"`
	BMI         BMIReading   `json:"bmi"`
	SubmittedAt string       `json:"submitted_at"`
}

// DTOs

type CreateSessionResponse struct {
	SessionID string   `json:"session_id"`
	Snapshot  Snapshot `json:"snapshot"`
}

type SetFieldRequest struct {
	Name  string `json:"name" binding:"required"`
	Value string `json:"value"`
}

type SetUnitRequest struct {
	Kind  string `json:"kind" binding:"required,oneof=height weight"`
	Value string `json:"value" binding:"required"`
}

type SetNationalityRequest struct {
	Nationality string `json:"nationality" binding:"required"`
}

type ToggleSportRequest struct {
	Sport string `json:"sport" binding:"required"`
}

type SetStatsSportRequest struct {
	Sport string `json:"sport" binding:"required"`
}

type ToggleLanguageRequest struct {
	Language string `json:"language" binding:"required"`
}

type ToggleTagRequest struct {
	List string `json:"list" binding:"required,oneof=strengths weaknesses"`
	Tag  string `json:"tag" binding:"required"`
}

type SetStatRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

type AddParticipationRequest struct {
	TournamentName string `json:"tournament_name" binding:"required"`
	Level          string `json:"level" binding:"required"`
	Date           string `json:"date" binding:"required"`
	Location       string `json:"location"`
	Result         string `json:"result" binding:"required"`
	Story          string `json:"story"`
}

// ParticipationPatch updates a subset of a participation's fields.
// Nil pointers leave the field untouched.
type ParticipationPatch struct {
	TournamentName *string `json:"tournament_name"`
	Level          *string `json:"level"`
	Date           *string `json:"date"`
	Location       *string `json:"location"`
	Result         *string `json:"result"`
	Story          *string `json:"story"`
}

type AddAchievementRequest struct {
	Title        string       `json:"title" binding:"required"`
	Organization string       `json:"organization" binding:"required"`
	Date         string       `json:"date" binding:"required"`
	Description  string       `json:"description"`
	Certificate  *MediaHandle `json:"certificate"`
}

type AchievementPatch struct {
	Title        *string      `json:"title"`
	Organization *string      `json:"organization"`
	Date         *string      `json:"date"`
	Description  *string      `json:"description"`
	Certificate  *MediaHandle `json:"certificate"`
}

type AddMediaRequest struct {
	OwnerID   string `json:"owner_id"`
	Type      string `json:"type" binding:"required,oneof=image video link certificate"`
	URL       string `json:"url" binding:"required"`
	Caption   string `json:"caption"`
	Thumbnail string `json:"thumbnail"`
}

// MediaPatch edits a media item's mutable fields; the URL and type are
// fixed at add time.
type MediaPatch struct {
	Caption   *string `json:"caption"`
	Thumbnail *string `json:"thumbnail"`
}

type FileHandleRequest struct {
	Name string `json:"name" binding:"required"`
	URL  string `json:"url" binding:"required"`
	MIME string `json:"mime"`
}

type JumpRequest struct {
	Step int `json:"step"`
}
