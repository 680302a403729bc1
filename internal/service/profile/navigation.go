package profile

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Wizard steps in order.
const (
	StepPersonalInfo = iota
	StepSportsStats
	StepBio
	StepParticipation
	StepAchievements
	StepMedia
)

var stepNames = []string{
	"PERSONAL INFO",
	"SPORTS STATS",
	"BIO",
	"PARTICIPATION",
	"ACHIEVEMENTS",
	"MEDIA",
}

// StepCount is the number of wizard steps.
func StepCount() int { return len(stepNames) }

// StepName returns the display name of a step index.
func StepName(step int) string {
	if step < 0 || step >= len(stepNames) {
		return ""
	}
	return stepNames[step]
}

var (
	nameRe  = regexp.MustCompile(`^[a-zA-Z\s]*$`)
	digitRe = regexp.MustCompile(`^\d*$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// stepProblems lists everything blocking forward navigation from a
// step. An empty slice means the step is valid.
func (b *Builder) stepProblems(step int) []string {
	switch step {
	case StepPersonalInfo:
		return personalInfoProblems(&b.state, b.clock.Now())
	case StepSportsStats:
		return sportsStatsProblems(&b.state)
	case StepBio:
		return bioProblems(&b.state)
	case StepParticipation:
		if b.participationForm.open {
			return []string{"Save or cancel the open tournament entry first"}
		}
		return nil
	case StepAchievements:
		if b.achievementForm.open {
			return []string{"Save or cancel the open achievement entry first"}
		}
		return nil
	case StepMedia:
		return nil
	}
	return nil
}

func personalInfoProblems(s *ProfileState, now time.Time) []string {
	var problems []string

	if strings.TrimSpace(s.FullName) == "" {
		problems = append(problems, "Full Name is required")
	}

	switch dob, err := time.Parse("2006-01-02", strings.TrimSpace(s.DateOfBirth)); {
	case strings.TrimSpace(s.DateOfBirth) == "":
		problems = append(problems, "Date of Birth is required")
	case err != nil:
		problems = append(problems, "Date of Birth is invalid")
	case dob.After(now):
		problems = append(problems, "Date of Birth cannot be in the future")
	}

	country := CountryByNationality(s.Nationality)
	digits := len(s.ContactNo)
	switch {
	case digits == 0:
		problems = append(problems, "Contact Number is required")
	case digits < country.MinDigits || digits > country.MaxDigits:
		problems = append(problems, phoneLengthMessage(country))
	}

	if s.Gender == "" {
		problems = append(problems, "Gender is required")
	}

	switch {
	case strings.TrimSpace(s.Email) == "":
		problems = append(problems, "Email is required")
	case !emailRe.MatchString(s.Email):
		problems = append(problems, "Invalid Email Address")
	}

	if len(s.SelectedSports) == 0 {
		problems = append(problems, "Select at least one Sport")
	}
	if strings.TrimSpace(s.Address) == "" {
		problems = append(problems, "Address is required")
	}
	if s.IdentityDocument == nil {
		problems = append(problems, "Identity Proof is required")
	}
	if !positiveNumber(s.Height) {
		problems = append(problems, "Valid Height is required")
	}
	if !positiveNumber(s.Weight) {
		problems = append(problems, "Valid Weight is required")
	}
	if s.DominantHand == "" {
		problems = append(problems, "Dominant Hand is required")
	}
	if s.Disability == DisabilityYes && strings.TrimSpace(s.DisabilityDesc) == "" {
		problems = append(problems, "Disability Description is required")
	}

	return problems
}

func phoneLengthMessage(c Country) string {
	if c.MinDigits == c.MaxDigits {
		return fmt.Sprintf("Phone number for %s must be %d digits", c.Name, c.MinDigits)
	}
	return fmt.Sprintf("Phone number for %s must be %d-%d digits", c.Name, c.MinDigits, c.MaxDigits)
}

// sportsStatsProblems gates on the stat sheet currently in view: only
// a hard over-count blocks, a shortfall is just a warning.
func sportsStatsProblems(s *ProfileState) []string {
	if s.StatsSport == "" {
		return nil
	}
	report := CheckConsistency(s.Stats[s.StatsSport])
	if report.Level == ConsistencyError {
		return []string{report.Message}
	}
	return nil
}

func bioProblems(s *ProfileState) []string {
	var problems []string
	if strings.TrimSpace(s.Bio) == "" {
		problems = append(problems, "Bio is required")
	}
	if len(s.Languages) == 0 {
		problems = append(problems, "Select at least one language")
	}
	if strings.TrimSpace(s.StrengthDescription) == "" {
		problems = append(problems, "Strength Description is required")
	}
	if strings.TrimSpace(s.WeaknessDescription) == "" {
		problems = append(problems, "Weakness Description is required")
	}
	return problems
}

func positiveNumber(raw string) bool {
	v, err := parseFloat(raw)
	return err == nil && v > 0
}
