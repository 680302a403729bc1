package profile

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Unit conversion factors
const (
	feetToMeters        = 0.3048
	poundsToKilos       = 0.453592
	centimetersPerMeter = 100.0
)

// ComputeBMI derives a BMI reading from the raw height/weight text and
// their units. Unset or non-positive inputs yield a blank reading with
// the neutral color, never an error.
func ComputeBMI(height, heightUnit, weight, weightUnit string) BMIReading {
	h, errH := strconv.ParseFloat(strings.TrimSpace(height), 64)
	w, errW := strconv.ParseFloat(strings.TrimSpace(weight), 64)
	if errH != nil || errW != nil || h <= 0 || w <= 0 {
		return BMIReading{Color: ColorNeutral}
	}

	meters := h / centimetersPerMeter
	if heightUnit == "ft" {
		meters = h * feetToMeters
	}
	kilos := w
	if weightUnit == "lbs" {
		kilos = w * poundsToKilos
	}

	// Round to one decimal first, then classify, so the displayed
	// number and its band always agree.
	value := math.Round(kilos/(meters*meters)*10) / 10
	status, color := classifyBMI(value)

	return BMIReading{
		Value:  strconv.FormatFloat(value, 'f', 1, 64),
		Status: status,
		Color:  color,
	}
}

// classifyBMI maps a rounded BMI value onto the WHO bands.
func classifyBMI(value float64) (status, color string) {
	switch {
	case value < 18.5:
		return "Underweight", ColorAlert
	case value < 25:
		return "Normal", ColorPositive
	case value < 30:
		return "Overweight", ColorWarning
	default:
		return "Obesity", ColorAlert
	}
}

// CheckConsistency reconciles wins+loss+draws against matches played.
// Raw text that doesn't parse as a non-negative integer counts as 0.
// Zero matches yields an empty report.
func CheckConsistency(stats SportStats) ConsistencyReport {
	matches := parseCount(stats.MatchesPlayed)
	if matches == 0 {
		return ConsistencyReport{}
	}

	wins := parseCount(stats.Wins)
	loss := parseCount(stats.Loss)
	draws := parseCount(stats.Draws)
	total := wins + loss + draws

	switch {
	case total > matches:
		return ConsistencyReport{
			Level: ConsistencyError,
			Message: fmt.Sprintf("Wins (%d) + Loss (%d) + Draws (%d) = %d exceeds Matches Played (%d)",
				wins, loss, draws, total, matches),
		}
	case total < matches:
		return ConsistencyReport{
			Level: ConsistencyWarning,
			Message: fmt.Sprintf("Wins (%d) + Loss (%d) + Draws (%d) = %d is less than Matches Played (%d)",
				wins, loss, draws, total, matches),
		}
	default:
		return ConsistencyReport{
			Level:   ConsistencySuccess,
			Message: "Stats are consistent",
		}
	}
}

func parseFloat(raw string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(raw), 64)
}

// parseCount reads a stat value as a count, treating malformed or
// negative input as 0.
func parseCount(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// WinRate formats wins/matches as a rounded whole percentage.
// Zero matches reads as "0%" rather than a division error.
func WinRate(stats SportStats) string {
	matches := parseCount(stats.MatchesPlayed)
	if matches == 0 {
		return "0%"
	}
	wins := parseCount(stats.Wins)
	pct := math.Round(float64(wins) / float64(matches) * 100)
	return strconv.Itoa(int(pct)) + "%"
}

// ageAt returns full calendar years lived at the reference time.
// Returns false when the date is blank, malformed, or in the future.
func ageAt(dateOfBirth string, now time.Time) (int, bool) {
	dob, err := time.Parse("2006-01-02", strings.TrimSpace(dateOfBirth))
	if err != nil {
		return 0, false
	}
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	if years < 0 {
		return 0, false
	}
	return years, true
}
