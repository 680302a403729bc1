package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewAge(t *testing.T) {
	b := newTestBuilder(t)

	assert.Equal(t, AgeUnknown, b.BuildPreview().Age)

	require.NoError(t, b.SetField("dob", "2000-01-15"))
	assert.Equal(t, "26", b.BuildPreview().Age)

	require.NoError(t, b.SetField("dob", "2030-01-01"))
	assert.Equal(t, AgeUnknown, b.BuildPreview().Age)
}

func TestPreviewPhone(t *testing.T) {
	b := newTestBuilder(t)

	assert.Empty(t, b.BuildPreview().Phone)

	require.NoError(t, b.SetField("contactNo", "9876543210"))
	assert.Equal(t, "+91 9876543210", b.BuildPreview().Phone)
}

func TestPreviewSortsCollections(t *testing.T) {
	b := newTestBuilder(t)

	for _, p := range []struct{ name, date string }{
		{"Newest Cup", "2025-05-01"},
		{"Oldest Cup", "2022-01-01"},
		{"Middle Cup", "2024-03-10"},
	} {
		_, err := b.AddParticipation(ParticipationRecord{
			TournamentName: p.name, Level: "State", Date: p.date, Result: "Winner",
		})
		require.NoError(t, err)
	}
	for _, a := range []struct{ title, date string }{
		{"Old Award", "2021-02-01"},
		{"New Award", "2025-07-15"},
	} {
		_, err := b.AddAchievement(AchievementRecord{
			Title: a.title, Organization: "Federation", Date: a.date,
		})
		require.NoError(t, err)
	}

	preview := b.BuildPreview()

	// Participations oldest first.
	require.Len(t, preview.Participations, 3)
	assert.Equal(t, "Oldest Cup", preview.Participations[0].TournamentName)
	assert.Equal(t, "Middle Cup", preview.Participations[1].TournamentName)
	assert.Equal(t, "Newest Cup", preview.Participations[2].TournamentName)

	// Achievements newest first.
	require.Len(t, preview.Achievements, 2)
	assert.Equal(t, "New Award", preview.Achievements[0].Title)
	assert.Equal(t, "Old Award", preview.Achievements[1].Title)
}

func TestPreviewSortLeavesStateOrder(t *testing.T) {
	b := newTestBuilder(t)
	for _, date := range []string{"2025-05-01", "2022-01-01"} {
		_, err := b.AddParticipation(ParticipationRecord{
			TournamentName: "Cup " + date, Level: "State", Date: date, Result: "Winner",
		})
		require.NoError(t, err)
	}

	b.BuildPreview()
	state := b.Snapshot().State
	assert.Equal(t, "Cup 2025-05-01", state.Participations[0].TournamentName)
}

func TestPreviewStatLines(t *testing.T) {
	b := newTestBuilder(t)
	require.NoError(t, b.ToggleSport("Cricket"))
	require.NoError(t, b.ToggleSport("Badminton"))
	require.NoError(t, b.SetStatField("Cricket", StatMatchesPlayed, "10"))
	require.NoError(t, b.SetStatField("Cricket", StatWins, "6"))
	require.NoError(t, b.SetStatField("Cricket", StatRunsScored, "1200"))
	require.NoError(t, b.SetStatField("Cricket", StatWicketsTaken, "18"))

	preview := b.BuildPreview()
	require.Len(t, preview.StatLines, 2)

	cricket := preview.StatLines[0]
	assert.Equal(t, "Cricket", cricket.Sport)
	assert.Equal(t, "60%", cricket.WinRate)
	assert.Equal(t, []StatPair{
		{Label: "Runs Scored", Value: "1200"},
		{Label: "Wickets Taken", Value: "18"},
	}, cricket.Extras)

	badminton := preview.StatLines[1]
	assert.Equal(t, "0%", badminton.WinRate)
	assert.Equal(t, []StatPair{
		{Label: "Aces", Value: ""},
		{Label: "Smash Winners", Value: ""},
	}, badminton.Extras)
}

func TestPreviewHighlightsAndMediaCount(t *testing.T) {
	b := newTestBuilder(t)

	plain, err := b.AddParticipation(ParticipationRecord{
		TournamentName: "Quiet Cup", Level: "State", Date: "2024-01-01", Result: "Participant",
	})
	require.NoError(t, err)
	storied, err := b.AddParticipation(ParticipationRecord{
		TournamentName: "Storied Cup", Level: "State", Date: "2024-06-01", Result: "Winner",
		Story: "Came back from a set down.",
	})
	require.NoError(t, err)

	_, err = b.AddMedia(storied.ID, MediaItem{Type: MediaImage, URL: "file://final.jpg"})
	require.NoError(t, err)
	_, err = b.AddMedia("", MediaItem{Type: MediaImage, URL: "file://training.jpg"})
	require.NoError(t, err)

	preview := b.BuildPreview()
	assert.Equal(t, 2, preview.MediaCount)
	assert.Equal(t, map[string]int{MediaImage: 2}, preview.MediaByType)
	require.Len(t, preview.Highlights, 1)
	assert.Equal(t, storied.ID, preview.Highlights[0].ParticipationID)
	assert.Equal(t, 1, preview.Highlights[0].MediaCount)
	assert.True(t, preview.Highlights[0].HasStory)
	assert.NotEqual(t, plain.ID, preview.Highlights[0].ParticipationID)
}
