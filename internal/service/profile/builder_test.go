package profile

import (
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBuilder(t *testing.T) *Builder {
	t.Helper()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	clock := clockwork.NewFakeClockAt(time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC))
	return NewBuilder(clock, node)
}

// fillPersonalInfo sets every field the first step requires.
func fillPersonalInfo(t *testing.T, b *Builder) {
	t.Helper()
	require.NoError(t, b.SetField("fullName", "Asha Rao"))
	require.NoError(t, b.SetField("dob", "2000-01-15"))
	require.NoError(t, b.SetField("contactNo", "9876543210"))
	require.NoError(t, b.SetField("gender", GenderFemale))
	require.NoError(t, b.SetField("email", "asha@example.com"))
	require.NoError(t, b.SetField("address", "12 MG Road, Bengaluru"))
	require.NoError(t, b.SetField("height", "170"))
	require.NoError(t, b.SetField("weight", "62"))
	require.NoError(t, b.SetField("dominantHand", HandRight))
	require.NoError(t, b.ToggleSport("Badminton"))
	require.NoError(t, b.SetIdentityDocument(MediaHandle{Name: "aadhaar.pdf", URL: "file://aadhaar.pdf"}))
}

// fillBio satisfies the bio step.
func fillBio(t *testing.T, b *Builder) {
	t.Helper()
	require.NoError(t, b.SetField("bio", "Shuttler since school days."))
	require.NoError(t, b.ToggleLanguage("English"))
	require.NoError(t, b.SetField("strengthDescription", "Quick at the net."))
	require.NoError(t, b.SetField("weaknessDescription", "Backhand under pressure."))
}

func TestBuilderDefaults(t *testing.T) {
	b := newTestBuilder(t)
	snap := b.Snapshot()

	assert.Equal(t, "Indian", snap.State.Nationality)
	assert.Equal(t, "+91", snap.State.CountryCode)
	assert.Equal(t, "cm", snap.State.HeightUnit)
	assert.Equal(t, "kg", snap.State.WeightUnit)
	assert.Equal(t, DisabilityNo, snap.State.Disability)
	assert.Equal(t, 0, snap.Navigation.CurrentStep)
	assert.Equal(t, 0, snap.Navigation.FurthestStep)
}

func TestSetFieldKeystrokeRules(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   string
		wantErr error
	}{
		{"name accepts letters and spaces", "fullName", "Asha Rao", nil},
		{"name rejects digits", "fullName", "Asha2", ErrCharacterNotAllowed},
		{"name rejects punctuation", "fullName", "Asha-Rao", ErrCharacterNotAllowed},
		{"phone accepts digits", "contactNo", "987654", nil},
		{"phone rejects letters", "contactNo", "98765x", ErrCharacterNotAllowed},
		{"phone rejects plus sign", "contactNo", "+91987", ErrCharacterNotAllowed},
		{"phone rejects overflow", "contactNo", "98765432101", ErrValueTooLong},
		{"unknown field", "nickname", "x", ErrUnknownField},
		{"gender enum", "gender", "Unknown", ErrInvalidValue},
		{"agility range", "agilityRating", "6", ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBuilder(t)
			err := b.SetField(tt.field, tt.value)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRejectedInputKeepsStoredValue(t *testing.T) {
	b := newTestBuilder(t)
	require.NoError(t, b.SetField("fullName", "Asha"))

	err := b.SetField("fullName", "Asha7")
	assert.ErrorIs(t, err, ErrCharacterNotAllowed)
	assert.Equal(t, "Asha", b.Snapshot().State.FullName)
}

func TestBioCharacterLimit(t *testing.T) {
	b := newTestBuilder(t)
	atLimit := strings.Repeat("a", BioCharacterLimit)

	require.NoError(t, b.SetField("bio", atLimit))
	assert.ErrorIs(t, b.SetField("bio", atLimit+"a"), ErrValueTooLong)
	assert.Equal(t, atLimit, b.Snapshot().State.Bio)
}

func TestSetNationalityPairsDialCode(t *testing.T) {
	b := newTestBuilder(t)

	require.NoError(t, b.SetNationality("British"))
	snap := b.Snapshot()
	assert.Equal(t, "British", snap.State.Nationality)
	assert.Equal(t, "+44", snap.State.CountryCode)

	assert.ErrorIs(t, b.SetNationality("Martian"), ErrUnknownCountry)
}

func TestToggleSport(t *testing.T) {
	b := newTestBuilder(t)

	require.NoError(t, b.ToggleSport("Badminton"))
	require.NoError(t, b.ToggleSport("Cricket"))
	snap := b.Snapshot()
	assert.Equal(t, []string{"Badminton", "Cricket"}, snap.State.SelectedSports)
	assert.Equal(t, "Badminton", snap.State.StatsSport)

	// Second toggle deselects.
	require.NoError(t, b.ToggleSport("Cricket"))
	assert.Equal(t, []string{"Badminton"}, b.Snapshot().State.SelectedSports)

	assert.ErrorIs(t, b.ToggleSport("Chess"), ErrUnknownSport)
}

func TestDeselectingViewedSportMovesView(t *testing.T) {
	b := newTestBuilder(t)
	require.NoError(t, b.ToggleSport("Badminton"))
	require.NoError(t, b.ToggleSport("Cricket"))
	require.NoError(t, b.SetStatsSport("Cricket"))

	require.NoError(t, b.ToggleSport("Cricket"))
	assert.Equal(t, "Badminton", b.Snapshot().State.StatsSport)

	require.NoError(t, b.ToggleSport("Badminton"))
	assert.Equal(t, "", b.Snapshot().State.StatsSport)
}

func TestSportRemovalKeepsOrphanedStats(t *testing.T) {
	b := newTestBuilder(t)
	require.NoError(t, b.ToggleSport("Cricket"))
	require.NoError(t, b.SetStatField("Cricket", StatRunsScored, "1200"))

	require.NoError(t, b.ToggleSport("Cricket"))
	snap := b.Snapshot()
	assert.NotContains(t, snap.State.SelectedSports, "Cricket")
	assert.Equal(t, "1200", snap.State.Stats["Cricket"].RunsScored)

	// Re-selecting surfaces the old sheet untouched.
	require.NoError(t, b.ToggleSport("Cricket"))
	assert.Equal(t, "1200", b.Snapshot().State.Stats["Cricket"].RunsScored)
}

func TestSetStatField(t *testing.T) {
	b := newTestBuilder(t)
	require.NoError(t, b.ToggleSport("Football"))

	require.NoError(t, b.SetStatField("Football", StatGoalsScored, "14"))
	assert.Equal(t, "14", b.Snapshot().State.Stats["Football"].GoalsScored)

	// Transient garbage is stored as typed, not rejected.
	require.NoError(t, b.SetStatField("Football", StatWins, "1o"))
	assert.Equal(t, "1o", b.Snapshot().State.Stats["Football"].Wins)

	assert.ErrorIs(t, b.SetStatField("Football", StatAces, "3"), ErrUnknownStatField)
	assert.ErrorIs(t, b.SetStatField("Tennis", StatAces, "3"), ErrSportNotSelected)
	assert.ErrorIs(t, b.SetStatField("Chess", StatWins, "3"), ErrUnknownSport)
}

func TestToggleLanguageAndTags(t *testing.T) {
	b := newTestBuilder(t)

	require.NoError(t, b.ToggleLanguage("Hindi"))
	require.NoError(t, b.ToggleLanguage("Tamil"))
	require.NoError(t, b.ToggleLanguage("Hindi"))
	assert.Equal(t, []string{"Tamil"}, b.Snapshot().State.Languages)
	assert.ErrorIs(t, b.ToggleLanguage("Klingon"), ErrUnknownLanguage)

	require.NoError(t, b.ToggleTag(TagListStrengths, "Net play"))
	require.NoError(t, b.ToggleTag(TagListWeaknesses, "Stamina"))
	require.NoError(t, b.ToggleTag(TagListStrengths, "Net play"))
	snap := b.Snapshot()
	assert.Empty(t, snap.State.Strengths)
	assert.Equal(t, []string{"Stamina"}, snap.State.Weaknesses)

	assert.ErrorIs(t, b.ToggleTag("hobbies", "Reading"), ErrUnknownField)
	assert.ErrorIs(t, b.ToggleTag(TagListStrengths, "   "), ErrInvalidValue)
}

func TestAddParticipationAssignsUniqueIDs(t *testing.T) {
	b := newTestBuilder(t)

	first, err := b.AddParticipation(ParticipationRecord{
		TournamentName: "State Open", Level: "State", Date: "2024-03-10", Result: "Winner",
	})
	require.NoError(t, err)
	second, err := b.AddParticipation(ParticipationRecord{
		TournamentName: "District Cup", Level: "District", Date: "2023-11-02", Result: "Participant",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.NotEmpty(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestAddParticipationValidation(t *testing.T) {
	b := newTestBuilder(t)

	_, err := b.AddParticipation(ParticipationRecord{Level: "State", Date: "2024-03-10", Result: "Winner"})
	assert.ErrorIs(t, err, ErrIncompleteRecord)

	_, err = b.AddParticipation(ParticipationRecord{
		TournamentName: "Open", Level: "Galactic", Date: "2024-03-10", Result: "Winner",
	})
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = b.AddParticipation(ParticipationRecord{
		TournamentName: "Open", Level: "State", Date: "2024-03-10", Result: "Champion",
	})
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestRemoveParticipationIdempotent(t *testing.T) {
	b := newTestBuilder(t)
	rec, err := b.AddParticipation(ParticipationRecord{
		TournamentName: "State Open", Level: "State", Date: "2024-03-10", Result: "Winner",
	})
	require.NoError(t, err)

	b.RemoveParticipation(rec.ID)
	assert.Empty(t, b.Snapshot().State.Participations)
	b.RemoveParticipation(rec.ID)
	assert.Empty(t, b.Snapshot().State.Participations)
}

func TestEditCancelRestoresRecordAtPosition(t *testing.T) {
	b := newTestBuilder(t)

	var ids []string
	for _, name := range []string{"First Cup", "Second Cup", "Third Cup"} {
		rec, err := b.AddParticipation(ParticipationRecord{
			TournamentName: name, Level: "State", Date: "2024-03-10", Result: "Winner",
		})
		require.NoError(t, err)
		ids = append(ids, rec.ID)
	}
	require.NoError(t, b.UpdateParticipation(ids[1], ParticipationPatch{Story: str("Big comeback")}))
	before := b.Snapshot().State.Participations

	staged, err := b.BeginEditParticipation(ids[1])
	require.NoError(t, err)
	assert.Equal(t, "Second Cup", staged.TournamentName)

	// The record is out of the list while the edit is open.
	mid := b.Snapshot().State.Participations
	require.Len(t, mid, 2)
	assert.Equal(t, "First Cup", mid[0].TournamentName)
	assert.Equal(t, "Third Cup", mid[1].TournamentName)

	require.NoError(t, b.CancelParticipationForm())
	after := b.Snapshot().State.Participations
	assert.Equal(t, before, after)
}

func TestEditSaveCommitsNewValues(t *testing.T) {
	b := newTestBuilder(t)
	rec, err := b.AddParticipation(ParticipationRecord{
		TournamentName: "Old Name", Level: "State", Date: "2024-03-10", Result: "Winner",
	})
	require.NoError(t, err)

	staged, err := b.BeginEditParticipation(rec.ID)
	require.NoError(t, err)

	staged.TournamentName = "New Name"
	saved, err := b.AddParticipation(staged)
	require.NoError(t, err)

	assert.Equal(t, rec.ID, saved.ID)
	got := b.Snapshot().State.Participations
	require.Len(t, got, 1)
	assert.Equal(t, "New Name", got[0].TournamentName)
}

func TestBeginEditWhileFormOpen(t *testing.T) {
	b := newTestBuilder(t)
	rec, err := b.AddParticipation(ParticipationRecord{
		TournamentName: "Open", Level: "State", Date: "2024-03-10", Result: "Winner",
	})
	require.NoError(t, err)

	b.OpenParticipationForm()
	_, err = b.BeginEditParticipation(rec.ID)
	assert.ErrorIs(t, err, ErrEditorOpen)
}

func TestAchievementEditCancelRoundTrip(t *testing.T) {
	b := newTestBuilder(t)

	rec, err := b.AddAchievement(AchievementRecord{
		Title: "Best Player", Organization: "State Federation", Date: "2024-06-01",
		Certificate: &MediaHandle{Name: "cert.pdf", URL: "file://cert.pdf"},
	})
	require.NoError(t, err)
	before := b.Snapshot().State.Achievements

	_, err = b.BeginEditAchievement(rec.ID)
	require.NoError(t, err)
	assert.Empty(t, b.Snapshot().State.Achievements)

	require.NoError(t, b.CancelAchievementForm())
	assert.Equal(t, before, b.Snapshot().State.Achievements)
}

func TestAddMediaGeneralAndOwned(t *testing.T) {
	b := newTestBuilder(t)
	rec, err := b.AddParticipation(ParticipationRecord{
		TournamentName: "Open", Level: "State", Date: "2024-03-10", Result: "Winner",
	})
	require.NoError(t, err)

	general, err := b.AddMedia("", MediaItem{Type: MediaImage, URL: "file://net.jpg"})
	require.NoError(t, err)
	assert.NotEmpty(t, general.ID)

	owned, err := b.AddMedia(rec.ID, MediaItem{Type: MediaVideo, URL: "https://youtu.be/dQw4w9WgXcQ"})
	require.NoError(t, err)
	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg", owned.Thumbnail)

	snap := b.Snapshot()
	require.Len(t, snap.State.GeneralMedia, 1)
	require.Len(t, snap.State.Participations[0].Media, 1)

	_, err = b.AddMedia("missing", MediaItem{Type: MediaImage, URL: "file://x.jpg"})
	assert.ErrorIs(t, err, ErrRecordNotFound)

	_, err = b.AddMedia("", MediaItem{Type: "gif", URL: "file://x.gif"})
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestRemoveMedia(t *testing.T) {
	b := newTestBuilder(t)
	item, err := b.AddMedia("", MediaItem{Type: MediaImage, URL: "file://net.jpg"})
	require.NoError(t, err)

	require.NoError(t, b.RemoveMedia("", item.ID))
	assert.Empty(t, b.Snapshot().State.GeneralMedia)

	// Missing ids are a no-op, missing owners are not.
	require.NoError(t, b.RemoveMedia("", item.ID))
	assert.ErrorIs(t, b.RemoveMedia("missing", item.ID), ErrRecordNotFound)
}

func TestCancelWithoutOpenForm(t *testing.T) {
	b := newTestBuilder(t)

	assert.ErrorIs(t, b.CancelParticipationForm(), ErrNoEditInProgress)
	assert.ErrorIs(t, b.CancelAchievementForm(), ErrNoEditInProgress)

	// A plain add form cancels cleanly, but only once.
	b.OpenParticipationForm()
	require.NoError(t, b.CancelParticipationForm())
	assert.ErrorIs(t, b.CancelParticipationForm(), ErrNoEditInProgress)
}

func TestUpdateMedia(t *testing.T) {
	b := newTestBuilder(t)
	rec, err := b.AddParticipation(ParticipationRecord{
		TournamentName: "Open", Level: "State", Date: "2024-03-10", Result: "Winner",
	})
	require.NoError(t, err)

	general, err := b.AddMedia("", MediaItem{Type: MediaImage, URL: "file://net.jpg"})
	require.NoError(t, err)
	owned, err := b.AddMedia(rec.ID, MediaItem{Type: MediaImage, URL: "file://final.jpg"})
	require.NoError(t, err)

	require.NoError(t, b.UpdateMedia("", general.ID, MediaPatch{Caption: str("Net drill")}))
	require.NoError(t, b.UpdateMedia(rec.ID, owned.ID, MediaPatch{
		Caption:   str("Match point"),
		Thumbnail: str("file://final_thumb.jpg"),
	}))

	snap := b.Snapshot()
	assert.Equal(t, "Net drill", snap.State.GeneralMedia[0].Caption)
	assert.Equal(t, "Match point", snap.State.Participations[0].Media[0].Caption)
	assert.Equal(t, "file://final_thumb.jpg", snap.State.Participations[0].Media[0].Thumbnail)

	// Nil fields leave the item untouched, and identity is stable.
	require.NoError(t, b.UpdateMedia("", general.ID, MediaPatch{}))
	assert.Equal(t, "Net drill", b.Snapshot().State.GeneralMedia[0].Caption)
	assert.Equal(t, general.ID, b.Snapshot().State.GeneralMedia[0].ID)

	assert.ErrorIs(t, b.UpdateMedia("", "missing", MediaPatch{}), ErrRecordNotFound)
	assert.ErrorIs(t, b.UpdateMedia("missing", owned.ID, MediaPatch{}), ErrRecordNotFound)
	assert.ErrorIs(t, b.UpdateMedia(rec.ID, general.ID, MediaPatch{}), ErrRecordNotFound)
}

func TestProfilePictureSingular(t *testing.T) {
	b := newTestBuilder(t)

	require.NoError(t, b.SetProfilePicture(MediaHandle{Name: "one.jpg", URL: "file://one.jpg"}))
	require.NoError(t, b.SetProfilePicture(MediaHandle{Name: "two.jpg", URL: "file://two.jpg"}))
	snap := b.Snapshot()
	require.NotNil(t, snap.State.ProfilePicture)
	assert.Equal(t, "two.jpg", snap.State.ProfilePicture.Name)

	b.ClearProfilePicture()
	assert.Nil(t, b.Snapshot().State.ProfilePicture)
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	b := newTestBuilder(t)
	require.NoError(t, b.ToggleSport("Badminton"))
	snap := b.Snapshot()

	snap.State.SelectedSports[0] = "Cricket"
	snap.State.Stats["Badminton"] = SportStats{Wins: "999"}

	fresh := b.Snapshot()
	assert.Equal(t, []string{"Badminton"}, fresh.State.SelectedSports)
	assert.Empty(t, fresh.State.Stats["Badminton"].Wins)
}

func str(s string) *string { return &s }
