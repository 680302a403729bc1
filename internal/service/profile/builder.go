package profile

import (
	"strings"
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/jonboulle/clockwork"
)

// Builder holds one session's profile draft and everything derived
// from it. All exported methods take the builder's lock, so a session
// behaves as a single-writer state machine no matter how many requests
// race on it.
type Builder struct {
	mu    sync.Mutex
	clock clockwork.Clock
	ids   *snowflake.Node

	state ProfileState
	bmi   BMIReading

	currentStep  int
	furthestStep int

	participationForm entryForm[ParticipationRecord]
	achievementForm   entryForm[AchievementRecord]
}

// entryForm tracks an open add/edit form for one collection. When an
// existing record is being edited, staged holds the verbatim copy and
// stagedIndex its original position, so cancel can restore both.
type entryForm[T any] struct {
	open        bool
	staged      *T
	stagedIndex int
}

func (f *entryForm[T]) reset() {
	f.open = false
	f.staged = nil
	f.stagedIndex = 0
}

// NewBuilder starts an empty draft with the form's defaults: Indian
// nationality, metric units, no disability.
func NewBuilder(clock clockwork.Clock, ids *snowflake.Node) *Builder {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	b := &Builder{
		clock: clock,
		ids:   ids,
		state: ProfileState{
			Nationality: "Indian",
			CountryCode: "+91",
			HeightUnit:  "cm",
			WeightUnit:  "kg",
			Disability:  DisabilityNo,
			Stats:       make(map[string]SportStats),
		},
	}
	b.recompute()
	return b
}

// Scalar fields

// fieldSetters maps field names settable through SetField onto the
// state. Fields with paired updates (nationality) or extra rules
// (units, stats sport) have dedicated operations instead.
var fieldSetters = map[string]func(*ProfileState, string){
	"fullName":            func(s *ProfileState, v string) { s.FullName = v },
	"dob":                 func(s *ProfileState, v string) { s.DateOfBirth = v },
	"contactNo":           func(s *ProfileState, v string) { s.ContactNo = v },
	"gender":              func(s *ProfileState, v string) { s.Gender = v },
	"email":               func(s *ProfileState, v string) { s.Email = v },
	"address":             func(s *ProfileState, v string) { s.Address = v },
	"height":              func(s *ProfileState, v string) { s.Height = v },
	"weight":              func(s *ProfileState, v string) { s.Weight = v },
	"dominantHand":        func(s *ProfileState, v string) { s.DominantHand = v },
	"disability":          func(s *ProfileState, v string) { s.Disability = v },
	"disabilityDesc":      func(s *ProfileState, v string) { s.DisabilityDesc = v },
	"wingspan":            func(s *ProfileState, v string) { s.Wingspan = v },
	"agilityRating":       func(s *ProfileState, v string) { s.AgilityRating = v },
	"bio":                 func(s *ProfileState, v string) { s.Bio = v },
	"strengthDescription": func(s *ProfileState, v string) { s.StrengthDescription = v },
	"weaknessDescription": func(s *ProfileState, v string) { s.WeaknessDescription = v },
	"playerJourney":       func(s *ProfileState, v string) { s.PlayerJourney = v },
	"facebook":            func(s *ProfileState, v string) { s.SocialLinks.Facebook = v },
	"instagram":           func(s *ProfileState, v string) { s.SocialLinks.Instagram = v },
	"twitter":             func(s *ProfileState, v string) { s.SocialLinks.Twitter = v },
	"linkedin":            func(s *ProfileState, v string) { s.SocialLinks.LinkedIn = v },
}

// SetField writes one scalar field, applying the same keystroke-level
// rules the form enforces: rejected input leaves the stored value
// untouched.
func (b *Builder) SetField(name, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	set, ok := fieldSetters[name]
	if !ok {
		return ErrUnknownField
	}
	if err := b.checkFieldValue(name, value); err != nil {
		return err
	}
	set(&b.state, value)
	b.recompute()
	return nil
}

func (b *Builder) checkFieldValue(name, value string) error {
	switch name {
	case "fullName":
		if !nameRe.MatchString(value) {
			return ErrCharacterNotAllowed
		}
	case "contactNo":
		if !digitRe.MatchString(value) {
			return ErrCharacterNotAllowed
		}
		if len(value) > CountryByNationality(b.state.Nationality).MaxDigits {
			return ErrValueTooLong
		}
	case "bio":
		if len(value) > BioCharacterLimit {
			return ErrValueTooLong
		}
	case "gender":
		if value != "" && !oneOf(value, []string{GenderMale, GenderFemale, GenderOther}) {
			return ErrInvalidValue
		}
	case "dominantHand":
		if value != "" && !oneOf(value, []string{HandRight, HandLeft}) {
			return ErrInvalidValue
		}
	case "disability":
		if !oneOf(value, []string{DisabilityNo, DisabilityYes}) {
			return ErrInvalidValue
		}
	case "agilityRating":
		if value != "" && !oneOf(value, []string{"1", "2", "3", "4", "5"}) {
			return ErrInvalidValue
		}
	}
	return nil
}

// SetUnit switches the height or weight unit. The stored magnitude is
// kept as typed; only the interpretation changes.
func (b *Builder) SetUnit(kind, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch kind {
	case "height":
		if !oneOf(value, []string{"cm", "ft"}) {
			return ErrInvalidValue
		}
		b.state.HeightUnit = value
	case "weight":
		if !oneOf(value, []string{"kg", "lbs"}) {
			return ErrInvalidValue
		}
		b.state.WeightUnit = value
	default:
		return ErrUnknownField
	}
	b.recompute()
	return nil
}

// SetNationality updates nationality and dialing code together so the
// pair can never disagree.
func (b *Builder) SetNationality(nationality string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !knownNationality(nationality) {
		return ErrUnknownCountry
	}
	country := CountryByNationality(nationality)
	b.state.Nationality = country.Nationality
	b.state.CountryCode = country.DialCode
	return nil
}

// Sports and stats

// ToggleSport selects or deselects a catalog sport. Deselecting the
// sport whose stats are in view moves the view to the first remaining
// selection; the orphaned stat sheet itself is kept.
func (b *Builder) ToggleSport(sport string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !knownSport(sport) {
		return ErrUnknownSport
	}

	for i, s := range b.state.SelectedSports {
		if s != sport {
			continue
		}
		b.state.SelectedSports = append(b.state.SelectedSports[:i], b.state.SelectedSports[i+1:]...)
		if b.state.StatsSport == sport {
			b.state.StatsSport = ""
			if len(b.state.SelectedSports) > 0 {
				b.state.StatsSport = b.state.SelectedSports[0]
			}
		}
		b.recompute()
		return nil
	}

	b.state.SelectedSports = append(b.state.SelectedSports, sport)
	if b.state.StatsSport == "" {
		b.state.StatsSport = sport
	}
	b.recompute()
	return nil
}

// SetStatsSport changes which selected sport's stat sheet is in view.
func (b *Builder) SetStatsSport(sport string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !knownSport(sport) {
		return ErrUnknownSport
	}
	if !oneOf(sport, b.state.SelectedSports) {
		return ErrSportNotSelected
	}
	b.state.StatsSport = sport
	return nil
}

// SetStatField writes one stat of one sport's sheet. The value is
// stored as raw text; consistency checking, not input rejection, is
// how bad numbers surface.
func (b *Builder) SetStatField(sport string, field StatField, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !knownSport(sport) {
		return ErrUnknownSport
	}
	if !oneOf(sport, b.state.SelectedSports) {
		return ErrSportNotSelected
	}
	if !statFieldAllowed(sport, field) {
		return ErrUnknownStatField
	}

	stats := b.state.Stats[sport]
	stats.setField(field, value)
	b.state.Stats[sport] = stats
	b.recompute()
	return nil
}

// Languages and tags

func (b *Builder) ToggleLanguage(language string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !knownLanguage(language) {
		return ErrUnknownLanguage
	}
	b.state.Languages = toggleMembership(b.state.Languages, language)
	return nil
}

// ToggleTag adds or removes a free-form tag on the strengths or
// weaknesses list.
func (b *Builder) ToggleTag(list, tag string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	tag = strings.TrimSpace(tag)
	if tag == "" {
		return ErrInvalidValue
	}
	switch list {
	case TagListStrengths:
		b.state.Strengths = toggleMembership(b.state.Strengths, tag)
	case TagListWeaknesses:
		b.state.Weaknesses = toggleMembership(b.state.Weaknesses, tag)
	default:
		return ErrUnknownField
	}
	return nil
}

func toggleMembership(list []string, item string) []string {
	for i, v := range list {
		if v == item {
			return append(list[:i], list[i+1:]...)
		}
	}
	return append(list, item)
}

// Participations

// OpenParticipationForm marks the tournament entry form open, which
// blocks forward navigation until it is saved or cancelled.
func (b *Builder) OpenParticipationForm() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.participationForm.open = true
}

// CancelParticipationForm closes the form. If an existing record was
// being edited, its verbatim copy is restored at its original index.
func (b *Builder) CancelParticipationForm() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.participationForm.open {
		return ErrNoEditInProgress
	}
	if b.participationForm.staged != nil {
		b.state.Participations = insertAt(b.state.Participations,
			*b.participationForm.staged, b.participationForm.stagedIndex)
	}
	b.participationForm.reset()
	b.recompute()
	return nil
}

// AddParticipation validates and appends a tournament record, closing
// the form. Re-adding after BeginEdit commits the edit and drops the
// staged original.
func (b *Builder) AddParticipation(rec ParticipationRecord) (ParticipationRecord, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if strings.TrimSpace(rec.TournamentName) == "" ||
		strings.TrimSpace(rec.Date) == "" {
		return ParticipationRecord{}, ErrIncompleteRecord
	}
	if !oneOf(rec.Level, ParticipationLevels) || !oneOf(rec.Result, ParticipationResults) {
		return ParticipationRecord{}, ErrInvalidValue
	}
	if rec.ID == "" {
		rec.ID = b.ids.Generate().String()
	}
	if rec.Media == nil {
		rec.Media = []MediaItem{}
	}

	b.state.Participations = append(b.state.Participations, rec)
	b.participationForm.reset()
	b.recompute()
	return rec, nil
}

// RemoveParticipation deletes by id. Missing ids are a no-op so a
// double-tap on delete cannot fail.
func (b *Builder) RemoveParticipation(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, rec := range b.state.Participations {
		if rec.ID == id {
			b.state.Participations = append(b.state.Participations[:i], b.state.Participations[i+1:]...)
			break
		}
	}
	b.recompute()
}

// UpdateParticipation applies a partial patch in place, keeping the
// record's id and position.
func (b *Builder) UpdateParticipation(id string, patch ParticipationPatch) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.state.Participations {
		rec := &b.state.Participations[i]
		if rec.ID != id {
			continue
		}
		if patch.TournamentName != nil {
			rec.TournamentName = *patch.TournamentName
		}
		if patch.Level != nil {
			if !oneOf(*patch.Level, ParticipationLevels) {
				return ErrInvalidValue
			}
			rec.Level = *patch.Level
		}
		if patch.Date != nil {
			rec.Date = *patch.Date
		}
		if patch.Location != nil {
			rec.Location = *patch.Location
		}
		if patch.Result != nil {
			if !oneOf(*patch.Result, ParticipationResults) {
				return ErrInvalidValue
			}
			rec.Result = *patch.Result
		}
		if patch.Story != nil {
			rec.Story = *patch.Story
		}
		b.recompute()
		return nil
	}
	return ErrRecordNotFound
}

// BeginEditParticipation lifts a record out of the list into the open
// form and returns the copy for prefilling. The list no longer shows
// the record until the edit is saved or cancelled.
func (b *Builder) BeginEditParticipation(id string) (ParticipationRecord, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.participationForm.open {
		return ParticipationRecord{}, ErrEditorOpen
	}
	for i, rec := range b.state.Participations {
		if rec.ID != id {
			continue
		}
		staged := cloneParticipation(rec)
		b.state.Participations = append(b.state.Participations[:i], b.state.Participations[i+1:]...)
		b.participationForm = entryForm[ParticipationRecord]{open: true, staged: &staged, stagedIndex: i}
		b.recompute()
		return cloneParticipation(staged), nil
	}
	return ParticipationRecord{}, ErrRecordNotFound
}

// Achievements

func (b *Builder) OpenAchievementForm() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.achievementForm.open = true
}

func (b *Builder) CancelAchievementForm() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.achievementForm.open {
		return ErrNoEditInProgress
	}
	if b.achievementForm.staged != nil {
		b.state.Achievements = insertAt(b.state.Achievements,
			*b.achievementForm.staged, b.achievementForm.stagedIndex)
	}
	b.achievementForm.reset()
	b.recompute()
	return nil
}

func (b *Builder) AddAchievement(rec AchievementRecord) (AchievementRecord, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if strings.TrimSpace(rec.Title) == "" ||
		strings.TrimSpace(rec.Organization) == "" ||
		strings.TrimSpace(rec.Date) == "" {
		return AchievementRecord{}, ErrIncompleteRecord
	}
	if rec.ID == "" {
		rec.ID = b.ids.Generate().String()
	}

	b.state.Achievements = append(b.state.Achievements, rec)
	b.achievementForm.reset()
	b.recompute()
	return rec, nil
}

func (b *Builder) RemoveAchievement(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, rec := range b.state.Achievements {
		if rec.ID == id {
			b.state.Achievements = append(b.state.Achievements[:i], b.state.Achievements[i+1:]...)
			break
		}
	}
	b.recompute()
}

func (b *Builder) UpdateAchievement(id string, patch AchievementPatch) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.state.Achievements {
		rec := &b.state.Achievements[i]
		if rec.ID != id {
			continue
		}
		if patch.Title != nil {
			rec.Title = *patch.Title
		}
		if patch.Organization != nil {
			rec.Organization = *patch.Organization
		}
		if patch.Date != nil {
			rec.Date = *patch.Date
		}
		if patch.Description != nil {
			rec.Description = *patch.Description
		}
		if patch.Certificate != nil {
			cert := *patch.Certificate
			rec.Certificate = &cert
		}
		b.recompute()
		return nil
	}
	return ErrRecordNotFound
}

func (b *Builder) BeginEditAchievement(id string) (AchievementRecord, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.achievementForm.open {
		return AchievementRecord{}, ErrEditorOpen
	}
	for i, rec := range b.state.Achievements {
		if rec.ID != id {
			continue
		}
		staged := cloneAchievement(rec)
		b.state.Achievements = append(b.state.Achievements[:i], b.state.Achievements[i+1:]...)
		b.achievementForm = entryForm[AchievementRecord]{open: true, staged: &staged, stagedIndex: i}
		b.recompute()
		return cloneAchievement(staged), nil
	}
	return AchievementRecord{}, ErrRecordNotFound
}

// Media

// AddMedia attaches a media item to the profile gallery (empty owner)
// or to one participation's gallery. Video and link items without a
// thumbnail get one derived from the URL when the provider is known.
func (b *Builder) AddMedia(ownerID string, item MediaItem) (MediaItem, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !oneOf(item.Type, []string{MediaImage, MediaVideo, MediaLink, MediaCertificate}) {
		return MediaItem{}, ErrInvalidValue
	}
	if strings.TrimSpace(item.URL) == "" {
		return MediaItem{}, ErrIncompleteRecord
	}
	if item.ID == "" {
		item.ID = b.ids.Generate().String()
	}
	if item.Thumbnail == "" && (item.Type == MediaVideo || item.Type == MediaLink) {
		item.Thumbnail = ThumbnailForURL(item.URL)
	}

	if ownerID == "" {
		b.state.GeneralMedia = append(b.state.GeneralMedia, item)
		return item, nil
	}
	for i := range b.state.Participations {
		if b.state.Participations[i].ID == ownerID {
			b.state.Participations[i].Media = append(b.state.Participations[i].Media, item)
			return item, nil
		}
	}
	return MediaItem{}, ErrRecordNotFound
}

// RemoveMedia deletes a media item from the named gallery; missing
// items are a no-op.
func (b *Builder) RemoveMedia(ownerID, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ownerID == "" {
		b.state.GeneralMedia = removeMediaByID(b.state.GeneralMedia, id)
		return nil
	}
	for i := range b.state.Participations {
		if b.state.Participations[i].ID == ownerID {
			b.state.Participations[i].Media = removeMediaByID(b.state.Participations[i].Media, id)
			return nil
		}
	}
	return ErrRecordNotFound
}

// UpdateMedia patches one media item in place, in whichever gallery
// the owner context names.
func (b *Builder) UpdateMedia(ownerID, id string, patch MediaPatch) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	items := b.state.GeneralMedia
	if ownerID != "" {
		items = nil
		for i := range b.state.Participations {
			if b.state.Participations[i].ID == ownerID {
				items = b.state.Participations[i].Media
				break
			}
		}
		if items == nil {
			return ErrRecordNotFound
		}
	}
	for i := range items {
		if items[i].ID != id {
			continue
		}
		if patch.Caption != nil {
			items[i].Caption = *patch.Caption
		}
		if patch.Thumbnail != nil {
			items[i].Thumbnail = *patch.Thumbnail
		}
		return nil
	}
	return ErrRecordNotFound
}

func removeMediaByID(items []MediaItem, id string) []MediaItem {
	for i, item := range items {
		if item.ID == id {
			return append(items[:i], items[i+1:]...)
		}
	}
	return items
}

// Files

// SetProfilePicture replaces the single profile photo.
func (b *Builder) SetProfilePicture(h MediaHandle) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if strings.TrimSpace(h.URL) == "" {
		return ErrIncompleteRecord
	}
	b.state.ProfilePicture = &h
	return nil
}

func (b *Builder) ClearProfilePicture() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state.ProfilePicture = nil
}

// SetIdentityDocument replaces the identity proof document.
func (b *Builder) SetIdentityDocument(h MediaHandle) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if strings.TrimSpace(h.URL) == "" {
		return ErrIncompleteRecord
	}
	b.state.IdentityDocument = &h
	return nil
}

func (b *Builder) ClearIdentityDocument() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.state.IdentityDocument = nil
}

// Navigation

// GoNext advances one step, but only past a valid current step. The
// furthest-unlocked mark ratchets forward and never back.
func (b *Builder) GoNext() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if problems := b.stepProblems(b.currentStep); len(problems) > 0 {
		return ErrStepInvalid
	}
	if b.currentStep < StepCount()-1 {
		b.currentStep++
	}
	if b.currentStep > b.furthestStep {
		b.furthestStep = b.currentStep
	}
	return nil
}

// GoPrevious moves back one step and is always legal; invalid input on
// the current step is kept, not reverted.
func (b *Builder) GoPrevious() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.currentStep > 0 {
		b.currentStep--
	}
}

// JumpTo moves directly to any step that has already been unlocked.
func (b *Builder) JumpTo(step int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if step < 0 || step >= StepCount() {
		return ErrInvalidValue
	}
	if step > b.furthestStep {
		return ErrStepLocked
	}
	b.currentStep = step
	return nil
}

// Submit finalizes the draft. It is only legal from the final step,
// which every valid path has already gated on step by step.
func (b *Builder) Submit() (Completion, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.currentStep != StepCount()-1 {
		return Completion{}, ErrNotFinalStep
	}
	if problems := b.stepProblems(b.currentStep); len(problems) > 0 {
		return Completion{}, ErrStepInvalid
	}
	return Completion{
		ProfileID:   b.ids.Generate().String(),
		State:       cloneState(&b.state),
		BMI:         b.bmi,
		SubmittedAt: b.clock.Now().UTC().Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}

// Snapshot returns a deep copy of everything the UI renders: state,
// derived readings, and per-step validity.
func (b *Builder) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	steps := make([]StepStatus, StepCount())
	for i := range steps {
		problems := b.stepProblems(i)
		steps[i] = StepStatus{Name: StepName(i), Valid: len(problems) == 0, Problems: problems}
	}

	return Snapshot{
		State:       cloneState(&b.state),
		BMI:         b.bmi,
		Consistency: CheckConsistency(b.state.Stats[b.state.StatsSport]),
		Navigation: NavigationState{
			CurrentStep:     b.currentStep,
			CurrentStepName: StepName(b.currentStep),
			FurthestStep:    b.furthestStep,
			Steps:           steps,
		},
	}
}

// CurrentProblems lists what blocks the current step, for error bodies.
func (b *Builder) CurrentProblems() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stepProblems(b.currentStep)
}

// recompute refreshes derived values after a mutation. Callers hold
// the lock.
func (b *Builder) recompute() {
	b.bmi = ComputeBMI(b.state.Height, b.state.HeightUnit, b.state.Weight, b.state.WeightUnit)
}

func insertAt[T any](list []T, item T, index int) []T {
	if index < 0 {
		index = 0
	}
	if index > len(list) {
		index = len(list)
	}
	list = append(list, item)
	copy(list[index+1:], list[index:])
	list[index] = item
	return list
}

func cloneParticipation(rec ParticipationRecord) ParticipationRecord {
	out := rec
	out.Media = append([]MediaItem{}, rec.Media...)
	return out
}

func cloneAchievement(rec AchievementRecord) AchievementRecord {
	out := rec
	if rec.Certificate != nil {
		cert := *rec.Certificate
		out.Certificate = &cert
	}
	return out
}

func cloneState(s *ProfileState) ProfileState {
	out := *s
	out.SelectedSports = append([]string{}, s.SelectedSports...)
	out.Languages = append([]string{}, s.Languages...)
	out.Strengths = append([]string{}, s.Strengths...)
	out.Weaknesses = append([]string{}, s.Weaknesses...)
	out.GeneralMedia = append([]MediaItem{}, s.GeneralMedia...)

	out.Stats = make(map[string]SportStats, len(s.Stats))
	for sport, stats := range s.Stats {
		out.Stats[sport] = stats
	}
	out.Participations = make([]ParticipationRecord, len(s.Participations))
	for i, rec := range s.Participations {
		out.Participations[i] = cloneParticipation(rec)
	}
	out.Achievements = make([]AchievementRecord, len(s.Achievements))
	for i, rec := range s.Achievements {
		out.Achievements[i] = cloneAchievement(rec)
	}
	if s.ProfilePicture != nil {
		pic := *s.ProfilePicture
		out.ProfilePicture = &pic
	}
	if s.IdentityDocument != nil {
		doc := *s.IdentityDocument
		out.IdentityDocument = &doc
	}
	return out
}
