package profile

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"athlex/pkg/logger"
	"athlex/pkg/session"
)

var (
	sessionsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "athlex_profile_sessions_started_total",
		Help: "Number of profile builder sessions created",
	})
	profilesSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "athlex_profiles_submitted_total",
		Help: "Number of profiles submitted successfully",
	})
	blockedTransitions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "athlex_blocked_step_transitions_total",
		Help: "Number of forward navigations rejected by step validation",
	})
)

type Service struct {
	sessions *session.Store[*Builder]
	ids      *snowflake.Node
	clock    clockwork.Clock
	logger   logger.Logger
}

func NewService(sessions *session.Store[*Builder], ids *snowflake.Node, clock clockwork.Clock, logger logger.Logger) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Service{
		sessions: sessions,
		ids:      ids,
		clock:    clock,
		logger:   logger,
	}
}

// CreateSession starts a fresh draft and returns its id with the
// initial snapshot.
func (s *Service) CreateSession(ctx context.Context) (string, Snapshot) {
	id := uuid.NewString()
	b := NewBuilder(s.clock, s.ids)
	s.sessions.Put(id, b)
	sessionsStarted.Inc()

	s.logger.Info(ctx, "profile session started", logger.Field{Key: "session_id", Value: id})
	return id, b.Snapshot()
}

// Snapshot returns the current view of a session.
func (s *Service) Snapshot(ctx context.Context, id string) (Snapshot, error) {
	b, err := s.builder(id)
	if err != nil {
		return Snapshot{}, err
	}
	return b.Snapshot(), nil
}

// Preview builds the read-only review projection.
func (s *Service) Preview(ctx context.Context, id string) (Preview, error) {
	b, err := s.builder(id)
	if err != nil {
		return Preview{}, err
	}
	return b.BuildPreview(), nil
}

// Submit finalizes a session's draft and discards the session.
func (s *Service) Submit(ctx context.Context, id string) (Completion, error) {
	b, err := s.builder(id)
	if err != nil {
		return Completion{}, err
	}

	completion, err := b.Submit()
	if err != nil {
		s.logger.Warn(ctx, "submit rejected",
			logger.Field{Key: "session_id", Value: id},
			logger.Field{Key: "error", Value: err},
		)
		return Completion{}, err
	}

	s.sessions.Delete(id)
	profilesSubmitted.Inc()
	s.logger.Info(ctx, "profile submitted",
		logger.Field{Key: "session_id", Value: id},
		logger.Field{Key: "profile_id", Value: completion.ProfileID},
	)
	return completion, nil
}

// apply runs one mutation against a session and returns the snapshot
// the UI re-renders from.
func (s *Service) apply(ctx context.Context, id string, op func(*Builder) error) (Snapshot, error) {
	b, err := s.builder(id)
	if err != nil {
		return Snapshot{}, err
	}
	if err := op(b); err != nil {
		return Snapshot{}, err
	}
	return b.Snapshot(), nil
}

func (s *Service) builder(id string) (*Builder, error) {
	b, ok := s.sessions.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return b, nil
}

func (s *Service) SetField(ctx context.Context, id, name, value string) (Snapshot, error) {
	return s.apply(ctx, id, func(b *Builder) error { return b.SetField(name, value) })
}

func (s *Service) SetUnit(ctx context.Context, id, kind, value string) (Snapshot, error) {
	return s.apply(ctx, id, func(b *Builder) error { return b.SetUnit(kind, value) })
}

func (s *Service) SetNationality(ctx context.Context, id, nationality string) (Snapshot, error) {
	return s.apply(ctx, id, func(b *Builder) error { return b.SetNationality(nationality) })
}

func (s *Service) ToggleSport(ctx context.Context, id, sport string) (Snapshot, error) {
	return s.apply(ctx, id, func(b *Builder) error { return b.ToggleSport(sport) })
}

func (s *Service) SetStatsSport(ctx context.Context, id, sport string) (Snapshot, error) {
	return s.apply(ctx, id, func(b *Builder) error { return b.SetStatsSport(sport) })
}

func (s *Service) SetStatField(ctx context.Context, id, sport string, field StatField, value string) (Snapshot, error) {
	return s.apply(ctx, id, func(b *Builder) error { return b.SetStatField(sport, field, value) })
}

func (s *Service) ToggleLanguage(ctx context.Context, id, language string) (Snapshot, error) {
	return s.apply(ctx, id, func(b *Builder) error { return b.ToggleLanguage(language) })
}

func (s *Service) ToggleTag(ctx context.Context, id, list, tag string) (Snapshot, error) {
	return s.apply(ctx, id, func(b *Builder) error { return b.ToggleTag(list, tag) })
}

func (s *Service) OpenParticipationForm(ctx context.Context, id string) (Snapshot, error) {
	return s.apply(ctx, id, func(b *Builder) error { b.OpenParticipationForm(); return nil })
}

func (s *Service) CancelParticipationForm(ctx context.Context, id string) (Snapshot, error) {
	return s.apply(ctx, id, func(b *Builder) error { return b.CancelParticipationForm() })
}

func (s *Service) AddParticipation(ctx context.Context, id string, rec ParticipationRecord) (ParticipationRecord, Snapshot, error) {
	var added ParticipationRecord
	snap, err := s.apply(ctx, id, func(b *Builder) error {
		var err error
		added, err = b.AddParticipation(rec)
		return err
	})
	return added, snap, err
}

func (s *Service) RemoveParticipation(ctx context.Context, id, recordID string) (Snapshot, error) {
	return s.apply(ctx, id, func(b *Builder) error { b.RemoveParticipation(recordID); return nil })
}

func (s *Service) UpdateParticipation(ctx context.Context, id, recordID string, patch ParticipationPatch) (Snapshot, error) {
	return s.apply(ctx, id, func(b *Builder) error { return b.UpdateParticipation(recordID, patch) })
}

func (s *Service) BeginEditParticipation(ctx context.Context, id, recordID string) (ParticipationRecord, Snapshot, error) {
	var staged ParticipationRecord
	snap, err := s.apply(ctx, id, func(b *Builder) error {
		var err error
		staged, err = b.BeginEditParticipation(recordID)
		return err
	})
	return staged, snap, err
}

func (s *Service) OpenAchievementForm(ctx context.Context, id string) (Snapshot, error) {
	return s.apply(ctx, id, func(b *Builder) error { b.OpenAchievementForm(); return nil })
}

func (s *Service) CancelAchievementForm(ctx context.Context, id string) (Snapshot, error) {
	return s.apply(ctx, id, func(b *Builder) error { return b.CancelAchievementForm() })
}

func (s *Service) AddAchievement(ctx context.Context, id string, rec AchievementRecord) (AchievementRecord, Snapshot, error) {
	var added AchievementRecord
	snap, err := s.apply(ctx, id, func(b *Builder) error {
		var err error
		added, err = b.AddAchievement(rec)
		return err
	})
	return added, snap, err
}

func (s *Service) RemoveAchievement(ctx context.Context, id, recordID string) (Snapshot, error) {
	return s.apply(ctx, id, func(b *Builder) error { b.RemoveAchievement(recordID); return nil })
}

func (s *Service) UpdateAchievement(ctx context.Context, id, recordID string, patch AchievementPatch) (Snapshot, error) {
	return s.apply(ctx, id, func(b *Builder) error { return b.UpdateAchievement(recordID, patch) })
}

func (s *Service) BeginEditAchievement(ctx context.Context, id, recordID string) (AchievementRecord, Snapshot, error) {
	var staged AchievementRecord
	snap, err := s.apply(ctx, id, func(b *Builder) error {
		var err error
		staged, err = b.BeginEditAchievement(recordID)
		return err
	})
	return staged, snap, err
}

func (s *Service) AddMedia(ctx context.Context, id, ownerID string, item MediaItem) (MediaItem, Snapshot, error) {
	var added MediaItem
	snap, err := s.apply(ctx, id, func(b *Builder) error {
		var err error
		added, err = b.AddMedia(ownerID, item)
		return err
	})
	return added, snap, err
}

func (s *Service) UpdateMedia(ctx context.Context, id, ownerID, mediaID string, patch MediaPatch) (Snapshot, error) {
	return s.apply(ctx, id, func(b *Builder) error { return b.UpdateMedia(ownerID, mediaID, patch) })
}

func (s *Service) RemoveMedia(ctx context.Context, id, ownerID, mediaID string) (Snapshot, error) {
	return s.apply(ctx, id, func(b *Builder) error { return b.RemoveMedia(ownerID, mediaID) })
}

func (s *Service) SetProfilePicture(ctx context.Context, id string, h MediaHandle) (Snapshot, error) {
	return s.apply(ctx, id, func(b *Builder) error { return b.SetProfilePicture(h) })
}

func (s *Service) ClearProfilePicture(ctx context.Context, id string) (Snapshot, error) {
	return s.apply(ctx, id, func(b *Builder) error { b.ClearProfilePicture(); return nil })
}

func (s *Service) SetIdentityDocument(ctx context.Context, id string, h MediaHandle) (Snapshot, error) {
	return s.apply(ctx, id, func(b *Builder) error { return b.SetIdentityDocument(h) })
}

func (s *Service) ClearIdentityDocument(ctx context.Context, id string) (Snapshot, error) {
	return s.apply(ctx, id, func(b *Builder) error { b.ClearIdentityDocument(); return nil })
}

// GoNext advances the wizard; rejected transitions are counted and the
// blocking problems logged for the caller to surface.
func (s *Service) GoNext(ctx context.Context, id string) (Snapshot, error) {
	b, err := s.builder(id)
	if err != nil {
		return Snapshot{}, err
	}
	if err := b.GoNext(); err != nil {
		blockedTransitions.Inc()
		s.logger.Debug(ctx, "forward navigation blocked",
			logger.Field{Key: "session_id", Value: id},
			logger.Field{Key: "problems", Value: b.CurrentProblems()},
		)
		return Snapshot{}, err
	}
	return b.Snapshot(), nil
}

func (s *Service) GoPrevious(ctx context.Context, id string) (Snapshot, error) {
	return s.apply(ctx, id, func(b *Builder) error { b.GoPrevious(); return nil })
}

func (s *Service) JumpTo(ctx context.Context, id string, step int) (Snapshot, error) {
	return s.apply(ctx, id, func(b *Builder) error { return b.JumpTo(step) })
}
