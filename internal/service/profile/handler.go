package profile

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

// CreateSession handles POST /api/v1/profiles
func (h *Handler) CreateSession(c *gin.Context) {
	id, snapshot := h.service.CreateSession(c.Request.Context())
	c.JSON(http.StatusCreated, CreateSessionResponse{SessionID: id, Snapshot: snapshot})
}

// GetSnapshot handles GET /api/v1/profiles/:id
func (h *Handler) GetSnapshot(c *gin.Context) {
	snapshot, err := h.service.Snapshot(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// SetField handles PATCH /api/v1/profiles/:id/fields
func (h *Handler) SetField(c *gin.Context) {
	var req SetFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snapshot, err := h.service.SetField(c.Request.Context(), c.Param("id"), req.Name, req.Value)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// SetUnit handles PATCH /api/v1/profiles/:id/units
func (h *Handler) SetUnit(c *gin.Context) {
	var req SetUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snapshot, err := h.service.SetUnit(c.Request.Context(), c.Param("id"), req.Kind, req.Value)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// SetNationality handles PATCH /api/v1/profiles/:id/nationality
func (h *Handler) SetNationality(c *gin.Context) {
	var req SetNationalityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snapshot, err := h.service.SetNationality(c.Request.Context(), c.Param("id"), req.Nationality)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// ToggleSport handles POST /api/v1/profiles/:id/sports/toggle
func (h *Handler) ToggleSport(c *gin.Context) {
	var req ToggleSportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snapshot, err := h.service.ToggleSport(c.Request.Context(), c.Param("id"), req.Sport)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// SetStatsSport handles PATCH /api/v1/profiles/:id/stats-sport
func (h *Handler) SetStatsSport(c *gin.Context) {
	var req SetStatsSportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snapshot, err := h.service.SetStatsSport(c.Request.Context(), c.Param("id"), req.Sport)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// SetStatField handles PUT /api/v1/profiles/:id/stats/:sport
func (h *Handler) SetStatField(c *gin.Context) {
	var req SetStatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snapshot, err := h.service.SetStatField(c.Request.Context(), c.Param("id"),
		c.Param("sport"), StatField(req.Field), req.Value)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// ToggleLanguage handles POST /api/v1/profiles/:id/languages/toggle
func (h *Handler) ToggleLanguage(c *gin.Context) {
	var req ToggleLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snapshot, err := h.service.ToggleLanguage(c.Request.Context(), c.Param("id"), req.Language)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// ToggleTag handles POST /api/v1/profiles/:id/tags/toggle
func (h *Handler) ToggleTag(c *gin.Context) {
	var req ToggleTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snapshot, err := h.service.ToggleTag(c.Request.Context(), c.Param("id"), req.List, req.Tag)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// OpenParticipationForm handles POST /api/v1/profiles/:id/participations/form
func (h *Handler) OpenParticipationForm(c *gin.Context) {
	snapshot, err := h.service.OpenParticipationForm(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// CancelParticipationForm handles DELETE /api/v1/profiles/:id/participations/form
func (h *Handler) CancelParticipationForm(c *gin.Context) {
	snapshot, err := h.service.CancelParticipationForm(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// AddParticipation handles POST /api/v1/profiles/:id/participations
func (h *Handler) AddParticipation(c *gin.Context) {
	var req AddParticipationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, snapshot, err := h.service.AddParticipation(c.Request.Context(), c.Param("id"), ParticipationRecord{
		TournamentName: req.TournamentName,
		Level:          req.Level,
		Date:           req.Date,
		Location:       req.Location,
		Result:         req.Result,
		Story:          req.Story,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"record": rec, "snapshot": snapshot})
}

// RemoveParticipation handles DELETE /api/v1/profiles/:id/participations/:recordId
func (h *Handler) RemoveParticipation(c *gin.Context) {
	snapshot, err := h.service.RemoveParticipation(c.Request.Context(), c.Param("id"), c.Param("recordId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// UpdateParticipation handles PATCH /api/v1/profiles/:id/participations/:recordId
func (h *Handler) UpdateParticipation(c *gin.Context) {
	var patch ParticipationPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snapshot, err := h.service.UpdateParticipation(c.Request.Context(), c.Param("id"), c.Param("recordId"), patch)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// BeginEditParticipation handles POST /api/v1/profiles/:id/participations/:recordId/edit
func (h *Handler) BeginEditParticipation(c *gin.Context) {
	rec, snapshot, err := h.service.BeginEditParticipation(c.Request.Context(), c.Param("id"), c.Param("recordId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"record": rec, "snapshot": snapshot})
}

// OpenAchievementForm handles POST /api/v1/profiles/:id/achievements/form
func (h *Handler) OpenAchievementForm(c *gin.Context) {
	snapshot, err := h.service.OpenAchievementForm(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// CancelAchievementForm handles DELETE /api/v1/profiles/:id/achievements/form
func (h *Handler) CancelAchievementForm(c *gin.Context) {
	snapshot, err := h.service.CancelAchievementForm(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// AddAchievement handles POST /api/v1/profiles/:id/achievements
func (h *Handler) AddAchievement(c *gin.Context) {
	var req AddAchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, snapshot, err := h.service.AddAchievement(c.Request.Context(), c.Param("id"), AchievementRecord{
		Title:        req.Title,
		Organization: req.Organization,
		Date:         req.Date,
		Description:  req.Description,
		Certificate:  req.Certificate,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"record": rec, "snapshot": snapshot})
}

// RemoveAchievement handles DELETE /api/v1/profiles/:id/achievements/:recordId
func (h *Handler) RemoveAchievement(c *gin.Context) {
	snapshot, err := h.service.RemoveAchievement(c.Request.Context(), c.Param("id"), c.Param("recordId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// UpdateAchievement handles PATCH /api/v1/profiles/:id/achievements/:recordId
func (h *Handler) UpdateAchievement(c *gin.Context) {
	var patch AchievementPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snapshot, err := h.service.UpdateAchievement(c.Request.Context(), c.Param("id"), c.Param("recordId"), patch)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// BeginEditAchievement handles POST /api/v1/profiles/:id/achievements/:recordId/edit
func (h *Handler) BeginEditAchievement(c *gin.Context) {
	rec, snapshot, err := h.service.BeginEditAchievement(c.Request.Context(), c.Param("id"), c.Param("recordId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"record": rec, "snapshot": snapshot})
}

// AddMedia handles POST /api/v1/profiles/:id/media
func (h *Handler) AddMedia(c *gin.Context) {
	var req AddMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, snapshot, err := h.service.AddMedia(c.Request.Context(), c.Param("id"), req.OwnerID, MediaItem{
		Type:      req.Type,
		URL:       req.URL,
		Caption:   req.Caption,
		Thumbnail: req.Thumbnail,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"media": item, "snapshot": snapshot})
}

// UpdateMedia handles PATCH /api/v1/profiles/:id/media/:mediaId
// The owning participation, if any, comes from the owner query param.
func (h *Handler) UpdateMedia(c *gin.Context) {
	var patch MediaPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snapshot, err := h.service.UpdateMedia(c.Request.Context(), c.Param("id"),
		c.Query("owner"), c.Param("mediaId"), patch)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// RemoveMedia handles DELETE /api/v1/profiles/:id/media/:mediaId
// The owning participation, if any, comes from the owner query param.
func (h *Handler) RemoveMedia(c *gin.Context) {
	snapshot, err := h.service.RemoveMedia(c.Request.Context(), c.Param("id"),
		c.Query("owner"), c.Param("mediaId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// SetProfilePicture handles PUT /api/v1/profiles/:id/photo
func (h *Handler) SetProfilePicture(c *gin.Context) {
	var req FileHandleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snapshot, err := h.service.SetProfilePicture(c.Request.Context(), c.Param("id"),
		MediaHandle{Name: req.Name, URL: req.URL, MIME: req.MIME})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// ClearProfilePicture handles DELETE /api/v1/profiles/:id/photo
func (h *Handler) ClearProfilePicture(c *gin.Context) {
	snapshot, err := h.service.ClearProfilePicture(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// SetIdentityDocument handles PUT /api/v1/profiles/:id/identity-document
func (h *Handler) SetIdentityDocument(c *gin.Context) {
	var req FileHandleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snapshot, err := h.service.SetIdentityDocument(c.Request.Context(), c.Param("id"),
		MediaHandle{Name: req.Name, URL: req.URL, MIME: req.MIME})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// ClearIdentityDocument handles DELETE /api/v1/profiles/:id/identity-document
func (h *Handler) ClearIdentityDocument(c *gin.Context) {
	snapshot, err := h.service.ClearIdentityDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// GoNext handles POST /api/v1/profiles/:id/navigation/next
func (h *Handler) GoNext(c *gin.Context) {
	snapshot, err := h.service.GoNext(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// GoPrevious handles POST /api/v1/profiles/:id/navigation/previous
func (h *Handler) GoPrevious(c *gin.Context) {
	snapshot, err := h.service.GoPrevious(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// JumpTo handles POST /api/v1/profiles/:id/navigation/jump
func (h *Handler) JumpTo(c *gin.Context) {
	var req JumpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snapshot, err := h.service.JumpTo(c.Request.Context(), c.Param("id"), req.Step)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// GetPreview handles GET /api/v1/profiles/:id/preview
func (h *Handler) GetPreview(c *gin.Context) {
	preview, err := h.service.Preview(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, preview)
}

// Submit handles POST /api/v1/profiles/:id/submit
func (h *Handler) Submit(c *gin.Context) {
	completion, err := h.service.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, completion)
}

// handleError maps domain errors to HTTP status codes
func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrStepInvalid),
		errors.Is(err, ErrStepLocked),
		errors.Is(err, ErrNotFinalStep),
		errors.Is(err, ErrEditorOpen),
		errors.Is(err, ErrNoEditInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrUnknownField),
		errors.Is(err, ErrCharacterNotAllowed),
		errors.Is(err, ErrValueTooLong),
		errors.Is(err, ErrInvalidValue),
		errors.Is(err, ErrUnknownCountry),
		errors.Is(err, ErrUnknownSport),
		errors.Is(err, ErrSportNotSelected),
		errors.Is(err, ErrUnknownStatField),
		errors.Is(err, ErrUnknownLanguage),
		errors.Is(err, ErrIncompleteRecord):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
