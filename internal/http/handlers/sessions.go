package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lifeline-app/backend/internal/compose"
	"github.com/lifeline-app/backend/internal/flow"
	"github.com/lifeline-app/backend/internal/models"
)

type sessionResponse struct {
	Session *models.SessionState `json:"session"`
	Screen  models.Screen        `json:"screen"`
}

func sessionJSON(c *gin.Context, s *models.SessionState) {
	c.JSON(http.StatusOK, sessionResponse{Session: s, Screen: flow.CurrentScreen(s)})
}

// @Summary Create a report session
// @Tags sessions
// @Produce json
// @Success 201 {object} sessionResponse
// @Router /api/sessions [post]
func (h *Handler) SessionCreate(c *gin.Context) {
	s, err := h.Sessions.Create(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to create session", err.Error())
		return
	}
	c.JSON(http.StatusCreated, sessionResponse{Session: s, Screen: flow.CurrentScreen(s)})
}

func (h *Handler) SessionGet(c *gin.Context) {
	s, err := h.Sessions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.sessionError(c, err)
		return
	}
	sessionJSON(c, s)
}

// sessionError maps flow errors onto the error envelope.
func (h *Handler) sessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, flow.ErrSessionNotFound):
		writeError(c, http.StatusNotFound, "NOT_FOUND", "Session not found", nil)
	case errors.Is(err, flow.ErrUnknownSymptom),
		errors.Is(err, flow.ErrUnknownEmployer),
		errors.Is(err, flow.ErrUnknownPerson),
		errors.Is(err, flow.ErrUnknownBodyLocation),
		errors.Is(err, flow.ErrUnknownStep),
		errors.Is(err, flow.ErrInvalidAction):
		writeError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error(), nil)
	case errors.Is(err, flow.ErrTriageIncomplete):
		writeError(c, http.StatusConflict, "INVALID_STATE", "Answer both triage questions first", nil)
	default:
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Session update failed", err.Error())
	}
}

func (h *Handler) mutate(c *gin.Context, fn func(*models.SessionState) error) {
	s, err := h.Sessions.Mutate(c.Request.Context(), c.Param("id"), fn)
	if err != nil {
		h.sessionError(c, err)
		return
	}
	sessionJSON(c, s)
}

func (h *Handler) SessionBack(c *gin.Context) {
	h.mutate(c, func(s *models.SessionState) error {
		flow.Back(s)
		return nil
	})
}

// SessionResume is the reload entry point: keeps the restored answers but
// forces the screen stack back to home.
func (h *Handler) SessionResume(c *gin.Context) {
	h.mutate(c, func(s *models.SessionState) error {
		flow.Resume(s)
		return nil
	})
}

func (h *Handler) SessionRestart(c *gin.Context) {
	h.mutate(c, func(s *models.SessionState) error {
		flow.Restart(s)
		return nil
	})
}

type startQuickRequest struct {
	Mode models.Mode `json:"mode" binding:"required,oneof=emergency unsure"`
}

func (h *Handler) StartQuick(c *gin.Context) {
	var req startQuickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "mode must be emergency or unsure", err.Error())
		return
	}
	h.mutate(c, func(s *models.SessionState) error {
		flow.StartQuick(s, req.Mode)
		return nil
	})
}

func (h *Handler) StartWizard(c *gin.Context) {
	h.mutate(c, func(s *models.SessionState) error {
		flow.StartWizard(s, time.Now())
		return nil
	})
}

type idRequest struct {
	ID string `json:"id" binding:"required"`
}

func (h *Handler) SelectSymptom(c *gin.Context) {
	var req idRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "id is required", err.Error())
		return
	}
	rec := h.Master.Current()
	h.mutate(c, func(s *models.SessionState) error {
		return flow.SelectSymptom(s, &rec, req.ID)
	})
}

func (h *Handler) SelectBodyLocation(c *gin.Context) {
	var req idRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "id is required", err.Error())
		return
	}
	rec := h.Master.Current()
	h.mutate(c, func(s *models.SessionState) error {
		return flow.SelectBodyLocation(s, &rec, req.ID)
	})
}

func (h *Handler) ConfirmBodyLocation(c *gin.Context) {
	rec := h.Master.Current()
	h.mutate(c, func(s *models.SessionState) error {
		return flow.ConfirmBodyLocation(s, &rec)
	})
}

func (h *Handler) SelectEmployer(c *gin.Context) {
	var req idRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "id is required", err.Error())
		return
	}
	rec := h.Master.Current()
	h.mutate(c, func(s *models.SessionState) error {
		return flow.SelectEmployer(s, &rec, req.ID)
	})
}

func (h *Handler) SelectPerson(c *gin.Context) {
	var req idRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "id is required", err.Error())
		return
	}
	rec := h.Master.Current()
	h.mutate(c, func(s *models.SessionState) error {
		return flow.SelectPerson(s, &rec, req.ID)
	})
}

type actionRequest struct {
	Action models.SeverityAction `json:"action" binding:"required,oneof=emergency observe"`
}

func (h *Handler) SetAction(c *gin.Context) {
	var req actionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "action must be emergency or observe", err.Error())
		return
	}
	h.mutate(c, func(s *models.SessionState) error {
		return flow.SetAction(s, req.Action)
	})
}

type noteRequest struct {
	Note string `json:"note"`
}

func (h *Handler) SetNote(c *gin.Context) {
	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid body", err.Error())
		return
	}
	h.mutate(c, func(s *models.SessionState) error {
		flow.SetNote(s, req.Note)
		return nil
	})
}

type previewResponse struct {
	Draft      models.Draft          `json:"draft"`
	Action     models.SeverityAction `json:"action"`
	Advice     string                `json:"advice"`
	MailtoURL  string                `json:"mailto_url"`
	CopyBlock  string                `json:"copy_block"`
	Recipients bool                  `json:"has_recipients"`
}

// Preview composes the quick-flow draft for the session's current answers.
// An empty recipient list is a 200 with has_recipients=false; the client
// renders the "no recipients configured" notice.
func (h *Handler) Preview(c *gin.Context) {
	s, err := h.Sessions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.sessionError(c, err)
		return
	}
	rec := h.Master.Current()
	action := s.Action
	if action == "" {
		if sym := rec.Symptom(s.SymptomID); sym != nil && sym.DefaultAction != "" {
			action = sym.DefaultAction
		} else {
			action = models.ActionObserve
		}
	}
	draft := compose.Compose(s, &rec, action, time.Now())
	c.JSON(http.StatusOK, previewResponse{
		Draft:      draft,
		Action:     action,
		Advice:     compose.AdviceText(rec.Symptom(s.SymptomID), action),
		MailtoURL:  compose.MailtoURL(draft),
		CopyBlock:  compose.CopyBlock(draft),
		Recipients: len(draft.Recipients) > 0,
	})
}
