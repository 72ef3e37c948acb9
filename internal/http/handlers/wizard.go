package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifeline-app/backend/internal/compose"
	"github.com/lifeline-app/backend/internal/flow"
	"github.com/lifeline-app/backend/internal/models"
	"github.com/lifeline-app/backend/internal/qr"
)

type triageRequest struct {
	Consciousness models.TriageAnswer `json:"consciousness"`
	Breathing     models.TriageAnswer `json:"breathing"`
}

func (h *Handler) WizardTriage(c *gin.Context) {
	var req triageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid body", err.Error())
		return
	}
	h.mutate(c, func(s *models.SessionState) error {
		return flow.AnswerTriage(s, req.Consciousness, req.Breathing)
	})
}

func (h *Handler) WizardTriageNext(c *gin.Context) {
	h.mutate(c, func(s *models.SessionState) error {
		return flow.NextFromTriage(s)
	})
}

type stepRequest struct {
	Step models.Screen `json:"step" binding:"required"`
}

func (h *Handler) WizardGoToStep(c *gin.Context) {
	var req stepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "step is required", err.Error())
		return
	}
	h.mutate(c, func(s *models.SessionState) error {
		return flow.GoToStep(s, req.Step)
	})
}

type locationRequest struct {
	Source models.LocationSource `json:"source" binding:"required,oneof=qr manual map unknown"`
	Name   string                `json:"name"`
	Token  string                `json:"token"`
	SiteID string                `json:"site_id"`
	Zone   string                `json:"zone"`
}

// WizardLocation applies one location source. Whichever source arrives
// last fully replaces the previous one.
func (h *Handler) WizardLocation(c *gin.Context) {
	var req locationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "source must be qr, manual, map or unknown", err.Error())
		return
	}
	rec := h.Master.Current()
	h.mutate(c, func(s *models.SessionState) error {
		switch req.Source {
		case models.LocationQR:
			flow.SetLocationQR(s, &rec, req.Token)
			return nil
		case models.LocationMap:
			return flow.SetLocationFromMap(s, req.Zone)
		case models.LocationUnknown:
			flow.SetLocationUnknown(s)
			return nil
		default:
			if req.SiteID != "" {
				return flow.SetLocationFromCatalog(s, &rec, req.SiteID)
			}
			return flow.SetLocationManual(s, req.Name)
		}
	})
}

type tagRequest struct {
	Tag string `json:"tag" binding:"required"`
}

func (h *Handler) WizardToggleTag(c *gin.Context) {
	var req tagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "tag is required", err.Error())
		return
	}
	rec := h.Master.Current()
	h.mutate(c, func(s *models.SessionState) error {
		return flow.ToggleAccidentTag(s, &rec, req.Tag)
	})
}

func (h *Handler) WizardClearTags(c *gin.Context) {
	h.mutate(c, func(s *models.SessionState) error {
		flow.ClearAccidentTags(s)
		return nil
	})
}

func (h *Handler) WizardAccidentNote(c *gin.Context) {
	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid body", err.Error())
		return
	}
	h.mutate(c, func(s *models.SessionState) error {
		flow.SetAccidentNote(s, req.Note)
		return nil
	})
}

type victimRequest struct {
	PersonID string `json:"person_id"`
	Name     string `json:"name"`
	Token    string `json:"token"`
	Unknown  bool   `json:"unknown"`
}

func (h *Handler) WizardVictim(c *gin.Context) {
	var req victimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid body", err.Error())
		return
	}
	rec := h.Master.Current()
	h.mutate(c, func(s *models.SessionState) error {
		switch {
		case req.Unknown:
			flow.SetVictimUnknown(s)
			return nil
		case req.Token != "":
			flow.SetVictimQR(s, &rec, req.Token)
			return nil
		case req.PersonID != "":
			return flow.SetVictimPerson(s, &rec, req.PersonID)
		default:
			flow.SetVictimName(s, req.Name)
			return nil
		}
	})
}

// WizardReview composes the guided-flow summary draft.
func (h *Handler) WizardReview(c *gin.Context) {
	s, err := h.Sessions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.sessionError(c, err)
		return
	}
	rec := h.Master.Current()
	draft := compose.ComposeWizard(s, &rec)
	c.JSON(http.StatusOK, gin.H{
		"draft":          draft,
		"mailto_url":     compose.MailtoURL(draft),
		"copy_block":     compose.CopyBlock(draft),
		"has_recipients": len(draft.Recipients) > 0,
	})
}

type resolveRequest struct {
	Target qr.Target `json:"target" binding:"required,oneof=location victim"`
	Token  string    `json:"token" binding:"required"`
}

// ResolveToken matches a scanned QR token against the master record. Soft
// misses are 200s with registered=false; the flow continues either way.
func (h *Handler) ResolveToken(c *gin.Context) {
	var req resolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "target and token are required", err.Error())
		return
	}
	rec := h.Master.Current()
	var res qr.Resolution
	if req.Target == qr.TargetVictim {
		res = qr.ResolvePerson(&rec, req.Token)
	} else {
		res = qr.ResolveLocation(&rec, req.Token)
	}
	c.JSON(http.StatusOK, res)
}
