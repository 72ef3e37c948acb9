package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifeline-app/backend/internal/http/middleware"
	"github.com/lifeline-app/backend/internal/models"
)

// AdminMasterGet returns the full master record, passphrase hash included,
// for the admin editor.
func (h *Handler) AdminMasterGet(c *gin.Context) {
	rec := h.Master.Current()
	c.JSON(http.StatusOK, gin.H{"master": rec})
}

type masterUpdateRequest struct {
	Master models.MasterRecord `json:"master" binding:"required"`
}

// AdminMasterUpdate replaces the editable sections of the record. The
// passphrase hash is managed by its own endpoint and kept as-is here, so a
// stale editor payload cannot silently wipe the gate.
func (h *Handler) AdminMasterUpdate(c *gin.Context) {
	var req masterUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid master payload", err.Error())
		return
	}
	if err := h.Validator.Struct(req.Master); err != nil {
		writeError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "master record failed validation", err.Error())
		return
	}
	err := h.Master.Mutate(c.Request.Context(), func(rec *models.MasterRecord) error {
		hash := rec.PassphraseHash
		*rec = req.Master
		rec.PassphraseHash = hash
		detachOrphanedPersonnel(rec)
		return nil
	})
	if err != nil {
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to save master record", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"master": h.Master.Current()})
}

// detachOrphanedPersonnel clears employer references that no longer point
// at an existing employer, so deleting an employer keeps its people.
func detachOrphanedPersonnel(rec *models.MasterRecord) {
	for i := range rec.Personnel {
		if rec.Personnel[i].EmployerID != "" && rec.Employer(rec.Personnel[i].EmployerID) == nil {
			rec.Personnel[i].EmployerID = ""
		}
	}
}

// AdminExport downloads the record as indented JSON.
func (h *Handler) AdminExport(c *gin.Context) {
	doc, err := h.Master.Export()
	if err != nil {
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Export failed", err.Error())
		return
	}
	c.Header("Content-Disposition", `attachment; filename="lifeline-master.json"`)
	c.Data(http.StatusOK, "application/json", doc)
}

// AdminImport merges an uploaded document over the defaults, the same rule
// the startup load uses, then persists the result.
func (h *Handler) AdminImport(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil || len(raw) == 0 {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "request body must be a master JSON document", nil)
		return
	}
	merged, err := h.Master.Import(c.Request.Context(), raw)
	if err != nil {
		writeError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "document does not parse as a master record", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"master": merged})
}

type passphraseRequest struct {
	Current string `json:"current"`
	New     string `json:"new" binding:"required,min=4"`
}

// AdminSetPassphrase sets or changes the admin passphrase. First set is
// allowed when no hash exists; changes require the current passphrase and
// answer an inline 401 on mismatch, with no lockout counter.
func (h *Handler) AdminSetPassphrase(c *gin.Context) {
	var req passphraseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "new passphrase must be at least 4 characters", err.Error())
		return
	}
	rec := h.Master.Current()
	if rec.PassphraseHash != "" && middleware.HashPassphrase(req.Current) != rec.PassphraseHash {
		writeError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Current passphrase does not match", nil)
		return
	}
	err := h.Master.Mutate(c.Request.Context(), func(rec *models.MasterRecord) error {
		rec.PassphraseHash = middleware.HashPassphrase(req.New)
		return nil
	})
	if err != nil {
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to save passphrase", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
