package handlers

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lifeline-app/backend/internal/master"
	"github.com/lifeline-app/backend/internal/models"
)

// Employers lists all employers in master order.
func (h *Handler) Employers(c *gin.Context) {
	rec := h.Master.Current()
	c.JSON(http.StatusOK, gin.H{"employers": rec.Employers})
}

type personnelEntry struct {
	models.Person
	Group string `json:"group"`
}

// Personnel lists people, optionally scoped to an employer, filtered by
// phonetic group or a name/reading search, sorted by reading.
func (h *Handler) Personnel(c *gin.Context) {
	rec := h.Master.Current()
	employerID := c.Query("employer_id")
	group := c.Query("group")
	query := strings.ToLower(strings.TrimSpace(c.Query("q")))

	out := make([]personnelEntry, 0, len(rec.Personnel))
	for _, p := range rec.Personnel {
		if employerID != "" && p.EmployerID != employerID {
			continue
		}
		g := master.PhoneticGroup(p.Reading)
		if group != "" && g != group {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Reading), query) {
			continue
		}
		out = append(out, personnelEntry{Person: p, Group: g})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Reading < out[j].Reading
	})
	c.JSON(http.StatusOK, gin.H{
		"personnel": out,
		"groups":    master.PhoneticGroups(),
	})
}

// Symptoms lists symptom definitions. A mode query selects the home-screen
// preset subset; without one the full catalog comes back.
func (h *Handler) Symptoms(c *gin.Context) {
	rec := h.Master.Current()
	mode := models.Mode(c.Query("mode"))

	if ids, ok := master.ModePresets[mode]; ok {
		out := make([]models.Symptom, 0, len(ids))
		for _, id := range ids {
			if sym := rec.Symptom(id); sym != nil {
				out = append(out, *sym)
			}
		}
		c.JSON(http.StatusOK, gin.H{"symptoms": out})
		return
	}
	c.JSON(http.StatusOK, gin.H{"symptoms": rec.Symptoms})
}

func (h *Handler) BodyLocations(c *gin.Context) {
	rec := h.Master.Current()
	c.JSON(http.StatusOK, gin.H{"body_locations": rec.BodyLocations})
}

func (h *Handler) AccidentTags(c *gin.Context) {
	rec := h.Master.Current()
	c.JSON(http.StatusOK, gin.H{"accident_tags": rec.AccidentTags})
}

// SiteLocations lists the registered site locations, optionally filtered
// by a name substring.
func (h *Handler) SiteLocations(c *gin.Context) {
	rec := h.Master.Current()
	query := strings.ToLower(strings.TrimSpace(c.Query("q")))

	if query == "" {
		c.JSON(http.StatusOK, gin.H{"site_locations": rec.SiteLocations})
		return
	}
	out := make([]models.SiteLocation, 0, len(rec.SiteLocations))
	for _, l := range rec.SiteLocations {
		if strings.Contains(strings.ToLower(l.Name), query) {
			out = append(out, l)
		}
	}
	c.JSON(http.StatusOK, gin.H{"site_locations": out})
}
