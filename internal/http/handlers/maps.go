package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lifeline-app/backend/internal/facilitymap"
)

// MapZones lists the zones visible in a preset view, plus the matching
// side-list entries for an optional search query.
func (h *Handler) MapZones(c *gin.Context) {
	view := c.DefaultQuery("view", facilitymap.ViewAll)
	query := c.Query("q")
	c.JSON(http.StatusOK, gin.H{
		"view":    view,
		"viewbox": facilitymap.ComputeViewBox(view),
		"zones":   facilitymap.VisibleZones(view),
		"list":    facilitymap.ListZones(view, query),
	})
}

func parseCoord(c *gin.Context, key string) (float64, bool) {
	v, err := strconv.ParseFloat(c.Query(key), 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", key+" must be a number", nil)
		return 0, false
	}
	return v, true
}

// MapHit resolves a tap in base coordinates to a zone. Taps outside every
// polygon fall back to the nearest centroid so the gesture always selects
// something. When the selected zone sits outside the current preset view
// the response carries the view to switch to.
func (h *Handler) MapHit(c *gin.Context) {
	x, ok := parseCoord(c, "x")
	if !ok {
		return
	}
	y, ok := parseCoord(c, "y")
	if !ok {
		return
	}
	view := c.DefaultQuery("view", facilitymap.ViewAll)

	zone := facilitymap.Resolve(x, y)
	exact := facilitymap.ZoneAt(x, y) != nil
	c.JSON(http.StatusOK, gin.H{
		"zone":  zone,
		"exact": exact,
		"view":  facilitymap.ViewForSelection(view, zone),
	})
}
