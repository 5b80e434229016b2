package handlers

import (
	"net/http"

	"staffhub/internal/status"
	"staffhub/internal/transport/dto"

	"github.com/gin-gonic/gin"
)

// GetStatusTaxonomy godoc
//	@Summary		Get the status taxonomy
//	@Description	Returns the closed status enumeration and its active/inactive partition, for client-side validation.
//	@Tags			applications
//	@Produce		json
//	@Success		200	{object}	dto.StatusTaxonomyResponse	"Status taxonomy"
//	@Router			/applications/statuses [get]
func GetStatusTaxonomy(c *gin.Context) {
	c.JSON(http.StatusOK, dto.StatusTaxonomyResponse{
		Statuses: status.Values(),
		Active:   status.ActivePredicate(),
		Inactive: statusesToStrings(status.Inactive()),
	})
}

func statusesToStrings(statuses []status.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
