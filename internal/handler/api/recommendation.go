package api

import (
	"net/http"

	"aerotrav/internal/handler/httperr"
	"aerotrav/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RecommendationHandler struct {
	q queries.RecommendationQueries
}

func NewRecommendationHandler(q queries.RecommendationQueries) *RecommendationHandler {
	return &RecommendationHandler{q: q}
}

// @Summary Recommended packages
// @Description Active packages ranked by similarity to the user's preferences
// @Tags recommendations
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Success 200 {object} queries.RecommendationsView
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /recommendations [get]
func (h *RecommendationHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	page, ok := bindPage(c)
	if !ok {
		return
	}

	view, err := h.q.GetRecommendations(c.Request.Context(), userID, page.Page, page.Limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to get recommendations", nil)
		return
	}
	httperr.OK(c, http.StatusOK, view)
}
