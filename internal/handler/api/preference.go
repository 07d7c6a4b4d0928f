package api

import (
	"net/http"

	reqdto "aerotrav/internal/handler/dto/request"
	"aerotrav/internal/handler/httperr"
	"aerotrav/internal/pkg/errs"
	"aerotrav/internal/usecase/commands"
	"aerotrav/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
)

type PreferenceHandler struct {
	cmds commands.PreferenceCommands
	q    queries.PreferenceQueries
}

func NewPreferenceHandler(cmds commands.PreferenceCommands, q queries.PreferenceQueries) *PreferenceHandler {
	return &PreferenceHandler{cmds: cmds, q: q}
}

// @Summary Get travel preferences
// @Tags preferences
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.PreferencesView
// @Failure 401 {object} httperr.Response
// @Router /preferences [get]
func (h *PreferenceHandler) Get(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	view, err := h.q.GetPreferences(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to get preferences", nil)
		return
	}
	httperr.OK(c, http.StatusOK, view)
}

// @Summary Replace travel preferences
// @Description Overwrites every stored preference of the user
// @Tags preferences
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.SavePreferencesRequest true "Preferences"
// @Success 200 {object} queries.PreferencesView
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /preferences [put]
func (h *PreferenceHandler) Save(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req reqdto.SavePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	var in commands.SavePreferencesInput
	if err := copier.Copy(&in, &req); err != nil {
		httperr.Internal(c, err)
		return
	}

	saved, err := h.cmds.SavePreferences(c.Request.Context(), userID, in)
	if err != nil {
		if errs.Is(err, errs.ErrDomainValidation) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid preferences", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to save preferences", nil)
		return
	}
	httperr.OK(c, http.StatusOK, queries.NewPreferencesView(saved))
}
