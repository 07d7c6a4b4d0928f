package api

import (
	"net/http"

	reqdto "aerotrav/internal/handler/dto/request"
	"aerotrav/internal/handler/httperr"
	"aerotrav/internal/handler/middleware"
	"aerotrav/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errInvalidID = errs.New("invalid id")

// requireUserID aborts with 401 when the auth middleware did not run or set no principal.
func requireUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok || userID == uuid.Nil {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing principal"), "Authentication required", nil)
		return uuid.Nil, false
	}
	return userID, true
}

func bindPage(c *gin.Context) (reqdto.PageQuery, bool) {
	var q reqdto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid pagination parameters", nil)
		return q, false
	}
	return q, true
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Wrap(errInvalidID, err.Error()), "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
