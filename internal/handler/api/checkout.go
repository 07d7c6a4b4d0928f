package api

import (
	"net/http"

	reqdto "aerotrav/internal/handler/dto/request"
	resdto "aerotrav/internal/handler/dto/response"
	"aerotrav/internal/handler/httperr"
	"aerotrav/internal/pkg/errs"
	"aerotrav/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	cmds commands.CheckoutCommands
}

func NewCheckoutHandler(cmds commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds}
}

// @Summary Checkout
// @Description Converts the whole cart into one pending booking and empties the cart
// @Tags checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutRequest false "Checkout options"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req reqdto.CheckoutRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
			return
		}
	}

	result, err := h.cmds.Checkout(c.Request.Context(), commands.CheckoutInput{
		UserID:          userID,
		BookingDate:     req.BookingDate,
		ReturnDate:      req.ReturnDate,
		SpecialRequests: req.SpecialRequests,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		abortCheckoutError(c, err)
		return
	}
	httperr.OK(c, http.StatusCreated, resdto.FromCheckoutResult(result))
}

func abortCheckoutError(c *gin.Context, err error) {
	var unavailable *commands.UnavailableItemError
	switch {
	case errs.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking date format. Use YYYY-MM-DD", nil)
	case errs.Is(err, commands.ErrCartEmpty):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Cart is empty", nil)
	case errs.As(err, &unavailable):
		httperr.AbortWithError(c, http.StatusBadRequest, err, unavailable.Error(), gin.H{
			"service_id":   unavailable.ServiceID,
			"service_type": unavailable.ServiceType,
		})
	case errs.Is(err, commands.ErrCheckoutInProgress):
		httperr.AbortWithError(c, http.StatusConflict, err, "Checkout already in progress", nil)
	case errs.Is(err, commands.ErrUnauthenticated):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Authentication required", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Checkout failed", nil)
	}
}
