package api

import (
	"net/http"

	reqdto "aerotrav/internal/handler/dto/request"
	resdto "aerotrav/internal/handler/dto/response"
	"aerotrav/internal/handler/httperr"
	"aerotrav/internal/pkg/errs"
	"aerotrav/internal/usecase/commands"
	"aerotrav/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cmds commands.CartCommands
	q    queries.CartQueries
}

func NewCartHandler(cmds commands.CartCommands, q queries.CartQueries) *CartHandler {
	return &CartHandler{cmds: cmds, q: q}
}

// @Summary Get cart
// @Tags cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Failure 401 {object} httperr.Response
// @Router /cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	view, err := h.q.GetCart(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to get cart", nil)
		return
	}
	httperr.OK(c, http.StatusOK, resdto.FromCartView(view))
}

// @Summary Add cart item
// @Description Adds a service to the cart, merging quantity with an existing line
// @Tags cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.AddCartItemRequest true "Cart item"
// @Success 201 {object} resdto.AddCartItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req reqdto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.AddItem(c.Request.Context(), userID, commands.AddCartItemInput{
		ServiceID:   req.ServiceID,
		ServiceType: req.ServiceType,
		Quantity:    req.QuantityOrDefault(),
		Details:     req.Details,
	})
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cart item", nil)
		case errs.Is(err, commands.ErrServiceUnavailable):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found or unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to add item to cart", nil)
		}
		return
	}
	httperr.OK(c, http.StatusCreated, resdto.FromAddCartItemResult(result))
}

// @Summary Update cart item quantity
// @Tags cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Cart item ID"
// @Param request body reqdto.UpdateCartItemRequest true "Quantity"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /cart/items/{id} [patch]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cmds.UpdateItemQuantity(c.Request.Context(), userID, itemID, req.Quantity); err != nil {
		h.abortItemError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Remove cart item
// @Tags cart
// @Security BearerAuth
// @Param id path string true "Cart item ID"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.cmds.RemoveItem(c.Request.Context(), userID, itemID); err != nil {
		h.abortItemError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Clear cart
// @Tags cart
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.cmds.Clear(c.Request.Context(), userID); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to clear cart", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) abortItemError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrCartItemNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Cart item not found", nil)
	case errs.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid quantity", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to update cart", nil)
	}
}
