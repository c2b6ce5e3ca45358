package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "parking-facility/internal/handler/dto/request"
	resdto "parking-facility/internal/handler/dto/response"
	"parking-facility/internal/handler/httperr"
	"parking-facility/internal/pkg/errs"
	"parking-facility/internal/usecase/commands"
	"parking-facility/internal/usecase/queries"
)

type SubscriptionHandler struct {
	subscriptions commands.SubscriptionCommands
	queries       queries.SubscriptionQueries
}

func NewSubscriptionHandler(subscriptions commands.SubscriptionCommands, q queries.SubscriptionQueries) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptions: subscriptions,
		queries:       q,
	}
}

// @Summary Create subscription
// @Description Register a subscription for a plate; a prior active one is deactivated
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param request body reqdto.CreateSubscriptionRequest true "Subscription request"
// @Success 201 {object} resdto.SubscriptionResponse
// @Failure 400 {object} httperr.Response
// @Router /subscriptions [post]
func (h *SubscriptionHandler) Create(c *gin.Context) {
	var req reqdto.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	result, err := h.subscriptions.Create(req)
	if err != nil {
		if errs.Is(err, commands.ErrDomainValidation) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid subscription data")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSubscriptionResult(result))
}

// @Summary Check validity
// @Description Whether the subscription may be used at the gate right now
// @Tags subscriptions
// @Produce json
// @Param id path string true "Subscription ID"
// @Success 200 {object} resdto.ValidityResponse
// @Failure 404 {object} httperr.Response
// @Router /subscriptions/{id}/validity [get]
func (h *SubscriptionHandler) Validity(c *gin.Context) {
	id := c.Param("id")

	valid, err := h.subscriptions.Validate(id)
	if err != nil {
		if errs.Is(err, commands.ErrSubscriptionNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Subscription not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.ValidityResponse{ID: id, Valid: valid})
}

// @Summary Get subscription
// @Tags subscriptions
// @Produce json
// @Param id path string true "Subscription ID"
// @Success 200 {object} resdto.SubscriptionResponse
// @Failure 404 {object} httperr.Response
// @Router /subscriptions/{id} [get]
func (h *SubscriptionHandler) Get(c *gin.Context) {
	view, err := h.queries.Get(c.Param("id"))
	if err != nil {
		if errs.Is(err, queries.ErrSubscriptionNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Subscription not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromSubscriptionView(view))
}

// @Summary Subscription history for a plate
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Param plate query string true "License plate"
// @Success 200 {array} resdto.SubscriptionResponse
// @Router /subscriptions/history [get]
func (h *SubscriptionHandler) History(c *gin.Context) {
	plate := c.Query("plate")
	if plate == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("missing plate"), "Query parameter plate is required")
		return
	}

	c.JSON(http.StatusOK, resdto.FromSubscriptionViews(h.queries.HistoryByPlate(plate)))
}

// @Summary Annual subscription quote
// @Description Yearly price for unlimited parking of the given vehicle class
// @Tags subscriptions
// @Produce json
// @Param class query string true "Vehicle class" Enums(car, motorcycle)
// @Success 200 {object} resdto.AnnualQuoteResponse
// @Failure 400 {object} httperr.Response
// @Router /subscriptions/quote [get]
func (h *SubscriptionHandler) AnnualQuote(c *gin.Context) {
	view, err := h.queries.AnnualQuote(c.Query("class"))
	if err != nil {
		if errs.Is(err, queries.ErrUnknownVehicleClass) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown vehicle class")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromAnnualQuoteView(view))
}
