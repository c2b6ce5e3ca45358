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

type ParkingHandler struct {
	parking commands.ParkingCommands
	status  queries.StatusQueries
}

func NewParkingHandler(parking commands.ParkingCommands, status queries.StatusQueries) *ParkingHandler {
	return &ParkingHandler{
		parking: parking,
		status:  status,
	}
}

// @Summary Admit a vehicle
// @Description Allocate a spot and open a parking session
// @Tags parking
// @Accept json
// @Produce json
// @Param request body reqdto.EntryRequest true "Entry request"
// @Success 201 {object} resdto.EntryResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /parking/entries [post]
func (h *ParkingHandler) Entry(c *gin.Context) {
	var req reqdto.EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	result, err := h.parking.Park(req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid vehicle data")
		case errs.Is(err, commands.ErrInvalidSubscription):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid or expired subscription")
		case errs.Is(err, commands.ErrDuplicatePlate):
			httperr.AbortWithError(c, http.StatusConflict, err, "Vehicle is already parked")
		case errs.Is(err, commands.ErrLotFull):
			httperr.AbortWithError(c, http.StatusConflict, err, "No available spot for this vehicle")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromParkResult(result))
}

// @Summary Release a vehicle
// @Description End the active session, compute the fee and free the spot
// @Tags parking
// @Accept json
// @Produce json
// @Param request body reqdto.ExitRequest true "Exit request"
// @Success 200 {object} resdto.ExitResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /parking/exits [post]
func (h *ParkingHandler) Exit(c *gin.Context) {
	var req reqdto.ExitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	result, err := h.parking.Exit(req)
	if err != nil {
		if errs.Is(err, commands.ErrVehicleNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "No parked vehicle with this plate")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromExitResult(result))
}

// @Summary Facility status
// @Description Current spot occupancy figures
// @Tags parking
// @Produce json
// @Success 200 {object} resdto.StatusResponse
// @Router /parking/status [get]
func (h *ParkingHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromStatusView(h.status.Status()))
}

// @Summary Active sessions
// @Description List all currently parked vehicles with their running fee
// @Tags parking
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SessionResponse
// @Router /parking/sessions [get]
func (h *ParkingHandler) Sessions(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromSessionViews(h.status.CurrentSessions()))
}

// @Summary Session history
// @Description List ended sessions with their recorded payments
// @Tags parking
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SessionResponse
// @Router /parking/sessions/history [get]
func (h *ParkingHandler) SessionHistory(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromSessionViews(h.status.SessionHistory()))
}

// @Summary Reset the facility
// @Description Vacate every spot and drop all active sessions
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Router /admin/reset [post]
func (h *ParkingHandler) Reset(c *gin.Context) {
	h.parking.Reset()
	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}
