package api

import (
	"net/http"
	"strconv"

	reqdto "court-booking/internal/handler/dto/request"
	resdto "court-booking/internal/handler/dto/response"
	"court-booking/internal/handler/httperr"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CourtHandler struct {
	cmds commands.CourtCommands
	q    queries.CourtQueries
}

func NewCourtHandler(cmds commands.CourtCommands, q queries.CourtQueries) *CourtHandler {
	return &CourtHandler{cmds: cmds, q: q}
}

// @Summary Create court
// @Description Register a bookable court
// @Tags courts
// @Accept json
// @Produce json
// @Param request body reqdto.CourtRequest true "Court"
// @Success 201 {object} resdto.CourtResponse
// @Failure 400 {object} httperr.Response
// @Router /canchas/ [post]
func (h *CourtHandler) Create(c *gin.Context) {
	var req reqdto.CourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	h.respondCourt(c, http.StatusCreated, view)
}

// @Summary List courts
// @Tags courts
// @Produce json
// @Success 200 {array} resdto.CourtResponse
// @Router /canchas/ [get]
func (h *CourtHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	res, err := resdto.FromCourtViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get court
// @Tags courts
// @Produce json
// @Param id path int true "Court ID"
// @Success 200 {object} resdto.CourtResponse
// @Failure 404 {object} httperr.Response
// @Router /canchas/{id} [get]
func (h *CourtHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	h.respondCourt(c, http.StatusOK, view)
}

// @Summary Update court
// @Description Replace name and cover flag of a court
// @Tags courts
// @Accept json
// @Produce json
// @Param id path int true "Court ID"
// @Param request body reqdto.CourtRequest true "Court"
// @Success 200 {object} resdto.CourtResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /canchas/{id} [put]
func (h *CourtHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.CourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	h.respondCourt(c, http.StatusOK, view)
}

// @Summary Delete court
// @Description Delete a court without reservations
// @Tags courts
// @Produce json
// @Param id path int true "Court ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /canchas/{id} [delete]
func (h *CourtHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "court deleted"})
}

// @Summary List court reservations
// @Tags courts
// @Produce json
// @Param id path int true "Court ID"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Router /canchas/{id}/reservas [get]
func (h *CourtHandler) ListReservations(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	views, err := h.q.ListReservations(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

func (h *CourtHandler) respondCourt(c *gin.Context, status int, view *queries.CourtView) {
	res, err := resdto.FromCourtView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	if status == http.StatusCreated {
		c.Header("Location", "/canchas/"+strconv.FormatInt(res.ID, 10))
	}
	c.JSON(status, res)
}
