package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/hive_reporting_system/internal/models"
	"github.com/shenikar/hive_reporting_system/internal/service"
	"github.com/sirupsen/logrus"
)

// verifyImage godoc
// @Summary Verify a nest photo
// @Description Classify the photo and create an unfinalized hive report
// @Tags hive-reports
// @Accept json
// @Produce json
// @Param X-Member-ID header string true "Member ID"
// @Param request body VerifyImageRequest true "Photo URL"
// @Success 201 {object} VerifyImageResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Role is not allowed"
// @Failure 502 {object} map[string]string "Image classifier failed"
// @Router /hive-reports/image [post]
// @Security ApiKeyAuth
func (h *Handler) verifyImage(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"handler": "hive_report", "method": "verifyImage"})
	member := currentMember(c)

	var req VerifyImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := retryTransient(log, func() (*service.VerificationResult, error) {
		return h.lifecycle.VerifyImage(c.Request.Context(), member.ID, req.ImageURL)
	})
	if err != nil {
		writeError(c, log, err)
		return
	}

	c.JSON(http.StatusCreated, VerificationToResponse(result))
}

// finalizeReport godoc
// @Summary Finalize a hive report
// @Description Attach species, location and district to a verified report and open it for beekeepers
// @Tags hive-reports
// @Accept json
// @Produce json
// @Param X-Member-ID header string true "Member ID"
// @Param request body FinalizeReportRequest true "Report data"
// @Success 200 {object} FinalizeReportResponse
// @Failure 400 {object} map[string]string "Invalid request or district code"
// @Failure 403 {object} map[string]string "Member is not the reporter"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 409 {object} map[string]string "Report already finalized"
// @Router /hive-reports [post]
// @Security ApiKeyAuth
func (h *Handler) finalizeReport(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"handler": "hive_report", "method": "finalizeReport"})
	member := currentMember(c)

	var req FinalizeReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in := service.FinalizeInput{
		ReportID:     uuid.MustParse(req.HiveReportID),
		ReporterID:   member.ID,
		Species:      models.Species(req.Species),
		Latitude:     *req.Latitude,
		Longitude:    *req.Longitude,
		RoadAddress:  req.RoadAddress,
		DistrictCode: req.DistrictCode,
	}
	result, err := retryTransient(log, func() (*service.FinalizeResult, error) {
		return h.lifecycle.Finalize(c.Request.Context(), in)
	})
	if err != nil {
		writeError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, FinalizeToResponse(result))
}

// reserve godoc
// @Summary Reserve a honeybee nest
// @Description Claim a REPORTED honeybee nest for removal
// @Tags hive-reports
// @Produce json
// @Param X-Member-ID header string true "Member ID"
// @Param id path string true "Hive report ID"
// @Success 200 {object} ReserveResponse
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 403 {object} map[string]string "Role is not allowed"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 409 {object} map[string]string "Report is not available"
// @Router /hive-reports/{id}/reserve [post]
// @Security ApiKeyAuth
func (h *Handler) reserve(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"handler": "hive_report", "method": "reserve"})
	member := currentMember(c)

	reportID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := retryTransient(log, func() (*service.ReserveResult, error) {
		return h.lifecycle.Reserve(c.Request.Context(), reportID, member.ID)
	})
	if err != nil {
		writeError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ReserveResponse{
		HiveReportID: result.ReportID,
		HiveActionID: result.ActionID,
		Status:       string(result.Status),
	})
}

// cancelReservation godoc
// @Summary Cancel a reservation
// @Description Withdraw the caller's active reservation and reopen the report
// @Tags hive-reports
// @Param X-Member-ID header string true "Member ID"
// @Param id path string true "Hive report ID"
// @Param actionId path string true "RESERVE action ID"
// @Success 204 "Reservation cancelled"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 403 {object} map[string]string "Not the caller's reservation"
// @Failure 404 {object} map[string]string "Report or action not found"
// @Failure 409 {object} map[string]string "Report is not reserved"
// @Router /hive-reports/{id}/reserve-action/{actionId} [delete]
// @Security ApiKeyAuth
func (h *Handler) cancelReservation(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"handler": "hive_report", "method": "cancelReservation"})
	member := currentMember(c)

	reportID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	actionID, ok := parseIDParam(c, "actionId")
	if !ok {
		return
	}

	_, err := retryTransient(log, func() (struct{}, error) {
		return struct{}{}, h.lifecycle.CancelReservation(c.Request.Context(), reportID, actionID, member.ID)
	})
	if err != nil {
		writeError(c, log, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// proof godoc
// @Summary Prove nest removal
// @Description Submit a geotagged removal photo. The reporter is rewarded on success
// @Tags hive-reports
// @Accept json
// @Produce json
// @Param X-Member-ID header string true "Member ID"
// @Param id path string true "Hive report ID"
// @Param request body ProofRequest true "Proof data"
// @Success 200 {object} ProofResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 403 {object} map[string]string "Permission denied"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 409 {object} map[string]string "Invalid transition"
// @Failure 422 {object} GeofenceErrorResponse "Proof location outside the allowed radius"
// @Router /hive-reports/{id}/proof [post]
// @Security ApiKeyAuth
func (h *Handler) proof(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"handler": "hive_report", "method": "proof"})
	member := currentMember(c)

	reportID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req ProofRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in := service.ProofInput{
		ReportID:   reportID,
		ActorID:    member.ID,
		ActionType: models.ActionType(req.ActionType),
		Latitude:   *req.Latitude,
		Longitude:  *req.Longitude,
		ImageURL:   req.ImageURL,
	}
	result, err := retryTransient(log, func() (*service.ProofResult, error) {
		return h.lifecycle.Proof(c.Request.Context(), in)
	})
	if err != nil {
		writeError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ProofToResponse(result))
}

// listPins godoc
// @Summary Map pins
// @Description Open hive reports inside an optional bounding box
// @Tags hive-reports
// @Produce json
// @Param X-Member-ID header string true "Member ID"
// @Param min_lat query number false "Minimum latitude"
// @Param max_lat query number false "Maximum latitude"
// @Param min_lng query number false "Minimum longitude"
// @Param max_lng query number false "Maximum longitude"
// @Success 200 {array} PinResponse
// @Failure 400 {object} map[string]string "Invalid bounds"
// @Router /hive-reports [get]
// @Security ApiKeyAuth
func (h *Handler) listPins(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"handler": "hive_report", "method": "listPins"})

	var box models.BoundingBox
	for _, bound := range []struct {
		name string
		dst  **float64
	}{
		{"min_lat", &box.MinLat},
		{"max_lat", &box.MaxLat},
		{"min_lng", &box.MinLng},
		{"max_lng", &box.MaxLng},
	} {
		raw, ok := c.GetQuery(bound.name)
		if !ok || raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + bound.name})
			return
		}
		*bound.dst = &v
	}

	pins, err := h.query.Pins(c.Request.Context(), box)
	if err != nil {
		writeError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, PinsToResponses(pins))
}

// reportDetail godoc
// @Summary Hive report detail
// @Tags hive-reports
// @Produce json
// @Param X-Member-ID header string true "Member ID"
// @Param id path string true "Hive report ID"
// @Success 200 {object} ReportDetailResponse
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 404 {object} map[string]string "Report not found"
// @Router /hive-reports/{id} [get]
// @Security ApiKeyAuth
func (h *Handler) reportDetail(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"handler": "hive_report", "method": "reportDetail"})
	member := currentMember(c)

	reportID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	detail, err := h.query.Detail(c.Request.Context(), reportID, member.ID)
	if err != nil {
		writeError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, DetailToResponse(detail))
}

// myReports godoc
// @Summary My hive reports
// @Description Reports the caller took part in, newest first
// @Tags hive-reports
// @Produce json
// @Param X-Member-ID header string true "Member ID"
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(100)
// @Param status query string false "Status filter" Enums(REPORTED, RESERVED, REMOVED)
// @Success 200 {object} MyReportsResponse
// @Failure 400 {object} map[string]string "Invalid status"
// @Router /hive-reports/me [get]
// @Security ApiKeyAuth
func (h *Handler) myReports(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"handler": "hive_report", "method": "myReports"})
	member := currentMember(c)

	// некорректные page/size нормализует сервис
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "100"))
	status := models.ReportStatus(c.Query("status"))

	result, err := h.query.MyReports(c.Request.Context(), member.ID, page, size, status)
	if err != nil {
		writeError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, MyReportsToResponse(result))
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}
