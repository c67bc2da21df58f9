package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// notifications godoc
// @Summary My notifications
// @Description Notification history of the caller, newest first
// @Tags members
// @Produce json
// @Param X-Member-ID header string true "Member ID"
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} NotificationsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /members/me/notifications [get]
// @Security ApiKeyAuth
func (h *Handler) notifications(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"handler": "member", "method": "notifications"})
	member := currentMember(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))

	result, err := h.profile.Notifications(c.Request.Context(), member.ID, page, size)
	if err != nil {
		writeError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, NotificationsToResponse(result))
}

// setInterestAreas godoc
// @Summary Replace interest areas
// @Description Replace the districts a beekeeper is notified about. From 1 to 3 distinct districts
// @Tags members
// @Accept json
// @Param X-Member-ID header string true "Member ID"
// @Param request body InterestAreasRequest true "Districts"
// @Success 204 "Interest areas replaced"
// @Failure 400 {object} map[string]string "Invalid request or district code"
// @Failure 403 {object} map[string]string "Role is not allowed"
// @Router /members/me/interest-areas [put]
// @Security ApiKeyAuth
func (h *Handler) setInterestAreas(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"handler": "member", "method": "setInterestAreas"})
	member := currentMember(c)

	var req InterestAreasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	codes := make([]string, len(req.Areas))
	for i, a := range req.Areas {
		codes[i] = a.DistrictCode
	}
	if err := h.profile.SetInterestAreas(c.Request.Context(), member.ID, codes); err != nil {
		writeError(c, log, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// interestAreas godoc
// @Summary My interest areas
// @Description Districts the beekeeper is notified about, grouped by city
// @Tags members
// @Produce json
// @Param X-Member-ID header string true "Member ID"
// @Success 200 {array} InterestAreaGroupResponse
// @Failure 403 {object} map[string]string "Role is not allowed"
// @Router /members/me/interest-areas [get]
// @Security ApiKeyAuth
func (h *Handler) interestAreas(c *gin.Context) {
	log := h.logger.WithFields(logrus.Fields{"handler": "member", "method": "interestAreas"})
	member := currentMember(c)

	groups, err := h.profile.InterestAreas(c.Request.Context(), member.ID)
	if err != nil {
		writeError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, InterestAreasToResponse(groups))
}
