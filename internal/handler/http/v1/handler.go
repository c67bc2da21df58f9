package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/hive_reporting_system/internal/config"
	"github.com/shenikar/hive_reporting_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	lifecycle service.LifecycleService
	query     service.QueryService
	members   service.MemberDirectory
	profile   service.MemberService
	logger    *logrus.Logger
	validate  *validator.Validate
	cfg       *config.Config
}

func NewHandler(
	lifecycle service.LifecycleService,
	query service.QueryService,
	members service.MemberDirectory,
	profile service.MemberService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		lifecycle: lifecycle,
		query:     query,
		members:   members,
		profile:   profile,
		logger:    logger,
		validate:  validator.New(),
		cfg:       cfg,
	}
}

// healthCheck godoc
// @Summary Health check
// @Description Check the health status of the service
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string "Service is healthy"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
