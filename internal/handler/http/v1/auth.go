package v1

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/hive_reporting_system/internal/config"
	"github.com/shenikar/hive_reporting_system/internal/models"
	"github.com/shenikar/hive_reporting_system/internal/service"
	"github.com/sirupsen/logrus"
)

const (
	memberIDHeader = "X-Member-ID"
	memberKey      = "member"
)

// APIKeyAuthMiddleware - middleware для аутентификации по API-ключу
func APIKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			// Проверяем также заголовок Authorization: Bearer
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				apiKey = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if apiKey == "" {
			log.Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
			return
		}

		if !slices.Contains(cfg.APIKeys, apiKey) {
			log.Warn("Invalid API key provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		c.Next()
	}
}

// MemberIdentityMiddleware загружает участника, выданного внешним слоем идентификации в X-Member-ID
func MemberIdentityMiddleware(members service.MemberDirectory, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(memberIDHeader)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "member identity required"})
			return
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid member identity"})
			return
		}

		member, err := members.GetMember(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown member"})
				return
			}
			log.WithError(err).WithField("member_id", id).Error("Failed to load member")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		c.Set(memberKey, member)
		c.Next()
	}
}

// RequireRole пропускает только участников с одной из ролей
func RequireRole(roles ...models.MemberRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		member := currentMember(c)
		if member == nil || !slices.Contains(roles, member.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "role is not allowed"})
			return
		}
		c.Next()
	}
}

func currentMember(c *gin.Context) *models.Member {
	v, ok := c.Get(memberKey)
	if !ok {
		return nil
	}
	member, _ := v.(*models.Member)
	return member
}
