package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"marauder-server/internal/models"
)

// AuthMiddleware проверяет Bearer-токен и кладет user_id в контекст.
// Токены выпускает внешний identity-сервис, здесь только верификация подписи.
func AuthMiddleware(jwtSecret string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Code: models.ErrCodeUnauthorized, Message: "authorization header is required",
			})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Code: models.ErrCodeUnauthorized, Message: models.ErrTokenMalformed.Error(),
			})
			return
		}

		claims := &models.Claims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			logger.Debug("Token verification failed", zap.Error(err))
			msg := models.ErrTokenInvalid.Error()
			if err != nil && strings.Contains(err.Error(), "expired") {
				msg = models.ErrTokenExpired.Error()
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Code: models.ErrCodeUnauthorized, Message: msg,
			})
			return
		}
		if claims.UserID == uuid.Nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Code: models.ErrCodeUnauthorized, Message: models.ErrTokenInvalid.Error(),
			})
			return
		}

		c.Set(models.ContextKeyUserID, claims.UserID)
		c.Next()
	}
}

// InternalAuthMiddleware закрывает служебные эндпоинты статическим токеном
// для межсервисных вызовов.
func InternalAuthMiddleware(internalToken string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Internal-Service-Token")
		if token == "" || token != internalToken {
			logger.Warn("Rejected internal request with bad service token", zap.String("path", c.FullPath()))
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse{
				Code: models.ErrCodeForbidden, Message: models.ErrForbidden.Error(),
			})
			return
		}
		c.Next()
	}
}

// userIDFromContext достает user_id, положенный AuthMiddleware.
func userIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(models.ContextKeyUserID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
