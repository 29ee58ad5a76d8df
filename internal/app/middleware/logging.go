package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestLogger помечает каждый запрос уникальным log_id и логирует результат
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		logID := uuid.New().String()
		c.Set("logID", logID)

		c.Next()

		entry := logrus.WithFields(logrus.Fields{
			"log_id": logID,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
		})

		switch c.Writer.Status() {
		case http.StatusUnauthorized, http.StatusPaymentRequired, http.StatusForbidden, http.StatusNotFound:
			entry.Warnf("Request to %s failed. Status code: %d", c.Request.URL.Path, c.Writer.Status())
		default:
			entry.Infof("Request to %s succeeded. Status code: %d", c.Request.URL.Path, c.Writer.Status())
		}
	}
}

// Recovery переводит паники в общий ответ {"success": false}
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logrus.Errorf("Request to %s failed. Exception: %v", c.Request.URL.Path, rec)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false})
			}
		}()
		c.Next()
	}
}
