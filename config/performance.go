package config

import (
	"time"

	"cleanplan-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)

		utils.InfoLogger.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": latency,
		}).Info("request completed")

		if latency > 200*time.Millisecond {
			utils.InfoLogger.WithFields(logrus.Fields{
				"method":  c.Request.Method,
				"path":    c.Request.URL.Path,
				"latency": latency,
			}).Warn("slow request")
		}
	}
}
