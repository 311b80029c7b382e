package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tutorbase/utils"
)

// requestLogger returns the process logger annotated with the request's
// method and route so handler warnings can be traced to an endpoint.
func requestLogger(c *gin.Context) *zap.Logger {
	return utils.GetLogger().With(
		zap.String("method", c.Request.Method),
		zap.String("route", c.FullPath()),
	)
}
