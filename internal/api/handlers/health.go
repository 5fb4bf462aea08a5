package handlers

import (
	"net/http"

	"portfolio-api/internal/api/dto/common"
	"portfolio-api/internal/version"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{
		"status":  "ok",
		"version": version.Version,
	}))
}
