package handlers

import (
	"portfolio-api/internal/content"
	"portfolio-api/internal/utils"

	"github.com/gin-gonic/gin"
)

// PortfolioHandler serves the static portfolio content
type PortfolioHandler struct{}

func NewPortfolioHandler() *PortfolioHandler {
	return &PortfolioHandler{}
}

func (h *PortfolioHandler) ListProjects(c *gin.Context) {
	utils.HandleSuccess(c, content.Projects())
}

func (h *PortfolioHandler) ListSkills(c *gin.Context) {
	utils.HandleSuccess(c, content.Skills())
}

func (h *PortfolioHandler) ListExperience(c *gin.Context) {
	utils.HandleSuccess(c, content.Experiences())
}
