package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Home godoc
// @Summary Service info
// @Description Returns the service name and API base path.
// @Tags home
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "stackscout",
		"api":     "/api/v1",
	})
}
