package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHealth godoc
// @Summary Show the status of the server.
// @Description get the status of the server.
// @Tags root
// @Produce plain
// @Success 200 {string} string "success"
// @Router /health [get]
func getHealth(c *gin.Context) {
	c.String(http.StatusOK, "success")
}
