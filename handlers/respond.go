package handlers

import (
	"atlas-backend/utils"

	"github.com/gin-gonic/gin"
)

// respond writes the envelope with its own status code as the HTTP status.
func respond(c *gin.Context, res utils.Response) {
	c.JSON(res.StatusCode, res)
}
