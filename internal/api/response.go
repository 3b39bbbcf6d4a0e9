package api

import (
	"github.com/gin-gonic/gin"

	"github.com/culinacart/recipes-api/internal/types"
)

// Envelope helpers shared by all handlers so every endpoint returns the
// same {success, data|message} shape.

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, types.Response{Success: true, Data: data})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, types.Response{Success: true, Message: message})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, types.Response{Success: false, Message: message})
}
