package i

import "github.com/gin-gonic/gin"

// Controller registers a feature's routes.
type Controller interface {
	Register(*gin.RouterGroup)
}
