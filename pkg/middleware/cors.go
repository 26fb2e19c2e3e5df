package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/igorzgk/excel-delivery-sub000/pkg/configs"
)

// CORSMiddleware CORS中间件.
func CORSMiddleware(cfg configs.ServerConfig) gin.HandlerFunc {
	config := cors.DefaultConfig()
	config.AllowWebSockets = true
	config.AllowFiles = true
	config.AllowHeaders = append(config.AllowHeaders, "Authorization", "X-API-Key")

	if cfg.Debug {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = []string{"*"}
	}

	return cors.New(config)
}
