package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"liyu1981.xyz/energy-meter-service/pkg/db"
	"liyu1981.xyz/energy-meter-service/pkg/meter"
)

type RestfulServer struct {
	Server *gin.Engine
	Meter  *meter.Meter
	Status *db.StatusTracker
	// DatabaseConfigured is whether a connection string was supplied at
	// startup; the status route reports it as the "database" flag.
	DatabaseConfigured bool
}

// corsPolicy is fixed: any origin, the full method set, the three request
// headers, and no credentials.
func corsPolicy() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"}
	cfg.AllowHeaders = []string{"Content-Type", "Authorization", "X-Requested-With"}
	cfg.AllowCredentials = false
	return cfg
}

func (rs *RestfulServer) Setup() {
	rs.Server.Use(cors.New(corsPolicy()))

	rs.Server.GET("/", rs.GetStatus)
	rs.Server.POST("/", rs.PostReading)
	rs.Server.GET("/readings", rs.GetReadings)
}
