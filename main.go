package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	config "github.com/Jigen0509/cheerain/config"
	routes "github.com/Jigen0509/cheerain/routes"
)

func main() {
	cfg := config.Load()

	r := gin.Default()
	r.Use(cors.Default())

	routes.SetupRoutes(r, cfg)

	log.Printf("cheerain stats service listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
