package main

import (
	"github.com/dgarza/pluma/config"
	"github.com/dgarza/pluma/models"
	"github.com/dgarza/pluma/routes"
	"github.com/dgarza/pluma/utils"
)

func main() {
	cfg := config.Load()

	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(&models.Author{}, &models.Post{})

	r := routes.SetupRouter(db)

	utils.Sugar.Infof("starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
