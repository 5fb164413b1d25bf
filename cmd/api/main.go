package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/fransit/francheese-website1/internal/app"
)

func main() {
	log := logrus.New()

	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, using system environment variables")
	}

	cfg := app.LoadConfig()
	srv := app.NewServer(cfg, log)

	log.Infof("listening on :%s", cfg.Port)
	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
