package main

import (
	"fmt"
	"os"
	"time"

	"github.com/LiamF-2261667/fruckr-sub000/configs"
	"github.com/LiamF-2261667/fruckr-sub000/entity"
	"github.com/LiamF-2261667/fruckr-sub000/pkg/mailer"
	"github.com/LiamF-2261667/fruckr-sub000/routes"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := configs.LoadConfig()

	if cfg.Env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// join table (many2many Foodtruck<->User staff)
	if err := db.SetupJoinTable(&entity.Foodtruck{}, "Workers", &entity.FoodtruckWorker{}); err != nil {
		log.Fatal().Err(err).Msg("setup join table failed")
	}
	if err := db.SetupJoinTable(&entity.User{}, "StaffOf", &entity.FoodtruckWorker{}); err != nil {
		log.Fatal().Err(err).Msg("setup join table failed")
	}

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		log.Fatal().Err(err).Msg("seed admin failed")
	}

	// Mail: real SMTP when configured, otherwise a no-op sink.
	var mail mailer.Mailer = mailer.Noop{}
	if cfg.SMTPHost != "" {
		mail = mailer.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)
	}

	// HTTP
	r := gin.New()
	r.Use(gin.Recovery())

	hub := routes.RegisterRoutes(r, cfg, mail)
	go hub.Run()

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info().Str("addr", addr).Msg("server running")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
