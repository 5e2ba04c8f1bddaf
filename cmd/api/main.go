// @title Verdant API
// @description API for the habit garden and gamification backend "Verdant"
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"

	"github.com/florae/verdant/internal/api"
	"github.com/florae/verdant/internal/repository"
	"github.com/florae/verdant/internal/service"
	"github.com/florae/verdant/pkg/cleanup"
	"github.com/florae/verdant/pkg/config"
	jwtservice "github.com/florae/verdant/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	defer cleanup.CleanUp()
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	habitsRepo := repository.NewHabitsRepo(&dbCfg)
	completionsRepo := repository.NewCompletionsRepo(&dbCfg)
	gamificationService := service.NewGamificationService(
		habitsRepo,
		completionsRepo,
		repository.NewProfilesRepo(&dbCfg),
		repository.NewAchievementsRepo(&dbCfg),
	)
	serv := api.New(&api.ServicesList{
		UserService:         service.NewUserService(repository.NewUsersRepo(&dbCfg)),
		HabitsService:       service.NewHabitsService(habitsRepo),
		CompletionsService:  service.NewCompletionsService(habitsRepo, completionsRepo, gamificationService),
		GamificationService: gamificationService,
		JwtService:          jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	err := serv.Run(cfg.GetStringOrDefault("API_ADDRESS", ":8080"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
