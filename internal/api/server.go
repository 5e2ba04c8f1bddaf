package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/florae/verdant/internal/service"
)

type Server struct {
	mx                  *chi.Mux
	userService         service.UserServiceI
	habitsService       service.HabitsServiceI
	completionsService  service.CompletionsServiceI
	gamificationService service.GamificationServiceI
	jwtService          JWTServiceI
}

type ServicesList struct {
	UserService         service.UserServiceI
	HabitsService       service.HabitsServiceI
	CompletionsService  service.CompletionsServiceI
	GamificationService service.GamificationServiceI
	JwtService          JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:                  chi.NewMux(),
		userService:         servicesOptions.UserService,
		habitsService:       servicesOptions.HabitsService,
		completionsService:  servicesOptions.CompletionsService,
		gamificationService: servicesOptions.GamificationService,
		jwtService:          servicesOptions.JwtService,
	}
}

func (s *Server) Run(address string) error {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)

	s.mx.Route("/auth", func(r chi.Router) {
		r.Post("/register", s.Register)
		r.Post("/login", s.Login)
	})

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(s.AuthMiddleware)
		r.Route("/habits", func(r chi.Router) {
			r.Post("/", s.CreateHabit)
			r.Get("/", s.GetHabits)
			r.Patch("/positions", s.UpdatePositions)
			r.Put("/{id}", s.UpdateHabit)
			r.Delete("/{id}", s.DeleteHabit)
			r.Post("/{id}/completions", s.ToggleCompletion)
			r.Get("/{id}/stats", s.GetHabitStats)
		})
		r.Get("/completions", s.GetCompletions)
		r.Get("/gamification", s.GetGamification)
		r.Route("/achievements", func(r chi.Router) {
			r.Get("/", s.GetAchievements)
			r.Post("/{id}/claim", s.ClaimAchievement)
		})
	})

	return http.ListenAndServe(address, s.mx)
}
