package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/teamhours/officehours-backend-go/internal/config"
	appHTTP "github.com/teamhours/officehours-backend-go/internal/handler/http"
	"github.com/teamhours/officehours-backend-go/internal/pkg/cron"
	"github.com/teamhours/officehours-backend-go/internal/pkg/database"
	"github.com/teamhours/officehours-backend-go/internal/pkg/jwt"
	"github.com/teamhours/officehours-backend-go/internal/pkg/oauth"
	"github.com/teamhours/officehours-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/teamhours/officehours-backend-go/internal/service/auth"
	serviceProfile "github.com/teamhours/officehours-backend-go/internal/service/profile"
	serviceShift "github.com/teamhours/officehours-backend-go/internal/service/shift"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	shiftRepo := postgresql.NewShiftRepository(db)
	userRepo := postgresql.NewUserRepository(db)
	profileRepo := postgresql.NewProfileRepository(db)
	tokenRepo := postgresql.NewTokenRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	shiftService := serviceShift.NewShiftService(db, shiftRepo)
	profileService := serviceProfile.NewProfileService(db, profileRepo)
	authService := serviceAuth.NewAuthService(db, userRepo, tokenRepo, JWTService, GoogleService, cfg.Auth.PassphraseHash)

	authHandler := appHTTP.NewAuthHandler(JWTService, authService, cfg.App.FrontendURL)
	shiftHandler := appHTTP.NewShiftHandler(shiftService)
	profileHandler := appHTTP.NewProfileHandler(profileService)

	scheduler := cron.NewScheduler()
	if err := scheduler.AddJob("queue-watch", "0 8 * * *", cron.QueueWatchJob(shiftService)); err != nil {
		log.Fatal("Failed to register queue watch job:", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		shiftHandler,
		profileHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
