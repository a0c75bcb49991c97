// Package main runs the instantchat API: account registration, email
// verification, verification-gated login and the travel-plan generation
// proxy behind a single HTTP listener.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/ilyakaznacheev/cleanenv"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"

	"github.com/instantchat/instantchat-api/pkg/account"
	"github.com/instantchat/instantchat-api/pkg/assistant"
	assistantapi "github.com/instantchat/instantchat-api/pkg/assistant/api"
	"github.com/instantchat/instantchat-api/pkg/config"
	"github.com/instantchat/instantchat-api/pkg/login"
	loginapi "github.com/instantchat/instantchat-api/pkg/login/api"
	"github.com/instantchat/instantchat-api/pkg/notification"
	"github.com/instantchat/instantchat-api/pkg/signup"
	signupapi "github.com/instantchat/instantchat-api/pkg/signup/api"
	"github.com/instantchat/instantchat-api/pkg/verification"
	verificationapi "github.com/instantchat/instantchat-api/pkg/verification/api"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	var cfg config.Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		slog.Error("Failed to read config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	users, codes, err := newRepositories(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize storage", "backend", cfg.Storage.Backend, "error", err)
		os.Exit(1)
	}

	notifier := newNotifier(cfg.Email)

	verificationService := verification.NewService(users, codes, notifier,
		verification.WithCodeExpiry(cfg.Verification.CodeExpiry))
	signupService := signup.NewService(users, verificationService)
	loginService := login.NewService(users)
	assistantService := assistant.NewService(
		openai.NewClient(cfg.OpenAI.APIKey),
		assistant.WithModel(cfg.OpenAI.Model),
	)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	signupHandler := signupapi.NewHandler(signupService)
	verificationHandler := verificationapi.NewHandler(verificationService)
	loginHandler := loginapi.NewHandler(loginService)
	assistantHandler := assistantapi.NewHandler(assistantService)

	r.Post("/signup", signupHandler.Register)
	r.Post("/verify", verificationHandler.Verify)
	r.Post("/resend_verification", verificationHandler.Resend)
	r.Post("/login", loginHandler.Login)
	r.Post("/ask", assistantHandler.Ask)

	addr := ":" + cfg.Server.Port
	slog.Info("Starting server", "addr", addr, "storage", cfg.Storage.Backend)
	if err := http.ListenAndServe(addr, r); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

func newRepositories(ctx context.Context, cfg config.Config) (account.UserRepository, account.VerificationCodeRepository, error) {
	switch cfg.Storage.Backend {
	case "memory":
		return account.NewInMemoryUserRepository(), account.NewInMemoryCodeRepository(), nil
	case "file":
		users, err := account.NewFileUserRepository(cfg.Storage.DataDir)
		if err != nil {
			return nil, nil, err
		}
		codes, err := account.NewFileCodeRepository(cfg.Storage.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return users, codes, nil
	case "firestore":
		client, err := firestore.NewClient(ctx, cfg.Firestore.ProjectID,
			option.WithCredentialsFile(cfg.Firestore.CredentialsFile))
		if err != nil {
			return nil, nil, err
		}
		return account.NewFirestoreUserRepository(client), account.NewFirestoreCodeRepository(client), nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
}

func newNotifier(cfg config.EmailConfig) notification.Notifier {
	if !cfg.IsConfigured() {
		slog.Warn("SMTP credentials not configured, logging verification emails instead of sending")
		return &notification.MockNotifier{}
	}

	notifier, err := notification.NewEmailNotifier(cfg.ToSMTPConfig())
	if err != nil {
		slog.Error("Failed to create email notifier, falling back to mock", "error", err)
		return &notification.MockNotifier{}
	}
	return notifier
}
