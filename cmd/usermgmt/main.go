package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	cloudfirestore "cloud.google.com/go/firestore"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"

	"github.com/poojan019/user-management/internal/application/invitation"
	"github.com/poojan019/user-management/internal/application/ports"
	"github.com/poojan019/user-management/internal/application/users"
	"github.com/poojan019/user-management/internal/config"
	httprouter "github.com/poojan019/user-management/internal/infrastructure/http"
	"github.com/poojan019/user-management/internal/infrastructure/http/handlers"
	"github.com/poojan019/user-management/internal/infrastructure/http/middleware"
	"github.com/poojan019/user-management/internal/infrastructure/mail"
	firestorerepo "github.com/poojan019/user-management/internal/infrastructure/persistence/firestore"
	"github.com/poojan019/user-management/internal/infrastructure/persistence/memory"
	"github.com/poojan019/user-management/internal/infrastructure/security"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	ctx := context.Background()
	var userRepo ports.UserRepository
	if cfg.Firestore.ProjectID != "" {
		var opts []option.ClientOption
		if cfg.Firestore.CredentialsFile != "" {
			opts = append(opts, option.WithCredentialsFile(cfg.Firestore.CredentialsFile))
		}
		client, err := cloudfirestore.NewClient(ctx, cfg.Firestore.ProjectID, opts...)
		if err != nil {
			log.Fatal().Err(err).Msg("connect to firestore")
		}
		defer client.Close()
		userRepo = firestorerepo.NewUserRepository(client)
	} else {
		log.Warn().Msg("FIRESTORE_PROJECT_ID not set; using in-memory store")
		userRepo = memory.NewUserRepository()
	}

	hasher := security.NewBcryptHasher(cfg.Bcrypt.Cost)
	mailer := mail.NewSMTPSender(mail.Config{
		Host:     cfg.Mail.Server,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		From:     cfg.Mail.From,
		StartTLS: cfg.Mail.StartTLS,
		SSL:      cfg.Mail.SSL,
	})

	createUC := users.NewCreateUser(userRepo, hasher)
	listUC := users.NewListUsers(userRepo)
	updateUC := users.NewUpdateUser(userRepo, hasher)
	deleteUC := users.NewDeleteUser(userRepo)
	sendInvitationUC := invitation.NewSendInvitation(mailer, cfg.Invitation.Recipients, cfg.Invitation.AttachmentPath, cfg.Invitation.DocsURL)

	usersHandler := handlers.NewUsersHandler(createUC, listUC, updateUC, deleteUC, log)
	invitationHandler := handlers.NewInvitationHandler(sendInvitationUC, log)
	docsHandler := handlers.NewDocsHandler()
	healthHandler := handlers.NewHealthHandler(userRepo)
	secureMiddleware := middleware.NewSecure(middleware.SecureOptions(cfg.Firestore.ProjectID == ""))

	router := httprouter.NewRouter(httprouter.RouterConfig{
		Users:      usersHandler,
		Invitation: invitationHandler,
		Docs:       docsHandler,
		Health:     healthHandler,
		Log:        log,
		Secure:     secureMiddleware,
		Metrics:    true,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	log.Info().Msg("server stopped")
}
