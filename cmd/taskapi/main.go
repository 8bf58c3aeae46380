package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appauth "github.com/Sloan357/task-management-api/internal/application/auth"
	appproject "github.com/Sloan357/task-management-api/internal/application/project"
	apptask "github.com/Sloan357/task-management-api/internal/application/task"
	appuser "github.com/Sloan357/task-management-api/internal/application/user"
	"github.com/Sloan357/task-management-api/internal/config"
	infraauth "github.com/Sloan357/task-management-api/internal/infrastructure/auth"
	httprouter "github.com/Sloan357/task-management-api/internal/infrastructure/http"
	"github.com/Sloan357/task-management-api/internal/infrastructure/http/handlers"
	"github.com/Sloan357/task-management-api/internal/infrastructure/http/middleware"
	"github.com/Sloan357/task-management-api/internal/infrastructure/persistence/postgres"
	"github.com/Sloan357/task-management-api/internal/infrastructure/security"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	if err := postgres.Migrate(cfg.Database.URL); err != nil {
		log.Fatal().Err(err).Msg("run migrations")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to database")
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("ping database")
	}

	userRepo := postgres.NewUserRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	hasher := security.NewArgon2Hasher(security.Argon2Params{
		Memory:      cfg.Argon2.Memory,
		Iterations:  cfg.Argon2.Iterations,
		Parallelism: cfg.Argon2.Parallelism,
		SaltLength:  16,
		KeyLength:   32,
	})
	issuer := infraauth.NewTokenIssuer([]byte(cfg.JWT.Secret), cfg.JWT.Issuer)

	registerUC := appauth.NewRegisterUser(userRepo, hasher)
	loginUC := appauth.NewLogin(userRepo, hasher, issuer, cfg.JWT.AccessExpiry)
	createTaskUC := apptask.NewCreateTask(taskRepo, projectRepo, txRunner)
	listTasksUC := apptask.NewListTasks(taskRepo)
	getTaskUC := apptask.NewGetTask(taskRepo)
	updateTaskUC := apptask.NewUpdateTask(taskRepo, projectRepo, txRunner)
	completeTaskUC := apptask.NewCompleteTask(taskRepo, txRunner)
	deleteTaskUC := apptask.NewDeleteTask(taskRepo, txRunner)
	createProjectUC := appproject.NewCreateProject(projectRepo)
	listProjectsUC := appproject.NewListProjects(projectRepo)
	getProjectUC := appproject.NewGetProject(projectRepo)
	projectTasksUC := appproject.NewProjectTasks(projectRepo, taskRepo)
	updateProjectUC := appproject.NewUpdateProject(projectRepo, txRunner)
	deleteProjectUC := appproject.NewDeleteProject(projectRepo, txRunner)
	deleteAccountUC := appuser.NewDeleteAccount(userRepo, projectRepo, taskRepo, txRunner)

	ipLimit, err := middleware.NewIPRateLimiter(cfg.RateLimit.RatePerIP)
	if err != nil {
		log.Fatal().Err(err).Msg("create IP rate limiter")
	}
	secureMiddleware := middleware.NewSecure(middleware.SecureOptions(cfg.Debug))
	requireAuth := middleware.NewAuthValidator(issuer).Handler

	router := httprouter.NewRouter(httprouter.RouterConfig{
		AuthHandler:     handlers.NewAuthHandler(registerUC, loginUC, log),
		TasksHandler:    handlers.NewTasksHandler(createTaskUC, listTasksUC, getTaskUC, updateTaskUC, completeTaskUC, deleteTaskUC, log),
		ProjectsHandler: handlers.NewProjectsHandler(createProjectUC, listProjectsUC, getProjectUC, projectTasksUC, updateProjectUC, deleteProjectUC, log),
		UsersHandler:    handlers.NewUsersHandler(userRepo, deleteAccountUC),
		HealthHandler:   handlers.NewHealthHandler(pool),
		RequireAuth:     requireAuth,
		Log:             log,
		Secure:          secureMiddleware,
		CORS:            middleware.CORS(cfg.CORS.AllowedOrigins),
		IPRateLimit:     ipLimit,
		Metrics:         true,
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
