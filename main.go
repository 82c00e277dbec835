package main

import (
	"context"
	"flag"
	"log"
	"time"

	"ticket-booking/cmd"
	"ticket-booking/internal/data/entity"
	"ticket-booking/internal/data/memory"
	"ticket-booking/internal/data/repository"
	"ticket-booking/internal/openapi"
	"ticket-booking/internal/wire"
	"ticket-booking/pkg/database"
	"ticket-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	exportPath := flag.String("export-openapi", "", "write the OpenAPI document to the given path and exit")
	flag.Parse()

	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *exportPath != "" {
		doc := openapi.NewDocument(config.CORS.BackendURL)
		if err := doc.Export(*exportPath); err != nil {
			log.Fatalf("Failed to export OpenAPI document: %v", err)
		}
		log.Printf("OpenAPI document written to %s", *exportPath)
		return
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Pick the storage backend. Without DATABASE_URL everything lives
	// in process memory and is lost on restart.
	var repos *repository.Repository
	if config.Database.URL == "" {
		logger.Warn("DATABASE_URL is not set, using in-memory storage")
		repos = memory.NewRepository(logger)
	} else {
		db, err := database.InitDB(config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := database.Migrate(ctx, db); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}

		logger.Info("Database connected successfully")
		repos = repository.NewRepository(db, logger)
	}

	if err := seed(context.Background(), repos, config, logger); err != nil {
		logger.Fatal("Failed to seed initial data", zap.Error(err))
	}

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}

// seed creates the baseline payment methods and the first admin
// account. It is idempotent and safe to run on every start.
func seed(ctx context.Context, repos *repository.Repository, config *utils.Config, logger *zap.Logger) error {
	methodCount, err := repos.PaymentMethod.Count(ctx)
	if err != nil {
		return err
	}
	if methodCount == 0 {
		methods := []entity.PaymentMethod{
			{Code: "credit_card", Name: "Credit Card", IsActive: true},
			{Code: "bank_transfer", Name: "Bank Transfer", IsActive: true},
			{Code: "e_wallet", Name: "E-Wallet", IsActive: true},
		}
		for _, m := range methods {
			method := m
			method.ID = uuid.New()
			method.CreatedAt = time.Now()
			if err := repos.PaymentMethod.Create(ctx, &method); err != nil {
				return err
			}
		}
		logger.Info("Seeded payment methods", zap.Int("count", len(methods)))
	}

	userCount, err := repos.User.Count(ctx)
	if err != nil {
		return err
	}
	if userCount == 0 && config.Admin.Email != "" && config.Admin.Password != "" {
		hashed, err := utils.HashPassword(config.Admin.Password)
		if err != nil {
			return err
		}

		now := time.Now()
		admin := &entity.User{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			Email:         config.Admin.Email,
			Name:          config.Admin.Name,
			PasswordHash:  hashed,
			Role:          entity.RoleAdmin,
			EmailVerified: true,
			IsActive:      true,
		}
		if err := repos.User.Create(ctx, admin); err != nil {
			return err
		}
		logger.Info("Seeded admin user", zap.String("email", admin.Email))
	}

	return nil
}
