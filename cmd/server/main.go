package main

import (
	"fmt"
	"log"

	"github.com/Alaswadi/cupperly-sub000/internal/config"
	"github.com/Alaswadi/cupperly-sub000/internal/email/noop"
	"github.com/Alaswadi/cupperly-sub000/internal/email/ses"
	"github.com/Alaswadi/cupperly-sub000/internal/grading"
	"github.com/Alaswadi/cupperly-sub000/internal/handler"
	"github.com/Alaswadi/cupperly-sub000/internal/port"
	"github.com/Alaswadi/cupperly-sub000/internal/repository/postgres"
	"github.com/Alaswadi/cupperly-sub000/internal/router"
	"github.com/Alaswadi/cupperly-sub000/internal/service"
	s3storage "github.com/Alaswadi/cupperly-sub000/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	tenantRepo := postgres.NewTenantRepo(db)
	sessionRepo := postgres.NewSessionRepo(db)
	sampleRepo := postgres.NewSampleRepo(db)
	gradingRepo := postgres.NewGradingRepo(db)
	scoreRepo := postgres.NewScoreRepo(db)
	attachmentRepo := postgres.NewAttachmentRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize email sender
	var emailSender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		emailSender = noop.NewNoopSender()
	}

	// Initialize services
	tenantSvc := service.NewTenantService(tenantRepo)
	sessionSvc := service.NewSessionService(sessionRepo)
	sampleSvc := service.NewSampleService(sampleRepo, sessionRepo)
	policy := grading.NewDefaultPolicy(grading.PolicyWeights{
		DefectDecay:                      cfg.Grading.DefectDecay,
		MoisturePenaltyPerPoint:          cfg.Grading.MoisturePenaltyPerPoint,
		WaterActivityPenaltyPerHundredth: cfg.Grading.WaterActivityPenaltyPerHundredth,
		MaxMeasurementPenalty:            cfg.Grading.MaxMeasurementPenalty,
	})
	gradingSvc := service.NewGradingService(gradingRepo, sampleRepo, emailSender, policy, &cfg.Grading)
	scoreSvc := service.NewScoreService(scoreRepo, sampleRepo)
	attachmentSvc := service.NewAttachmentService(attachmentRepo, sampleRepo, s3Client, &cfg.S3)
	reportSvc := service.NewReportService(sessionRepo, sampleRepo, gradingRepo, scoreRepo)

	// Initialize handlers
	tenantH := handler.NewTenantHandler(tenantSvc)
	sessionH := handler.NewSessionHandler(sessionSvc)
	sampleH := handler.NewSampleHandler(sampleSvc)
	gradingH := handler.NewGradingHandler(gradingSvc)
	scoreH := handler.NewScoreHandler(scoreSvc)
	attachmentH := handler.NewAttachmentHandler(attachmentSvc)
	reportH := handler.NewReportHandler(reportSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(
		tenantSvc,
		cfg.CORS.AllowedOrigins,
		tenantH,
		sessionH,
		sampleH,
		gradingH,
		scoreH,
		attachmentH,
		reportH,
		healthH,
	)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
