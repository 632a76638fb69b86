package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/workhive/workhive-backend/internal/config"
	"github.com/workhive/workhive-backend/internal/domain/fiber/handler"
	"github.com/workhive/workhive-backend/internal/logger"
	"github.com/workhive/workhive-backend/internal/middleware"
	"github.com/workhive/workhive-backend/internal/model"
	"github.com/workhive/workhive-backend/internal/notify"
	"github.com/workhive/workhive-backend/internal/realtime"
	"github.com/workhive/workhive-backend/internal/repository"
	"github.com/workhive/workhive-backend/internal/resume"
	"github.com/workhive/workhive-backend/internal/scheduler"
	"github.com/workhive/workhive-backend/internal/service"
	"github.com/workhive/workhive-backend/internal/usecase"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()
	production := appConfig.Env == "production"

	zlog, err := logger.New(production, !production)
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			// Status code defaults to 500
			code := fiber.StatusInternalServerError

			// Retrieve the custom status code if it's a *fiber.Error
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !production,
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed, // 1
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return production
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	db := ConnectDB()

	rdb, err := realtime.NewClient(ctx, config.LoadRedisConfig().URL)
	if err != nil {
		zlog.Fatal("connecting to redis failed", zap.Error(err))
	}
	layer := realtime.NewLayer(rdb)

	// One-time identity provider bootstrap; must happen before the first
	// authenticated request.
	identity := service.InitIdentity()

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	employerRepo := repository.NewEmployerRepository(db)
	jobRepo := repository.NewJobRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)

	processor := resume.NewProcessor(zlog)
	fanout := notify.New(profileRepo, layer, zlog)

	profileUC := usecase.NewProfileUsecase(profileRepo, userRepo, skillRepo, processor, zlog)
	jobUC := usecase.NewJobUsecase(jobRepo, employerRepo, profileRepo, applicationRepo, fanout, zlog)

	api := app.Group("/api", middleware.Auth(identity, userRepo, zlog))
	handler.NewProfileHandler(profileUC).RegisterRoutes(api)
	handler.NewJobHandler(jobUC).RegisterRoutes(api)
	handler.NewWsHandler(layer, zlog).RegisterRoutes(app)

	sweeper := scheduler.NewExpirySweeper(jobRepo, zlog)
	if err := sweeper.Start(); err != nil {
		zlog.Fatal("starting expiry sweeper failed", zap.Error(err))
	}
	defer sweeper.Stop()

	// Monitor goroutine count
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			zlog.Debug("active goroutines", zap.Int("count", runtime.NumGoroutine()))
		}
	}()

	zlog.Info("server running", zap.String("port", appConfig.Port))
	if err := app.Listen(appConfig.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.SeekerProfile{},
		&model.EmployerProfile{},
		&model.SkillCategory{},
		&model.Skill{},
		&model.UserSkill{},
		&model.Job{},
		&model.JobSkill{},
		&model.JobApplication{},
	)
	if err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}
