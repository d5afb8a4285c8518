package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/opphub/opphub/internal/config"
	"github.com/opphub/opphub/internal/domain/fiber/handler"
	"github.com/opphub/opphub/internal/middleware"
	"github.com/opphub/opphub/internal/model"
	"github.com/opphub/opphub/internal/repository"
	"github.com/opphub/opphub/internal/scheduler"
	"github.com/opphub/opphub/internal/service"
	"github.com/opphub/opphub/internal/usecase"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

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
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.Env == "production"
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	db := ConnectDB()

	opportunityRepo := repository.NewOpportunityRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	bookmarkRepo := repository.NewBookmarkRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	userRepo := repository.NewUserRepository(db)

	mail := service.NewResendService()

	opportunityUC := usecase.NewOpportunityUsecase(opportunityRepo, applicationRepo, bookmarkRepo)
	activityUC := usecase.NewActivityUsecase(opportunityRepo, applicationRepo, bookmarkRepo, notificationRepo, userRepo, mail)
	reminderUC := usecase.NewReminderUsecase(notificationRepo, opportunityRepo, userRepo, mail)
	userUC := usecase.NewUserUsecase(userRepo)

	// External trigger lives outside the authenticated API surface, guarded
	// by a shared token instead of a user identity.
	functions := app.Group("/functions", middleware.ReminderToken())
	handler.NewReminderHandler(reminderUC).RegisterRoutes(functions)

	api := app.Group("/api", middleware.Auth())
	handler.NewOpportunityHandler(opportunityUC).RegisterRoutes(api)
	handler.NewActivityHandler(activityUC).RegisterRoutes(api)
	handler.NewUserHandler(userUC).RegisterRoutes(api)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sched := scheduler.NewScheduler(reminderUC, appConfig.ReminderInterval)
	go func() {
		if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("scheduler exited: %v", err)
		}
	}()

	go func() {
		<-ctx.Done()
		_ = app.Shutdown()
	}()

	log.Println("Server running on ", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	db, err := gorm.Open(postgres.Open(dbConfig.DSN()), &gorm.Config{})
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
		&model.Opportunity{},
		&model.Application{},
		&model.Bookmark{},
		&model.Notification{},
		&model.User{},
	)
	if err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}
