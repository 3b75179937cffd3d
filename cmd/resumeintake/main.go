package main

import (
	"errors"
	"log"
	"runtime"
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
	"github.com/projectlaunchpad/intake/internal/config"
	"github.com/projectlaunchpad/intake/internal/database"
	"github.com/projectlaunchpad/intake/internal/domain/fiber/handler"
	"github.com/projectlaunchpad/intake/internal/middleware"
	"github.com/projectlaunchpad/intake/internal/model"
	"github.com/projectlaunchpad/intake/internal/repository"
	"github.com/projectlaunchpad/intake/internal/service"
	"github.com/projectlaunchpad/intake/internal/usecase"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		// Resume uploads are capped at 5MB in the handler; leave headroom
		// for the rest of the multipart body.
		BodyLimit: 10 * 1024 * 1024,
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

	db := database.Connect(config.LoadDBConfig(), appConfig,
		&model.Resume{},
		&model.ParsedResume{},
		&model.Freelancer{},
		&model.Skill{},
		&model.Project{},
		&model.Experience{},
	)

	resumeRepo := repository.NewResumeRepository(db)
	freelancerRepo := repository.NewFreelancerRepository(db)
	extractor := service.NewExtractService()
	groq := service.NewGroqService(config.LoadGroqConfig())

	resumeUsecase := usecase.NewResumeUsecase(resumeRepo, freelancerRepo, extractor, groq)
	profileUsecase := usecase.NewProfileUsecase(freelancerRepo)

	handler.NewResumeHandler(resumeUsecase).RegisterRoutes(app)
	handler.NewProfileHandler(profileUsecase).RegisterRoutes(app)

	// Monitor goroutine count
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			log.Printf("Active goroutines: %d", runtime.NumGoroutine())
		}
	}()

	log.Println("Resume intake running on ", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}
