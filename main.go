package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/utils"

	"staffhub_backend/internals/configs"
	databases "staffhub_backend/internals/databases"
	chatHub "staffhub_backend/internals/features/chat/messages/service"
	interviewScheduler "staffhub_backend/internals/features/talent/interviews/scheduler"
	authScheduler "staffhub_backend/internals/features/users/auth/scheduler"
	"staffhub_backend/internals/middlewares"
	routes "staffhub_backend/internals/route"
	"staffhub_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	databases.ConnectDB()
	databases.TunePool()
	databases.WarmUpQueries()
	db := databases.DB

	seeds.RunAllSeeds(db)

	app := fiber.New(fiber.Config{
		AppName:     "StaffHub Backend",
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
		BodyLimit:   12 * 1024 * 1024,
	})

	// request-id + timing, paling depan supaya semua request tercatat
	app.Use(func(c *fiber.Ctx) error {
		reqID := c.Get("X-Request-ID")
		if reqID == "" {
			reqID = utils.UUID()
		}
		c.Locals("request_id", reqID)
		c.Set("X-Request-ID", reqID)

		start := time.Now()
		err := c.Next()
		log.Printf("[INFO] %s %s %d (%s) reqid=%s", c.Method(), c.Path(), c.Response().StatusCode(), time.Since(start), reqID)
		return err
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelBestSpeed}))
	app.Use(etag.New())

	middlewares.SetupMiddlewares(app)

	hub := chatHub.NewHub()
	go hub.Run()

	routes.SetupRoutes(app, db, hub)

	authScheduler.StartBlacklistCleanupScheduler(db)
	interviewScheduler.StartInterviewReminderScheduler(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("[INFO] Sinyal berhenti diterima, mematikan server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("[ERROR] Shutdown: %v", err)
		}
	}()

	log.Printf("🚀 StaffHub backend berjalan di port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("[ERROR] Server berhenti: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Println("[INFO] Server berhenti dengan rapi")
}
