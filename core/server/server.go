package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"familyhub/core/cache"
	"familyhub/core/config"
	"familyhub/core/database"
	"familyhub/core/logger"
	"familyhub/core/middleware"
	"familyhub/core/queue"
	"familyhub/core/storage"
	"familyhub/core/validator"
	"familyhub/modules/auth"
	"familyhub/modules/event"
	"familyhub/modules/group"
	"familyhub/modules/invitation"
	"familyhub/modules/message"
	"familyhub/modules/note"
	"familyhub/modules/notification"
	"familyhub/modules/task"
	"familyhub/modules/user"
	"familyhub/modules/whiteboard"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/robfig/cron/v3"
)

// Run wires every module and serves until interrupted.
func Run() error {
	cfg := config.Load()

	db, err := database.InitDB(database.DatabaseConfig{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
	})
	if err != nil {
		return err
	}

	c, err := cache.NewCache(cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	q := queue.NewQueue(cfg)
	defer q.Close()

	s3 := storage.NewS3Storage(cfg)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Validator = validator.NewRequestValidator()

	mw := middleware.NewMiddleware(c)
	api := e.Group("/api/v1")

	notifier := notification.Init(api, db, mw)
	user.Init(api, db, mw, s3)
	auth.Init(api, db, mw, c, cfg)
	groups := group.Init(api, db, mw)
	invitations := invitation.Init(api, db, mw, notifier)
	events := event.Init(api, db, mw, groups, notifier, q)
	task.Init(api, db, mw, groups)
	note.Init(api, db, mw, groups)
	message.Init(api, db, mw, groups, c)
	whiteboard.Init(api, db, mw, groups)

	cr := cron.New()
	if _, err := cr.AddFunc("@hourly", func() {
		invitations.ExpireStale(context.Background())
	}); err != nil {
		return err
	}
	cr.Start()
	defer cr.Stop()

	go func() {
		if err := queue.RunWorker(cfg, events.HandleReminderTask); err != nil {
			logger.Error("Server:ReminderWorker:Error:", err)
		}
	}()

	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil {
			logger.Info("Server:Stopped", "reason", err.Error())
		}
	}()
	logger.Info("Server:Started", "port", cfg.ServerPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Server:ShuttingDown")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(ctx)
}
