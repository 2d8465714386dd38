package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Srilaxmigavvalapally/AI-Personal-Health-Manager/config"
	"github.com/Srilaxmigavvalapally/AI-Personal-Health-Manager/services"
	"github.com/Srilaxmigavvalapally/AI-Personal-Health-Manager/utils"
)

// reminderd is the continuous reminder process. It must open the same store
// as the API server; the default sqlite path in config guarantees that when
// both run from the repo root.
func main() {
	log.Println("Starting Reminder Service...")

	cfg := config.Load()
	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	mailer := utils.NewMailerFromConfig(cfg)
	reminders := services.NewReminderService(db, mailer, nil)
	sched := services.NewScheduler(services.DefaultReminderInterval, reminders.Run)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sched.Start(ctx)
	log.Println("Reminder service stopped.")
}
