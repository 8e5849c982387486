package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/MINJiwonJiwon/capstone-snapncook/config"
	"github.com/MINJiwonJiwon/capstone-snapncook/routes"
	"github.com/MINJiwonJiwon/capstone-snapncook/tasks"
	"github.com/MINJiwonJiwon/capstone-snapncook/utils"

	"github.com/rs/zerolog"
)

func main() {
	config.LoadEnv()
	db := config.InitDB()
	utils.InitS3()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	scheduler := tasks.NewScheduler(db, logger)
	if err := scheduler.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer scheduler.Stop()

	r := routes.SetupRouter(db, logger)

	go func() {
		if err := r.Run(":8080"); err != nil {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down")
}
