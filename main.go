package main

import (
	"fmt"
	"os"

	auction "auction-house/internal/auctionService"
	"auction-house/internal/config"
	"auction-house/internal/notify"
	"auction-house/internal/server"
	"auction-house/internal/store"
	"auction-house/utils"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	snapshots, err := store.Open(cfg.SnapshotPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open snapshot store: %v\n", err)
		os.Exit(1)
	}
	defer snapshots.Close()

	auctionSvc := auction.NewAuctionService(snapshots, notify.NewLogNotifier())

	router := server.SetupRouter(auctionSvc)

	utils.Info("Starting auction server", map[string]any{
		"addr":     cfg.Addr,
		"snapshot": cfg.SnapshotPath,
	})
	if err := router.Run(cfg.Addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}
