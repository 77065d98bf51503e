// Command server starts the chessboard HTTP/WebSocket API described in
// SPEC_FULL.md §6, backed by the config package's environment-driven
// settings.
package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"go.eastwood.dev/chessboard/api"
	"go.eastwood.dev/chessboard/config"
)

func main() {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration:", err)
	}

	server := api.NewServer(cfg)

	r := gin.Default()
	server.SetupRoutes(r)

	addr := cfg.GetServerAddress()
	log.Printf("starting chessboard API server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal("server failed:", err)
	}
}
