package main

import (
	"familyhub/core/logger"
	"familyhub/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
