package main

import (
	"log"

	corecmd "github.com/anassar/mudeer/core/cmd"
	"github.com/anassar/mudeer/internal/app"
	"github.com/anassar/mudeer/internal/config"
)

func main() {
	err := corecmd.Run(corecmd.Options{
		DefaultConfigPath: "config.yaml",
		LoadConfig: func(path string) (corecmd.ConfigCarrier, error) {
			return config.Load(path)
		},
		Bootstrap: app.Bootstrap,
	})
	if err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
