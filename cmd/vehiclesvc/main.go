package main

import (
	"fmt"
	"log"

	"github.com/common-nighthawk/go-figure"
	"github.com/vishwaa-12/Vehicleservicebooking/internal/app"
	"github.com/vishwaa-12/Vehicleservicebooking/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	displayAppName(cfg.AppName)
	if err := app.Run(cfg); err != nil {
		log.Fatalf("app: %v", err)
	}
}

func displayAppName(name string) {
	figure.NewFigure(name, "cybermedium", true).Print()
	fmt.Println()
}
