package main

import (
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/go-gl/glfw/v3.3/glfw"

	"still-life/internal/app"
	"still-life/internal/config"
)

func init() {
	// GLFW and GL calls must all happen on the main thread.
	runtime.LockOSThread()
}

func main() {
	settings, err := config.Load("config.toml")
	if err != nil {
		log.Fatal("loading config", "err", err)
	}

	if err := glfw.Init(); err != nil {
		log.Fatal("initializing glfw", "err", err)
	}
	defer glfw.Terminate()

	a, err := app.New(settings)
	if err != nil {
		log.Fatal("scene setup", "err", err)
	}
	defer a.Dispose()

	a.Run()
}
