package main

import (
	"flag"
	"log"
	"runtime"

	"duckhunt/internal/config"
	"duckhunt/internal/game"
	"duckhunt/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// GL and glfw calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	apply := config.BindFlags(flag.CommandLine)
	flag.Parse()
	apply()

	if err := glfw.Init(); err != nil {
		log.Fatalf("glfw: %v", err)
	}
	defer glfw.Terminate()

	window, err := game.SetupWindow("duckhunt")
	if err != nil {
		panic(err)
	}

	app, err := game.NewApp(window, input.NewInputManager())
	if err != nil {
		panic(err)
	}
	app.Run()
}
