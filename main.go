/*
Prism opens a single window, brings up a WebGPU surface and clears it
every frame with a color that follows the cursor.
*/
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/prism-engine/prism/engine"
	"github.com/prism-engine/prism/engine/config"
	"github.com/prism-engine/prism/engine/core"
	"github.com/prism-engine/prism/testbed"
)

const configPath = "prism.toml"

func main() {
	cfg, err := config.Load(configPath)
	if err != nil {
		core.LogFatal("invalid configuration: %v", err)
	}

	game := testbed.NewDemoGame(cfg, configPath)

	eng, err := engine.New(game.Game)
	if err != nil {
		core.LogFatal("engine construction failed: %v", err)
	}

	if err := eng.Initialize(); err != nil {
		core.LogFatal("engine initialization failed: %v", err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	go func() {
		<-sigCh
		eng.Stop()
	}()

	runErr := eng.Run()
	if err := eng.Shutdown(); err != nil {
		core.LogError("shutdown failed: %v", err)
	}
	if runErr != nil {
		core.LogError("engine stopped with error: %v", runErr)
		os.Exit(1)
	}
}
