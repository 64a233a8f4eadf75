// main.go - command line entry point for the PSX core

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"
)

const versionString = "0.1.0"

func boilerPlate() {
	fmt.Println("psxcore - a PlayStation/MIPS R3000A emulation core")
	printFeatures()
}

func usage() {
	fmt.Println("Usage: psxcore [-version] [-headless] [-debug] [-lua <script>] <bios-path>")
}

func main() {
	var (
		biosPath string
		headless bool
		debug    bool
		luaPath  string
	)

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-version":
			boilerPlate()
			return
		case "-headless":
			headless = true
		case "-debug":
			debug = true
		case "-lua":
			i++
			if i >= len(args) {
				usage()
				os.Exit(1)
			}
			luaPath = args[i]
		default:
			biosPath = args[i]
		}
	}

	if biosPath == "" {
		usage()
		os.Exit(1)
	}

	boilerPlate()

	bios, err := os.ReadFile(biosPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "psxcore: failed to read BIOS image: %v\n", err)
		os.Exit(1)
	}

	sys, err := NewSystem(bios)
	if err != nil {
		fmt.Fprintf(os.Stderr, "psxcore: %v\n", err)
		os.Exit(1)
	}

	sys.exp2.OnTTYLine(func(line string) {
		fmt.Println(line)
	})

	var player *OtoPlayer
	if !headless {
		player, err = NewOtoPlayer()
		if err != nil {
			fmt.Fprintf(os.Stderr, "psxcore: audio init failed, continuing headless: %v\n", err)
		} else {
			player.SetupPlayer(&sys.spu.out)
			player.Start()
			defer player.Close()
		}
	}

	if luaPath != "" {
		script, err := os.ReadFile(luaPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "psxcore: failed to read lua script: %v\n", err)
			os.Exit(1)
		}
		l := NewLuaDebugger(sys.Debug())
		defer l.Close()
		if err := l.Run(string(script)); err != nil {
			fmt.Fprintf(os.Stderr, "psxcore: lua script error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var console *DebugConsole
	if debug {
		console = NewDebugConsole(sys.Debug())
		if err := console.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "psxcore: failed to start debug console: %v\n", err)
			os.Exit(1)
		}
		defer console.Stop()
	}

	// The emulation loop and an interactive debug console both need to
	// observe Ctrl-C/SIGTERM and stop cleanly rather than racing os.Exit
	// against the console's raw terminal state; errgroup ties their exit
	// together.
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			default:
			}
			sys.RunFrame()
			if console != nil && console.Poll() {
				stop()
				return nil
			}
		}
	})

	if err := g.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "psxcore: %v\n", err)
		os.Exit(1)
	}
}
