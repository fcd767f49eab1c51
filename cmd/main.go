package main

import (
	"fmt"
	"os"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"petspace/internal"
	"petspace/notify"
	"petspace/services"
)

// Exit codes to provide meaningful status to the operating system.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code := exitOK
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		code = exitRuntime
		if _, ok := err.(configError); ok {
			code = exitConfig
		}
	}
	os.Exit(code)
}

type configError struct{ err error }

func (e configError) Error() string { return e.err.Error() }
func (e configError) Unwrap() error { return e.err }

// run initializes all components and drives the interactive menu. Keeping
// the logic out of main ensures defers execute and errors are reported in
// one place.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return configError{fmt.Errorf("config error: %w", err)}
	}
	if err := config.Validate(); err != nil {
		return configError{err}
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Notices & service
	notifier := notify.New(os.Stdout, log, config.Verbosity(), config.Colours)
	service := services.NewChatService(notifier, config.DailyMessageLimit, config.StartingDailyCount)

	// 3. Default rooms, always available in the demo
	service.CreateRoom("CtrlCat")
	service.CreateRoom("Dogorithm")

	// 4. Interactive menu until the user exits
	m := newMenu(service, notifier, os.Stdin, os.Stdout)
	m.Run()
	return nil
}
