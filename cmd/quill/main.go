// cmd/quill/main.go
package main

import (
	"fmt"
	stlog "log"
	"os"
	"path/filepath"

	"github.com/quillmd/quill/internal/app"
	"github.com/quillmd/quill/internal/config"
	"github.com/quillmd/quill/internal/logger"
)

const version = "0.1.0"

func main() {
	flags := &config.Flags{}
	args := flags.ParseFlags()

	if flags.Version != nil && *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, version)
		os.Exit(0)
	}

	configPath := ""
	if flags.ConfigFilePath != nil {
		configPath = *flags.ConfigFilePath
	}
	// A broken config file is not fatal; defaults still apply.
	cfg, err := config.LoadConfig(configPath, flags)
	if err != nil {
		stlog.Printf("Warning: config load: %v", err)
	}

	// "-" routes logs to stderr; the default is a file so log output
	// does not fight the TUI for the terminal.
	logOutput := os.Stderr
	if cfg.Logger.LogFilePath != "-" {
		logPath := cfg.Logger.LogFilePath
		if logPath == "" {
			if cacheDir, err := os.UserCacheDir(); err == nil {
				logPath = filepath.Join(cacheDir, config.ConfigDirName, config.DefaultLogFileName)
				_ = os.MkdirAll(filepath.Dir(logPath), 0755)
			} else {
				logPath = config.DefaultLogFileName
			}
		}
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			stlog.Fatalf("Failed to open log file '%s': %v", logPath, err)
		}
		defer logFile.Close()
		logOutput = logFile
	}
	logger.Init(logger.ParseLevel(cfg.Logger.LogLevel), logOutput)

	filePath := ""
	if len(args) > 0 {
		filePath = args[0]
	}

	logger.Infof("Starting %s...", config.AppName)
	if filePath != "" {
		logger.Debugf("File path specified: %s", filePath)
	} else {
		logger.Debugf("No file specified, starting empty.")
	}

	quillApp, err := app.NewApp(cfg, filePath)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		stlog.Fatalf("Error: %v", err)
	}

	if err := quillApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}
	logger.Infof("%s finished.", config.AppName)
}
