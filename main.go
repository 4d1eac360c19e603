package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/darioristic/crm-monorepo-sub013/cmd/enrich"
	"github.com/darioristic/crm-monorepo-sub013/cmd/extract"
	"github.com/darioristic/crm-monorepo-sub013/cmd/root"
	"github.com/darioristic/crm-monorepo-sub013/internal/config"
)

func init() {
	// Load environment variables first so the log level below sees them.
	config.LoadEnv()

	// Set the global logrus level before any logging happens.
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}
	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	root.Cmd.AddCommand(extract.Cmd)
	root.Cmd.AddCommand(enrich.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
