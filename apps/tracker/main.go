package main

import (
	"context"
	"log"
	"os"

	"github.com/trezcool/gradetracker/core"
	"github.com/trezcool/gradetracker/core/student"
	"github.com/trezcool/gradetracker/services/logger"
	"github.com/trezcool/gradetracker/storage/database"
)

var logger *log.Logger

func main() {
	logger = log.New(os.Stderr, "TRACKER : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	ctx := context.Background()

	wd, err := os.Getwd()
	errAndDie(err)
	conf, err := core.NewConfig(wd)
	errAndDie(err)

	appLog := logsvc.New(logger, conf)

	// set up storage
	repo, closeDB, err := database.Open(ctx, conf)
	if err != nil {
		appLog.Fatal("opening storage", err)
	}

	cli := commandLine{
		roster: student.NewRoster(repo),
		log:    appLog,
		dbPath: conf.Database.Path,
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}
	code := 0
	if err := cli.run(ctx, os.Args); err != nil {
		if err != errHelp {
			appLog.Error("command failed", err)
		}
		code = 1
	}
	shutdown(appLog, closeDB)
	os.Exit(code)
}

// flusher is implemented by loggers that send items in the background.
type flusher interface {
	Close()
}

// shutdown releases storage and waits for pending log items.
func shutdown(appLog core.Logger, closeDB func() error) {
	if err := closeDB(); err != nil {
		appLog.Error("closing storage", err)
	}
	if f, ok := appLog.(flusher); ok {
		f.Close()
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
