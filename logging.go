package main

import (
	"io"

	log "github.com/sirupsen/logrus"
)

func initLogging(out io.Writer, level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetOutput(out)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true, DisableColors: true})
	log.SetLevel(lvl)
	return nil
}
