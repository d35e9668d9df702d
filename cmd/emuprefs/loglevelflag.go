package main

import (
	"log/slog"

	"github.com/ErikKalkoken/emuprefs/internal/config"
)

type logLevelFlag struct {
	value slog.Level
}

func (l logLevelFlag) String() string {
	return l.value.String()
}

func (l *logLevelFlag) Set(value string) error {
	v, err := config.ParseLogLevel(value)
	if err != nil {
		return err
	}
	l.value = v
	return nil
}
