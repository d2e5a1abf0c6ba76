// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Cilium

// Package logging provides the default logger shared by all filterlang
// subsystems. Library packages derive their own entry with
//
//	var log = logging.DefaultLogger.WithField(logfields.LogSubsys, "...")
package logging

import (
	"github.com/sirupsen/logrus"
)

// DefaultLogger is the base logger for all subsystems.
var DefaultLogger = initializeDefaultLogger()

func initializeDefaultLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	logger.SetLevel(logrus.InfoLevel)
	return logger
}

// SetLogLevel updates the level of the default logger.
func SetLogLevel(level logrus.Level) {
	DefaultLogger.SetLevel(level)
}

// ToggleDebugLogs switches the default logger between debug and info level.
func ToggleDebugLogs(debug bool) {
	if debug {
		DefaultLogger.SetLevel(logrus.DebugLevel)
	} else {
		DefaultLogger.SetLevel(logrus.InfoLevel)
	}
}
