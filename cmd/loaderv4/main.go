package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	setupLogger()

	if err := newRootCmd().Execute(); err != nil {
		logrus.StandardLogger().WithField("type", "cmd/loaderv4").WithError(err).Error("command failed")
		os.Exit(1)
	}
}
