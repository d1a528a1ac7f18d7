package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/cdcl-sat/solver/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		logrus.WithError(err).Error("cdclsat failed")
		os.Exit(1)
	}
}
