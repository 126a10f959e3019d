// Command segytune inspects SEG-Y files and applies windowed amplitude
// adjustments to them.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("segytune failed")
		os.Exit(1)
	}
}
