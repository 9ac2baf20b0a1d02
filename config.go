// SPDX-License-Identifier: MIT
package tokenizer

import (
	"runtime"

	"github.com/sirupsen/logrus"
)

type (
	// Config defines configuration options for the Tokenizer's operations.
	Config struct {
		// Logger for Tokenizer messages.
		//
		// Preferring a public field to allow for sharing.
		Logger logrus.FieldLogger
		Debug  bool

		// TrimCR drops a trailing '\r' from every line before scanning.
		TrimCR bool

		// Workers caps the goroutines used by ScanAll.
		Workers int
	}
)

// DefConfig obtains the package's default Tokenizer Config.
func DefConfig() *Config {
	return &Config{
		Logger:  logrus.New(),
		Workers: runtime.GOMAXPROCS(0),
	}
}

// Validate populates missing Config entries with defaults.
func (c *Config) Validate() {
	if c.Logger == nil {
		c.Logger = logrus.New()
	}
	if c.Workers < 1 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
}
