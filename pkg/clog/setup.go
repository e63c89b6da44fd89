package clog

import (
	"os"

	"github.com/apex/log"
)

// Setup points the apex root logger at stdout using the clog line handler and
// applies the given level. An unrecognized level string falls back to info.
func Setup(levelStr string) {
	log.SetHandler(NewHandler(os.Stdout))

	level, err := log.ParseLevel(levelStr)
	if err != nil {
		log.SetLevel(log.InfoLevel)
		log.Warnf("Unknown log level '%s', using info", levelStr)
		return
	}

	log.SetLevel(level)
}
