package config

import (
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/mitchellh/go-homedir"
)

// DefaultDotenvName is the dotenv file looked for in the user's home
// directory when MHS_DOTENV_PATH isn't set.
const DefaultDotenvName = ".mhs.env"

// MustLoadFromDotenv loads configuration from the dotenv file named by the
// MHS_DOTENV_PATH environment variable, falling back to ~/.mhs.env. A missing
// fallback file is fine (keys then come from the environment only), but an
// explicitly configured file that can't be loaded exits the process. The
// loaded config becomes the package-level Configer.
func MustLoadFromDotenv() Configer {
	dotenvPath := os.Getenv("MHS_DOTENV_PATH")
	if dotenvPath != "" {
		c := NewDotenvConfig(dotenvPath)
		if err := c.Load(); err != nil {
			log.Fatalf("Failed loading configuration file %s: %s", dotenvPath, err)
		}

		SetConfig(c)
		return c
	}

	home, err := homedir.Dir()
	if err != nil {
		log.Fatalf("Unable to determine home directory: %s", err)
	}

	dotenvPath = filepath.Join(home, DefaultDotenvName)
	c := NewDotenvConfig(dotenvPath)
	if err := c.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed loading configuration file %s: %s", dotenvPath, err)
	}

	SetConfig(c)
	return c
}
