/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/apex/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mergington-edu/mhs/pkg/clog"
	"github.com/mergington-edu/mhs/pkg/config"
	"github.com/mergington-edu/mhs/pkg/mhsdb"
	"github.com/mergington-edu/mhs/pkg/mhsdb/stor"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mhsapid",
	Short: "Run the Mergington High School activities API server",
	Long: `mhsapid serves the Mergington High School extracurricular activities API
along with the student-facing web app. Activities live in memory, seeded from the
built-in directory or from the YAML file named by MHS_SEED_FILE.`,
	Run: func(cmd *cobra.Command, args []string) {
		c := config.MustLoadFromDotenv()
		clog.Setup(c.GetKeyWithDefault("MHS_LOG_LEVEL", "info"))

		e := echo.New()
		e.HideBanner = true
		e.HidePort = true
		e.Use(middleware.Recover())

		stors := stor.NewInMemoryStors(mhsdb.MustLoadDirectory(c))

		setupRoutes(RouteDependencies{
			e:      e,
			config: c,
			stors:  stors,
		})

		port := c.GetIntKeyWithDefault("MHSAPID_PORT", 1380)
		go func() {
			log.Infof("mhsapid listening on :%d", port)
			if err := e.Start(fmt.Sprintf(":%d", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatalf("Unable to start server: %s", err)
			}
		}()

		shutdownOnSignal(e)
	},
}

func shutdownOnSignal(e *echo.Echo) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	sig := <-c
	log.Infof("Got %s signal, shutting down...", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Errorf("Shutdown failed: %s", err)
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Here you will define your flags and configuration settings.
	// Cobra supports persistent flags, which, if defined here,
	// will be global for your application.

	// rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.mhs.env)")
}
