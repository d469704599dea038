package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/err0r500/go-ldp-server/config"
	"github.com/err0r500/go-ldp-server/domain"
)

var rootCmd = &cobra.Command{
	Use:   "ldpd",
	Short: "ldpd is a Linked Data Platform server",
}

var configPath string

// loadConfig reads the config file when one is given, then the flags
func loadConfig(cmd *cobra.Command) (*domain.ServerConfig, error) {
	cfg := config.Default()
	if len(configPath) > 0 {
		var err error
		if cfg, err = config.LoadJSONFile(configPath); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("listen") {
		cfg.ListenHTTP, _ = flags.GetString("listen")
	}
	if flags.Changed("base-url") {
		cfg.BaseURL, _ = flags.GetString("base-url")
	}
	if flags.Changed("partition") {
		cfg.Partition, _ = flags.GetString("partition")
	}
	if flags.Changed("store") {
		cfg.StoreDriver, _ = flags.GetString("store")
	}
	if flags.Changed("store-path") {
		cfg.StorePath, _ = flags.GetString("store-path")
	}
	if flags.Changed("binaries") {
		cfg.BinaryRoot, _ = flags.GetString("binaries")
	}
	if flags.Changed("cache") {
		cfg.CacheSize, _ = flags.GetInt("cache")
	}
	if flags.Changed("debug") {
		cfg.Debug, _ = flags.GetBool("debug")
	}
	if flags.Changed("cookie-key") {
		cfg.CookieHashKey, _ = flags.GetString("cookie-key")
	}
	return cfg, config.Validate(cfg)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "JSON configuration file")

	serveCmd.Flags().String("listen", "", "HTTP listening address, e.g. :8080")
	serveCmd.Flags().String("base-url", "", "external base URL, derived from the request when empty")
	serveCmd.Flags().String("partition", "", "internal partition name")
	serveCmd.Flags().String("store", "", "store driver: memory, bolt, badger or sqlite")
	serveCmd.Flags().String("store-path", "", "store location on disk")
	serveCmd.Flags().String("binaries", "", "folder of NonRDFSource content")
	serveCmd.Flags().Int("cache", 0, "number of resources kept in memory")
	serveCmd.Flags().Bool("debug", false, "debug logging")
	serveCmd.Flags().String("cookie-key", "", "session cookie hash key (hex or raw)")
	rootCmd.AddCommand(serveCmd)

	cookieCmd.Flags().String("cookie-key", "", "session cookie hash key (hex or raw)")
	rootCmd.AddCommand(cookieCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
