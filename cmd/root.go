package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"stockwatch/config"
	"stockwatch/helpers"
	"stockwatch/internal/checker"
	"stockwatch/logger"
	"stockwatch/services/cache"
	"stockwatch/services/notifier"
	"stockwatch/services/publisher"
)

// NewRootCmd creates the root command for stockwatch.
func NewRootCmd() *cobra.Command {
	var (
		debug       bool
		showVersion bool
	)

	cmd := &cobra.Command{
		Use:   "stockwatch [url]",
		Short: "Check the availability of a BestBuy product page",
		Long: `stockwatch checks whether the BestBuy product at the given URL is
available online and notifies a Slack webhook when it is.

If no URL is given, the availability status of the ASUS ROG Zephyrus G14
is retrieved (url: ` + config.DefaultProductURL + `).`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Fprintln(cmd.OutOrStdout(), getVersion())
				return nil
			}

			logger.Init(debug)

			cfg := config.LoadConfig()
			if err := cfg.Validate(); err != nil {
				return err
			}

			url := cfg.ProductURL
			if len(args) == 1 {
				url = args[0]
			}

			logger.Default.Info().
				Str("environment", cfg.Environment).
				Str("url", url).
				Msg("Starting availability check")

			return runCheck(cmd, cfg, url)
		},
	}

	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "set logging to DEBUG")
	cmd.Flags().BoolVarP(&showVersion, "version", "v", false, "display version info")

	return cmd
}

// runCheck wires the services and runs the pipeline once.
func runCheck(cmd *cobra.Command, cfg *config.Config, url string) error {
	helpers.SetTimeout(cfg.FetchTimeout)

	var n notifier.Notifier
	if cfg.SlackWebhookURL == "" {
		n = notifier.NewNoopNotifier()
	} else {
		n = notifier.NewSlackNotifier(cfg.SlackWebhookURL, cfg.FetchTimeout)
	}

	var pub publisher.Publisher
	if cfg.RedisAddr != "" {
		redisPub := publisher.NewRedisPublisher(
			cmd.Context(),
			cfg.RedisAddr,
			cfg.RedisDB,
			cfg.RedisStream,
			cfg.RedisStreamMaxLen,
		)
		defer redisPub.Close()
		pub = redisPub
	}

	var cooldownCache cache.CacheService
	if cfg.MemcacheAddr != "" {
		cooldownCache = cache.NewMemcacheService(cfg.MemcacheAddr)
	}

	chk := checker.New(n, pub, cooldownCache, cfg.NotifyCooldown)
	return chk.Check(cmd.Context(), url)
}

// Execute runs the root command. Fatal pipeline errors map to a non-zero
// process exit; extraction misses are logged inside the checker and end the
// run cleanly.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
