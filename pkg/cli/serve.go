package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tradinggrow/backoffice/pkg/admin"
	"github.com/tradinggrow/backoffice/pkg/config"
	"github.com/tradinggrow/backoffice/pkg/logging"
	"github.com/tradinggrow/backoffice/pkg/session"
)

var (
	serveConfigFile    string
	serveListen        string
	serveLogLevel      string
	serveLogFormat     string
	serveSessionSecret string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the back office API server",
	Long: `Start the back office API server.

By default the server listens on :4380. The session secret must match the
one the TradingGrow web app signs session cookies with; when omitted, a
random secret is generated and logged, which only admits tokens minted by
'backofficed token' against that same secret.`,
	Example: `  # Start with defaults (dev mode, random session secret)
  backofficed serve

  # Start with a config file
  backofficed serve --config backoffice.yaml

  # Override the listen address and log format
  backofficed serve --listen :8080 --log-format json`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveConfigFile, "config", "c", "", "Path to configuration file")
	serveCmd.Flags().StringVarP(&serveListen, "listen", "l", "", "Listen address (overrides config)")
	serveCmd.Flags().StringVar(&serveLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	serveCmd.Flags().StringVar(&serveLogFormat, "log-format", "", "Log format: text, json")
	serveCmd.Flags().StringVar(&serveSessionSecret, "session-secret", "", "Session token signing secret (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if serveConfigFile != "" {
		var err error
		cfg, err = config.Load(serveConfigFile)
		if err != nil {
			return err
		}
	}

	// Flags override file values.
	if serveListen != "" {
		cfg.Listen = serveListen
	}
	if serveLogLevel != "" {
		cfg.Log.Level = serveLogLevel
	}
	if serveLogFormat != "" {
		cfg.Log.Format = serveLogFormat
	}
	if serveSessionSecret != "" {
		cfg.Session.Secret = serveSessionSecret
	}

	log := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.Log.Level),
		Format: logging.ParseFormat(cfg.Log.Format),
	})

	if cfg.Session.Secret == "" {
		cfg.Session.Secret = session.GenerateSecret()
		log.Warn("no session secret configured, generated a random one",
			"hint", "tokens from the web app will not verify; set session.secret")
	}

	ttl, err := cfg.SessionTTL()
	if err != nil {
		return err
	}
	sessions, err := session.NewManager(session.Config{
		Secret:     cfg.Session.Secret,
		TTL:        ttl,
		CookieName: cfg.Session.CookieName,
	})
	if err != nil {
		return err
	}

	api := admin.New(cfg.Listen,
		admin.WithSessionManager(sessions),
		admin.WithLogger(log),
		admin.WithRateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst),
		admin.WithVersion(Version),
	)

	if err := api.Start(); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Info("shutting down", "signal", sig.String())

	return api.Stop()
}
