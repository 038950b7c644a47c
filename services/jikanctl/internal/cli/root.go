// Package cli implements jikanctl, an operator tool for browsing the Jikan
// catalogue through the same validated, cached accessors the gateway uses.
package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/example/anime-catalog/internal/jikan"
	"github.com/example/anime-catalog/internal/platform/logging"
)

// Settings are the resolved global flags.
type Settings struct {
	BaseURL  string
	JSON     bool
	LogLevel string
	Timeout  time.Duration
	NoColor  bool
}

// ProviderFactory builds the catalogue client for one invocation.
type ProviderFactory func(s Settings, log *zap.Logger) jikan.Provider

// DefaultProvider is a jikan.Client with its own cache.
func DefaultProvider(s Settings, log *zap.Logger) jikan.Provider {
	return jikan.New(jikan.Options{
		BaseURL:    s.BaseURL,
		HTTPClient: &http.Client{Timeout: s.Timeout},
		Log:        log,
	})
}

type app struct {
	v        *viper.Viper
	newProv  ProviderFactory
	settings Settings
	provider jikan.Provider
	log      *zap.Logger
	out      io.Writer
}

// NewRootCmd assembles the command tree. Output goes to out; a nil factory
// means DefaultProvider.
func NewRootCmd(out io.Writer, newProvider ProviderFactory) *cobra.Command {
	if newProvider == nil {
		newProvider = DefaultProvider
	}
	a := &app{v: viper.New(), newProv: newProvider, out: out}

	root := &cobra.Command{
		Use:           "jikanctl",
		Short:         "Browse the Jikan anime catalogue from the terminal.",
		Long:          `jikanctl reads the public Jikan v4 API with response validation, retries and caching.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.String("base-url", jikan.DefaultBaseURL, "Jikan API base URL")
	pf.Bool("json", false, "print raw JSON instead of tables")
	pf.String("log-level", "warn", "log level (debug, info, warn, error)")
	pf.Duration("timeout", 15*time.Second, "per-request HTTP timeout")
	pf.Bool("no-color", false, "disable coloured output")

	a.v.SetEnvPrefix("JIKANCTL")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	_ = a.v.BindPFlags(pf)

	root.AddCommand(
		a.topCmd(),
		a.searchCmd(),
		a.animeCmd(),
		a.episodesCmd(),
		a.reviewsCmd(),
		a.seasonCmd(),
		a.promosCmd(),
		a.recommendationsCmd(),
		a.videosCmd(),
		a.dashboardCmd(),
		a.tokenCmd(),
		a.invalidateCmd(),
	)
	return root
}

func (a *app) setup() error {
	a.settings = Settings{
		BaseURL:  strings.TrimSpace(a.v.GetString("base-url")),
		JSON:     a.v.GetBool("json"),
		LogLevel: a.v.GetString("log-level"),
		Timeout:  a.v.GetDuration("timeout"),
		NoColor:  a.v.GetBool("no-color"),
	}
	if a.settings.NoColor {
		color.NoColor = true
	}
	if a.log == nil {
		log, err := logging.NewConsole(a.settings.LogLevel)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		a.log = log
	}
	a.provider = a.newProv(a.settings, a.log)
	return nil
}

// emit prints v as JSON when --json is set, otherwise through render.
func (a *app) emit(v any, render func(io.Writer) error) error {
	if a.settings.JSON {
		return writeJSON(a.out, v)
	}
	return render(a.out)
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid anime id %q: must be a positive integer", raw)
	}
	return id, nil
}

// Execute runs jikanctl against the real API and returns the exit code.
func Execute(ctx context.Context, out, errOut io.Writer, args []string) int {
	root := NewRootCmd(out, nil)
	root.SetErr(errOut)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		red := color.New(color.FgRed, color.Bold).SprintFunc()
		fmt.Fprintf(errOut, "%s %v\n", red("error:"), err)
		if k := jikan.Kind(err); k != jikan.KindOther {
			fmt.Fprintf(errOut, "  kind: %s\n", k)
		}
		return 1
	}
	return 0
}
