package cli

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"gorestaurant/config"
	"gorestaurant/order-client/internal/domain"
	"gorestaurant/order-client/internal/favorite"
	"gorestaurant/order-client/internal/page"
	"gorestaurant/order-client/internal/remote"
	"gorestaurant/order-client/internal/submission"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Backend is everything the commands need from the menu service.
type Backend interface {
	page.Catalog
	favorite.Store
	submission.OrderStore
	ListFoods(ctx context.Context) ([]domain.Food, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
}

// Options lets callers replace the pieces built from the settings.
type Options struct {
	Backend Backend
	Logger  *zap.Logger
	Viper   *viper.Viper
}

type app struct {
	opts     Options
	cfgFile  string
	settings config.Settings
	backend  Backend
	logger   *zap.Logger
}

func NewRootCommand(opts Options) *cobra.Command {
	if opts.Viper == nil {
		opts.Viper = viper.New()
	}
	a := &app{opts: opts}

	root := &cobra.Command{
		Use:           "order-client",
		Short:         "Browse the menu, compose orders and review past orders",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is ./config.yaml)")
	flags.String("api-url", "", "menu service base URL")
	flags.Duration("confirmation-delay", submission.ConfirmationDelay, "how long the order confirmation stays visible")
	flags.String("log-level", "", "log level (debug, info, warn, error)")

	opts.Viper.BindPFlag("api_base_url", flags.Lookup("api-url"))
	opts.Viper.BindPFlag("confirmation_delay", flags.Lookup("confirmation-delay"))
	opts.Viper.BindPFlag("log_level", flags.Lookup("log-level"))

	root.AddCommand(
		a.menuCommand(),
		a.showCommand(),
		a.orderCommand(),
		a.favoriteCommand(),
		a.ordersCommand(),
	)
	return root
}

func (a *app) init() error {
	settings, err := config.Load(a.opts.Viper, a.cfgFile)
	if err != nil {
		return err
	}
	a.settings = settings

	a.logger = a.opts.Logger
	if a.logger == nil {
		if a.logger, err = config.NewLogger("order-client", settings.LogLevel); err != nil {
			return err
		}
	}

	a.backend = a.opts.Backend
	if a.backend == nil {
		a.backend = remote.NewClient(settings.APIBaseURL, &http.Client{Timeout: settings.RequestTimeout})
	}
	return nil
}

func (a *app) openPage(ctx context.Context, arg string, submitter *submission.Submitter) (*page.FoodDetails, error) {
	foodID, err := parseID(arg)
	if err != nil {
		return nil, err
	}
	toggle := favorite.NewToggle(a.backend, a.logger)
	return page.Open(ctx, foodID, a.backend, toggle, submitter, a.logger)
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid food id %q", arg)
	}
	return id, nil
}
