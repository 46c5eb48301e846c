package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"shopfront/cmd/shopfront/shop"
	"shopfront/internal/api"
	"shopfront/internal/config"
	"shopfront/internal/logging"
	"shopfront/internal/types"
	"shopfront/internal/view"
)

var (
	// Global flags
	verbose bool
	apiURL  string
	timeout time.Duration

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "shopfront",
	Short: "shopfront - terminal storefront client",
	Long: `shopfront is a terminal client for the storefront backend.

It hosts the product catalog, the shopping cart with checkout, order
history, and the admin console (product management, order management,
sales report) in one interactive interface.

Run without arguments to start the interactive interface.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip logger init for interactive mode (it has its own UI)
		if cmd.Use == "shopfront" && cmd.CalledAs() == "shopfront" {
			return nil
		}

		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

var loginCmd = &cobra.Command{
	Use:   "login [username]",
	Short: "Sign in and print the resolved profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Print the current session's user, if any",
	RunE:  runWhoami,
}

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List the product catalog",
	RunE:  runProducts,
}

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List your orders (requires a signed-in session)",
	RunE:  runOrders,
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the sales summary and the latest orders (admin)",
	RunE:  runReport,
}

var debugCmd = &cobra.Command{
	Use:   "debug",
	Short: "Dump the effective configuration and session state",
	RunE:  runDebug,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend base URL (or set SHOPFRONT_API_URL)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Request timeout override")

	loginCmd.Flags().String("password", "", "Password (prompted insecurely via flag)")
	_ = loginCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(productsCmd)
	rootCmd.AddCommand(ordersCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(debugCmd)
}

// setup loads the configuration, initializes the category logs, and builds
// the API client. Flag overrides win over config and environment.
func setup() (*config.Config, *api.Client, error) {
	path, err := config.File()
	if err != nil {
		return nil, nil, err
	}
	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		// First run: write the defaults so there is a file to edit.
		if saveErr := config.Save(config.DefaultConfig(), path); saveErr != nil {
			fmt.Fprintf(os.Stderr, "could not write default config: %v\n", saveErr)
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}

	if apiURL != "" {
		cfg.API.BaseURL = apiURL
	}
	if timeout > 0 {
		cfg.API.Timeout = timeout.String()
	}
	if verbose {
		cfg.Logging.DebugMode = true
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	dir, err := config.Dir()
	if err != nil {
		return nil, nil, err
	}
	if err := logging.Initialize(dir, cfg.Logging.DebugMode, cfg.Logging.Level); err != nil {
		return nil, nil, err
	}
	logging.Boot("shopfront starting, backend %s", cfg.API.BaseURL)

	reqTimeout, err := cfg.APITimeout()
	if err != nil {
		return nil, nil, err
	}
	client, err := api.New(cfg.API.BaseURL, reqTimeout)
	if err != nil {
		return nil, nil, err
	}
	return cfg, client, nil
}

// runInteractive starts the storefront interface
func runInteractive() error {
	cfg, client, err := setup()
	if err != nil {
		return err
	}
	defer logging.CloseAll()

	p := tea.NewProgram(
		shop.New(cfg, client),
		tea.WithAltScreen(),
	)
	_, err = p.Run()
	return err
}

func runLogin(cmd *cobra.Command, args []string) error {
	_, client, err := setup()
	if err != nil {
		return err
	}
	defer logging.CloseAll()

	password, _ := cmd.Flags().GetString("password")
	ctx := cmd.Context()
	if err := client.Login(ctx, args[0], password); err != nil {
		return fmt.Errorf("login failed: %s", api.UserMessage(err))
	}
	user, err := client.Profile(ctx)
	if err != nil {
		return err
	}
	logger.Info("signed in", zap.String("username", user.Username), zap.String("role", string(user.Role)))
	fmt.Printf("Signed in as %s (%s)\n", user.Username, user.Role)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	_, client, err := setup()
	if err != nil {
		return err
	}
	defer logging.CloseAll()

	if err := client.Logout(cmd.Context()); err != nil {
		return fmt.Errorf("logout failed: %s", api.UserMessage(err))
	}
	fmt.Println("Signed out")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	_, client, err := setup()
	if err != nil {
		return err
	}
	defer logging.CloseAll()

	user, err := client.Profile(cmd.Context())
	if err != nil {
		if api.IsAuthError(err) {
			fmt.Println("Not signed in")
			return nil
		}
		return err
	}
	fmt.Printf("%s <%s> role=%s\n", user.Username, user.Email, user.Role)
	return nil
}

func runProducts(cmd *cobra.Command, args []string) error {
	_, client, err := setup()
	if err != nil {
		return err
	}
	defer logging.CloseAll()

	products, err := client.ListProducts(cmd.Context())
	if err != nil {
		return fmt.Errorf("%s", api.UserMessage(err))
	}
	logging.Get(logging.CategoryProducts).Info("listed %d products", len(products))
	if len(products) == 0 {
		fmt.Println("No products available yet")
		return nil
	}
	for _, p := range products {
		stock := fmt.Sprintf("stock %d", p.Stock)
		if !p.InStock() {
			stock = "out of stock"
		}
		fmt.Printf("%4d  %-30s %10s  %s\n", p.ID, p.Name, view.Money(p.Price), stock)
	}
	return nil
}

func runOrders(cmd *cobra.Command, args []string) error {
	_, client, err := setup()
	if err != nil {
		return err
	}
	defer logging.CloseAll()

	orders, err := client.ListOrders(cmd.Context())
	if err != nil {
		return fmt.Errorf("%s", api.UserMessage(err))
	}
	logging.Get(logging.CategoryOrders).Info("listed %d orders", len(orders))
	if len(orders) == 0 {
		fmt.Println("You have no orders yet")
		return nil
	}
	for _, o := range orders {
		fmt.Printf("#%-5d %10s  %-10s %s\n",
			o.ID, view.Money(o.TotalAmount), view.StatusLabel(o.Status), view.FormatDate(o.CreatedAt))
	}
	return nil
}

// runReport fetches the sales summary and the order list concurrently, the
// same two requests the report view issues, and prints the latest ten.
func runReport(cmd *cobra.Command, args []string) error {
	_, client, err := setup()
	if err != nil {
		return err
	}
	defer logging.CloseAll()

	timer := logging.StartTimer(logging.CategoryReports, "sales report")
	var (
		summary *types.SalesSummary
		orders  []types.Order
	)
	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		var err error
		summary, err = client.SalesSummary(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		orders, err = client.AllOrders(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("%s", api.UserMessage(err))
	}
	timer.Stop()

	fmt.Printf("Total sales:   %s\n", view.Money(summary.TotalSales))
	fmt.Printf("Total orders:  %d\n", summary.TotalOrders)
	fmt.Printf("Average order: %s\n", view.Money(types.AverageOrder(*summary)))

	if len(orders) > 10 {
		orders = orders[:10]
	}
	if len(orders) > 0 {
		fmt.Println("\nRecent orders:")
		for _, o := range orders {
			fmt.Printf("#%-5d %10s  %-10s %s\n",
				o.ID, view.Money(o.TotalAmount), view.StatusLabel(o.Status), view.FormatDate(o.CreatedAt))
		}
	}
	return nil
}

func runDebug(cmd *cobra.Command, args []string) error {
	cfg, client, err := setup()
	if err != nil {
		return err
	}
	defer logging.CloseAll()

	fmt.Println("=== Configuration ===")
	spew.Dump(cfg)

	fmt.Println("=== Session ===")
	user, err := client.Profile(cmd.Context())
	if err != nil {
		fmt.Printf("no session: %v\n", err)
		return nil
	}
	spew.Dump(user)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
