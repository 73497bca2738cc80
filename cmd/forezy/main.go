// Command forezy is a terminal client for the Forezy prediction-market
// backend: browse markets, manage your account session, and watch live
// updates.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/forezy/forezy-go/internal/api"
	"github.com/forezy/forezy-go/internal/config"
	"github.com/forezy/forezy-go/internal/feed"
	"github.com/forezy/forezy-go/internal/session"
	"github.com/forezy/forezy-go/internal/store"
	"github.com/forezy/forezy-go/internal/stream"
	"github.com/forezy/forezy-go/internal/version"
)

const usage = `usage: forezy [flags] <command>

commands:
  login <email>       sign in (password read from stdin)
  register <email>    create an account (password read from stdin)
  logout              sign out and forget the stored session
  whoami              show the current session
  markets             list open markets
  market <id>         show one market
  watch               stream live market updates
  version             print version information

flags:
`

func main() {
	configPath := flag.String("config", "", "path to config file")
	sortOrder := flag.String("sort", "asc", "market sort order: asc or desc")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	// Optional .env for local development; ignore if absent.
	_ = godotenv.Load()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	sessionPath := cfg.Session.Path
	if sessionPath == "" {
		sessionPath = store.DefaultPath()
	}
	sessionStore := store.NewFileStore(sessionPath, logger)

	var mgr *session.Manager

	apiClient := api.NewClient(
		cfg.API.BaseURL,
		api.WithLogger(logger),
		api.WithTimeout(cfg.API.Timeout),
		api.WithRetries(cfg.API.MaxRetries, time.Second),
		api.WithTokenSource(func() string {
			if mgr == nil {
				return ""
			}
			return mgr.Token()
		}),
	)

	mgr = session.NewManager(apiClient, sessionStore, logger)
	if err := mgr.Start(ctx); err != nil {
		logger.Error("failed to start session manager", "error", err)
		os.Exit(1)
	}

	marketFeed := feed.New(apiClient, feed.WithLogger(logger))

	if err := run(ctx, cfg, mgr, marketFeed, *sortOrder, logger); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.ClientConfig, mgr *session.Manager, marketFeed *feed.Feed, sortOrder string, logger *slog.Logger) error {
	order := feed.SortAscending
	if sortOrder == "desc" {
		order = feed.SortDescending
	}

	switch cmd := flag.Arg(0); cmd {
	case "login":
		return cmdLogin(ctx, mgr)
	case "register":
		return cmdRegister(ctx, mgr)
	case "logout":
		mgr.Logout(ctx)
		fmt.Println("Signed out.")
		return nil
	case "whoami":
		return cmdWhoami(mgr)
	case "markets":
		return cmdMarkets(ctx, marketFeed, order)
	case "market":
		return cmdMarket(ctx, marketFeed, flag.Arg(1))
	case "watch":
		return cmdWatch(ctx, cfg, mgr, logger)
	case "version":
		fmt.Println(version.String())
		return nil
	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func cmdLogin(ctx context.Context, mgr *session.Manager) error {
	email := flag.Arg(1)
	if email == "" {
		return fmt.Errorf("login requires an email argument")
	}

	password, err := readPassword()
	if err != nil {
		return err
	}

	if err := mgr.Login(ctx, email, password); err != nil {
		return fmt.Errorf("%s", session.UserMessage(err))
	}

	s, _ := mgr.Session()
	fmt.Printf("Signed in as %s (%s)\n", s.Email, s.Address)
	return nil
}

func cmdRegister(ctx context.Context, mgr *session.Manager) error {
	email := flag.Arg(1)
	if email == "" {
		return fmt.Errorf("register requires an email argument")
	}

	password, err := readPassword()
	if err != nil {
		return err
	}

	result, err := mgr.Register(ctx, email, password)
	if err != nil {
		return fmt.Errorf("%s", session.UserMessage(err))
	}

	if result.NeedsVerification {
		fmt.Println("Account created. Check your inbox and verify your email before logging in.")
		return nil
	}

	s, _ := mgr.Session()
	fmt.Printf("Account created, signed in as %s\n", s.Email)
	return nil
}

func cmdWhoami(mgr *session.Manager) error {
	s, ok := mgr.Session()
	if !ok {
		fmt.Println("Not signed in.")
		return nil
	}
	fmt.Printf("email:    %s\nuser id:  %s\naddress:  %s\nverified: %t\n",
		s.Email, s.UserID, s.Address, s.EmailVerified)
	return nil
}

func cmdMarkets(ctx context.Context, marketFeed *feed.Feed, order feed.SortOrder) error {
	markets, err := marketFeed.Fetch(ctx, order)
	if err != nil {
		return err
	}

	if len(markets) == 0 {
		fmt.Println("No open markets.")
		return nil
	}

	for _, m := range markets {
		fmt.Printf("%-24s  %s  (resolves %s)\n",
			m.ID, m.Question, m.ResolutionTime.Format("2006-01-02 15:04 MST"))
	}
	return nil
}

func cmdMarket(ctx context.Context, marketFeed *feed.Feed, id string) error {
	if id == "" {
		return fmt.Errorf("market requires an id argument")
	}

	if _, err := marketFeed.Fetch(ctx, feed.SortAscending); err != nil {
		return err
	}

	m, ok := marketFeed.Market(id)
	if !ok {
		return fmt.Errorf("market %q not found", id)
	}

	fmt.Printf("%s\n\n%s\n\nstatus:   %s\nresolves: %s\n",
		m.Question, m.Description, m.Status, m.ResolutionTime.Format("2006-01-02 15:04 MST"))
	return nil
}

func cmdWatch(ctx context.Context, cfg *config.ClientConfig, mgr *session.Manager, logger *slog.Logger) error {
	client := stream.NewClient(stream.ClientConfig{
		URL:          cfg.Stream.URL,
		Token:        mgr.Token(),
		PingTimeout:  cfg.Stream.PingTimeout,
		WriteTimeout: cfg.Stream.WriteTimeout,
		BufferSize:   cfg.Stream.BufferSize,
	}, logger)

	if err := client.Connect(ctx); err != nil {
		return err
	}
	defer client.Close()

	if err := client.Subscribe([]string{"market_update"}, nil); err != nil {
		return err
	}

	fmt.Println("Watching for market updates (ctrl-c to stop)...")

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-client.Errors():
			return fmt.Errorf("stream: %w", err)
		case msg := <-client.Messages():
			fmt.Printf("%s %s\n", msg.ReceivedAt.Format("15:04:05"), strings.TrimSpace(string(msg.Data)))
		}
	}
}

// readPassword reads one line from stdin. Kept plain so the command works
// both interactively and in pipes.
func readPassword() (string, error) {
	fmt.Fprint(os.Stderr, "password: ")
	r := bufio.NewReader(os.Stdin)
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
