package app

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/five82/pantry/internal/config"
	"github.com/five82/pantry/internal/location"
	"github.com/five82/pantry/internal/logging"
	"github.com/five82/pantry/internal/prefs"
	"github.com/five82/pantry/internal/recipes"
	"github.com/five82/pantry/internal/shopping"
	"github.com/five82/pantry/internal/state"
	"github.com/five82/pantry/internal/ui"
)

// Options configure the pantry application.
type Options struct {
	ConfigPath   string
	PrefsPath    string // empty uses ~/.config/pantry/prefs.toml
	ShoppingPath string // empty uses ~/.local/share/pantry/shopping.yaml
	PollEvery    time.Duration
	Search       string // initial search term
	Demo         bool   // use the bundled catalog instead of the API
	Debug        bool   // force debug logging
}

const uiRefresh = time.Second

// Run boots the pantry TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := cfg.LogLevel
	if opts.Debug {
		level = "debug"
	}
	logger, err := logging.New(cfg.LogFile, level)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = logger.Close() }()
	log := logger.WithName("pantry")
	ctx = logging.WithLogger(ctx, log)

	prefsPath := opts.PrefsPath
	if strings.TrimSpace(prefsPath) == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs := prefs.Load(prefsPath)

	listPath := opts.ShoppingPath
	if strings.TrimSpace(listPath) == "" {
		listPath = shopping.DefaultPath()
	}
	list, err := shopping.Load(listPath)
	if err != nil {
		log.Error(err, "shopping list unreadable, starting empty", "path", listPath)
		list = &shopping.List{}
	}

	svc, err := newService(cfg, opts.Demo)
	if err != nil {
		return fmt.Errorf("init recipe client: %w", err)
	}

	store := &state.Store{}
	interval := defaultPollInterval
	if opts.PollEvery > 0 {
		interval = opts.PollEvery
	}

	// Populate the navbar before the first frame.
	refresh(ctx, store, svc, log.WithName("poller"))
	StartPoller(ctx, store, svc, interval)

	loc := location.New(startLocation(opts.Search))
	unsubscribe := loc.Subscribe(func(u url.URL) {
		log.V(1).Info("location changed", "location", u.String())
	})
	defer unsubscribe()

	log.Info("starting", "api", cfg.APIBind, "demo", opts.Demo, "poll", interval.String())
	return ui.Run(ui.Options{
		Context:      ctx,
		Logger:       log.WithName("ui"),
		Service:      svc,
		Store:        store,
		Location:     loc,
		Config:       cfg,
		Prefs:        userPrefs,
		PrefsPath:    prefsPath,
		Shopping:     list,
		ShoppingPath: listPath,
		LogPath:      cfg.LogFile,
		RefreshEvery: uiRefresh,
	})
}

func newService(cfg config.Config, demo bool) (recipes.Service, error) {
	if demo {
		return recipes.NewCatalog(nil), nil
	}
	return recipes.NewClient(cfg.APIBind)
}

// startLocation renders the initial address for an optional search term.
func startLocation(search string) string {
	u := url.URL{Path: "/"}
	if s := strings.TrimSpace(search); s != "" {
		u.RawQuery = url.Values{location.ParamSearch: {s}}.Encode()
	}
	return u.String()
}
