package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-logr/logr"

	"github.com/five82/pantry/internal/config"
	"github.com/five82/pantry/internal/location"
	"github.com/five82/pantry/internal/prefs"
	"github.com/five82/pantry/internal/recipes"
	"github.com/five82/pantry/internal/search"
	"github.com/five82/pantry/internal/shopping"
	"github.com/five82/pantry/internal/state"
)

// Options configure the UI runtime.
type Options struct {
	Context      context.Context
	Logger       logr.Logger
	Service      recipes.Service
	Store        *state.Store
	Location     *location.Location
	Config       config.Config
	Prefs        prefs.Prefs
	PrefsPath    string
	Shopping     *shopping.List
	ShoppingPath string
	LogPath      string
	RefreshEvery time.Duration

	// Clock drives the search debounce; nil uses the wall clock.
	Clock search.Clock
}

type viewMode int

const (
	viewRecipes viewMode = iota
	viewShopping
	viewDiagnostics
)

// Screen rows.
const (
	navbarRow   = 0
	searchRow   = 1
	bodyTop     = 3
	chromeLines = 4 // navbar, search, spacer, footer
	searchX     = 1
	maxBarWidth = 64
)

const listTimeout = 10 * time.Second

type recipesLoadedMsg struct {
	seq  uint64
	page recipes.RecipePage
	err  error
}

type tickMsg time.Time

// Model is the root Bubble Tea model.
type Model struct {
	ctx     context.Context
	log     logr.Logger
	service recipes.Service
	store   *state.Store
	loc     *location.Location
	hub     *search.PointerHub
	bar     *search.Bar
	cfg     config.Config

	prefs        prefs.Prefs
	prefsPath    string
	list         *shopping.List
	listPath     string
	logPath      string
	refreshEvery time.Duration

	theme Theme
	keys  keyMap
	help  help.Model

	width, height int
	mode          viewMode
	showHelp      bool
	snapshot      state.Snapshot

	requested string
	loadSeq   uint64
	loading   bool
	page      recipes.RecipePage
	loadErr   error
	selected  int
	flash     string

	shopView viewport.Model
	diag     diagnostics
}

// New builds the root model and mounts the search controller.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	log := opts.Logger
	if log.GetSink() == nil {
		log = logr.Discard()
	}
	loc := opts.Location
	if loc == nil {
		loc = location.New("/")
	}
	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}
	list := opts.Shopping
	if list == nil {
		list = &shopping.List{}
	}
	refresh := opts.RefreshEvery
	if refresh <= 0 {
		refresh = time.Second
	}
	p := opts.Prefs
	if p.Theme == "" {
		p = prefs.Default()
	}

	hub := search.NewPointerHub()
	ctrl := search.NewController(search.Options{
		Service:      opts.Service,
		Address:      loc,
		Clock:        opts.Clock,
		URLDebounce:  opts.Config.Search.URLDebounce,
		FetchTimeout: opts.Config.Search.FetchTimeout,
		StalePolicy:  opts.Config.Search.StalePolicy,
		Logger:       log.WithName("search"),
	})
	ctrl.Mount(hub)
	bar := search.NewBar(ctrl)
	bar.SetQuery(loc.Search())

	theme := GetTheme(p.Theme)
	bar.SetStyles(theme.BarStyles())
	diag := newDiagnostics()
	diag.restyle(theme)

	return Model{
		ctx:          ctx,
		log:          log,
		service:      opts.Service,
		store:        store,
		loc:          loc,
		hub:          hub,
		bar:          bar,
		cfg:          opts.Config,
		prefs:        p,
		prefsPath:    opts.PrefsPath,
		list:         list,
		listPath:     opts.ShoppingPath,
		logPath:      opts.LogPath,
		refreshEvery: refresh,
		theme:        theme,
		keys:         DefaultKeyMap(),
		help:         newHelp(theme),
		snapshot:     store.Snapshot(),
		shopView:     viewport.New(0, 0),
		diag:         diag,
	}
}

// Search returns the search bar, e.g. to wire its dispatcher or unmount it.
func (m Model) Search() *search.Bar { return m.bar }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tick(m.refreshEvery)
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()

	case tickMsg:
		m.snapshot = m.store.Snapshot()
		cmds = append(cmds, tick(m.refreshEvery))
		if m.mode == viewDiagnostics {
			cmds = append(cmds, m.diag.load(m.logPath))
		}

	case recipesLoadedMsg:
		m.applyRecipes(msg)

	case diagnosticsMsg:
		m.diag.apply(msg, m.theme)

	case tea.MouseMsg:
		cmds = append(cmds, m.handleMouse(msg))

	case tea.KeyMsg:
		cmd, quit := m.handleKey(msg)
		if quit {
			return m, tea.Quit
		}
		cmds = append(cmds, cmd)

	default:
		cmds = append(cmds, m.bar.Update(msg))
	}

	if m.loc.String() != m.requested {
		cmds = append(cmds, m.loadRecipes())
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) layout() {
	m.bar.SetLayout(searchX, searchRow, min(maxBarWidth, max(m.width-2, 0)))
	h := m.bodyHeight()
	m.shopView.Width, m.shopView.Height = m.width, h
	m.diag.resize(m.width, h)
	if m.mode == viewShopping {
		m.shopView.SetContent(m.renderShopping())
	}
}

func (m Model) bodyHeight() int {
	return max(m.height-chromeLines, 1)
}

// loadRecipes requests the grid for the current location.
func (m *Model) loadRecipes() tea.Cmd {
	m.requested = m.loc.String()
	m.loadSeq++
	m.loading = true
	if !m.bar.Focused() {
		m.bar.SetQuery(m.loc.Search())
	}

	seq := m.loadSeq
	query := recipes.ListQuery{
		Search:   m.loc.Search(),
		Page:     m.loc.Page(),
		PageSize: m.cfg.PageSize,
	}
	svc, ctx, log := m.service, m.ctx, m.log
	if svc == nil {
		return func() tea.Msg {
			return recipesLoadedMsg{seq: seq, err: errors.New("no recipe service configured")}
		}
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, listTimeout)
		defer cancel()
		page, err := svc.ListRecipes(ctx, query)
		if err != nil {
			log.Error(err, "list recipes failed", "search", query.Search, "page", query.Page)
		}
		return recipesLoadedMsg{seq: seq, page: page, err: err}
	}
}

func (m *Model) applyRecipes(msg recipesLoadedMsg) {
	if msg.seq != m.loadSeq {
		return
	}
	m.loading = false
	m.loadErr = msg.err
	if msg.err != nil {
		m.page = recipes.RecipePage{}
		m.selected = 0
		return
	}
	m.page = msg.page
	m.selected = min(m.selected, max(len(m.page.Items)-1, 0))
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if msg.String() == "ctrl+c" {
		return nil, true
	}
	m.flash = ""

	if m.showHelp {
		if key.Matches(msg, m.keys.Help, m.keys.Escape) {
			m.showHelp = false
		}
		return nil, false
	}

	if m.bar.Focused() {
		switch {
		case msg.String() == "tab":
			m.bar.Blur()
			return nil, false
		case key.Matches(msg, m.keys.Escape) && !m.bar.Controller().State().ShowSuggestions:
			m.bar.Blur()
			return nil, false
		}
		return m.bar.Update(msg), false
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return nil, true
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return nil, false
	case key.Matches(msg, m.keys.Search):
		m.mode = viewRecipes
		return m.bar.Focus(), false
	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return nil, false
	case key.Matches(msg, m.keys.ShoppingList):
		m.toggleMode(viewShopping)
		return nil, false
	case key.Matches(msg, m.keys.Diagnostics):
		m.toggleMode(viewDiagnostics)
		if m.mode == viewDiagnostics {
			return m.diag.load(m.logPath), false
		}
		return nil, false
	case key.Matches(msg, m.keys.Escape):
		m.mode = viewRecipes
		return nil, false
	}

	switch m.mode {
	case viewShopping:
		var cmd tea.Cmd
		m.shopView, cmd = m.shopView.Update(msg)
		return cmd, false
	case viewDiagnostics:
		return m.diag.update(msg), false
	}
	return m.handleGridKey(msg), false
}

func (m *Model) toggleMode(mode viewMode) {
	if m.mode == mode {
		m.mode = viewRecipes
		return
	}
	m.mode = mode
	if mode == viewShopping {
		m.shopView.SetContent(m.renderShopping())
		m.shopView.GotoTop()
	}
}

func (m *Model) handleGridKey(msg tea.KeyMsg) tea.Cmd {
	n := len(m.page.Items)
	cols := m.gridColumns()
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.selected-cols >= 0 {
			m.selected -= cols
		}
	case key.Matches(msg, m.keys.Down):
		if m.selected+cols < n {
			m.selected += cols
		}
	case key.Matches(msg, m.keys.Left):
		m.selected = max(m.selected-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.selected = min(m.selected+1, max(n-1, 0))
	case key.Matches(msg, m.keys.NextPage):
		if m.loadErr == nil && m.page.HasNext() {
			m.selected = 0
			m.loc.SetPage(m.page.Page + 1)
		}
	case key.Matches(msg, m.keys.PrevPage):
		if m.loadErr == nil && m.page.HasPrev() {
			m.selected = 0
			m.loc.SetPage(m.page.Page - 1)
		}
	case key.Matches(msg, m.keys.Back):
		m.loc.Back()
	case key.Matches(msg, m.keys.Reload):
		m.requested = ""
	case key.Matches(msg, m.keys.Density):
		m.toggleDensity()
	case key.Matches(msg, m.keys.Shop):
		m.toggleShopping()
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action == tea.MouseActionPress {
		m.hub.Publish(search.PointerEvent{X: msg.X, Y: msg.Y})
	}
	if m.showHelp {
		return nil
	}
	if m.bar.Controller().State().Visible() {
		// The open panel sits above the grid and takes the event.
		inPanel := m.panelContains(msg.X, msg.Y)
		if cmd := m.bar.Update(msg); cmd != nil || inPanel {
			return cmd
		}
	} else if msg.Y == searchRow {
		return m.bar.Update(msg)
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if m.bar.Focused() && msg.Y != searchRow {
		m.bar.Blur()
	}
	if m.mode == viewRecipes {
		if i := m.cardAt(msg.X, msg.Y); i >= 0 {
			m.selected = i
		}
	}
	return nil
}

func (m Model) panelContains(x, y int) bool {
	panel := m.bar.PanelView()
	if panel == "" {
		return false
	}
	r := search.Rect{X: searchX, Y: searchRow + 1, W: lipgloss.Width(panel), H: lipgloss.Height(panel)}
	return r.Contains(x, y)
}

func (m *Model) cycleTheme() {
	m.prefs.Theme = NextTheme(m.theme.Name)
	m.applyTheme()
	m.savePrefs()
}

func (m *Model) toggleDensity() {
	if m.prefs.Density == prefs.DensityCompact {
		m.prefs.Density = prefs.DensityComfortable
	} else {
		m.prefs.Density = prefs.DensityCompact
	}
	m.selected = min(m.selected, max(len(m.page.Items)-1, 0))
	m.savePrefs()
}

func (m *Model) applyTheme() {
	m.theme = GetTheme(m.prefs.Theme)
	m.bar.SetStyles(m.theme.BarStyles())
	m.help = newHelp(m.theme)
	if m.mode == viewShopping {
		m.shopView.SetContent(m.renderShopping())
	}
	m.diag.restyle(m.theme)
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.log.Error(err, "save prefs failed")
		m.flash = "Could not save preferences"
	}
}

func (m *Model) toggleShopping() {
	if m.selected < 0 || m.selected >= len(m.page.Items) {
		return
	}
	r := m.page.Items[m.selected]
	if m.list.Toggle(r, time.Now()) {
		m.flash = "Added " + r.Title + " to the shopping list"
	} else {
		m.flash = "Removed " + r.Title + " from the shopping list"
	}
	if m.listPath != "" {
		if err := m.list.Save(m.listPath); err != nil {
			m.log.Error(err, "save shopping list failed")
			m.flash = "Could not save the shopping list"
		}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	screen := lipgloss.JoinVertical(lipgloss.Left,
		m.renderNavbar(),
		" "+m.bar.View(),
		"",
		clampLines(m.renderBody(), m.bodyHeight()),
		m.renderFooter(),
	)
	return overlay(screen, m.bar.PanelView(), searchX, searchRow+1)
}

func (m Model) renderBody() string {
	switch m.mode {
	case viewShopping:
		return m.shopView.View()
	case viewDiagnostics:
		return m.diag.view()
	}
	if page := m.renderStatusPage(); page != "" {
		return page
	}
	return m.renderGrid()
}
