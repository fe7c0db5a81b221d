// Package session sequences login, logout, initial load and game actions.
// It owns the application state object and is the only writer of the view.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/preston-bernstein/dugout/internal/api"
	"github.com/preston-bernstein/dugout/internal/appstate"
	"github.com/preston-bernstein/dugout/internal/domain"
	"github.com/preston-bernstein/dugout/internal/gateway"
	"github.com/preston-bernstein/dugout/internal/lineup"
	"github.com/preston-bernstein/dugout/internal/logging"
	"github.com/preston-bernstein/dugout/internal/view"
)

// API is the server surface the controller drives.
type API interface {
	Login(ctx context.Context, username, password string) (api.LoginResult, error)
	Logout(ctx context.Context) (string, error)
	Probe(ctx context.Context) (bool, error)
	SubmitOrder(ctx context.Context, l domain.Lineup) (string, error)
	SimulateGame(ctx context.Context) (domain.GameResult, error)
}

// Store is the snapshot holder the controller loads and reads.
type Store interface {
	Load(ctx context.Context) (domain.GameState, error)
	Snapshot() (domain.GameState, bool)
	Current() (domain.GameState, error)
	LoadedAt() (time.Time, bool)
	Reset()
}

// Config wires a controller.
type Config struct {
	API      API
	Store    Store
	Renderer view.Renderer
	State    *appstate.State
	Team     string
	Logger   *slog.Logger
}

// Controller is the top-level state machine. At most one action runs at a
// time; a second concurrent action fails with ErrBusy.
type Controller struct {
	api      API
	store    Store
	renderer view.Renderer
	state    *appstate.State
	team     string
	logger   *slog.Logger
	inFlight *semaphore.Weighted
}

// New constructs a controller. A nil State gets a fresh one; a nil Renderer
// discards output.
func New(cfg Config) *Controller {
	state := cfg.State
	if state == nil {
		state = appstate.New()
	}
	renderer := cfg.Renderer
	if renderer == nil {
		renderer = view.Nop{}
	}
	return &Controller{
		api:      cfg.API,
		store:    cfg.Store,
		renderer: renderer,
		state:    state,
		team:     cfg.Team,
		logger:   cfg.Logger,
		inFlight: semaphore.NewWeighted(1),
	}
}

// State exposes the shared application state.
func (c *Controller) State() *appstate.State {
	return c.state
}

// Phase returns the current controller state.
func (c *Controller) Phase() appstate.Phase {
	return c.state.Phase()
}

func (c *Controller) acquire() error {
	if !c.inFlight.TryAcquire(1) {
		return ErrBusy
	}
	return nil
}

func (c *Controller) release() {
	c.inFlight.Release(1)
}

// HandleAuthLost is the recovery transition the gateway runs on a protected
// 401. It never touches the game state snapshot and never takes the action
// slot, since it runs inside whatever action observed the 401.
func (c *Controller) HandleAuthLost(ctx context.Context) {
	c.state.MarkUnauthenticated()
	logging.Warn(c.log(ctx), "session lost, returning to login", nil,
		logging.FieldPhase, c.state.Phase().String(),
	)
	c.renderer.RenderUnauthenticated()
	c.renderer.Notify(view.Warning(msgLoginRequired))
}

// Start decides the initial view by probing a protected resource.
func (c *Controller) Start(ctx context.Context, initial view.Section) error {
	if err := c.acquire(); err != nil {
		return err
	}
	defer c.release()

	c.state.Transition(appstate.Authenticating)
	logging.Info(c.log(ctx), "checking for an existing session")

	ok, err := c.api.Probe(ctx)
	switch {
	case gateway.IsAuthLost(err):
		logging.Info(c.log(ctx), "no existing session")
		return nil
	case err != nil:
		c.toUnauthenticated(view.Failure(userMessage(err)))
		return err
	case !ok:
		c.toUnauthenticated(view.Info(msgLoginRequired))
		return nil
	}

	epoch := c.state.Transition(appstate.Authenticated)
	logging.Info(c.log(ctx), "existing session detected")
	return c.enterShell(ctx, epoch, initial)
}

// Login authenticates and, on success, loads state and shows the shell.
func (c *Controller) Login(ctx context.Context, username, password string) error {
	if err := c.acquire(); err != nil {
		return err
	}
	defer c.release()

	c.state.Transition(appstate.Authenticating)
	res, err := c.api.Login(ctx, username, password)
	if err != nil {
		logging.Warn(c.log(ctx), "login failed", err, logging.FieldUser, username)
		c.toUnauthenticated(view.Failure(userMessage(err)))
		return err
	}

	epoch := c.state.SignedIn(username)
	logging.Info(c.log(ctx), "login succeeded", logging.FieldUser, username)
	if res.Message != "" {
		c.renderer.Notify(view.Info(res.Message))
	}
	return c.enterShell(ctx, epoch, view.SectionHome)
}

// Logout ends the session. Every outcome other than a transport failure
// leaves the controller Unauthenticated with an empty store.
func (c *Controller) Logout(ctx context.Context) error {
	if err := c.acquire(); err != nil {
		return err
	}
	defer c.release()

	msg, err := c.api.Logout(ctx)
	if netErr, ok := gateway.AsNetworkError(err); ok && netErr.IsTransport() {
		logging.Warn(c.log(ctx), "logout could not reach server", err)
		c.renderer.Notify(view.Failure(userMessage(err)))
		return err
	}
	if err != nil && !gateway.IsAuthLost(err) {
		logging.Warn(c.log(ctx), "logout failed on server", err)
	}

	c.store.Reset()
	c.state.Reset()
	if msg == "" {
		msg = msgLoggedOut
	}
	logging.Info(c.log(ctx), "logged out")
	c.renderer.RenderUnauthenticated()
	c.renderer.Notify(view.Info(msg))
	return nil
}

// SubmitLineup validates the selection state, submits it and reloads.
func (c *Controller) SubmitLineup(ctx context.Context, batters []lineup.Selection, pitcher lineup.Selection) error {
	if err := c.acquire(); err != nil {
		return err
	}
	defer c.release()

	epoch, err := c.requireAuth()
	if err != nil {
		return err
	}

	l, err := lineup.Validate(batters, pitcher)
	if err != nil {
		c.renderer.Notify(view.Warning(userMessage(err)))
		return err
	}
	return c.submit(ctx, epoch, l)
}

// SubmitRawLineup parses raw form values, then behaves like SubmitLineup.
func (c *Controller) SubmitRawLineup(ctx context.Context, batters []string, pitcher string) error {
	sels, p, err := lineup.ParseSelections(batters, pitcher)
	if err != nil {
		c.renderer.Notify(view.Warning(userMessage(err)))
		return err
	}
	return c.SubmitLineup(ctx, sels, p)
}

func (c *Controller) submit(ctx context.Context, epoch uint64, l domain.Lineup) error {
	msg, err := c.api.SubmitOrder(ctx, l)
	if err != nil {
		return c.actionFailed(ctx, "order submission failed", err)
	}
	logging.Info(c.log(ctx), "order accepted", logging.FieldSection, string(view.SectionOrder))

	state, err := c.store.Load(ctx)
	if err != nil {
		return c.actionFailed(ctx, "reload after order failed", fmt.Errorf("reload after order: %w", err))
	}
	c.renderIfCurrent(epoch, func() {
		c.showSection(view.SectionOrder, state)
		if msg != "" {
			c.renderer.Notify(view.Info(msg))
		}
	})
	return nil
}

// AdvanceDay simulates one game and reloads the schedule.
func (c *Controller) AdvanceDay(ctx context.Context) (domain.GameResult, error) {
	if err := c.acquire(); err != nil {
		return domain.GameResult{}, err
	}
	defer c.release()

	epoch, err := c.requireAuth()
	if err != nil {
		return domain.GameResult{}, err
	}

	result, err := c.api.SimulateGame(ctx)
	if err != nil {
		return domain.GameResult{}, c.actionFailed(ctx, "advance day failed", err)
	}
	logging.Info(c.log(ctx), "day advanced", "outcome", string(result.Outcome))

	state, err := c.store.Load(ctx)
	if err != nil {
		return result, c.actionFailed(ctx, "reload after advance failed", fmt.Errorf("reload after advance: %w", err))
	}
	c.renderIfCurrent(epoch, func() {
		c.showSection(view.SectionSchedule, state)
		c.renderer.Notify(view.Info(resultSummary(result)))
	})
	return result, nil
}

// Navigate re-checks the session before showing a protected section. The
// login section always shows the unauthenticated view.
func (c *Controller) Navigate(ctx context.Context, section view.Section) error {
	if err := c.acquire(); err != nil {
		return err
	}
	defer c.release()

	if !section.Protected() {
		c.state.SetSection(string(section))
		c.renderer.RenderUnauthenticated()
		return nil
	}

	ok, err := c.api.Probe(ctx)
	switch {
	case gateway.IsAuthLost(err):
		return err
	case err != nil:
		c.renderer.Notify(view.Failure(userMessage(err)))
		return err
	case !ok:
		c.toUnauthenticated(view.Info(msgLoginRequired))
		return ErrNotAuthenticated
	}

	epoch := c.state.Transition(appstate.Authenticated)
	c.renderer.RenderAuthenticatedShell(section)
	state, loaded := c.store.Snapshot()
	if !loaded {
		state, err = c.store.Load(ctx)
		if err != nil {
			return c.actionFailed(ctx, "load for navigation failed", err)
		}
	}
	c.renderIfCurrent(epoch, func() {
		c.showSection(section, state)
	})
	return nil
}

// Refresh reloads the snapshot and re-renders the visible section. The
// background refresher calls it; ErrBusy means a user action is running.
// Refresh never notifies: a logged-out refresh returns ErrNotAuthenticated
// silently.
func (c *Controller) Refresh(ctx context.Context) error {
	if err := c.acquire(); err != nil {
		return err
	}
	defer c.release()

	if !c.state.Authenticated() {
		return ErrNotAuthenticated
	}
	epoch := c.state.Epoch()
	state, err := c.store.Load(ctx)
	if err != nil {
		if !gateway.IsAuthLost(err) {
			logging.Warn(c.log(ctx), "refresh failed", err)
		}
		return err
	}
	c.renderIfCurrent(epoch, func() {
		section := view.Section(c.state.Section())
		if section == "" || !section.Protected() {
			section = view.SectionHome
		}
		c.renderer.RenderSection(section, state)
	})
	return nil
}

// OrderPage returns the order form data for the user's team.
func (c *Controller) OrderPage() (view.OrderPage, error) {
	if !c.state.Authenticated() {
		return view.OrderPage{}, ErrNotAuthenticated
	}
	state, err := c.store.Current()
	if err != nil {
		return view.OrderPage{}, err
	}
	page, found := view.BuildOrderPage(state, c.team)
	if !found {
		return page, fmt.Errorf("team %q not found", c.team)
	}
	return page, nil
}

// Snapshot returns the current game state when authenticated.
func (c *Controller) Snapshot() (domain.GameState, bool) {
	if !c.state.Authenticated() {
		return domain.GameState{}, false
	}
	return c.store.Snapshot()
}

// Status is a point-in-time summary of the session for display.
type Status struct {
	Phase    appstate.Phase
	User     string
	Section  string
	LoadedAt time.Time
	Loaded   bool
}

// Status reports the session phase and when game state was last loaded.
func (c *Controller) Status() Status {
	loadedAt, loaded := c.store.LoadedAt()
	return Status{
		Phase:    c.state.Phase(),
		User:     c.state.User(),
		Section:  c.state.Section(),
		LoadedAt: loadedAt,
		Loaded:   loaded,
	}
}

func (c *Controller) enterShell(ctx context.Context, epoch uint64, initial view.Section) error {
	if !initial.Protected() {
		initial = view.SectionHome
	}
	c.renderIfCurrent(epoch, func() {
		c.state.SetSection(string(initial))
		c.renderer.RenderAuthenticatedShell(initial)
	})

	state, err := c.store.Load(ctx)
	if err != nil {
		return c.actionFailed(ctx, "initial load failed", err)
	}
	c.renderIfCurrent(epoch, func() {
		c.showSection(initial, state)
	})
	return nil
}

func (c *Controller) requireAuth() (uint64, error) {
	if !c.state.Authenticated() {
		c.renderer.Notify(view.Warning(msgLoginRequired))
		return 0, ErrNotAuthenticated
	}
	return c.state.Epoch(), nil
}

// actionFailed surfaces err unless it was an auth loss, which the recovery
// transition has already shown.
func (c *Controller) actionFailed(ctx context.Context, msg string, err error) error {
	if gateway.IsAuthLost(err) {
		return err
	}
	logging.Warn(c.log(ctx), msg, err)
	c.renderer.Notify(view.Failure(userMessage(err)))
	return err
}

func (c *Controller) toUnauthenticated(n view.Notice) {
	c.state.MarkUnauthenticated()
	c.renderer.RenderUnauthenticated()
	c.renderer.Notify(n)
}

func (c *Controller) showSection(section view.Section, state domain.GameState) {
	c.state.SetSection(string(section))
	c.renderer.RenderSection(section, state)
}

// renderIfCurrent drops view updates from work that started before the last
// authentication transition.
func (c *Controller) renderIfCurrent(epoch uint64, fn func()) {
	if c.state.Epoch() != epoch || !c.state.Authenticated() {
		logging.Debug(c.logger, "discarding stale view update")
		return
	}
	fn()
}

func (c *Controller) log(ctx context.Context) *slog.Logger {
	logger := logging.FromContext(ctx, c.logger)
	if logger == nil {
		return nil
	}
	return logger.With(logging.FieldPhase, c.state.Phase().String())
}
