package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/dugout/internal/appstate"
	"github.com/preston-bernstein/dugout/internal/domain"
	"github.com/preston-bernstein/dugout/internal/lineup"
	"github.com/preston-bernstein/dugout/internal/logging"
	"github.com/preston-bernstein/dugout/internal/refresher"
	"github.com/preston-bernstein/dugout/internal/session"
	"github.com/preston-bernstein/dugout/internal/view"
)

const helpText = `commands:
  login <username> <password>
  logout
  show <home|order|schedule|login>
  order                          (show the form prefilled with the current order)
  order <b1,b2,...,b9> <pitcher>
  advance
  status
  export
  help
  quit
`

// Controller is the session surface the console drives.
type Controller interface {
	State() *appstate.State
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
	Navigate(ctx context.Context, section view.Section) error
	SubmitRawLineup(ctx context.Context, batters []string, pitcher string) error
	AdvanceDay(ctx context.Context) (domain.GameResult, error)
	Snapshot() (domain.GameState, bool)
	OrderPage() (view.OrderPage, error)
	Status() session.Status
}

// RefreshMonitor reports background refresh health.
type RefreshMonitor interface {
	Status() refresher.Status
}

// Exporter writes a snapshot for a user and returns where it went.
type Exporter interface {
	Write(user string, state domain.GameState) (string, error)
}

// Console reads commands line by line and dispatches them to the controller.
type Console struct {
	ctrl     Controller
	exporter Exporter
	refresh  RefreshMonitor
	out      io.Writer
	logger   *slog.Logger
}

// New constructs a console. exporter may be nil to disable exports.
func New(ctrl Controller, exporter Exporter, out io.Writer, logger *slog.Logger) *Console {
	return &Console{ctrl: ctrl, exporter: exporter, out: out, logger: logger}
}

// SetRefreshMonitor makes the status command report refresher health.
func (c *Console) SetRefreshMonitor(m RefreshMonitor) {
	c.refresh = m
}

// Run processes commands from in until EOF, quit, or ctx cancellation.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		if ctx.Err() != nil {
			return nil
		}
		c.printf("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		if quit := c.Exec(ctx, scanner.Text()); quit {
			return nil
		}
	}
}

// Exec runs one command line and reports whether the console should exit.
// Failures the controller already surfaced through the renderer are not
// printed again.
func (c *Console) Exec(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	logging.Debug(c.logger, "console command", "command", cmd)

	var err error
	switch cmd {
	case "quit", "exit":
		return true
	case "help", "?":
		c.printf("%s", helpText)
	case "login":
		if len(args) != 2 {
			c.usage("login <username> <password>")
			return false
		}
		err = c.ctrl.Login(ctx, args[0], args[1])
	case "logout":
		err = c.ctrl.Logout(ctx)
	case "show":
		err = c.show(ctx, args)
	case "order":
		err = c.order(ctx, args)
	case "advance":
		_, err = c.ctrl.AdvanceDay(ctx)
	case "export":
		err = c.export()
	case "status":
		c.status()
	default:
		c.printf("unknown command %q (try help)\n", cmd)
	}
	if errors.Is(err, session.ErrBusy) {
		c.printf("another action is still running\n")
	}
	return false
}

func (c *Console) show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		c.usage("show <home|order|schedule|login>")
		return nil
	}
	section, ok := view.ParseSection(args[0])
	if !ok {
		c.printf("unknown section %q\n", args[0])
		return nil
	}
	return c.ctrl.Navigate(ctx, section)
}

func (c *Console) order(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return c.orderForm()
	}
	if len(args) != 2 {
		c.usage("order <b1,b2,...,b9> <pitcher>")
		return nil
	}
	return c.ctrl.SubmitRawLineup(ctx, strings.Split(args[0], ","), args[1])
}

// orderForm prints the order page and a command line prefilled with the
// current lineup, ready to edit.
func (c *Console) orderForm() error {
	page, err := c.ctrl.OrderPage()
	if err != nil {
		c.printf("order form unavailable: %v\n", err)
		return err
	}
	var b strings.Builder
	writeOrderPage(&b, page)
	c.printf("%s", b.String())
	if page.Current != nil {
		batters, pitcher := lineup.FromLineup(*page.Current)
		c.printf("resubmit with: order %s\n", formatSelections(batters, pitcher))
	}
	return nil
}

func formatSelections(batters []lineup.Selection, pitcher lineup.Selection) string {
	slots := make([]string, 0, len(batters))
	for _, sel := range batters {
		slots = append(slots, selectionText(sel))
	}
	return strings.Join(slots, ",") + " " + selectionText(pitcher)
}

func selectionText(sel lineup.Selection) string {
	if !sel.Set {
		return ""
	}
	return strconv.Itoa(int(sel.ID))
}

func (c *Console) status() {
	st := c.ctrl.Status()
	c.printf("session: %s\n", st.Phase)
	if st.User != "" {
		c.printf("user: %s\n", st.User)
	}
	if st.Loaded {
		c.printf("game state loaded: %s\n", st.LoadedAt.Format(time.RFC3339))
	} else {
		c.printf("game state loaded: never\n")
	}
	if c.refresh == nil {
		c.printf("background refresh: off\n")
		return
	}
	rs := c.refresh.Status()
	health := "healthy"
	if !rs.Healthy() {
		health = fmt.Sprintf("failing (%d in a row: %s)", rs.ConsecutiveFailures, rs.LastError)
	}
	c.printf("background refresh: %s, %d skipped\n", health, rs.Skipped)
}

func (c *Console) export() error {
	if c.exporter == nil {
		c.printf("export is not configured\n")
		return nil
	}
	state, ok := c.ctrl.Snapshot()
	if !ok {
		c.printf("nothing to export; log in first\n")
		return session.ErrNotAuthenticated
	}
	path, err := c.exporter.Write(c.ctrl.State().User(), state)
	if err != nil {
		logging.Warn(c.logger, "export failed", err)
		c.printf("export failed: %v\n", err)
		return err
	}
	logging.Info(c.logger, "exported game state", "path", path)
	c.printf("exported to %s\n", path)
	return nil
}

func (c *Console) usage(text string) {
	c.printf("usage: %s\n", text)
}

func (c *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}
