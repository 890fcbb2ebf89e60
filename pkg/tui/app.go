// Package tui is the terminal UI: a navigation host keeping a stack of
// screens for the contacts and contas records.
package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/pocketbook/backend/internal/types"
	"github.com/pocketbook/backend/pkg/datasource"
	"github.com/pocketbook/backend/pkg/models"
	"github.com/rs/zerolog/log"
)

// Deps are the stores the screens work on.
type Deps struct {
	Contacts  datasource.Store[models.Contact]
	Contas    datasource.Store[models.Conta]
	Simulator *datasource.Simulator

	// Today returns the current date. Defaults to types.Today.
	Today func() types.Date
}

func (d Deps) today() types.Date {
	if d.Today == nil {
		return types.Today()
	}
	return d.Today()
}

// do runs fn through the simulator.
func (d Deps) do(ctx context.Context, op datasource.Operation, fn func(ctx context.Context) error) error {
	return d.Simulator.Do(ctx, op, func() error {
		return fn(ctx)
	})
}

// Screen is a single destination on the navigation stack.
type Screen interface {
	ID() string
	Route() Route
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View() string
	Help() []key.Binding

	// Close is called when the screen leaves the stack. It cancels all
	// pending commands of the screen.
	Close()
}

// base holds what all screens share.
type base struct {
	id     string
	route  Route
	deps   Deps
	ctx    context.Context
	cancel context.CancelFunc
}

func newBase(ctx context.Context, deps Deps, route Route) base {
	ctx, cancel := context.WithCancel(ctx)
	return base{
		id:     uuid.NewString(),
		route:  route,
		deps:   deps,
		ctx:    ctx,
		cancel: cancel,
	}
}

func (b *base) ID() string {
	return b.id
}

func (b *base) Route() Route {
	return b.route
}

func (b *base) Close() {
	b.cancel()
}

func (b *base) target() target {
	return target{id: b.id}
}

// cancelled reports whether err is the result of the screen being closed.
func (b *base) cancelled(err error) bool {
	return errors.Is(err, context.Canceled) && b.ctx.Err() != nil
}

// App is the navigation host.
type App struct {
	ctx   context.Context
	deps  Deps
	start Route
	stack []Screen
	help  help.Model
}

// New returns the host showing start first. Closing ctx cancels all
// pending store access.
func New(ctx context.Context, deps Deps, start Route) *App {
	return &App{
		ctx:   ctx,
		deps:  deps,
		start: start,
		help:  help.New(),
	}
}

func (a *App) Init() tea.Cmd {
	return a.push(a.start)
}

// Routes returns the routes on the stack, the top last.
func (a *App) Routes() []Route {
	routes := make([]Route, 0, len(a.stack))
	for _, s := range a.stack {
		routes = append(routes, s.Route())
	}
	return routes
}

// Top returns the visible screen, nil once the last screen is popped.
func (a *App) Top() Screen {
	if len(a.stack) == 0 {
		return nil
	}
	return a.stack[len(a.stack)-1]
}

func (a *App) newScreen(r Route) Screen {
	switch r.Destination {
	case ContactDetails:
		return newContactDetails(a.ctx, a.deps, r)
	case ContactForm:
		return newContactForm(a.ctx, a.deps, r)
	case ContasList:
		return newContasList(a.ctx, a.deps, r)
	case ContaForm:
		return newContaForm(a.ctx, a.deps, r)
	}
	return newContactsList(a.ctx, a.deps, Route{Destination: ContactsList})
}

func (a *App) push(r Route) tea.Cmd {
	log.Debug().Str("route", r.String()).Msg("navigate")

	s := a.newScreen(r)
	a.stack = append(a.stack, s)
	return s.Init()
}

func (a *App) pop() {
	top := a.Top()
	if top == nil {
		return
	}

	top.Close()
	a.stack = a.stack[:len(a.stack)-1]
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return a, a.quit()
		}

	case tea.WindowSizeMsg:
		a.help.Width = msg.Width

	case NavigateMsg:
		return a, a.push(msg.Route)

	case BackMsg:
		a.pop()
		if a.Top() == nil {
			return a, tea.Quit
		}
		return a, a.update(len(a.stack)-1, resumedMsg{})

	case NavigateToListMsg:
		for a.Top() != nil {
			a.pop()
		}
		return a, a.push(msg.Route)

	case screenMsg:
		for i, s := range a.stack {
			if s.ID() == msg.screenID() {
				return a, a.update(i, msg)
			}
		}
		// The screen is gone
		return a, nil
	}

	if a.Top() == nil {
		return a, nil
	}
	return a, a.update(len(a.stack)-1, msg)
}

func (a *App) update(i int, msg tea.Msg) tea.Cmd {
	s, cmd := a.stack[i].Update(msg)
	a.stack[i] = s
	return cmd
}

func (a *App) quit() tea.Cmd {
	for a.Top() != nil {
		a.pop()
	}
	return tea.Quit
}

func (a *App) View() string {
	top := a.Top()
	if top == nil {
		return ""
	}

	return top.View() + "\n" + helpStyle.Render(a.help.ShortHelpView(top.Help()))
}
