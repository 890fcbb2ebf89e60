package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pocketbook/backend/pkg/datasource"
	"github.com/pocketbook/backend/pkg/format"
	"github.com/pocketbook/backend/pkg/models"
	"github.com/pocketbook/backend/pkg/summary"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type contasLoadedMsg struct {
	target
	contas []models.Conta
	err    error
}

// contasUpdatedMsg carries the records of a store change.
type contasUpdatedMsg struct {
	target
	contas []models.Conta
}

type contasList struct {
	base

	isLoading bool
	hasError  bool
	contas    []models.Conta
	cursor    int

	updates     chan []models.Conta
	unsubscribe func()
}

func newContasList(ctx context.Context, deps Deps, route Route) *contasList {
	return &contasList{
		base:    newBase(ctx, deps, route),
		updates: make(chan []models.Conta, 1),
	}
}

func (s *contasList) Init() tea.Cmd {
	updates := s.updates
	s.unsubscribe = s.deps.Contas.Subscribe(func(contas []models.Conta) {
		// Keep only the latest snapshot, the screen may be busy
		for {
			select {
			case updates <- contas:
				return
			default:
			}

			select {
			case <-updates:
			default:
			}
		}
	})

	return tea.Batch(s.load(), s.waitForUpdate())
}

// Close removes the store observer before cancelling pending commands.
func (s *contasList) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
	s.base.Close()
}

func (s *contasList) waitForUpdate() tea.Cmd {
	t, ctx, updates := s.target(), s.ctx, s.updates
	return func() tea.Msg {
		select {
		case contas := <-updates:
			return contasUpdatedMsg{target: t, contas: contas}
		case <-ctx.Done():
			return nil
		}
	}
}

func (s *contasList) load() tea.Cmd {
	s.isLoading = true
	s.hasError = false

	t, ctx, deps := s.target(), s.ctx, s.deps
	return func() tea.Msg {
		var contas []models.Conta
		err := deps.do(ctx, datasource.OperationLoad, func(ctx context.Context) (err error) {
			contas, err = deps.Contas.FindAll(ctx)
			return
		})
		return contasLoadedMsg{target: t, contas: contas, err: err}
	}
}

func (s *contasList) setContas(contas []models.Conta) {
	s.contas = contas
	s.cursor = min(s.cursor, max(len(contas)-1, 0))
}

func (s *contasList) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case contasLoadedMsg:
		if s.cancelled(msg.err) {
			return s, nil
		}

		s.isLoading = false
		if msg.err != nil {
			log.Error().Err(msg.err).Msg("loading contas")
			s.hasError = true
			return s, nil
		}
		s.setContas(msg.contas)
		return s, nil

	case contasUpdatedMsg:
		s.setContas(msg.contas)
		return s, s.waitForUpdate()

	case tea.KeyMsg:
		return s, s.handleKey(msg)
	}

	return s, nil
}

func (s *contasList) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Back):
		return Back()
	case key.Matches(msg, keys.Switch):
		return NavigateToList(Route{Destination: ContactsList})
	}

	if s.isLoading {
		return nil
	}

	switch {
	case key.Matches(msg, keys.Refresh):
		return s.load()
	case key.Matches(msg, keys.Add):
		return Navigate(Route{Destination: ContaForm})
	case key.Matches(msg, keys.Up):
		s.cursor = max(s.cursor-1, 0)
	case key.Matches(msg, keys.Down):
		s.cursor = min(s.cursor+1, max(len(s.contas)-1, 0))
	case key.Matches(msg, keys.Open):
		if s.cursor < len(s.contas) {
			return Navigate(Route{Destination: ContaForm, ID: s.contas[s.cursor].ID})
		}
	}
	return nil
}

func (s *contasList) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Contas"))
	b.WriteString("\n")

	switch {
	case s.isLoading:
		b.WriteString(mutedStyle.Render("Loading contas..."))
		return b.String()
	case s.hasError:
		b.WriteString(errorStyle.Render("The contas could not be loaded."))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("Press r to try again."))
		return b.String()
	case len(s.contas) == 0:
		b.WriteString(mutedStyle.Render("No contas yet. Press a to add one."))
		b.WriteString("\n")
	}

	for i, c := range s.contas {
		paid := mutedStyle.Render("○")
		if c.Paid {
			paid = incomeStyle.Render("●")
		}

		amountStyle := incomeStyle
		if c.Type == models.ContaTypeExpense {
			amountStyle = expenseStyle
		}

		line := fmt.Sprintf("%s %s  %-28s %14s", paid, format.Date(c.Date), c.Description, amountStyle.Render(format.Currency(c.SignedAmount())))
		if i == s.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	totals := summary.Summarize(s.contas)
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render("Balance"), amountView(totals.Balance)))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render("Projection"), amountView(totals.Projection)))

	return b.String()
}

func (s *contasList) Help() []key.Binding {
	if s.hasError {
		return []key.Binding{keys.Refresh, keys.Switch, keys.Back}
	}
	return []key.Binding{keys.Up, keys.Down, keys.Open, keys.Add, keys.Refresh, keys.Switch, keys.Back}
}

// amountView renders a total, red when negative.
func amountView(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return expenseStyle.Render(format.Currency(amount))
	}
	return incomeStyle.Render(format.Currency(amount))
}
