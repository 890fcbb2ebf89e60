package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pocketbook/backend/pkg/datasource"
	"github.com/pocketbook/backend/pkg/forms"
	"github.com/pocketbook/backend/pkg/models"
	"github.com/rs/zerolog/log"
)

// Fields of the conta form in focus order.
const (
	contaFieldDescription = iota
	contaFieldDate
	contaFieldAmount
	contaFieldPaid
	contaFieldType
	contaFieldCount
)

const contaInputs = contaFieldPaid

// messageCode selects the transient message shown by the conta form.
type messageCode int

const (
	messageNone messageCode = iota
	messageSaveFailed
	messageDeleteFailed
)

func (c messageCode) String() string {
	switch c {
	case messageSaveFailed:
		return "The conta could not be saved, press ctrl+s to try again."
	case messageDeleteFailed:
		return "The conta could not be deleted, please try again."
	}
	return ""
}

type contaLoadedMsg struct {
	target
	conta models.Conta
	err   error
}

type contaSavedMsg struct {
	target
	err error
}

type contaDeletedMsg struct {
	target
	err error
}

type messageShownMsg struct {
	target
}

type contaForm struct {
	base

	form                   *forms.ContaForm
	isLoading              bool
	hasErrorLoading        bool
	isSaving               bool
	showConfirmationDialog bool
	isDeleting             bool
	persistedOrRemoved     bool
	message                messageCode

	inputs []textinput.Model
	focus  int
}

func newContaForm(ctx context.Context, deps Deps, route Route) *contaForm {
	s := &contaForm{
		base: newBase(ctx, deps, route),
		form: forms.NewContaForm(route.ID, deps.today()),
		inputs: []textinput.Model{
			contaFieldDescription: newTextInput("Electricity bill", 128),
			contaFieldDate:        newTextInput("YYYY-MM-DD", 10),
			contaFieldAmount:      newTextInput("189.90", 20),
		},
	}
	s.syncInputs()
	s.inputs[contaFieldDescription].Focus()
	return s
}

func (s *contaForm) syncInputs() {
	s.inputs[contaFieldDescription].SetValue(s.form.Description.Value)
	s.inputs[contaFieldDate].SetValue(s.form.Date.Value)
	s.inputs[contaFieldAmount].SetValue(s.form.Amount.Value)
}

func (s *contaForm) Init() tea.Cmd {
	if s.form.IsNew() {
		return nil
	}
	return s.load()
}

func (s *contaForm) load() tea.Cmd {
	s.isLoading = true
	s.hasErrorLoading = false

	t, ctx, deps, id := s.target(), s.ctx, s.deps, s.form.ContaID
	return func() tea.Msg {
		var c models.Conta
		err := deps.do(ctx, datasource.OperationLoad, func(ctx context.Context) (err error) {
			c, err = deps.Contas.FindByID(ctx, id)
			return
		})
		return contaLoadedMsg{target: t, conta: c, err: err}
	}
}

func (s *contaForm) save() tea.Cmd {
	if !s.form.Validate() {
		return nil
	}

	s.isSaving = true
	s.message = messageNone

	t, ctx, deps, c := s.target(), s.ctx, s.deps, s.form.Conta()
	return func() tea.Msg {
		err := deps.do(ctx, datasource.OperationSave, func(ctx context.Context) error {
			_, err := deps.Contas.Save(ctx, c)
			return err
		})
		return contaSavedMsg{target: t, err: err}
	}
}

func (s *contaForm) delete() tea.Cmd {
	s.showConfirmationDialog = false
	s.isDeleting = true
	s.message = messageNone

	t, ctx, deps, id := s.target(), s.ctx, s.deps, s.form.ContaID
	return func() tea.Msg {
		err := deps.do(ctx, datasource.OperationDelete, func(ctx context.Context) error {
			return deps.Contas.Delete(ctx, id)
		})
		return contaDeletedMsg{target: t, err: err}
	}
}

// showMessage displays the message until snackbarDuration passed.
func (s *contaForm) showMessage(code messageCode) tea.Cmd {
	s.message = code

	t := s.target()
	return tea.Tick(snackbarDuration, func(time.Time) tea.Msg {
		return messageShownMsg{target: t}
	})
}

func (s *contaForm) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case contaLoadedMsg:
		if s.cancelled(msg.err) {
			return s, nil
		}

		s.isLoading = false
		if msg.err != nil {
			s.hasErrorLoading = true
			return s, nil
		}
		s.form.Load(msg.conta)
		s.syncInputs()
		return s, nil

	case contaSavedMsg:
		if s.cancelled(msg.err) {
			return s, nil
		}

		s.isSaving = false
		if msg.err != nil {
			log.Error().Err(msg.err).Msg("saving conta")
			return s, s.showMessage(messageSaveFailed)
		}
		s.persistedOrRemoved = true
		return s, Back()

	case contaDeletedMsg:
		if s.cancelled(msg.err) {
			return s, nil
		}

		s.isDeleting = false
		if msg.err != nil {
			log.Error().Err(msg.err).Msg("deleting conta")
			return s, s.showMessage(messageDeleteFailed)
		}
		s.persistedOrRemoved = true
		return s, Back()

	case messageShownMsg:
		s.message = messageNone
		return s, nil

	case tea.KeyMsg:
		return s, s.handleKey(msg)
	}

	return s, nil
}

func (s *contaForm) setFocus(i int) {
	if s.focus < contaInputs {
		s.inputs[s.focus].Blur()
	}

	s.focus = (i + contaFieldCount) % contaFieldCount
	if s.focus < contaInputs {
		s.inputs[s.focus].Focus()
	}
}

func (s *contaForm) handleKey(msg tea.KeyMsg) tea.Cmd {
	if s.showConfirmationDialog {
		switch {
		case key.Matches(msg, keys.Confirm):
			return s.delete()
		case key.Matches(msg, keys.Cancel):
			s.showConfirmationDialog = false
		}
		return nil
	}

	if key.Matches(msg, formBack) {
		return Back()
	}

	if s.isLoading || s.isSaving || s.isDeleting {
		return nil
	}

	if s.hasErrorLoading {
		if key.Matches(msg, keys.Refresh) {
			return s.load()
		}
		return nil
	}

	switch {
	case key.Matches(msg, keys.Save):
		return s.save()
	case key.Matches(msg, keys.Remove):
		if !s.form.IsNew() {
			s.showConfirmationDialog = true
		}
		return nil
	case key.Matches(msg, keys.Next):
		s.setFocus(s.focus + 1)
		return nil
	case key.Matches(msg, keys.Prev):
		s.setFocus(s.focus - 1)
		return nil
	}

	switch s.focus {
	case contaFieldPaid:
		if key.Matches(msg, keys.Toggle) {
			s.form.TogglePaid()
		}
		return nil
	case contaFieldType:
		if key.Matches(msg, keys.Toggle) {
			s.form.ToggleType()
		}
		return nil
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)

	value := s.inputs[s.focus].Value()
	switch s.focus {
	case contaFieldDescription:
		s.form.SetDescription(value)
	case contaFieldDate:
		s.form.SetDate(value)
	case contaFieldAmount:
		s.form.SetAmount(value)
	}
	return cmd
}

func (s *contaForm) row(field int, label, value string, code forms.ErrorCode) string {
	prefix := "  "
	if s.focus == field {
		prefix = "> "
	}
	return prefix + lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value) + fieldError(code) + "\n"
}

func (s *contaForm) View() string {
	var b strings.Builder

	title := "New conta"
	if !s.form.IsNew() {
		title = "Edit conta"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	switch {
	case s.isLoading:
		b.WriteString(mutedStyle.Render("Loading conta..."))
		return b.String()
	case s.hasErrorLoading:
		b.WriteString(errorStyle.Render("The conta could not be loaded."))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("Press r to try again."))
		return b.String()
	}

	f := s.form
	paid := "No"
	if f.Paid.Value == "true" {
		paid = "Yes"
	}

	b.WriteString(s.row(contaFieldDescription, "Description", s.inputs[contaFieldDescription].View(), f.Description.ErrorCode))
	b.WriteString(s.row(contaFieldDate, "Date", s.inputs[contaFieldDate].View(), f.Date.ErrorCode))
	b.WriteString(s.row(contaFieldAmount, "Amount", s.inputs[contaFieldAmount].View(), f.Amount.ErrorCode))
	b.WriteString(s.row(contaFieldPaid, "Paid", paid, f.Paid.ErrorCode))
	b.WriteString(s.row(contaFieldType, "Type", f.Type.Value, f.Type.ErrorCode))

	switch {
	case s.isSaving:
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("Saving..."))
	case s.isDeleting:
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("Deleting..."))
	}

	if s.showConfirmationDialog {
		b.WriteString("\n")
		b.WriteString(dialogStyle.Render("Delete this conta?\n(y)es / (n)o"))
	}

	if s.message != messageNone {
		b.WriteString("\n")
		b.WriteString(snackbarStyle.Render(s.message.String()))
	}

	return b.String()
}

func (s *contaForm) Help() []key.Binding {
	if s.showConfirmationDialog {
		return []key.Binding{keys.Confirm, keys.Cancel}
	}

	bindings := []key.Binding{keys.Next, keys.Prev, keys.Save}
	if !s.form.IsNew() {
		bindings = append(bindings, keys.Remove)
	}
	if s.focus >= contaInputs {
		bindings = append([]key.Binding{keys.Toggle}, bindings...)
	}
	return append(bindings, formBack)
}
