package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pocketbook/backend/pkg/datasource"
	"github.com/pocketbook/backend/pkg/format"
	"github.com/pocketbook/backend/pkg/forms"
	"github.com/pocketbook/backend/pkg/models"
	"github.com/rs/zerolog/log"
)

// Fields of the contact form in focus order.
const (
	contactFieldFirstName = iota
	contactFieldLastName
	contactFieldPhone
	contactFieldEmail
	contactFieldBirthDate
	contactFieldNetWorth
	contactFieldFavorite
	contactFieldType
	contactFieldCount
)

// contactInputs is the number of fields edited with a text input, the
// remaining fields are toggles.
const contactInputs = contactFieldFavorite

type contactSavedMsg struct {
	target
	contact models.Contact
	err     error
}

type contactForm struct {
	base

	form            *forms.ContactForm
	isLoading       bool
	hasErrorLoading bool
	isSaving        bool
	hasErrorSaving  bool
	contactSaved    bool

	inputs []textinput.Model
	focus  int
}

func newTextInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = ""
	in.CharLimit = limit
	in.Width = 32
	in.Cursor.SetMode(cursor.CursorStatic)
	return in
}

func newContactForm(ctx context.Context, deps Deps, route Route) *contactForm {
	s := &contactForm{
		base: newBase(ctx, deps, route),
		form: forms.NewContactForm(route.ID, deps.today()),
		inputs: []textinput.Model{
			contactFieldFirstName: newTextInput("Ana", 64),
			contactFieldLastName:  newTextInput("Cordeiro", 64),
			contactFieldPhone:     newTextInput("55988887777", 0),
			contactFieldEmail:     newTextInput("ana@example.com", 128),
			contactFieldBirthDate: newTextInput("YYYY-MM-DD", 10),
			contactFieldNetWorth:  newTextInput("0.00", 20),
		},
	}
	s.syncInputs()
	s.inputs[contactFieldFirstName].Focus()
	return s
}

// syncInputs copies the form values into the text inputs.
func (s *contactForm) syncInputs() {
	s.inputs[contactFieldFirstName].SetValue(s.form.FirstName.Value)
	s.inputs[contactFieldLastName].SetValue(s.form.LastName.Value)
	s.inputs[contactFieldPhone].SetValue(s.form.Phone.Value)
	s.inputs[contactFieldEmail].SetValue(s.form.Email.Value)
	s.inputs[contactFieldBirthDate].SetValue(s.form.BirthDate.Value.String())
	s.inputs[contactFieldNetWorth].SetValue(s.form.NetWorth.Value)
}

func (s *contactForm) Init() tea.Cmd {
	if s.form.IsNew() {
		return nil
	}
	return s.load()
}

func (s *contactForm) load() tea.Cmd {
	s.isLoading = true
	s.hasErrorLoading = false

	t, ctx, deps, id := s.target(), s.ctx, s.deps, s.form.ContactID
	return func() tea.Msg {
		var c models.Contact
		err := deps.do(ctx, datasource.OperationLoad, func(ctx context.Context) (err error) {
			c, err = deps.Contacts.FindByID(ctx, id)
			return
		})
		return contactLoadedMsg{target: t, contact: c, err: err}
	}
}

func (s *contactForm) save() tea.Cmd {
	if !s.form.Validate() {
		return nil
	}

	s.isSaving = true
	s.hasErrorSaving = false

	t, ctx, deps, c := s.target(), s.ctx, s.deps, s.form.Contact()
	return func() tea.Msg {
		var saved models.Contact
		err := deps.do(ctx, datasource.OperationSave, func(ctx context.Context) (err error) {
			saved, err = deps.Contacts.Save(ctx, c)
			return
		})
		return contactSavedMsg{target: t, contact: saved, err: err}
	}
}

func (s *contactForm) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case contactLoadedMsg:
		if s.cancelled(msg.err) {
			return s, nil
		}

		s.isLoading = false
		if msg.err != nil {
			s.hasErrorLoading = true
			return s, nil
		}
		s.form.Load(msg.contact)
		s.syncInputs()
		return s, nil

	case contactSavedMsg:
		if s.cancelled(msg.err) {
			return s, nil
		}

		s.isSaving = false
		if msg.err != nil {
			log.Error().Err(msg.err).Msg("saving contact")
			s.hasErrorSaving = true
			return s, nil
		}
		s.contactSaved = true
		return s, Back()

	case tea.KeyMsg:
		return s, s.handleKey(msg)
	}

	return s, nil
}

func (s *contactForm) setFocus(i int) {
	if s.focus < contactInputs {
		s.inputs[s.focus].Blur()
	}

	s.focus = (i + contactFieldCount) % contactFieldCount
	if s.focus < contactInputs {
		s.inputs[s.focus].Focus()
	}
}

func (s *contactForm) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, formBack) {
		return Back()
	}

	if s.isLoading || s.isSaving {
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
	case key.Matches(msg, keys.Next):
		s.setFocus(s.focus + 1)
		return nil
	case key.Matches(msg, keys.Prev):
		s.setFocus(s.focus - 1)
		return nil
	}

	switch s.focus {
	case contactFieldFavorite:
		if key.Matches(msg, keys.Toggle) {
			s.form.SetFavorite(!s.form.IsFavorite.Value)
		}
		return nil
	case contactFieldType:
		if key.Matches(msg, keys.Toggle) {
			if s.form.Type.Value == models.ContactTypePersonal {
				s.form.SetType(models.ContactTypeProfessional)
			} else {
				s.form.SetType(models.ContactTypePersonal)
			}
		}
		return nil
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	s.apply(s.focus)
	return cmd
}

// apply passes the text of an input to the form.
func (s *contactForm) apply(field int) {
	value := s.inputs[field].Value()

	switch field {
	case contactFieldFirstName:
		s.form.SetFirstName(value)
	case contactFieldLastName:
		s.form.SetLastName(value)
	case contactFieldPhone:
		s.form.SetPhone(value)
		// Only digits are kept
		if value != s.form.Phone.Value {
			s.inputs[field].SetValue(s.form.Phone.Value)
		}
	case contactFieldEmail:
		s.form.SetEmail(value)
	case contactFieldBirthDate:
		s.form.SetBirthDateInput(value)
	case contactFieldNetWorth:
		s.form.SetNetWorth(value)
	}
}

func (s *contactForm) row(field int, label, value string, code forms.ErrorCode) string {
	prefix := "  "
	if s.focus == field {
		prefix = "> "
	}
	return prefix + lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value) + fieldError(code) + "\n"
}

func (s *contactForm) View() string {
	var b strings.Builder

	title := "New contact"
	if !s.form.IsNew() {
		title = "Edit contact"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	switch {
	case s.isLoading:
		b.WriteString(mutedStyle.Render("Loading contact..."))
		return b.String()
	case s.hasErrorLoading:
		b.WriteString(errorStyle.Render("The contact could not be loaded."))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("Press r to try again."))
		return b.String()
	}

	f := s.form
	phone := s.inputs[contactFieldPhone].View()
	if f.Phone.Value != "" {
		phone += mutedStyle.Render("  " + format.Phone(f.Phone.Value))
	}

	b.WriteString(s.row(contactFieldFirstName, "First name", s.inputs[contactFieldFirstName].View(), f.FirstName.ErrorCode))
	b.WriteString(s.row(contactFieldLastName, "Last name", s.inputs[contactFieldLastName].View(), f.LastName.ErrorCode))
	b.WriteString(s.row(contactFieldPhone, "Phone", phone, f.Phone.ErrorCode))
	b.WriteString(s.row(contactFieldEmail, "E-Mail", s.inputs[contactFieldEmail].View(), f.Email.ErrorCode))
	b.WriteString(s.row(contactFieldBirthDate, "Birth date", s.inputs[contactFieldBirthDate].View(), f.BirthDate.ErrorCode))
	b.WriteString(s.row(contactFieldNetWorth, "Net worth", s.inputs[contactFieldNetWorth].View(), f.NetWorth.ErrorCode))
	b.WriteString(s.row(contactFieldFavorite, "Favorite", favoriteMark(f.IsFavorite.Value), f.IsFavorite.ErrorCode))
	b.WriteString(s.row(contactFieldType, "Type", string(f.Type.Value), f.Type.ErrorCode))

	if s.isSaving {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("Saving..."))
	}

	if s.hasErrorSaving {
		b.WriteString("\n")
		b.WriteString(snackbarStyle.Render("The contact could not be saved, press ctrl+s to try again."))
	}

	return b.String()
}

func (s *contactForm) Help() []key.Binding {
	bindings := []key.Binding{keys.Next, keys.Prev, keys.Save, formBack}
	if s.focus >= contactInputs {
		bindings = append([]key.Binding{keys.Toggle}, bindings...)
	}
	return bindings
}
