package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pocketbook/backend/pkg/datasource"
	"github.com/pocketbook/backend/pkg/format"
	"github.com/pocketbook/backend/pkg/models"
	"github.com/rs/zerolog/log"
)

// snackbarDuration is how long transient error messages are shown.
const snackbarDuration = 3 * time.Second

type contactLoadedMsg struct {
	target
	contact models.Contact
	err     error
}

type contactDeletedMsg struct {
	target
	err error
}

type snackbarTimeoutMsg struct {
	target
}

type contactDetails struct {
	base

	isLoading              bool
	hasErrorLoading        bool
	contact                models.Contact
	showConfirmationDialog bool
	isDeleting             bool
	hasErrorDeleting       bool
}

func newContactDetails(ctx context.Context, deps Deps, route Route) *contactDetails {
	return &contactDetails{base: newBase(ctx, deps, route)}
}

func (s *contactDetails) Init() tea.Cmd {
	return s.load()
}

func (s *contactDetails) load() tea.Cmd {
	s.isLoading = true
	s.hasErrorLoading = false

	t, ctx, deps, id := s.target(), s.ctx, s.deps, s.route.ID
	return func() tea.Msg {
		var c models.Contact
		err := deps.do(ctx, datasource.OperationLoad, func(ctx context.Context) (err error) {
			c, err = deps.Contacts.FindByID(ctx, id)
			return
		})
		return contactLoadedMsg{target: t, contact: c, err: err}
	}
}

func (s *contactDetails) toggleFavorite() tea.Cmd {
	t, ctx, deps, c := s.target(), s.ctx, s.deps, s.contact
	c.IsFavorite = !c.IsFavorite

	return func() tea.Msg {
		var saved models.Contact
		err := deps.do(ctx, datasource.OperationToggle, func(ctx context.Context) (err error) {
			saved, err = deps.Contacts.Save(ctx, c)
			return
		})
		return contactLoadedMsg{target: t, contact: saved, err: err}
	}
}

func (s *contactDetails) delete() tea.Cmd {
	s.showConfirmationDialog = false
	s.isDeleting = true
	s.hasErrorDeleting = false

	t, ctx, deps, id := s.target(), s.ctx, s.deps, s.contact.ID
	return func() tea.Msg {
		err := deps.do(ctx, datasource.OperationDelete, func(ctx context.Context) error {
			return deps.Contacts.Delete(ctx, id)
		})
		return contactDeletedMsg{target: t, err: err}
	}
}

func (s *contactDetails) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case contactLoadedMsg:
		if s.cancelled(msg.err) {
			return s, nil
		}

		s.isLoading = false
		if msg.err != nil {
			if !errors.Is(msg.err, models.ErrResourceNotFound) {
				log.Error().Err(msg.err).Int("id", s.route.ID).Msg("loading contact")
			}
			s.hasErrorLoading = true
			return s, nil
		}
		s.contact = msg.contact
		return s, nil

	case contactDeletedMsg:
		if s.cancelled(msg.err) {
			return s, nil
		}

		s.isDeleting = false
		if msg.err != nil {
			s.hasErrorDeleting = true
			t := s.target()
			return s, tea.Tick(snackbarDuration, func(time.Time) tea.Msg {
				return snackbarTimeoutMsg{target: t}
			})
		}
		return s, NavigateToList(Route{Destination: ContactsList})

	case snackbarTimeoutMsg:
		s.hasErrorDeleting = false
		return s, nil

	case resumedMsg:
		return s, s.load()

	case tea.KeyMsg:
		return s, s.handleKey(msg)
	}

	return s, nil
}

func (s *contactDetails) handleKey(msg tea.KeyMsg) tea.Cmd {
	if s.showConfirmationDialog {
		switch {
		case key.Matches(msg, keys.Confirm):
			return s.delete()
		case key.Matches(msg, keys.Cancel):
			s.showConfirmationDialog = false
		}
		return nil
	}

	if key.Matches(msg, keys.Back) {
		return Back()
	}

	if s.isLoading || s.isDeleting {
		return nil
	}

	if s.hasErrorLoading {
		if key.Matches(msg, keys.Refresh) {
			return s.load()
		}
		return nil
	}

	switch {
	case key.Matches(msg, keys.Favorite):
		return s.toggleFavorite()
	case key.Matches(msg, keys.Edit):
		return Navigate(Route{Destination: ContactForm, ID: s.contact.ID})
	case key.Matches(msg, keys.Delete):
		s.showConfirmationDialog = true
	}
	return nil
}

func (s *contactDetails) View() string {
	var b strings.Builder

	switch {
	case s.isLoading:
		b.WriteString(titleStyle.Render("Contact"))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("Loading contact..."))
		return b.String()
	case s.hasErrorLoading:
		b.WriteString(titleStyle.Render("Contact"))
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("The contact could not be loaded."))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("Press r to try again."))
		return b.String()
	}

	c := s.contact
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s %s %s", avatarView(c.FirstName, c.LastName), c.FullName(), favoriteMark(c.IsFavorite))))
	b.WriteString("\n")

	rows := [][2]string{
		{"Phone", format.Phone(c.PhoneNumber)},
		{"E-Mail", c.Email},
		{"Birth date", format.Date(c.BirthDate)},
		{"Type", string(c.Type)},
		{"Net worth", format.Currency(c.NetWorth)},
		{"Created", format.DateTime(c.CreatedAt)},
	}
	for _, row := range rows {
		value := row[1]
		if value == "" {
			value = mutedStyle.Render("-")
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(row[0]), value))
		b.WriteString("\n")
	}

	if s.isDeleting {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("Deleting..."))
	}

	if s.showConfirmationDialog {
		b.WriteString("\n")
		b.WriteString(dialogStyle.Render(fmt.Sprintf("Delete %s?\n(y)es / (n)o", c.FullName())))
	}

	if s.hasErrorDeleting {
		b.WriteString("\n")
		b.WriteString(snackbarStyle.Render("The contact could not be deleted, please try again."))
	}

	return b.String()
}

func (s *contactDetails) Help() []key.Binding {
	if s.showConfirmationDialog {
		return []key.Binding{keys.Confirm, keys.Cancel}
	}
	if s.hasErrorLoading {
		return []key.Binding{keys.Refresh, keys.Back}
	}
	return []key.Binding{keys.Favorite, keys.Edit, keys.Delete, keys.Back}
}
