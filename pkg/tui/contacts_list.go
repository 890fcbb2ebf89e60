package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pocketbook/backend/pkg/contacts"
	"github.com/pocketbook/backend/pkg/datasource"
	"github.com/pocketbook/backend/pkg/models"
	"github.com/rs/zerolog/log"
)

type contactsLoadedMsg struct {
	target
	contacts []models.Contact
	err      error
}

type contactsList struct {
	base

	isLoading bool
	hasError  bool
	groups    []contacts.Group
	cursor    int
}

func newContactsList(ctx context.Context, deps Deps, route Route) *contactsList {
	return &contactsList{base: newBase(ctx, deps, route)}
}

func (s *contactsList) Init() tea.Cmd {
	return s.load()
}

func (s *contactsList) load() tea.Cmd {
	s.isLoading = true
	s.hasError = false

	t, ctx, deps := s.target(), s.ctx, s.deps
	return func() tea.Msg {
		var records []models.Contact
		err := deps.do(ctx, datasource.OperationLoad, func(ctx context.Context) (err error) {
			records, err = deps.Contacts.FindAll(ctx)
			return
		})
		return contactsLoadedMsg{target: t, contacts: records, err: err}
	}
}

// toggleFavorite flips the favorite flag and reloads the list from the store.
func (s *contactsList) toggleFavorite(c models.Contact) tea.Cmd {
	t, ctx, deps := s.target(), s.ctx, s.deps
	return func() tea.Msg {
		var records []models.Contact
		err := deps.do(ctx, datasource.OperationToggle, func(ctx context.Context) error {
			c.IsFavorite = !c.IsFavorite
			if _, err := deps.Contacts.Save(ctx, c); err != nil {
				return err
			}

			var err error
			records, err = deps.Contacts.FindAll(ctx)
			return err
		})
		return contactsLoadedMsg{target: t, contacts: records, err: err}
	}
}

// visible returns the contacts in display order.
func (s *contactsList) visible() []models.Contact {
	var all []models.Contact
	for _, g := range s.groups {
		all = append(all, g.Contacts...)
	}
	return all
}

func (s *contactsList) selected() (models.Contact, bool) {
	all := s.visible()
	if s.cursor < 0 || s.cursor >= len(all) {
		return models.Contact{}, false
	}
	return all[s.cursor], true
}

func (s *contactsList) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case contactsLoadedMsg:
		if s.cancelled(msg.err) {
			return s, nil
		}

		s.isLoading = false
		if msg.err != nil {
			log.Error().Err(msg.err).Msg("loading contacts")
			s.hasError = true
			return s, nil
		}

		s.groups = contacts.GroupByInitial(msg.contacts)
		s.cursor = min(s.cursor, max(len(msg.contacts)-1, 0))
		return s, nil

	case resumedMsg:
		return s, s.load()

	case tea.KeyMsg:
		return s, s.handleKey(msg)
	}

	return s, nil
}

func (s *contactsList) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Back):
		return Back()
	case key.Matches(msg, keys.Switch):
		return NavigateToList(Route{Destination: ContasList})
	}

	if s.isLoading {
		return nil
	}

	switch {
	case key.Matches(msg, keys.Refresh):
		return s.load()
	case key.Matches(msg, keys.Add):
		return Navigate(Route{Destination: ContactForm})
	case key.Matches(msg, keys.Up):
		s.cursor = max(s.cursor-1, 0)
	case key.Matches(msg, keys.Down):
		s.cursor = min(s.cursor+1, max(len(s.visible())-1, 0))
	case key.Matches(msg, keys.Open):
		if c, ok := s.selected(); ok {
			return Navigate(Route{Destination: ContactDetails, ID: c.ID})
		}
	case key.Matches(msg, keys.Favorite):
		if c, ok := s.selected(); ok {
			return s.toggleFavorite(c)
		}
	}
	return nil
}

func (s *contactsList) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Contacts"))
	b.WriteString("\n")

	switch {
	case s.isLoading:
		b.WriteString(mutedStyle.Render("Loading contacts..."))
		return b.String()
	case s.hasError:
		b.WriteString(errorStyle.Render("The contacts could not be loaded."))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("Press r to try again."))
		return b.String()
	case len(s.groups) == 0:
		b.WriteString(mutedStyle.Render("No contacts yet. Press a to add one."))
		return b.String()
	}

	i := 0
	for _, g := range s.groups {
		b.WriteString(headerStyle.Render(g.Initial))
		b.WriteString("\n")

		for _, c := range g.Contacts {
			line := fmt.Sprintf("%s %s %s", avatarView(c.FirstName, c.LastName), favoriteMark(c.IsFavorite), c.FullName())
			if i == s.cursor {
				line = selectedStyle.Render("> " + line)
			} else {
				line = "  " + line
			}
			b.WriteString(line)
			b.WriteString("\n")
			i++
		}
	}

	return b.String()
}

func (s *contactsList) Help() []key.Binding {
	if s.hasError {
		return []key.Binding{keys.Refresh, keys.Switch, keys.Back}
	}
	return []key.Binding{keys.Up, keys.Down, keys.Open, keys.Favorite, keys.Add, keys.Refresh, keys.Switch, keys.Back}
}
