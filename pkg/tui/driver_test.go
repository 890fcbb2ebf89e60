package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pocketbook/backend/internal/types"
	"github.com/pocketbook/backend/pkg/datasource"
	"github.com/pocketbook/backend/pkg/models"
)

var today = types.NewDate(2024, time.March, 10)

// driver runs an App the way the bubbletea runtime does: commands run in
// their own goroutine and their messages are fed back into Update.
type driver struct {
	t        *testing.T
	app      *App
	contacts *datasource.Memory[models.Contact]
	contas   *datasource.Memory[models.Conta]
	msgs     chan tea.Msg
	quit     bool
}

func newDriver(t *testing.T, start Route, sim *datasource.Simulator) *driver {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	d := &driver{
		t:        t,
		contacts: datasource.NewMemory[models.Contact](),
		contas:   datasource.NewMemory[models.Conta](),
		msgs:     make(chan tea.Msg, 64),
	}

	d.app = New(ctx, Deps{
		Contacts:  d.contacts,
		Contas:    d.contas,
		Simulator: sim,
		Today:     func() types.Date { return today },
	}, start)

	return d
}

func (d *driver) start() {
	d.exec(d.app.Init())
	d.settle()
}

func (d *driver) exec(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	go func() { d.msgs <- cmd() }()
}

func (d *driver) send(msg tea.Msg) {
	_, cmd := d.app.Update(msg)
	d.exec(cmd)
}

// settle processes messages until no command produced one for a while.
func (d *driver) settle() {
	for {
		select {
		case msg := <-d.msgs:
			d.handle(msg)
		case <-time.After(50 * time.Millisecond):
			return
		}
	}
}

func (d *driver) handle(msg tea.Msg) {
	switch msg := msg.(type) {
	case nil:
	case tea.BatchMsg:
		for _, cmd := range msg {
			d.exec(cmd)
		}
	case tea.QuitMsg:
		d.quit = true
	default:
		d.send(msg)
	}
}

// press sends a key and processes the resulting commands.
func (d *driver) press(keys ...string) {
	for _, k := range keys {
		d.send(keyMsg(k))
		d.settle()
	}
}

// typeText sends text to the focused input.
func (d *driver) typeText(s string) {
	d.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	d.settle()
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+d":
		return tea.KeyMsg{Type: tea.KeyCtrlD}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func (d *driver) routes() []string {
	routes := []string{}
	for _, r := range d.app.Routes() {
		routes = append(routes, r.String())
	}
	return routes
}

func (d *driver) saveContact(c models.Contact) models.Contact {
	saved, err := d.contacts.Save(context.Background(), c)
	if err != nil {
		d.t.Fatal(err)
	}
	return saved
}

func (d *driver) saveConta(c models.Conta) models.Conta {
	saved, err := d.contas.Save(context.Background(), c)
	if err != nil {
		d.t.Fatal(err)
	}
	return saved
}

// failing returns a simulator that fails every fallible operation.
func failing() *datasource.Simulator {
	return &datasource.Simulator{Enabled: true, FailureRate: 1, FailLoads: true}
}
