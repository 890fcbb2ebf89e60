package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateMsg pushes the screen for the route.
type NavigateMsg struct {
	Route Route
}

// BackMsg pops the top screen. Popping the last screen quits.
type BackMsg struct{}

// NavigateToListMsg clears the stack and shows the route.
type NavigateToListMsg struct {
	Route Route
}

// resumedMsg is sent to a screen that becomes the top of the stack again.
type resumedMsg struct{}

func Navigate(r Route) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Route: r} }
}

func Back() tea.Cmd {
	return func() tea.Msg { return BackMsg{} }
}

func NavigateToList(r Route) tea.Cmd {
	return func() tea.Msg { return NavigateToListMsg{Route: r} }
}

// screenMsg is the result of a command started by a screen. The host
// delivers it to that screen as long as it is on the stack.
type screenMsg interface {
	screenID() string
}

type target struct {
	id string
}

func (t target) screenID() string {
	return t.id
}
