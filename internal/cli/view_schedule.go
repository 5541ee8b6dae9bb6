package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"slotplan/internal/cli/formatter"
	"slotplan/internal/contract"
)

// scheduleKeyMap holds the key bindings for the day pager.
type scheduleKeyMap struct {
	Next key.Binding
	Prev key.Binding
	Quit key.Binding
}

func defaultScheduleKeyMap() scheduleKeyMap {
	return scheduleKeyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l", "n", "tab"),
			key.WithHelp("→", "next day"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "p", "shift+tab"),
			key.WithHelp("←", "previous day"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// scheduleModel is a bubbletea model paging through the days of a schedule.
type scheduleModel struct {
	resp *contract.ScheduleResponse
	day  int
	keys scheduleKeyMap
	vp   viewport.Model
}

func newScheduleModel(resp *contract.ScheduleResponse) scheduleModel {
	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = true
	return scheduleModel{
		resp: resp,
		keys: defaultScheduleKeyMap(),
		vp:   vp,
	}
}

func (m scheduleModel) Init() tea.Cmd {
	return nil
}

func (m scheduleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.vp.Width = msg.Width
		m.vp.Height = msg.Height - 4 // leave room for header and footer
		m.vp.SetContent(m.dayContent())
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			if m.day < len(m.resp.Schedule)-1 {
				m.day++
				m.vp.SetContent(m.dayContent())
				m.vp.GotoTop()
			}
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			if m.day > 0 {
				m.day--
				m.vp.SetContent(m.dayContent())
				m.vp.GotoTop()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m scheduleModel) dayContent() string {
	if len(m.resp.Schedule) == 0 {
		return formatter.Dim("Nothing to schedule.")
	}
	return formatter.FormatDay(m.resp.Schedule[m.day])
}

func (m scheduleModel) View() string {
	var b strings.Builder

	b.WriteString(formatter.Header(fmt.Sprintf("Schedule from %s", m.resp.StartDate)))
	b.WriteString("\n\n")
	b.WriteString(m.vp.View())
	b.WriteString("\n")

	footer := formatter.Dim("← → browse days · q quit")
	if n := len(m.resp.Schedule); n > 0 {
		footer = formatter.Dim(fmt.Sprintf("day %d/%d · ", m.day+1, n)) + footer
	}
	b.WriteString(footer)

	return b.String()
}

// runScheduleView opens the day pager over a generated schedule.
func runScheduleView(resp *contract.ScheduleResponse) error {
	p := tea.NewProgram(newScheduleModel(resp), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
