package browse

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/pokeget/registry"
	"github.com/samber/lo"
)

var (
	SelectKey = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "show"))
	QuitKey   = key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit"))

	docStyle = lipgloss.NewStyle().Margin(1, 2)
)

type pokemonItem struct {
	entry registry.Entry
}

func (i pokemonItem) Title() string       { return i.entry.Name }
func (i pokemonItem) Description() string { return fmt.Sprintf("#%04d %s", i.entry.Index+1, i.entry.Filename) }
func (i pokemonItem) FilterValue() string { return i.entry.Name }

// Model lists every pokemon in the registry. Picking one ends the program with
// Selected set to its filename.
type Model struct {
	list     list.Model
	Selected string
	Quit     bool
}

func NewModel(reg *registry.Registry) Model {
	items := lo.Map(reg.Entries(), func(e registry.Entry, _ int) list.Item {
		return pokemonItem{entry: e}
	})

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Pokemon"
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{SelectKey}
	}

	return Model{list: l}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) View() string {
	return docStyle.Render(m.list.View())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// keys belong to the filter input while typing
		if m.list.FilterState() == list.Filtering {
			break
		}

		if key.Matches(msg, SelectKey) {
			if item, ok := m.list.SelectedItem().(pokemonItem); ok {
				m.Selected = item.entry.Filename
				return m, tea.Quit
			}
		}
		if key.Matches(msg, QuitKey) && m.list.FilterState() == list.Unfiltered {
			m.Quit = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// Run shows the browser and returns the chosen filename, or false if the user quit.
func Run(reg *registry.Registry) (string, bool, error) {
	final, err := tea.NewProgram(NewModel(reg), tea.WithAltScreen()).Run()
	if err != nil {
		return "", false, err
	}

	m := final.(Model)
	return m.Selected, m.Selected != "", nil
}
