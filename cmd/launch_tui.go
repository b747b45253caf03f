package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/numerilab/numlaunch/pkg/experiment"
)

// ErrTUIQuit is returned when the user leaves the picker without choosing.
var ErrTUIQuit = errors.New("quit")

var pickerDocStyle = lipgloss.NewStyle().Margin(1, 2)

type presetItem struct {
	name string
	cfg  experiment.Config
}

func (i presetItem) Title() string { return i.name }

func (i presetItem) Description() string {
	return fmt.Sprintf("%s %s, %s, %s tool, objects %d to %d",
		i.cfg.Topology, i.cfg.Task, i.cfg.Observation,
		i.cfg.ExternalReprTool, i.cfg.MaxObjects, i.cfg.MaxMaxObjects)
}

func (i presetItem) FilterValue() string { return i.name }

type presetPickerModel struct {
	list     list.Model
	choice   string
	quitting bool
}

func newPresetPickerModel() presetPickerModel {
	names := experiment.PresetNames()
	items := make([]list.Item, 0, len(names))
	for _, name := range names {
		items = append(items, presetItem{name: name, cfg: experiment.Presets[name]})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Choose an experiment preset"
	l.SetShowStatusBar(false)

	return presetPickerModel{list: l}
}

func (m presetPickerModel) Init() tea.Cmd {
	return nil
}

func (m presetPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := pickerDocStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

	case tea.KeyMsg:
		// Don't intercept keys while the user is filtering.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(presetItem); ok {
				m.choice = item.name
			}
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m presetPickerModel) View() string {
	return pickerDocStyle.Render(m.list.View())
}

// runPresetPickerTUI shows the preset list and returns the chosen name.
func runPresetPickerTUI() (string, error) {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return "", fmt.Errorf("interactive mode requires a terminal")
	}

	p := tea.NewProgram(newPresetPickerModel(), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("error running preset picker: %w", err)
	}

	m, ok := finalModel.(presetPickerModel)
	if !ok || m.quitting || m.choice == "" {
		return "", ErrTUIQuit
	}
	return m.choice, nil
}
