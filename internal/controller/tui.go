package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	m "gooze.dev/pkg/mutaprompt/internal/model"
	"gooze.dev/pkg/mutaprompt/internal/report"
)

// TUI implements UI using Bubble Tea for interactive browsing. Reports and
// lists are printed the same way SimpleUI prints them.
type TUI struct {
	*SimpleUI
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{SimpleUI: NewSimpleUI(cmd)}
}

// Browse runs the group browser until the user quits or ctx is done.
func (t *TUI) Browse(ctx context.Context, analysis m.Analysis) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(analysis.Groups) == 0 {
		t.printf("No mutants were found in %d file(s).\n", len(analysis.Files))
		return nil
	}

	program := tea.NewProgram(
		newBrowseModel(analysis),
		tea.WithContext(ctx),
		tea.WithOutput(t.cmd.OutOrStdout()),
		tea.WithAltScreen(),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("browse: %w", err)
	}

	return nil
}

type browseKeyMap struct {
	Open key.Binding
	Back key.Binding
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Back, k.Quit}}
}

var browseKeys = browseKeyMap{
	Open: key.NewBinding(key.WithKeys("enter", "right", "l"), key.WithHelp("enter", "open")),
	Back: key.NewBinding(key.WithKeys("esc", "left", "h", "backspace"), key.WithHelp("esc", "back")),
	Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// groupItem adapts a mutant group to the bubbles list.
type groupItem struct {
	index int
	group m.MutantGroup
}

func (i groupItem) Title() string {
	return fmt.Sprintf("%d. %s  %s", i.index+1, i.group.Signature.Kind, report.Headline(i.group.Representative()))
}

func (i groupItem) Description() string {
	first := i.group.Representative()
	if i.group.Count() == 1 {
		return report.FormatLocation(first)
	}

	return fmt.Sprintf("%s  (+%d more)", report.FormatLocation(first), i.group.Count()-1)
}

func (i groupItem) FilterValue() string {
	return string(i.group.Signature.Kind) + " " + i.group.Signature.Original + " " + string(i.group.Representative().FileName)
}

type browseModel struct {
	list     list.Model
	detail   viewport.Model
	help     help.Model
	showing  bool
	width    int
	height   int
	quitting bool
}

func newBrowseModel(analysis m.Analysis) browseModel {
	items := make([]list.Item, 0, len(analysis.Groups))
	for i, group := range analysis.Groups {
		items = append(items, groupItem{index: i, group: group})
	}

	groups := list.New(items, list.NewDefaultDelegate(), 0, 0)
	groups.Title = fmt.Sprintf("%d mutant(s) in %d group(s) across %d file(s)",
		len(analysis.Mutants), len(analysis.Groups), len(analysis.Files))

	return browseModel{
		list:   groups,
		detail: viewport.New(0, 0),
		help:   help.New(),
	}
}

func (bm browseModel) Init() tea.Cmd {
	return nil
}

func (bm browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		bm.width = msg.Width
		bm.height = msg.Height
		bm.list.SetSize(msg.Width, msg.Height)
		bm.detail.Width = msg.Width
		bm.detail.Height = max(msg.Height-2, 1)

		return bm, nil

	case tea.KeyMsg:
		if bm.showing {
			return bm.updateDetail(msg)
		}

		if bm.list.FilterState() != list.Filtering && key.Matches(msg, browseKeys.Open) {
			item, ok := bm.list.SelectedItem().(groupItem)
			if ok {
				bm.detail.SetContent(renderGroupDetail(item.group))
				bm.detail.GotoTop()
				bm.showing = true
			}

			return bm, nil
		}
	}

	var cmd tea.Cmd
	bm.list, cmd = bm.list.Update(msg)

	return bm, cmd
}

func (bm browseModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, browseKeys.Quit):
		bm.quitting = true
		return bm, tea.Quit
	case key.Matches(msg, browseKeys.Back):
		bm.showing = false
		return bm, nil
	}

	var cmd tea.Cmd
	bm.detail, cmd = bm.detail.Update(msg)

	return bm, cmd
}

func (bm browseModel) View() string {
	if bm.quitting {
		return ""
	}

	if !bm.showing {
		return bm.list.View()
	}

	footer := dimStyle.Render(fmt.Sprintf(" %3.f%% ", bm.detail.ScrollPercent()*100)) + " " + bm.help.View(browseKeys)

	return bm.detail.View() + "\n" + footer
}

// renderGroupDetail renders the representative of group with its context,
// diff preview and the other locations.
func renderGroupDetail(group m.MutantGroup) string {
	first := group.Representative()

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s: %s (×%d)", group.Signature.Kind, report.Headline(first), group.Count())))
	b.WriteString("\n\n")
	b.WriteString(first.Description)
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%s (%s)  group %s", report.FormatLocation(first), first.ID, group.ID())))
	b.WriteString("\n\n")

	lines := strings.Split(highlight(first.FileName, first.Context.Text), "\n")
	for i, line := range lines {
		b.WriteString(dimStyle.Render(fmt.Sprintf("%4d │ ", first.Context.StartLine+i)))
		b.WriteString(line)
		b.WriteString("\n")
	}

	if diff, err := report.Preview(first); err == nil && diff != "" {
		b.WriteString("\n")
		b.WriteString(colorDiff(diff))
	}

	if group.Count() > 1 {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Also at"))
		b.WriteString("\n")

		for _, mutant := range group.Instances[1:] {
			fmt.Fprintf(&b, "  %s (%s)\n", report.FormatLocation(mutant), mutant.ID)
		}
	}

	return b.String()
}

func colorDiff(diff string) string {
	lines := strings.Split(strings.TrimRight(diff, "\n"), "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "@@"):
			lines[i] = dimStyle.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = removedStyle.Render(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = addedStyle.Render(line)
		}
	}

	return strings.Join(lines, "\n") + "\n"
}
