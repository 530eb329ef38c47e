// Package tui provides the Bubble Tea constraint editor and candidate list.
package tui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/wordlehelp/internal/constraint"
	"github.com/verte-zerg/wordlehelp/internal/model"
	"github.com/verte-zerg/wordlehelp/internal/report"
	"github.com/verte-zerg/wordlehelp/internal/solver"
	"github.com/verte-zerg/wordlehelp/internal/wordlist"
)

// Field layout: known letters, then misplaced letters, then excluded letters.
const (
	firstKnown     = 0
	firstMisplaced = constraint.WordLength
	excludedField  = 2 * constraint.WordLength
	fieldCount     = excludedField + 1
)

// constraintsChangedMsg asks the model to recompute candidates after an edit.
type constraintsChangedMsg struct{}

// wordListLoadedMsg carries a freshly loaded word list.
type wordListLoadedMsg struct {
	path    string
	words   []string
	dropped int
	err     error
}

// Model implements the Bubble Tea helper UI.
type Model struct {
	config       model.Config
	constraints  *constraint.Set
	words        []string
	wordListPath string
	result       solver.Result

	inputs    []textinput.Model
	focus     int
	pathMode  bool
	pathInput textinput.Model
	list      viewport.Model

	width  int
	height int

	status string
	errMsg string
}

var (
	headingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	slotStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A")).
			Padding(0, 1)
	focusedSlotStyle = slotStyle.BorderForeground(lipgloss.Color("#C89A3A"))
	countStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

// NewModel constructs the helper TUI over words loaded from wordListPath.
func NewModel(cfg model.Config, words []string, wordListPath string) *Model {
	m := &Model{
		config:       cfg,
		constraints:  constraint.New(),
		words:        words,
		wordListPath: wordListPath,
		list:         viewport.New(0, 0),
	}
	m.initInputs()
	m.recompute()
	return m
}

func (m *Model) initInputs() {
	m.inputs = make([]textinput.Model, fieldCount)
	for i := range m.inputs {
		input := textinput.New()
		input.Prompt = ""
		switch {
		case i < firstMisplaced:
			input.CharLimit = 1
			input.Width = 1
		case i < excludedField:
			input.Width = 4
		default:
			input.Width = 5*8 + 4
		}
		m.inputs[i] = input
	}
	m.inputs[m.focus].Focus()

	m.pathInput = textinput.New()
	m.pathInput.Prompt = "Word list: "
	m.pathInput.Placeholder = "/path/to/words.txt"
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case constraintsChangedMsg:
		m.recompute()
		return m, nil
	case wordListLoadedMsg:
		m.handleWordListLoaded(msg)
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.pathMode {
			return m.updatePath(msg)
		}
		return m.updateFields(msg)
	}
	return m, nil
}

func (m *Model) updateFields(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, tea.Quit
	case "tab", "enter":
		m.moveFocus(1)
		return m, nil
	case "shift+tab":
		m.moveFocus(-1)
		return m, nil
	case "ctrl+r":
		m.reset()
		return m, constraintsChanged
	case "ctrl+o":
		m.pathMode = true
		m.errMsg = ""
		m.pathInput.SetValue(m.wordListPath)
		m.pathInput.CursorEnd()
		return m, m.pathInput.Focus()
	case "pgup", "pgdown", "up", "down":
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	if m.focus < firstMisplaced {
		return m.updateKnown(msg)
	}
	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if m.inputs[m.focus].Value() == before {
		return m, cmd
	}
	m.applyField(m.focus)
	return m, tea.Batch(cmd, constraintsChanged)
}

// updateKnown overwrites a single-letter field instead of appending, then
// advances to the next slot.
func (m *Model) updateKnown(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyDelete, tea.KeySpace:
		if m.inputs[m.focus].Value() == "" {
			return m, nil
		}
		m.inputs[m.focus].SetValue("")
		m.applyField(m.focus)
		return m, constraintsChanged
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return m, nil
		}
		r := msg.Runes[len(msg.Runes)-1]
		if !unicode.IsLetter(r) {
			return m, nil
		}
		m.inputs[m.focus].SetValue(string(r))
		m.applyField(m.focus)
		if m.focus < firstMisplaced-1 {
			m.moveFocus(1)
		}
		return m, constraintsChanged
	}
	return m, nil
}

func (m *Model) updatePath(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pathMode = false
		m.pathInput.Blur()
		return m, nil
	case "enter":
		path := strings.TrimSpace(m.pathInput.Value())
		m.pathMode = false
		m.pathInput.Blur()
		if path == "" {
			return m, nil
		}
		m.status = fmt.Sprintf("Loading %s...", path)
		return m, loadWordList(path)
	}
	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	return m, cmd
}

func constraintsChanged() tea.Msg {
	return constraintsChangedMsg{}
}

func loadWordList(path string) tea.Cmd {
	return func() tea.Msg {
		words, err := wordlist.LoadWords(path)
		if err != nil {
			return wordListLoadedMsg{path: path, err: err}
		}
		kept, dropped := wordlist.Clean(words)
		return wordListLoadedMsg{path: path, words: kept, dropped: dropped}
	}
}

func (m *Model) handleWordListLoaded(msg wordListLoadedMsg) {
	if msg.err != nil {
		m.status = ""
		m.errMsg = fmt.Sprintf("failed to load %s: %v", msg.path, msg.err)
		return
	}
	m.errMsg = ""
	m.words = msg.words
	m.wordListPath = msg.path
	m.status = fmt.Sprintf("Loaded %d words from %s", len(msg.words), msg.path)
	if msg.dropped > 0 {
		m.status += fmt.Sprintf(" (skipped %d malformed)", msg.dropped)
	}
	m.recompute()
}

// applyField copies a field value into the constraint set. Values are
// lower-cased here so the core can compare letters as given.
func (m *Model) applyField(idx int) {
	value := strings.ToLower(m.inputs[idx].Value())
	var err error
	switch {
	case idx < firstMisplaced:
		err = m.constraints.SetKnownString(idx-firstKnown, value)
	case idx < excludedField:
		err = m.constraints.SetMisplacedString(idx-firstMisplaced, value)
	default:
		m.constraints.SetExcludedString(value)
	}
	if err != nil {
		m.errMsg = err.Error()
	}
	m.syncInputs()
}

// syncInputs rewrites fields whose value no longer reflects the constraint
// set, e.g. a misplaced letter dropped because it became known.
func (m *Model) syncInputs() {
	for i := 0; i < constraint.WordLength; i++ {
		known := ""
		if r, ok := m.constraints.Known(i); ok {
			known = string(r)
		}
		setIfChanged(&m.inputs[firstKnown+i], known)
		setIfLettersDiffer(&m.inputs[firstMisplaced+i], m.constraints.Misplaced(i))
	}
	setIfLettersDiffer(&m.inputs[excludedField], m.constraints.Excluded())
}

func setIfChanged(input *textinput.Model, value string) {
	if input.Value() != value {
		input.SetValue(value)
	}
}

// setIfLettersDiffer rewrites input only when the letters it holds differ from
// letters. Order, repeats and separators in the typed value are kept.
func setIfLettersDiffer(input *textinput.Model, letters []rune) {
	want := make(map[rune]struct{}, len(letters))
	for _, r := range letters {
		want[r] = struct{}{}
	}
	have := map[rune]struct{}{}
	for _, r := range input.Value() {
		if r == ',' || unicode.IsSpace(r) {
			continue
		}
		have[r] = struct{}{}
	}
	if len(have) == len(want) {
		same := true
		for r := range have {
			if _, ok := want[r]; !ok {
				same = false
				break
			}
		}
		if same {
			return
		}
	}
	input.SetValue(string(letters))
}

func (m *Model) moveFocus(delta int) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + fieldCount) % fieldCount
	m.inputs[m.focus].Focus()
}

func (m *Model) reset() {
	m.constraints.Reset()
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.errMsg = ""
	m.status = ""
}

func (m *Model) recompute() {
	m.result = solver.Candidates(m.words, m.constraints)
	m.refreshList()
}

func (m *Model) refreshList() {
	width := m.width
	if width <= 0 {
		width = 80
	}
	words := m.result.Words
	if show := m.config.Show; show > 0 && len(words) > show {
		words = words[:show]
	}
	lines := report.Columns(words, width)
	if hidden := m.result.Count - len(words); hidden > 0 {
		lines = append(lines, fmt.Sprintf("... %d more", hidden))
	}
	m.list.SetContent(strings.Join(lines, "\n"))
	m.list.GotoTop()
}

func (m *Model) updateLayout() {
	m.list.Width = m.width
	height := m.height - lipgloss.Height(m.renderEditor()) - 3
	if height < 1 {
		height = 1
	}
	m.list.Height = height
	m.pathInput.Width = maxInt(10, m.width-lipgloss.Width(m.pathInput.Prompt)-2)
	m.refreshList()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
