package tui

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/wordlehelp/internal/model"
)

var testWords = []string{"apple", "angle", "ankle", "amble", "eagle", "crane"}

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m := NewModel(model.Config{Lang: "en"}, testWords, "test.txt")
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	return m
}

func typeRunes(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m.Update(constraintsChangedMsg{})
}

func TestNewModelShowsRankedFullList(t *testing.T) {
	m := newTestModel(t)
	if m.result.Count != len(testWords) {
		t.Fatalf("expected %d candidates, got %d", len(testWords), m.result.Count)
	}
	want := []string{"angle", "ankle", "amble", "crane", "apple", "eagle"}
	if !reflect.DeepEqual(m.result.Words, want) {
		t.Fatalf("expected %v, got %v", want, m.result.Words)
	}
}

func TestKnownLettersAndExcludedFilter(t *testing.T) {
	m := newTestModel(t)
	typeRunes(m, "an")
	if m.focus != 2 {
		t.Fatalf("expected focus to advance to slot 2, got %d", m.focus)
	}
	m.focus = excludedField
	m.inputs[excludedField].Focus()
	typeRunes(m, "p")

	want := []string{"angle", "ankle"}
	if !reflect.DeepEqual(m.result.Words, want) {
		t.Fatalf("expected %v, got %v", want, m.result.Words)
	}
	if !strings.Contains(m.View(), "2 possible words") {
		t.Fatalf("expected count line in view")
	}
}

func TestKnownLetterReplacesAndClears(t *testing.T) {
	m := newTestModel(t)
	typeRunes(m, "x")
	m.moveFocus(-1)
	typeRunes(m, "C")
	if r, ok := m.constraints.Known(0); !ok || r != 'c' {
		t.Fatalf("expected lower-cased c at slot 0, got %q %v", r, ok)
	}
	if m.result.Count != 1 || m.result.Words[0] != "crane" {
		t.Fatalf("expected only crane, got %v", m.result.Words)
	}

	m.moveFocus(-1)
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m.Update(constraintsChangedMsg{})
	if _, ok := m.constraints.Known(0); ok {
		t.Fatalf("expected slot 0 cleared")
	}
	if m.result.Count != len(testWords) {
		t.Fatalf("expected full list after clearing, got %d", m.result.Count)
	}
}

func TestMisplacedFieldFilters(t *testing.T) {
	m := newTestModel(t)
	m.moveFocus(firstMisplaced)
	typeRunes(m, "e")
	for _, w := range m.result.Words {
		if w == "eagle" {
			t.Fatalf("expected eagle to be excluded, got %v", m.result.Words)
		}
	}
	if m.result.Count != 5 {
		t.Fatalf("expected 5 candidates, got %v", m.result.Words)
	}
}

func TestKnownLetterClearsMisplacedField(t *testing.T) {
	m := newTestModel(t)
	m.moveFocus(firstMisplaced)
	typeRunes(m, "a")
	if got := m.inputs[firstMisplaced].Value(); got != "a" {
		t.Fatalf("expected misplaced field a, got %q", got)
	}
	m.moveFocus(-firstMisplaced)
	typeRunes(m, "a")
	if got := m.inputs[firstMisplaced].Value(); got != "" {
		t.Fatalf("expected misplaced field cleared, got %q", got)
	}
	if len(m.constraints.Misplaced(0)) != 0 {
		t.Fatalf("expected misplaced slot 0 cleared")
	}
}

func TestResetRestoresFullList(t *testing.T) {
	m := newTestModel(t)
	typeRunes(m, "cr")
	if m.result.Count != 1 {
		t.Fatalf("expected 1 candidate, got %d", m.result.Count)
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	if cmd == nil {
		t.Fatalf("expected reset to emit a change")
	}
	if _, ok := cmd().(constraintsChangedMsg); !ok {
		t.Fatalf("expected constraintsChangedMsg from reset")
	}
	m.Update(constraintsChangedMsg{})
	if m.result.Count != len(testWords) {
		t.Fatalf("expected full list after reset, got %d", m.result.Count)
	}
	for i, input := range m.inputs {
		if input.Value() != "" {
			t.Fatalf("expected field %d cleared, got %q", i, input.Value())
		}
	}
}

func TestWordListReloadReplacesWords(t *testing.T) {
	m := newTestModel(t)
	typeRunes(m, "s")

	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("slate\nshine\nno\nstare\n"), 0o644); err != nil {
		t.Fatalf("write list: %v", err)
	}
	msg := loadWordList(path)()
	loaded, ok := msg.(wordListLoadedMsg)
	if !ok {
		t.Fatalf("expected wordListLoadedMsg, got %T", msg)
	}
	if loaded.dropped != 1 {
		t.Fatalf("expected 1 dropped entry, got %d", loaded.dropped)
	}
	m.Update(loaded)
	want := []string{"slate", "shine", "stare"}
	if !reflect.DeepEqual(m.result.Words, want) {
		t.Fatalf("expected %v, got %v", want, m.result.Words)
	}
	if m.wordListPath != path {
		t.Fatalf("expected path %q, got %q", path, m.wordListPath)
	}
	if !strings.Contains(m.status, "skipped 1") {
		t.Fatalf("expected skipped notice, got %q", m.status)
	}
}

func TestWordListLoadErrorKeepsWords(t *testing.T) {
	m := newTestModel(t)
	m.Update(loadWordList(filepath.Join(t.TempDir(), "missing.txt"))())
	if m.errMsg == "" {
		t.Fatalf("expected error message")
	}
	if m.result.Count != len(testWords) {
		t.Fatalf("expected previous list kept, got %d", m.result.Count)
	}
}

func TestPathPromptFlow(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	if !m.pathMode {
		t.Fatalf("expected path mode")
	}
	if !strings.Contains(m.View(), "Word list:") {
		t.Fatalf("expected path prompt in view")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.pathMode {
		t.Fatalf("expected esc to cancel path mode")
	}
}

func TestViewHeadings(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	for _, heading := range []string{"Found Characters", "Characters At Wrong Position", "Wrong Characters", "6 possible words"} {
		if !strings.Contains(view, heading) {
			t.Fatalf("expected %q in view", heading)
		}
	}
}

func TestExcludedFieldKeepsTypedOrder(t *testing.T) {
	m := newTestModel(t)
	m.moveFocus(excludedField)
	typeRunes(m, "zp")
	if got := m.inputs[excludedField].Value(); got != "zp" {
		t.Fatalf("expected typed order kept, got %q", got)
	}
	if got := string(m.constraints.Excluded()); got != "pz" {
		t.Fatalf("expected excluded p and z, got %q", got)
	}
	if m.result.Count != 5 {
		t.Fatalf("expected every word but apple, got %v", m.result.Words)
	}
}

func TestKnownLetterClearsOtherMisplacedFields(t *testing.T) {
	m := newTestModel(t)
	m.moveFocus(firstMisplaced + 2)
	typeRunes(m, "ea")
	m.moveFocus(-(firstMisplaced + 2))
	typeRunes(m, "e")
	if got := m.inputs[firstMisplaced+2].Value(); got != "a" {
		t.Fatalf("expected e dropped from slot 2 field, got %q", got)
	}
}

func TestShowCapsListedWords(t *testing.T) {
	m := NewModel(model.Config{Lang: "en", Show: 2}, testWords, "test.txt")
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	if m.result.Count != len(testWords) {
		t.Fatalf("expected full count, got %d", m.result.Count)
	}
	view := m.View()
	if !strings.Contains(view, "6 possible words") || !strings.Contains(view, "... 4 more") {
		t.Fatalf("expected capped list with remainder line, got:\n%s", view)
	}
	if strings.Contains(view, "crane") {
		t.Fatalf("expected crane beyond the cap to be hidden")
	}
}
