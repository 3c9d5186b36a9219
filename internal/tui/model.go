// Package tui implements the interactive explore session.
package tui

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/at-ishikawa/etymora/internal/dictionary"
	"github.com/at-ishikawa/etymora/internal/wordbook"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

//go:generate mockgen -source=model.go -destination=../mocks/tui/mock_lookup_client.go -package=mock_tui LookupClient

// LookupClient resolves a word into its structured breakdown.
// *dictionary.Reader satisfies this interface.
type LookupClient interface {
	Lookup(ctx context.Context, word string) (dictionary.WordDetails, error)
}

type focusArea int

const (
	focusSearch focusArea = iota
	focusDetail
	focusSidebar
	focusAnnotate
)

type wordbookLoadedMsg struct {
	words []wordbook.SavedWord
	err   error
}

type lookupResultMsg struct {
	seq     int
	word    string
	details dictionary.WordDetails
	err     error
}

type wordbookSavedMsg struct {
	err error
}

type savedWordItem struct {
	word string
}

func (i savedWordItem) FilterValue() string { return i.word }
func (i savedWordItem) Title() string       { return i.word }
func (i savedWordItem) Description() string { return "" }

// Model is the state of the explore session. Update is the only place
// that mutates it.
type Model struct {
	ctx        context.Context
	client     LookupClient
	repository wordbook.Repository

	searchInput   textinput.Model
	annotateInput textinput.Model
	sidebar       list.Model
	loadingSpin   spinner.Model

	words *wordbook.Wordbook
	focus focusArea

	// seq increments on every submitted search so that responses of
	// superseded searches can be discarded.
	seq     int
	loading bool

	currentWord    string
	currentDetails dictionary.WordDetails
	currentSimilar []string
	hasResult      bool

	errMessage    string
	statusMessage string

	width  int
	height int
}

func New(ctx context.Context, client LookupClient, repository wordbook.Repository) Model {
	searchInput := textinput.New()
	searchInput.Placeholder = "Type an English word and press enter..."
	searchInput.Focus()
	searchInput.CharLimit = 64
	searchInput.Width = 40

	annotateInput := textinput.New()
	annotateInput.Placeholder = "Similar word to remember..."
	annotateInput.CharLimit = 64
	annotateInput.Width = 40

	delegate := sidebarDelegate{DefaultDelegate: list.NewDefaultDelegate()}
	sidebar := list.New([]list.Item{}, delegate, 28, 20)
	sidebar.Title = "Saved words"
	sidebar.SetShowHelp(false)
	sidebar.SetShowStatusBar(false)
	sidebar.SetShowPagination(false)
	sidebar.SetFilteringEnabled(false)

	loadingSpin := spinner.New()
	loadingSpin.Spinner = spinner.Dot

	return Model{
		ctx:           ctx,
		client:        client,
		repository:    repository,
		searchInput:   searchInput,
		annotateInput: annotateInput,
		sidebar:       sidebar,
		loadingSpin:   loadingSpin,
		words:         wordbook.New(nil),
		focus:         focusSearch,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		loadWordbookCmd(m.ctx, m.repository),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.sidebar.SetSize(30, msg.Height-4)
		return m, nil

	case wordbookLoadedMsg:
		if msg.err != nil {
			m.statusMessage = fmt.Sprintf("could not load saved words: %v", msg.err)
			return m, nil
		}
		m.words = wordbook.New(msg.words)
		m.refreshSidebar()
		return m, nil

	case lookupResultMsg:
		if msg.seq != m.seq {
			// The search this response belongs to has been superseded.
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.errMessage = lookupErrorMessage(msg.err)
			m.currentWord = ""
			m.hasResult = false
			return m, nil
		}
		m.errMessage = ""
		m.currentWord = msg.word
		m.currentDetails = msg.details
		m.currentSimilar = nil
		m.hasResult = true
		m.focus = focusDetail
		m.searchInput.Blur()
		return m, nil

	case wordbookSavedMsg:
		if msg.err != nil {
			m.statusMessage = fmt.Sprintf("could not save the wordbook: %v", msg.err)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.loadingSpin, cmd = m.loadingSpin.Update(msg)
		return m, cmd
	}

	return m.updateComponents(msg)
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	}

	switch m.focus {
	case focusSearch:
		return m.updateSearchKey(msg)
	case focusAnnotate:
		return m.updateAnnotateKey(msg)
	case focusSidebar:
		return m.updateSidebarKey(msg)
	default:
		return m.updateDetailKey(msg)
	}
}

func (m Model) updateSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.submitSearch(m.searchInput.Value())
	case "tab":
		return m.focusOn(focusSidebar), nil
	case "esc":
		if m.hasResult {
			return m.focusOn(focusDetail), nil
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m Model) updateDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q":
		return m, tea.Quit
	case "/":
		return m.focusOn(focusSearch), nil
	case "tab":
		return m.focusOn(focusSidebar), nil
	case "s":
		return m.saveCurrentWord()
	case "a":
		if !m.hasResult {
			return m, nil
		}
		m.focus = focusAnnotate
		m.annotateInput.Reset()
		return m, m.annotateInput.Focus()
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		index := int(key[0]-'0') - 1
		if !m.hasResult || index >= len(m.currentDetails.Synonyms) {
			return m, nil
		}
		return m.submitSearch(m.currentDetails.Synonyms[index].Word)
	}
	return m, nil
}

func (m Model) updateAnnotateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.submitAnnotation(m.annotateInput.Value())
	case "esc":
		m.annotateInput.Blur()
		return m.focusOn(focusDetail), nil
	}

	var cmd tea.Cmd
	m.annotateInput, cmd = m.annotateInput.Update(msg)
	return m, cmd
}

func (m Model) updateSidebarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.openSelectedWord()
	case "d":
		return m.deleteSelectedWord()
	case "/":
		return m.focusOn(focusSearch), nil
	case "tab":
		if m.hasResult {
			return m.focusOn(focusDetail), nil
		}
		return m.focusOn(focusSearch), nil
	}

	var cmd tea.Cmd
	m.sidebar, cmd = m.sidebar.Update(msg)
	return m, cmd
}

func (m Model) updateComponents(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	m.searchInput, cmd = m.searchInput.Update(msg)
	cmds = append(cmds, cmd)
	m.annotateInput, cmd = m.annotateInput.Update(msg)
	cmds = append(cmds, cmd)
	m.sidebar, cmd = m.sidebar.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submitSearch starts a lookup of word. A blank word is ignored, and so is a
// submission while another fetch is still pending.
func (m Model) submitSearch(word string) (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}
	normalized := dictionary.Normalize(word)
	if normalized == "" {
		return m, nil
	}

	m.seq++
	m.loading = true
	m.errMessage = ""
	m.statusMessage = ""
	m.searchInput.Reset()

	return m, tea.Batch(
		m.loadingSpin.Tick,
		lookupCmd(m.ctx, m.client, m.seq, normalized),
	)
}

func (m Model) saveCurrentWord() (tea.Model, tea.Cmd) {
	if !m.hasResult {
		return m, nil
	}
	saved := wordbook.SavedWord{
		Word:         m.currentWord,
		Details:      m.currentDetails,
		SimilarWords: m.currentSimilar,
	}
	if !m.words.Add(saved) {
		m.statusMessage = fmt.Sprintf("%q is already saved", m.currentWord)
		return m, nil
	}
	m.statusMessage = fmt.Sprintf("saved %q", m.currentWord)
	m.refreshSidebar()
	return m, saveWordbookCmd(m.ctx, m.repository, m.words.Words())
}

func (m Model) submitAnnotation(similarWord string) (tea.Model, tea.Cmd) {
	normalized := dictionary.Normalize(similarWord)
	m.annotateInput.Blur()
	m.focus = focusDetail
	if normalized == "" {
		return m, nil
	}

	for _, existing := range m.currentSimilar {
		if existing == normalized {
			return m, nil
		}
	}
	m.currentSimilar = append(m.currentSimilar, normalized)

	// Keep the saved entry in sync when the current word is already in the
	// wordbook.
	if saved, ok := m.words.Find(m.currentWord); ok {
		saved.SimilarWords = m.currentSimilar
		m.words.Replace(saved)
		return m, saveWordbookCmd(m.ctx, m.repository, m.words.Words())
	}
	return m, nil
}

func (m Model) openSelectedWord() (tea.Model, tea.Cmd) {
	selectedItem := m.sidebar.SelectedItem()
	if selectedItem == nil {
		return m, nil
	}
	item := selectedItem.(savedWordItem)
	saved, ok := m.words.Find(item.word)
	if !ok {
		return m, nil
	}

	// Opening a saved word supersedes any in-flight search; a late response
	// must not overwrite the restored entry.
	m.seq++
	m.currentWord = saved.Word
	m.currentDetails = saved.Details
	m.currentSimilar = saved.SimilarWords
	m.hasResult = true
	m.loading = false
	m.errMessage = ""
	m.focus = focusDetail
	m.searchInput.Blur()
	return m, nil
}

func (m Model) deleteSelectedWord() (tea.Model, tea.Cmd) {
	selectedItem := m.sidebar.SelectedItem()
	if selectedItem == nil {
		return m, nil
	}
	item := selectedItem.(savedWordItem)
	if !m.words.Delete(item.word) {
		return m, nil
	}
	m.statusMessage = fmt.Sprintf("deleted %q", item.word)
	m.refreshSidebar()
	return m, saveWordbookCmd(m.ctx, m.repository, m.words.Words())
}

func (m Model) focusOn(focus focusArea) Model {
	m.focus = focus
	if focus == focusSearch {
		m.searchInput.Focus()
	} else {
		m.searchInput.Blur()
	}
	return m
}

func (m *Model) refreshSidebar() {
	words := m.words.Words()
	items := make([]list.Item, 0, len(words))
	for _, saved := range words {
		items = append(items, savedWordItem{word: saved.Word})
	}
	m.sidebar.SetItems(items)
}

func lookupErrorMessage(err error) string {
	var modelErr *dictionary.ModelReportedError
	var incompleteErr *dictionary.IncompleteResponseError
	var parseErr *dictionary.ParseError
	switch {
	case errors.As(err, &modelErr):
		return modelErr.Message
	case errors.As(err, &incompleteErr):
		return incompleteErr.Error()
	case errors.As(err, &parseErr):
		return "the response could not be understood. Try again."
	default:
		return fmt.Sprintf("lookup failed: %v", err)
	}
}

func loadWordbookCmd(ctx context.Context, repository wordbook.Repository) tea.Cmd {
	return func() tea.Msg {
		words, err := repository.Load(ctx)
		return wordbookLoadedMsg{words: words, err: err}
	}
}

func lookupCmd(ctx context.Context, client LookupClient, seq int, word string) tea.Cmd {
	return func() tea.Msg {
		details, err := client.Lookup(ctx, word)
		return lookupResultMsg{seq: seq, word: word, details: details, err: err}
	}
}

func saveWordbookCmd(ctx context.Context, repository wordbook.Repository, words []wordbook.SavedWord) tea.Cmd {
	// Commands run on their own goroutines while Update keeps mutating the
	// collection, so the command persists its own snapshot.
	words = slices.Clone(words)
	return func() tea.Msg {
		return wordbookSavedMsg{err: repository.Save(ctx, words)}
	}
}
