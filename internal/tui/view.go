package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/at-ishikawa/etymora/internal/dictionary"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#6933ff"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3c3c3c")).
			Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00fced"))

	wordStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8a8f98"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ec3f96"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d6dbe7"))
)

type sidebarDelegate struct {
	list.DefaultDelegate
}

func (d sidebarDelegate) Height() int  { return 1 }
func (d sidebarDelegate) Spacing() int { return 0 }

func (d sidebarDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(savedWordItem)
	if !ok {
		return
	}

	str := i.word
	if index == m.Index() {
		str = panelTitleStyle.Render("| " + str)
	} else {
		str = "  " + str
	}

	fmt.Fprint(w, str)
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("etymora"))
	b.WriteString("\n\n")
	b.WriteString(m.searchInput.View())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.loadingSpin.View())
		b.WriteString(" Looking up...\n")
	case m.errMessage != "":
		b.WriteString(errorStyle.Render(m.errMessage))
		b.WriteString("\n")
	case m.hasResult:
		b.WriteString(m.viewResult())
	default:
		b.WriteString(subtleStyle.Render("Search a word to see its breakdown, or pick one from your saved words."))
		b.WriteString("\n")
	}

	if m.focus == focusAnnotate {
		b.WriteString("\n")
		b.WriteString(panelTitleStyle.Render("Add a similar word"))
		b.WriteString("\n")
		b.WriteString(m.annotateInput.View())
		b.WriteString("\n")
	}

	if m.statusMessage != "" {
		b.WriteString("\n")
		b.WriteString(subtleStyle.Render(m.statusMessage))
		b.WriteString("\n")
	}

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		b.String(),
		"  ",
		m.sidebar.View(),
	)

	return content + "\n" + helpStyle.Render(m.helpLine()) + "\n"
}

func (m Model) helpLine() string {
	switch m.focus {
	case focusSearch:
		return "enter: search • tab: saved words • ctrl+c: quit"
	case focusSidebar:
		return "enter: open • d: delete • /: search • tab: back • ctrl+c: quit"
	case focusAnnotate:
		return "enter: add • esc: cancel"
	default:
		return "s: save • a: add similar word • 1-9: search a synonym • /: search • tab: saved words • q: quit"
	}
}

func (m Model) viewResult() string {
	panels := []string{
		m.viewWordDetailPanel(),
		m.viewEtymologyPanel(),
		m.viewSynonymsPanel(),
		m.viewSimilarWordsPanel(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, panels...) + "\n"
}

func (m Model) viewWordDetailPanel() string {
	details := m.currentDetails

	var b strings.Builder
	b.WriteString(wordStyle.Render(m.currentWord))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  %s  /%s/\n", details.PartOfSpeech, details.Syllabification, strings.Trim(details.Pronunciation, "/")))
	b.WriteString("\n")
	b.WriteString(details.CommonMeaning)
	b.WriteString("\n")
	if details.EtymologicalMeaning != "" {
		b.WriteString(subtleStyle.Render("originally: " + details.EtymologicalMeaning))
		b.WriteString("\n")
	}

	if len(details.Examples) > 0 {
		b.WriteString("\n")
		b.WriteString(panelTitleStyle.Render("Examples"))
		b.WriteString("\n")
		for _, example := range details.Examples {
			b.WriteString("- " + example.Sentence + "\n")
			if example.Translation != "" {
				b.WriteString(subtleStyle.Render("  "+example.Translation) + "\n")
			}
		}
	}

	if len(details.Forms) > 0 {
		b.WriteString("\n")
		b.WriteString(panelTitleStyle.Render("Forms"))
		b.WriteString("\n")
		for _, form := range details.Forms {
			b.WriteString(fmt.Sprintf("%s (%s): %s\n", form.Word, form.PartOfSpeech, form.Definition))
		}
	}

	return panelStyle.Render(b.String())
}

func (m Model) viewEtymologyPanel() string {
	etymology := m.currentDetails.Etymology

	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("Etymology"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s (%s): %s\n", etymology.Root, etymology.RootLanguage, etymology.RootMeaning))
	if etymology.Development != "" {
		b.WriteString(etymology.Development + "\n")
	}
	for _, relatedWord := range etymology.RelatedWords {
		b.WriteString(fmt.Sprintf("%s: %s (%s)\n", relatedWord.Word, relatedWord.Translation, relatedWord.Breakdown))
	}

	return panelStyle.Render(b.String())
}

func (m Model) viewSynonymsPanel() string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("Synonyms"))
	b.WriteString("\n")
	if len(m.currentDetails.Synonyms) == 0 {
		b.WriteString(subtleStyle.Render("(none)") + "\n")
	}
	for i, synonym := range m.currentDetails.Synonyms {
		b.WriteString(fmt.Sprintf("%d. %s: %s\n", i+1, synonym.Word, synonym.Nuance))
	}

	return panelStyle.Render(b.String())
}

func (m Model) viewSimilarWordsPanel() string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("Similar words"))
	b.WriteString("\n")
	if len(m.currentDetails.ConfusableWords) == 0 && len(m.currentSimilar) == 0 {
		b.WriteString(subtleStyle.Render("(none)") + "\n")
	}
	for _, confusableWord := range m.currentDetails.ConfusableWords {
		b.WriteString(renderConfusableWord(confusableWord) + "\n")
	}
	if len(m.currentSimilar) > 0 {
		b.WriteString(subtleStyle.Render("your notes: "+strings.Join(m.currentSimilar, ", ")) + "\n")
	}

	return panelStyle.Render(b.String())
}

func renderConfusableWord(confusableWord dictionary.ConfusableWord) string {
	if confusableWord.Difference == "" {
		return fmt.Sprintf("%s: %s", confusableWord.Word, confusableWord.Meaning)
	}
	return fmt.Sprintf("%s: %s (%s)", confusableWord.Word, confusableWord.Meaning, confusableWord.Difference)
}
