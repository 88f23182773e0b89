package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize/english"
	"github.com/jacksmith/bizdir/internal/cli"
	"github.com/jacksmith/bizdir/internal/model"
)

const (
	defaultCardWidth = 60
	cardHeight       = 7 // border, name, category, location, description, contact, border
	chromeHeight     = 8 // header, chips, status and help lines with spacing
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	nameStyle  = lipgloss.NewStyle().Bold(true)

	chipStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("238"))
	activeChipStyle = chipStyle.
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("63"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	selectedCardStyle = cardStyle.BorderForeground(lipgloss.Color("63"))

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 2)

	focusedLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)

	// badge colors per category: restaurants green, retail sky blue, services amber
	badgeColors = map[model.Category]lipgloss.Color{
		model.CategoryRestaurant: lipgloss.Color("42"),
		model.CategoryRetail:     lipgloss.Color("39"),
		model.CategoryService:    lipgloss.Color("214"),
	}
)

func badge(c model.Category) string {
	return lipgloss.NewStyle().Foreground(badgeColors[c]).Render("[" + string(c) + "]")
}

// View implements tea.Model.
func (m Model) View() string {
	switch {
	case m.addOpen:
		return m.place(m.viewAddForm())
	case m.pendingDelete != nil:
		return m.place(m.viewDeleteConfirm())
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")
	b.WriteString(m.viewChips())
	b.WriteString("\n\n")
	b.WriteString(m.viewCards())
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(mutedStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render("a add • d delete • tab/1-4 filter • ↑/↓ move • m map • q quit"))
	return b.String()
}

func (m Model) viewHeader() string {
	return titleStyle.Render("Business Directory") + "  " +
		mutedStyle.Render(english.Plural(m.dir.Len(), "business", "businesses"))
}

func (m Model) viewChips() string {
	counts := m.dir.Counts()
	chips := make([]string, 0, len(model.Filters()))
	for i, f := range model.Filters() {
		n := m.dir.Len()
		if c, ok := f.Category(); ok {
			n = counts[c]
		}
		label := fmt.Sprintf("%d %s (%d)", i+1, f.Label(), n)
		style := chipStyle
		if f == m.dir.Filter() {
			style = activeChipStyle
		}
		chips = append(chips, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(chips, " "))
}

func (m Model) viewCards() string {
	visible := m.dir.ListVisible()
	if len(visible) == 0 {
		return mutedStyle.Render(cli.EmptyMessage) + "\n"
	}

	start, end := m.window(len(visible))
	cards := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		cards = append(cards, m.viewCard(&visible[i], i == m.cursor))
	}

	out := lipgloss.JoinVertical(lipgloss.Left, cards...)
	if start > 0 || end < len(visible) {
		out += "\n" + mutedStyle.Render(fmt.Sprintf("%d-%d of %d", start+1, end, len(visible)))
	}
	return out + "\n"
}

// window returns the range of cards that fits the terminal height, keeping
// the cursor in view. Without a known height every card is shown.
func (m Model) window(n int) (start, end int) {
	if m.height <= 0 {
		return 0, n
	}
	per := (m.height - chromeHeight) / cardHeight
	if per < 1 {
		per = 1
	}
	if per >= n {
		return 0, n
	}
	start = m.cursor - per/2
	if start < 0 {
		start = 0
	}
	if start+per > n {
		start = n - per
	}
	return start, start + per
}

func (m Model) cardWidth() int {
	if m.width > 0 && m.width-4 < defaultCardWidth {
		return m.width - 4
	}
	return defaultCardWidth
}

func (m Model) viewCard(b *model.Business, selected bool) string {
	lines := []string{
		nameStyle.Render(b.Name) + "  " + mutedStyle.Render(model.FormatID(b.ID)),
		badge(b.Category),
		mutedStyle.Render("@ " + b.Location),
		b.Description,
	}

	var contact []string
	if p := b.PhoneText(); p != "" {
		contact = append(contact, "tel "+p)
	}
	if w := b.WebsiteText(); w != "" {
		contact = append(contact, w)
	}
	if len(contact) > 0 {
		lines = append(lines, mutedStyle.Render(strings.Join(contact, "  ")))
	}

	style := cardStyle
	if selected {
		style = selectedCardStyle
	}
	return style.Width(m.cardWidth()).Render(strings.Join(lines, "\n"))
}

func (m Model) viewDeleteConfirm() string {
	body := titleStyle.Render("Confirm Deletion") + "\n\n" +
		"Are you sure you want to delete " + nameStyle.Render(m.pendingDelete.Name) + "?\n" +
		"This action cannot be undone.\n\n" +
		mutedStyle.Render("y delete • n cancel")
	return modalStyle.Render(body)
}

func (m Model) viewAddForm() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Add New Business"))
	b.WriteString("\n\n")
	if m.form.err != "" {
		b.WriteString(errorStyle.Render(m.form.err))
		b.WriteString("\n\n")
	}

	for field := formField(0); field < fieldCount; field++ {
		label := fieldLabels[field]
		if field == m.form.focus {
			b.WriteString(focusedLabelStyle.Render("> " + label))
		} else {
			b.WriteString(mutedStyle.Render("  " + label))
		}
		b.WriteString("\n  ")
		if field == fieldCategory {
			b.WriteString("< " + badge(m.form.selectedCategory()) + " >")
		} else {
			b.WriteString(m.form.inputs[field].View())
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("enter add business • esc cancel • tab next field • ←/→ category"))
	return modalStyle.Render(b.String())
}

// place centers a modal when the terminal size is known.
func (m Model) place(s string) string {
	if m.width <= 0 || m.height <= 0 {
		return s
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, s)
}
