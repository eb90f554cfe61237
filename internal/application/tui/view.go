package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"taskboard/internal/domain/entity"
	"taskboard/internal/domain/model"
	"taskboard/pkg/msg"
)

const (
	defaultWidth = 80
	// header, search, sort, blank line and the footer line
	chromeHeight = 6
)

// View implements tea.Model.
func (a *App) View() string {
	width := a.width
	if width <= 0 {
		width = defaultWidth
	}

	if a.form != nil {
		if a.height > 0 {
			return lipgloss.Place(width, a.height, lipgloss.Center, lipgloss.Center, a.form.View())
		}
		return a.form.View()
	}

	var b strings.Builder
	b.WriteString(a.renderHeader())
	b.WriteString("\n")
	b.WriteString(a.searchInput.View())
	b.WriteString("\n")
	b.WriteString(a.renderSortLine())
	b.WriteString("\n\n")
	b.WriteString(a.renderCards(width))
	b.WriteString("\n")
	b.WriteString(a.renderFooter())
	return b.String()
}

func (a *App) renderHeader() string {
	return titleStyle.Render(msg.GetMessage("app.title")) + "  " + hintStyle.Render(msg.GetMessage("board.hints"))
}

func (a *App) renderSortLine() string {
	view := a.board.ViewState()
	label := msg.GetMessage("board.sort-none")
	switch view.SortCriteria {
	case model.SortDate:
		label = "date"
	case model.SortPriority:
		label = "priority: " + entity.PriorityLevel(view.SortValue).Label()
	case model.SortStatus:
		label = "status: " + entity.Status(view.SortValue).Label()
	}
	return labelStyle.Render(msg.GetMessage("board.sort-label", label))
}

func (a *App) renderFooter() string {
	if a.confirmDelete != nil {
		return errorStyle.Render(msg.GetMessage("board.confirm-delete", a.confirmDelete.Title))
	}
	if a.loading {
		return hintStyle.Render("…")
	}
	return ""
}

func (a *App) renderCards(width int) string {
	if len(a.tasks) == 0 {
		if term := a.searchInput.Value(); strings.TrimSpace(term) != "" {
			return hintStyle.Render(msg.GetMessage("board.empty-search", term))
		}
		return hintStyle.Render(msg.GetMessage("board.empty"))
	}

	cards := make([]string, len(a.tasks))
	for i, task := range a.tasks {
		cards[i] = renderCard(task, i == a.cursor, width-2)
	}

	start, end := visibleWindow(cards, a.cursor, a.height-chromeHeight)
	return lipgloss.JoinVertical(lipgloss.Left, cards[start:end]...)
}

// visibleWindow returns the [start, end) range of cards that fits in height
// and contains the cursor. A non-positive height shows everything.
func visibleWindow(cards []string, cursor, height int) (int, int) {
	if height <= 0 || len(cards) == 0 {
		return 0, len(cards)
	}

	start, end := cursor, cursor+1
	used := lipgloss.Height(cards[cursor])
	for start > 0 && used+lipgloss.Height(cards[start-1]) <= height {
		start--
		used += lipgloss.Height(cards[start])
	}
	for end < len(cards) && used+lipgloss.Height(cards[end]) <= height {
		used += lipgloss.Height(cards[end])
		end++
	}
	return start, end
}

// renderCard draws one task. Description and notes appear only when set.
func renderCard(task entity.Task, selected bool, width int) string {
	var lines []string

	header := labelStyle.Render(task.Title)
	if initial := task.Initial(); initial != "" {
		header = avatarStyle.Render(initial) + " " + header
	}
	lines = append(lines, header)
	lines = append(lines, msg.GetMessage("card.due", task.DueDate, task.Assignee.DisplayName))
	lines = append(lines,
		priorityStyle(task.PriorityLevel).Render(msg.GetMessage("card.priority", task.PriorityLevel.Label()))+
			"   "+msg.GetMessage("card.status", task.Status.Label()))
	if task.Description != "" {
		lines = append(lines, msg.GetMessage("card.description", task.Description))
	}
	if task.Notes != "" {
		lines = append(lines, msg.GetMessage("card.notes", task.Notes))
	}

	style := cardStyle.BorderForeground(cardBorderColor(task.Status))
	if selected {
		style = style.Border(lipgloss.ThickBorder())
	}
	if width > 4 {
		style = style.Width(width)
	}
	return style.Render(strings.Join(lines, "\n"))
}
