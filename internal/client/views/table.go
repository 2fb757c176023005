package views

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dmitrijs2005/cardscan/internal/client/models"
)

var cardColumns = []string{"ID", "Name", "Phone", "Email", "Website", "Address"}

// CardTable renders cards as a bordered table keyed by display row id.
func CardTable(cards []models.SavedCard) string {
	rows := make([][]string, 0, len(cards))
	for _, c := range cards {
		rows = append(rows, []string{
			strconv.Itoa(c.ID), c.Name, c.Phone, c.Email, c.Website, c.Address,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(borderColor)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(cardColumns...).
		Rows(rows...)

	return t.String()
}
