// Package render draws terminal views for token records and the local
// token-list journal.
package render

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/ercx-tools/ercx-cli/internal/domain"
)

type Options struct {
	Now time.Time
}

// Token renders a token record as a small card.
func Token(token domain.Token) string {
	s := newStyles()

	lines := []string{
		s.name.Render(fmt.Sprintf("%s (%s)", token.Name, token.Symbol)),
		keyValue(s, "address", token.Address),
		keyValue(s, "network", networkLabel(token.Network)),
		keyValue(s, "decimals", token.Decimals),
		keyValue(s, "total supply", token.TotalSupply),
		keyValue(s, "ercx id", token.ID),
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Journal renders the local token-list journal, most recent first.
func Journal(records []domain.ListRecord, opts Options) string {
	s := newStyles()

	lines := []string{
		s.title.Render("Token lists"),
		s.header.Render(fmt.Sprintf("recorded: %d", len(records))),
	}

	if len(records) == 0 {
		lines = append(lines, s.empty.Render("No token lists recorded yet. `ercx list create` adds one."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, record := range records {
		lines = append(lines, s.section.Render(renderRecord(record, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderRecord(record domain.ListRecord, opts Options, s styles) string {
	parts := []string{
		s.name.Render(fmt.Sprintf("%s (%s)", record.Name, record.ID)),
	}

	if record.Description != "" {
		parts = append(parts, s.value.Render(record.Description))
	}

	meta := fmt.Sprintf("last action: %s", record.LastAction)
	if !record.TouchedAt.IsZero() && !opts.Now.IsZero() {
		meta += fmt.Sprintf(" (%s ago)", relativeAge(opts.Now.Sub(record.TouchedAt)))
	}
	parts = append(parts, s.meta.Render(meta))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func keyValue(s styles, key, value string) string {
	return s.key.Render(key+": ") + s.value.Render(value)
}

func networkLabel(raw string) string {
	network, err := domain.ParseNetwork(raw)
	if err != nil {
		return raw
	}

	return fmt.Sprintf("%s (%s)", network.Name(), network)
}

func relativeAge(age time.Duration) string {
	switch {
	case age < time.Minute:
		return "moments"
	case age < time.Hour:
		return fmt.Sprintf("%dm", int(age.Minutes()))
	case age < 24*time.Hour:
		return fmt.Sprintf("%dh", int(age.Hours()))
	default:
		return fmt.Sprintf("%dd", int(age.Hours()/24))
	}
}
