package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"herbarium/models"
)

// CompanionTable renders the companion plants of a planting on its detail page.
func CompanionTable(companions []models.PlantingPlant) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h2>Companion Plants</h2>`); err != nil {
			return err
		}
		if len(companions) == 0 {
			_, err := io.WriteString(w, `<p class="empty">No companion plants recorded for this planting.</p>`)
			return err
		}
		if _, err := io.WriteString(w, `<table><thead><tr><th>Plant</th><th>Quantity</th><th>Position</th><th>Notes</th></tr></thead><tbody>`); err != nil {
			return err
		}
		for _, companion := range companions {
			name := fmt.Sprintf("#%d", companion.PlantID)
			if companion.Plant != nil {
				name = companion.Plant.BotanicalName
			}
			position := fmt.Sprintf("%.1f, %.1f", companion.XPosition, companion.YPosition)
			if _, err := fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
				templ.EscapeString(name),
				FormatQuantity(companion.Quantity),
				templ.EscapeString(position),
				templ.EscapeString(DefaultDash(companion.Notes)),
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table>`)
		return err
	})
}

// AdminIndex renders the landing page listing every resource family.
func AdminIndex(entries []IndexEntry) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="resource"><h1>Herbarium Admin</h1><p>A working catalog of medicinal and culinary plants, and the garden they grow in.</p><ul class="index">`); err != nil {
			return err
		}
		for _, entry := range entries {
			if _, err := fmt.Fprintf(w, `<li><a href="%s">%s</a> <span class="count">%d</span></li>`, entry.Href, templ.EscapeString(entry.Label), entry.Count); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul></section>`)
		return err
	})
}

// IndexEntry is one resource family on the admin landing page.
type IndexEntry struct {
	Label string
	Href  string
	Count int64
}
