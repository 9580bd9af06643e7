package layout

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// NavEntry is one link in the admin sidebar.
type NavEntry struct {
	Label string
	Href  string
}

// Nav lists every resource family reachable from the admin chrome, grouped
// roughly as the catalog reads: taxonomy first, then the garden.
func Nav() []NavEntry {
	return []NavEntry{
		{Label: "Plants", Href: "/admin/plants"},
		{Label: "Plant Parts", Href: "/admin/plant-parts"},
		{Label: "Medicinal Properties", Href: "/admin/medicinal-properties"},
		{Label: "Western Properties", Href: "/admin/western-properties"},
		{Label: "Ayurvedic Properties", Href: "/admin/ayurvedic-properties"},
		{Label: "TCM Properties", Href: "/admin/tcm-properties"},
		{Label: "Herbal Actions", Href: "/admin/herbal-actions"},
		{Label: "Culinary Uses", Href: "/admin/culinary-uses"},
		{Label: "Cut Flower Traits", Href: "/admin/cut-flower-traits"},
		{Label: "Treatments", Href: "/admin/treatments"},
		{Label: "Seed Saving", Href: "/admin/seed-saving"},
		{Label: "Plots", Href: "/admin/plots"},
		{Label: "Beds", Href: "/admin/beds"},
		{Label: "Plantings", Href: "/admin/garden/plantings"},
		{Label: "Crop Rotations", Href: "/admin/crop-rotations"},
	}
}

// Page wraps resource content in the shared admin chrome. Flash is rendered
// as a banner above the content when non-empty.
func Page(title, flash string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s — Herbarium</title><link rel="stylesheet" href="/assets/admin.css"></head><body><header class="masthead"><a class="brand" href="/">Herbarium</a></header><nav class="sidebar"><ul>`,
			templ.EscapeString(title),
		); err != nil {
			return err
		}
		for _, entry := range Nav() {
			if _, err := fmt.Fprintf(w, `<li><a href="%s">%s</a></li>`, entry.Href, templ.EscapeString(entry.Label)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</ul></nav><main class="content">`); err != nil {
			return err
		}
		if flash != "" {
			if _, err := fmt.Fprintf(w, `<div class="flash">%s</div>`, templ.EscapeString(flash)); err != nil {
				return err
			}
		}
		if content != nil {
			if err := content.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}
