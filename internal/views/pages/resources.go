package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"herbarium/internal/forms"
)

// Row is one table line in a resource list.
type Row struct {
	ID    uint
	Cells []string
}

// Option is one entry in a reference dropdown.
type Option struct {
	Value string
	Label string
}

// ResourceList renders the list view for a resource family: a table of rows
// with edit/delete controls and a link to the creation form.
func ResourceList(title, basePath string, headers []string, rows []Row) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section class="resource"><h1>%s</h1><p><a class="button" href="%s/new">New</a></p><table><thead><tr>`, templ.EscapeString(title), basePath); err != nil {
			return err
		}
		for _, header := range headers {
			if _, err := fmt.Fprintf(w, `<th>%s</th>`, templ.EscapeString(header)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `<th></th></tr></thead><tbody>`); err != nil {
			return err
		}
		for _, row := range rows {
			if _, err := io.WriteString(w, `<tr>`); err != nil {
				return err
			}
			for _, cell := range row.Cells {
				if _, err := fmt.Fprintf(w, `<td>%s</td>`, templ.EscapeString(DefaultDash(cell))); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w,
				`<td class="actions"><a href="%[1]s/%[2]d">View</a> <a href="%[1]s/edit/%[2]d">Edit</a> %s</td></tr>`,
				basePath, row.ID, deleteButton(basePath, row.ID),
			); err != nil {
				return err
			}
		}
		if len(rows) == 0 {
			if _, err := fmt.Fprintf(w, `<tr><td colspan="%d" class="empty">Nothing recorded yet.</td></tr>`, len(headers)+1); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table></section>`)
		return err
	})
}

// ResourceDetail renders a definition list of field/value pairs plus optional
// trailing content (used by the planting page for the companion table).
func ResourceDetail(title, basePath string, id uint, pairs [][2]string, extra templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section class="resource"><h1>%s</h1><dl>`, templ.EscapeString(title)); err != nil {
			return err
		}
		for _, pair := range pairs {
			if _, err := fmt.Fprintf(w, `<dt>%s</dt><dd>%s</dd>`, templ.EscapeString(pair[0]), templ.EscapeString(DefaultDash(pair[1]))); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, `</dl><p class="actions"><a class="button" href="%[1]s/edit/%[2]d">Edit</a> %s <a href="%[1]s">Back to list</a></p>`, basePath, id, deleteButton(basePath, id)); err != nil {
			return err
		}
		if extra != nil {
			if err := extra.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
}

// ResourceForm renders a create/edit form from field declarations. values
// carries the current (or previously submitted) representation of each field
// and errMsg the validation banner for a failed submit.
func ResourceForm(title, action string, fields []forms.Field, values map[string]string, errMsg string, refOptions map[string][]Option) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section class="resource"><h1>%s</h1>`, templ.EscapeString(title)); err != nil {
			return err
		}
		if errMsg != "" {
			if _, err := fmt.Fprintf(w, `<div class="error">%s</div>`, templ.EscapeString(errMsg)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, `<form method="post" action="%s">`, action); err != nil {
			return err
		}
		for _, field := range fields {
			if err := renderField(w, field, values[field.Name], refOptions[field.Name]); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `<p><button type="submit">Save</button></p></form></section>`)
		return err
	})
}

func renderField(w io.Writer, field forms.Field, value string, options []Option) error {
	required := ""
	if field.Required {
		required = " required"
	}

	if _, err := fmt.Fprintf(w, `<label class="field"><span>%s</span>`, templ.EscapeString(field.Label)); err != nil {
		return err
	}

	var err error
	switch field.Kind {
	case forms.KindTextarea:
		_, err = fmt.Fprintf(w, `<textarea name="%s"%s>%s</textarea>`, field.Name, required, templ.EscapeString(value))
	case forms.KindBool:
		checked := ""
		if value != "" {
			checked = " checked"
		}
		_, err = fmt.Fprintf(w, `<input type="checkbox" name="%s"%s>`, field.Name, checked)
	case forms.KindDate:
		_, err = fmt.Fprintf(w, `<input type="date" name="%s" value="%s"%s>`, field.Name, templ.EscapeString(value), required)
	case forms.KindNumber:
		_, err = fmt.Fprintf(w, `<input type="number" name="%s" value="%s"%s>`, field.Name, templ.EscapeString(value), required)
	case forms.KindDecimal:
		_, err = fmt.Fprintf(w, `<input type="number" step="any" name="%s" value="%s"%s>`, field.Name, templ.EscapeString(value), required)
	case forms.KindSelect:
		if err = writeSelect(w, field.Name, required, value, stringOptions(field.Options)); err != nil {
			return err
		}
	case forms.KindRef:
		if err = writeSelect(w, field.Name, required, value, options); err != nil {
			return err
		}
	default:
		_, err = fmt.Fprintf(w, `<input type="text" name="%s" value="%s"%s>`, field.Name, templ.EscapeString(value), required)
	}
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, `</label>`)
	return err
}

func writeSelect(w io.Writer, name, required, value string, options []Option) error {
	if _, err := fmt.Fprintf(w, `<select name="%s"%s><option value="">—</option>`, name, required); err != nil {
		return err
	}
	for _, option := range options {
		selected := ""
		if option.Value == value {
			selected = " selected"
		}
		if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>`, templ.EscapeString(option.Value), selected, templ.EscapeString(option.Label)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</select>`)
	return err
}

func stringOptions(values []string) []Option {
	options := make([]Option, 0, len(values))
	for _, value := range values {
		options = append(options, Option{Value: value, Label: value})
	}
	return options
}

// deleteButton renders the confirm-before-delete island used on lists and
// detail pages.
func deleteButton(basePath string, id uint) string {
	return fmt.Sprintf(
		`<form class="inline" method="post" action="%s/delete/%d" onsubmit="return confirm('Delete this record?')"><button type="submit" class="danger">Delete</button></form>`,
		basePath, id,
	)
}
