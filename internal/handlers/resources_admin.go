package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"herbarium/internal/forms"
	"herbarium/internal/repository"
	"herbarium/internal/views/pages"
)

// ServeAdmin dispatches the HTML admin routes for one resource family:
//
//	GET  /admin/{slug}               list
//	GET  /admin/{slug}/new           creation form
//	POST /admin/{slug}/new           create
//	GET  /admin/{slug}/{id}          detail
//	GET  /admin/{slug}/edit/{id}     edit form
//	POST /admin/{slug}/edit/{id}     update
//	POST /admin/{slug}/delete/{id}   delete
func (res *Resource[M]) ServeAdmin(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, res.adminPath()), "/")

	switch {
	case rest == "":
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		res.adminList(w, r)
	case rest == "new":
		switch r.Method {
		case http.MethodGet:
			res.adminForm(w, r, nil, nil, "")
		case http.MethodPost:
			res.adminCreate(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	case strings.HasPrefix(rest, "edit/"):
		id, ok := parseID(strings.TrimPrefix(rest, "edit/"))
		if !ok {
			http.NotFound(w, r)
			return
		}
		switch r.Method {
		case http.MethodGet:
			res.adminEditForm(w, r, id)
		case http.MethodPost:
			res.adminUpdate(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	case strings.HasPrefix(rest, "delete/"):
		id, ok := parseID(strings.TrimPrefix(rest, "delete/"))
		if !ok || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		res.adminDelete(w, r, id)
	default:
		id, ok := parseID(rest)
		if !ok || r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}
		res.adminDetail(w, r, id)
	}
}

func (res *Resource[M]) adminList(w http.ResponseWriter, r *http.Request) {
	items, err := res.listQuery(r.Context())
	if err != nil {
		http.Error(w, "unable to load "+res.def.Singular+" list", http.StatusInternalServerError)
		return
	}

	rows := make([]pages.Row, 0, len(items))
	for i := range items {
		rows = append(rows, pages.Row{ID: modelID(&items[i]), Cells: res.def.Cells(items[i])})
	}
	res.h.renderPage(w, r, res.def.Title, pages.ResourceList(res.def.Title, res.adminPath(), res.def.Columns, rows))
}

func (res *Resource[M]) adminDetail(w http.ResponseWriter, r *http.Request, id uint) {
	item, err := res.getQuery(r.Context(), id)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	values := forms.Values(res.def.Fields, item)
	pairs := make([][2]string, 0, len(res.def.Fields))
	for _, field := range res.def.Fields {
		value := values[field.Name]
		if field.Kind == forms.KindBool {
			if value == "" {
				value = "No"
			} else {
				value = "Yes"
			}
		}
		pairs = append(pairs, [2]string{field.Label, value})
	}

	title := res.def.Title + " — Detail"
	res.h.renderPage(w, r, title, pages.ResourceDetail(title, res.adminPath(), id, pairs, nil))
}

// adminForm renders the creation or edit form. values may carry a previous
// submission so a failed validation keeps the entered data on screen.
func (res *Resource[M]) adminForm(w http.ResponseWriter, r *http.Request, item *M, values map[string]string, errMsg string) {
	action := res.adminPath() + "/new"
	title := "New " + res.def.Singular
	if item != nil {
		action = res.adminPath() + "/edit/" + itoa(modelID(item))
		title = "Edit " + res.def.Singular
	}
	if values == nil {
		if item != nil {
			values = forms.Values(res.def.Fields, item)
		} else {
			values = map[string]string{}
		}
	}

	var refs map[string][]pages.Option
	if res.def.Refs != nil {
		refs = res.def.Refs(r.Context(), res.h)
	}
	res.h.renderPage(w, r, title, pages.ResourceForm(title, action, res.def.Fields, values, errMsg, refs))
}

func (res *Resource[M]) adminCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form submission", http.StatusBadRequest)
		return
	}

	item := new(M)
	if err := res.bindAndValidate(r, item); err != nil {
		res.adminForm(w, r, nil, submittedValues(r, res.def.Fields), err.Error())
		return
	}

	if err := res.h.db.WithContext(r.Context()).Create(item).Error; err != nil {
		res.adminForm(w, r, nil, submittedValues(r, res.def.Fields), persistenceMessage(err, "unable to save the "+res.def.Singular))
		return
	}

	res.h.putFlash(r.Context(), "Created the "+res.def.Singular+".")
	http.Redirect(w, r, res.adminPath(), http.StatusSeeOther)
}

func (res *Resource[M]) adminEditForm(w http.ResponseWriter, r *http.Request, id uint) {
	item, err := res.getQuery(r.Context(), id)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	res.adminForm(w, r, item, nil, "")
}

func (res *Resource[M]) adminUpdate(w http.ResponseWriter, r *http.Request, id uint) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form submission", http.StatusBadRequest)
		return
	}

	item := new(M)
	if err := res.h.db.WithContext(r.Context()).First(item, id).Error; err != nil {
		http.NotFound(w, r)
		return
	}

	if err := res.bindAndValidate(r, item); err != nil {
		res.adminForm(w, r, item, submittedValues(r, res.def.Fields), err.Error())
		return
	}

	if err := res.h.db.WithContext(r.Context()).Save(item).Error; err != nil {
		res.adminForm(w, r, item, submittedValues(r, res.def.Fields), persistenceMessage(err, "unable to save the "+res.def.Singular))
		return
	}

	res.h.putFlash(r.Context(), "Updated the "+res.def.Singular+".")
	http.Redirect(w, r, res.adminPath(), http.StatusSeeOther)
}

func (res *Resource[M]) adminDelete(w http.ResponseWriter, r *http.Request, id uint) {
	var err error
	if res.def.Delete != nil {
		err = res.def.Delete(r.Context(), res.h, id)
	} else {
		err = res.h.db.WithContext(r.Context()).Delete(new(M), id).Error
	}

	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			res.h.putFlash(r.Context(), err.Error())
		} else {
			res.h.putFlash(r.Context(), "Unable to delete the "+res.def.Singular+".")
		}
	} else {
		res.h.putFlash(r.Context(), "Deleted the "+res.def.Singular+".")
	}
	http.Redirect(w, r, res.adminPath(), http.StatusSeeOther)
}

func (res *Resource[M]) bindAndValidate(r *http.Request, item *M) error {
	if err := forms.Bind(r.PostForm, res.def.Fields, item); err != nil {
		return err
	}
	if res.def.Validate != nil {
		return res.def.Validate(item)
	}
	return nil
}

func submittedValues(r *http.Request, fields []forms.Field) map[string]string {
	values := make(map[string]string, len(fields))
	for _, field := range fields {
		values[field.Name] = strings.TrimSpace(r.PostForm.Get(field.Name))
	}
	return values
}

func persistenceMessage(err error, fallback string) string {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return "A record with the same unique value already exists."
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return "A referenced record is missing or still in use."
	default:
		return fallback
	}
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
