package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/a-h/templ"

	"herbarium/internal/forms"
	applog "herbarium/internal/log"
	"herbarium/internal/views/layout"
	"herbarium/internal/views/pages"
)

// Definition declares everything the generic resource machinery needs to
// serve one single-table entity: its routes, its form, its table columns and
// its validation. One definition drives both the JSON API and the admin
// pages, so growing the catalog by one entity means writing one definition.
type Definition[M any] struct {
	// Singular is the lowercase display name ("medicinal property").
	Singular string
	// Title heads the admin pages ("Medicinal Properties").
	Title string
	// Slug is the path segment under /api/ and /admin/.
	Slug string
	// Fields drive the admin form and the form binder.
	Fields []forms.Field
	// Columns and Cells shape the admin list table.
	Columns []string
	Cells   func(M) []string
	// Validate enforces required fields before any persistence call.
	Validate func(*M) error
	// ListOrder and Preloads tune the list queries.
	ListOrder string
	Preloads  []string
	// Refs supplies dropdown options for ref fields, keyed by field name.
	Refs func(ctx context.Context, h *Handlers) map[string][]pages.Option
	// Delete overrides the plain row delete (the plot guard uses this).
	Delete func(ctx context.Context, h *Handlers, id uint) error
}

// Resource serves the JSON API and admin HTML routes for one entity.
type Resource[M any] struct {
	h   *Handlers
	def Definition[M]
}

// NewResource binds a definition to the shared handler dependencies.
func NewResource[M any](h *Handlers, def Definition[M]) *Resource[M] {
	return &Resource[M]{h: h, def: def}
}

func (res *Resource[M]) apiPath() string   { return "/api/" + res.def.Slug }
func (res *Resource[M]) adminPath() string { return "/admin/" + res.def.Slug }

// ServeAPI dispatches /api/{slug} and /api/{slug}/{id}.
func (res *Resource[M]) ServeAPI(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, res.apiPath()), "/")

	if rest == "" {
		switch r.Method {
		case http.MethodGet:
			res.apiList(w, r)
		case http.MethodPost:
			res.apiCreate(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
		return
	}

	id, ok := parseID(rest)
	if !ok {
		writeJSONError(w, http.StatusBadRequest, "identifier must be numeric")
		return
	}

	switch r.Method {
	case http.MethodGet:
		res.apiGet(w, r, id)
	case http.MethodPut:
		res.apiUpdate(w, r, id)
	case http.MethodDelete:
		res.apiDelete(w, r, id)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (res *Resource[M]) listQuery(ctx context.Context) ([]M, error) {
	var items []M
	query := res.h.db.WithContext(ctx)
	for _, preload := range res.def.Preloads {
		query = query.Preload(preload)
	}
	if res.def.ListOrder != "" {
		query = query.Order(res.def.ListOrder)
	}
	return items, query.Find(&items).Error
}

func (res *Resource[M]) getQuery(ctx context.Context, id uint) (*M, error) {
	item := new(M)
	query := res.h.db.WithContext(ctx)
	for _, preload := range res.def.Preloads {
		query = query.Preload(preload)
	}
	return item, query.First(item, id).Error
}

func (res *Resource[M]) apiList(w http.ResponseWriter, r *http.Request) {
	items, err := res.listQuery(r.Context())
	if err != nil {
		writePersistenceError(w, r, err, "unable to load "+res.def.Singular+" list")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (res *Resource[M]) apiGet(w http.ResponseWriter, r *http.Request, id uint) {
	item, err := res.getQuery(r.Context(), id)
	if err != nil {
		writePersistenceError(w, r, err, "unable to load "+res.def.Singular)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (res *Resource[M]) apiCreate(w http.ResponseWriter, r *http.Request) {
	item := new(M)
	if err := json.NewDecoder(r.Body).Decode(item); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	resetAuditFields(item)

	if res.def.Validate != nil {
		if err := res.def.Validate(item); err != nil {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	if err := res.h.db.WithContext(r.Context()).Create(item).Error; err != nil {
		writePersistenceError(w, r, err, "unable to create "+res.def.Singular)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (res *Resource[M]) apiUpdate(w http.ResponseWriter, r *http.Request, id uint) {
	item := new(M)
	if err := res.h.db.WithContext(r.Context()).First(item, id).Error; err != nil {
		writePersistenceError(w, r, err, "unable to load "+res.def.Singular)
		return
	}

	createdAt := auditField(item, "CreatedAt")
	if err := json.NewDecoder(r.Body).Decode(item); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	setAuditField(item, "ID", uint64(id))
	restoreAuditField(item, "CreatedAt", createdAt)

	if res.def.Validate != nil {
		if err := res.def.Validate(item); err != nil {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	if err := res.h.db.WithContext(r.Context()).Save(item).Error; err != nil {
		writePersistenceError(w, r, err, "unable to update "+res.def.Singular)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (res *Resource[M]) apiDelete(w http.ResponseWriter, r *http.Request, id uint) {
	if res.def.Delete != nil {
		if err := res.def.Delete(r.Context(), res.h, id); err != nil {
			writeRepositoryError(w, r, err, "unable to delete "+res.def.Singular)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := res.h.db.WithContext(r.Context()).Delete(new(M), id).Error; err != nil {
		writePersistenceError(w, r, err, "unable to delete "+res.def.Singular)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// count backs the admin landing page.
func (res *Resource[M]) count(ctx context.Context) int64 {
	var total int64
	if err := res.h.db.WithContext(ctx).Model(new(M)).Count(&total).Error; err != nil {
		applog.Error(ctx, "failed to count "+res.def.Slug, "error", err)
		return 0
	}
	return total
}

// resetAuditFields zeroes the generated identifier and timestamps a client
// must not supply on create.
func resetAuditFields(item any) {
	setAuditField(item, "ID", 0)
	restoreAuditField(item, "CreatedAt", time.Time{})
	restoreAuditField(item, "UpdatedAt", time.Time{})
}

func auditField(item any, name string) time.Time {
	field := reflect.Indirect(reflect.ValueOf(item)).FieldByName(name)
	if !field.IsValid() {
		return time.Time{}
	}
	if value, ok := field.Interface().(time.Time); ok {
		return value
	}
	return time.Time{}
}

func restoreAuditField(item any, name string, value time.Time) {
	field := reflect.Indirect(reflect.ValueOf(item)).FieldByName(name)
	if field.IsValid() && field.CanSet() && field.Type() == reflect.TypeOf(time.Time{}) {
		field.Set(reflect.ValueOf(value))
	}
}

func setAuditField(item any, name string, value uint64) {
	field := reflect.Indirect(reflect.ValueOf(item)).FieldByName(name)
	if field.IsValid() && field.CanSet() && field.Kind() == reflect.Uint {
		field.SetUint(value)
	}
}

// modelID reads the promoted gorm.Model identifier from any catalog model.
func modelID(item any) uint {
	field := reflect.Indirect(reflect.ValueOf(item)).FieldByName("ID")
	if field.IsValid() && field.Kind() == reflect.Uint {
		return uint(field.Uint())
	}
	return 0
}

// renderPage writes an admin page through the shared layout chrome. The
// flash message, if any, is consumed here so it shows exactly once.
func (h *Handlers) renderPage(w http.ResponseWriter, r *http.Request, title string, content templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	page := layout.Page(title, h.popFlash(r.Context()), content)
	if err := page.Render(r.Context(), w); err != nil {
		applog.Error(r.Context(), "failed to render page", "error", err, "title", title)
		http.Error(w, "unable to render page", http.StatusInternalServerError)
	}
}
