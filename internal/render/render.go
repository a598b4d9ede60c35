package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/microcosm-cc/bluemonday"

	"github.com/olegiv/veracity-admin/internal/model"
	"github.com/olegiv/veracity-admin/internal/session"
	"github.com/olegiv/veracity-admin/internal/storage"
	"github.com/olegiv/veracity-admin/internal/uikit"
)

// Renderer handles template rendering with caching.
type Renderer struct {
	templates      map[string]*template.Template
	sessionManager *scs.SessionManager
	storage        *storage.Resolver
	sanitizer      *bluemonday.Policy
	extraFuncs     template.FuncMap
	isDev          bool
}

// Config holds renderer configuration.
type Config struct {
	TemplatesFS    fs.FS
	SessionManager *scs.SessionManager
	Storage        *storage.Resolver
	IsDev          bool
}

// New creates a new Renderer with parsed templates.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		templates:      make(map[string]*template.Template),
		sessionManager: cfg.SessionManager,
		storage:        cfg.Storage,
		sanitizer:      bluemonday.UGCPolicy(),
		isDev:          cfg.IsDev,
	}

	if err := r.parseTemplates(cfg.TemplatesFS); err != nil {
		return nil, err
	}

	return r, nil
}

// AddTemplateFuncs registers extra template functions. Call before
// parsing has any effect on templates; later calls only affect
// TemplateFuncs lookups.
func (r *Renderer) AddTemplateFuncs(funcs template.FuncMap) {
	if r.extraFuncs == nil {
		r.extraFuncs = make(template.FuncMap)
	}
	for name, fn := range funcs {
		r.extraFuncs[name] = fn
	}
}

// parseTemplates parses all templates from the filesystem.
func (r *Renderer) parseTemplates(templatesFS fs.FS) error {
	partials, err := r.getTemplateFiles(templatesFS, "partials")
	if err != nil {
		return fmt.Errorf("getting partials: %w", err)
	}

	baseLayout := "layouts/base.html"

	// Console pages render inside the console layout.
	consoleTemplates, err := r.getTemplateFiles(templatesFS, "console")
	if err != nil {
		return fmt.Errorf("getting console templates: %w", err)
	}

	consoleLayout := "layouts/console.html"

	for _, tmplPath := range consoleTemplates {
		name := filepath.Base(tmplPath)
		name = strings.TrimSuffix(name, ".html")
		name = "console/" + name

		// Parse in order: base layout, console layout, partials, page template
		files := []string{baseLayout, consoleLayout}
		files = append(files, partials...)
		files = append(files, tmplPath)

		tmpl, err := template.New("").Funcs(r.TemplateFuncs()).ParseFS(templatesFS, files...)
		if err != nil {
			return fmt.Errorf("parsing template %s: %w", name, err)
		}

		r.templates[name] = tmpl
	}

	// Auth pages use the bare base layout.
	authTemplates, err := r.getTemplateFiles(templatesFS, "auth")
	if err != nil {
		return fmt.Errorf("getting auth templates: %w", err)
	}

	for _, tmplPath := range authTemplates {
		name := filepath.Base(tmplPath)
		name = strings.TrimSuffix(name, ".html")
		name = "auth/" + name

		files := []string{baseLayout}
		files = append(files, partials...)
		files = append(files, tmplPath)

		tmpl, err := template.New("").Funcs(r.TemplateFuncs()).ParseFS(templatesFS, files...)
		if err != nil {
			return fmt.Errorf("parsing template %s: %w", name, err)
		}

		r.templates[name] = tmpl
	}

	return nil
}

// getTemplateFiles returns all .html files in a directory.
func (r *Renderer) getTemplateFiles(templatesFS fs.FS, dir string) ([]string, error) {
	var files []string

	entries, err := fs.ReadDir(templatesFS, dir)
	if err != nil {
		// Directory might not exist yet, that's ok
		return files, nil
	}

	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".html") {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}

	return files, nil
}

// TemplateFuncs returns the full function map available to templates:
// the shared uikit helpers plus console-specific functions.
func (r *Renderer) TemplateFuncs() template.FuncMap {
	funcs := uikit.TemplateFuncs()

	funcs["safe"] = func(s string) template.HTML {
		return template.HTML(s)
	}
	funcs["sanitizeHTML"] = func(s string) template.HTML {
		return template.HTML(r.sanitize(s))
	}
	funcs["mediaURL"] = func(ref string) string {
		if r.storage == nil {
			return ref
		}
		return r.storage.Resolve(ref)
	}
	funcs["seq"] = func(start, end int) []int {
		var result []int
		for i := start; i <= end; i++ {
			result = append(result, i)
		}
		return result
	}
	funcs["usersListURL"] = usersListURL
	funcs["userTabURL"] = userTabURL

	for name, fn := range r.extraFuncs {
		funcs[name] = fn
	}

	return funcs
}

func (r *Renderer) sanitize(s string) string {
	if r.sanitizer == nil {
		return bluemonday.UGCPolicy().Sanitize(s)
	}
	return r.sanitizer.Sanitize(s)
}

// usersListURL builds the user directory URL preserving the active
// status filter and search query.
func usersListURL(status, search string, page int) string {
	params := url.Values{}
	if status != "" {
		params.Set("status", status)
	}
	if search != "" {
		params.Set("search", search)
	}
	if page > 1 {
		params.Set("page", strconv.Itoa(page))
	}
	if len(params) == 0 {
		return "/users"
	}
	return "/users?" + params.Encode()
}

// userTabURL builds a user detail URL for the given tab.
func userTabURL(userID, tab string, page int) string {
	u := "/users/" + url.PathEscape(userID)
	params := url.Values{}
	if tab != "" && tab != "profile" {
		params.Set("tab", tab)
	}
	if page > 1 {
		params.Set("page", strconv.Itoa(page))
	}
	if len(params) == 0 {
		return u
	}
	return u + "?" + params.Encode()
}

// TemplateData holds data passed to templates.
type TemplateData struct {
	Title       string
	Active      string
	Admin       *model.AdminInfo
	Data        any
	Flash       string
	FlashKind   string
	CurrentYear int
	IsDev       bool
}

// Render renders a template with the given data.
func (r *Renderer) Render(w http.ResponseWriter, req *http.Request, name string, data TemplateData) error {
	tmpl, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("template %s not found", name)
	}

	data.CurrentYear = time.Now().Year()
	data.IsDev = r.isDev

	if r.sessionManager != nil {
		if flash := r.sessionManager.PopString(req.Context(), session.KeyFlash); flash != "" {
			data.Flash = flash
			data.FlashKind = r.sessionManager.PopString(req.Context(), session.KeyFlashKind)
			if data.FlashKind == "" {
				data.FlashKind = "info"
			}
		}
	}

	// Render to buffer first to catch errors
	buf := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(buf, "base", data); err != nil {
		return fmt.Errorf("executing template %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
	return nil
}

// SetFlash sets a flash message in the session.
func (r *Renderer) SetFlash(req *http.Request, message, kind string) {
	if r.sessionManager != nil {
		r.sessionManager.Put(req.Context(), session.KeyFlash, message)
		r.sessionManager.Put(req.Context(), session.KeyFlashKind, kind)
	}
}
