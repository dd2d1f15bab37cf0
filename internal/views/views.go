// Package views renders the portal's HTML pages.
package views

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/insurewise/policy-portal/internal/constants"
	"github.com/insurewise/policy-portal/internal/dtos"
	"github.com/insurewise/policy-portal/internal/models"
	"github.com/insurewise/policy-portal/internal/utils"
	"github.com/insurewise/policy-portal/internal/validation"
)

var funcs = template.FuncMap{
	"formatDate":       FormatDate,
	"formatPremium":    func(p float64) string { return strconv.FormatFloat(p, 'f', 2, 64) },
	"statusBadgeClass": StatusBadgeClass,
	"redirectMS":       func(seconds float64) int64 { return int64(seconds * 1000) },
	"fieldError": func(errs map[string]string, field string) string {
		return validation.Message(field, errs[field])
	},
}

// Renderer executes the parsed page set. It is safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() *Renderer {
	return &Renderer{
		tmpl: template.Must(template.New("pages").Funcs(funcs).Parse(pageTemplates)),
	}
}

func (v *Renderer) List(w http.ResponseWriter, status int, page dtos.PolicyListPage) {
	v.render(w, status, "list", page)
}

func (v *Renderer) Form(w http.ResponseWriter, status int, page dtos.PolicyFormPage) {
	v.render(w, status, "form", page)
}

// render buffers the page so a template failure never leaves a half-written body.
func (v *Renderer) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := v.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		utils.Logger.WithError(err).Errorf("failed to render %s page", name)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// FormatDate shows a stored date as "Mar 10, 1995"; unreadable values pass
// through unchanged.
func FormatDate(s string) string {
	t, err := time.Parse(constants.DateLayout, s)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, s); err != nil {
			return s
		}
	}
	return t.Format(constants.DisplayDateLayout)
}

func StatusBadgeClass(s models.PolicyStatus) string {
	if s == models.PolicyStatusActive {
		return "badge-success"
	}
	return "badge-danger"
}

// NewFormPage fills the parts of a form page common to create and edit.
func NewFormPage(title, action, submit string, form dtos.PolicyForm) dtos.PolicyFormPage {
	return dtos.PolicyFormPage{
		Title:         title,
		Action:        action,
		SubmitLabel:   submit,
		Loaded:        true,
		Form:          form,
		PolicyTypes:   models.PolicyTypes,
		StatusOptions: models.PolicyStatuses,
	}
}

// WithRedirect schedules client-side navigation to target after the standard
// post-save delay.
func WithRedirect(page dtos.PolicyFormPage, target string) dtos.PolicyFormPage {
	page.RedirectTo = target
	page.RedirectAfter = constants.RedirectAfterSave.Seconds()
	return page
}

// EditAction is the form action for the record id.
func EditAction(id int) string {
	return fmt.Sprintf("/update/%d", id)
}
