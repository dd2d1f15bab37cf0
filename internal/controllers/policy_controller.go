package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/insurewise/policy-portal/internal/constants"
	"github.com/insurewise/policy-portal/internal/dtos"
	"github.com/insurewise/policy-portal/internal/services"
	"github.com/insurewise/policy-portal/internal/utils"
	"github.com/insurewise/policy-portal/internal/views"
)

const (
	listPath       = "/view"
	deletedFlag    = "deleted"
	addTitle       = "Add Insurance"
	editTitle      = "Update Insurance"
	addSubmitLabel = "Add Insurance"
	editSubmit     = "Update Insurance"
)

type PolicyController struct {
	svc   services.PolicyService
	views *views.Renderer
}

func NewPolicyController(s services.PolicyService, v *views.Renderer) *PolicyController {
	return &PolicyController{svc: s, views: v}
}

// -----------------------------------------------------------------------------
// GET / and GET /view
// -----------------------------------------------------------------------------
func (c *PolicyController) ListHandler(w http.ResponseWriter, r *http.Request) {
	page := dtos.PolicyListPage{DeleteNoticeMS: constants.DeleteNoticeTTL.Milliseconds()}
	if r.URL.Query().Get(deletedFlag) != "" {
		page.DeleteMessage = constants.MsgDeleted
	}
	c.renderList(w, r, page)
}

// -----------------------------------------------------------------------------
// POST /delete/{id}
// -----------------------------------------------------------------------------
func (c *PolicyController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := policyID(r)
	if !ok {
		http.Redirect(w, r, listPath, http.StatusSeeOther)
		return
	}

	if err := c.svc.Delete(r.Context(), id); err != nil {
		logFailure(r, err, "Delete policy failed")
		c.renderList(w, r, dtos.PolicyListPage{ErrorMessage: constants.MsgErrDeleting + err.Error()})
		return
	}
	http.Redirect(w, r, listPath+"?"+deletedFlag+"=1", http.StatusSeeOther)
}

// -----------------------------------------------------------------------------
// GET /add, POST /add
// -----------------------------------------------------------------------------
func (c *PolicyController) AddFormHandler(w http.ResponseWriter, _ *http.Request) {
	c.views.Form(w, http.StatusOK, views.NewFormPage(addTitle, "/add", addSubmitLabel, dtos.NewPolicyForm()))
}

func (c *PolicyController) AddSubmitHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		c.views.Form(w, http.StatusBadRequest, withError(
			views.NewFormPage(addTitle, "/add", addSubmitLabel, dtos.NewPolicyForm()),
			constants.MsgErrAdding+"invalid form submission",
		))
		return
	}

	form := dtos.PolicyFormFromRequest(r)
	page := views.NewFormPage(addTitle, "/add", addSubmitLabel, form)

	_, err := c.svc.Create(r.Context(), form.ToInput())
	switch {
	case err == nil:
		page.Form = dtos.NewPolicyForm()
		page.SuccessMessage = constants.MsgAdded
		c.views.Form(w, http.StatusOK, views.WithRedirect(page, listPath))
	case errors.Is(err, utils.ErrValidation):
		c.views.Form(w, http.StatusUnprocessableEntity, withFieldErrors(page, err))
	default:
		logFailure(r, err, "Create policy failed")
		c.views.Form(w, http.StatusBadGateway, withError(page, constants.MsgErrAdding+err.Error()))
	}
}

// -----------------------------------------------------------------------------
// GET /update/{id}, POST /update/{id}
// -----------------------------------------------------------------------------
func (c *PolicyController) UpdateFormHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := policyID(r)
	if !ok {
		http.Redirect(w, r, listPath, http.StatusSeeOther)
		return
	}
	page := editPage(id, dtos.NewPolicyForm())

	rec, err := c.svc.FetchByID(r.Context(), id)
	if err != nil {
		logFailure(r, err, "Load policy failed")
		page.Loaded = false
		status := http.StatusBadGateway
		if errors.Is(err, utils.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.views.Form(w, status, withError(page, constants.MsgErrLoading+err.Error()))
		return
	}

	page.Form = dtos.PolicyFormFromRecord(rec)
	c.views.Form(w, http.StatusOK, page)
}

func (c *PolicyController) UpdateSubmitHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := policyID(r)
	if !ok {
		http.Redirect(w, r, listPath, http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		c.views.Form(w, http.StatusBadRequest, withError(editPage(id, dtos.NewPolicyForm()), constants.MsgErrUpdating+"invalid form submission"))
		return
	}

	form := dtos.PolicyFormFromRequest(r)
	page := editPage(id, form)

	_, err := c.svc.Update(r.Context(), id, form.ToInput())
	switch {
	case err == nil:
		page.SuccessMessage = constants.MsgUpdated
		c.views.Form(w, http.StatusOK, views.WithRedirect(page, listPath))
	case errors.Is(err, utils.ErrValidation):
		c.views.Form(w, http.StatusUnprocessableEntity, withFieldErrors(page, err))
	default:
		logFailure(r, err, "Update policy failed")
		status := http.StatusBadGateway
		if errors.Is(err, utils.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.views.Form(w, status, withError(page, constants.MsgErrUpdating+err.Error()))
	}
}

// -----------------------------------------------------------------------------
// shared helpers
// -----------------------------------------------------------------------------

func (c *PolicyController) renderList(w http.ResponseWriter, r *http.Request, page dtos.PolicyListPage) {
	policies, err := c.svc.FetchAll(r.Context())
	if err != nil {
		logFailure(r, err, "List policies failed")
		if page.ErrorMessage == "" {
			page.ErrorMessage = constants.MsgErrLoadingList + err.Error()
		}
		page.DeleteMessage = ""
		c.views.List(w, http.StatusBadGateway, page)
		return
	}
	page.Policies = policies
	c.views.List(w, http.StatusOK, page)
}

func editPage(id int, form dtos.PolicyForm) dtos.PolicyFormPage {
	page := views.NewFormPage(editTitle, views.EditAction(id), editSubmit, form)
	page.IsEdit = true
	page.PolicyID = id
	return page
}

func withError(page dtos.PolicyFormPage, msg string) dtos.PolicyFormPage {
	page.ErrorMessage = msg
	return page
}

func withFieldErrors(page dtos.PolicyFormPage, err error) dtos.PolicyFormPage {
	var verr *utils.ValidationError
	if errors.As(err, &verr) {
		page.FieldErrors = verr.Fields
	}
	page.ErrorMessage = constants.MsgFixValidation
	return page
}

func policyID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func logFailure(r *http.Request, err error, msg string) {
	utils.Logger.WithFields(logrus.Fields{
		"request_id": utils.RequestIDFrom(r.Context()),
		"path":       r.URL.Path,
	}).WithError(err).Error(msg)
}
