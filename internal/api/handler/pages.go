package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bloodchain/portal/internal/api/metrics"
	"github.com/bloodchain/portal/internal/core/domain"
	"github.com/bloodchain/portal/internal/core/ports"
)

// viewResult is what a page renders on GET. Error is shown inline.
type viewResult struct {
	Data  any
	Error string
}

// submitResult tells the dispatcher where to send the browser after a POST.
type submitResult struct {
	Flash string
	Query url.Values
}

// Page serves one domain.PageID. Submit errors that userMessage recognises are
// flashed and the browser is sent back to the page.
type Page interface {
	Show(c echo.Context, req pageRequest) (viewResult, error)
	Submit(c echo.Context, req pageRequest) (submitResult, error)
}

// readOnly rejects form posts on pages without forms.
type readOnly struct{}

func (readOnly) Submit(echo.Context, pageRequest) (submitResult, error) {
	return submitResult{}, echo.NewHTTPError(http.StatusMethodNotAllowed, "page has no form")
}

var errUnknownOp = echo.NewHTTPError(http.StatusBadRequest, "unknown form operation")

// NewPages wires every page implementation to its service.
func NewPages(donor ports.DonorService, requests ports.RequestService, inventory ports.InventoryService,
	tracking ports.TrackingService, users ports.UserService) map[domain.PageID]Page {
	return map[domain.PageID]Page{
		domain.PageDonorDashboard: dashboardPage{donor: donor},
		domain.PageSchedule:       schedulePage{donor: donor},
		domain.PageHistory:        historyPage{donor: donor},
		domain.PageRewards:        rewardsPage{donor: donor},
		domain.PageBloodRequest:   requestPage{requests: requests},
		domain.PageInventory:      inventoryPage{inventory: inventory},
		domain.PageTracking:       trackingPage{tracking: tracking},
		domain.PageUsers:          usersPage{users: users},
	}
}

type dashboardPage struct {
	readOnly
	donor ports.DonorService
}

func (p dashboardPage) Show(c echo.Context, req pageRequest) (viewResult, error) {
	v, err := p.donor.Dashboard(c.Request().Context(), req.SID)
	return viewResult{Data: v}, err
}

type schedulePage struct {
	donor ports.DonorService
}

func (p schedulePage) Show(c echo.Context, req pageRequest) (viewResult, error) {
	v, err := p.donor.Schedule(c.Request().Context(), req.SID)
	return viewResult{Data: v}, err
}

func (p schedulePage) Submit(c echo.Context, req pageRequest) (submitResult, error) {
	ctx := c.Request().Context()
	switch c.FormValue("op") {
	case "select":
		i, err := strconv.Atoi(c.FormValue("slot"))
		if err != nil {
			return submitResult{}, domain.ErrInvalidSlot
		}
		return submitResult{}, p.donor.SelectSlot(ctx, req.SID, i)
	case "confirm":
		slot, err := p.donor.ConfirmSlot(ctx, req.SID)
		if err != nil {
			return submitResult{}, err
		}
		metrics.DonationsScheduledTotal.Inc()
		return submitResult{Flash: fmt.Sprintf("Donation scheduled for %s at %s at %s.", slot.Date, slot.Time, slot.Location)}, nil
	case "reset":
		return submitResult{}, p.donor.ResetSchedule(ctx, req.SID)
	}
	return submitResult{}, errUnknownOp
}

type historyPage struct {
	readOnly
	donor ports.DonorService
}

func (p historyPage) Show(c echo.Context, req pageRequest) (viewResult, error) {
	v, err := p.donor.History(c.Request().Context(), req.SID)
	return viewResult{Data: v}, err
}

type rewardsPage struct {
	donor ports.DonorService
}

func (p rewardsPage) Show(c echo.Context, req pageRequest) (viewResult, error) {
	v, err := p.donor.Rewards(c.Request().Context(), req.SID)
	return viewResult{Data: v}, err
}

func (p rewardsPage) Submit(c echo.Context, req pageRequest) (submitResult, error) {
	if c.FormValue("op") != "redeem" {
		return submitResult{}, errUnknownOp
	}
	reward, err := p.donor.Redeem(c.Request().Context(), req.SID, c.FormValue("reward"))
	switch {
	case errors.Is(err, domain.ErrInsufficientPoints):
		metrics.RewardRedemptionsTotal.WithLabelValues("insufficient").Inc()
		return submitResult{}, err
	case err != nil:
		metrics.RewardRedemptionsTotal.WithLabelValues("rejected").Inc()
		return submitResult{}, err
	}
	metrics.RewardRedemptionsTotal.WithLabelValues("ok").Inc()
	return submitResult{Flash: fmt.Sprintf("Successfully redeemed %s!", reward.Name)}, nil
}

type requestPage struct {
	requests ports.RequestService
}

func (p requestPage) Show(c echo.Context, req pageRequest) (viewResult, error) {
	v, err := p.requests.Request(c.Request().Context(), req.SID)
	return viewResult{Data: v}, err
}

func (p requestPage) Submit(c echo.Context, req pageRequest) (submitResult, error) {
	ctx := c.Request().Context()
	switch c.FormValue("op") {
	case "submit":
		var form bloodRequestForm
		if err := c.Bind(&form); err != nil {
			return submitResult{}, err
		}
		id, err := p.requests.Submit(ctx, req.SID, form.toDomain())
		if err != nil {
			return submitResult{}, err
		}
		metrics.BloodRequestsTotal.WithLabelValues(form.UrgencyLevel).Inc()
		return submitResult{Flash: fmt.Sprintf("Blood request %s submitted.", id)}, nil
	case "reset":
		return submitResult{}, p.requests.Reset(ctx, req.SID)
	}
	return submitResult{}, errUnknownOp
}

type inventoryData struct {
	View     ports.InventoryView
	Selected *domain.BloodUnit
	Path     string
}

// UnitLink opens the update panel for id, or closes it when id is empty,
// keeping the active filters.
func (d inventoryData) UnitLink(id string) string {
	q := filterQuery(d.View.Filter)
	if id != "" {
		q.Set("unit", id)
	}
	if len(q) == 0 {
		return d.Path
	}
	return d.Path + "?" + q.Encode()
}

func filterQuery(f domain.InventoryFilter) url.Values {
	q := url.Values{}
	for key, v := range map[string]string{"blood_type": f.BloodType, "status": f.Status, "q": f.Search} {
		if v != "" {
			q.Set(key, v)
		}
	}
	return q
}

type inventoryPage struct {
	inventory ports.InventoryService
}

func (p inventoryPage) Show(c echo.Context, req pageRequest) (viewResult, error) {
	ctx := c.Request().Context()
	filter := domain.InventoryFilter{
		BloodType: c.QueryParam("blood_type"),
		Status:    c.QueryParam("status"),
		Search:    c.QueryParam("q"),
	}
	view, err := p.inventory.Inventory(ctx, req.SID, filter)
	if err != nil {
		return viewResult{}, err
	}

	res := viewResult{}
	data := inventoryData{View: view, Path: req.Path}
	if id := c.QueryParam("unit"); id != "" {
		unit, err := p.inventory.Unit(ctx, req.SID, id)
		switch {
		case errors.Is(err, domain.ErrUnitNotFound):
			res.Error, _ = userMessage(err)
		case err != nil:
			return viewResult{}, err
		default:
			data.Selected = &unit
		}
	}
	res.Data = data
	return res, nil
}

func (p inventoryPage) Submit(c echo.Context, req pageRequest) (submitResult, error) {
	if c.FormValue("op") != "update" {
		return submitResult{}, errUnknownOp
	}
	var form inventoryUpdateForm
	if err := c.Bind(&form); err != nil {
		return submitResult{}, err
	}
	q := filterQuery(form.filter())
	unit, err := p.inventory.UpdateUnit(c.Request().Context(), req.SID, form.toDomain())
	if err != nil {
		if form.UnitID != "" {
			q.Set("unit", form.UnitID)
		}
		return submitResult{Query: q}, err
	}
	metrics.InventoryUpdatesTotal.WithLabelValues(form.Action).Inc()
	return submitResult{Flash: fmt.Sprintf("Unit %s has been updated successfully.", unit.ID), Query: q}, nil
}

type trackingData struct {
	Query  string
	Result *ports.TrackingView
}

type trackingPage struct {
	readOnly
	tracking ports.TrackingService
}

// Show looks up ?id= when the search form was submitted. An absent id renders
// the empty form; a present but blank one is an error.
func (p trackingPage) Show(c echo.Context, req pageRequest) (viewResult, error) {
	if !c.QueryParams().Has("id") {
		return viewResult{Data: trackingData{}}, nil
	}
	id := c.QueryParam("id")
	data := trackingData{Query: id}

	v, err := p.tracking.Track(c.Request().Context(), req.SID, id)
	if err != nil {
		msg, ok := userMessage(err)
		if !ok {
			return viewResult{}, err
		}
		metrics.TrackingLookupsTotal.WithLabelValues(lookupResult(err)).Inc()
		return viewResult{Data: data, Error: msg}, nil
	}
	metrics.TrackingLookupsTotal.WithLabelValues("found").Inc()
	data.Result = &v
	return viewResult{Data: data}, nil
}

func lookupResult(err error) string {
	if errors.Is(err, domain.ErrEmptyDonationID) {
		return "empty"
	}
	return "not_found"
}

type usersData struct {
	Users   []domain.User
	Editing *domain.UserEdit
}

type usersPage struct {
	users ports.UserService
}

// Show lists users and, with ?edit=ID, opens the edit form. Unsaved field
// values carried in the query (from a preview or a rejected save) override
// the stored user.
func (p usersPage) Show(c echo.Context, req pageRequest) (viewResult, error) {
	ctx := c.Request().Context()
	users, err := p.users.Users(ctx, req.SID)
	if err != nil {
		return viewResult{}, err
	}
	res := viewResult{}
	data := usersData{Users: users}

	if id := c.QueryParam("edit"); id != "" {
		u, err := p.users.User(ctx, req.SID, id)
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			res.Error, _ = userMessage(err)
		case err != nil:
			return viewResult{}, err
		default:
			edit := editFromQuery(c.QueryParams(), u)
			data.Editing = &edit
		}
	}
	res.Data = data
	return res, nil
}

func editFromQuery(q url.Values, u domain.User) domain.UserEdit {
	edit := domain.UserEdit{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		BloodType:    u.BloodType,
		HospitalName: u.HospitalName,
	}
	if !q.Has("name") {
		return edit
	}
	edit.Name = q.Get("name")
	edit.Email = q.Get("email")
	if r, err := domain.ParseRole(q.Get("role")); err == nil {
		edit.Role = r
	}
	edit.BloodType = q.Get("blood_type")
	edit.HospitalName = q.Get("hospital_name")
	return edit
}

func (p usersPage) Submit(c echo.Context, req pageRequest) (submitResult, error) {
	var form userEditForm
	if err := c.Bind(&form); err != nil {
		return submitResult{}, err
	}
	draft := url.Values{
		"edit":          {form.ID},
		"name":          {form.Name},
		"email":         {form.Email},
		"role":          {form.Role},
		"blood_type":    {form.BloodType},
		"hospital_name": {form.HospitalName},
	}

	switch c.FormValue("op") {
	case "preview":
		return submitResult{Query: draft}, nil
	case "save":
		if err := c.Validate(&form); err != nil {
			return submitResult{Query: draft}, err
		}
		if _, err := p.users.Save(c.Request().Context(), req.SID, form.toDomain()); err != nil {
			return submitResult{Query: draft}, err
		}
		metrics.UserUpdatesTotal.Inc()
		return submitResult{Flash: "User details updated successfully."}, nil
	}
	return submitResult{}, errUnknownOp
}
