package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloodchain/portal/internal/core/domain"
	"github.com/bloodchain/portal/internal/core/ports"
)

// APIHandler exposes the session and workspace data as JSON for tooling.
type APIHandler struct {
	nav       ports.Navigator
	inventory ports.InventoryService
	tracking  ports.TrackingService
}

func NewAPIHandler(nav ports.Navigator, inventory ports.InventoryService, tracking ports.TrackingService) *APIHandler {
	return &APIHandler{nav: nav, inventory: inventory, tracking: tracking}
}

type sessionResponse struct {
	Role      string `json:"role"`
	LoggedIn  bool   `json:"logged_in"`
	User      string `json:"user,omitempty"`
	Dashboard string `json:"dashboard,omitempty"`
}

type routesResponse struct {
	Role   string              `json:"role"`
	Base   string              `json:"base"`
	Routes []domain.RouteEntry `json:"routes"`
}

type unitResponse struct {
	domain.BloodUnit
	DaysUntilExpiry int  `json:"days_until_expiry"`
	ExpiringSoon    bool `json:"expiring_soon"`
}

type inventoryResponse struct {
	Units []unitResponse        `json:"units"`
	Stats domain.InventoryStats `json:"stats"`
}

type trackingResponse struct {
	Donation domain.TrackedDonation `json:"donation"`
	Progress int                    `json:"progress"`
	Timeline []domain.StageView     `json:"timeline"`
}

// Session reports the caller's session fields.
//
// @Summary      Current session
// @Tags         session
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /session [get]
func (h *APIHandler) Session(c echo.Context) error {
	_, sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	resp := sessionResponse{Role: string(sess.Role), LoggedIn: sess.LoggedIn, User: sess.User}
	if sess.LoggedIn {
		resp.Dashboard = sess.Role.DashboardPath()
	}
	return c.JSON(http.StatusOK, resp)
}

// Routes lists the navigation entries of the active role.
//
// @Summary      Role route table
// @Tags         session
// @Produce      json
// @Success      200  {object}  routesResponse
// @Failure      401  {object}  map[string]string
// @Router       /routes [get]
func (h *APIHandler) Routes(c echo.Context) error {
	_, sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, routesResponse{
		Role:   string(sess.Role),
		Base:   sess.Role.BasePath(),
		Routes: h.nav.Sidebar(sess.Role),
	})
}

// Inventory returns the session's filtered blood units and whole-inventory stats.
//
// @Summary      Blood inventory
// @Tags         inventory
// @Produce      json
// @Param        blood_type  query     string  false  "Blood type, e.g. O+"
// @Param        status      query     string  false  "Available, Reserved, Used or Expired"
// @Param        q           query     string  false  "Unit or donor id substring"
// @Success      200         {object}  inventoryResponse
// @Failure      401         {object}  map[string]string
// @Failure      403         {object}  map[string]string
// @Router       /inventory [get]
func (h *APIHandler) Inventory(c echo.Context) error {
	sid, _, err := ctxSession(c)
	if err != nil {
		return err
	}
	filter := domain.InventoryFilter{
		BloodType: c.QueryParam("blood_type"),
		Status:    c.QueryParam("status"),
		Search:    c.QueryParam("q"),
	}
	v, err := h.inventory.Inventory(c.Request().Context(), sid, filter)
	if err != nil {
		return err
	}

	units := make([]unitResponse, len(v.Units))
	for i, u := range v.Units {
		units[i] = unitResponse{BloodUnit: u.BloodUnit, DaysUntilExpiry: u.DaysUntilExpiry, ExpiringSoon: u.ExpiringSoon}
	}
	return c.JSON(http.StatusOK, inventoryResponse{Units: units, Stats: v.Stats})
}

// Donation returns one tracked donation with its progress.
//
// @Summary      Track a donation
// @Tags         tracking
// @Produce      json
// @Param        id   path      string  true  "Donation ID (case-insensitive)"
// @Success      200  {object}  trackingResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /donations/{id} [get]
func (h *APIHandler) Donation(c echo.Context) error {
	sid, _, err := ctxSession(c)
	if err != nil {
		return err
	}
	v, err := h.tracking.Track(c.Request().Context(), sid, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, trackingResponse{Donation: v.Donation, Progress: v.Progress, Timeline: v.Timeline})
}
