package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/busmanager/backend/internal/entity"
)

type RouteService interface {
	CreateRoute(ctx context.Context, route entity.Route) (entity.Route, error)
	Route(ctx context.Context, id uuid.UUID) (entity.Route, error)
	Routes(ctx context.Context) ([]entity.Route, error)
	UpdateRoute(ctx context.Context, route entity.Route) error
	DeleteRoute(ctx context.Context, id uuid.UUID) error
	States(ctx context.Context) ([]entity.IndianState, error)
}

type RouteRequest struct {
	RouteName              string          `json:"routeName"`
	FromStateID            uuid.UUID       `json:"fromStateId"`
	ToStateID              uuid.UUID       `json:"toStateId"`
	FromAddress            string          `json:"fromAddress"`
	ToAddress              string          `json:"toAddress"`
	DistanceKM             decimal.Decimal `json:"distanceKm"`
	EstimatedDurationHours decimal.Decimal `json:"estimatedDurationHours"`
}

type RouteResponse struct {
	ID                     uuid.UUID       `json:"id"`
	RouteName              string          `json:"routeName"`
	FromStateID            uuid.UUID       `json:"fromStateId"`
	ToStateID              uuid.UUID       `json:"toStateId"`
	FromAddress            string          `json:"fromAddress,omitempty"`
	ToAddress              string          `json:"toAddress,omitempty"`
	DistanceKM             decimal.Decimal `json:"distanceKm"`
	EstimatedDurationHours decimal.Decimal `json:"estimatedDurationHours"`
}

func routeResponse(route entity.Route) RouteResponse {
	return RouteResponse{
		ID:                     route.ID,
		RouteName:              route.RouteName,
		FromStateID:            route.FromStateID,
		ToStateID:              route.ToStateID,
		FromAddress:            route.FromAddress,
		ToAddress:              route.ToAddress,
		DistanceKM:             route.DistanceKM,
		EstimatedDurationHours: route.EstimatedDurationHours,
	}
}

// CreateRoute creates a route between two states
// @Summary Create route
// @Tags routes
// @Accept json
// @Produce json
// @Param RouteRequest body RouteRequest true "Route"
// @Success 201 {object} RouteResponse
// @Failure 403 {object} ErrorResponse
// @Router /routes [post]
// @Security BearerAuth
func (h *Handler) CreateRoute(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RouteRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	route, err := h.routes.CreateRoute(ctx, entity.Route{
		RouteName:              req.RouteName,
		FromStateID:            req.FromStateID,
		ToStateID:              req.ToStateID,
		FromAddress:            req.FromAddress,
		ToAddress:              req.ToAddress,
		DistanceKM:             req.DistanceKM,
		EstimatedDurationHours: req.EstimatedDurationHours,
	})
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to create route")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, routeResponse(route))
}

// Route returns one route
// @Summary Get route
// @Tags routes
// @Produce json
// @Param id path string true "Route ID"
// @Success 200 {object} RouteResponse
// @Failure 404 {object} ErrorResponse
// @Router /routes/{id} [get]
// @Security BearerAuth
func (h *Handler) Route(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := URLParamUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid route id")
		return
	}

	route, err := h.routes.Route(ctx, id)
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to load route")
		return
	}

	SendJSON(ctx, w, http.StatusOK, routeResponse(route))
}

// Routes lists every route
// @Summary List routes
// @Tags routes
// @Produce json
// @Success 200 {array} RouteResponse
// @Router /routes [get]
// @Security BearerAuth
func (h *Handler) Routes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	routes, err := h.routes.Routes(ctx)
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to list routes")
		return
	}

	resp := make([]RouteResponse, 0, len(routes))
	for _, route := range routes {
		resp = append(resp, routeResponse(route))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

// UpdateRoute updates a route
// @Summary Update route
// @Tags routes
// @Accept json
// @Param id path string true "Route ID"
// @Param RouteRequest body RouteRequest true "Route"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /routes/{id} [put]
// @Security BearerAuth
func (h *Handler) UpdateRoute(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := URLParamUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid route id")
		return
	}

	var req RouteRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	err = h.routes.UpdateRoute(ctx, entity.Route{
		ID:                     id,
		RouteName:              req.RouteName,
		FromStateID:            req.FromStateID,
		ToStateID:              req.ToStateID,
		FromAddress:            req.FromAddress,
		ToAddress:              req.ToAddress,
		DistanceKM:             req.DistanceKM,
		EstimatedDurationHours: req.EstimatedDurationHours,
	})
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to update route")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteRoute removes a route
// @Summary Delete route
// @Tags routes
// @Param id path string true "Route ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /routes/{id} [delete]
// @Security BearerAuth
func (h *Handler) DeleteRoute(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := URLParamUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid route id")
		return
	}

	if err = h.routes.DeleteRoute(ctx, id); err != nil {
		SendDomainErr(ctx, w, err, "Failed to delete route")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type StateResponse struct {
	ID               uuid.UUID `json:"id"`
	StateName        string    `json:"stateName"`
	StateCode        string    `json:"stateCode"`
	IsUnionTerritory bool      `json:"isUnionTerritory"`
}

// States lists Indian states and union territories
// @Summary List states
// @Tags routes
// @Produce json
// @Success 200 {array} StateResponse
// @Router /states [get]
// @Security BearerAuth
func (h *Handler) States(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	states, err := h.routes.States(ctx)
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to list states")
		return
	}

	resp := make([]StateResponse, 0, len(states))
	for _, s := range states {
		resp = append(resp, StateResponse{
			ID:               s.ID,
			StateName:        s.StateName,
			StateCode:        s.StateCode,
			IsUnionTerritory: s.IsUnionTerritory,
		})
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}
