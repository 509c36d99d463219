package handlers

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fulfillment-advisor-service/internal/api/dto"
	"fulfillment-advisor-service/internal/domain"
	"fulfillment-advisor-service/internal/platform/metrics"
	"fulfillment-advisor-service/internal/platform/obs"
	"fulfillment-advisor-service/internal/ports"
	"fulfillment-advisor-service/internal/services"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
)

// RecommendHandler runs the candidate generation and scoring pipeline
// for user requests. Each call re-runs the full pipeline against the
// loaded catalogs; no scored data is cached or shared across requests.
type RecommendHandler struct {
	Warehouses ports.WarehouseRepository
	Fleet      ports.FleetRepository
	Routes     ports.RouteRepository
}

// Recommend handles POST /recommendations with a JSON request body.
func (h *RecommendHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.RecommendRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	svcReq, msg := buildRequest(req)
	if msg != "" {
		writeError(w, r, http.StatusBadRequest, msg)
		return
	}

	rec, ok := h.run(w, r, svcReq)
	if !ok {
		return
	}

	res := dto.RecommendResponse{
		Best:    toOptionResponse(rec.Best),
		Options: make([]dto.OptionResponse, 0, len(rec.Options)),
	}
	for _, opt := range rec.Options {
		res.Options = append(res.Options, toOptionResponse(opt))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Export handles GET /recommendations/export and streams the full
// scored option table as a CSV attachment.
func (h *RecommendHandler) Export(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := r.URL.Query()
	req := dto.RecommendRequest{
		ProductCategory: q.Get("product_category"),
		Destination:     q.Get("destination"),
		Priority:        q.Get("priority"),
	}

	svcReq, msg := buildRequest(req)
	if msg != "" {
		writeError(w, r, http.StatusBadRequest, msg)
		return
	}

	rec, ok := h.run(w, r, svcReq)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="fulfillment_options.csv"`)
	w.WriteHeader(http.StatusOK)

	cw := csv.NewWriter(w)
	header := []string{
		"warehouse", "vehicle", "distance_km", "traffic_delay_minutes", "weather_impact",
		"fuel_efficiency", "co2", "cost", "inventory_headroom",
		"cost_n", "delay_risk", "distance_n", "co2_n", "inventory_n", "fulfillment_score",
	}
	if err := cw.Write(header); err != nil {
		log.Printf("export write header failed: %v", err)
		return
	}

	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	for _, opt := range rec.Options {
		row := []string{
			opt.Warehouse, opt.Vehicle, f(opt.DistanceKM), f(opt.TrafficDelayMinutes), f(opt.WeatherImpact),
			f(opt.FuelEfficiency), f(opt.CO2Kg), f(opt.Cost), f(opt.InventoryHeadroom),
			f(opt.CostN), f(opt.DelayRisk), f(opt.DistanceN), f(opt.CO2N), f(opt.InventoryN), f(opt.FulfillmentScore),
		}
		if err := cw.Write(row); err != nil {
			log.Printf("export write row failed: %v", err)
			return
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		log.Printf("export flush failed: %v", err)
	}
}

// run executes the scoring pipeline and maps outcomes to HTTP
// responses and metrics. Returns ok=false when a response has already
// been written.
func (h *RecommendHandler) run(
	w http.ResponseWriter,
	r *http.Request,
	req services.CandidateRequest,
) (rec *services.Recommendation, ok bool) {
	ctx := r.Context()

	var err error
	defer obs.Time(ctx, "recommend")(&err)

	rec, err = services.Recommend(ctx, req, h.Warehouses, h.Fleet, h.Routes)
	switch {
	case err == nil:
		metrics.Recommendations.WithLabelValues("ok").Inc()
		return rec, true
	case errors.Is(err, services.ErrNoInventory):
		metrics.Recommendations.WithLabelValues("no_inventory").Inc()
		writeError(w, r, http.StatusUnprocessableEntity, services.ErrNoInventory.Error())
		return nil, false
	case errors.Is(err, services.ErrNoRoute):
		metrics.Recommendations.WithLabelValues("no_route").Inc()
		writeError(w, r, http.StatusUnprocessableEntity, services.ErrNoRoute.Error())
		return nil, false
	default:
		metrics.Recommendations.WithLabelValues("error").Inc()
		log.Printf("recommend failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return nil, false
	}
}

// buildRequest validates user input and applies defaults. The returned
// message is empty on success.
func buildRequest(req dto.RecommendRequest) (services.CandidateRequest, string) {
	product := strings.TrimSpace(req.ProductCategory)
	if product == "" {
		return services.CandidateRequest{}, "product_category is required"
	}

	destination := strings.TrimSpace(req.Destination)
	if destination == "" {
		return services.CandidateRequest{}, "destination is required"
	}

	priority := strings.TrimSpace(req.Priority)
	if priority == "" {
		priority = "Standard"
	}
	if !domain.ValidPriority(priority) {
		return services.CandidateRequest{}, "priority must be one of Express, Standard, Economy"
	}

	return services.CandidateRequest{
		ProductCategory: product,
		Destination:     destination,
		Priority:        priority,
	}, ""
}

func toOptionResponse(s domain.ScoredCandidate) dto.OptionResponse {
	return dto.OptionResponse{
		Warehouse:           s.Warehouse,
		Vehicle:             s.Vehicle,
		DistanceKM:          s.DistanceKM,
		TrafficDelayMinutes: s.TrafficDelayMinutes,
		WeatherImpact:       s.WeatherImpact,
		FuelEfficiency:      s.FuelEfficiency,
		CO2Kg:               s.CO2Kg,
		Cost:                s.Cost,
		InventoryHeadroom:   s.InventoryHeadroom,
		CostN:               s.CostN,
		DelayRisk:           s.DelayRisk,
		DistanceN:           s.DistanceN,
		CO2N:                s.CO2N,
		InventoryN:          s.InventoryN,
		FulfillmentScore:    s.FulfillmentScore,
	}
}
