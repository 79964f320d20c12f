package lookup

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/alovak/paystatus/lookup/models"
)

// API is the HTTP surface of the status proxy.
type API struct {
	service *Service
}

func NewAPI(service *Service) *API {
	return &API{
		service: service,
	}
}

func (a *API) AppendRoutes(r chi.Router) {
	r.Get("/status", a.getStatus)
	r.Post("/bulk-status", a.bulkStatus)
}

// getStatus serves /status?id=<merchantTransactionId>&type=payout|payin.
// The response code mirrors the upstream's once validation passes.
func (a *API) getStatus(w http.ResponseWriter, r *http.Request) {
	orderID := strings.TrimSpace(r.URL.Query().Get("id"))
	if orderID == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}

	typ, ok := models.ParseTransactionType(r.URL.Query().Get("type"))
	if !ok {
		writeError(w, http.StatusBadRequest, "type must be payout or payin")
		return
	}

	result, err := a.service.Resolve(r.Context(), orderID, typ)
	switch {
	case errors.Is(err, ErrTimeout):
		writeError(w, http.StatusGatewayTimeout, "timeout")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, result.StatusCode, result)
}

type bulkRequest struct {
	Type string  `json:"type"`
	IDs  bulkIDs `json:"ids"`
}

// bulkIDs accepts either a JSON array of ids (strings or numbers) or one
// comma-separated string; both forms are in use by callers.
type bulkIDs []string

func (b *bulkIDs) UnmarshalJSON(data []byte) error {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		var joined string
		if err2 := json.Unmarshal(data, &joined); err2 != nil {
			return err
		}
		*b = strings.Split(joined, ",")
		return nil
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out = append(out, s)
			continue
		}
		// non-string scalars (numeric ids) keep their literal text
		out = append(out, string(item))
	}
	*b = out

	return nil
}

func (a *API) bulkStatus(w http.ResponseWriter, r *http.Request) {
	var req bulkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	typ, ok := models.ParseTransactionType(req.Type)
	if !ok {
		writeError(w, http.StatusBadRequest, "type must be payout or payin")
		return
	}

	result, err := a.service.ResolveMany(r.Context(), req.IDs, typ)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"ok": false, "error": msg})
}
