package calculator

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"calculator-service/internal/auth"
	"calculator-service/internal/ledger"
	"calculator-service/internal/metrics"
)

// Handler exposes the calculator and history endpoints. All routes sit
// behind the auth middleware, so the owner is always taken from the request
// context.
type Handler struct {
	ledger *ledger.Ledger
	logger *zap.SugaredLogger
}

func NewHandler(l *ledger.Ledger, logger *zap.SugaredLogger) *Handler {
	return &Handler{ledger: l, logger: logger}
}

type CalculateRequest struct {
	Operation string  `json:"operation"`
	Operand1  float64 `json:"operand1"`
	Operand2  float64 `json:"operand2"`
}

type CalculateResponse struct {
	Operation string  `json:"operation"`
	Operand1  float64 `json:"operand1"`
	Operand2  float64 `json:"operand2"`
	Result    float64 `json:"result"`
	Message   string  `json:"message"`
}

type EvaluateRequest struct {
	Expression string `json:"expression"`
}

type EvaluateResponse struct {
	Expression string  `json:"expression"`
	Result     float64 `json:"result"`
}

// Calculate performs one operation and records it. Failed operations are
// rejected with 400 and leave no history row.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	op := strings.ToLower(req.Operation)

	result, err := Apply(op, req.Operand1, req.Operand2)
	if err != nil {
		metrics.CalculationsTotal.WithLabelValues(op, "failure").Inc()
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.ledger.Record(r.Context(), user.ID, op, req.Operand1, req.Operand2, result); err != nil {
		h.logger.Errorw("record calculation failed", "err", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to save calculation")
		return
	}

	metrics.CalculationsTotal.WithLabelValues(op, "success").Inc()
	writeJSON(w, http.StatusOK, CalculateResponse{
		Operation: op,
		Operand1:  req.Operand1,
		Operand2:  req.Operand2,
		Result:    result,
		Message:   fmt.Sprintf("Successfully calculated: %g %s %g = %g", req.Operand1, op, req.Operand2, result),
	})
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	skip, limit := pagination(r)
	calcs, err := h.ledger.List(r.Context(), user.ID, skip, limit)
	if err != nil {
		h.logger.Errorw("list history failed", "err", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to load history")
		return
	}
	writeJSON(w, http.StatusOK, calcs)
}

func (h *Handler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	deleted, err := h.ledger.Clear(r.Context(), user.ID)
	if err != nil {
		h.logger.Errorw("clear history failed", "err", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to clear history")
		return
	}
	h.logger.Infow("history cleared", "user_id", user.ID, "deleted", deleted)
	w.WriteHeader(http.StatusNoContent)
}

// Evaluate computes a free-form expression and records it.
func (h *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := Evaluate(req.Expression)
	if err != nil {
		metrics.ExpressionsTotal.WithLabelValues("failure").Inc()
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.ledger.RecordExpression(r.Context(), user.ID, req.Expression, result); err != nil {
		h.logger.Errorw("record expression failed", "err", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to save expression")
		return
	}

	metrics.ExpressionsTotal.WithLabelValues("success").Inc()
	writeJSON(w, http.StatusOK, EvaluateResponse{Expression: req.Expression, Result: result})
}

func (h *Handler) ExpressionHistory(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	skip, limit := pagination(r)
	exprs, err := h.ledger.ListExpressions(r.Context(), user.ID, skip, limit)
	if err != nil {
		h.logger.Errorw("list expressions failed", "err", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to load history")
		return
	}
	writeJSON(w, http.StatusOK, exprs)
}

func (h *Handler) ClearExpressionHistory(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if _, err := h.ledger.ClearExpressions(r.Context(), user.ID); err != nil {
		h.logger.Errorw("clear expressions failed", "err", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "failed to clear history")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pagination(r *http.Request) (skip, limit int) {
	skip, _ = strconv.Atoi(r.URL.Query().Get("skip"))
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	return skip, limit
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
