package handler

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/finworks/payment-portal/internal/payment/domain"
	"github.com/finworks/payment-portal/internal/payment/usecase/command"
	"github.com/finworks/payment-portal/internal/payment/usecase/query"
	"github.com/finworks/payment-portal/internal/redaction"
	"github.com/finworks/payment-portal/kafka"
	"github.com/finworks/payment-portal/pkg/logger"
)

// PaymentHandler handles HTTP requests for the payment portal using the
// CQRS pattern
type PaymentHandler struct {
	// Command handlers
	createHandler     *command.CreatePaymentHandler
	cancelOwnHandler  *command.CancelOwnPaymentHandler
	validateHandler   *command.ValidatePaymentHandler
	rejectHandler     *command.RejectPaymentHandler
	cancelHandler     *command.CancelPaymentHandler
	reasonHandler     *command.UpdateReasonHandler
	trashHandler      *command.TrashPaymentHandler
	restoreHandler    *command.RestorePaymentHandler
	assignHandler     *command.AssignPaymentHandler
	unassignHandler   *command.UnassignPaymentHandler
	escalateHandler   *command.EscalatePaymentHandler
	deescalateHandler *command.DeescalatePaymentHandler
	noteHandler       *command.AddNoteHandler
	bulkHandler       *command.BulkActionHandler

	// Query handlers
	listHandler   *query.ListPaymentsHandler
	getHandler    *query.GetPaymentHandler
	myHandler     *query.GetMyPaymentsHandler
	statsHandler  *query.GlobalStatsHandler
	trendsHandler *query.DailyTrendsHandler
	healthHandler *query.QueueHealthHandler
	exportHandler *query.ExportCSVHandler

	publisher *kafka.Publisher
	limiters  *RateLimiters

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	pendingGauge   prometheus.Gauge
}

// NewPaymentHandler creates a new payment handler (manual DI)
func NewPaymentHandler(repo domain.PaymentRepository, redactor redaction.Redactor, publisher *kafka.Publisher, limiters *RateLimiters) *PaymentHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_portal_requests_total",
			Help: "Total number of requests to the payment portal",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "payment_portal_request_duration_seconds",
			Help:    "Duration of payment portal requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	pendingGauge := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "payment_portal_pending_payments",
			Help: "Number of pending payments awaiting review",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(pendingGauge)

	return &PaymentHandler{
		createHandler:     command.NewCreatePaymentHandler(repo),
		cancelOwnHandler:  command.NewCancelOwnPaymentHandler(repo),
		validateHandler:   command.NewValidatePaymentHandler(repo),
		rejectHandler:     command.NewRejectPaymentHandler(repo),
		cancelHandler:     command.NewCancelPaymentHandler(repo),
		reasonHandler:     command.NewUpdateReasonHandler(repo),
		trashHandler:      command.NewTrashPaymentHandler(repo),
		restoreHandler:    command.NewRestorePaymentHandler(repo),
		assignHandler:     command.NewAssignPaymentHandler(repo),
		unassignHandler:   command.NewUnassignPaymentHandler(repo),
		escalateHandler:   command.NewEscalatePaymentHandler(repo),
		deescalateHandler: command.NewDeescalatePaymentHandler(repo),
		noteHandler:       command.NewAddNoteHandler(repo, redactor),
		bulkHandler:       command.NewBulkActionHandler(repo),

		listHandler:   query.NewListPaymentsHandler(repo),
		getHandler:    query.NewGetPaymentHandler(repo),
		myHandler:     query.NewGetMyPaymentsHandler(repo),
		statsHandler:  query.NewGlobalStatsHandler(repo),
		trendsHandler: query.NewDailyTrendsHandler(repo),
		healthHandler: query.NewQueueHealthHandler(repo),
		exportHandler: query.NewExportCSVHandler(repo),

		publisher: publisher,
		limiters:  limiters,

		requestCounter: requestCounter,
		requestLatency: requestLatency,
		pendingGauge:   pendingGauge,
	}
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *PaymentHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(time.Since(start).Seconds())
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// publishStatusChanged emits a lifecycle event; failures are logged, never
// surfaced to the caller
func (h *PaymentHandler) publishStatusChanged(r *http.Request, payment *domain.Payment) {
	if h.publisher == nil || payment.PreviousStatus == "" || payment.PreviousStatus == payment.Status {
		return
	}

	event := kafka.PaymentStatusChangedEvent{
		PaymentID:  payment.ID,
		UserID:     payment.UserID,
		OldStatus:  payment.PreviousStatus,
		NewStatus:  payment.Status,
		ReasonCode: payment.ReasonCode,
		ActorID:    actorFromContext(r.Context()).ID,
	}
	if err := h.publisher.PublishStatusChanged(r.Context(), event); err != nil {
		logger.Error(r.Context()).Err(err).Str("payment_id", payment.ID).Msg("Failed to publish status change event")
	}
}

// CreatePayment handles POST /api/payments
func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RecipientName  string `json:"recipient_name"`
		RecipientEmail string `json:"recipient_email"`
		IBAN           string `json:"iban"`
		SWIFT          string `json:"swift"`
		Address        string `json:"address"`
		City           string `json:"city"`
		Country        string `json:"country"`
		Amount         string `json:"amount"`
		Currency       string `json:"currency"`
		Reference      string `json:"reference"`
		Purpose        string `json:"purpose"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, failure("invalid request body"))
		return
	}

	cmd := command.CreatePaymentCommand{
		Owner:          actorFromContext(r.Context()),
		RecipientName:  req.RecipientName,
		RecipientEmail: req.RecipientEmail,
		IBAN:           req.IBAN,
		SWIFT:          req.SWIFT,
		Address:        req.Address,
		City:           req.City,
		Country:        req.Country,
		Amount:         req.Amount,
		Currency:       req.Currency,
		Reference:      req.Reference,
		Purpose:        req.Purpose,
	}

	payment, err := h.createHandler.Handle(r.Context(), cmd)
	if err != nil {
		respondError(w, err)
		return
	}

	if h.publisher != nil {
		event := kafka.PaymentCreatedEvent{
			PaymentID: payment.ID,
			UserID:    payment.UserID,
			Amount:    payment.Amount,
			Currency:  payment.Currency,
		}
		if err := h.publisher.PublishPaymentCreated(r.Context(), event); err != nil {
			logger.Error(r.Context()).Err(err).Str("payment_id", payment.ID).Msg("Failed to publish created event")
		}
	}

	respondJSON(w, http.StatusCreated, success("payment created", payment))
}

// GetMyPayments handles GET /api/payments/my
func (h *PaymentHandler) GetMyPayments(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	if claims == nil {
		respondJSON(w, http.StatusUnauthorized, failure("authentication required"))
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	q := query.GetMyPaymentsQuery{OwnerID: claims.UserID, Page: page, Limit: limit}
	payments, total, err := h.myHandler.Handle(r.Context(), q)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list own payments")
		respondError(w, err)
		return
	}

	filter := domain.Filter{Page: page, Limit: limit}
	filter.Normalize()
	respondJSON(w, http.StatusOK, PaginatedResponse{
		Response:   success("", payments),
		Pagination: newPagination(filter.Page, filter.Limit, total),
	})
}

// CancelOwnPayment handles POST /api/payments/{id}/cancel
func (h *PaymentHandler) CancelOwnPayment(w http.ResponseWriter, r *http.Request) {
	cmd := command.CancelOwnPaymentCommand{
		Owner:     actorFromContext(r.Context()),
		PaymentID: mux.Vars(r)["id"],
	}

	payment, err := h.cancelOwnHandler.Handle(r.Context(), cmd)
	if err != nil {
		respondError(w, err)
		return
	}

	h.publishStatusChanged(r, payment)
	respondJSON(w, http.StatusOK, success("payment cancelled", payment))
}

// ListPayments handles GET /api/review/payments
func (h *PaymentHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	filter := parseFilter(r)

	payments, total, err := h.listHandler.Handle(r.Context(), query.ListPaymentsQuery{Filter: filter})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list payments")
		respondError(w, err)
		return
	}

	filter.Normalize()
	respondJSON(w, http.StatusOK, PaginatedResponse{
		Response:   success("", payments),
		Pagination: newPagination(filter.Page, filter.Limit, total),
	})
}

// GetPayment handles GET /api/review/payments/{id}
func (h *PaymentHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	payment, err := h.getHandler.Handle(r.Context(), query.GetPaymentQuery{ID: mux.Vars(r)["id"]})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, success("", payment))
}

// ValidatePayment handles POST /api/review/payments/{id}/validate
func (h *PaymentHandler) ValidatePayment(w http.ResponseWriter, r *http.Request) {
	cmd := command.ValidatePaymentCommand{
		Actor:     actorFromContext(r.Context()),
		PaymentID: mux.Vars(r)["id"],
	}

	payment, err := h.validateHandler.Handle(r.Context(), cmd)
	if err != nil {
		respondError(w, err)
		return
	}

	h.publishStatusChanged(r, payment)
	respondJSON(w, http.StatusOK, success("payment validated", payment))
}

// RejectPayment handles POST /api/review/payments/{id}/reject
func (h *PaymentHandler) RejectPayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ReasonCode string `json:"reason_code"`
		Reason     string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, failure("invalid request body"))
		return
	}

	cmd := command.RejectPaymentCommand{
		Actor:      actorFromContext(r.Context()),
		PaymentID:  mux.Vars(r)["id"],
		ReasonCode: req.ReasonCode,
		Reason:     req.Reason,
	}

	payment, err := h.rejectHandler.Handle(r.Context(), cmd)
	if err != nil {
		respondError(w, err)
		return
	}

	h.publishStatusChanged(r, payment)
	respondJSON(w, http.StatusOK, success("payment rejected", payment))
}

// CancelPayment handles POST /api/review/payments/{id}/cancel
func (h *PaymentHandler) CancelPayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ReasonCode string `json:"reason_code"`
		Reason     string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, failure("invalid request body"))
		return
	}

	cmd := command.CancelPaymentCommand{
		Actor:      actorFromContext(r.Context()),
		PaymentID:  mux.Vars(r)["id"],
		ReasonCode: req.ReasonCode,
		Reason:     req.Reason,
	}

	payment, err := h.cancelHandler.Handle(r.Context(), cmd)
	if err != nil {
		respondError(w, err)
		return
	}

	h.publishStatusChanged(r, payment)
	respondJSON(w, http.StatusOK, success("payment cancelled", payment))
}

// UpdateReason handles PATCH /api/review/payments/{id}/reason
func (h *PaymentHandler) UpdateReason(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Reason     string `json:"reason"`
		ReasonCode string `json:"reason_code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, failure("invalid request body"))
		return
	}

	cmd := command.UpdateReasonCommand{
		Actor:      actorFromContext(r.Context()),
		PaymentID:  mux.Vars(r)["id"],
		Reason:     req.Reason,
		ReasonCode: req.ReasonCode,
	}

	payment, err := h.reasonHandler.Handle(r.Context(), cmd)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, success("reason updated", payment))
}

// TrashPayment handles DELETE /api/review/payments/{id}
func (h *PaymentHandler) TrashPayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Confirm bool `json:"confirm"`
	}
	// Body is optional; an absent confirm flag simply fails the step-up check
	_ = json.NewDecoder(r.Body).Decode(&req)

	cmd := command.TrashPaymentCommand{
		Actor:     actorFromContext(r.Context()),
		PaymentID: mux.Vars(r)["id"],
		Confirmed: req.Confirm,
	}

	payment, err := h.trashHandler.Handle(r.Context(), cmd)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, success("payment moved to trash", payment))
}

// RestorePayment handles POST /api/review/payments/{id}/restore
func (h *PaymentHandler) RestorePayment(w http.ResponseWriter, r *http.Request) {
	cmd := command.RestorePaymentCommand{
		Actor:     actorFromContext(r.Context()),
		PaymentID: mux.Vars(r)["id"],
	}

	payment, err := h.restoreHandler.Handle(r.Context(), cmd)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, success("payment restored", payment))
}

// AssignPayment handles POST /api/review/payments/{id}/assign
func (h *PaymentHandler) AssignPayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AssigneeID   string `json:"assignee_id"`
		AssigneeName string `json:"assignee_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, failure("invalid request body"))
		return
	}

	actor := actorFromContext(r.Context())
	assignee := domain.Actor{ID: req.AssigneeID, Name: req.AssigneeName}
	if assignee.ID == "" {
		// No explicit assignee means "assign to me"
		assignee = actor
	}

	cmd := command.AssignPaymentCommand{
		Actor:     actor,
		PaymentID: mux.Vars(r)["id"],
		Assignee:  assignee,
	}

	payment, err := h.assignHandler.Handle(r.Context(), cmd)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, success("payment assigned", payment))
}

// UnassignPayment handles POST /api/review/payments/{id}/unassign
func (h *PaymentHandler) UnassignPayment(w http.ResponseWriter, r *http.Request) {
	cmd := command.UnassignPaymentCommand{
		Actor:     actorFromContext(r.Context()),
		PaymentID: mux.Vars(r)["id"],
	}

	payment, err := h.unassignHandler.Handle(r.Context(), cmd)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, success("assignment cleared", payment))
}

// EscalatePayment handles POST /api/review/payments/{id}/escalate
func (h *PaymentHandler) EscalatePayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Notes string `json:"notes"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	cmd := command.EscalatePaymentCommand{
		Actor:     actorFromContext(r.Context()),
		PaymentID: mux.Vars(r)["id"],
		Notes:     req.Notes,
	}

	payment, err := h.escalateHandler.Handle(r.Context(), cmd)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, success("payment escalated", payment))
}

// DeescalatePayment handles POST /api/review/payments/{id}/deescalate
func (h *PaymentHandler) DeescalatePayment(w http.ResponseWriter, r *http.Request) {
	cmd := command.DeescalatePaymentCommand{
		Actor:     actorFromContext(r.Context()),
		PaymentID: mux.Vars(r)["id"],
	}

	payment, err := h.deescalateHandler.Handle(r.Context(), cmd)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, success("escalation cleared", payment))
}

// AddNote handles POST /api/review/payments/{id}/notes
func (h *PaymentHandler) AddNote(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text     string   `json:"text"`
		Mentions []string `json:"mentions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, failure("invalid request body"))
		return
	}

	cmd := command.AddNoteCommand{
		Actor:     actorFromContext(r.Context()),
		PaymentID: mux.Vars(r)["id"],
		Text:      req.Text,
		Mentions:  req.Mentions,
	}

	payment, err := h.noteHandler.Handle(r.Context(), cmd)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, success("note added", payment))
}

// BulkAction handles POST /api/review/payments/bulk
func (h *PaymentHandler) BulkAction(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Action     string   `json:"action"`
		PaymentIDs []string `json:"payment_ids"`
		Reason     string   `json:"reason"`
		ReasonCode string   `json:"reason_code"`
		Confirm    bool     `json:"confirm"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, failure("invalid request body"))
		return
	}

	cmd := command.BulkActionCommand{
		Actor:      actorFromContext(r.Context()),
		Action:     req.Action,
		PaymentIDs: req.PaymentIDs,
		Reason:     req.Reason,
		ReasonCode: req.ReasonCode,
		Confirmed:  req.Confirm,
	}

	results, err := h.bulkHandler.Handle(r.Context(), cmd)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, success("bulk action processed", map[string]interface{}{
		"results": results,
	}))
}

// GlobalStats handles GET /api/review/payments/stats
func (h *PaymentHandler) GlobalStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsHandler.Handle(r.Context(), query.GlobalStatsQuery{})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to compute stats")
		respondError(w, err)
		return
	}

	for _, bucket := range stats.ByStatus {
		if bucket.Status == domain.StatusPending {
			h.pendingGauge.Set(float64(bucket.Count))
		}
	}

	respondJSON(w, http.StatusOK, success("", stats))
}

// DailyTrends handles GET /api/review/payments/trends
func (h *PaymentHandler) DailyTrends(w http.ResponseWriter, r *http.Request) {
	days, _ := strconv.Atoi(r.URL.Query().Get("days"))

	trends, err := h.trendsHandler.Handle(r.Context(), query.DailyTrendsQuery{Days: days})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to compute trends")
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, success("", trends))
}

// QueueHealth handles GET /api/review/payments/queue-health
func (h *PaymentHandler) QueueHealth(w http.ResponseWriter, r *http.Request) {
	health, err := h.healthHandler.Handle(r.Context(), query.QueueHealthQuery{})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to check queue health")
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, success("", health))
}

// ExportCSV handles GET /api/review/payments/export. The export is buffered
// so a repository failure still gets a JSON error response instead of a
// truncated 200.
func (h *PaymentHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	filter := parseFilter(r)

	var buf bytes.Buffer
	if err := h.exportHandler.Handle(r.Context(), query.ExportCSVQuery{Filter: filter}, &buf); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to export payments")
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="payments.csv"`)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to stream export")
	}
}

// ReasonCodes handles GET /api/review/reason-codes
func (h *PaymentHandler) ReasonCodes(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, success("", domain.ReasonCodes()))
}

// parseFilter builds the query contract from URL parameters
func parseFilter(r *http.Request) domain.Filter {
	q := r.URL.Query()
	filter := domain.Filter{
		Status:  q.Get("status"),
		Keyword: q.Get("keyword"),
	}

	if v := q.Get("from"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filter.From = &t
		}
	}
	if v := q.Get("to"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			filter.To = &t
		}
	}
	if v := q.Get("min_amount"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinAmount = &f
		}
	}
	if v := q.Get("max_amount"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxAmount = &f
		}
	}
	if q.Get("include_deleted") == "true" {
		filter.IncludeDeleted = true
	}
	if v := q.Get("escalated"); v != "" {
		escalated := v == "true"
		filter.Escalated = &escalated
	}
	if v := q.Get("assigned_to"); v != "" {
		if v == "me" {
			if claims := ClaimsFromContext(r.Context()); claims != nil {
				filter.AssignedToID = claims.UserID
			}
		} else {
			filter.AssignedToID = v
		}
	}

	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))

	return filter
}

// RegisterRoutes registers all portal routes
func (h *PaymentHandler) RegisterRoutes(router *mux.Router) {
	// Customer routes (any authenticated user). Auth runs first so the rate
	// limiter can key on the caller identity rather than the IP.
	router.HandleFunc("/api/payments",
		AuthMiddleware(RateLimitMiddleware(h.limiters.Creation, h.metricsMiddleware("create_payment", h.CreatePayment)))).Methods("POST")
	router.HandleFunc("/api/payments/my",
		AuthMiddleware(RateLimitMiddleware(h.limiters.General, h.metricsMiddleware("my_payments", h.GetMyPayments)))).Methods("GET")
	router.HandleFunc("/api/payments/{id}/cancel",
		AuthMiddleware(RateLimitMiddleware(h.limiters.General, h.metricsMiddleware("cancel_own", h.CancelOwnPayment)))).Methods("POST")

	// Employee review routes. Fixed paths are registered before the {id}
	// wildcard so mux resolves them first.
	employee := func(endpoint string, fn http.HandlerFunc) http.HandlerFunc {
		return EmployeeMiddleware(RateLimitMiddleware(h.limiters.General, h.metricsMiddleware(endpoint, fn)))
	}

	router.HandleFunc("/api/review/payments/stats", employee("stats", h.GlobalStats)).Methods("GET")
	router.HandleFunc("/api/review/payments/trends", employee("trends", h.DailyTrends)).Methods("GET")
	router.HandleFunc("/api/review/payments/queue-health", employee("queue_health", h.QueueHealth)).Methods("GET")
	router.HandleFunc("/api/review/payments/export", employee("export", h.ExportCSV)).Methods("GET")
	router.HandleFunc("/api/review/payments/bulk", employee("bulk", h.BulkAction)).Methods("POST")
	router.HandleFunc("/api/review/reason-codes", employee("reason_codes", h.ReasonCodes)).Methods("GET")

	router.HandleFunc("/api/review/payments", employee("list_payments", h.ListPayments)).Methods("GET")
	router.HandleFunc("/api/review/payments/{id}", employee("get_payment", h.GetPayment)).Methods("GET")
	router.HandleFunc("/api/review/payments/{id}", employee("trash_payment", h.TrashPayment)).Methods("DELETE")
	router.HandleFunc("/api/review/payments/{id}/validate", employee("validate", h.ValidatePayment)).Methods("POST")
	router.HandleFunc("/api/review/payments/{id}/reject", employee("reject", h.RejectPayment)).Methods("POST")
	router.HandleFunc("/api/review/payments/{id}/cancel", employee("cancel", h.CancelPayment)).Methods("POST")
	router.HandleFunc("/api/review/payments/{id}/reason", employee("update_reason", h.UpdateReason)).Methods("PATCH")
	router.HandleFunc("/api/review/payments/{id}/restore", employee("restore", h.RestorePayment)).Methods("POST")
	router.HandleFunc("/api/review/payments/{id}/assign", employee("assign", h.AssignPayment)).Methods("POST")
	router.HandleFunc("/api/review/payments/{id}/unassign", employee("unassign", h.UnassignPayment)).Methods("POST")
	router.HandleFunc("/api/review/payments/{id}/escalate", employee("escalate", h.EscalatePayment)).Methods("POST")
	router.HandleFunc("/api/review/payments/{id}/deescalate", employee("deescalate", h.DeescalatePayment)).Methods("POST")
	router.HandleFunc("/api/review/payments/{id}/notes", employee("add_note", h.AddNote)).Methods("POST")
}

// RegisterHealthCheck registers the health check endpoint
func (h *PaymentHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, failure("database unavailable"))
			return
		}
		respondJSON(w, http.StatusOK, success("payment portal is healthy", nil))
	}).Methods("GET")
}
