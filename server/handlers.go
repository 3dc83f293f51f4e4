// Package server exposes the bridge operations over HTTP. Callers are
// authenticated upstream; each mutating route reads the sender address from
// the X-Sender header and returns the handler's instruction list for the
// caller to execute on chain.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/gorilla/mux"
	"github.com/provlabs/funding-trading-bridge/activity"
	"github.com/provlabs/funding-trading-bridge/bridge"
	"github.com/provlabs/funding-trading-bridge/config"
	dbTypes "github.com/provlabs/funding-trading-bridge/db"
	"github.com/provlabs/funding-trading-bridge/db/models"
	"github.com/provlabs/funding-trading-bridge/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	defaultExchangesLimit = 20
	maxExchangesLimit     = 50
)

// Server routes bridge operations. feed and journal are optional; a nil feed
// disables the live activity surface and a nil journal disables durable
// exchange records.
type Server struct {
	contract *bridge.Contract
	feed     activity.ExchangesFeed
	journal  *gorm.DB

	// mu serializes the read-modify-write routes (instantiate, admin,
	// migrate) so concurrent calls cannot interleave Load and Save.
	mu sync.Mutex
}

func NewServer(contract *bridge.Contract, feed activity.ExchangesFeed, journal *gorm.DB) *Server {
	return &Server{
		contract: contract,
		feed:     feed,
		journal:  journal,
	}
}

// Router wires all routes with request id, logging, and metrics middleware.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestIDMiddleware)
	router.Use(LoggingMiddleware)
	router.Use(InstrumentHandler)

	router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	router.Handle("/metrics", MetricsHandler()).Methods(http.MethodGet)

	v1 := router.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/instantiate", s.handleInstantiate).Methods(http.MethodPost)
	v1.HandleFunc("/exchange/fund", s.handleFundTrading).Methods(http.MethodPost)
	v1.HandleFunc("/exchange/withdraw", s.handleWithdrawTrading).Methods(http.MethodPost)
	v1.HandleFunc("/admin/admin", s.handleUpdateAdmin).Methods(http.MethodPost)
	v1.HandleFunc("/admin/deposit-attributes", s.handleUpdateDepositAttributes).Methods(http.MethodPost)
	v1.HandleFunc("/admin/withdraw-attributes", s.handleUpdateWithdrawAttributes).Methods(http.MethodPost)
	v1.HandleFunc("/migrate", s.handleMigrate).Methods(http.MethodPost)
	v1.HandleFunc("/state", s.handleQueryState).Methods(http.MethodGet)
	v1.HandleFunc("/exchanges", s.handleListExchanges).Methods(http.MethodGet)

	return router
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type instantiateRequest struct {
	types.InstantiateMsg
	Funds []sdk.Coin `json:"funds,omitempty"`
}

func (s *Server) handleInstantiate(w http.ResponseWriter, r *http.Request) {
	var req instantiateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	s.mu.Lock()
	result, err := s.contract.Instantiate(r.Context(), r.Header.Get(senderHeader), sdk.Coins(req.Funds), req.InstantiateMsg)
	s.mu.Unlock()
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

type fundTradingRequest struct {
	types.FundTradingMsg
	Funds []sdk.Coin `json:"funds,omitempty"`
}

func (s *Server) handleFundTrading(w http.ResponseWriter, r *http.Request) {
	var req fundTradingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sender := r.Header.Get(senderHeader)
	result, err := s.contract.FundTrading(r.Context(), sender, sdk.Coins(req.Funds), req.FundTradingMsg)
	if err != nil {
		writeError(w, err)
		return
	}

	s.recordExchange(r, "fund_trading", sender, result)
	writeJSON(w, http.StatusOK, result)
}

type withdrawTradingRequest struct {
	types.WithdrawTradingMsg
	Funds []sdk.Coin `json:"funds,omitempty"`
}

func (s *Server) handleWithdrawTrading(w http.ResponseWriter, r *http.Request) {
	var req withdrawTradingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sender := r.Header.Get(senderHeader)
	result, err := s.contract.WithdrawTrading(r.Context(), sender, sdk.Coins(req.Funds), req.WithdrawTradingMsg)
	if err != nil {
		writeError(w, err)
		return
	}

	s.recordExchange(r, "withdraw_trading", sender, result)
	writeJSON(w, http.StatusOK, result)
}

type updateAdminRequest struct {
	types.UpdateAdminMsg
	Funds []sdk.Coin `json:"funds,omitempty"`
}

func (s *Server) handleUpdateAdmin(w http.ResponseWriter, r *http.Request) {
	var req updateAdminRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	s.mu.Lock()
	result, err := s.contract.UpdateAdmin(r.Context(), r.Header.Get(senderHeader), sdk.Coins(req.Funds), req.UpdateAdminMsg)
	s.mu.Unlock()
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

type updateDepositAttributesRequest struct {
	types.UpdateDepositAttributesMsg
	Funds []sdk.Coin `json:"funds,omitempty"`
}

func (s *Server) handleUpdateDepositAttributes(w http.ResponseWriter, r *http.Request) {
	var req updateDepositAttributesRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	s.mu.Lock()
	result, err := s.contract.UpdateDepositRequiredAttributes(r.Context(), r.Header.Get(senderHeader), sdk.Coins(req.Funds), req.UpdateDepositAttributesMsg)
	s.mu.Unlock()
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

type updateWithdrawAttributesRequest struct {
	types.UpdateWithdrawAttributesMsg
	Funds []sdk.Coin `json:"funds,omitempty"`
}

func (s *Server) handleUpdateWithdrawAttributes(w http.ResponseWriter, r *http.Request) {
	var req updateWithdrawAttributesRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	s.mu.Lock()
	result, err := s.contract.UpdateWithdrawRequiredAttributes(r.Context(), r.Header.Get(senderHeader), sdk.Coins(req.Funds), req.UpdateWithdrawAttributesMsg)
	s.mu.Unlock()
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleMigrate(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	result, err := s.contract.Migrate(r.Context(), types.MigrateMsg{})
	s.mu.Unlock()
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleQueryState(w http.ResponseWriter, r *http.Request) {
	state, err := s.contract.QueryContractState(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleListExchanges(w http.ResponseWriter, r *http.Request) {
	limit := defaultExchangesLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeBadRequest(w, "limit must be a positive integer")
			return
		}
		limit = parsed
	}
	if limit > maxExchangesLimit {
		limit = maxExchangesLimit
	}

	if s.feed != nil {
		records, err := s.feed.GetExchanges(r.Context(), 0, int64(limit-1))
		if err != nil {
			writeError(w, err)
			return
		}
		if records == nil {
			records = []*activity.ExchangeRecord{}
		}
		writeJSON(w, http.StatusOK, records)
		return
	}

	if s.journal != nil {
		exchanges, err := dbTypes.GetRecentExchanges(s.journal, limit)
		if err != nil {
			writeError(w, err)
			return
		}
		records := make([]*activity.ExchangeRecord, 0, len(exchanges))
		for _, exchange := range exchanges {
			records = append(records, journalRecord(exchange))
		}
		writeJSON(w, http.StatusOK, records)
		return
	}

	writeJSON(w, http.StatusOK, []*activity.ExchangeRecord{})
}

// recordExchange mirrors one completed operation into the metrics, the
// durable journal, and the live feed. The operation itself already
// succeeded, so failures here are logged and swallowed.
func (s *Server) recordExchange(r *http.Request, action, sender string, result *types.Result) {
	inputDenomKey, inputAmountKey := "deposit_input_denom", "deposit_actual_amount"
	if action == "withdraw_trading" {
		inputDenomKey, inputAmountKey = "withdraw_input_denom", "withdraw_actual_amount"
	}
	inputDenom, _ := result.Attribute(inputDenomKey)
	inputAmount, _ := result.Attribute(inputAmountKey)
	outputDenom, _ := result.Attribute("received_denom")
	outputAmount, _ := result.Attribute("received_amount")
	remainderAmount, _ := result.Attribute("remainder_amount")

	amount, _ := strconv.ParseFloat(inputAmount, 64)
	remainder, _ := strconv.ParseFloat(remainderAmount, 64)
	recordExchangeMetrics(action, inputDenom, amount, remainder)

	ctx := r.Context()
	record := &activity.ExchangeRecord{
		RequestID:       RequestIDFromContext(ctx),
		Action:          action,
		Sender:          sender,
		InputDenom:      inputDenom,
		InputAmount:     inputAmount,
		OutputDenom:     outputDenom,
		OutputAmount:    outputAmount,
		RemainderAmount: remainderAmount,
		Timestamp:       time.Now().UTC(),
	}

	if s.journal != nil {
		if err := dbTypes.RecordExchange(s.journal, journalEntry(record)); err != nil {
			config.Log.Error("Unable to record exchange in journal.", err)
		}
	}

	if s.feed != nil {
		if err := s.feed.AddExchange(ctx, record); err != nil {
			config.Log.Error("Unable to add exchange to activity feed.", err)
		}
		if err := s.feed.PublishExchange(ctx, record); err != nil {
			config.Log.Error("Unable to publish exchange.", err)
		}
	}
}

func journalEntry(record *activity.ExchangeRecord) models.Exchange {
	return models.Exchange{
		RequestID:       record.RequestID,
		Action:          record.Action,
		Sender:          record.Sender,
		InputDenom:      record.InputDenom,
		InputAmount:     parseDecimal(record.InputAmount),
		OutputDenom:     record.OutputDenom,
		OutputAmount:    parseDecimal(record.OutputAmount),
		RemainderAmount: parseDecimal(record.RemainderAmount),
		TimeStamp:       record.Timestamp,
	}
}

func journalRecord(exchange models.Exchange) *activity.ExchangeRecord {
	record := &activity.ExchangeRecord{
		RequestID:    exchange.RequestID,
		Action:       exchange.Action,
		Sender:       exchange.Sender,
		InputDenom:   exchange.InputDenom,
		InputAmount:  exchange.InputAmount.String(),
		OutputDenom:  exchange.OutputDenom,
		OutputAmount: exchange.OutputAmount.String(),
		Timestamp:    exchange.TimeStamp,
	}
	if !exchange.RemainderAmount.IsZero() {
		record.RemainderAmount = exchange.RemainderAmount.String()
	}
	return record
}

func parseDecimal(raw string) decimal.Decimal {
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		config.Log.Error("Unable to parse exchange amount.", err)
		return decimal.Zero
	}
	return d
}

type errorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeBadRequest(w, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: message, Code: http.StatusBadRequest})
}

func writeError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	writeJSON(w, status, errorResponse{Error: err.Error(), Code: status})
}

// statusForError maps the bridge error taxonomy onto HTTP statuses.
func statusForError(err error) int {
	switch {
	case errors.Is(err, types.ErrValidation), errors.Is(err, types.ErrInvalidFunds):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrInvalidAccount), errors.Is(err, types.ErrNotAuthorized):
		return http.StatusForbidden
	case errors.Is(err, types.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, types.ErrConversion):
		return http.StatusUnprocessableEntity
	case errors.Is(err, types.ErrMigration):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
