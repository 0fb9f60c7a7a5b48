package pos

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/labarberia/pos-backend/internal/modules/catalog"
	"github.com/labarberia/pos-backend/internal/modules/ledger"
)

// Handler exposes the POS session over HTTP.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/pos", func(r chi.Router) {
		r.Post("/session", h.openSession)             // POST   /api/v1/pos/session
		r.Get("/session", h.getSession)               // GET    /api/v1/pos/session
		r.Delete("/session", h.closeSession)          // DELETE /api/v1/pos/session
		r.Get("/catalog", h.filterCatalog)            // GET    /api/v1/pos/catalog?kind=&q=
		r.Get("/parties", h.listParties)              // GET    /api/v1/pos/parties
		r.Post("/cart/items", h.addItem)              // POST   /api/v1/pos/cart/items
		r.Patch("/cart/items/{id}", h.adjustQuantity) // PATCH  /api/v1/pos/cart/items/{id}
		r.Delete("/cart/items/{id}", h.removeItem)    // DELETE /api/v1/pos/cart/items/{id}
		r.Post("/checkout", h.beginCheckout)          // POST   /api/v1/pos/checkout
		r.Put("/checkout/party", h.selectParty)       // PUT    /api/v1/pos/checkout/party
		r.Put("/checkout/payment", h.setPayment)      // PUT    /api/v1/pos/checkout/payment
		r.Post("/checkout/commit", h.commit)          // POST   /api/v1/pos/checkout/commit
		r.Delete("/checkout", h.cancelCheckout)       // DELETE /api/v1/pos/checkout
	})
}

// sessionView is the read model returned after every mutation.
type sessionView struct {
	State            State               `json:"state"`
	Lines            []Line              `json:"lines"`
	Total            float64             `json:"total"`
	ResponsibleParty ResponsibleParty    `json:"responsible_party,omitempty"`
	PaymentMethod    PaymentMethod       `json:"payment_method,omitempty"`
	Reference        string              `json:"reference,omitempty"`
	CashTendered     float64             `json:"cash_tendered,omitempty"`
	Change           float64             `json:"change"`
	LastTransaction  *ledger.Transaction `json:"last_transaction,omitempty"`
}

func viewOf(s *Session) sessionView {
	ck := s.Checkout()
	return sessionView{
		State:            ck.State(),
		Lines:            s.Lines(),
		Total:            round2(s.Total()),
		ResponsibleParty: ck.Party(),
		PaymentMethod:    ck.Method(),
		Reference:        ck.Reference(),
		CashTendered:     ck.CashTendered(),
		Change:           round2(s.Change()),
		LastTransaction:  s.LastTransaction(),
	}
}

func (h *Handler) openSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.OpenSession(r.Context())
	if err != nil {
		respond(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, viewOf(session))
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w)
	if !ok {
		return
	}
	respond(w, http.StatusOK, viewOf(session))
}

func (h *Handler) closeSession(w http.ResponseWriter, r *http.Request) {
	h.service.CloseSession()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) filterCatalog(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w)
	if !ok {
		return
	}
	kind := catalog.ItemKind(strings.ToUpper(r.URL.Query().Get("kind")))
	respond(w, http.StatusOK, session.FilterCatalog(kind, r.URL.Query().Get("q")))
}

func (h *Handler) listParties(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, ResponsibleParties())
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w)
	if !ok {
		return
	}
	var req struct {
		ItemID string `json:"item_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid item_id"})
		return
	}
	h.mutate(w, session, session.AddItem(itemID))
}

func (h *Handler) adjustQuantity(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w)
	if !ok {
		return
	}
	itemID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid item id"})
		return
	}
	var req struct {
		Delta int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	h.mutate(w, session, session.AdjustQuantity(itemID, req.Delta))
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w)
	if !ok {
		return
	}
	itemID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid item id"})
		return
	}
	h.mutate(w, session, session.RemoveItem(itemID))
}

func (h *Handler) beginCheckout(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w)
	if !ok {
		return
	}
	h.mutate(w, session, session.BeginCheckout())
}

func (h *Handler) selectParty(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w)
	if !ok {
		return
	}
	var req struct {
		Party string `json:"party"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	party, err := ParseResponsibleParty(req.Party)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	h.mutate(w, session, session.SelectParty(party))
}

func (h *Handler) setPayment(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w)
	if !ok {
		return
	}
	var req struct {
		Method       string   `json:"method"`
		Reference    *string  `json:"reference,omitempty"`
		CashTendered *float64 `json:"cash_tendered,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if req.Method != "" {
		method, err := ParsePaymentMethod(req.Method)
		if err != nil {
			respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		if err := session.SelectPayment(method); err != nil {
			respondErr(w, err)
			return
		}
	}
	if req.Reference != nil {
		if err := session.SetReference(*req.Reference); err != nil {
			respondErr(w, err)
			return
		}
	}
	if req.CashTendered != nil {
		if err := session.SetCashTendered(*req.CashTendered); err != nil {
			respondErr(w, err)
			return
		}
	}
	respond(w, http.StatusOK, viewOf(session))
}

func (h *Handler) commit(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w)
	if !ok {
		return
	}
	tx, err := session.Commit(r.Context())

	var recErr *StockReconciliationError
	if errors.As(err, &recErr) {
		// The sale is final; surface the failed deductions distinctly
		// so the operator can correct stock by hand.
		failures := make(map[string]string, len(recErr.Failures))
		for name, ferr := range recErr.Failures {
			failures[name] = ferr.Error()
		}
		respond(w, http.StatusCreated, map[string]interface{}{
			"transaction":    tx,
			"warning":        recErr.Error(),
			"stock_failures": failures,
		})
		return
	}
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusCreated, map[string]interface{}{"transaction": tx})
}

func (h *Handler) cancelCheckout(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w)
	if !ok {
		return
	}
	h.mutate(w, session, session.Cancel())
}

// ── helpers ───────────────────────────────────────────────────────────────────

func (h *Handler) session(w http.ResponseWriter) (*Session, bool) {
	session, err := h.service.Session()
	if err != nil {
		respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return nil, false
	}
	return session, true
}

func (h *Handler) mutate(w http.ResponseWriter, session *Session, err error) {
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, viewOf(session))
}

func respondErr(w http.ResponseWriter, err error) {
	respond(w, statusFor(err), map[string]string{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, catalog.ErrNotFound), errors.Is(err, ErrLineNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrOutOfStock),
		errors.Is(err, ErrStockConflict),
		errors.Is(err, ErrCartFrozen),
		errors.Is(err, ErrCommitInFlight),
		errors.Is(err, ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, ErrEmptyCart), errors.Is(err, ErrCheckoutIncomplete):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
