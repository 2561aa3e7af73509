package server

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-pizzaform/pkg/apidoc"
	"github.com/goliatone/go-pizzaform/pkg/model"
	"github.com/goliatone/go-pizzaform/pkg/order"
	"github.com/goliatone/go-pizzaform/pkg/orchestrator"
	"github.com/goliatone/go-pizzaform/pkg/render"
)

const maxBodyBytes = 1 << 20

// Problem is the JSON error body of the API.
type Problem struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// OrderRequest is the JSON body accepted by POST /api/orders.
type OrderRequest struct {
	Customer    map[string]string `json:"customer"`
	PizzaSize   string            `json:"pizzaSize"`
	Ingredients []string          `json:"ingredients"`
}

// Form converts the request into the shape the browser submits.
func (r OrderRequest) Form() order.Form {
	form := make(order.Form, len(r.Customer)+len(r.Ingredients)+1)
	for key, value := range r.Customer {
		form[key] = value
	}
	if r.PizzaSize != "" {
		form[order.SizeField] = r.PizzaSize
	}
	for _, ingredient := range r.Ingredients {
		form[ingredient] = order.CheckedValue
	}
	return form
}

// ReceiptResponse is the JSON body of an accepted order.
type ReceiptResponse struct {
	order.Receipt
	TotalDisplay string `json:"totalDisplay"`
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	req := orchestrator.Request{Page: model.PageForm}
	s.renderPage(w, r, http.StatusOK, req)
}

func (s *Server) handleOrder(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}
	form := order.FormFromValues(r.PostForm)

	receipt, err := s.orch.Quote(r.Context(), form)
	if err != nil {
		if verr, ok := order.AsValidationError(err); ok {
			s.renderPage(w, r, http.StatusUnprocessableEntity, orchestrator.Request{
				Page:         model.PageForm,
				Form:         form,
				Message:      verr.Code,
				InvalidField: verr.Field,
			})
			return
		}
		s.fail(w, r, err)
		return
	}

	s.renderPage(w, r, http.StatusOK, orchestrator.Request{
		Page:    model.PageReceipt,
		Receipt: &receipt,
	})
}

// handleRefresh reloads the catalog and re-renders the form. Customer inputs
// survive; size and ingredient selections are dropped since the refreshed
// catalog may no longer offer them.
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}
	kept := order.FormFromValues(r.PostForm).Only(s.orch.Fields())

	cat, err := s.orch.Refresh(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.renderPage(w, r, http.StatusOK, orchestrator.Request{
		Page:    model.PageForm,
		Form:    kept,
		Catalog: &cat,
	})
}

func (s *Server) handleAPIOrder(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	form, err := decodeOrder(r)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, Problem{Code: "request.invalid", Message: err.Error()})
		return
	}

	opts := s.renderOptions(r)
	receipt, err := s.orch.Quote(r.Context(), form)
	if err != nil {
		if verr, ok := order.AsValidationError(err); ok {
			s.writeJSON(w, http.StatusUnprocessableEntity, problemFor(verr.Code, opts))
			return
		}
		if errors.Is(err, orchestrator.ErrCatalogUnavailable) {
			s.writeJSON(w, http.StatusBadGateway, problemFor(order.MessageFetchFailed, opts))
			return
		}
		s.logger.Error("quote order", zap.Error(err))
		s.writeJSON(w, http.StatusInternalServerError, Problem{Code: "internal", Message: http.StatusText(http.StatusInternalServerError)})
		return
	}

	s.writeJSON(w, http.StatusOK, ReceiptResponse{Receipt: receipt, TotalDisplay: receipt.Total.Display()})
}

func (s *Server) handleAPICatalog(w http.ResponseWriter, r *http.Request) {
	cat, err := s.orch.Catalog(r.Context())
	if err != nil {
		s.writeJSON(w, http.StatusBadGateway, problemFor(order.MessageFetchFailed, s.renderOptions(r)))
		return
	}
	s.writeJSON(w, http.StatusOK, cat)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleOpenAPI(w http.ResponseWriter, r *http.Request) {
	data, err := apidoc.JSON(r.Context())
	if err != nil {
		s.logger.Error("openapi document", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

func decodeOrder(r *http.Request) (order.Form, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var body OrderRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&body); err != nil {
			return nil, err
		}
		return body.Form(), nil
	}
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return order.FormFromValues(r.PostForm), nil
}

// renderPage renders req, falling back to the error page when the catalog
// cannot be fetched.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, status int, req orchestrator.Request) {
	req.Renderer = s.renderer
	req.RenderOptions = s.renderOptions(r)
	req.Links = links(r)

	body, err := s.orch.Generate(r.Context(), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writePage(w, status, body)
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	if !errors.Is(err, orchestrator.ErrCatalogUnavailable) {
		s.logger.Error("render page", zap.String("path", r.URL.Path), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	body, renderErr := s.orch.Generate(r.Context(), orchestrator.Request{
		Page:          model.PageError,
		Renderer:      s.renderer,
		RenderOptions: s.renderOptions(r),
		Links:         links(r),
	})
	if renderErr != nil {
		s.logger.Error("render error page", zap.Error(renderErr))
		http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
		return
	}
	s.writePage(w, http.StatusBadGateway, body)
}

func (s *Server) writePage(w http.ResponseWriter, status int, body []byte) {
	contentType := "text/html; charset=utf-8"
	if renderer, err := s.orch.Renderer(s.renderer); err == nil {
		contentType = renderer.ContentType()
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("encode json", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func (s *Server) renderOptions(r *http.Request) render.RenderOptions {
	locale := strings.TrimSpace(r.URL.Query().Get("lang"))
	if locale == "" {
		locale = s.locale
	}
	return s.orch.RenderOptions(render.RenderOptions{Locale: locale})
}

// links carries an explicit ?lang= through every route the page points to.
func links(r *http.Request) model.Links {
	lang := strings.TrimSpace(r.URL.Query().Get("lang"))
	if lang == "" {
		return model.DefaultLinks()
	}
	return model.DefaultLinks().WithQuery(url.Values{"lang": {lang}})
}

func problemFor(code order.MessageKey, opts render.RenderOptions) Problem {
	return Problem{
		Code:    string(code),
		Message: render.Translate(opts, string(code), render.DefaultMessage(code)),
	}
}
