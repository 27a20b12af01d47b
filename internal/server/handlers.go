package server

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"

	"github.com/jonathan/structured-data-validator/internal/crawling"
	"github.com/jonathan/structured-data-validator/internal/diagnostics"
	"github.com/jonathan/structured-data-validator/internal/schemas"
	"github.com/jonathan/structured-data-validator/internal/types"
	"github.com/jonathan/structured-data-validator/internal/validation"
)

var validate = validator.New()

// RequestOptions lets a request override the server's check toggles. Nil fields keep
// the server default.
type RequestOptions struct {
	CheckHTTPURLs              *bool  `json:"checkHttpUrls,omitempty"`
	CheckRecommendedProperties *bool  `json:"checkRecommendedProperties,omitempty"`
	GraphItemsNeedRecommended  *bool  `json:"graphItemsNeedRecommended,omitempty"`
	UseFallbackForUnknownTypes *bool  `json:"useFallbackForUnknownTypes,omitempty"`
	DocLinks                   string `json:"docLinks,omitempty" validate:"omitempty,oneof=html text none"`
}

// apply returns base with the request's overrides applied.
func (o *RequestOptions) apply(base validation.Options) validation.Options {
	if o == nil {
		return base
	}
	if o.CheckHTTPURLs != nil {
		base.SkipHTTPURLCheck = !*o.CheckHTTPURLs
	}
	if o.CheckRecommendedProperties != nil {
		base.SkipRecommendedCheck = !*o.CheckRecommendedProperties
	}
	if o.GraphItemsNeedRecommended != nil {
		base.GraphItemsNeedRecommended = *o.GraphItemsNeedRecommended
	}
	if o.UseFallbackForUnknownTypes != nil {
		base.UseFallbackForUnknownTypes = *o.UseFallbackForUnknownTypes
	}
	if o.DocLinks != "" {
		base.DocLinks = diagnostics.DocLinkStyle(o.DocLinks)
	}
	return base
}

// ValidateRequest represents the request body for /validate
type ValidateRequest struct {
	JSONLD  string          `json:"jsonld" validate:"required"`
	Options *RequestOptions `json:"options,omitempty"`
}

// ValidateHTMLRequest represents the request body for /validate/html
type ValidateHTMLRequest struct {
	HTML    string          `json:"html" validate:"required"`
	Options *RequestOptions `json:"options,omitempty"`
}

// BatchResponse represents the response for /validate/html
type BatchResponse struct {
	Blocks []types.BlockResult `json:"blocks"`
}

// SchemaSummary describes one registered type in the /schemas listing.
type SchemaSummary struct {
	Name        string   `json:"name"`
	DocURL      string   `json:"docUrl,omitempty"`
	Required    []string `json:"required"`
	Recommended []string `json:"recommended"`
}

// decode reads and validates a JSON request body.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBodyBytes))
	if err != nil {
		return &ErrInvalidBody{Cause: err}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return &ErrInvalidBody{Cause: err}
	}

	if err := validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return &ErrValidation{Field: jsonFieldName(fe.Namespace()), Message: "failed on the '" + fe.Tag() + "' rule"}
		}
		return &ErrValidation{Field: "body", Message: err.Error()}
	}
	return nil
}

// jsonFieldName maps a validator namespace such as ValidateRequest.Options.DocLinks
// onto the JSON field name of its last element.
func jsonFieldName(namespace string) string {
	field := namespace[strings.LastIndex(namespace, ".")+1:]
	switch field {
	case "JSONLD":
		return "jsonld"
	case "HTML":
		return "html"
	case "DocLinks":
		return "options.docLinks"
	default:
		return field
	}
}

// handleValidate validates one JSON-LD document
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := s.decode(w, r, &req); err != nil {
		s.errorResponse(w, r, err)
		return
	}

	opts := req.Options.apply(s.options)
	s.jsonResponse(w, http.StatusOK, validation.Validate(req.JSONLD, opts))
}

// handleValidateHTML extracts every ld+json block from an HTML page and validates each
func (s *Server) handleValidateHTML(w http.ResponseWriter, r *http.Request) {
	var req ValidateHTMLRequest
	if err := s.decode(w, r, &req); err != nil {
		s.errorResponse(w, r, err)
		return
	}

	blocks, err := crawling.ExtractJSONLD(req.HTML)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	opts := req.Options.apply(s.options)
	results, err := validation.ValidateBlocks(r.Context(), crawling.Contents(blocks), opts)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, BatchResponse{Blocks: results})
}

// handleListSchemas lists every registered type in registration order
func (s *Server) handleListSchemas(w http.ResponseWriter, _ *http.Request) {
	names := s.registry.Names()
	out := make([]SchemaSummary, 0, len(names))
	for _, name := range names {
		def, ok := s.registry.Lookup(name)
		if !ok {
			continue
		}
		out = append(out, SchemaSummary{
			Name:        def.Name,
			DocURL:      def.DocURL,
			Required:    def.Required,
			Recommended: def.Recommended,
		})
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"schemas": out})
}

// handleGetSchema returns the draft-07 JSON Schema export of one type
func (s *Server) handleGetSchema(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("type")
	def, ok := s.registry.Lookup(name)
	if !ok {
		s.errorResponse(w, r, &ErrUnknownType{Name: name})
		return
	}

	exported, err := schemas.Export(def)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, exported)
}
