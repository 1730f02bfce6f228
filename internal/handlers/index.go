package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"searchindex/internal/contextutil"
	"searchindex/internal/indexer"
	"searchindex/internal/service"
)

// Field value formats accepted by the index endpoints.
const (
	FormatText     = "text"
	FormatList     = "list"
	FormatMarkdown = "markdown"
)

// FieldPayload is one custom field value. Value is a string, or an array of strings for the list format.
type FieldPayload struct {
	FieldID int64           `json:"field_id"`
	Format  string          `json:"format,omitempty"`
	Value   json.RawMessage `json:"value"`
}

// EntityPayload is the HTTP representation of an indexable entity.
type EntityPayload struct {
	ID         int64             `json:"id"`
	SiteID     int64             `json:"site_id"`
	Language   string            `json:"language,omitempty"`
	Slug       string            `json:"slug,omitempty"`
	Title      string            `json:"title,omitempty"`
	HasTitles  *bool             `json:"has_titles,omitempty"` // defaults to true
	Attributes map[string]string `json:"attributes,omitempty"`
	Fields     []FieldPayload    `json:"fields,omitempty"`
}

// IndexRequest represents the HTTP request payload for indexing one entity.
type IndexRequest struct {
	Entity       EntityPayload `json:"entity"`
	SkipFieldIDs []int64       `json:"skip_field_ids,omitempty"`
}

// BatchIndexRequest represents the HTTP request payload for indexing several entities.
type BatchIndexRequest struct {
	Entities []EntityPayload `json:"entities"`
}

// IndexResponse represents the response from the index endpoints.
type IndexResponse struct {
	Status string         `json:"status"`
	Stats  *indexer.Stats `json:"stats,omitempty"`
}

// IndexHandler handles HTTP requests for indexing a single entity.
type IndexHandler struct {
	indexService service.IndexService
}

// NewIndexHandler creates a new IndexHandler.
func NewIndexHandler(indexService service.IndexService) *IndexHandler {
	return &IndexHandler{indexService: indexService}
}

// ServeHTTP handles POST /api/index.
func (h *IndexHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(ctx, w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req IndexRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(ctx, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	entity, err := req.Entity.toEntity()
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to index entity")
		return
	}

	if err := h.indexService.IndexEntity(ctx, service.IndexRequest{Entity: entity, SkipFieldIDs: req.SkipFieldIDs}); err != nil {
		handleServiceError(ctx, w, err, "Failed to index entity")
		return
	}

	writeJSON(ctx, w, http.StatusOK, IndexResponse{Status: "indexed"})
}

// BatchIndexHandler handles HTTP requests for indexing several entities.
type BatchIndexHandler struct {
	indexService service.IndexService
}

// NewBatchIndexHandler creates a new BatchIndexHandler.
func NewBatchIndexHandler(indexService service.IndexService) *BatchIndexHandler {
	return &BatchIndexHandler{indexService: indexService}
}

// ServeHTTP handles POST /api/index/batch.
func (h *BatchIndexHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(ctx, w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req BatchIndexRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(ctx, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	entities := make([]indexer.Entity, 0, len(req.Entities))
	for i, p := range req.Entities {
		e, err := p.toEntity()
		if err != nil {
			handleServiceError(ctx, w, service.WrapError(err, fmt.Sprintf("entities[%d]", i)), "Failed to index entities")
			return
		}
		entities = append(entities, e)
	}

	stats, err := h.indexService.IndexBatch(ctx, entities)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to index entities")
		return
	}

	status := "indexed"
	if stats.EntitiesFailed > 0 {
		status = "partial"
	}
	writeJSON(ctx, w, http.StatusOK, IndexResponse{Status: status, Stats: &stats})
}

// RemoveHandler handles HTTP requests for removing an entity from the index.
type RemoveHandler struct {
	indexService service.IndexService
}

// NewRemoveHandler creates a new RemoveHandler.
func NewRemoveHandler(indexService service.IndexService) *RemoveHandler {
	return &RemoveHandler{indexService: indexService}
}

// ServeHTTP handles DELETE /api/index/{entityID}.
func (h *RemoveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodDelete {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(ctx, w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	entityID, err := strconv.ParseInt(chi.URLParam(r, "entityID"), 10, 64)
	if err != nil {
		writeError(ctx, w, http.StatusBadRequest, "Invalid entity ID")
		return
	}

	if err := h.indexService.RemoveEntity(ctx, entityID); err != nil {
		handleServiceError(ctx, w, err, "Failed to remove entity")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RemoveFieldHandler handles HTTP requests for removing a custom field from the index.
type RemoveFieldHandler struct {
	indexService service.IndexService
}

// NewRemoveFieldHandler creates a new RemoveFieldHandler.
func NewRemoveFieldHandler(indexService service.IndexService) *RemoveFieldHandler {
	return &RemoveFieldHandler{indexService: indexService}
}

// ServeHTTP handles DELETE /api/index/fields/{fieldID}.
func (h *RemoveFieldHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodDelete {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(ctx, w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	fieldID, err := strconv.ParseInt(chi.URLParam(r, "fieldID"), 10, 64)
	if err != nil {
		writeError(ctx, w, http.StatusBadRequest, "Invalid field ID")
		return
	}

	if err := h.indexService.RemoveField(ctx, fieldID); err != nil {
		handleServiceError(ctx, w, err, "Failed to remove field")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// KeywordRow is one stored keyword row.
type KeywordRow struct {
	Attribute string `json:"attribute"`
	FieldID   int64  `json:"field_id,omitempty"`
	Keywords  string `json:"keywords"`
}

// KeywordsResponse lists the stored keyword rows of an entity on a site.
type KeywordsResponse struct {
	EntityID int64        `json:"entity_id"`
	SiteID   int64        `json:"site_id"`
	Rows     []KeywordRow `json:"rows"`
}

// KeywordsHandler handles HTTP requests for the stored keywords of an entity.
type KeywordsHandler struct {
	indexService service.IndexService
}

// NewKeywordsHandler creates a new KeywordsHandler.
func NewKeywordsHandler(indexService service.IndexService) *KeywordsHandler {
	return &KeywordsHandler{indexService: indexService}
}

// ServeHTTP handles GET /api/index/{entityID}?site_id=N.
func (h *KeywordsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(ctx, w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	entityID, err := strconv.ParseInt(chi.URLParam(r, "entityID"), 10, 64)
	if err != nil {
		writeError(ctx, w, http.StatusBadRequest, "Invalid entity ID")
		return
	}
	siteID, err := strconv.ParseInt(r.URL.Query().Get("site_id"), 10, 64)
	if err != nil {
		writeError(ctx, w, http.StatusBadRequest, "Invalid site_id")
		return
	}

	rows, err := h.indexService.EntityKeywords(ctx, entityID, siteID)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to list keywords")
		return
	}

	resp := KeywordsResponse{EntityID: entityID, SiteID: siteID, Rows: make([]KeywordRow, 0, len(rows))}
	for _, row := range rows {
		resp.Rows = append(resp.Rows, KeywordRow{Attribute: row.Attribute, FieldID: row.FieldID, Keywords: row.Keywords})
	}
	writeJSON(ctx, w, http.StatusOK, resp)
}

// toEntity converts the payload to the indexer's entity, attaching the keyword extractor of each field format.
func (p EntityPayload) toEntity() (indexer.Entity, error) {
	e := indexer.Entity{
		ID:         p.ID,
		SiteID:     p.SiteID,
		Language:   p.Language,
		Slug:       p.Slug,
		Title:      p.Title,
		HasTitles:  p.HasTitles == nil || *p.HasTitles,
		Attributes: p.Attributes,
	}

	for _, f := range p.Fields {
		value, extractor, err := f.decode()
		if err != nil {
			return indexer.Entity{}, err
		}
		e.Fields = append(e.Fields, indexer.FieldValue{FieldID: f.FieldID, Value: value, Extractor: extractor})
	}
	return e, nil
}

func (f FieldPayload) decode() (any, indexer.KeywordExtractor, error) {
	if len(f.Value) == 0 || string(f.Value) == "null" {
		return nil, indexer.PlainText, nil
	}

	switch f.Format {
	case "", FormatText:
		var s string
		if err := json.Unmarshal(f.Value, &s); err != nil {
			// Numbers and booleans are indexed as written.
			return string(f.Value), indexer.PlainText, nil
		}
		return s, indexer.PlainText, nil
	case FormatMarkdown:
		var s string
		if err := json.Unmarshal(f.Value, &s); err != nil {
			return nil, nil, &service.ValidationError{Field: "fields", Message: fmt.Sprintf("field %d: markdown value must be a string", f.FieldID)}
		}
		return s, indexer.Markdown, nil
	case FormatList:
		var items []string
		if err := json.Unmarshal(f.Value, &items); err != nil {
			return nil, nil, &service.ValidationError{Field: "fields", Message: fmt.Sprintf("field %d: list value must be an array of strings", f.FieldID)}
		}
		return items, indexer.List, nil
	default:
		return nil, nil, &service.ValidationError{Field: "fields", Message: fmt.Sprintf("field %d: unknown format %q", f.FieldID, f.Format)}
	}
}
