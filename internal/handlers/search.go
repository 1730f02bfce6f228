package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"searchindex/internal/contextutil"
	"searchindex/internal/search"
	"searchindex/internal/service"
)

// SearchResponse represents the HTTP response payload for search.
type SearchResponse struct {
	Query   string          `json:"query"`
	Count   int             `json:"count"`
	Results []search.Result `json:"results"`
}

// SearchHandler handles HTTP requests for search.
type SearchHandler struct {
	indexService service.IndexService
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(indexService service.IndexService) *SearchHandler {
	return &SearchHandler{indexService: indexService}
}

// ServeHTTP handles GET /api/search.
//
// Query parameters: q, site_id (repeatable), candidate_id (repeatable), lang, sub_left, sub_right.
func (h *SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(ctx, w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	params := r.URL.Query()
	req := service.SearchRequest{
		Query:    params.Get("q"),
		Language: params.Get("lang"),
	}

	var err error
	if req.SiteIDs, err = parseIDs(params, "site_id"); err != nil {
		writeError(ctx, w, http.StatusBadRequest, "Invalid site_id")
		return
	}
	// An explicit but empty candidate_id restricts the search to nothing.
	if req.CandidateIDs, err = parseIDs(params, "candidate_id"); err != nil {
		writeError(ctx, w, http.StatusBadRequest, "Invalid candidate_id")
		return
	}
	if req.SubLeft, err = parseBool(params, "sub_left"); err != nil {
		writeError(ctx, w, http.StatusBadRequest, "Invalid sub_left")
		return
	}
	if req.SubRight, err = parseBool(params, "sub_right"); err != nil {
		writeError(ctx, w, http.StatusBadRequest, "Invalid sub_right")
		return
	}

	resp, err := h.indexService.Search(ctx, req)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to search")
		return
	}

	results := []search.Result(resp.Results)
	if results == nil {
		results = []search.Result{}
	}
	writeJSON(ctx, w, http.StatusOK, SearchResponse{
		Query:   req.Query,
		Count:   len(results),
		Results: results,
	})
}

// parseIDs returns nil when the parameter is absent and an empty slice when it is present but blank.
func parseIDs(params url.Values, key string) ([]int64, error) {
	values, ok := params[key]
	if !ok {
		return nil, nil
	}
	ids := make([]int64, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseBool(params url.Values, key string) (*bool, error) {
	v := params.Get(key)
	if v == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
