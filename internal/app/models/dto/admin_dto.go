package dto

// AdminQueryRequest is the ad-hoc read query payload
type AdminQueryRequest struct {
	Query string `json:"query" binding:"required" example:"SELECT id, name FROM departments"`
}

// AdminQueryResult carries the rows of an ad-hoc read query
type AdminQueryResult struct {
	Columns []string                 `json:"columns"`
	Rows    []map[string]interface{} `json:"rows"`
	Count   int                      `json:"count"`
}
