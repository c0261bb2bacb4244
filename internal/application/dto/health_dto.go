package dto

// HealthResponse basic liveness body.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// ServiceHealth one entry of the full health report.
type ServiceHealth struct {
	Status string `json:"status"`
	Type   string `json:"type,omitempty"`
	Port   int    `json:"port,omitempty"`
	Error  string `json:"error,omitempty"`
	Counts *HealthCounts `json:"counts,omitempty"`
}

// HealthCounts stored record counts reported by the full health check.
type HealthCounts struct {
	Invoices    int  `json:"invoices"`
	HasSettings bool `json:"hasSettings"`
}

// FullHealthResponse deep health report: storage reachability and mail configuration.
type FullHealthResponse struct {
	Status    string                   `json:"status"`
	Timestamp string                   `json:"timestamp"`
	Services  map[string]ServiceHealth `json:"services"`
}
