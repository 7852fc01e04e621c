// Package model holds the entities exchanged between layers: the rows the
// repository reads, the request payloads handlers bind, and the JSON shapes
// written back to clients.
package model

// ListRequest is bound by list routes, which take no input.
type ListRequest struct{}

func (r *ListRequest) Validate() error {
	return nil
}

// DeletedResponse acknowledges a successful delete.
type DeletedResponse struct {
	Status string `json:"status"`
}

// Deleted is the body returned by every DELETE route.
var Deleted = DeletedResponse{Status: "deleted"}
