package domain

// EntityOperationRequest asks a component to operate on an entity and names the event
// on which the result is expected. It doubles as the return address of an edit.
type EntityOperationRequest struct {
	SelectedEntity Entity `json:"selectedEntity"`
	// ExpectedEvent is the topic the result is published on.
	ExpectedEvent string `json:"expectedEvent"`
	// Source identifies the requester; it is echoed back on replies.
	Source string `json:"source,omitempty"`
}
