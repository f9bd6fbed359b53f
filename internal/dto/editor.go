package dto

import (
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/domain"
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/events"
)

// BeginEditRequest starts editing an entity. Either EntityID names a stored entity, or
// EntityTypeID (plus optional Name and CustomData) describes a new one.
type BeginEditRequest struct {
	EntityID      int64             `json:"entityID" binding:"gte=0"`
	EntityTypeID  int64             `json:"entityTypeID" binding:"gte=0"`
	Name          string            `json:"name"`
	CustomData    map[string]string `json:"customData"`
	ExpectedEvent string            `json:"expectedEvent"`
	Source        string            `json:"source"`
}

// UpdateEditorRequest stages edits on the loaded entity.
type UpdateEditorRequest struct {
	Name       *string           `json:"name"`
	CustomData map[string]string `json:"customData"`
}

// EditorViewResponse carries the display properties of the edit session.
type EditorViewResponse struct {
	EntitySelectorVisible bool   `json:"entitySelectorVisible"`
	PrimaryFieldName      string `json:"primaryFieldName"`
	PrimaryFieldFormat    string `json:"primaryFieldFormat"`
	SaveCaption           string `json:"saveCaption"`
	SelectCaption         string `json:"selectCaption"`
	CreateAccountCaption  string `json:"createAccountCaption"`
	CanSave               bool   `json:"canSave"`
	CanSelect             bool   `json:"canSelect"`
	CanCreateAccount      bool   `json:"canCreateAccount"`
}

// EditorResponse is the state of the caller's edit session.
type EditorResponse struct {
	State         string                         `json:"state"`
	Entity        *domain.Entity                 `json:"entity,omitempty"`
	EntityType    *domain.EntityType             `json:"entityType,omitempty"`
	PendingFields map[string]string              `json:"pendingFields,omitempty"`
	Request       *domain.EntityOperationRequest `json:"request,omitempty"`
	View          EditorViewResponse             `json:"view"`
}

// CommandResponse is returned by the editor commands.
type CommandResponse struct {
	Executed bool           `json:"executed"`
	Editor   EditorResponse `json:"editor"`
}

// NotificationsResponse lists the caller's recent outbound notifications.
type NotificationsResponse struct {
	Notifications []events.Notification `json:"notifications"`
}

// EntityResponse wraps a stored entity.
type EntityResponse struct {
	Entity domain.Entity `json:"entity"`
}

// ListNotificationsParams selects whether listed notifications are removed from the outbox.
type ListNotificationsParams struct {
	Drain bool `form:"drain"`
}
