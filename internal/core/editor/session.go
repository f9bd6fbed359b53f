package editor

import (
	"github.com/aRTxaRTx/sambapos_entity_editor/internal/core/domain"
)

// State is the lifecycle state of an edit session.
type State string

const (
	StateIdle      State = "IDLE"
	StatePopulated State = "POPULATED"
)

// EditSession is the state of the record being edited. A nil session is idle; a
// non-nil one always carries the entity, its type, the field editor and the request.
type EditSession struct {
	Entity     domain.Entity
	EntityType domain.EntityType
	Fields     *CustomFields
	// Request is the begin-edit request; Select replies to it.
	Request domain.EntityOperationRequest
}

func newEditSession(req domain.EntityOperationRequest, entityType domain.EntityType) *EditSession {
	entity := req.SelectedEntity.Clone()
	req.SelectedEntity = entity.Clone()
	return &EditSession{
		Entity:     entity,
		EntityType: entityType,
		Fields:     NewCustomFields(entity, entityType),
		Request:    req,
	}
}

// View holds the display properties derived from a session.
type View struct {
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

func idleView() View {
	return View{
		SaveCaption:          "Save",
		SelectCaption:        "Select Entity",
		CreateAccountCaption: "Create Account",
	}
}

// Snapshot is an immutable copy of the editor state handed to callers.
type Snapshot struct {
	State         State                          `json:"state"`
	Entity        *domain.Entity                 `json:"entity,omitempty"`
	EntityType    *domain.EntityType             `json:"entityType,omitempty"`
	PendingFields domain.CustomData              `json:"pendingFields,omitempty"`
	Request       *domain.EntityOperationRequest `json:"request,omitempty"`
	View          View                           `json:"view"`
}

func snapshotOf(s *EditSession, v View) Snapshot {
	if s == nil {
		return Snapshot{State: StateIdle, View: v}
	}
	entity := s.Entity.Clone()
	entityType := s.EntityType
	entityType.CustomFields = append([]domain.EntityCustomField(nil), s.EntityType.CustomFields...)
	req := s.Request
	req.SelectedEntity = req.SelectedEntity.Clone()
	return Snapshot{
		State:         StatePopulated,
		Entity:        &entity,
		EntityType:    &entityType,
		PendingFields: s.Fields.Values(),
		Request:       &req,
		View:          v,
	}
}
