package domain

const (
	PermissionCreateAccount     = "CreateAccount"
	PermissionManagePermissions = "ManagePermissions"
	PermissionManageEntityTypes = "ManageEntityTypes"
)

// KnownPermissions lists every permission name the service understands.
var KnownPermissions = []string{
	PermissionCreateAccount,
	PermissionManagePermissions,
	PermissionManageEntityTypes,
}

// PermissionDecision is the typed answer of a permission check.
type PermissionDecision struct {
	Permission string `json:"permission"`
	Granted    bool   `json:"granted"`
	Reason     string `json:"reason,omitempty"`
}

// Granted builds a positive decision.
func Granted(permission string) PermissionDecision {
	return PermissionDecision{Permission: permission, Granted: true}
}

// Denied builds a negative decision with a reason.
func Denied(permission, reason string) PermissionDecision {
	return PermissionDecision{Permission: permission, Reason: reason}
}
