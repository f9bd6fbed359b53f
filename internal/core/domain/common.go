package domain

import "time"

// AuditFields holds standard audit information for persisted records.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// Stamp sets the audit fields for a write performed by userID at now.
// CreatedAt/CreatedBy are only filled on the first write.
func (a *AuditFields) Stamp(userID string, now time.Time) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
		a.CreatedBy = userID
	}
	a.LastUpdatedAt = now
	a.LastUpdatedBy = userID
}
