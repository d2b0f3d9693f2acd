package domain

import "github.com/google/uuid"

// Scope carries who is calling and on behalf of which tenant. It is passed
// explicitly into every service operation.
type Scope struct {
	TenantID  uuid.UUID
	UserID    string
	RequestID string
}
