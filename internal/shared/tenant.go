// Package shared holds cross-module helpers: tenant identification and
// pagination metadata.
package shared

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// TenantHeader carries the tenant identifier on every request. The
// upstream gateway authenticates the caller and sets this header; inside
// the service the tenant id is always an explicit parameter, never
// ambient state.
const TenantHeader = "X-Tenant-ID"

type tenantKey struct{}

// ContextWithTenant stores the tenant id on the context.
func ContextWithTenant(ctx context.Context, tenantID uuid.UUID) context.Context {
	return context.WithValue(ctx, tenantKey{}, tenantID)
}

// TenantFromContext returns the tenant id set by the tenant middleware.
func TenantFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(tenantKey{}).(uuid.UUID)
	return id, ok
}

// TenantFromRequest parses the tenant header directly.
func TenantFromRequest(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(r.Header.Get(TenantHeader))
}
