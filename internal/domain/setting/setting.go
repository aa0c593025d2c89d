// Package setting holds the key-value system configuration edited from the
// admin screen: display names, the job-ID prefix and the upload size limit.
package setting

import "context"

// Known setting keys.
const (
	KeySystemName        = "system_name"
	KeyOrgName           = "org_name"
	KeyJobIDPrefix       = "job_id_prefix"
	KeyMaxFileSize       = "max_file_size"
	KeyAdminPasswordHash = "admin_password_hash"
)

// Defaults returns the documented default for every user-visible setting key.
// The admin password hash is deliberately absent: it is seeded from config
// and never exposed through the settings API.
func Defaults() map[string]string {
	return map[string]string{
		KeySystemName:  "IT Manager Pro",
		KeyOrgName:     "",
		KeyJobIDPrefix: "JOB",
		KeyMaxFileSize: "5",
	}
}

// Repository persists settings as individual key-value rows.
type Repository interface {
	GetAll(ctx context.Context) (map[string]string, error)
	Get(ctx context.Context, key string) (string, error)
	// Upsert writes every entry of the given map, inserting or updating by key.
	Upsert(ctx context.Context, values map[string]string) error
}

// Provider exposes settings reads to other workflows. Ticket intake uses it
// to resolve the job-ID prefix; a store failure on this path falls back to
// the default rather than failing the request.
type Provider interface {
	JobIDPrefix(ctx context.Context) string
}
