package constants

// Environment names recognized by the CLI and the migration manager.
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Pagination defaults.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ContextKeyAdminSession marks a request that passed the admin session gate.
const ContextKeyAdminSession = "admin_session"
