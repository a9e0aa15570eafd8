package model

// Environment names.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the caller identity through use cases and repositories.
type Scope struct {
	UserID   string
	Username string
}
