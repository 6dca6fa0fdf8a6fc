package model

// Environment is the deployment environment the service runs in.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvStaging     Environment = "staging"
	EnvProduction  Environment = "production"
)

// EnvironmentFromString normalizes a config value; unknown values fall back
// to development.
func EnvironmentFromString(s string) Environment {
	switch Environment(s) {
	case EnvStaging:
		return EnvStaging
	case EnvProduction:
		return EnvProduction
	default:
		return EnvDevelopment
	}
}
