package utils

import "github.com/Omoefe-bazunu/hhaven/config"

// IsProduction reports whether the app runs with ENV=production.
func IsProduction() bool {
	return config.IsProduction()
}
