package instance

import "github.com/angelmondragon/storefront-backend/pkg/env"

// GetID returns the identifier of this process, preferring STOREFRONT_INSTANCE_ID then the platform DYNO.
func GetID() string {
	return env.FirstSet("local", "STOREFRONT_INSTANCE_ID", "DYNO")
}
