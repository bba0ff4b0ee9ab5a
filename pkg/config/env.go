package config

const EnvPrefix = "STOREFRONT"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

const (
	EnvAppEnv                    = "STOREFRONT_APP_ENV"
	EnvPort                      = "STOREFRONT_APP_PORT"
	EnvLogLevel                  = "STOREFRONT_LOG_LEVEL"
	EnvLogFormat                 = "STOREFRONT_LOG_FORMAT"
	EnvCORSAllowedOrigins        = "STOREFRONT_CORS_ALLOWED_ORIGINS"
	EnvCheckoutProcessingDelay   = "STOREFRONT_CHECKOUT_PROCESSING_DELAY"
	EnvCheckoutProcessingTimeout = "STOREFRONT_CHECKOUT_PROCESSING_TIMEOUT"
	EnvCatalogFeaturedLimit      = "STOREFRONT_CATALOG_FEATURED_LIMIT"
	EnvMetricsEnabled            = "STOREFRONT_METRICS_ENABLED"
	EnvMetricsPath               = "STOREFRONT_METRICS_PATH"
	EnvDemoUserID                = "STOREFRONT_DEMO_USER_ID"
)
