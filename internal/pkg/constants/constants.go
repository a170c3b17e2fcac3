package constants

const (
	ViperListenAddr      = "listen_addr"
	ViperPostgresDSN     = "postgres_dsn"
	ViperRedisAddr       = "redis_addr"
	ViperSecretKey       = "secret_key"
	ViperDefaultDistrict = "default_district"
	ViperGeocoderBaseURL = "geocoder_base_url"
	ViperIPLookupBaseURL = "ip_lookup_base_url"
	ViperCORSOrigins     = "cors_origins"

	CookieKeyAuthToken   = "auth_token"
	CookieKeySecretToken = "secret_token"

	CtxKeyUserID    = "user_id"
	CtxKeySessionID = "session_id"
	CtxKeyRequestID = "request_id"
)
