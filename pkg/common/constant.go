package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyAgroDBType      string = "AGRO_DB_TYPE"
	EnvKeyAgroDbPath      string = "AGRO_DB_PATH"
	EnvKeyAgroPostgresDSN string = "AGRO_POSTGRES_DSN"

	EnvKeyAgroHttpHostPort string = "AGRO_HTTP_HOST_PORT"

	EnvKeyAgroDefaultRate  string = "AGRO_DEFAULT_RATE"
	EnvKeyAgroDefaultBurst string = "AGRO_DEFAULT_BURST"

	EnvKeyInfluxURL    string = "INFLUXDB_URL"
	EnvKeyInfluxToken  string = "INFLUXDB_TOKEN"
	EnvKeyInfluxOrg    string = "INFLUXDB_ORG"
	EnvKeyInfluxBucket string = "INFLUXDB_BUCKET"

	EnvKeyMailHost          string = "MAIL_HOST"
	EnvKeyMailPort          string = "MAIL_PORT"
	EnvKeyMailUsername      string = "MAIL_USERNAME"
	EnvKeyMailPassword      string = "MAIL_PASSWORD"
	EnvKeyOAuthClientID     string = "OAUTH_CLIENTID"
	EnvKeyOAuthClientSecret string = "OAUTH_CLIENT_SECRET"
	EnvKeyOAuthRefreshToken string = "OAUTH_REFRESH_TOKEN"

	EnvKeyAlertUserID string = "AGRO_ALERT_USER_ID"
	EnvKeyAlertEmail  string = "AGRO_ALERT_EMAIL"

	LoggerNameAgroCore      string = "agro_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameTimeSeries    string = "tsdb"
	LoggerNameMailer        string = "mailer"

	LoggerFieldAgroCategory string = "category"

	LoggerCategoryAgroTelemetry    string = "telemetry"
	LoggerCategoryAgroAlert        string = "alert"
	LoggerCategoryAgroNotification string = "notification"
	LoggerCategoryAgroCatalog      string = "catalog"
)
