package config

type AppConfig struct {
	APIPort            string `env:"PORT,required" envDefault:"12223"`
	APIKey             string `env:"TRUSTWATCH_API_KEY"`
	RabbitMQURL        string `env:"RABBITMQ_URL"`
	CorsAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*"`
	MaxBodyBytes       int64  `env:"MAX_BODY_BYTES" envDefault:"1048576"`
}

type WhoisConfig struct {
	Url            string `env:"WHOISXML_URL" envDefault:"https://www.whoisxmlapi.com/whoisserver/WhoisService" validate:"required"`
	ApiKey         string `env:"WHOISXML_API_KEY"`
	TimeoutSeconds int    `env:"WHOISXML_TIMEOUT_SECONDS" envDefault:"10"`
}

type SafeBrowsingConfig struct {
	Url            string `env:"SAFE_BROWSING_URL" envDefault:"https://safebrowsing.googleapis.com/v4/threatMatches:find" validate:"required"`
	ApiKey         string `env:"SAFE_BROWSING_API_KEY"`
	TimeoutSeconds int    `env:"SAFE_BROWSING_TIMEOUT_SECONDS" envDefault:"10"`
	ClientId       string `env:"SAFE_BROWSING_CLIENT_ID" envDefault:"trustwatch"`
	ClientVersion  string `env:"SAFE_BROWSING_CLIENT_VERSION" envDefault:"1.0.0"`
}

type EmailRepConfig struct {
	Url            string `env:"EMAILREP_URL" envDefault:"https://emailrep.io" validate:"required"`
	ApiKey         string `env:"EMAILREP_API_KEY"`
	UserAgent      string `env:"EMAILREP_USER_AGENT" envDefault:"trustwatch"`
	TimeoutSeconds int    `env:"EMAILREP_TIMEOUT_SECONDS" envDefault:"10"`
}

type HttpsProbeConfig struct {
	TimeoutSeconds int `env:"HTTPS_PROBE_TIMEOUT_SECONDS" envDefault:"5"`
	MaxRedirects   int `env:"HTTPS_PROBE_MAX_REDIRECTS" envDefault:"2"`
}

type DnsConfig struct {
	TimeoutSeconds int `env:"DNS_TIMEOUT_SECONDS" envDefault:"3"`
}

type CrmConfig struct {
	Url            string `env:"CRM_URL"`
	ApiKey         string `env:"CRM_API_KEY"`
	TimeoutSeconds int    `env:"CRM_TIMEOUT_SECONDS" envDefault:"10"`
}
