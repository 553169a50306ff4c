package config

import (
	"github.com/kelseyhightower/envconfig"
)

var singleConfig *Config = nil

type Config struct {
	Service  *svcConfig
	Branding *brandingConfig
}

type svcConfig struct {
	Address        string   `envconfig:"ROI_ADDRESS" default:":8080"`
	MetricsAddress string   `envconfig:"ROI_METRICS_ADDRESS" default:":8081"`
	LogLevel       string   `envconfig:"ROI_LOG_LEVEL" default:"info"`
	LogEncoding    string   `envconfig:"ROI_LOG_ENCODING" default:"console"`
	HTTPLogging    bool     `envconfig:"ROI_HTTP_LOGGING" default:"true"`
	AllowedOrigins []string `envconfig:"ROI_ALLOWED_ORIGINS" default:"*"`
	PathPrefix     string   `envconfig:"ROI_PATH_PREFIX"`
}

type brandingConfig struct {
	Title          string `envconfig:"ROI_PAGE_TITLE" default:"We're Just Better Together"`
	Description    string `envconfig:"ROI_PAGE_DESCRIPTION" default:"Estimate the potential savings and revenue impact of using our automated inventory management."`
	Footer         string `envconfig:"ROI_PAGE_FOOTER" default:"Powered by Worksprings | Streamlining Inventory Management"`
	PartnerLogoURL string `envconfig:"ROI_PARTNER_LOGO_URL" default:"https://upload.wikimedia.org/wikipedia/commons/2/2f/McDonald%27s_logo.svg"`
	ProductLogoURL string `envconfig:"ROI_PRODUCT_LOGO_URL" default:"https://cdn.prod.website-files.com/63464a83595dfc63e7e1662f/64e904bb5806093b06821451_Logo.png"`
	LogoWidth      int    `envconfig:"ROI_LOGO_WIDTH" default:"150"`
}

// New returns the process configuration, read from the environment on first use.
func New() (*Config, error) {
	if singleConfig == nil {
		cfg, err := Load()
		if err != nil {
			return nil, err
		}
		singleConfig = cfg
	}
	return singleConfig, nil
}

// Load reads a fresh configuration from the environment.
func Load() (*Config, error) {
	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
