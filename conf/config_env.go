package conf

import (
	"github.com/caarlos0/env/v6"
)

// AppConfig presents app conf
type AppConfig struct {
	Port      string `env:"PORT" envDefault:"8081"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	EnableDB  string `env:"ENABLE_DB" envDefault:"false"`

	// Remote data sources. The legacy dashboards hard-coded these URLs in
	// every script copy; here they are configuration.
	SalesURL    string `env:"SALES_URL" envDefault:"https://raw.githubusercontent.com/HUHU0101123/og-app/main/datasource.csv"`
	CategoryURL string `env:"CATEGORY_URL" envDefault:"https://raw.githubusercontent.com/HUHU0101123/og-app/main/categorias.csv"`
	ImportsURL  string `env:"IMPORTS_URL" envDefault:"https://raw.githubusercontent.com/HUHU0101123/og-app/main/importaciones.csv"`

	// TTL in seconds for the raw-fetch cache. Only fetched rows are cached,
	// never derived tables.
	SourceCacheTTL int `env:"SOURCE_CACHE_TTL" envDefault:"300"`
}

var config AppConfig

func SetEnv() {
	_ = env.Parse(&config)
}

func LoadEnv() AppConfig {
	return config
}
