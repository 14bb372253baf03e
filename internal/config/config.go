package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv     = "CHECKLIST_MAPPER_CONFIG"
	databaseDSNEnv    = "DATABASE_DSN"
	telegramTokenEnv  = "TELEGRAM_BOT_TOKEN"
	telegramChatIDEnv = "TELEGRAM_CHAT_ID"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging       LoggingConfig      `yaml:"logging"`
	Source        SourceConfig       `yaml:"source"`
	Output        OutputConfig       `yaml:"output"`
	Mapping       MappingConfig      `yaml:"mapping"`
	Dataset       DatasetConfig      `yaml:"dataset"`
	Notifications NotificationConfig `yaml:"notifications"`
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// SourceConfig selects and parameterizes the raw-table source strategy.
type SourceConfig struct {
	Kind string           `yaml:"kind"`
	CSV  CSVSourceConfig  `yaml:"csv"`
	HTML HTMLSourceConfig `yaml:"html"`
}

// CSVSourceConfig points at the four raw input files.
type CSVSourceConfig struct {
	DistributionPath string `yaml:"distributionPath"`
	TaxonPath        string `yaml:"taxonPath"`
	RegionPath       string `yaml:"regionPath"`
	ReferencePath    string `yaml:"referencePath"`
}

// HTMLSourceConfig points at the four raw tables published as web pages.
type HTMLSourceConfig struct {
	Distribution HTMLTableConfig `yaml:"distribution"`
	Taxon        HTMLTableConfig `yaml:"taxon"`
	Region       HTMLTableConfig `yaml:"region"`
	Reference    HTMLTableConfig `yaml:"reference"`
}

// HTMLTableConfig locates one raw table inside a page.
type HTMLTableConfig struct {
	URL      string `yaml:"url"`
	Selector string `yaml:"selector"`
}

// OutputConfig enables the export sinks; several may run at once.
type OutputConfig struct {
	CSV      CSVSinkConfig      `yaml:"csv"`
	SQLite   SQLiteSinkConfig   `yaml:"sqlite"`
	Postgres PostgresSinkConfig `yaml:"postgres"`
}

// CSVSinkConfig writes the three tables as delimited files.
type CSVSinkConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

// SQLiteSinkConfig rewrites the three tables in a SQLite database.
type SQLiteSinkConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// PostgresSinkConfig rewrites the three tables in a Postgres database.
type PostgresSinkConfig struct {
	Enabled bool   `yaml:"enabled"`
	DSN     string `yaml:"dsn"`
}

// MappingConfig tunes the translation stage.
type MappingConfig struct {
	// Namespace prefixes every derived taxon id so ids never collide with
	// identifiers from other datasets.
	Namespace string `yaml:"namespace"`
	// Strict turns categorical codes missing from the translation tables
	// into a run-fatal error instead of an empty-string fallback.
	Strict bool `yaml:"strict"`
}

// DatasetConfig carries the constant dataset identity stamped onto every
// Taxon row.
type DatasetConfig struct {
	Language        string `yaml:"language"`
	License         string `yaml:"license"`
	RightsHolder    string `yaml:"rightsHolder"`
	AccessRights    string `yaml:"accessRights"`
	DatasetID       string `yaml:"datasetId"`
	InstitutionCode string `yaml:"institutionCode"`
	DatasetName     string `yaml:"datasetName"`
}

// NotificationConfig encapsulates outbound channels (Telegram, etc.).
type NotificationConfig struct {
	Telegram TelegramConfig `yaml:"telegram"`
}

// TelegramConfig wires all data required to send messages.
type TelegramConfig struct {
	BotToken string `yaml:"botToken"`
	ChatID   string `yaml:"chatId"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(databaseDSNEnv); v != "" {
		c.Output.Postgres.DSN = v
	}

	if v := os.Getenv(telegramTokenEnv); v != "" {
		c.Notifications.Telegram.BotToken = v
	}

	if v := os.Getenv(telegramChatIDEnv); v != "" {
		c.Notifications.Telegram.ChatID = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging = override.Logging
	}

	if override.Source.Kind != "" {
		base.Source.Kind = override.Source.Kind
	}
	if override.Source.CSV.DistributionPath != "" {
		base.Source.CSV.DistributionPath = override.Source.CSV.DistributionPath
	}
	if override.Source.CSV.TaxonPath != "" {
		base.Source.CSV.TaxonPath = override.Source.CSV.TaxonPath
	}
	if override.Source.CSV.RegionPath != "" {
		base.Source.CSV.RegionPath = override.Source.CSV.RegionPath
	}
	if override.Source.CSV.ReferencePath != "" {
		base.Source.CSV.ReferencePath = override.Source.CSV.ReferencePath
	}
	if override.Source.HTML.Distribution.URL != "" {
		base.Source.HTML = override.Source.HTML
	}

	if override.Output.CSV.Dir != "" {
		base.Output.CSV.Dir = override.Output.CSV.Dir
	}
	base.Output.CSV.Enabled = base.Output.CSV.Enabled || override.Output.CSV.Enabled
	if override.Output.SQLite.Path != "" {
		base.Output.SQLite.Path = override.Output.SQLite.Path
	}
	base.Output.SQLite.Enabled = base.Output.SQLite.Enabled || override.Output.SQLite.Enabled
	if override.Output.Postgres.DSN != "" {
		base.Output.Postgres.DSN = override.Output.Postgres.DSN
	}
	base.Output.Postgres.Enabled = base.Output.Postgres.Enabled || override.Output.Postgres.Enabled

	if override.Mapping.Namespace != "" {
		base.Mapping.Namespace = override.Mapping.Namespace
	}
	base.Mapping.Strict = base.Mapping.Strict || override.Mapping.Strict

	if override.Dataset.Language != "" {
		base.Dataset.Language = override.Dataset.Language
	}
	if override.Dataset.License != "" {
		base.Dataset.License = override.Dataset.License
	}
	if override.Dataset.RightsHolder != "" {
		base.Dataset.RightsHolder = override.Dataset.RightsHolder
	}
	if override.Dataset.AccessRights != "" {
		base.Dataset.AccessRights = override.Dataset.AccessRights
	}
	if override.Dataset.DatasetID != "" {
		base.Dataset.DatasetID = override.Dataset.DatasetID
	}
	if override.Dataset.InstitutionCode != "" {
		base.Dataset.InstitutionCode = override.Dataset.InstitutionCode
	}
	if override.Dataset.DatasetName != "" {
		base.Dataset.DatasetName = override.Dataset.DatasetName
	}

	if override.Notifications.Telegram.BotToken != "" {
		base.Notifications.Telegram.BotToken = override.Notifications.Telegram.BotToken
	}
	if override.Notifications.Telegram.ChatID != "" {
		base.Notifications.Telegram.ChatID = override.Notifications.Telegram.ChatID
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Source: SourceConfig{
			Kind: "csv",
			CSV: CSVSourceConfig{
				DistributionPath: "data/raw/distribution.csv",
				TaxonPath:        "data/raw/taxon.csv",
				RegionPath:       "data/raw/region.csv",
				ReferencePath:    "data/raw/reference.csv",
			},
		},
		Output: OutputConfig{
			CSV: CSVSinkConfig{Enabled: true, Dir: "data/processed"},
		},
		Mapping: MappingConfig{
			Namespace: "checklist-butterflies-europe",
		},
		Dataset: DatasetConfig{
			Language:        "en",
			License:         "http://creativecommons.org/publicdomain/zero/1.0/",
			RightsHolder:    "Butterfly Conservation Europe",
			AccessRights:    "https://www.inbo.be/en/norms-data-use",
			DatasetID:       "https://doi.org/10.15468/ye7whj",
			InstitutionCode: "BCE",
			DatasetName:     "Checklist of European Butterflies",
		},
	}
}
