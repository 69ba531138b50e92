package app

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/ironclad/internal/scoring"
	"github.com/shrimpsizemoose/ironclad/internal/source"
)

// Duration reads "10s"-style strings from TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = parsed
	return nil
}

type Config struct {
	Server struct {
		Port         string `toml:"port" validate:"required"`
		RedirectRoot bool   `toml:"redirect_root"`
	} `toml:"server"`

	Sheet struct {
		SpreadsheetID  string `toml:"spreadsheet_id" validate:"required"`
		SubmissionsGID string `toml:"submissions_gid" validate:"required"`
		ChallengesGID  string `toml:"challenges_gid" validate:"required"`
		MileageGID     string `toml:"mileage_gid"`
		FormURL        string `toml:"form_url" validate:"omitempty,url"`
		MileageFormURL string `toml:"mileage_form_url" validate:"omitempty,url"`
	} `toml:"sheet"`

	Sources struct {
		SubmissionsCSVURL string   `toml:"submissions_csv_url" validate:"omitempty,url"`
		ChallengesCSVURL  string   `toml:"challenges_csv_url" validate:"omitempty,url"`
		MileageCSVURL     string   `toml:"mileage_csv_url" validate:"omitempty,url"`
		Timeout           Duration `toml:"timeout"`
	} `toml:"sources"`

	SheetsAPI struct {
		CredentialsPath  string `toml:"credentials_path" validate:"omitempty,file"`
		SubmissionsRange string `toml:"submissions_range" validate:"required_with=CredentialsPath"`
		ChallengesRange  string `toml:"challenges_range" validate:"required_with=CredentialsPath"`
		MileageRange     string `toml:"mileage_range"`
	} `toml:"sheets_api"`

	Cache struct {
		RedisURL  string   `toml:"redis_url"`
		TTL       Duration `toml:"ttl"`
		KeyPrefix string   `toml:"key_prefix"`
	} `toml:"cache"`

	Refresh struct {
		Schedule string `toml:"schedule" validate:"required"`
	} `toml:"refresh"`

	Bot struct {
		Token   string `toml:"token"`
		TopSize int    `toml:"top_size" validate:"gt=0"`
	} `toml:"bot"`

	Scoring scoring.Rules `toml:"scoring"`
}

func defaultConfig() Config {
	var config Config
	config.Sources.Timeout = Duration{10 * time.Second}
	config.Cache.TTL = Duration{60 * time.Second}
	config.Cache.KeyPrefix = "ironclad"
	config.Refresh.Schedule = "* * * * *"
	config.Bot.TopSize = 10
	config.Scoring = scoring.DefaultRules
	return config
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (*Config, error) {
	config := defaultConfig()
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(
			"error parsing config\n> Error: %w\n> Content:\n%s",
			err,
			string(data),
		)
	}

	if config.Server.Port == "" {
		return nil, fmt.Errorf("Server port is not specified in config, use a value like :8080")
	}

	if err := validator.New().Struct(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger.Debug.Printf("Loaded scoring config: %+v", config.Scoring)

	return &config, nil
}

func (c *Config) UseSheetsAPI() bool {
	return c.SheetsAPI.CredentialsPath != ""
}

// HasMileage reports whether a distance sheet is configured at all.
func (c *Config) HasMileage() bool {
	if c.UseSheetsAPI() {
		return c.SheetsAPI.MileageRange != ""
	}
	return c.Sheet.MileageGID != "" || c.Sources.MileageCSVURL != ""
}

func (c *Config) SubmissionsURL() string {
	return c.csvURL(c.Sources.SubmissionsCSVURL, c.Sheet.SubmissionsGID)
}

func (c *Config) ChallengesURL() string {
	return c.csvURL(c.Sources.ChallengesCSVURL, c.Sheet.ChallengesGID)
}

func (c *Config) MileageURL() string {
	return c.csvURL(c.Sources.MileageCSVURL, c.Sheet.MileageGID)
}

func (c *Config) csvURL(override, gid string) string {
	if override != "" {
		return override
	}
	return source.CSVExportURL(c.Sheet.SpreadsheetID, gid)
}
