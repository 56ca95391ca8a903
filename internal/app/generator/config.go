package generator

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds generator pipeline settings.
type Config struct {
	FreqDictPath    string `yaml:"freq_dict_path"   env:"CARDGEN_FREQ_DICT_PATH"   env-default:"eng_dict.txt"`
	OutputFile      string `yaml:"output_file"      env:"CARDGEN_OUTPUT_FILE"      env-default:"collocation_cards.txt"`
	AssetsDir       string `yaml:"assets_dir"       env:"CARDGEN_ASSETS_DIR"       env-default:"."`
	SkippedLogPath  string `yaml:"skipped_log_path" env:"CARDGEN_SKIPPED_LOG"      env-default:"skipped_words.log"`
	MaxWords        int    `yaml:"max_words"        env:"CARDGEN_MAX_WORDS"`
	EaseThreshold   int    `yaml:"ease_threshold"   env:"CARDGEN_EASE_THRESHOLD"   env-default:"2000"`
	LapsesThreshold int    `yaml:"lapses_threshold" env:"CARDGEN_LAPSES_THRESHOLD" env-default:"2"`
	DifficultLimit  int    `yaml:"difficult_limit"  env:"CARDGEN_DIFFICULT_LIMIT"  env-default:"100"`
}

// LoadConfig reads generator configuration from a YAML file and environment
// variables. Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("generator config: read %s: %w", path, err)
			}
			return &cfg, nil
		}
		return nil, fmt.Errorf("generator config: file %s not found", path)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("generator config: read env: %w", err)
	}

	return &cfg, nil
}
