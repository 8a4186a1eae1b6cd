package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string `yaml:"log-level" env-default:"info"`
	HTTPPort   string `yaml:"http-port" env-default:"9090"`
	SocketPort string `yaml:"socket-port" env-default:"8080"`
	Redis      Redis  `yaml:"redis"`
	Game       Game   `yaml:"game"`
	Bot        Bot    `yaml:"bot"`
}

type Redis struct {
	Host string `yaml:"host" env-default:"localhost"`
	Port string `yaml:"port" env-default:"6379"`
}

// Game holds the board defaults used when a client does not configure a
// session explicitly.
type Game struct {
	BoardSize int `yaml:"board-size" env-default:"3"`
	WinLength int `yaml:"win-length" env-default:"3"`
}

// Bot tunes the computer player.
type Bot struct {
	// Difficulty applied when a session does not pick one: easy plays
	// randomly, hard searches.
	Difficulty string `yaml:"difficulty" env-default:"hard"`

	// Depth caps the minimax search; 0 lets the bot adapt to the board size.
	Depth int `yaml:"depth" env-default:"0"`

	// TimeBudgetMs is the wall-clock budget of one search in milliseconds.
	TimeBudgetMs int `yaml:"time-budget-ms" env-default:"250"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

func (that *Bot) TimeBudget() time.Duration {
	return time.Duration(that.TimeBudgetMs) * time.Millisecond
}
