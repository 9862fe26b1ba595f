package appconfig

import (
	"errors"
	"fmt"

	"casino-go/casino"
	"casino-go/common/logger"
	"casino-go/common/random"
	"casino-go/input"

	"github.com/ilyakaznacheev/cleanenv"
)

var ErrInvalidConfig = errors.New("invalid config")

type AppConfig struct {
	Env     string `yaml:"env" env:"CASINO_ENV" env-default:"local"`
	LogFile string `yaml:"log_file" env:"CASINO_LOG_FILE" env-default:"casino.log"`

	// Only the width matters: it places the race finish line.
	ScreenWidth  int `yaml:"screen_width" env:"CASINO_SCREEN_WIDTH" env-default:"256"`
	ScreenHeight int `yaml:"screen_height" env:"CASINO_SCREEN_HEIGHT" env-default:"256"`
	FinishMargin int `yaml:"finish_margin" env:"CASINO_FINISH_MARGIN" env-default:"20"`

	StartingBalance int64     `yaml:"starting_balance" env:"CASINO_STARTING_BALANCE" env-default:"500"`
	Increment       int64     `yaml:"increment" env:"CASINO_INCREMENT" env-default:"10"`
	HorseCount      int       `yaml:"horse_count" env:"CASINO_HORSE_COUNT" env-default:"4"`
	HorseWeights    []float64 `yaml:"horse_weights" env:"CASINO_HORSE_WEIGHTS" env-separator:"," env-default:"0.4,0.3,0.2,0.1"`
	SpinTicks       int       `yaml:"spin_ticks" env:"CASINO_SPIN_TICKS" env-default:"60"`

	RepeatBase  int `yaml:"repeat_base" env:"CASINO_REPEAT_BASE" env-default:"12"`
	RepeatMin   int `yaml:"repeat_min" env:"CASINO_REPEAT_MIN" env-default:"2"`
	RepeatAccel int `yaml:"repeat_accel" env:"CASINO_REPEAT_ACCEL" env-default:"10"`

	FPS       int    `yaml:"fps" env:"CASINO_FPS" env-default:"30"`
	LedgerDSN string `yaml:"ledger_dsn" env:"CASINO_LEDGER_DSN" env-default:":memory:"`
	// 0 seeds from the clock.
	Seed int64 `yaml:"seed" env:"CASINO_SEED" env-default:"0"`
}

// LoadAppConfig reads path (yaml) when given, then the environment, and
// validates the result.
func LoadAppConfig(path string) (*AppConfig, error) {
	cfg := &AppConfig{}
	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *AppConfig) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}
	switch c.Env {
	case logger.EnvLocal, logger.EnvDev, logger.EnvProd:
	default:
		return invalid("env %q", c.Env)
	}
	if c.HorseCount < 1 {
		return invalid("horse count %d", c.HorseCount)
	}
	if len(c.HorseWeights) != c.HorseCount {
		return invalid("%d weights for %d horses", len(c.HorseWeights), c.HorseCount)
	}
	if err := random.ValidateWeights(c.HorseWeights); err != nil {
		return invalid("horse weights: %v", err)
	}
	if c.StartingBalance <= 0 || c.Increment <= 0 {
		return invalid("starting balance %d, increment %d", c.StartingBalance, c.Increment)
	}
	if c.SpinTicks <= 0 || c.FPS <= 0 {
		return invalid("spin ticks %d, fps %d", c.SpinTicks, c.FPS)
	}
	if err := c.Tuning().Validate(); err != nil {
		return invalid("repeat: %v", err)
	}
	if c.FinishMargin < 0 || c.FinishMargin >= c.ScreenWidth {
		return invalid("finish margin %d on screen width %d", c.FinishMargin, c.ScreenWidth)
	}
	return nil
}

func (c *AppConfig) FinishLine() int {
	return c.ScreenWidth - c.FinishMargin
}

func (c *AppConfig) Tuning() input.Tuning {
	return input.Tuning{
		BaseInterval: c.RepeatBase,
		MinInterval:  c.RepeatMin,
		AccelRate:    c.RepeatAccel,
	}
}

// Session is the slice of the config the casino core needs.
func (c *AppConfig) Session() casino.Config {
	return casino.Config{
		StartingBalance: c.StartingBalance,
		Increment:       c.Increment,
		SpinTicks:       c.SpinTicks,
		HorseWeights:    append([]float64(nil), c.HorseWeights...),
		FinishLine:      c.FinishLine(),
		Repeat:          c.Tuning(),
	}
}
