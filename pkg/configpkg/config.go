// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
//
// The values are read by viper from a config file or environement variables.
type Config struct {
	DBDriver             string        `mapstructure:"DB_DRIVER"`
	DBSource             string        `mapstructure:"DB_SOURCE"`
	ServerAddress        string        `mapstructure:"SERVER_ADDRESS"`
	TokenSymmetricKey    string        `mapstructure:"TOKEN_SYMMETRIC_KEY"`
	AccessTokenDuration  time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"`
	RefreshTokenDuration time.Duration `mapstructure:"REFRESH_TOKEN_DURATION"`
	Environement         string        `mapstructure:"GO_ENV"`

	// Yield and withdrawal policy.
	MonthlyYieldRate        string `mapstructure:"MONTHLY_YIELD_RATE"`
	LockPeriodDays          int    `mapstructure:"LOCK_PERIOD_DAYS"`
	WithdrawalWindowLastDay int    `mapstructure:"WITHDRAWAL_WINDOW_LAST_DAY"`

	// Deposits. AllowedDepositAmounts is a comma-separated list of the
	// enumerated amounts the platform accepts.
	AllowedDepositAmounts string        `mapstructure:"ALLOWED_DEPOSIT_AMOUNTS"`
	PixChargeTTL          time.Duration `mapstructure:"PIX_CHARGE_TTL"`
	PixKey                string        `mapstructure:"PIX_KEY"`
	PixMerchantName       string        `mapstructure:"PIX_MERCHANT_NAME"`
	PixMerchantCity       string        `mapstructure:"PIX_MERCHANT_CITY"`
}

// DepositAmounts returns the enumerated allowed deposit amounts.
func (c Config) DepositAmounts() []string {
	parts := strings.Split(c.AllowedDepositAmounts, ",")

	amounts := make([]string, 0, len(parts))

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			amounts = append(amounts, p)
		}
	}

	return amounts
}

// Load read configuration from file or environment variables.
func Load(path string) (Config, error) {
	var c Config

	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		return c, err
	}

	err = viper.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	return c, nil
}
