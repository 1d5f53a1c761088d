// Package config loads the blackjack tool configuration shared by the
// dealer and player commands. Flags override anything set here.
package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the blackjack configuration.
type Config struct {
	DealerName    string `yaml:"dealer_name" json:"dealer_name"`
	TCPPort       int    `yaml:"tcp_port" json:"tcp_port"`
	OfferPort     int    `yaml:"offer_port" json:"offer_port"`
	OfferInterval string `yaml:"offer_interval" json:"offer_interval"`
	BroadcastAddr string `yaml:"broadcast_addr" json:"broadcast_addr"`
	APIAddr       string `yaml:"api_addr" json:"api_addr"`

	PlayerName string `yaml:"player_name" json:"player_name"`
	Rounds     int    `yaml:"rounds" json:"rounds"`

	OutputFormat string `yaml:"output_format" json:"output_format"`
	StatsURL     string `yaml:"stats_url" json:"stats_url"`
}

// DefaultPath returns the default config file path: ~/.blackjack/config.yaml
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".blackjack", "config.yaml")
	}
	return filepath.Join(home, ".blackjack", "config.yaml")
}

// Load reads the configuration from the given YAML file path.
// If the file does not exist, it returns a default Config with no error.
func Load(path string) (*Config, error) {
	cfg := &Config{
		DealerName:    "Bossi",
		TCPPort:       2005,
		OfferPort:     13122,
		OfferInterval: "1s",
		APIAddr:       ":8080",
		PlayerName:    "Player",
		Rounds:        1,
		OutputFormat:  "table",
		StatsURL:      "http://localhost:8080",
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Interval returns the parsed offer interval.
func (c *Config) Interval() (time.Duration, error) {
	return time.ParseDuration(c.OfferInterval)
}

// Validate checks the configuration for values the protocol cannot carry.
func (c *Config) Validate() error {
	if c.TCPPort < 0 || c.TCPPort > 65535 {
		return fmt.Errorf("config: tcp_port %d out of range", c.TCPPort)
	}
	if c.OfferPort < 1 || c.OfferPort > 65535 {
		return fmt.Errorf("config: offer_port %d out of range", c.OfferPort)
	}
	if c.Rounds < 0 || c.Rounds > 255 {
		return fmt.Errorf("config: rounds %d out of range, the wire carries one byte", c.Rounds)
	}
	if d, err := c.Interval(); err != nil {
		return fmt.Errorf("config: offer_interval: %w", err)
	} else if d <= 0 {
		return fmt.Errorf("config: offer_interval %s must be positive", c.OfferInterval)
	}
	if c.BroadcastAddr != "" && net.ParseIP(c.BroadcastAddr) == nil {
		return fmt.Errorf("config: broadcast_addr %q is not an IP address", c.BroadcastAddr)
	}
	return nil
}

// Broadcast returns the parsed broadcast address, nil when unset. The
// announcer falls back to the limited broadcast address for nil.
func (c *Config) Broadcast() net.IP {
	if c.BroadcastAddr == "" {
		return nil
	}
	return net.ParseIP(c.BroadcastAddr)
}
