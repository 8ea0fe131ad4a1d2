package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 应用配置
type Config struct {
	Server ServerConfig `yaml:"server"`
	Redis  RedisConfig  `yaml:"redis"`
	Store  StoreConfig  `yaml:"store"`
	Bot    BotConfig    `yaml:"bot"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port int    `yaml:"port"`
	Name string `yaml:"name"`
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// StoreConfig 会话存储配置
type StoreConfig struct {
	Driver string `yaml:"driver"` // memory, redis
}

// BotConfig 机器人配置
type BotConfig struct {
	Name                 string `yaml:"name"`                 // 机器人显示名称
	LookupTimeoutSeconds int    `yaml:"lookupTimeoutSeconds"` // 外部查询超时（秒）
}

// LogConfig 日志配置
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// LoadConfig 加载配置文件
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	if cfg.Bot.Name == "" {
		cfg.Bot.Name = "FreshBot"
	}
	if cfg.Bot.LookupTimeoutSeconds <= 0 {
		cfg.Bot.LookupTimeoutSeconds = 3
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = "memory"
	}

	return &cfg, nil
}
