package config

import (
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	ModeConsole = "console"
	ModeTUI     = "tui"

	defaultMode            = ModeConsole
	defaultPercentDecimals = 2
	defaultEVDecimals      = 4
	defaultLogDirName      = ".inbetween"
	defaultLogMaxSizeMB    = 10
)

// Config 计算器配置
type Config struct {
	UI      UIConfig      `yaml:"ui"`
	Display DisplayConfig `yaml:"display"`
	Game    GameConfig    `yaml:"game"`
	Log     LogConfig     `yaml:"log"`
}

// UIConfig 界面配置
type UIConfig struct {
	Mode  string `yaml:"mode"`  // console 或 tui
	Color *bool  `yaml:"color"` // nil 表示默认开启
}

// DisplayConfig 数值显示精度
type DisplayConfig struct {
	PercentDecimals int `yaml:"percent_decimals"`
	EVDecimals      int `yaml:"ev_decimals"`
}

// GameConfig 牌局交互配置
type GameConfig struct {
	StrictMenu  bool  `yaml:"strict_menu"`  // 拒绝无法识别的菜单命令
	ShowCounter *bool `yaml:"show_counter"` // 每局开始前显示记牌器
}

// LogConfig 调试日志配置
type LogConfig struct {
	Dir       string `yaml:"dir"`
	MaxSizeMB int    `yaml:"max_size_mb"`
}

// ColorEnabled reports whether styled output is wanted.
func (c *UIConfig) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}

// CounterEnabled reports whether the remaining-rank table is printed before each round.
func (c *GameConfig) CounterEnabled() bool {
	return c.ShowCounter == nil || *c.ShowCounter
}

// MaxSizeBytes 返回日志轮转阈值
func (c *LogConfig) MaxSizeBytes() int64 {
	return int64(c.MaxSizeMB) * 1024 * 1024
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	cfg.applyEnv()
	return &cfg, nil
}

// Default 返回默认配置
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.applyEnv()
	return cfg
}

// applyDefaults 设置默认值
func (c *Config) applyDefaults() {
	if c.UI.Mode != ModeTUI {
		c.UI.Mode = defaultMode
	}
	if c.Display.PercentDecimals <= 0 {
		c.Display.PercentDecimals = defaultPercentDecimals
	}
	if c.Display.EVDecimals <= 0 {
		c.Display.EVDecimals = defaultEVDecimals
	}
	if c.Log.Dir == "" {
		c.Log.Dir = defaultLogDir()
	}
	if c.Log.MaxSizeMB <= 0 {
		c.Log.MaxSizeMB = defaultLogMaxSizeMB
	}
}

// applyEnv 环境变量覆盖配置文件
func (c *Config) applyEnv() {
	if v := os.Getenv("INBETWEEN_UI_MODE"); v == ModeConsole || v == ModeTUI {
		c.UI.Mode = v
	}
	if v := os.Getenv("INBETWEEN_UI_COLOR"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.UI.Color = &b
		}
	}
	if v := os.Getenv("INBETWEEN_STRICT_MENU"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Game.StrictMenu = b
		}
	}
	if v := os.Getenv("INBETWEEN_LOG_DIR"); v != "" {
		c.Log.Dir = v
	}
}

func defaultLogDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultLogDirName
	}
	return filepath.Join(homeDir, defaultLogDirName)
}
