package config

import (
	"strings"

	"github.com/spf13/viper"
)

// ==================== 配置结构 ====================

// Config 全局配置
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Upload     UploadConfig     `mapstructure:"upload"`
	SMTP       SMTPConfig       `mapstructure:"smtp"`
	Newsletter NewsletterConfig `mapstructure:"newsletter"`
}

// ServerConfig HTTP 服务配置
type ServerConfig struct {
	Port        string   `mapstructure:"port"`
	BaseURL     string   `mapstructure:"base_url"`     // 邮件里的绝对链接用
	CORSOrigins []string `mapstructure:"cors_origins"` // 空表示放行全部
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	DSN string `mapstructure:"dsn"`
}

// UploadConfig 文件上传配置
type UploadConfig struct {
	Dir        string `mapstructure:"dir"`         // 磁盘目录
	PublicPath string `mapstructure:"public_path"` // 对外路径前缀
}

// SMTPConfig 邮件发送配置
type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// NewsletterConfig 邮件任务配置
type NewsletterConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	CronSpec string `mapstructure:"cron_spec"` // 带秒位的 cron 表达式
}

// ==================== 加载 ====================

// Load 加载配置：环境变量优先，其次可选的 config.yaml
// 环境变量形如 SERVER_PORT、DATABASE_DSN、SMTP_HOST
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("database.dsn", "host=localhost user=market password=market dbname=ershou_market port=5432 sslmode=disable")
	v.SetDefault("upload.dir", "./uploads")
	v.SetDefault("upload.public_path", "/uploads")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("newsletter.enabled", true)
	// 每两天早上 9 点
	v.SetDefault("newsletter.cron_spec", "0 0 9 */2 * *")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	// 配置文件可选，不存在时只靠环境变量和默认值
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv 只对已知键生效，没有默认值的键必须显式绑定，
	// 否则 SMTP_HOST 这类环境变量会被静默丢弃
	for _, key := range []string{
		"server.cors_origins",
		"smtp.host",
		"smtp.username",
		"smtp.password",
		"smtp.from",
	} {
		_ = v.BindEnv(key)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
