package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("加载配置失败: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("缺省端口应为 8080，实际 %s", cfg.Server.Port)
	}
	if cfg.Upload.PublicPath != "/uploads" {
		t.Errorf("缺省公开路径应为 /uploads，实际 %s", cfg.Upload.PublicPath)
	}
	if cfg.Newsletter.CronSpec != "0 0 9 */2 * *" {
		t.Errorf("缺省 cron 表达式不符: %s", cfg.Newsletter.CronSpec)
	}
	if !cfg.Newsletter.Enabled {
		t.Error("邮件任务缺省应启用")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_DSN", "host=db user=x dbname=y")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("加载配置失败: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("环境变量应覆盖端口，实际 %s", cfg.Server.Port)
	}
	if cfg.Database.DSN != "host=db user=x dbname=y" {
		t.Errorf("环境变量应覆盖 DSN，实际 %s", cfg.Database.DSN)
	}
}

func TestLoadEnvOnlyKeys(t *testing.T) {
	// 这些键没有默认值，只能靠环境变量配置
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_USERNAME", "mailer")
	t.Setenv("SMTP_PASSWORD", "secret")
	t.Setenv("SMTP_FROM", "shop@example.com")
	t.Setenv("SERVER_CORS_ORIGINS", "http://a.example.com,http://b.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("加载配置失败: %v", err)
	}
	if cfg.SMTP.Host != "smtp.example.com" {
		t.Errorf("SMTP_HOST 环境变量未生效，实际 %q", cfg.SMTP.Host)
	}
	if cfg.SMTP.Username != "mailer" {
		t.Errorf("SMTP_USERNAME 环境变量未生效，实际 %q", cfg.SMTP.Username)
	}
	if cfg.SMTP.Password != "secret" {
		t.Errorf("SMTP_PASSWORD 环境变量未生效，实际 %q", cfg.SMTP.Password)
	}
	if cfg.SMTP.From != "shop@example.com" {
		t.Errorf("SMTP_FROM 环境变量未生效，实际 %q", cfg.SMTP.From)
	}
	if len(cfg.Server.CORSOrigins) != 2 || cfg.Server.CORSOrigins[0] != "http://a.example.com" {
		t.Errorf("SERVER_CORS_ORIGINS 环境变量未生效，实际 %v", cfg.Server.CORSOrigins)
	}
}
