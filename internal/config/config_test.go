package config

import (
	"strings"
	"testing"
	"time"
)

// clearEnv unsets every variable Load consults so tests see pure defaults.
func clearEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		"PORT", "READ_TIMEOUT", "READ_HEADER_TIMEOUT", "WRITE_TIMEOUT",
		"IDLE_TIMEOUT", "MAX_HEADER_BYTES", "GIN_MODE",
		"LOG_LEVEL", "LOG_PRETTY", "SWAGGER_ENABLED", "API_BASE_PATH",
		"DB_PATH",
		"SMTP_HOST", "SMTP_PORT", "EMAIL_USER", "EMAIL_PASS", "ADMIN_EMAIL",
		"COMPANY_NAME", "CONTACT_PHONE", "CONTACT_EMAIL", "CONTACT_OFFICE",
		"CORS_ALLOWED_ORIGINS", "ENABLE_HSTS", "HSTS_MAX_AGE",
		"OTEL_ENABLED", "OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_EXPORTER_OTLP_INSECURE",
		"OTEL_SERVICE_NAME", "OTEL_TRACES_SAMPLER_ARG",
	}
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" || cfg.GinMode != "release" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected server defaults: %+v", cfg)
	}
	if cfg.APIBasePath != "/api" {
		t.Fatalf("APIBasePath = %q; want /api", cfg.APIBasePath)
	}
	if cfg.DBPath != "contacts.db" {
		t.Fatalf("DBPath = %q; want contacts.db", cfg.DBPath)
	}
	if cfg.ReadTimeout != 15*time.Second || cfg.IdleTimeout != 60*time.Second {
		t.Fatalf("unexpected timeout defaults: %+v", cfg)
	}
}

func TestLoad_MailDefaults_DisabledWithoutCredentials(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	m := cfg.Mail
	if m.Enabled() {
		t.Fatalf("mail enabled without credentials")
	}
	if m.SMTPHost != "smtp.gmail.com" || m.SMTPPort != 587 {
		t.Fatalf("unexpected SMTP defaults: %+v", m)
	}
	if m.CompanyName != "GIG Insurance Agency" ||
		m.ContactPhone != "+254 724 280585" ||
		m.ContactEmail != "info@giginsuranceagency.net" ||
		m.ContactOffice != "Katani Road, Syokimau" {
		t.Fatalf("unexpected contact detail defaults: %+v", m)
	}
}

func TestLoad_AdminEmailFallsBackToUser(t *testing.T) {
	clearEnv(t)
	t.Setenv("EMAIL_USER", "sender@example.com")
	t.Setenv("EMAIL_PASS", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Mail.Enabled() {
		t.Fatalf("expected enabled mail")
	}
	if cfg.Mail.AdminEmail != "sender@example.com" {
		t.Fatalf("AdminEmail = %q; want fallback to EMAIL_USER", cfg.Mail.AdminEmail)
	}

	t.Setenv("ADMIN_EMAIL", "alerts@example.com")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Mail.AdminEmail != "alerts@example.com" {
		t.Fatalf("AdminEmail = %q; want explicit override", cfg.Mail.AdminEmail)
	}
}

func TestLoad_Normalization(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "WARNING")
	t.Setenv("GIN_MODE", "bogus")
	t.Setenv("API_BASE_PATH", "api/v2/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("LogLevel = %q; want warn", cfg.LogLevel)
	}
	if cfg.GinMode != "release" {
		t.Fatalf("GinMode = %q; want release fallback", cfg.GinMode)
	}
	if cfg.APIBasePath != "/api/v2" {
		t.Fatalf("APIBasePath = %q; want /api/v2", cfg.APIBasePath)
	}
}

func TestLoad_ValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"bad log level", map[string]string{"LOG_LEVEL": "verbose"}, "LOG_LEVEL"},
		{"bad smtp port", map[string]string{"SMTP_PORT": "70000"}, "SMTP_PORT"},
		{"bad sample ratio", map[string]string{"OTEL_TRACES_SAMPLER_ARG": "1.5"}, "OTEL_TRACES_SAMPLER_ARG"},
		{"negative timeout", map[string]string{"READ_TIMEOUT": "-1s"}, "timeouts"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error mentioning %q, got %v", tc.want, err)
			}
		})
	}
}

func TestSplitCSV(t *testing.T) {
	got := splitCSV(" https://a.example , ,https://b.example ")
	if len(got) != 2 || got[0] != "https://a.example" || got[1] != "https://b.example" {
		t.Fatalf("splitCSV = %v", got)
	}
	if splitCSV("") != nil {
		t.Fatalf("expected nil for empty input")
	}
}

func TestGetbool_Variants(t *testing.T) {
	t.Setenv("FLAG", "YES")
	if !getbool("FLAG", false) {
		t.Fatalf("YES should parse true")
	}
	t.Setenv("FLAG", "off")
	if getbool("FLAG", true) {
		t.Fatalf("off should parse false")
	}
	t.Setenv("FLAG", "maybe")
	if !getbool("FLAG", true) {
		t.Fatalf("unparseable should fall back to default")
	}
}
