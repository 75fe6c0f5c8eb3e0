package config

type ServiceConfig struct {
	Name                string         `yaml:"name"`
	Environment         string         `yaml:"environment"`
	Version             string         `yaml:"version"`
	ClientURL           string         `yaml:"client_url"`
	StripeSecretKey     string         `yaml:"stripe_secret_key"`
	StripeWebhookSecret string         `yaml:"stripe_webhook_secret"`
	Supabase            SupabaseConfig `yaml:"supabase"`
}

type SupabaseConfig struct {
	ProjectURL     string `yaml:"project_url"`
	APIKey         string `yaml:"api_key"`
	ServiceRoleKey string `yaml:"service_role_key"`
	JWTSecret      string `yaml:"jwt_secret"`
}
