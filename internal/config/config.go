package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	BaseURL     string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	DatabaseURL string `env:"DATABASE_URL" envDefault:"digital-cards.db"`

	Paystack Paystack `envPrefix:"PAYSTACK_"`
	WhatsApp WhatsApp `envPrefix:"WHATSAPP_"`
}

type Paystack struct {
	BaseApiURL  string `env:"BASE_API_URL" envDefault:"https://api.paystack.co"`
	SecretKey   string `env:"SECRET_KEY"`
	PublicKey   string `env:"PUBLIC_KEY"`
	CallbackURL string `env:"CALLBACK_URL"`
	Currency    string `env:"CURRENCY" envDefault:"GHS"`
}

type WhatsApp struct {
	BusinessNumber string `env:"BUSINESS_NUMBER"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
