package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	BaseURL     string `env:"BASE_URL" envDefault:"http://localhost:5000"`
	ClientURL   string `env:"CLIENT_URL" envDefault:"http://localhost:3000"`
	DatabaseURL string `env:"DATABASE_URL"`

	JWT        JWT        `envPrefix:"JWT_"`
	SSLCommerz SSLCommerz `envPrefix:"SSLCOMMERZ_"`
	Checkout   Checkout   `envPrefix:"CHECKOUT_"`
}

type JWT struct {
	Secret string `env:"SECRET"`
}

type SSLCommerz struct {
	BaseAPIURL    string `env:"BASE_API_URL" envDefault:"https://sandbox.sslcommerz.com"`
	StoreID       string `env:"STORE_ID"`
	StorePassword string `env:"STORE_PASSWORD"`
}

// Checkout holds the placeholder shipping/customer fields the gateway init
// payload requires but the order draft does not carry.
type Checkout struct {
	ShippingMethod  string `env:"SHIPPING_METHOD" envDefault:"Courier"`
	ProductName     string `env:"PRODUCT_NAME" envDefault:"Computer."`
	ProductCategory string `env:"PRODUCT_CATEGORY" envDefault:"Electronic"`
	ProductProfile  string `env:"PRODUCT_PROFILE" envDefault:"general"`
	City            string `env:"CITY" envDefault:"Dhaka"`
	State           string `env:"STATE" envDefault:"Dhaka"`
	Country         string `env:"COUNTRY" envDefault:"Bangladesh"`
	Phone           string `env:"PHONE" envDefault:"01711111111"`
	ShipName        string `env:"SHIP_NAME" envDefault:"Customer Name"`
	ShipPostcode    string `env:"SHIP_POSTCODE" envDefault:"1000"`
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
	Port string `env:"HTTP_PORT" envDefault:"5000"`
}
