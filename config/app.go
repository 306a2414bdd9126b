package config

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
}

type Auth struct {
	// BcryptCost is passed to bcrypt.GenerateFromPassword.
	BcryptCost int `json:"bcrypt_cost" yaml:"bcrypt_cost"`
}

// Seed lists the global categories created by the seed command.
type Seed struct {
	Categories []SeedCategory `json:"categories" yaml:"categories"`
}

type SeedCategory struct {
	Name  string `json:"name" yaml:"name"`
	Color string `json:"color" yaml:"color"`
}
