package config

import "fmt"

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Database struct {
	Driver      string `json:"driver" yaml:"driver"`
	Host        string `json:"host" yaml:"host"`
	Port        int    `json:"port" yaml:"port"`
	User        string `json:"user" yaml:"user"`
	Password    string `json:"password" yaml:"password"`
	Name        string `json:"name" yaml:"name"`
	Params      string `json:"params" yaml:"params"`
	AutoMigrate bool   `json:"auto_migrate" yaml:"auto_migrate"`
}

// Dsn builds the connection string for the configured driver.
// For sqlite Name is the file path (or ":memory:").
func (d *Database) Dsn() string {
	switch d.Driver {
	case DriverMySQL:
		params := d.Params
		if params == "" {
			params = "charset=utf8mb4&parseTime=True&loc=Local"
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s", d.User, d.Password, d.Host, d.Port, d.Name, params)
	case DriverPostgres:
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s", d.Host, d.Port, d.User, d.Password, d.Name)
		if d.Params != "" {
			dsn += " " + d.Params
		}
		return dsn
	default:
		if d.Params != "" {
			return d.Name + "?" + d.Params
		}
		return d.Name
	}
}
