package config

type Log struct {
	Level string `json:"level" yaml:"level"`
	// Filename enables a rotated log file next to stdout. MaxSize is in megabytes, MaxAge in days.
	Filename   string `json:"filename" yaml:"filename"`
	MaxSize    int    `json:"max_size" yaml:"max_size"`
	MaxBackups int    `json:"max_backups" yaml:"max_backups"`
	MaxAge     int    `json:"max_age" yaml:"max_age"`
}
