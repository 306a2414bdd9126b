package config

import "time"

type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
	// AccessTTL and RefreshTTL are in seconds.
	AccessTTL  int64 `json:"access_ttl" yaml:"access_ttl"`
	RefreshTTL int64 `json:"refresh_ttl" yaml:"refresh_ttl"`
}

func (j *Jwt) AccessExpire() time.Duration {
	return time.Duration(j.AccessTTL) * time.Second
}

func (j *Jwt) RefreshExpire() time.Duration {
	return time.Duration(j.RefreshTTL) * time.Second
}
