package config

import "time"

type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
	// token 有效期 (小时)
	ExpireHours     int `json:"expire_hours" yaml:"expire_hours"`
	RememberHours   int `json:"remember_hours" yaml:"remember_hours"`
	ActivationHours int `json:"activation_hours" yaml:"activation_hours"`
}

func (j *Jwt) applyDefaults() {
	if j.ExpireHours == 0 {
		j.ExpireHours = 2
	}
	if j.RememberHours == 0 {
		j.RememberHours = 48
	}
	if j.ActivationHours == 0 {
		j.ActivationHours = 1
	}
}

func (j *Jwt) Expire(remember bool) time.Duration {
	if remember {
		return time.Duration(j.RememberHours) * time.Hour
	}
	return time.Duration(j.ExpireHours) * time.Hour
}

func (j *Jwt) ActivationExpire() time.Duration {
	return time.Duration(j.ActivationHours) * time.Hour
}
