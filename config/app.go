package config

const DefaultAvatar = "https://www.redditstatic.com/avatars/avatar_default_02_0079D3.png"

type App struct {
	Env           string `json:"env" yaml:"env"`
	Debug         bool   `json:"debug" yaml:"debug"`
	DefaultAvatar string `json:"default_avatar" yaml:"default_avatar"`
}
