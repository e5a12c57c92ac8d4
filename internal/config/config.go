package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	BaseUrl               string        `yaml:"base_url"` // public origin used when building media URLs
	AllowedOrigins        []string      `yaml:"allowed_origins"`
	MediaPath             string        `yaml:"media_path"`
	MaxAttachmentBytes    int64         `yaml:"max_attachment_bytes"`
	AllowedImageMimeTypes []string      `yaml:"allowed_image_mime_types"`
	UploadUrlTTLSec       int64         `yaml:"upload_url_ttl_sec"`
	LogLevel              string        `yaml:"log_level"`
	LogJson               bool          `yaml:"log_json"`
}

type Private struct {
	Pg              Pg     `yaml:"pg"`
	JwtKey          string `yaml:"jwt_key"`
	MediaSigningKey string `yaml:"media_signing_key"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	cfg.validate()
	return cfg
}

func (c *Config) UploadUrlTTL() time.Duration {
	return time.Duration(c.Public.UploadUrlTTLSec) * time.Second
}

func (c *Config) validate() {
	if c.Private.JwtKey == "" {
		panic("jwt_key must be set")
	}
	if c.Private.MediaSigningKey == "" {
		panic("media_signing_key must be set")
	}
	if c.Public.MaxAttachmentBytes <= 0 {
		panic("max_attachment_bytes must be positive")
	}
	if c.Public.UploadUrlTTLSec <= 0 {
		panic("upload_url_ttl_sec must be positive")
	}
}
