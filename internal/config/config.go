package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	S3    S3Config
	Azure AzureConfig
	Local LocalConfig
}

// S3Config configures the S3-compatible engine. Explicit struct values win;
// Load fills the rest from the environment. The endpoint default targets AWS;
// point it at any S3-compatible service (MinIO, etc.) instead.
type S3Config struct {
	Region       string `envconfig:"AWS_REGION" default:"us-east-1"`
	AccessKey    string `envconfig:"AWS_ACCESS_KEY"`
	SecretKey    string `envconfig:"AWS_SECRET_KEY"`
	Bucket       string `envconfig:"S3_BUCKET_NAME"`
	Endpoint     string `envconfig:"S3_ENDPOINT"`
	UseSSL       bool   `envconfig:"S3_USE_SSL" default:"true"`
	CreateBucket bool   `envconfig:"S3_CREATE_BUCKET" default:"false"`
}

type AzureConfig struct {
	ConnectionString string `envconfig:"AZURE_STORAGE_CONNECTION_STRING"`
	Container        string `envconfig:"CONTAINER_NAME"`
}

type LocalConfig struct {
	Root string `envconfig:"UPLOAD_ROOT" default:"uploads"`
}

// Load resolves the configuration from the environment. Missing bucket or
// credential values are not an error here: each engine constructor checks the
// values it actually needs, so unused backends never block startup.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
