// apiintegrations/jamfpro/config.go
// Description: This file contains functions to load the Jamf Pro client configuration from a
// JSON file or from environment variables.
package jamfpro

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/deploymenttheory/go-api-client-jamfpro/httpclient"
)

// Config bundles everything needed to build a Jamf Pro client: the authentication
// credentials, the target instance environment and the http client settings.
type Config struct {
	Auth        AuthConfig
	Environment EnvironmentConfig
	Client      httpclient.ClientConfig
}

// AuthConfig holds the client's authentication credentials. A username and password drive
// basic authentication; a client ID and secret drive OAuth2. When both pairs are supplied
// OAuth2 wins.
type AuthConfig struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

// EnvironmentConfig identifies the Jamf Pro instance the client targets.
type EnvironmentConfig struct {
	InstanceName       string `json:"instance_name"`
	OverrideBaseDomain string `json:"override_base_domain"`
}

// LoadConfigFromFile loads the full client configuration from a single flat JSON file.
// Credential and environment keys sit alongside the http client keys; the http client
// loader reads its own keys from the same file and applies its defaults.
func LoadConfigFromFile(configFilePath string) (*Config, error) {
	clientConfig, err := httpclient.LoadConfigFromFile(configFilePath)
	if err != nil {
		return nil, err
	}

	byteValue, err := os.ReadFile(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("could not read file: %v", err)
	}

	config := &Config{Client: *clientConfig}
	if err := json.Unmarshal(byteValue, &config.Auth); err != nil {
		return nil, fmt.Errorf("could not unmarshal JSON: %v", err)
	}
	if err := json.Unmarshal(byteValue, &config.Environment); err != nil {
		return nil, fmt.Errorf("could not unmarshal JSON: %v", err)
	}

	return config, nil
}

// LoadConfigFromEnv loads the full client configuration from environment variables, sourcing
// a .env file from the working directory first when one exists.
func LoadConfigFromEnv() (*Config, error) {
	clientConfig, err := httpclient.LoadConfigFromEnv()
	if err != nil {
		return nil, err
	}

	config := &Config{
		Auth: AuthConfig{
			Username:     os.Getenv("USERNAME"),
			Password:     os.Getenv("PASSWORD"),
			ClientID:     os.Getenv("CLIENT_ID"),
			ClientSecret: os.Getenv("CLIENT_SECRET"),
		},
		Environment: EnvironmentConfig{
			InstanceName:       os.Getenv("INSTANCE_NAME"),
			OverrideBaseDomain: os.Getenv("OVERRIDE_BASE_DOMAIN"),
		},
		Client: *clientConfig,
	}

	return config, nil
}
