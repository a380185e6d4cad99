package client

import (
	"github.com/kelseyhightower/envconfig"
)

// Options carries everything New needs. Credentials come from the caller;
// environment lookup happens only in OptionsFromEnv so that no operation
// ever reads process state on its own.
type Options struct {
	Organization string `envconfig:"VIDORA_ORGANIZATION"`
	AccessKey    string `envconfig:"VIDORA_ACCESS_KEY"`
	Secret       string `envconfig:"VIDORA_SECRET"`

	// Host overrides, mainly for self-hosted installations and tests.
	// Empty values fall back to the production hosts.
	APIHost       string `envconfig:"VIDORA_API_HOST"`
	AnalyticsHost string `envconfig:"VIDORA_ANALYTICS_HOST"`
}

// OptionsFromEnv resolves options from VIDORA_* environment variables.
func OptionsFromEnv() (Options, error) {
	opts := Options{}
	if err := envconfig.Process("", &opts); err != nil {
		return Options{}, err
	}
	return opts, nil
}
