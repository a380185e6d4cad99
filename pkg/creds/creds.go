package creds

import (
	"github.com/vidora/cli/pkg/client"
	"github.com/vidora/cli/pkg/logging"
	"gopkg.in/yaml.v2"
	"io/ioutil"
	"os"
	"path/filepath"
)

const credentialsFile = "credentials.yml"

// Credentials is the on-disk shape of a stored key/secret set.
type Credentials struct {
	Organization string `yaml:"organization"`
	AccessKey    string `yaml:"access_key"`
	Secret       string `yaml:"secret"`
}

func storagePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".vidora", credentialsFile), nil
}

// Load reads the stored credentials, if any.
func Load() (*Credentials, error) {
	path, err := storagePath()
	if err != nil {
		return nil, err
	}
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	stored := Credentials{}
	if err := yaml.Unmarshal(b, &stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

// Store writes credentials to the user's config directory, readable only
// by the owner.
func Store(credentials *Credentials) error {
	path, err := storagePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	b, err := yaml.Marshal(credentials)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, b, 0600)
}

// Resolve builds client options from the environment, with the stored
// credentials file filling whatever the environment leaves empty.
func Resolve() (client.Options, error) {
	opts, err := client.OptionsFromEnv()
	if err != nil {
		return client.Options{}, err
	}
	if stored, err := Load(); err == nil {
		if opts.Organization == "" {
			opts.Organization = stored.Organization
		}
		if opts.AccessKey == "" {
			opts.AccessKey = stored.AccessKey
		}
		if opts.Secret == "" {
			opts.Secret = stored.Secret
		}
	}
	return opts, nil
}

// GetClient builds a client from the resolved options, or exits.
func GetClient() *client.Client {
	opts, err := Resolve()
	if err != nil {
		logging.Log.Fatal(err)
	}
	c, err := client.New(opts)
	if err != nil {
		logging.Log.Fatal(err)
	}
	return c
}
