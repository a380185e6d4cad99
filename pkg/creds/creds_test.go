package creds

import (
	"testing"
)

func TestStoreAndLoad(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	stored := &Credentials{
		Organization: "org1",
		AccessKey:    "ak",
		Secret:       "s3cr3t",
	}
	if err := Store(stored); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if *loaded != *stored {
		t.Errorf("expected %+v, got %+v", stored, loaded)
	}
}

func TestResolvePrefersEnvironment(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("VIDORA_ORGANIZATION", "from-env")
	t.Setenv("VIDORA_ACCESS_KEY", "")
	t.Setenv("VIDORA_SECRET", "")
	t.Setenv("VIDORA_API_HOST", "")
	t.Setenv("VIDORA_ANALYTICS_HOST", "")

	if err := Store(&Credentials{Organization: "from-file", AccessKey: "ak", Secret: "s3cr3t"}); err != nil {
		t.Fatal(err)
	}

	opts, err := Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if opts.Organization != "from-env" {
		t.Errorf("expected the environment to win, got %q", opts.Organization)
	}
	if opts.AccessKey != "ak" || opts.Secret != "s3cr3t" {
		t.Errorf("expected the file to fill the gaps, got %+v", opts)
	}
}
