package serializers

import (
	"errors"
	"testing"
	"time"
)

func TestRegistryClientConfig_NewClient(t *testing.T) {
	cfg := &RegistryClientConfig{
		URL:      `http://localhost:8081`,
		Username: `user`,
		Password: `secret`,
		Timeout:  time.Second,
	}

	client, err := cfg.NewClient()
	if err != nil {
		t.Fatal(err)
	}

	if client == nil {
		t.Fatal(`need a client`)
	}
}

func TestRegistryClientConfig_NewClientWithoutURL(t *testing.T) {
	_, err := new(RegistryClientConfig).NewClient()
	var invalid *InvalidConfigError
	if !errors.As(err, &invalid) {
		t.Errorf(`need InvalidConfigError, have %v`, err)
	}
}
