package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly duration parsing for the optional config file.
type StructuredJSONConfig struct {
	App struct {
		StateNamespace string `json:"state_namespace"`
		Version        string `json:"version"`
	} `json:"app,omitempty"`

	Adapter struct {
		DeltaEndpoint     string   `json:"delta_endpoint"`
		RequestTimeout    Duration `json:"request_timeout"`
		BearerToken       string   `json:"bearer_token"`
		OAuthTokenURL     string   `json:"oauth_token_url"`
		OAuthClientID     string   `json:"oauth_client_id"`
		OAuthClientSecret string   `json:"oauth_client_secret"`
		OAuthScopes       []string `json:"oauth_scopes"`
	} `json:"adapter,omitempty"`

	Storage struct {
		State struct {
			Backend    string `json:"backend"`
			Path       string `json:"path"`
			Encrypt    bool   `json:"encrypt"`
			Passphrase string `json:"passphrase"`
		} `json:"state,omitempty"`
	} `json:"storage,omitempty"`

	Sync struct {
		WindowPastMonths   int    `json:"window_past_months"`
		WindowFutureMonths int    `json:"window_future_months"`
		MaxPages           int    `json:"max_pages"`
		SelectFields       string `json:"select_fields"`
	} `json:"sync,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			StateNamespace: jsonCfg.App.StateNamespace,
			Version:        jsonCfg.App.Version,
		},
		Adapter: Adapter{
			DeltaEndpoint:     jsonCfg.Adapter.DeltaEndpoint,
			RequestTimeout:    time.Duration(jsonCfg.Adapter.RequestTimeout),
			BearerToken:       jsonCfg.Adapter.BearerToken,
			OAuthTokenURL:     jsonCfg.Adapter.OAuthTokenURL,
			OAuthClientID:     jsonCfg.Adapter.OAuthClientID,
			OAuthClientSecret: jsonCfg.Adapter.OAuthClientSecret,
			OAuthScopes:       jsonCfg.Adapter.OAuthScopes,
		},
		Storage: Storage{
			State: State{
				Backend:    jsonCfg.Storage.State.Backend,
				Path:       jsonCfg.Storage.State.Path,
				Encrypt:    jsonCfg.Storage.State.Encrypt,
				Passphrase: jsonCfg.Storage.State.Passphrase,
			},
		},
		Sync: Sync{
			WindowPastMonths:   jsonCfg.Sync.WindowPastMonths,
			WindowFutureMonths: jsonCfg.Sync.WindowFutureMonths,
			MaxPages:           jsonCfg.Sync.MaxPages,
			SelectFields:       jsonCfg.Sync.SelectFields,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Workers:      Workers{SyncInterval: time.Duration(jsonCfg.Workers.SyncInterval)},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
