package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration is a time.Duration that unmarshals from JSON strings in
// time.ParseDuration format (e.g. "30s", "168h").
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler for Duration.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("error parsing duration %q: %w", raw, err)
	}

	*d = Duration(parsed)
	return nil
}

// StructuredJSONConfig mirrors [StructuredConfig] for the JSON file source.
// Durations are accepted as strings ("30s", "168h").
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			URI      string `json:"uri"`
			Database string `json:"database"`
		} `json:"db,omitempty"`

		Images struct {
			Region         string `json:"region"`
			Bucket         string `json:"bucket"`
			Endpoint       string `json:"endpoint"`
			AccessKey      string `json:"access_key"`
			SecretKey      string `json:"secret_key"`
			PublicBaseURL  string `json:"public_base_url"`
			UploadFolder   string `json:"upload_folder"`
			MaxUploadBytes int64  `json:"max_upload_bytes"`
		} `json:"images,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
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
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
		},
		Storage: Storage{
			DB: DB{
				URI:      jsonCfg.Storage.DB.URI,
				Database: jsonCfg.Storage.DB.Database,
			},
			Images: Images{
				Region:         jsonCfg.Storage.Images.Region,
				Bucket:         jsonCfg.Storage.Images.Bucket,
				Endpoint:       jsonCfg.Storage.Images.Endpoint,
				AccessKey:      jsonCfg.Storage.Images.AccessKey,
				SecretKey:      jsonCfg.Storage.Images.SecretKey,
				PublicBaseURL:  jsonCfg.Storage.Images.PublicBaseURL,
				UploadFolder:   jsonCfg.Storage.Images.UploadFolder,
				MaxUploadBytes: jsonCfg.Storage.Images.MaxUploadBytes,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
	}

	return cfg, nil
}
