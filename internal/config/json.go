package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations.
type StructuredJSONConfig struct {
	App struct {
		Encoding      string   `json:"encoding"`
		ToastDuration Duration `json:"toast_duration"`
		InventoryPath string   `json:"inventory"`
		Batch         bool     `json:"batch"`
	} `json:"app,omitempty"`

	Adapter struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		AssignmentsPath string   `json:"assignments_path"`
		ConfigPath      string   `json:"config_path"`
	} `json:"adapter,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Log struct {
		FilePath string `json:"file"`
	} `json:"log,omitempty"`
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
			Encoding:      jsonCfg.App.Encoding,
			ToastDuration: time.Duration(jsonCfg.App.ToastDuration),
			InventoryPath: jsonCfg.App.InventoryPath,
			Batch:         jsonCfg.App.Batch,
		},
		Adapter: Adapter{
			HTTPAddress:     jsonCfg.Adapter.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Adapter.RequestTimeout),
			AssignmentsPath: jsonCfg.Adapter.AssignmentsPath,
			ConfigPath:      jsonCfg.Adapter.ConfigPath,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Log: Log{
			FilePath: jsonCfg.Log.FilePath,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as plain nanosecond numbers.
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
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
