package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON file parsing.
// Durations are accepted as strings like "1h" or "30s".
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey   string   `json:"token_sign_key"`
		TokenDuration  Duration `json:"token_duration"`
		AuthTransport  string   `json:"auth_transport"`
		CookieName     string   `json:"cookie_name"`
		CookieSecure   bool     `json:"cookie_secure"`
		CookieSameSite string   `json:"cookie_samesite"`
		Version        string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		Mongo struct {
			URI                  string `json:"uri"`
			User                 string `json:"user"`
			Password             string `json:"password"`
			Host                 string `json:"host"`
			Database             string `json:"database"`
			UsersCollection      string `json:"users_collection"`
			QuestoesCollection   string `json:"questoes_collection"`
			ResultadosCollection string `json:"resultados_collection"`
			LogsCollection       string `json:"logs_collection"`
		} `json:"mongo,omitempty"`
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
			TokenSignKey:   jsonCfg.App.TokenSignKey,
			TokenDuration:  time.Duration(jsonCfg.App.TokenDuration),
			AuthTransport:  jsonCfg.App.AuthTransport,
			CookieName:     jsonCfg.App.CookieName,
			CookieSecure:   jsonCfg.App.CookieSecure,
			CookieSameSite: jsonCfg.App.CookieSameSite,
			Version:        jsonCfg.App.Version,
		},
		Storage: Storage{
			Mongo: Mongo{
				URI:                  jsonCfg.Storage.Mongo.URI,
				User:                 jsonCfg.Storage.Mongo.User,
				Password:             jsonCfg.Storage.Mongo.Password,
				Host:                 jsonCfg.Storage.Mongo.Host,
				Database:             jsonCfg.Storage.Mongo.Database,
				UsersCollection:      jsonCfg.Storage.Mongo.UsersCollection,
				QuestoesCollection:   jsonCfg.Storage.Mongo.QuestoesCollection,
				ResultadosCollection: jsonCfg.Storage.Mongo.ResultadosCollection,
				LogsCollection:       jsonCfg.Storage.Mongo.LogsCollection,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
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
