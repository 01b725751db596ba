package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Addr     string   `koanf:"addr"`
	Frontend Frontend `koanf:"frontend"`
	Demo     Demo     `koanf:"demo"`
	Defaults Defaults `koanf:"defaults"`
}

type Frontend struct {
	Enabled bool `koanf:"enabled"`
}

// Demo controls seeding of sample data into newly created sessions.
type Demo struct {
	Seed bool `koanf:"seed"`
}

// Defaults are the initial per-session settings values.
type Defaults struct {
	WarningThreshold  int    `koanf:"warningthreshold"`
	CriticalThreshold int    `koanf:"criticalthreshold"`
	CurrencyFormat    string `koanf:"currencyformat"`
	DateFormat        string `koanf:"dateformat"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Addr: ":8181",
		Frontend: Frontend{
			Enabled: true,
		},
		Demo: Demo{
			Seed: true,
		},
		Defaults: Defaults{
			WarningThreshold:  75,
			CriticalThreshold: 90,
			CurrencyFormat:    "USD ($)",
			DateFormat:        "MM/DD/YYYY",
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "BUDGETRACK_",
		TransformFunc: func(k, v string) (string, any) {
			// Transform the key.
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "BUDGETRACK_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
