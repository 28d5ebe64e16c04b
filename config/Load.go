package config

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Load reads a JSON encoded Config from the file at path. Fields which
// are absent from the file keep their default values. The loaded
// Config is validated before it is returned.
func Load(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "load: could not open config file")
	}
	defer file.Close()

	return Decode(file)
}

// Decode reads a JSON encoded Config from r, filling absent fields
// with defaults, and validates it.
func Decode(r io.Reader) (Config, error) {
	c := Default()

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return Config{}, errors.Wrap(err, "decode: could not decode config")
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Save writes c as indented JSON to the file at path
func Save(c Config, path string) error {
	data, err := json.MarshalIndent(c, "", "\t")
	if err != nil {
		return errors.Wrap(err, "save: could not encode config")
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "save: could not write config file")
	}
	return nil
}

// LoadList reads a JSON encoded ConfigList from the file at path and
// validates every Config it describes
func LoadList(path string) (ConfigList, error) {
	file, err := os.Open(path)
	if err != nil {
		return ConfigList{}, errors.Wrap(err,
			"load list: could not open config file")
	}
	defer file.Close()

	var list ConfigList
	dec := json.NewDecoder(file)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&list); err != nil {
		return ConfigList{}, errors.Wrap(err,
			"load list: could not decode config list")
	}

	if _, err := list.Configs(); err != nil {
		return ConfigList{}, err
	}
	return list, nil
}
