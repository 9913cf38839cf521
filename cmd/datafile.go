package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"gopkg.in/yaml.v3"
)

// readDataFile loads the body of a create or update call. It runs before any
// call is made, so a bad path never reaches the network. YAML files are
// converted to JSON.
func readDataFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Errorf("data file %s does not exist or is not readable", path)
	}
	if info.IsDir() {
		return nil, errors.Errorf("data file %s is a directory", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read data file %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var doc interface{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrapf(err, "could not parse data file %s", path)
		}
		data, err = json.Marshal(doc)
		if err != nil {
			return nil, errors.Wrapf(err, "could not convert data file %s to JSON", path)
		}
	}

	if !gjson.ValidBytes(data) {
		return nil, errors.Errorf("data file %s is not valid JSON", path)
	}
	return data, nil
}

// withName overrides the top-level name field of body when name is set.
func withName(body []byte, name string) ([]byte, error) {
	if name == "" {
		return body, nil
	}
	out, err := sjson.SetBytes(body, "name", name)
	if err != nil {
		return nil, errors.Wrap(err, "could not set name")
	}
	return out, nil
}
