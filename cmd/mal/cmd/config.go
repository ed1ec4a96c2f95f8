// This file is part of malgo.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Config is the optional --config file format: a list of prelude files to
// load-file after bootstrap, and a history file path. Line-editing
// history itself is out of scope here; the path is accepted and stored so
// a future line-editing layer has somewhere to write.
type Config struct {
	Preload     []string `yaml:"preload"`
	HistoryFile string   `yaml:"historyFile"`
}

// loadConfig reads and parses path. An empty path is not an error: it
// returns a zero-value Config.
func loadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
