// MIT License
//
// Copyright (c) 2026 Aaron Campbell
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// Configuration holds the lights known from previous discoveries. The
// file is the only state kept between runs and only a successful
// discovery writes it.
type Configuration struct {
	ConfigurationFile string
	Lights            []Light
}

func defaultConfigurationFile() string {
	directory, err := os.UserConfigDir()
	if err != nil {
		return "elgato.control.json"
	}
	return filepath.Join(directory, "elgato.control.json")
}

// Load reads the persisted lights unless some are already present. A
// missing or unreadable file just means no lights are known yet.
func (configuration *Configuration) Load() {
	if len(configuration.Lights) > 0 {
		return
	}

	raw, err := os.ReadFile(configuration.ConfigurationFile)
	if err != nil {
		log.Debugf("⚙ No configuration loaded from %v: %v", configuration.ConfigurationFile, err)
		return
	}

	var lights []Light
	if err := json.Unmarshal(raw, &lights); err != nil {
		log.Warningf("⚙ Ignoring unreadable configuration %v: %v", configuration.ConfigurationFile, err)
		return
	}
	configuration.Lights = lights
}

// Save replaces the persisted light list wholesale. The new content is
// written to a temporary file and renamed into place so a concurrent
// reader never observes a half written configuration.
func (configuration *Configuration) Save(lights []Light) error {
	raw, err := json.MarshalIndent(lights, "", "\t")
	if err != nil {
		return err
	}

	directory := filepath.Dir(configuration.ConfigurationFile)
	if err := os.MkdirAll(directory, 0755); err != nil {
		return fmt.Errorf("could not create configuration directory %v: %w", directory, err)
	}

	file, err := os.CreateTemp(directory, "elgato.control.*.json")
	if err != nil {
		return fmt.Errorf("could not write configuration: %w", err)
	}
	if _, err := file.Write(raw); err != nil {
		file.Close()
		os.Remove(file.Name())
		return fmt.Errorf("could not write configuration: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(file.Name())
		return fmt.Errorf("could not write configuration: %w", err)
	}
	if err := os.Rename(file.Name(), configuration.ConfigurationFile); err != nil {
		os.Remove(file.Name())
		return fmt.Errorf("could not write configuration: %w", err)
	}

	configuration.Lights = lights
	log.Debugf("⚙ Configuration %v saved with %d lights", configuration.ConfigurationFile, len(lights))
	return nil
}

// LightByNumber returns the light at the given 1-based position, as
// shown by the list command.
func (configuration *Configuration) LightByNumber(number int) (Light, error) {
	if number < 1 || number > len(configuration.Lights) {
		return Light{}, fmt.Errorf("%w: light %d of %d known lights", errLightOutOfRange, number, len(configuration.Lights))
	}
	return configuration.Lights[number-1], nil
}
