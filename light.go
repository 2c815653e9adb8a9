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
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// defaultPort is the port the lights listen on when none is given.
const defaultPort = 9123

const requestTimeout = 3 * time.Second

// httpClient is shared by all requests to the lights. The short timeout
// keeps an unreachable light from hanging a whole batch.
var httpClient = &http.Client{Timeout: requestTimeout}

// Light represents one known key light. Location is always a fully
// qualified host:port pair and identifies the light; the name is only a
// label and may change between discoveries.
type Light struct {
	Name     string `json:"name"`
	Location string `json:"light"`
}

// LightState is the state of one light as spoken on the wire. Pointer
// fields make an update a partial patch: only fields that are set are
// sent, everything else keeps its current value on the device.
type LightState struct {
	On          *int `json:"on,omitempty"`
	Brightness  *int `json:"brightness,omitempty"`
	Temperature *int `json:"temperature,omitempty"`
}

// lightsMessage is the envelope the lights use on /elgato/lights. Every
// physical device reports exactly one logical light.
type lightsMessage struct {
	NumberOfLights int          `json:"numberOfLights"`
	Lights         []LightState `json:"lights"`
}

// FriendlyStatus is the light state in human units.
type FriendlyStatus struct {
	On          string `json:"on"`
	Brightness  string `json:"brightness"`
	Temperature string `json:"temperature"`
}

func (light *Light) url(path string) string {
	return fmt.Sprintf("http://%s%s", light.Location, path)
}

// Status fetches the current state of the light.
func (light *Light) Status() (LightState, error) {
	response, err := httpClient.Get(light.url("/elgato/lights"))
	if err != nil {
		return LightState{}, fmt.Errorf("light %s is unreachable: %w", light.Location, err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		return LightState{}, fmt.Errorf("light %s returned status %s", light.Location, response.Status)
	}

	var message lightsMessage
	if err := json.NewDecoder(response.Body).Decode(&message); err != nil {
		return LightState{}, fmt.Errorf("light %s sent an invalid response: %v", light.Location, err)
	}
	if len(message.Lights) == 0 {
		return LightState{}, fmt.Errorf("light %s reported no lights", light.Location)
	}
	return message.Lights[0], nil
}

// Info fetches the accessory information of the light (product name,
// firmware, wifi details, ...). The content is passed through untouched.
func (light *Light) Info() (map[string]interface{}, error) {
	response, err := httpClient.Get(light.url("/elgato/accessory-info"))
	if err != nil {
		return nil, fmt.Errorf("light %s is unreachable: %w", light.Location, err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("light %s returned status %s", light.Location, response.Status)
	}

	var info map[string]interface{}
	if err := json.NewDecoder(response.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("light %s sent an invalid response: %v", light.Location, err)
	}
	return info, nil
}

// applyState sends a partial state update to the light. Values must
// already be in native units. The native temperature is clamped to the
// documented device range since Kelvin conversion can land one step
// outside it at the boundaries.
func (light *Light) applyState(state LightState) error {
	if state.On == nil && state.Brightness == nil && state.Temperature == nil {
		return errNothingToSet
	}
	if state.Brightness != nil && !validBrightness(*state.Brightness) {
		return fmt.Errorf("%w: invalid brightness value %d (valid is whole number %d-%d)", errInvalidInput, *state.Brightness, minBrightness, maxBrightness)
	}
	if state.Temperature != nil {
		temperature := clamp(*state.Temperature, minTemperature, maxTemperature)
		if temperature != *state.Temperature {
			log.Debugf("💡 Light %s - Adjusted temperature %d to device range %d-%d", light.Name, *state.Temperature, minTemperature, maxTemperature)
		}
		state.Temperature = &temperature
	}

	body, err := json.Marshal(lightsMessage{NumberOfLights: 1, Lights: []LightState{state}})
	if err != nil {
		return err
	}

	request, err := http.NewRequest(http.MethodPut, light.url("/elgato/lights"), bytes.NewReader(body))
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("light %s is unreachable: %w", light.Location, err)
	}
	defer response.Body.Close()
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return fmt.Errorf("light %s rejected the update: %s", light.Location, response.Status)
	}
	return nil
}

// Toggle flips the light between on and off.
func (light *Light) Toggle() error {
	state, err := light.Status()
	if err != nil {
		return err
	}
	on := 0
	if state.On == nil || *state.On == 0 {
		on = 1
	}
	return light.applyState(LightState{On: &on})
}

// SetPower turns the light on or off without touching anything else.
func (light *Light) SetPower(on bool) error {
	value := 0
	if on {
		value = 1
	}
	return light.applyState(LightState{On: &value})
}

// AdjustBrightness shifts the current brightness by delta percent,
// clamped to the valid range.
func (light *Light) AdjustBrightness(delta int) error {
	state, err := light.Status()
	if err != nil {
		return err
	}
	if state.Brightness == nil {
		return fmt.Errorf("light %s did not report a brightness", light.Location)
	}
	brightness := clamp(*state.Brightness+delta, minBrightness, maxBrightness)
	return light.applyState(LightState{Brightness: &brightness})
}

// AdjustTemperature shifts the current temperature by delta in native
// units, clamped to the valid range. Deltas stay native on purpose: a
// round trip through Kelvin would compound the lossy display snapping.
func (light *Light) AdjustTemperature(delta int) error {
	state, err := light.Status()
	if err != nil {
		return err
	}
	if state.Temperature == nil {
		return fmt.Errorf("light %s did not report a temperature", light.Location)
	}
	temperature := clamp(*state.Temperature+delta, minTemperature, maxTemperature)
	return light.applyState(LightState{Temperature: &temperature})
}

// CurrentFriendlyStatus returns the live state of the light in human
// units: on/off as a word, brightness as a percentage and the color
// temperature in Kelvin.
func (light *Light) CurrentFriendlyStatus() (FriendlyStatus, error) {
	state, err := light.Status()
	if err != nil {
		return FriendlyStatus{}, err
	}

	status := FriendlyStatus{On: "off"}
	if state.On != nil && *state.On != 0 {
		status.On = "on"
	}
	if state.Brightness != nil {
		status.Brightness = fmt.Sprintf("%d%%", *state.Brightness)
	}
	if state.Temperature != nil {
		status.Temperature = fmt.Sprintf("%dK", temperatureToKelvin(*state.Temperature))
	}
	return status, nil
}
