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

	log "github.com/sirupsen/logrus"
)

// Step sizes of the brighter/dimmer and warmer/cooler commands. The
// temperature step is in native units.
const brightnessStep = 5
const temperatureStep = 5

// forEachLight applies the operation to every resolved light. One
// failing light does not stop the others; every failure is reported and
// counted.
func forEachLight(lights []Light, operation func(*Light) error) int {
	failures := 0
	for i := range lights {
		light := &lights[i]
		if err := operation(light); err != nil {
			log.Errorf("💡 Light %v - %v", light.Name, err)
			failures++
		}
	}
	return failures
}

func commandFind(discovery *Discovery) error {
	_, err := discovery.Run(true)
	return err
}

func commandList(lights []Light) {
	for index, light := range lights {
		fmt.Printf("[%d] %v (%v)\n", index+1, light.Name, light.Location)
	}
}

func commandStatus(lights []Light) int {
	return forEachLight(lights, func(light *Light) error {
		status, err := light.CurrentFriendlyStatus()
		if err != nil {
			return err
		}
		raw, err := json.MarshalIndent(status, "", "    ")
		if err != nil {
			return err
		}
		fmt.Printf("Status for %v:\n%s\n", light.Name, raw)
		return nil
	})
}

func commandInfo(lights []Light) int {
	return forEachLight(lights, func(light *Light) error {
		info, err := light.Info()
		if err != nil {
			return err
		}
		raw, err := json.MarshalIndent(info, "", "    ")
		if err != nil {
			return err
		}
		fmt.Printf("Info for %v:\n%s\n", light.Name, raw)
		return nil
	})
}

// commandSet validates the given values once, then applies the same
// partial state to every light. A bad value is a usage error and aborts
// before any light is contacted.
func commandSet(lights []Light, on string, brightness string, temperature string) (int, error) {
	var state LightState

	if on != "" {
		value := 0
		if onOffToBool(on) {
			value = 1
		}
		state.On = &value
	}
	if brightness != "" {
		value, err := brightnessFromString(brightness)
		if err != nil {
			return 0, err
		}
		if !validBrightness(value) {
			return 0, fmt.Errorf("%w: invalid brightness value %d (valid is whole number %d-%d)", errInvalidInput, value, minBrightness, maxBrightness)
		}
		state.Brightness = &value
	}
	if temperature != "" {
		value, err := temperatureFromString(temperature)
		if err != nil {
			return 0, err
		}
		state.Temperature = &value
	}

	if state.On == nil && state.Brightness == nil && state.Temperature == nil {
		return 0, errNothingToSet
	}

	return forEachLight(lights, func(light *Light) error {
		return light.applyState(state)
	}), nil
}
