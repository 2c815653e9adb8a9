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
	"fmt"
	"math"
	"strconv"
	"strings"
)

// The lights store color temperature in their own unit, roughly
// 1,000,000 divided by the temperature in Kelvin.
const (
	minTemperature = 143
	maxTemperature = 344

	minKelvin  = 2900
	maxKelvin  = 7000
	kelvinStep = 50

	minBrightness = 3
	maxBrightness = 100
)

// kelvinToTemperature converts a color temperature in Kelvin to the
// native value used by the lights.
func kelvinToTemperature(kelvin int) (int, error) {
	if kelvin < minKelvin || kelvin > maxKelvin || kelvin%kelvinStep != 0 {
		return 0, fmt.Errorf("%w: invalid temperature value %d (valid is %d-%dk in increments of %d)", errInvalidInput, kelvin, minKelvin, maxKelvin, kelvinStep)
	}
	return int(math.Round(1000000 / float64(kelvin))), nil
}

// temperatureToKelvin converts a native temperature value to Kelvin for
// display, snapped to the nearest 50K. This is not an exact inverse of
// kelvinToTemperature.
func temperatureToKelvin(temperature int) int {
	return kelvinStep * int(math.Round(1000000/float64(temperature)/kelvinStep))
}

// brightnessFromString parses a brightness given on the command line,
// with or without a trailing percent sign.
func brightnessFromString(value string) (int, error) {
	brightness, err := strconv.Atoi(strings.TrimSuffix(value, "%"))
	if err != nil {
		return 0, fmt.Errorf("%w: invalid brightness value %q (valid is whole number %d-%d)", errInvalidInput, value, minBrightness, maxBrightness)
	}
	return brightness, nil
}

func validBrightness(brightness int) bool {
	return brightness >= minBrightness && brightness <= maxBrightness
}

// temperatureFromString parses a temperature given on the command line
// into a native value. A trailing "k"/"K" or any parsed value of 2900
// and above is read as Kelvin and converted; everything else is taken
// as a raw native value and checked against the native range.
func temperatureFromString(value string) (int, error) {
	number := value
	kelvin := false
	if strings.HasSuffix(strings.ToLower(number), "k") {
		number = number[:len(number)-1]
		kelvin = true
	}

	temperature, err := strconv.Atoi(number)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid temperature value %q (valid is %d-%dk in increments of %d, or %d-%d)", errInvalidInput, value, minKelvin, maxKelvin, kelvinStep, minTemperature, maxTemperature)
	}

	if kelvin || temperature >= minKelvin {
		return kelvinToTemperature(temperature)
	}

	if temperature < minTemperature || temperature > maxTemperature {
		return 0, fmt.Errorf("%w: invalid temperature value %d (valid is %d-%dk in increments of %d, or %d-%d)", errInvalidInput, temperature, minKelvin, maxKelvin, kelvinStep, minTemperature, maxTemperature)
	}
	return temperature, nil
}
