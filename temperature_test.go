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
	"errors"
	"testing"
)

func TestKelvinToTemperature(t *testing.T) {
	valid := map[int]int{
		2900: 345,
		3400: 294,
		5000: 200,
		7000: 143,
	}
	for kelvin, want := range valid {
		got, err := kelvinToTemperature(kelvin)
		if err != nil {
			t.Errorf("kelvinToTemperature(%d) returned error %v", kelvin, err)
		}
		if got != want {
			t.Errorf("kelvinToTemperature(%d) = %d; want %d", kelvin, got, want)
		}
	}

	invalid := []int{-3400, 0, 2850, 2899, 3425, 7050}
	for _, kelvin := range invalid {
		if _, err := kelvinToTemperature(kelvin); !errors.Is(err, errInvalidInput) {
			t.Errorf("kelvinToTemperature(%d) = %v; want invalid input error", kelvin, err)
		}
	}
}

func TestTemperatureToKelvin(t *testing.T) {
	cases := map[int]int{
		143: 7000,
		200: 5000,
		294: 3400,
		344: 2900,
		345: 2900,
	}
	for temperature, want := range cases {
		if got := temperatureToKelvin(temperature); got != want {
			t.Errorf("temperatureToKelvin(%d) = %d; want %d", temperature, got, want)
		}
	}
}

// The display conversion snaps to 50K steps, so a round trip does not
// have to return the exact input but must stay within one step.
func TestKelvinRoundTripWithinOneStep(t *testing.T) {
	for kelvin := minKelvin; kelvin <= maxKelvin; kelvin += kelvinStep {
		temperature, err := kelvinToTemperature(kelvin)
		if err != nil {
			t.Fatalf("kelvinToTemperature(%d) returned error %v", kelvin, err)
		}
		back := temperatureToKelvin(temperature)
		difference := back - kelvin
		if difference < 0 {
			difference = -difference
		}
		if difference > kelvinStep {
			t.Errorf("round trip of %dK returned %dK; want within %dK", kelvin, back, kelvinStep)
		}
	}
}

func TestBrightnessFromString(t *testing.T) {
	valid := map[string]int{
		"50%":  50,
		"50":   50,
		"3":    3,
		"100%": 100,
	}
	for input, want := range valid {
		got, err := brightnessFromString(input)
		if err != nil {
			t.Errorf("brightnessFromString(%q) returned error %v", input, err)
		}
		if got != want {
			t.Errorf("brightnessFromString(%q) = %d; want %d", input, got, want)
		}
	}

	for _, input := range []string{"xyz", "", "%", "5O"} {
		if _, err := brightnessFromString(input); !errors.Is(err, errInvalidInput) {
			t.Errorf("brightnessFromString(%q) = %v; want invalid input error", input, err)
		}
	}
}

func TestValidBrightness(t *testing.T) {
	cases := map[int]bool{
		2:   false,
		3:   true,
		50:  true,
		100: true,
		101: false,
	}
	for brightness, want := range cases {
		if got := validBrightness(brightness); got != want {
			t.Errorf("validBrightness(%d) = %t; want %t", brightness, got, want)
		}
	}
}

func TestTemperatureFromString(t *testing.T) {
	valid := map[string]int{
		"3400":  294, // >= 2900 is read as Kelvin
		"3400k": 294,
		"3400K": 294,
		"2900":  345, // Kelvin boundary, clamped later at apply time
		"7000":  143,
		"143":   143, // below 2900 is a raw native value
		"200":   200,
		"344":   344,
	}
	for input, want := range valid {
		got, err := temperatureFromString(input)
		if err != nil {
			t.Errorf("temperatureFromString(%q) returned error %v", input, err)
		}
		if got != want {
			t.Errorf("temperatureFromString(%q) = %d; want %d", input, got, want)
		}
	}

	invalid := []string{
		"abc",
		"",
		"3425", // Kelvin, but not a multiple of 50
		"7050", // past the Kelvin range
		"2899", // raw native, past the native range
		"345",
		"142",
		"200k", // suffix forces Kelvin, 200K is out of range
	}
	for _, input := range invalid {
		if _, err := temperatureFromString(input); !errors.Is(err, errInvalidInput) {
			t.Errorf("temperatureFromString(%q) = %v; want invalid input error", input, err)
		}
	}
}
