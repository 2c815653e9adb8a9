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
	"flag"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

var applicationVersion = "development"

// lightFlags collects the repeatable --light selectors.
type lightFlags []string

func (flags *lightFlags) String() string {
	return strings.Join(*flags, ",")
}

func (flags *lightFlags) Set(value string) error {
	*flags = append(*flags, value)
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, `Control Elgato key lights.

Usage: %[1]s <command> [options]

Commands:
  find      Find lights and save them for later use (alias: search)
  list      List known lights
  status    Show the current state of lights
  info      Show accessory information of lights
  toggle    Toggle lights on or off
  on        Turn lights on
  off       Turn lights off
  brighter  Make lights brighter
  dimmer    Make lights dimmer
  warmer    Make the light color warmer
  cooler    Make the light color cooler
  set       Set on/off, brightness and/or temperature
  version   Show the version and check for a newer release

Options:
  --light LIGHT   Light to target as number (from '%[1]s list') or
                  IP[:PORT]. Can be given multiple times.
  -o ON|OFF       (set) Turn the lights on or off
  --on, --off     (set) Same as -o on / -o off
  -b, --brightness 3-100
                  (set) Brightness percentage, '%%' suffix allowed
  -t, --temperature 2900-7000k
                  (set) Color temperature in Kelvin (increments of 50,
                  'k' suffix allowed) or as raw device value 143-344
  -debug          Enable debug output
`, "elgato-key-light-control")
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(arguments []string) int {
	if len(arguments) == 0 {
		usage()
		return 1
	}

	command := arguments[0]
	switch command {
	case "find", "search", "list", "status", "info", "toggle", "on", "off",
		"brighter", "dimmer", "warmer", "cooler", "set", "version":
	default:
		usage()
		return 1
	}

	flags := flag.NewFlagSet(command, flag.ExitOnError)
	flags.Usage = usage
	debug := flags.Bool("debug", false, "enable debug output")

	var selectors lightFlags
	flags.Var(&selectors, "light", "light to target as number or IP[:PORT], repeatable")

	var on, brightness, temperature string
	var onFlag, offFlag *bool
	if command == "set" {
		flags.StringVar(&on, "o", "", "turn the lights on or off (on|off)")
		onFlag = flags.Bool("on", false, "turn the lights on")
		offFlag = flags.Bool("off", false, "turn the lights off")
		flags.StringVar(&brightness, "b", "", "brightness percentage (3-100)")
		flags.StringVar(&brightness, "brightness", "", "brightness percentage (3-100)")
		flags.StringVar(&temperature, "t", "", "color temperature (2900-7000k or 143-344)")
		flags.StringVar(&temperature, "temperature", "", "color temperature (2900-7000k or 143-344)")
	}

	flags.Parse(arguments[1:])
	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	if command == "set" {
		if *onFlag && *offFlag {
			log.Error("--on and --off cannot be combined")
			return 1
		}
		if *onFlag {
			on = "on"
		}
		if *offFlag {
			on = "off"
		}
	}

	configuration := &Configuration{ConfigurationFile: defaultConfigurationFile()}
	discovery := NewDiscovery(configuration)

	switch command {
	case "find", "search":
		if err := commandFind(discovery); err != nil {
			log.Error(err)
			return 1
		}
		return 0
	case "version":
		fmt.Printf("elgato-key-light-control %v\n", applicationVersion)
		CheckForUpdate(applicationVersion)
		return 0
	}

	lights, err := resolveLights(selectors, configuration, discovery)
	if err != nil {
		log.Error(err)
		return 1
	}

	var failures int
	switch command {
	case "list":
		commandList(lights)
	case "status":
		failures = commandStatus(lights)
	case "info":
		failures = commandInfo(lights)
	case "toggle":
		failures = forEachLight(lights, (*Light).Toggle)
	case "on":
		failures = forEachLight(lights, func(light *Light) error { return light.SetPower(true) })
	case "off":
		failures = forEachLight(lights, func(light *Light) error { return light.SetPower(false) })
	case "brighter":
		failures = forEachLight(lights, func(light *Light) error { return light.AdjustBrightness(brightnessStep) })
	case "dimmer":
		failures = forEachLight(lights, func(light *Light) error { return light.AdjustBrightness(-brightnessStep) })
	case "warmer":
		failures = forEachLight(lights, func(light *Light) error { return light.AdjustTemperature(temperatureStep) })
	case "cooler":
		failures = forEachLight(lights, func(light *Light) error { return light.AdjustTemperature(-temperatureStep) })
	case "set":
		failures, err = commandSet(lights, on, brightness, temperature)
		if err != nil {
			log.Error(err)
			return 1
		}
	}

	if failures > 0 {
		return 1
	}
	return 0
}
