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
	"net"
	"net/netip"
	"strconv"
)

// resolveLights turns the user supplied selectors into concrete lights,
// in selector order. A selector is either a light number from the list
// command or an IP with optional port. Without selectors every known
// light is returned, scanning the network when none are known yet.
func resolveLights(selectors []string, configuration *Configuration, discovery *Discovery) ([]Light, error) {
	configuration.Load()

	if len(selectors) == 0 {
		if len(configuration.Lights) > 0 {
			return configuration.Lights, nil
		}
		// Nothing known yet. Scan, but leave the summary line to the
		// explicit find command.
		return discovery.Run(false)
	}

	lights := make([]Light, 0, len(selectors))
	for _, selector := range selectors {
		if number, err := strconv.Atoi(selector); err == nil {
			light, err := configuration.LightByNumber(number)
			if err != nil {
				return nil, err
			}
			lights = append(lights, light)
			continue
		}

		light, err := lightFromAddress(selector)
		if err != nil {
			return nil, err
		}
		lights = append(lights, light)
	}
	return lights, nil
}

// lightFromAddress parses an IP or IP:PORT selector into a light. The
// literal the user typed becomes the light's name and the default port
// is filled in when none was given.
func lightFromAddress(selector string) (Light, error) {
	host, port, err := net.SplitHostPort(selector)
	if err != nil {
		host = selector
		port = strconv.Itoa(defaultPort)
	}

	if _, err := netip.ParseAddr(host); err != nil {
		return Light{}, fmt.Errorf("%w: invalid light specified: %v", errInvalidInput, selector)
	}
	if number, err := strconv.Atoi(port); err != nil || number < 1 || number > 65535 {
		return Light{}, fmt.Errorf("%w: invalid port specified for light %v", errInvalidInput, selector)
	}

	return Light{Name: selector, Location: net.JoinHostPort(host, port)}, nil
}
