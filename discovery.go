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
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/hashicorp/mdns"
	log "github.com/sirupsen/logrus"
)

const discoveryTimeout = 5 * time.Second

// probeConcurrency bounds the parallel probes so a scan doesn't flood
// the local network.
const probeConcurrency = 16

// Discovery scans the local network for key lights and persists what it
// finds. The candidate lookup and the probe are injected so tests can
// run without a network.
type Discovery struct {
	Configuration *Configuration

	candidates func() ([]string, error)
	probe      func(address string) (Light, bool)
}

func NewDiscovery(configuration *Configuration) *Discovery {
	return &Discovery{
		Configuration: configuration,
		candidates:    mdnsCandidates,
		probe:         probeLight,
	}
}

// mdnsCandidates asks the local network for _elg._tcp services and
// returns the deduplicated addresses that answered. Answers carry the
// service port, so candidates may already be host:port pairs.
func mdnsCandidates() ([]string, error) {
	entries := make(chan *mdns.ServiceEntry, 16)
	var addresses []string
	seen := make(map[string]bool)
	collected := make(chan struct{})

	go func() {
		for entry := range entries {
			if entry.AddrV4 == nil {
				continue
			}
			address := entry.AddrV4.String()
			if entry.Port > 0 {
				address = net.JoinHostPort(address, strconv.Itoa(entry.Port))
			}
			if seen[address] {
				continue
			}
			seen[address] = true
			addresses = append(addresses, address)
		}
		close(collected)
	}()

	err := mdns.Query(&mdns.QueryParam{
		Service:             "_elg._tcp",
		Domain:              "local",
		Timeout:             discoveryTimeout,
		Entries:             entries,
		DisableIPv6:         true,
		WantUnicastResponse: true,
	})
	close(entries)
	<-collected

	if err != nil {
		return nil, err
	}
	return addresses, nil
}

// probeLight checks a single candidate address for a key light. Any
// transport failure or a missing display name just means there is no
// light there - a failed probe never fails the scan.
func probeLight(address string) (Light, bool) {
	location := address
	if _, _, err := net.SplitHostPort(address); err != nil {
		location = net.JoinHostPort(address, strconv.Itoa(defaultPort))
	}

	light := Light{Location: location}
	info, err := light.Info()
	if err != nil {
		log.Debugf("🔍 No light at %v: %v", light.Location, err)
		return Light{}, false
	}

	name, _ := info["displayName"].(string)
	if name == "" {
		log.Debugf("🔍 Device at %v has no display name", light.Location)
		return Light{}, false
	}
	light.Name = name
	return light, true
}

// Run probes every candidate address and persists the lights it finds,
// replacing the previous registry. With summary set it also reports how
// many lights the scan ended with.
func (discovery *Discovery) Run(summary bool) ([]Light, error) {
	log.Printf("🔍 Finding lights...")

	candidates, err := discovery.candidates()
	if err != nil {
		return nil, fmt.Errorf("discovery failed: %w", err)
	}

	var lights []Light
	var mutex sync.Mutex
	var group sync.WaitGroup
	semaphore := make(chan struct{}, probeConcurrency)

	for _, address := range candidates {
		group.Add(1)
		semaphore <- struct{}{}
		go func(address string) {
			defer group.Done()
			defer func() { <-semaphore }()

			light, found := discovery.probe(address)
			if !found {
				return
			}
			log.Printf("🔍 %v found at %v", light.Name, light.Location)
			mutex.Lock()
			lights = append(lights, light)
			mutex.Unlock()
		}(address)
	}
	group.Wait()

	// Probe completion order is arbitrary, the registry order is not.
	sort.Slice(lights, func(i, j int) bool { return lights[i].Location < lights[j].Location })

	if len(lights) > 0 {
		if err := discovery.Configuration.Save(lights); err != nil {
			return lights, err
		}
	}
	if summary {
		log.Printf("🔍 %d lights found", len(lights))
	}
	return lights, nil
}
