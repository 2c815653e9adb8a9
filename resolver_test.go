package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	log "github.com/sirupsen/logrus"
)

func testRegistry(t *testing.T, lights []Light) *Configuration {
	t.Helper()
	return &Configuration{
		ConfigurationFile: filepath.Join(t.TempDir(), "elgato.control.json"),
		Lights:            lights,
	}
}

func stubDiscovery(configuration *Configuration, addresses []string, found map[string]Light) *Discovery {
	return &Discovery{
		Configuration: configuration,
		candidates:    func() ([]string, error) { return addresses, nil },
		probe: func(address string) (Light, bool) {
			light, ok := found[address]
			return light, ok
		},
	}
}

func TestResolveLightsByNumberAndAddress(t *testing.T) {
	configuration := testRegistry(t, []Light{
		{Name: "A", Location: "10.0.0.1:9123"},
		{Name: "B", Location: "10.0.0.2:9123"},
	})
	discovery := stubDiscovery(configuration, nil, nil)

	lights, err := resolveLights([]string{"2", "10.0.0.5"}, configuration, discovery)
	if err != nil {
		t.Fatalf("resolveLights returned error %v", err)
	}
	want := []Light{
		{Name: "B", Location: "10.0.0.2:9123"},
		{Name: "10.0.0.5", Location: "10.0.0.5:9123"},
	}
	if !reflect.DeepEqual(lights, want) {
		t.Errorf("resolveLights = %+v; want %+v", lights, want)
	}
}

func TestResolveLightsNumberOutOfRange(t *testing.T) {
	configuration := testRegistry(t, []Light{
		{Name: "A", Location: "10.0.0.1:9123"},
		{Name: "B", Location: "10.0.0.2:9123"},
	})
	discovery := stubDiscovery(configuration, nil, nil)

	for _, selector := range []string{"3", "0", "-1"} {
		if _, err := resolveLights([]string{selector}, configuration, discovery); !errors.Is(err, errLightOutOfRange) {
			t.Errorf("resolveLights(%q) = %v; want out of range error", selector, err)
		}
	}
}

func TestResolveLightsInvalidAddress(t *testing.T) {
	configuration := testRegistry(t, nil)
	discovery := stubDiscovery(configuration, nil, nil)

	invalid := []string{"999.999.999.999", "not-an-ip", "10.0.0.5:abc", "10.0.0.5:0", "10.0.0.5:99999"}
	for _, selector := range invalid {
		if _, err := resolveLights([]string{selector}, configuration, discovery); !errors.Is(err, errInvalidInput) {
			t.Errorf("resolveLights(%q) = %v; want invalid input error", selector, err)
		}
	}
}

func TestResolveLightsAddressForms(t *testing.T) {
	configuration := testRegistry(t, nil)
	discovery := stubDiscovery(configuration, nil, nil)

	cases := map[string]string{
		"10.0.0.5":      "10.0.0.5:9123",
		"10.0.0.5:1234": "10.0.0.5:1234",
		"::1":           "[::1]:9123",
		"[fe80::1]:99":  "[fe80::1]:99",
	}
	for selector, location := range cases {
		lights, err := resolveLights([]string{selector}, configuration, discovery)
		if err != nil {
			t.Fatalf("resolveLights(%q) returned error %v", selector, err)
		}
		if len(lights) != 1 || lights[0].Location != location || lights[0].Name != selector {
			t.Errorf("resolveLights(%q) = %+v; want name %q at %q", selector, lights, selector, location)
		}
	}
}

func TestResolveLightsKeepsDuplicates(t *testing.T) {
	configuration := testRegistry(t, []Light{{Name: "A", Location: "10.0.0.1:9123"}})
	discovery := stubDiscovery(configuration, nil, nil)

	lights, err := resolveLights([]string{"1", "1"}, configuration, discovery)
	if err != nil {
		t.Fatalf("resolveLights returned error %v", err)
	}
	if len(lights) != 2 {
		t.Errorf("resolveLights kept %d lights; want both duplicate selectors", len(lights))
	}
}

func TestResolveLightsDefaultsToRegistry(t *testing.T) {
	known := []Light{
		{Name: "A", Location: "10.0.0.1:9123"},
		{Name: "B", Location: "10.0.0.2:9123"},
	}
	configuration := testRegistry(t, known)
	discovery := stubDiscovery(configuration, []string{"10.0.0.99"}, nil)

	lights, err := resolveLights(nil, configuration, discovery)
	if err != nil {
		t.Fatalf("resolveLights returned error %v", err)
	}
	if !reflect.DeepEqual(lights, known) {
		t.Errorf("resolveLights = %+v; want the known lights %+v", lights, known)
	}
}

func TestResolveLightsFallsBackToDiscovery(t *testing.T) {
	log.SetOutput(io.Discard)
	configuration := testRegistry(t, nil)
	desk := Light{Name: "Desk", Location: "10.0.0.9:9123"}
	discovery := stubDiscovery(configuration, []string{"10.0.0.9"}, map[string]Light{"10.0.0.9": desk})

	lights, err := resolveLights(nil, configuration, discovery)
	if err != nil {
		t.Fatalf("resolveLights returned error %v", err)
	}
	if !reflect.DeepEqual(lights, []Light{desk}) {
		t.Errorf("resolveLights = %+v; want the discovered light", lights)
	}
	if _, err := os.Stat(configuration.ConfigurationFile); err != nil {
		t.Errorf("discovery fallback did not persist the registry: %v", err)
	}
}
