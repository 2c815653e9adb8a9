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
	"net/http"

	"github.com/Masterminds/semver"
	log "github.com/sirupsen/logrus"
)

const releaseURL = "https://api.github.com/repos/aaroncampbell/elgato-key-light-control/releases/latest"

// CheckForUpdate compares the running version against the latest
// published release and reports when a newer one exists. Development
// builds skip the check.
func CheckForUpdate(currentVersion string) {
	version, err := semver.NewVersion(currentVersion)
	if err != nil {
		log.Debugf("Skipping update check for version %v", currentVersion)
		return
	}

	latest, err := latestReleaseVersion(releaseURL)
	if err != nil {
		log.Warningf("Error looking for update: %v", err)
		return
	}

	if !latest.GreaterThan(version) {
		log.Printf("You are running the latest release")
		return
	}

	constraint, err := semver.NewConstraint(fmt.Sprintf("^%s", version.String()))
	if err == nil && !constraint.Check(latest) {
		log.Warningf("Found new major release %v which might not read your existing configuration file", latest)
		return
	}
	log.Printf("Found new release version %v", latest)
}

func latestReleaseVersion(url string) (*semver.Version, error) {
	response, err := httpClient.Get(url)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("release endpoint returned status %v", response.Status)
	}

	var release struct {
		Name    string `json:"name"`
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(response.Body).Decode(&release); err != nil {
		return nil, err
	}

	name := release.TagName
	if name == "" {
		name = release.Name
	}
	return semver.NewVersion(name)
}
