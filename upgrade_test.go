package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLatestReleaseVersion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		io.WriteString(writer, `{"tag_name":"v1.2.3","name":"Release 1.2.3"}`)
	}))
	t.Cleanup(server.Close)

	version, err := latestReleaseVersion(server.URL)
	if err != nil {
		t.Fatalf("latestReleaseVersion returned error %v", err)
	}
	if version.String() != "1.2.3" {
		t.Errorf("latestReleaseVersion = %v; want 1.2.3", version)
	}
}

func TestLatestReleaseVersionFromName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		io.WriteString(writer, `{"name":"0.9.0"}`)
	}))
	t.Cleanup(server.Close)

	version, err := latestReleaseVersion(server.URL)
	if err != nil {
		t.Fatalf("latestReleaseVersion returned error %v", err)
	}
	if version.String() != "0.9.0" {
		t.Errorf("latestReleaseVersion = %v; want 0.9.0", version)
	}
}

func TestLatestReleaseVersionBadStatus(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(server.Close)

	if _, err := latestReleaseVersion(server.URL); err == nil {
		t.Error("latestReleaseVersion against a 404 returned no error")
	}
}
