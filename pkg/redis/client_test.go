package redis

import (
	"context"
	"net"
	"strconv"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
)

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	m, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(m.Close)

	host, portStr, _ := net.SplitHostPort(m.Addr())
	port, _ := strconv.Atoi(portStr)

	client, err := NewClient(NewRedisConfig().WithHost(host).WithPort(port))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client, m
}

func TestJSONRoundTripWithExpiration(t *testing.T) {
	client, m := newTestClient(t)
	ctx := context.Background()

	type prefs struct {
		Search string `json:"search"`
	}

	if err := client.SetJSON(ctx, "k", prefs{Search: "milk"}, time.Hour); err != nil {
		t.Fatalf("SetJSON: %v", err)
	}
	if got := m.TTL("k"); got != time.Hour {
		t.Fatalf("ttl = %v", got)
	}

	var got prefs
	found, err := client.GetJSON(ctx, "k", &got)
	if err != nil || !found {
		t.Fatalf("GetJSON found=%v err=%v", found, err)
	}
	if got.Search != "milk" {
		t.Fatalf("got = %+v", got)
	}
}

func TestGetJSONMissingKey(t *testing.T) {
	client, _ := newTestClient(t)

	var dest map[string]string
	found, err := client.GetJSON(context.Background(), "missing", &dest)
	if err != nil || found {
		t.Fatalf("found=%v err=%v", found, err)
	}
}

func TestGetJSONCorruptValue(t *testing.T) {
	client, m := newTestClient(t)
	_ = m.Set("bad", "{not json")

	var dest map[string]string
	if _, err := client.GetJSON(context.Background(), "bad", &dest); err == nil {
		t.Fatal("expected unmarshal error")
	}
}

func TestPingAndDelete(t *testing.T) {
	client, m := newTestClient(t)
	ctx := context.Background()

	if err := client.Ping(ctx); err != nil {
		t.Fatalf("Ping: %v", err)
	}
	_ = m.Set("a", "1")
	if err := client.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if m.Exists("a") {
		t.Fatal("key a still exists")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
		ok   bool
	}{
		{"defaults", NewRedisConfig(), true},
		{"empty host", NewRedisConfig().WithHost(""), false},
		{"bad port", NewRedisConfig().WithPort(70000), false},
		{"bad database", NewRedisConfig().WithDatabase(16), false},
	}
	for _, tt := range tests {
		err := tt.cfg.Validate()
		if (err == nil) != tt.ok {
			t.Errorf("%s: Validate() = %v", tt.name, err)
		}
	}
	if _, err := NewClient(NewRedisConfig().WithPort(0)); err == nil {
		t.Fatal("NewClient should reject invalid config")
	}
}

func TestHealthCheck(t *testing.T) {
	client, m := newTestClient(t)
	ctx := context.Background()

	details, err := client.HealthCheck(ctx)
	if err != nil {
		t.Fatalf("HealthCheck: %v", err)
	}
	if details["addr"] != m.Addr() || details["ping_latency"] == "" {
		t.Fatalf("details = %v", details)
	}
	if m.Exists(healthProbeKey) {
		t.Fatal("probe key left behind")
	}

	m.Close()
	details, err = client.HealthCheck(ctx)
	if err == nil {
		t.Fatal("expected error after server close")
	}
	if details["addr"] == "" {
		t.Fatal("details should be filled on failure")
	}
}
