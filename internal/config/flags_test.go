package config

import "testing"

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantHost string
		wantPort int
		wantErr  bool
	}{
		{name: "localhost", input: "localhost:8080", wantHost: "localhost", wantPort: 8080},
		{name: "ip address", input: "127.0.0.1:9090", wantHost: "127.0.0.1", wantPort: 9090},
		{name: "empty host", input: ":8080", wantHost: "", wantPort: 8080},
		{name: "no port", input: "localhost", wantErr: true},
		{name: "bad port", input: "localhost:abc", wantErr: true},
		{name: "negative port", input: "localhost:-1", wantErr: true},
		{name: "bad host", input: "not an ip:8080", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if a.Host != tt.wantHost || a.Port != tt.wantPort {
				t.Errorf("expected %s:%d, got %s:%d", tt.wantHost, tt.wantPort, a.Host, a.Port)
			}
		})
	}
}

func TestNetAddress_String(t *testing.T) {
	a := &NetAddress{Host: "localhost", Port: 8080}
	if a.String() != "localhost:8080" {
		t.Errorf("expected localhost:8080, got %s", a.String())
	}

	empty := &NetAddress{}
	if empty.String() != "" {
		t.Errorf("expected empty string, got %s", empty.String())
	}
}
