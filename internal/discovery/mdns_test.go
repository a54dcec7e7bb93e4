package discovery

import (
	"net"
	"testing"
	"time"

	"github.com/grandcat/zeroconf"
)

func TestParseServiceEntry(t *testing.T) {
	tagged := []string{"launcher=msc"}

	tests := []struct {
		name     string
		entry    *zeroconf.ServiceEntry
		wantNil  bool
		wantIP   string
		wantPort int
	}{
		{
			name: "msc server with IPv4",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "survival"},
				HostName:      "minecraft-box.local.",
				Port:          25565,
				AddrIPv4:      []net.IP{net.ParseIP("192.168.4.16")},
				Text:          []string{"launcher=msc", "world=survival"},
			},
			wantIP:   "192.168.4.16",
			wantPort: 25565,
		},
		{
			name: "custom port",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "creative"},
				HostName:      "box.local.",
				Port:          25570,
				AddrIPv4:      []net.IP{net.ParseIP("10.0.0.5")},
				Text:          tagged,
			},
			wantIP:   "10.0.0.5",
			wantPort: 25570,
		},
		{
			name: "no port falls back to the game default",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "survival"},
				HostName:      "box.local.",
				AddrIPv4:      []net.IP{net.ParseIP("172.16.0.1")},
				Text:          tagged,
			},
			wantIP:   "172.16.0.1",
			wantPort: DefaultPort,
		},
		{
			name: "not launched by msc",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "other"},
				HostName:      "box.local.",
				Port:          25565,
				AddrIPv4:      []net.IP{net.ParseIP("192.168.1.1")},
				Text:          []string{"launcher=other"},
			},
			wantNil: true,
		},
		{
			name: "no TXT record",
			entry: &zeroconf.ServiceEntry{
				HostName: "box.local.",
				Port:     25565,
				AddrIPv4: []net.IP{net.ParseIP("192.168.1.1")},
			},
			wantNil: true,
		},
		{
			name: "no address",
			entry: &zeroconf.ServiceEntry{
				HostName: "box.local.",
				Port:     25565,
				Text:     tagged,
			},
			wantNil: true,
		},
		{
			name: "IPv6 only",
			entry: &zeroconf.ServiceEntry{
				HostName: "box.local.",
				Port:     25565,
				AddrIPv6: []net.IP{net.ParseIP("fe80::1")},
				Text:     tagged,
			},
			wantIP:   "fe80::1",
			wantPort: 25565,
		},
		{
			name: "prefers IPv4",
			entry: &zeroconf.ServiceEntry{
				HostName: "box.local.",
				Port:     25565,
				AddrIPv4: []net.IP{net.ParseIP("192.168.1.50")},
				AddrIPv6: []net.IP{net.ParseIP("fe80::2")},
				Text:     tagged,
			},
			wantIP:   "192.168.1.50",
			wantPort: 25565,
		},
		{
			name:    "nil entry",
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := parseServiceEntry(tt.entry)

			if tt.wantNil {
				if server != nil {
					t.Errorf("parseServiceEntry() = %v, want nil", server)
				}
				return
			}
			if server == nil {
				t.Fatal("parseServiceEntry() = nil, want a server")
			}

			if server.IP != tt.wantIP {
				t.Errorf("server.IP = %v, want %v", server.IP, tt.wantIP)
			}
			if server.Port != tt.wantPort {
				t.Errorf("server.Port = %v, want %v", server.Port, tt.wantPort)
			}
			if server.Instance != tt.entry.Instance {
				t.Errorf("server.Instance = %v, want %v", server.Instance, tt.entry.Instance)
			}
			if server.Hostname != tt.entry.HostName {
				t.Errorf("server.Hostname = %v, want %v", server.Hostname, tt.entry.HostName)
			}
			if time.Since(server.DiscoveredAt) > time.Second {
				t.Errorf("server.DiscoveredAt is not recent: %v", server.DiscoveredAt)
			}
		})
	}
}

func TestParseServiceEntryMetadata(t *testing.T) {
	entry := &zeroconf.ServiceEntry{
		HostName: "box.local.",
		Port:     25565,
		AddrIPv4: []net.IP{net.ParseIP("192.168.4.16")},
		Text:     []string{"launcher=msc", "version=v0.3.0", "demo", "world=a=b"},
	}

	server := parseServiceEntry(entry)
	if server == nil {
		t.Fatal("parseServiceEntry() = nil, want a server")
	}

	want := map[string]string{
		"launcher": "msc",
		"version":  "v0.3.0",
		"demo":     "",
		"world":    "a=b",
	}
	if len(server.Metadata) != len(want) {
		t.Errorf("server.Metadata has %d entries, want %d", len(server.Metadata), len(want))
	}
	for key, value := range want {
		if got, ok := server.Metadata[key]; !ok {
			t.Errorf("server.Metadata missing key %q", key)
		} else if got != value {
			t.Errorf("server.Metadata[%q] = %q, want %q", key, got, value)
		}
	}
}

func TestServerString(t *testing.T) {
	s := &Server{Instance: "survival", Hostname: "box.local.", IP: "192.168.4.16", Port: 25565}

	want := `Minecraft server "survival" (box.local.) at 192.168.4.16:25565`
	if got := s.String(); got != want {
		t.Errorf("String() = %v, want %v", got, want)
	}
}

func TestServerAddress(t *testing.T) {
	tests := []struct {
		ip   string
		port int
		want string
	}{
		{"192.168.4.16", 25565, "192.168.4.16:25565"},
		{"fe80::1", 25566, "[fe80::1]:25566"},
	}

	for _, tt := range tests {
		s := &Server{IP: tt.ip, Port: tt.port}
		if got := s.Address(); got != tt.want {
			t.Errorf("Address() = %v, want %v", got, tt.want)
		}
	}
}

func TestServerGetMetadata(t *testing.T) {
	s := &Server{}
	if got := s.GetMetadata("world"); got != "" {
		t.Errorf("GetMetadata() on nil metadata = %q, want empty", got)
	}

	s.Metadata = map[string]string{"world": "survival"}
	if got := s.GetMetadata("world"); got != "survival" {
		t.Errorf("GetMetadata() = %q, want survival", got)
	}
}

func TestNewScanner(t *testing.T) {
	if got := NewScanner().Timeout; got != DefaultScanTimeout {
		t.Errorf("Timeout = %v, want %v", got, DefaultScanTimeout)
	}
}
