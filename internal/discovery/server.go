package discovery

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Server is a Minecraft server found on the network.
type Server struct {
	// Instance is the advertised service instance name (e.g., "survival")
	Instance string

	// Hostname is the mDNS hostname (e.g., "minecraft-box.local.")
	Hostname string

	// IP is the preferred address, IPv4 when one was announced
	IP string

	// Port is the game port
	Port int

	// Metadata holds the TXT record, e.g. "launcher=msc", "world=survival"
	Metadata map[string]string

	// DiscoveredAt is when the server answered
	DiscoveredAt time.Time
}

func (s *Server) String() string {
	return fmt.Sprintf("Minecraft server %q (%s) at %s", s.Instance, s.Hostname, s.Address())
}

// Address returns the host:port players connect to.
func (s *Server) Address() string {
	return net.JoinHostPort(s.IP, strconv.Itoa(s.Port))
}

// GetMetadata returns a TXT value, or "" when it was not announced.
func (s *Server) GetMetadata(key string) string {
	if s.Metadata == nil {
		return ""
	}
	return s.Metadata[key]
}
