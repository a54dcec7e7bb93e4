package discovery

import (
	"context"
	"fmt"

	"github.com/grandcat/zeroconf"

	"github.com/muurk/msc/internal/config"
)

// Advertisement is a registered mDNS announcement.
type Advertisement struct {
	server *zeroconf.Server
}

// Shutdown withdraws the announcement.
func (a *Advertisement) Shutdown() {
	if a != nil && a.server != nil {
		a.server.Shutdown()
	}
}

// TXTRecords builds the TXT record for a server running cfg.
func TXTRecords(cfg *config.ServerConfig, version string) []string {
	text := []string{LauncherKey + "=" + LauncherName}
	if version != "" {
		text = append(text, "version="+version)
	}
	if world, ok := cfg.Get(config.PropWorld).Text(); ok {
		text = append(text, "world="+world)
	}
	if cfg.Demo {
		text = append(text, "demo=true")
	}
	return text
}

// Advertise announces a server on every multicast interface. The launcher
// tag is added when text does not carry one.
func Advertise(instance string, port int, text []string) (*Advertisement, error) {
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("cannot advertise port %d", port)
	}

	tagged := false
	for _, t := range text {
		if t == LauncherKey+"="+LauncherName {
			tagged = true
			break
		}
	}
	if !tagged {
		text = append([]string{LauncherKey + "=" + LauncherName}, text...)
	}

	server, err := zeroconf.Register(instance, ServiceType, ServiceDomain, port, text, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to register mDNS service: %w", err)
	}
	return &Advertisement{server: server}, nil
}

// Serve advertises until ctx is done.
func Serve(ctx context.Context, instance string, port int, text []string) error {
	ad, err := Advertise(instance, port, text)
	if err != nil {
		return err
	}
	defer ad.Shutdown()

	<-ctx.Done()
	return nil
}
