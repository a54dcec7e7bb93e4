// Package discovery announces and finds Minecraft servers on the local
// network with multicast DNS.
//
// A server started by msc registers itself as a "_minecraft._tcp" service
// and tags its TXT record with "launcher=msc", so a scan only returns
// servers this tool launched:
//
//	ad, err := discovery.Advertise("survival", 25565, discovery.TXTRecords(cfg, version.Version))
//	if err != nil {
//		return err
//	}
//	defer ad.Shutdown()
//
//	servers, err := discovery.NewScanner().Scan(ctx)
//
// # Network Requirements
//
// Multicast must be allowed on the interface and UDP port 5353 must not
// be blocked by a firewall. Servers on another network segment are not
// visible.
package discovery
