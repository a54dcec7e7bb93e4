// Package urls holds the external links shown in troubleshooting output.
//
// Usage:
//
//	import "github.com/muurk/msc/internal/urls"
//
//	fmt.Printf("Download a server jar from %s\n", urls.ServerDownload)
package urls
