// Package launch turns a saved server configuration into a running
// Minecraft server process.
//
// The command line has the form
//
//	java [-Xms<min>] [-Xmx<max>] [jvm args...] -jar <server jar> <flags...>
//
// where the trailing flags come from Flags and follow the option catalogue
// order. Processes are started through a Runner so tests can substitute a
// mock for os/exec:
//
//	l := launch.New(launch.DefaultConfig(), nil, logger)
//	if err := l.Preflight(ctx); err != nil {
//		return err
//	}
//	err := l.Launch(ctx, cfg)
//
// Cancelling ctx interrupts the server and Launch returns once it has
// stopped.
package launch
