// Package shell is the interactive terminal editor for the server
// configuration.
//
// The shell owns no navigation logic of its own. It renders the phase
// reported by the state machine, translates key presses into machine
// events and saves the configuration whenever a commit bumps the
// machine's revision.
package shell
