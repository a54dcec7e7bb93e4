// Package machine implements the two-level state machine behind the msc
// editor.
//
// The outer level is the application flow: pick an action from the menu, edit
// a setting, start the server or exit. While a setting is being edited an
// inner editor state says how the value is collected: an on/off choice, a
// number, some text, or first a choice between a value and none.
//
// # Calling Contract
//
// A shell loops on the machine's Phase, presents the matching interaction,
// wraps the result in an Event and a Payload and calls Dispatch:
//
//	m := machine.New(cfg)
//	for m.State() != machine.Exited && m.State() != machine.Running {
//	    ev, payload := present(m.Phase())
//	    m.Dispatch(ev, payload)
//	}
//
// Dispatch never blocks and performs no I/O. It changes state only along the
// documented transitions; any other (state, event) pair is ignored. Calls that
// break the contract panic with a *ContractError:
//   - an editor event while nothing is being edited
//   - SelectedOption without an OptionPayload
//   - SubmitValue whose value kind does not match the active editor
//
// Callers that cannot trust their input (the remote editor) call Check first
// and report the error instead.
//
// # Commits
//
// Committing a value is the only way the configuration changes. A commit
// writes the value through config.ServerConfig.Set, drops the selected option
// and returns to the menu. Revision increases by one per commit, which is how
// a shell knows when to save.
package machine
