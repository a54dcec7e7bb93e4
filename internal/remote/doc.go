// Package remote lets another program drive the configuration editor over
// a websocket, for example a web page or a script on a headless host.
//
// Clients send machine events by name and get the resulting snapshot back:
//
//	-> {"event": "selected_option", "option": "port"}
//	<- {"ok": true, "snapshot": {"state": "editing_configuration", "editor": "select_value_or_none", ...}}
//	-> {"event": "selected_value"}
//	-> {"event": "submit_value", "value": 25565}
//	<- {"ok": true, "snapshot": {"state": "choice_menu", "revision": 1, ...}}
//
// Requests the editor cannot accept in its current state are answered with
// "ok": false and leave the state unchanged. Commits are saved before the
// reply is sent. The server stops once a client starts the server or exits.
package remote
