// Package cli provides the interactive card scanner command-line client.
//
// It wires configuration, the local session database, the identity provider,
// the backend client and the screens, and runs a REPL whose commands map onto
// the client routes:
//
//	/login       login
//	/signup      signup, verify, resend
//	/dashboard   dashboard, scan, edit, save
//	/list        list, create, update, delete
//	/info-card   show
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// Commands of the other auth state are redirected to that state's default
// route (/login or /dashboard). See App and runREPL for details.
package cli
