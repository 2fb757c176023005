// Package views holds the screens of the card scanner client and the router
// that gates them on the session.
//
// Screens keep their own state and render to an io.Writer. They never talk
// to the backend directly; all calls go through the services package.
//
//	Route        Screen          Requires session
//	/login       (prompt only)   no
//	/signup      (prompt only)   no
//	/dashboard   CaptureScreen   yes
//	/list        ListScreen      yes
//	/info-card   InfoCard        yes
package views
