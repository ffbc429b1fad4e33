// Package cli provides the interactive HeritageWatch terminal client.
//
// It wires configuration, the local store, the API client and the client
// services, then runs a REPL. On start the stored session is restored
// without asking the service; the first rejected call signs the user out.
//
// Key features:
//   - Register / Login / Logout
//   - List, refresh and delete "heritage at risk" reports
//   - Compose a new report: photos, position, submit
//   - Browse the photo feed page by page and submit caption translations
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// App also implements services.Presenter and services.FeedRenderer.
package cli
