// Package dashboard turns the launch dataset and the current UI selection into
// chart descriptions, and renders those descriptions as SVG.
//
// The aggregators are pure: they read the shared *launches.Dataset and never
// modify it, so any number of requests may call them concurrently.
package dashboard
