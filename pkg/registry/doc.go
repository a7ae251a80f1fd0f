// Package registry keeps ordered sets of root directories and resolves
// relative patterns against them.
//
// A PathRegistry ranks its roots by how many matches each produced, so
// roots that found something before are searched first. Default returns a
// process-wide instance; New creates owned ones. A ModuleRegistry takes its
// roots from a DirSource (by default the module directories of the running
// binary) and refreshes them when a query comes back empty.
//
// Catalog holds several named PathRegistries, typically one per search
// path defined in configuration.
package registry
