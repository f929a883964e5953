// Package collab defines the boundary interfaces for every subsystem
// spec.md treats as an external collaborator: cadastral subdivision,
// settlement seeding, building/street placement, and render mesh
// construction. Each interface ships with a single minimal default
// implementation so the pipeline compiles and produces a well-typed,
// if modest, result end to end; none of these are the hard part of the
// system and none are expected to be replaced by a production caller
// without also replacing the default.
package collab
