/*
Package ircdconf implements the configuration subsystem of an IRC daemon:
a hierarchical, brace/semicolon-delimited configuration language, a
two-phase validate-then-commit pipeline, a typed in-memory configuration
store with hot-reload (rehash) support, and the record-lookup routines
the rest of a daemon needs to make admission-control decisions.

Parsing

A configuration file is parsed into a tree of ParseEntry values rooted in
a ParseFile. The grammar is recursive: every entry has a name, an
optional scalar value, and an optional brace-delimited block of child
entries. Parsing never mutates daemon state; it only builds the tree.

Loading

Load reads a root file and parses it, then expands any "include"
directives it finds, recursively, producing an ordered list of ParseFile
values held by a Loader.

Validating

Validate walks every parsed file's top-level entries and invokes a
per-directive validator looked up in the directive Registry. Validators
perform a pure read of the sub-tree and report errors through an
ErrorSink; Validate never mutates the ConfigurationStore.

Committing

Commit walks the same tree a second time, after a successful Validate,
and constructs the typed records described in the package's record_*.go
files, inserting or updating them in a ConfigurationStore. Commit is the
only phase that mutates daemon-visible state.

Rehashing

Rehasher.Run drives Load, Validate and Commit again against the same root
path. If Validate reports any error the running ConfigurationStore is
left untouched.
*/
package ircdconf
