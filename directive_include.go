package ircdconf

// validateInclude only confirms the directive carries a pattern; file
// existence is already checked by the loader at load time, before the
// validator ever runs.
func validateInclude(e *ParseEntry, sink *ErrorSink) {
	requireScalar(e, "include", sink)
}
