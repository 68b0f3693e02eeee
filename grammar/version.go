package grammar

import "golang.org/x/mod/semver"

// SupportedFormatVersion is the grammar document format version this
// release of peacockgen understands. Bumping the minor version is backward
// compatible (new optional document fields); bumping the major version is
// not.
const SupportedFormatVersion = "v1.0.0"

// checkFormatVersion rejects grammar documents whose major version does not
// match SupportedFormatVersion's, so a stale or future document fails with
// a clear message instead of silently producing a malformed IR.
func checkFormatVersion(docVersion string) error {
	if !semver.IsValid(docVersion) {
		return &ValidationError{Message: "formatVersion is not a valid semver string: " + docVersion}
	}
	if semver.Major(docVersion) != semver.Major(SupportedFormatVersion) {
		return &ValidationError{Message: "unsupported grammar formatVersion " + docVersion +
			": this peacockgen release supports " + SupportedFormatVersion + " and compatible minor versions"}
	}
	return nil
}
