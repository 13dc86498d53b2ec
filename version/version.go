// Package version holds the generator version, overridable at link time with
// -ldflags "-X github.com/orthanc-tools/embedres/version.Version=...".
package version

// Version is the semantic version of embedres.
var Version = "1.2.0"
