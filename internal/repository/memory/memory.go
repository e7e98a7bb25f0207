// Package memory provides map-backed implementations of the repository
// interfaces. They serve tests and database-less runs; every method is
// safe for concurrent use.
package memory

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
