// Package filesystem provides implementations of the types.FS interface.
//
// Two implementations are available:
//   - NewOS() returns a filesystem backed by the real OS
//   - NewAferoFS(fs) wraps any afero.Fs, which is how tests run the
//     whole generator against an in-memory filesystem
package filesystem
