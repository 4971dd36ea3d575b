// Package nag throttles reminders across processes so a library nags its
// users at most once per lockfile lifetime.
//
// The default backend is a YAML lockfile under the discovered project root,
// one file per Kind. There is deliberately no file lock around the
// read-modify-write cycle: two racing processes can both observe "not nagged"
// and both write, which costs at most a duplicate reminder. Corruption is
// ruled out because every write replaces the whole file through a
// write-temp-then-rename. A stricter Redis-backed store is available as a
// drop-in for integrators who care about the duplicate.
//
// Every I/O and parse failure inside this package degrades to "no
// throttling". Nothing here may ever abort a host process that merely wanted
// to show a reminder.
package nag
