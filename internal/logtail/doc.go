// Package logtail reads the tail of the strata log file.
//
// The viewer owns the terminal, so its diagnostics go to a log file
// instead of stderr. The logs subcommand uses this package to print the
// last lines of that file, optionally narrowed to lines containing a set
// of terms.
//
// # Usage
//
//	lines, err := logtail.Read(cfg.LogPath, 200)
//	if err != nil {
//		return err
//	}
//	for _, line := range logtail.Filter(lines, "poll") {
//		fmt.Println(line)
//	}
//
// Read keeps a ring buffer of maxLines entries, so memory stays bounded by
// the requested tail and not by the file size. Lines longer than 1 MiB are
// reported as a read error.
package logtail
