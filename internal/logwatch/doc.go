// Package logwatch maintains the set of files a session is watching:
// expanding glob patterns, deduplicating hard-linked paths, detecting
// rotation and renames, decompressing rotated archives in place, and
// folding fsnotify push notifications in between poll-driven rescans. It
// is the Go counterpart of lnav's logfile_sub_source/file_collection.
package logwatch
