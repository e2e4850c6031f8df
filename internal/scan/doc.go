// Package scan discovers the image files a pipeline run should process.
//
// Two sources are provided. Scanner lists a directory once and emits every
// eligible regular file, which is the normal batch mode. Watcher keeps
// watching a directory and emits files as they appear, which backs watch
// mode; it only stops when its context is cancelled.
//
// Both sources share a Filter that decides eligibility: hidden files
// (leading dot) are skipped and the extension must be on the allow list,
// matched case-insensitively.
//
// # Settling
//
// A file that is still being copied into the watched directory produces a
// burst of write events. Watcher holds each path back until it has been
// quiet for a settle interval and emits it once, so downstream processing
// sees whole files, not half-written ones.
package scan
