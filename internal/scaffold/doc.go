// Package scaffold creates new course working directories. It powers the
// "coursekit create" command: copy the course template tree to the target
// path, rewrite the course descriptor for the new name, and generate a fresh
// README. The CLI layer owns all printing; this package returns a Result
// describing what was done.
package scaffold
