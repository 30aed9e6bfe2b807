// Package descriptor handles the course.json metadata file found at the root
// of a course content tree. It derives the display title and course code from
// a directory name, rewrites the descriptor in place, and validates it against
// an embedded JSON Schema.
package descriptor
