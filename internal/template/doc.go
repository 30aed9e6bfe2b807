// Package template locates and inspects the course template source tree that
// scaffolding copies from. The tree itself is opaque fixture content; this
// package only resolves where it lives and answers health-check questions
// about it for the doctor command.
package template
