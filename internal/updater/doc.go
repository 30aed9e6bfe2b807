// Package updater implements the new-version notification for the coursekit
// binary. It checks GitHub Releases for newer versions and powers the startup
// banner from a daily-cached check so no command ever blocks on the network.
package updater
