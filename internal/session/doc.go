// Package session owns the training session: the word on screen, the pending
// flip timer and the two user actions (mark known, skip). All methods must be
// called from the UI dispatch thread.
package session
