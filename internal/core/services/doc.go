// Package services is the application core. Store owns the session and
// every HR collection, checks permissions and persists changes; the
// assistant and settings services sit beside it.
package services
