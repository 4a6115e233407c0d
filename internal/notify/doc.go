// Package notify fans a level-change event out to the configured
// channels: a desktop toast over D-Bus, a broadcast to logged-in
// sessions via wall(1), an email over SMTP, and an HTTP webhook. Every
// channel is independently best-effort: a failure in one is logged and
// never blocks or fails the others.
package notify
