// Package daemon runs the watchdog's single cooperative control loop:
// sample free space, update the fill rate, classify the severity level,
// attempt auto-resume, act on a level transition, dispatch notifications,
// persist state, then sleep for an interval that adapts to the current
// level. It also owns the PID file lock, SIGHUP config reload, and clean
// shutdown on SIGTERM/SIGINT.
package daemon
