// Package resume unfreezes previously paused processes once free space
// recovers above the hysteresis threshold, subject to a per-process
// cooldown and an hourly strike cap. It also implements the manual
// "resume" subcommand's resume-all and the stale-entry cleanup the
// control loop runs.
package resume
