// Package task tracks units of work through a fixed lifecycle. A Task moves
// through submitted, working and then exactly one of completed or failed;
// canceled exists as a declared state but the agents in this system never
// enter it. The Store keeps tasks for the process lifetime and the Updater
// applies transitions while pushing status events to an observer channel.
package task
