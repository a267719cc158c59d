// Package votingservice records votes inside the meeting-governance context.
//
// Two vote shapes coexist. Meeting ballots hold one row per (meeting, voter)
// pair and re-casting overwrites the stored option. Vote results hold one
// authoritative tally row per agenda item and re-recording replaces it. Both
// writes resolve conflicts at the store with native upserts. Result writes
// also stage a vote_result.recorded event through the outbox relay.
package votingservice
