// Package meetingservice owns committees and meetings, the reference targets
// for the agenda and voting sides of meeting-governance. Meetings move
// through scheduled, in_progress and completed, with cancelled reachable
// from the two non-terminal states.
package meetingservice
