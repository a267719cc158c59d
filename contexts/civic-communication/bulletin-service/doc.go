// Package bulletinservice publishes announcements and tracks follow-up tasks
// for the civic-communication context.
package bulletinservice
