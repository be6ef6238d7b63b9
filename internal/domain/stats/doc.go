// Package stats computes habit statistics: the current streak, the success
// percentage over a period and the progress report combining both.
//
// A DAILY habit is measured in calendar days, a WEEKLY habit in ISO weeks
// starting on Monday. An interval counts as successful when it holds at
// least one completed record.
package stats
