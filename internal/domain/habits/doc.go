// Package habits defines habits, their per-day completion records, and
// the service and repository contracts that manage them.
//
// Record dates are calendar days. They are always carried as midnight UTC
// so that equality and range checks do not depend on the caller's zone.
package habits
