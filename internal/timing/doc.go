// Package timing turns an event log into durations.
//
// Every function here is pure: nothing reads the clock, touches storage, or
// mutates its inputs. An event marks the start of an activity; the interval
// up to the next event belongs to it. The last event opens the interval that
// is still running and is never counted.
package timing
