// File: utils/constants.go
package utils

import "time"

// ScheduleCachePrefix is the prefix for cached day-schedule keys in Redis.
const ScheduleCachePrefix = "schedule:"

// ScheduleCacheTTL is the time-to-live for cached day schedules.
const ScheduleCacheTTL = 5 * time.Minute
