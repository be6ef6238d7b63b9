package config

// Session store type constants
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)
