package config

// Configer is the surface the daemons read configuration keys through. Keys
// come from the process environment, optionally populated first from a dotenv
// file.
type Configer interface {
	LoadFromPath(path string) error
	Load() error
	GetKey(key string) string
	MustGetKey(key string) string
	GetKeyWithDefault(key, defaultValue string) string
	GetIntKeyWithDefault(key string, defaultValue int) int
}
